package service

import (
	"encoding/json"
	"regexp"
	"sort"
	"strconv"
	"strings"

	chapterModel "truyenhub_backend/internals/features/catalog/chapters/model"
	contentModel "truyenhub_backend/internals/features/catalog/contents/model"
)

// Format payload isi chapter.
const (
	FormatHTML  = "html"
	FormatPages = "pages"
)

// ChapterPayload adalah varian isi chapter: HTML (novel) ATAU daftar URL
// halaman terurut (manga). Tepat satu yang terisi, sesuai Format.
type ChapterPayload struct {
	Format string   `json:"format"`
	HTML   string   `json:"html,omitempty"`
	Pages  []string `json:"pages,omitempty"`
}

var imgSrcRe = regexp.MustCompile(`<img[^>]+src=["']([^"']+)["']`)

// pageParsers dicoba berurutan sampai ada yang berhasil. Data lama menyimpan
// isi manga dalam beberapa bentuk (map JSON berkunci nomor halaman, array
// JSON, atau HTML mentah berisi tag <img>), jadi parsing tidak boleh throw —
// gagal semua berarti payload kosong.
var pageParsers = []func(string) ([]string, bool){
	parsePageMap,
	parsePageArray,
	parseImgTags,
}

// BuildPayload menyusun payload dari baris chapter_contents. Format
// ditentukan oleh tipe KONTEN INDUK, bukan isi barisnya.
func BuildPayload(contentType string, rows []chapterModel.ChapterContent) *ChapterPayload {
	if contentType == contentModel.TypeManga {
		return &ChapterPayload{Format: FormatPages, Pages: buildPages(rows)}
	}
	return &ChapterPayload{Format: FormatHTML, HTML: buildHTML(rows)}
}

func buildPages(rows []chapterModel.ChapterContent) []string {
	// Bentuk baru: satu baris per halaman dengan image_url + page_order.
	var perRow []chapterModel.ChapterContent
	for _, r := range rows {
		if r.ImageURL != "" {
			perRow = append(perRow, r)
		}
	}
	if len(perRow) > 0 {
		sort.SliceStable(perRow, func(i, j int) bool {
			return pageOrderOf(perRow[i]) < pageOrderOf(perRow[j])
		})
		pages := make([]string, 0, len(perRow))
		for _, r := range perRow {
			pages = append(pages, r.ImageURL)
		}
		return pages
	}

	// Bentuk lama: satu blob di kolom content. Coba strategi satu per satu.
	for _, r := range rows {
		raw := strings.TrimSpace(r.Content)
		if raw == "" {
			continue
		}
		for _, parse := range pageParsers {
			if pages, ok := parse(raw); ok {
				return pages
			}
		}
	}
	return nil
}

func buildHTML(rows []chapterModel.ChapterContent) string {
	var parts []string
	for _, r := range rows {
		raw := strings.TrimSpace(r.Content)
		if raw == "" {
			continue
		}
		// Beberapa novel lama juga tersimpan sebagai page-map JSON; gabung
		// nilai-nilainya urut nomor halaman.
		if segments, ok := parsePageMap(raw); ok {
			parts = append(parts, strings.Join(segments, "\n"))
			continue
		}
		parts = append(parts, raw)
	}
	return strings.Join(parts, "\n")
}

// parsePageMap: {"1": "...", "2": "...", ...} — kunci nomor halaman string,
// diurutkan numerik ascending.
func parsePageMap(raw string) ([]string, bool) {
	var m map[string]string
	if err := json.Unmarshal([]byte(raw), &m); err != nil || len(m) == 0 {
		return nil, false
	}

	type page struct {
		n   int
		val string
	}
	pages := make([]page, 0, len(m))
	for k, v := range m {
		n, err := strconv.Atoi(k)
		if err != nil {
			return nil, false
		}
		pages = append(pages, page{n: n, val: v})
	}
	sort.Slice(pages, func(i, j int) bool { return pages[i].n < pages[j].n })

	out := make([]string, 0, len(pages))
	for _, p := range pages {
		out = append(out, p.val)
	}
	return out, true
}

func parsePageArray(raw string) ([]string, bool) {
	var arr []string
	if err := json.Unmarshal([]byte(raw), &arr); err != nil || len(arr) == 0 {
		return nil, false
	}
	return arr, true
}

func parseImgTags(raw string) ([]string, bool) {
	matches := imgSrcRe.FindAllStringSubmatch(raw, -1)
	if len(matches) == 0 {
		return nil, false
	}
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m[1])
	}
	return out, true
}

func pageOrderOf(r chapterModel.ChapterContent) int {
	if r.PageOrder != nil {
		return *r.PageOrder
	}
	return int(r.ID)
}
