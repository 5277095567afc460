package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	chapterModel "truyenhub_backend/internals/features/catalog/chapters/model"
	contentModel "truyenhub_backend/internals/features/catalog/contents/model"
)

func TestBuildPayload_MangaPageMap(t *testing.T) {
	rows := []chapterModel.ChapterContent{
		{ID: 1, Content: `{"2":"https://cdn.example.com/p2.jpg","10":"https://cdn.example.com/p10.jpg","1":"https://cdn.example.com/p1.jpg"}`},
	}
	p := BuildPayload(contentModel.TypeManga, rows)

	assert.Equal(t, FormatPages, p.Format)
	assert.Empty(t, p.HTML)
	// Kunci diurutkan numerik: 1, 2, 10 — bukan leksikografis 1, 10, 2.
	assert.Equal(t, []string{
		"https://cdn.example.com/p1.jpg",
		"https://cdn.example.com/p2.jpg",
		"https://cdn.example.com/p10.jpg",
	}, p.Pages)
}

func TestBuildPayload_MangaJSONArray(t *testing.T) {
	rows := []chapterModel.ChapterContent{
		{ID: 1, Content: `["https://cdn.example.com/a.jpg","https://cdn.example.com/b.jpg"]`},
	}
	p := BuildPayload(contentModel.TypeManga, rows)

	assert.Equal(t, FormatPages, p.Format)
	assert.Equal(t, []string{"https://cdn.example.com/a.jpg", "https://cdn.example.com/b.jpg"}, p.Pages)
}

func TestBuildPayload_MangaImgTagFallback(t *testing.T) {
	rows := []chapterModel.ChapterContent{
		{ID: 1, Content: `<div><img src="https://cdn.example.com/x.jpg" alt=""><img src='https://cdn.example.com/y.jpg'></div>`},
	}
	p := BuildPayload(contentModel.TypeManga, rows)

	assert.Equal(t, []string{"https://cdn.example.com/x.jpg", "https://cdn.example.com/y.jpg"}, p.Pages)
}

func TestBuildPayload_MangaPerRowImages(t *testing.T) {
	// Bentuk baru menang atas blob: baris ber-ImageURL dipakai, urut page_order.
	rows := []chapterModel.ChapterContent{
		{ID: 1, PageOrder: intPtr(2), ImageURL: "https://cdn.example.com/p2.jpg"},
		{ID: 2, PageOrder: intPtr(1), ImageURL: "https://cdn.example.com/p1.jpg"},
		{ID: 3, Content: `["https://cdn.example.com/ignored.jpg"]`},
	}
	p := BuildPayload(contentModel.TypeManga, rows)

	assert.Equal(t, []string{"https://cdn.example.com/p1.jpg", "https://cdn.example.com/p2.jpg"}, p.Pages)
}

func TestBuildPayload_MangaUnparseableIsEmptyNotError(t *testing.T) {
	rows := []chapterModel.ChapterContent{
		{ID: 1, Content: `chỉ là chữ thường, không có gì để parse`},
	}
	p := BuildPayload(contentModel.TypeManga, rows)

	require.NotNil(t, p)
	assert.Equal(t, FormatPages, p.Format)
	assert.Nil(t, p.Pages)
}

func TestBuildPayload_NovelHTML(t *testing.T) {
	rows := []chapterModel.ChapterContent{
		{ID: 1, Content: "<p>đoạn một</p>"},
		{ID: 2, Content: "<p>đoạn hai</p>"},
	}
	p := BuildPayload(contentModel.TypeNovel, rows)

	assert.Equal(t, FormatHTML, p.Format)
	assert.Nil(t, p.Pages)
	assert.Equal(t, "<p>đoạn một</p>\n<p>đoạn hai</p>", p.HTML)
}

func TestBuildPayload_NovelLegacyPageMapJoined(t *testing.T) {
	rows := []chapterModel.ChapterContent{
		{ID: 1, Content: `{"2":"<p>hai</p>","1":"<p>một</p>"}`},
	}
	p := BuildPayload(contentModel.TypeNovel, rows)

	assert.Equal(t, "<p>một</p>\n<p>hai</p>", p.HTML)
}

func TestBuildPayload_FormatFollowsContentType(t *testing.T) {
	// Baris identik, tipe konten induk yang menentukan format.
	rows := []chapterModel.ChapterContent{{ID: 1, Content: `{"1":"isi"}`}}

	assert.Equal(t, FormatPages, BuildPayload(contentModel.TypeManga, rows).Format)
	assert.Equal(t, FormatHTML, BuildPayload(contentModel.TypeNovel, rows).Format)
}
