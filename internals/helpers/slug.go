// file: internals/helpers/slug.go
package helper

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/unicode/norm"
	"gorm.io/gorm"
)

const DefaultSlugMaxLen = 160

var (
	nonAlnum  = regexp.MustCompile(`[^a-z0-9]+`)
	multiDash = regexp.MustCompile(`-{2,}`)
	// đ tidak punya dekomposisi NFD, ditangani terpisah.
	dReplacer = strings.NewReplacer("đ", "d")
)

// GenerateSlug menormalkan judul jadi slug URL [a-z0-9-]. Diakritik di-fold
// via dekomposisi NFD (é → e, ấ → a, dll) supaya judul non-ASCII apa pun
// tetap menghasilkan slug yang terbaca, bukan dash.
func GenerateSlug(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = dReplacer.Replace(s)

	var buf []rune
	for _, r := range norm.NFD.String(s) {
		if unicode.Is(unicode.Mn, r) { // mark nonspacing
			continue
		}
		buf = append(buf, r)
	}
	s = string(buf)

	s = nonAlnum.ReplaceAllString(s, "-")
	s = multiDash.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if len(s) > DefaultSlugMaxLen {
		s = strings.Trim(s[:DefaultSlugMaxLen], "-")
	}
	return s
}

// SlugExistsFn melaporkan apakah kandidat slug sudah terpakai.
type SlugExistsFn func(slug string) (bool, error)

// EnsureUniqueSlug memastikan slug unik: kalau base bentrok, coba suffix
// -2, -3, ... lalu fallback suffix acak berbasis waktu. Kolom slug punya
// unique constraint, jadi judul kembar harus dapat slug berbeda, bukan 500.
func EnsureUniqueSlug(baseSlug string, exists SlugExistsFn) (string, error) {
	slug := baseSlug
	for i := 0; i < 25; i++ {
		taken, err := exists(slug)
		if err != nil {
			return "", err
		}
		if !taken {
			return slug, nil
		}
		suffix := fmt.Sprintf("-%d", i+2)
		slug = trimForSuffix(baseSlug, suffix, DefaultSlugMaxLen) + suffix
	}

	r := fmt.Sprintf("-%x", time.Now().UnixNano()&0xffff)
	return trimForSuffix(baseSlug, r, DefaultSlugMaxLen) + r, nil
}

// SlugTaken membuat SlugExistsFn untuk satu tabel/kolom (case-insensitive).
// scopeFn boleh nil; dipakai mis. mengecualikan baris sendiri saat update.
func SlugTaken(db *gorm.DB, table, column string, scopeFn func(*gorm.DB) *gorm.DB) SlugExistsFn {
	return func(slug string) (bool, error) {
		q := db.Table(table)
		if scopeFn != nil {
			q = scopeFn(q)
		}
		var count int64
		err := q.Where(fmt.Sprintf("LOWER(%s) = ?", column), strings.ToLower(slug)).
			Count(&count).Error
		return count > 0, err
	}
}

// trimForSuffix memotong base agar base+suffix tetap <= maxLen.
func trimForSuffix(base, suffix string, maxLen int) string {
	keep := maxLen - len(suffix)
	if keep < 1 {
		keep = 1
	}
	if len(base) > keep {
		base = base[:keep]
	}
	out := strings.Trim(base, "-")
	if out == "" {
		out = "x"
	}
	return out
}
