package helper

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSlug(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Kiếm Lai", "kiem-lai"},
		{"Đấu Phá Thương Khung", "dau-pha-thuong-khung"},
		{"One Punch Man", "one-punch-man"},
		{"  Trùng   Sinh!!!  ", "trung-sinh"},
		{"Tập 1: Khởi Đầu (Phần 2)", "tap-1-khoi-dau-phan-2"},
		{"---", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, GenerateSlug(tc.in), "input: %q", tc.in)
	}
}

// Folding harus jalan untuk diakritik apa pun, bukan cuma huruf Vietnam —
// judul terjemahan sering membawa nama Barat/Jepang beraksen, dan slug
// ber-dash merusak resolusi by-title.
func TestGenerateSlug_FoldsAnyDiacritics(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Crème Brûlée", "creme-brulee"},
		{"Über Schöne Märchen", "uber-schone-marchen"},
		{"El Niño y el Dragón", "el-nino-y-el-dragon"},
		{"Pokémon: Shōnen Saga", "pokemon-shonen-saga"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, GenerateSlug(tc.in), "input: %q", tc.in)
	}
}

func TestGenerateSlug_Truncates(t *testing.T) {
	long := strings.Repeat("truyen ", 50)
	got := GenerateSlug(long)

	assert.LessOrEqual(t, len(got), DefaultSlugMaxLen)
	assert.False(t, strings.HasSuffix(got, "-"))
}

func TestEnsureUniqueSlug(t *testing.T) {
	taken := map[string]bool{}
	exists := func(slug string) (bool, error) { return taken[slug], nil }

	// Base bebas: dipakai apa adanya.
	got, err := EnsureUniqueSlug("kiem-lai", exists)
	require.NoError(t, err)
	assert.Equal(t, "kiem-lai", got)

	// Bentrok sekali: suffix -2; dua kali: -3.
	taken["kiem-lai"] = true
	got, err = EnsureUniqueSlug("kiem-lai", exists)
	require.NoError(t, err)
	assert.Equal(t, "kiem-lai-2", got)

	taken["kiem-lai-2"] = true
	got, err = EnsureUniqueSlug("kiem-lai", exists)
	require.NoError(t, err)
	assert.Equal(t, "kiem-lai-3", got)
}

func TestEnsureUniqueSlug_RespectsMaxLenWithSuffix(t *testing.T) {
	base := strings.Repeat("a", DefaultSlugMaxLen)
	taken := map[string]bool{base: true}
	exists := func(slug string) (bool, error) { return taken[slug], nil }

	got, err := EnsureUniqueSlug(base, exists)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(got), DefaultSlugMaxLen)
	assert.True(t, strings.HasSuffix(got, "-2"))
}
