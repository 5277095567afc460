package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	chapterModel "truyenhub_backend/internals/features/catalog/chapters/model"
	contentModel "truyenhub_backend/internals/features/catalog/contents/model"
)

// Alur lengkap pembelian chapter manga: lihat terkunci → beli → baca.
func TestMangaUnlockFlow(t *testing.T) {
	m := newMemStore()
	content := m.addContent(contentModel.Content{ID: 7, Title: "One Punch", Slug: "one-punch", Type: contentModel.TypeManga})
	m.addChapter(
		chapterModel.Chapter{ID: 21, ContentID: 7, Number: 1},
		chapterModel.ChapterContent{ID: 1, ChapterID: 21, Content: `{"1":"https://cdn.example.com/c1p1.jpg"}`},
	)
	ch2 := m.addChapter(
		chapterModel.Chapter{ID: 22, ContentID: 7, Number: 2, IsLocked: true, UnlockPrice: intPtr(500)},
		chapterModel.ChapterContent{ID: 2, ChapterID: 22, Content: `{"1":"https://cdn.example.com/c2p1.jpg","2":"https://cdn.example.com/c2p2.jpg"}`},
	)
	m.balances[3] = 1000
	svc := NewChapterService(m)

	// Anonim lihat chapter terkunci: metadata + harga saja.
	res, err := svc.ReadChapter(content, ch2, nil)
	require.NoError(t, err)
	assert.False(t, res.IsUnlocked)
	assert.Nil(t, res.Content)
	require.NotNil(t, res.Chapter.UnlockPrice)
	assert.Equal(t, 500, *res.Chapter.UnlockPrice)

	// User 3 beli: 1000 - 500.
	newBalance, err := svc.Unlock(3, 22)
	require.NoError(t, err)
	assert.Equal(t, 500, newBalance)

	// Baca ulang: terbuka, halaman terurut.
	res, err = svc.ReadChapter(content, ch2, uintPtr(3))
	require.NoError(t, err)
	assert.True(t, res.IsUnlocked)
	require.NotNil(t, res.Content)
	assert.Equal(t, FormatPages, res.Content.Format)
	assert.Equal(t, []string{
		"https://cdn.example.com/c2p1.jpg",
		"https://cdn.example.com/c2p2.jpg",
	}, res.Content.Pages)
}
