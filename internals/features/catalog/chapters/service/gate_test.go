package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	chapterModel "truyenhub_backend/internals/features/catalog/chapters/model"
	contentModel "truyenhub_backend/internals/features/catalog/contents/model"
	commentModel "truyenhub_backend/internals/features/community/comments/model"
)

func intPtr(n int) *int { return &n }

func uintPtr(n uint) *uint { return &n }

// Fixture standar: satu novel dengan tiga chapter, nomor 2 terkunci.
func seedNovel(m *memStore) (*contentModel.Content, []*chapterModel.Chapter) {
	content := m.addContent(contentModel.Content{ID: 7, Title: "Kiếm Lai", Slug: "kiem-lai", Type: contentModel.TypeNovel})
	c1 := m.addChapter(
		chapterModel.Chapter{ID: 11, ContentID: 7, Number: 1},
		chapterModel.ChapterContent{ID: 1, ChapterID: 11, Content: "<p>mở đầu</p>"},
	)
	c2 := m.addChapter(
		chapterModel.Chapter{ID: 12, ContentID: 7, Number: 2, IsLocked: true, UnlockPrice: intPtr(500)},
		chapterModel.ChapterContent{ID: 2, ChapterID: 12, Content: "<p>bí mật</p>"},
	)
	c3 := m.addChapter(
		chapterModel.Chapter{ID: 13, ContentID: 7, Number: 3},
		chapterModel.ChapterContent{ID: 3, ChapterID: 13, Content: "<p>kết</p>"},
	)
	return content, []*chapterModel.Chapter{c1, c2, c3}
}

func TestReadChapter_FreeChapterAnonymous(t *testing.T) {
	m := newMemStore()
	content, chs := seedNovel(m)
	svc := NewChapterService(m)

	res, err := svc.ReadChapter(content, chs[0], nil)
	require.NoError(t, err)

	assert.True(t, res.IsUnlocked)
	require.NotNil(t, res.Content)
	assert.Equal(t, FormatHTML, res.Content.Format)
	assert.Equal(t, "<p>mở đầu</p>", res.Content.HTML)
	assert.Equal(t, int64(1), m.chapterViews[11])

	// Nomor 1 adalah chapter pertama: prev nil, next nomor 2.
	assert.Nil(t, res.Prev)
	require.NotNil(t, res.Next)
	assert.Equal(t, uint(12), res.Next.ID)
	assert.Equal(t, 2, res.Next.Number)
}

func TestReadChapter_LockedWithoutUnlockHidesEverything(t *testing.T) {
	m := newMemStore()
	content, chs := seedNovel(m)
	m.balances[1] = 1000
	svc := NewChapterService(m)

	for _, userID := range []*uint{nil, uintPtr(1)} {
		res, err := svc.ReadChapter(content, chs[1], userID)
		require.NoError(t, err)

		assert.False(t, res.IsUnlocked)
		assert.Nil(t, res.Content)
		assert.Nil(t, res.Prev)
		assert.Nil(t, res.Next)
		assert.Nil(t, res.Comments)

		// Metadata + harga tetap kelihatan untuk prompt beli.
		require.NotNil(t, res.Chapter)
		require.NotNil(t, res.Chapter.UnlockPrice)
		assert.Equal(t, 500, *res.Chapter.UnlockPrice)
	}

	// Fetch terkunci tidak menaikkan view dan tidak menyentuh history.
	assert.Equal(t, int64(0), m.chapterViews[12])
	assert.Empty(t, m.history)
}

func TestReadChapter_UnlockedShowsContentAndRecordsHistory(t *testing.T) {
	m := newMemStore()
	content, chs := seedNovel(m)
	m.unlocks[[2]uint{1, 12}] = true
	m.comments[12] = []commentModel.Comment{{ID: 1, UserID: 9, ChapterID: uintPtr(12), Body: "hay quá"}}
	svc := NewChapterService(m)

	res, err := svc.ReadChapter(content, chs[1], uintPtr(1))
	require.NoError(t, err)

	assert.True(t, res.IsUnlocked)
	require.NotNil(t, res.Content)
	assert.Equal(t, "<p>bí mật</p>", res.Content.HTML)
	assert.Len(t, res.Comments, 1)

	assert.Equal(t, int64(1), m.chapterViews[12])
	assert.Equal(t, uint(12), m.history[[2]uint{1, 7}])

	// Nomor 2 di tengah: dua tetangga.
	require.NotNil(t, res.Prev)
	require.NotNil(t, res.Next)
	assert.Equal(t, 1, res.Prev.Number)
	assert.Equal(t, 3, res.Next.Number)
}

func TestReadChapter_ViewsIncrementPerFetch(t *testing.T) {
	m := newMemStore()
	content, chs := seedNovel(m)
	svc := NewChapterService(m)

	for i := 0; i < 3; i++ {
		_, err := svc.ReadChapter(content, chs[0], nil)
		require.NoError(t, err)
	}
	assert.Equal(t, int64(3), m.chapterViews[11])
}

func TestReadChapter_LastChapterHasNoNext(t *testing.T) {
	m := newMemStore()
	content, chs := seedNovel(m)
	svc := NewChapterService(m)

	res, err := svc.ReadChapter(content, chs[2], nil)
	require.NoError(t, err)

	require.NotNil(t, res.Prev)
	assert.Equal(t, 2, res.Prev.Number)
	assert.Nil(t, res.Next)
}

func TestReadChapter_HistoryFollowsLatestRead(t *testing.T) {
	m := newMemStore()
	content, chs := seedNovel(m)
	svc := NewChapterService(m)

	_, err := svc.ReadChapter(content, chs[0], uintPtr(5))
	require.NoError(t, err)
	assert.Equal(t, uint(11), m.history[[2]uint{5, 7}])

	// Satu baris per (user, konten): baca chapter lain menimpa, bukan nambah.
	_, err = svc.ReadChapter(content, chs[2], uintPtr(5))
	require.NoError(t, err)
	assert.Equal(t, uint(13), m.history[[2]uint{5, 7}])
	assert.Len(t, m.history, 1)
}
