package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveByID(t *testing.T) {
	m := newMemStore()
	seedNovel(m)
	svc := NewChapterService(m)

	content, ch, err := svc.ResolveByID(12)
	require.NoError(t, err)
	assert.Equal(t, uint(7), content.ID)
	assert.Equal(t, 2, ch.Number)

	_, _, err = svc.ResolveByID(999)
	assert.ErrorIs(t, err, ErrChapterNotFound)
}

func TestResolveByNumber(t *testing.T) {
	m := newMemStore()
	seedNovel(m)
	svc := NewChapterService(m)

	content, ch, err := svc.ResolveByNumber(7, 3)
	require.NoError(t, err)
	assert.Equal(t, uint(7), content.ID)
	assert.Equal(t, uint(13), ch.ID)

	// Konten tidak ada vs nomor tidak ada: error-nya beda.
	_, _, err = svc.ResolveByNumber(999, 1)
	assert.ErrorIs(t, err, ErrContentNotFound)

	_, _, err = svc.ResolveByNumber(7, 99)
	assert.ErrorIs(t, err, ErrChapterNotFound)
}

func TestResolveBySlug(t *testing.T) {
	m := newMemStore()
	seedNovel(m)
	svc := NewChapterService(m)

	content, ch, err := svc.ResolveBySlug("kiem-lai", 1)
	require.NoError(t, err)
	assert.Equal(t, "Kiếm Lai", content.Title)
	assert.Equal(t, uint(11), ch.ID)

	_, _, err = svc.ResolveBySlug("khong-ton-tai", 1)
	assert.ErrorIs(t, err, ErrContentNotFound)

	_, _, err = svc.ResolveBySlug("kiem-lai", 99)
	assert.ErrorIs(t, err, ErrChapterNotFound)
}
