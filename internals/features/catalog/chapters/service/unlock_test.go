package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	chapterModel "truyenhub_backend/internals/features/catalog/chapters/model"
)

func TestUnlock_DebitsAndRecordsLedger(t *testing.T) {
	m := newMemStore()
	seedNovel(m)
	m.balances[1] = 1000
	svc := NewChapterService(m)

	newBalance, err := svc.Unlock(1, 12)
	require.NoError(t, err)

	assert.Equal(t, 500, newBalance)
	assert.Equal(t, 500, m.balances[1])
	assert.True(t, m.unlocks[[2]uint{1, 12}])
}

func TestUnlock_ThenReadShowsContent(t *testing.T) {
	m := newMemStore()
	content, chs := seedNovel(m)
	m.balances[1] = 1000
	svc := NewChapterService(m)

	// Sebelum beli: tertutup.
	res, err := svc.ReadChapter(content, chs[1], uintPtr(1))
	require.NoError(t, err)
	assert.False(t, res.IsUnlocked)
	assert.Nil(t, res.Content)

	_, err = svc.Unlock(1, 12)
	require.NoError(t, err)

	// Sesudah beli: terbuka, saldo terpotong sekali.
	res, err = svc.ReadChapter(content, chs[1], uintPtr(1))
	require.NoError(t, err)
	assert.True(t, res.IsUnlocked)
	require.NotNil(t, res.Content)
	assert.Equal(t, 500, m.balances[1])

	// User lain tetap tertutup: ledger per user.
	m.balances[2] = 0
	res, err = svc.ReadChapter(content, chs[1], uintPtr(2))
	require.NoError(t, err)
	assert.False(t, res.IsUnlocked)
}

func TestUnlock_InsufficientBalance(t *testing.T) {
	m := newMemStore()
	seedNovel(m)
	m.balances[1] = 499
	svc := NewChapterService(m)

	_, err := svc.Unlock(1, 12)
	require.Error(t, err)

	ife, ok := AsInsufficientFunds(err)
	require.True(t, ok)
	assert.Equal(t, 499, ife.Balance)
	assert.Equal(t, 500, ife.Required)

	// Saldo tidak disentuh, ledger kosong.
	assert.Equal(t, 499, m.balances[1])
	assert.False(t, m.unlocks[[2]uint{1, 12}])
}

func TestUnlock_AlreadyUnlockedDoesNotDebitTwice(t *testing.T) {
	m := newMemStore()
	seedNovel(m)
	m.balances[1] = 1000
	svc := NewChapterService(m)

	_, err := svc.Unlock(1, 12)
	require.NoError(t, err)

	_, err = svc.Unlock(1, 12)
	assert.ErrorIs(t, err, ErrAlreadyUnlocked)
	assert.Equal(t, 500, m.balances[1])
}

func TestUnlock_NotPurchasable(t *testing.T) {
	m := newMemStore()
	seedNovel(m)
	m.addChapter(chapterModel.Chapter{ID: 14, ContentID: 7, Number: 4, IsLocked: true, UnlockPrice: intPtr(0)})
	m.balances[1] = 1000
	svc := NewChapterService(m)

	// Chapter gratis.
	_, err := svc.Unlock(1, 11)
	assert.ErrorIs(t, err, ErrNotPurchasable)

	// Terkunci tapi harga tidak positif.
	_, err = svc.Unlock(1, 14)
	assert.ErrorIs(t, err, ErrNotPurchasable)

	assert.Equal(t, 1000, m.balances[1])
}

func TestUnlock_ChapterNotFound(t *testing.T) {
	m := newMemStore()
	m.balances[1] = 1000
	svc := NewChapterService(m)

	_, err := svc.Unlock(1, 999)
	assert.ErrorIs(t, err, ErrChapterNotFound)
	assert.Equal(t, 1000, m.balances[1])
}

func TestUnlock_LedgerInsertFailureRefundsDebit(t *testing.T) {
	m := newMemStore()
	seedNovel(m)
	m.balances[1] = 1000
	m.insertUnlockErr = errors.New("connection reset")
	svc := NewChapterService(m)

	_, err := svc.Unlock(1, 12)
	require.Error(t, err)
	assert.EqualError(t, err, "connection reset")

	// Debit dikembalikan, tidak ada baris ledger.
	assert.Equal(t, 1000, m.balances[1])
	assert.False(t, m.unlocks[[2]uint{1, 12}])
}

func TestUnlock_LostRaceReportsConflictAfterRefund(t *testing.T) {
	m := newMemStore()
	seedNovel(m)
	m.balances[1] = 1000
	// Request kembar menang duluan: insert kena unique index.
	m.insertUnlockErr = ErrAlreadyUnlocked
	svc := NewChapterService(m)

	_, err := svc.Unlock(1, 12)
	assert.ErrorIs(t, err, ErrAlreadyUnlocked)
	assert.Equal(t, 1000, m.balances[1])
}

func TestUnlock_RefundFailureSurfacesCreditError(t *testing.T) {
	m := newMemStore()
	seedNovel(m)
	m.balances[1] = 1000
	m.insertUnlockErr = errors.New("connection reset")
	m.creditErr = errors.New("credit failed")
	svc := NewChapterService(m)

	_, err := svc.Unlock(1, 12)
	require.Error(t, err)
	assert.EqualError(t, err, "credit failed")
}
