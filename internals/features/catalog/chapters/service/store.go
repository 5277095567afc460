package service

import (
	chapterModel "truyenhub_backend/internals/features/catalog/chapters/model"
	contentModel "truyenhub_backend/internals/features/catalog/contents/model"
	commentModel "truyenhub_backend/internals/features/community/comments/model"
)

// Store adalah kontrak penyimpanan yang dibutuhkan core chapter.
// Produksi memakai implementasi GORM/Postgres; test memakai memStore.
// Method pencarian mengembalikan ErrContentNotFound / ErrChapterNotFound /
// ErrUserNotFound dari package ini, bukan error driver mentah.
type Store interface {
	GetContent(id uint) (*contentModel.Content, error)
	GetContentBySlug(slug string) (*contentModel.Content, error)
	IncrementContentViews(id uint) error

	GetChapter(id uint) (*chapterModel.Chapter, error)
	// ListChapters mengembalikan semua chapter milik satu konten, urut
	// Number ascending.
	ListChapters(contentID uint) ([]chapterModel.Chapter, error)
	GetChapterContents(chapterID uint) ([]chapterModel.ChapterContent, error)
	IncrementChapterViews(id uint) error

	HasUnlock(userID, chapterID uint) (bool, error)
	// InsertUnlock mengandalkan unique index (user_id, chapter_id);
	// duplikat dikembalikan sebagai ErrAlreadyUnlocked.
	InsertUnlock(userID, chapterID uint) error

	// DebitBalance mengurangi saldo secara kondisional dalam satu statement
	// (balance >= amount), mengembalikan saldo baru. Saldo kurang →
	// *InsufficientFundsError.
	DebitBalance(userID uint, amount int) (int, error)
	CreditBalance(userID uint, amount int) error

	UpsertReadingHistory(userID, contentID, chapterID uint) error
	ListChapterComments(chapterID uint) ([]commentModel.Comment, error)
}
