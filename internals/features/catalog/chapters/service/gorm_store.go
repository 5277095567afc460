package service

import (
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	chapterModel "truyenhub_backend/internals/features/catalog/chapters/model"
	contentModel "truyenhub_backend/internals/features/catalog/contents/model"
	commentModel "truyenhub_backend/internals/features/community/comments/model"
	historyModel "truyenhub_backend/internals/features/library/history/model"
	userModel "truyenhub_backend/internals/features/users/user/model"
)

// GormStore adalah implementasi Store di atas Postgres.
type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

func (s *GormStore) GetContent(id uint) (*contentModel.Content, error) {
	var content contentModel.Content
	err := s.DB.Preload("Author").Preload("TranslationGroup").Preload("Genres").
		First(&content, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrContentNotFound
	}
	if err != nil {
		return nil, err
	}
	return &content, nil
}

func (s *GormStore) GetContentBySlug(slug string) (*contentModel.Content, error) {
	var content contentModel.Content
	err := s.DB.Preload("Author").Preload("TranslationGroup").Preload("Genres").
		Where("slug = ?", slug).First(&content).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrContentNotFound
	}
	if err != nil {
		return nil, err
	}
	return &content, nil
}

func (s *GormStore) IncrementContentViews(id uint) error {
	return s.DB.Model(&contentModel.Content{}).Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
}

func (s *GormStore) GetChapter(id uint) (*chapterModel.Chapter, error) {
	var ch chapterModel.Chapter
	err := s.DB.First(&ch, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrChapterNotFound
	}
	if err != nil {
		return nil, err
	}
	return &ch, nil
}

func (s *GormStore) ListChapters(contentID uint) ([]chapterModel.Chapter, error) {
	var chapters []chapterModel.Chapter
	err := s.DB.Where("content_id = ?", contentID).
		Order("number ASC").Find(&chapters).Error
	return chapters, err
}

func (s *GormStore) GetChapterContents(chapterID uint) ([]chapterModel.ChapterContent, error) {
	var rows []chapterModel.ChapterContent
	err := s.DB.Where("chapter_id = ?", chapterID).
		Order("page_order ASC NULLS FIRST, id ASC").Find(&rows).Error
	return rows, err
}

func (s *GormStore) IncrementChapterViews(id uint) error {
	return s.DB.Model(&chapterModel.Chapter{}).Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
}

func (s *GormStore) HasUnlock(userID, chapterID uint) (bool, error) {
	var count int64
	err := s.DB.Model(&chapterModel.UnlockedChapter{}).
		Where("user_id = ? AND chapter_id = ?", userID, chapterID).
		Count(&count).Error
	return count > 0, err
}

func (s *GormStore) InsertUnlock(userID, chapterID uint) error {
	row := chapterModel.UnlockedChapter{UserID: userID, ChapterID: chapterID}
	err := s.DB.Create(&row).Error
	if err != nil && isDuplicateKey(err) {
		return ErrAlreadyUnlocked
	}
	return err
}

// DebitBalance: satu UPDATE kondisional, bukan read-then-write, supaya dua
// request unlock bersamaan tidak bisa sama-sama lolos cek saldo.
func (s *GormStore) DebitBalance(userID uint, amount int) (int, error) {
	res := s.DB.Model(&userModel.User{}).
		Where("id = ? AND balance >= ?", userID, amount).
		UpdateColumn("balance", gorm.Expr("balance - ?", amount))
	if res.Error != nil {
		return 0, res.Error
	}

	var u userModel.User
	if err := s.DB.Select("id", "balance").First(&u, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrUserNotFound
		}
		return 0, err
	}

	if res.RowsAffected == 0 {
		return 0, &InsufficientFundsError{Balance: u.Balance, Required: amount}
	}
	return u.Balance, nil
}

func (s *GormStore) CreditBalance(userID uint, amount int) error {
	res := s.DB.Model(&userModel.User{}).Where("id = ?", userID).
		UpdateColumn("balance", gorm.Expr("balance + ?", amount))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (s *GormStore) UpsertReadingHistory(userID, contentID, chapterID uint) error {
	row := historyModel.ReadingHistory{
		UserID:    userID,
		ContentID: contentID,
		ChapterID: chapterID,
	}
	return s.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "content_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"chapter_id", "read_at"}),
	}).Create(&row).Error
}

func (s *GormStore) ListChapterComments(chapterID uint) ([]commentModel.Comment, error) {
	var comments []commentModel.Comment
	err := s.DB.Preload("User").Where("chapter_id = ?", chapterID).
		Order("created_at DESC").Find(&comments).Error
	return comments, err
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// pgx tanpa TranslateError: cocokkan SQLSTATE 23505 dari pesan.
	return strings.Contains(err.Error(), "23505") ||
		strings.Contains(err.Error(), "duplicate key")
}
