package model

import "time"

// ReadingHistory di-upsert per (user, content): baris yang sama dipindah ke
// chapter terakhir yang dibaca, bukan menumpuk baris baru per bab.
type ReadingHistory struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	UserID    uint `gorm:"not null;uniqueIndex:idx_reading_histories_user_content" json:"user_id"`
	ContentID uint `gorm:"not null;uniqueIndex:idx_reading_histories_user_content" json:"content_id"`
	ChapterID uint `gorm:"not null" json:"chapter_id"`

	ReadAt time.Time `gorm:"autoUpdateTime" json:"read_at"`
}

func (ReadingHistory) TableName() string { return "reading_histories" }
