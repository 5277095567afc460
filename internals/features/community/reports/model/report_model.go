package model

import "time"

const (
	ReportStatusOpen     = "open"
	ReportStatusResolved = "resolved"
	ReportStatusRejected = "rejected"
)

// Report adalah laporan pembaca atas sebuah konten/chapter (broken image,
// salah urutan halaman, dll). Admin yang menutup statusnya.
type Report struct {
	ID        uint  `gorm:"primaryKey" json:"id"`
	UserID    uint  `gorm:"not null;index" json:"user_id"`
	ContentID uint  `gorm:"not null;index" json:"content_id"`
	ChapterID *uint `json:"chapter_id,omitempty"`

	Reason string `gorm:"type:text;not null" json:"reason"`
	Status string `gorm:"type:varchar(20);not null;default:'open'" json:"status"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Report) TableName() string { return "reports" }
