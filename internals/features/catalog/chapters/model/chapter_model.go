package model

import (
	"time"
)

// Chapter adalah satu bab dari sebuah Content. Number unik per konten secara
// konvensi (bukan constraint), mengikuti data lama.
type Chapter struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	ContentID uint   `gorm:"not null;index" json:"content_id"`
	Number    int    `gorm:"not null" json:"number"`
	Title     string `gorm:"type:varchar(255)" json:"title,omitempty"`

	// UnlockPrice wajib positif saat IsLocked; di-NULL-kan server-side saat
	// chapter dibuka gratis lagi.
	IsLocked    bool  `gorm:"not null;default:false" json:"is_locked"`
	UnlockPrice *int  `json:"unlock_price,omitempty"`
	Views       int64 `gorm:"not null;default:0" json:"views"`

	Contents []ChapterContent `gorm:"foreignKey:ChapterID;constraint:OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Chapter) TableName() string { return "chapters" }

// ChapterContent menyimpan isi bab. Untuk novel: Content = blob HTML (atau
// page-map JSON lama). Untuk manga: Content = JSON map {"1": url, ...} ATAU
// baris per halaman via PageOrder+ImageURL. Dua bentuk lama ini sama-sama
// masih ada di data produksi, parsing-nya di service/content_parse.go.
type ChapterContent struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	ChapterID uint `gorm:"not null;index" json:"chapter_id"`

	Content   string `gorm:"type:text" json:"content,omitempty"`
	PageOrder *int   `json:"page_order,omitempty"`
	ImageURL  string `gorm:"type:text" json:"image_url,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (ChapterContent) TableName() string { return "chapter_contents" }

// UnlockedChapter adalah ledger pembelian: satu baris = user sudah membayar
// chapter itu, permanen, tanpa expiry. Keberadaan baris adalah satu-satunya
// otoritas "sudah dibeli". Unique index (user_id, chapter_id) dibuat di
// migrasi supaya double-unlock mustahil walau race.
type UnlockedChapter struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null;index" json:"user_id"`
	ChapterID  uint      `gorm:"not null;index" json:"chapter_id"`
	UnlockedAt time.Time `gorm:"autoCreateTime" json:"unlocked_at"`
}

func (UnlockedChapter) TableName() string { return "unlocked_chapters" }
