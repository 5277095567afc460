package model

import (
	"time"

	"gorm.io/gorm"
)

// Tipe konten menentukan format isi chapter: manga = page-map gambar,
// novel = teks HTML. Tipe tidak diubah setelah konten punya chapter.
const (
	TypeManga = "manga"
	TypeNovel = "novel"
)

const (
	StatusOngoing   = "ongoing"
	StatusCompleted = "completed"
	StatusHiatus    = "hiatus"
)

func IsValidType(t string) bool {
	return t == TypeManga || t == TypeNovel
}

func IsValidStatus(s string) bool {
	return s == StatusOngoing || s == StatusCompleted || s == StatusHiatus
}

type Author struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:varchar(120);not null;unique" json:"name"`
	Bio  string `gorm:"type:text" json:"bio,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Author) TableName() string { return "authors" }

type TranslationGroup struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"type:varchar(120);not null;unique" json:"name"`
	Description string `gorm:"type:text" json:"description,omitempty"`
	Website     string `gorm:"type:text" json:"website,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (TranslationGroup) TableName() string { return "translation_groups" }

type Genre struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:varchar(60);not null;unique" json:"name"`
	Slug string `gorm:"type:varchar(80);not null;unique" json:"slug"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Genre) TableName() string { return "genres" }

// Content adalah satu judul (manga atau novel). Slug dipakai untuk resolusi
// by-title di URL publik.
type Content struct {
	ID               uint   `gorm:"primaryKey" json:"id"`
	Title            string `gorm:"type:varchar(255);not null" json:"title"`
	AlternativeTitle string `gorm:"type:varchar(255)" json:"alternative_title,omitempty"`
	Slug             string `gorm:"type:varchar(255);not null;unique" json:"slug"`
	Description      string `gorm:"type:text" json:"description,omitempty"`
	CoverURL         string `gorm:"type:text" json:"cover_url,omitempty"`

	Type   string `gorm:"type:varchar(10);not null" json:"type"`
	Status string `gorm:"type:varchar(20);not null;default:'ongoing'" json:"status"`
	Views  int64  `gorm:"not null;default:0" json:"views"`

	AuthorID           *uint             `json:"author_id,omitempty"`
	Author             *Author           `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	TranslationGroupID *uint             `json:"translation_group_id,omitempty"`
	TranslationGroup   *TranslationGroup `gorm:"foreignKey:TranslationGroupID" json:"translation_group,omitempty"`

	Genres []Genre `gorm:"many2many:content_genres" json:"genres,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Content) TableName() string { return "contents" }
