package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	PlacementHome    = "home"
	PlacementReader  = "reader"
	PlacementSidebar = "sidebar"
)

func IsValidPlacement(p string) bool {
	return p == PlacementHome || p == PlacementReader || p == PlacementSidebar
}

// Advertisement tampil bila aktif dan berada dalam rentang start/end (nil =
// tanpa batas di sisi itu).
type Advertisement struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Title     string `gorm:"type:varchar(255);not null" json:"title"`
	ImageURL  string `gorm:"type:text;not null" json:"image_url"`
	TargetURL string `gorm:"type:text;not null" json:"target_url"`
	Placement string `gorm:"type:varchar(20);not null;index" json:"placement"`

	IsActive bool       `gorm:"not null;default:true" json:"is_active"`
	StartsAt *time.Time `json:"starts_at,omitempty"`
	EndsAt   *time.Time `json:"ends_at,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Advertisement) TableName() string { return "advertisements" }
