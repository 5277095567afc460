package model

import (
	"time"

	"gorm.io/gorm"

	userModel "truyenhub_backend/internals/features/users/user/model"
)

// Comment menempel ke content ATAU chapter (salah satu terisi).
type Comment struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"not null;index" json:"user_id"`

	ContentID *uint `gorm:"index" json:"content_id,omitempty"`
	ChapterID *uint `gorm:"index" json:"chapter_id,omitempty"`

	Body string `gorm:"type:text;not null" json:"body"`

	User *userModel.User `gorm:"foreignKey:UserID" json:"user,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Comment) TableName() string { return "comments" }
