package model

import (
	"time"

	"gorm.io/gorm"
)

// User menyimpan akun pembaca. Balance adalah saldo "xu" (koin internal),
// integer murni — tidak pernah pecahan.
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"type:varchar(50);not null;unique" json:"username"`
	Email    string `gorm:"type:varchar(100);not null;unique" json:"email"`
	Password string `gorm:"type:text;not null" json:"-"`

	Balance  int    `gorm:"not null;default:0;check:balance >= 0" json:"balance"`
	Role     string `gorm:"type:varchar(20);not null;default:'user'" json:"role"`
	IsActive bool   `gorm:"not null;default:true" json:"is_active"`

	AvatarURL string `gorm:"type:text" json:"avatar_url,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string {
	return "users"
}
