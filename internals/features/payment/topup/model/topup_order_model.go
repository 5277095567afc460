package model

import (
	"time"

	"gorm.io/datatypes"
)

const (
	TopupStatusPending = "pending"
	TopupStatusPaid    = "paid"
	TopupStatusFailed  = "failed"
)

// TopupOrder adalah order isi-saldo via gateway. Saldo dikredit tepat satu
// kali: webhook hanya boleh mengkredit saat transisi pending → paid.
type TopupOrder struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"not null;index" json:"user_id"`

	// OrderID unik yang dikirim ke gateway (TOPUP-<uuid>).
	OrderID string `gorm:"type:varchar(100);not null;unique" json:"order_id"`

	// Amount = rupiah yang dibayar, CoinAmount = xu yang dikredit.
	Amount     int `gorm:"not null;check:amount > 0" json:"amount"`
	CoinAmount int `gorm:"not null;check:coin_amount > 0" json:"coin_amount"`

	Status       string `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	PaymentToken string `gorm:"type:text" json:"payment_token,omitempty"`

	// Payload notifikasi gateway mentah, disimpan untuk rekonsiliasi manual.
	GatewayPayload datatypes.JSON `gorm:"type:jsonb" json:"gateway_payload,omitempty"`

	PaidAt    *time.Time `json:"paid_at,omitempty"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (TopupOrder) TableName() string { return "topup_orders" }
