package dto

import "time"

type AdvertisementRequest struct {
	Title     string `json:"title" validate:"required,max=255"`
	ImageURL  string `json:"image_url" validate:"required,url"`
	TargetURL string `json:"target_url" validate:"required,url"`
	Placement string `json:"placement" validate:"required,oneof=home reader sidebar"`

	IsActive bool       `json:"is_active"`
	StartsAt *time.Time `json:"starts_at"`
	EndsAt   *time.Time `json:"ends_at"`
}
