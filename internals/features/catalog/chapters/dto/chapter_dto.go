package dto

// CreateChapterRequest dipakai admin untuk membuat bab baru.
// Number opsional: kosong = max(nomor yang ada)+1, atau 1 kalau belum ada.
// Pages untuk manga, HTML untuk novel — mengikuti tipe konten induk.
type CreateChapterRequest struct {
	ContentID uint   `json:"content_id" validate:"required,gt=0"`
	Number    *int   `json:"number" validate:"omitempty,gt=0"`
	Title     string `json:"title" validate:"omitempty,max=255"`

	IsLocked    bool `json:"is_locked"`
	UnlockPrice *int `json:"unlock_price" validate:"omitempty,gt=0"`

	Pages []string `json:"pages" validate:"omitempty,dive,url"`
	HTML  string   `json:"html"`
}

type UpdateChapterRequest struct {
	Number *int    `json:"number" validate:"omitempty,gt=0"`
	Title  *string `json:"title" validate:"omitempty,max=255"`

	Pages *[]string `json:"pages" validate:"omitempty,dive,url"`
	HTML  *string   `json:"html"`
}

// ToggleLockRequest: is_locked=true wajib bawa harga positif; is_locked=false
// membuat unlock_price di-NULL-kan server-side.
type ToggleLockRequest struct {
	IsLocked    bool `json:"is_locked"`
	UnlockPrice *int `json:"unlock_price" validate:"omitempty,gt=0"`
}
