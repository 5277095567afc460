package dto

type CreateContentRequest struct {
	Title            string `json:"title" validate:"required,max=255"`
	AlternativeTitle string `json:"alternative_title" validate:"omitempty,max=255"`
	Description      string `json:"description"`
	CoverURL         string `json:"cover_url" validate:"omitempty,url"`

	Type   string `json:"type" validate:"required,oneof=manga novel"`
	Status string `json:"status" validate:"omitempty,oneof=ongoing completed hiatus"`

	AuthorID           *uint  `json:"author_id" validate:"omitempty,gt=0"`
	TranslationGroupID *uint  `json:"translation_group_id" validate:"omitempty,gt=0"`
	GenreIDs           []uint `json:"genre_ids" validate:"omitempty,dive,gt=0"`
}

// UpdateContentRequest: Type sengaja tidak bisa diubah — mengganti manga jadi
// novel akan membuat chapter lama tidak terbaca.
type UpdateContentRequest struct {
	Title            *string `json:"title" validate:"omitempty,max=255"`
	AlternativeTitle *string `json:"alternative_title" validate:"omitempty,max=255"`
	Description      *string `json:"description"`
	CoverURL         *string `json:"cover_url" validate:"omitempty,url"`

	Status *string `json:"status" validate:"omitempty,oneof=ongoing completed hiatus"`

	AuthorID           *uint   `json:"author_id" validate:"omitempty,gt=0"`
	TranslationGroupID *uint   `json:"translation_group_id" validate:"omitempty,gt=0"`
	GenreIDs           *[]uint `json:"genre_ids" validate:"omitempty,dive,gt=0"`
}
