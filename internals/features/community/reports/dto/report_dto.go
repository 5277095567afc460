package dto

type CreateReportRequest struct {
	ContentID uint   `json:"content_id" validate:"required,gt=0"`
	ChapterID *uint  `json:"chapter_id" validate:"omitempty,gt=0"`
	Reason    string `json:"reason" validate:"required,min=5,max=1000"`
}

type ResolveReportRequest struct {
	Status string `json:"status" validate:"required,oneof=resolved rejected"`
}
