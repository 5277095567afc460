package dto

// CreateCommentRequest: tepat satu dari content_id / chapter_id harus terisi.
type CreateCommentRequest struct {
	ContentID *uint  `json:"content_id" validate:"omitempty,gt=0"`
	ChapterID *uint  `json:"chapter_id" validate:"omitempty,gt=0"`
	Body      string `json:"body" validate:"required,min=1,max=2000"`
}
