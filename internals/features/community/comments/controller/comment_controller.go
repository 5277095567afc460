// 📁 controller/comment_controller.go
package controller

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"truyenhub_backend/internals/features/community/comments/dto"
	"truyenhub_backend/internals/features/community/comments/model"
	helper "truyenhub_backend/internals/helpers"
)

type CommentController struct {
	DB *gorm.DB
}

func NewCommentController(db *gorm.DB) *CommentController {
	return &CommentController{DB: db}
}

// ListByChapter — GET /api/chapters/:id/comments
func (ctrl *CommentController) ListByChapter(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid chapter id")
	}

	var comments []model.Comment
	if err := ctrl.DB.Preload("User").
		Where("chapter_id = ?", uint(id)).
		Order("created_at DESC").Find(&comments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	return helper.JsonOK(c, "OK", comments)
}

// ListByContent — GET /api/content/:id/comments
func (ctrl *CommentController) ListByContent(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid content id")
	}

	var comments []model.Comment
	if err := ctrl.DB.Preload("User").
		Where("content_id = ?", uint(id)).
		Order("created_at DESC").Find(&comments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	return helper.JsonOK(c, "OK", comments)
}

// Create — POST /api/comments (wajib login)
func (ctrl *CommentController) Create(c *fiber.Ctx) error {
	userID, ok := helper.GetUserID(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var body dto.CreateCommentRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := validator.New().Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}
	if (body.ContentID == nil) == (body.ChapterID == nil) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Isi salah satu: content_id atau chapter_id")
	}

	comment := model.Comment{
		UserID:    userID,
		ContentID: body.ContentID,
		ChapterID: body.ChapterID,
		Body:      body.Body,
	}
	if err := ctrl.DB.Create(&comment).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan komentar")
	}
	return helper.JsonCreated(c, "Comment created", comment)
}

// Delete — DELETE /api/comments/:id (pemilik atau admin)
func (ctrl *CommentController) Delete(c *fiber.Ctx) error {
	userID, ok := helper.GetUserID(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid comment id")
	}

	var comment model.Comment
	if err := ctrl.DB.First(&comment, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Comment not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	if comment.UserID != userID && !helper.IsAdmin(c) {
		return helper.JsonError(c, fiber.StatusForbidden, "Bukan komentar Anda")
	}

	if err := ctrl.DB.Delete(&comment).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hapus komentar")
	}
	return helper.JsonDeleted(c, "Comment deleted", nil)
}
