// 📁 controller/chapter_controller.go
package controller

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"truyenhub_backend/internals/features/catalog/chapters/dto"
	"truyenhub_backend/internals/features/catalog/chapters/model"
	"truyenhub_backend/internals/features/catalog/chapters/service"
	contentModel "truyenhub_backend/internals/features/catalog/contents/model"
	helper "truyenhub_backend/internals/helpers"
)

type ChapterController struct {
	DB      *gorm.DB
	Service *service.ChapterService
}

func NewChapterController(db *gorm.DB) *ChapterController {
	return &ChapterController{
		DB:      db,
		Service: service.NewChapterService(service.NewGormStore(db)),
	}
}

// ============================================================
// PUBLIC / OPTIONAL JWT — access gate
// ============================================================

// GetChapter — GET /api/chapters/:id (mode 1 + gate)
func (ctrl *ChapterController) GetChapter(c *fiber.Ctx) error {
	chapterID, err := parseUintParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid chapter id")
	}

	content, ch, err := ctrl.Service.ResolveByID(chapterID)
	if err != nil {
		return mapServiceError(c, err)
	}
	return ctrl.readChapter(c, content, ch)
}

// GetChapterByNumber — GET /api/content/:contentId/chapter-by-number/:n (mode 2 + gate)
func (ctrl *ChapterController) GetChapterByNumber(c *fiber.Ctx) error {
	contentID, err := parseUintParam(c, "contentId")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid content id")
	}
	number, err := strconv.Atoi(c.Params("n"))
	if err != nil || number <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid chapter number")
	}

	content, ch, err := ctrl.Service.ResolveByNumber(contentID, number)
	if err != nil {
		return mapServiceError(c, err)
	}
	return ctrl.readChapter(c, content, ch)
}

// GetChapterBySlug — GET /api/content/by-title/:title/chapter/:n (mode 3 + gate)
func (ctrl *ChapterController) GetChapterBySlug(c *fiber.Ctx) error {
	slug := c.Params("title")
	number, err := strconv.Atoi(c.Params("n"))
	if err != nil || number <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid chapter number")
	}

	content, ch, err := ctrl.Service.ResolveBySlug(slug, number)
	if err != nil {
		return mapServiceError(c, err)
	}
	return ctrl.readChapter(c, content, ch)
}

func (ctrl *ChapterController) readChapter(c *fiber.Ctx, content *contentModel.Content, ch *model.Chapter) error {
	var userID *uint
	if id, ok := helper.GetUserID(c); ok {
		userID = &id
	}

	result, err := ctrl.Service.ReadChapter(content, ch, userID)
	if err != nil {
		return mapServiceError(c, err)
	}
	return helper.JsonOK(c, "OK", result)
}

// ============================================================
// AUTH — unlock
// ============================================================

// Unlock — POST /api/chapters/:id/unlock
func (ctrl *ChapterController) Unlock(c *fiber.Ctx) error {
	userID, ok := helper.GetUserID(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	chapterID, err := parseUintParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid chapter id")
	}

	newBalance, err := ctrl.Service.Unlock(userID, chapterID)
	if err != nil {
		return mapServiceError(c, err)
	}

	return helper.JsonOK(c, "Chapter unlocked", fiber.Map{
		"new_balance": newBalance,
	})
}

// ============================================================
// PUBLIC — list
// ============================================================

// ListByContent — GET /api/content/:contentId/chapters (urut number ascending)
func (ctrl *ChapterController) ListByContent(c *fiber.Ctx) error {
	contentID, err := parseUintParam(c, "contentId")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid content id")
	}

	var count int64
	if err := ctrl.DB.Model(&contentModel.Content{}).Where("id = ?", contentID).Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	if count == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Content not found")
	}

	var chapters []model.Chapter
	if err := ctrl.DB.Where("content_id = ?", contentID).
		Order("number ASC").Find(&chapters).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	return helper.JsonOK(c, "OK", chapters)
}

// ============================================================
// ADMIN — CRUD + lock toggle
// ============================================================

// Create — POST /api/chapters
func (ctrl *ChapterController) Create(c *fiber.Ctx) error {
	var body dto.CreateChapterRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := validator.New().Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}
	if body.IsLocked && (body.UnlockPrice == nil || *body.UnlockPrice <= 0) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Locked chapter butuh unlock_price positif")
	}

	var content contentModel.Content
	if err := ctrl.DB.First(&content, body.ContentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Content not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	number := 0
	if body.Number != nil {
		number = *body.Number
	}

	var chapter model.Chapter
	err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if number == 0 {
			// Default: max(nomor yang ada)+1, atau 1 kalau belum ada bab.
			var maxNumber int
			if err := tx.Model(&model.Chapter{}).
				Where("content_id = ?", content.ID).
				Select("COALESCE(MAX(number), 0)").Scan(&maxNumber).Error; err != nil {
				return err
			}
			number = maxNumber + 1
		}

		chapter = model.Chapter{
			ContentID:   content.ID,
			Number:      number,
			Title:       body.Title,
			IsLocked:    body.IsLocked,
			UnlockPrice: body.UnlockPrice,
		}
		if !chapter.IsLocked {
			chapter.UnlockPrice = nil
		}
		if err := tx.Create(&chapter).Error; err != nil {
			return err
		}
		return saveChapterContents(tx, chapter.ID, content.Type, body.Pages, body.HTML)
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan chapter")
	}

	return helper.JsonCreated(c, "Chapter created", chapter)
}

// Update — PUT /api/chapters/:id
func (ctrl *ChapterController) Update(c *fiber.Ctx) error {
	chapterID, err := parseUintParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid chapter id")
	}

	var body dto.UpdateChapterRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := validator.New().Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	var chapter model.Chapter
	if err := ctrl.DB.First(&chapter, chapterID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Chapter not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	var content contentModel.Content
	if err := ctrl.DB.First(&content, chapter.ContentID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	if body.Number != nil {
		chapter.Number = *body.Number
	}
	if body.Title != nil {
		chapter.Title = *body.Title
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&chapter).Error; err != nil {
			return err
		}
		// Isi baru mengganti isi lama seluruhnya.
		if body.Pages != nil || body.HTML != nil {
			if err := tx.Where("chapter_id = ?", chapter.ID).
				Delete(&model.ChapterContent{}).Error; err != nil {
				return err
			}
			var pages []string
			var html string
			if body.Pages != nil {
				pages = *body.Pages
			}
			if body.HTML != nil {
				html = *body.HTML
			}
			return saveChapterContents(tx, chapter.ID, content.Type, pages, html)
		}
		return nil
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update chapter")
	}

	return helper.JsonUpdated(c, "Chapter updated", chapter)
}

// ToggleLock — PATCH /api/chapters/:id/lock
func (ctrl *ChapterController) ToggleLock(c *fiber.Ctx) error {
	chapterID, err := parseUintParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid chapter id")
	}

	var body dto.ToggleLockRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := validator.New().Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}
	if body.IsLocked && (body.UnlockPrice == nil || *body.UnlockPrice <= 0) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Locked chapter butuh unlock_price positif")
	}

	var chapter model.Chapter
	if err := ctrl.DB.First(&chapter, chapterID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Chapter not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	chapter.IsLocked = body.IsLocked
	if body.IsLocked {
		chapter.UnlockPrice = body.UnlockPrice
	} else {
		// Konvensi server-side: buka gratis = harga di-NULL-kan.
		chapter.UnlockPrice = nil
	}

	updates := map[string]interface{}{
		"is_locked":    chapter.IsLocked,
		"unlock_price": chapter.UnlockPrice,
	}
	if err := ctrl.DB.Model(&chapter).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update lock state")
	}

	return helper.JsonUpdated(c, "Lock state updated", chapter)
}

// Delete — DELETE /api/chapters/:id (cascade ke chapter_contents)
func (ctrl *ChapterController) Delete(c *fiber.Ctx) error {
	chapterID, err := parseUintParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid chapter id")
	}

	var chapter model.Chapter
	if err := ctrl.DB.First(&chapter, chapterID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Chapter not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("chapter_id = ?", chapter.ID).
			Delete(&model.ChapterContent{}).Error; err != nil {
			return err
		}
		return tx.Delete(&chapter).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hapus chapter")
	}

	return helper.JsonDeleted(c, "Chapter deleted", nil)
}

// ============================================================
// Helpers
// ============================================================

func saveChapterContents(tx *gorm.DB, chapterID uint, contentType string, pages []string, html string) error {
	if contentType == contentModel.TypeManga {
		for i, url := range pages {
			order := i + 1
			row := model.ChapterContent{
				ChapterID: chapterID,
				PageOrder: &order,
				ImageURL:  url,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	}
	if html == "" {
		return nil
	}
	return tx.Create(&model.ChapterContent{
		ChapterID: chapterID,
		Content:   html,
	}).Error
}

func parseUintParam(c *fiber.Ctx, name string) (uint, error) {
	n, err := strconv.ParseUint(c.Params(name), 10, 64)
	if err != nil || n == 0 {
		return 0, errors.New("invalid id")
	}
	return uint(n), nil
}

// mapServiceError memetakan taksonomi error core ke response HTTP.
func mapServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrContentNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Content not found")
	case errors.Is(err, service.ErrChapterNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Chapter not found")
	case errors.Is(err, service.ErrUserNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	case errors.Is(err, service.ErrNotPurchasable):
		return helper.JsonError(c, fiber.StatusBadRequest, "Chapter is not purchasable")
	case errors.Is(err, service.ErrAlreadyUnlocked):
		return helper.JsonError(c, fiber.StatusConflict, "Chapter already unlocked")
	}
	if ife, ok := service.AsInsufficientFunds(err); ok {
		return helper.JsonErrorWithDetails(c, fiber.StatusPaymentRequired, "Insufficient balance", fiber.Map{
			"balance":  ife.Balance,
			"required": ife.Required,
		})
	}
	return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
}
