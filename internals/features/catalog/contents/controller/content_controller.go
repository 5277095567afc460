// 📁 controller/content_controller.go
package controller

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	chapterModel "truyenhub_backend/internals/features/catalog/chapters/model"
	"truyenhub_backend/internals/features/catalog/contents/dto"
	"truyenhub_backend/internals/features/catalog/contents/model"
	helper "truyenhub_backend/internals/helpers"
)

type ContentController struct {
	DB *gorm.DB
}

func NewContentController(db *gorm.DB) *ContentController {
	return &ContentController{DB: db}
}

// ============================================================
// PUBLIC
// ============================================================

// List — GET /api/content?q=&genre=&type=&status=&sort=
func (ctrl *ContentController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.Content{}).
		Preload("Author").Preload("Genres")

	if search := c.Query("q"); search != "" {
		like := "%" + search + "%"
		q = q.Where("title ILIKE ? OR alternative_title ILIKE ?", like, like)
	}
	if t := c.Query("type"); t != "" {
		q = q.Where("type = ?", t)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}
	if genre := c.Query("genre"); genre != "" {
		q = q.Joins("JOIN content_genres cg ON cg.content_id = contents.id").
			Joins("JOIN genres g ON g.id = cg.genre_id").
			Where("g.slug = ?", genre)
	}

	switch c.Query("sort", "latest") {
	case "popular":
		q = q.Order("views DESC")
	default:
		q = q.Order("updated_at DESC")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	var contents []model.Content
	if err := q.Limit(paging.Limit).Offset(paging.Offset).Find(&contents).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"items":      contents,
		"pagination": helper.BuildPagination(total, paging),
	})
}

// Detail — GET /api/content/:id
// View counter naik TIAP fetch, tanpa dedup — metrik popularitas sederhana,
// refresh ganda memang terhitung ganda (perilaku lama dipertahankan).
func (ctrl *ContentController) Detail(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid content id")
	}

	content, err := ctrl.fetchDetail("id = ?", uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Content not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	return helper.JsonOK(c, "OK", content)
}

// DetailBySlug — GET /api/content/by-title/:title
func (ctrl *ContentController) DetailBySlug(c *fiber.Ctx) error {
	slug := c.Params("title")
	if slug == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid title")
	}

	content, err := ctrl.fetchDetail("slug = ?", slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Content not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	return helper.JsonOK(c, "OK", content)
}

func (ctrl *ContentController) fetchDetail(cond string, arg interface{}) (fiber.Map, error) {
	var content model.Content
	err := ctrl.DB.Preload("Author").Preload("TranslationGroup").Preload("Genres").
		Where(cond, arg).First(&content).Error
	if err != nil {
		return nil, err
	}

	if err := ctrl.DB.Model(&model.Content{}).Where("id = ?", content.ID).
		UpdateColumn("views", gorm.Expr("views + 1")).Error; err != nil {
		return nil, err
	}
	content.Views++

	var chapters []chapterModel.Chapter
	if err := ctrl.DB.Where("content_id = ?", content.ID).
		Order("number ASC").Find(&chapters).Error; err != nil {
		return nil, err
	}

	return fiber.Map{
		"content":  content,
		"chapters": chapters,
	}, nil
}

// ============================================================
// ADMIN
// ============================================================

// Create — POST /api/content
func (ctrl *ContentController) Create(c *fiber.Ctx) error {
	var body dto.CreateContentRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := validator.New().Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	status := body.Status
	if status == "" {
		status = model.StatusOngoing
	}

	// Judul kembar (mis. versi manga dan novel dari judul yang sama) dapat
	// slug ber-suffix, bukan bentrok di unique constraint.
	slug, err := helper.EnsureUniqueSlug(
		helper.GenerateSlug(body.Title),
		helper.SlugTaken(ctrl.DB, "contents", "slug", nil),
	)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	content := model.Content{
		Title:              body.Title,
		AlternativeTitle:   body.AlternativeTitle,
		Slug:               slug,
		Description:        body.Description,
		CoverURL:           body.CoverURL,
		Type:               body.Type,
		Status:             status,
		AuthorID:           body.AuthorID,
		TranslationGroupID: body.TranslationGroupID,
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&content).Error; err != nil {
			return err
		}
		if len(body.GenreIDs) > 0 {
			var genres []model.Genre
			if err := tx.Find(&genres, body.GenreIDs).Error; err != nil {
				return err
			}
			return tx.Model(&content).Association("Genres").Replace(genres)
		}
		return nil
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan content")
	}

	return helper.JsonCreated(c, "Content created", content)
}

// Update — PUT /api/content/:id
func (ctrl *ContentController) Update(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid content id")
	}

	var body dto.UpdateContentRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := validator.New().Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	var content model.Content
	if err := ctrl.DB.First(&content, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Content not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	if body.Title != nil {
		// Baris sendiri dikecualikan dari cek bentrok slug.
		slug, err := helper.EnsureUniqueSlug(
			helper.GenerateSlug(*body.Title),
			helper.SlugTaken(ctrl.DB, "contents", "slug", func(q *gorm.DB) *gorm.DB {
				return q.Where("id <> ?", content.ID)
			}),
		)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
		}
		content.Title = *body.Title
		content.Slug = slug
	}
	if body.AlternativeTitle != nil {
		content.AlternativeTitle = *body.AlternativeTitle
	}
	if body.Description != nil {
		content.Description = *body.Description
	}
	if body.CoverURL != nil {
		content.CoverURL = *body.CoverURL
	}
	if body.Status != nil {
		content.Status = *body.Status
	}
	if body.AuthorID != nil {
		content.AuthorID = body.AuthorID
	}
	if body.TranslationGroupID != nil {
		content.TranslationGroupID = body.TranslationGroupID
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&content).Error; err != nil {
			return err
		}
		if body.GenreIDs != nil {
			var genres []model.Genre
			if len(*body.GenreIDs) > 0 {
				if err := tx.Find(&genres, *body.GenreIDs).Error; err != nil {
					return err
				}
			}
			return tx.Model(&content).Association("Genres").Replace(genres)
		}
		return nil
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update content")
	}

	return helper.JsonUpdated(c, "Content updated", content)
}

// Delete — DELETE /api/content/:id
// Cascade manual: chapter_contents → chapters → link genre → content.
func (ctrl *ContentController) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid content id")
	}

	var content model.Content
	if err := ctrl.DB.First(&content, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Content not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var chapterIDs []uint
		if err := tx.Model(&chapterModel.Chapter{}).
			Where("content_id = ?", content.ID).
			Pluck("id", &chapterIDs).Error; err != nil {
			return err
		}
		if len(chapterIDs) > 0 {
			if err := tx.Where("chapter_id IN ?", chapterIDs).
				Delete(&chapterModel.ChapterContent{}).Error; err != nil {
				return err
			}
			if err := tx.Where("content_id = ?", content.ID).
				Delete(&chapterModel.Chapter{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Model(&content).Association("Genres").Clear(); err != nil {
			return err
		}
		return tx.Delete(&content).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hapus content")
	}

	return helper.JsonDeleted(c, "Content deleted", nil)
}
