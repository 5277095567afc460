package controller

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	contentModel "truyenhub_backend/internals/features/catalog/contents/model"
	helper "truyenhub_backend/internals/helpers"
)

type TranslationGroupController struct {
	DB *gorm.DB
}

func NewTranslationGroupController(db *gorm.DB) *TranslationGroupController {
	return &TranslationGroupController{DB: db}
}

type groupRequest struct {
	Name        string `json:"name" validate:"required,max=120"`
	Description string `json:"description"`
	Website     string `json:"website" validate:"omitempty,url"`
}

// List — GET /api/translation-groups
func (ctrl *TranslationGroupController) List(c *fiber.Ctx) error {
	var groups []contentModel.TranslationGroup
	if err := ctrl.DB.Order("name ASC").Find(&groups).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	return helper.JsonOK(c, "OK", groups)
}

// Create — POST /api/translation-groups
func (ctrl *TranslationGroupController) Create(c *fiber.Ctx) error {
	var body groupRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := validator.New().Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	group := contentModel.TranslationGroup{
		Name:        body.Name,
		Description: body.Description,
		Website:     body.Website,
	}
	if err := ctrl.DB.Create(&group).Error; err != nil {
		return helper.JsonError(c, fiber.StatusConflict, "Nhóm dịch sudah ada")
	}
	return helper.JsonCreated(c, "Translation group created", group)
}

// Update — PUT /api/translation-groups/:id
func (ctrl *TranslationGroupController) Update(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid group id")
	}

	var body groupRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := validator.New().Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	var group contentModel.TranslationGroup
	if err := ctrl.DB.First(&group, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Translation group not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	group.Name = body.Name
	group.Description = body.Description
	group.Website = body.Website
	if err := ctrl.DB.Save(&group).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update translation group")
	}
	return helper.JsonUpdated(c, "Translation group updated", group)
}

// Delete — DELETE /api/translation-groups/:id
func (ctrl *TranslationGroupController) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid group id")
	}

	res := ctrl.DB.Delete(&contentModel.TranslationGroup{}, uint(id))
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hapus translation group")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Translation group not found")
	}
	return helper.JsonDeleted(c, "Translation group deleted", nil)
}
