// 📁 controller/advertisement_controller.go
package controller

import (
	"errors"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"truyenhub_backend/internals/features/ads/advertisements/dto"
	"truyenhub_backend/internals/features/ads/advertisements/model"
	helper "truyenhub_backend/internals/helpers"
)

type AdvertisementController struct {
	DB *gorm.DB
}

func NewAdvertisementController(db *gorm.DB) *AdvertisementController {
	return &AdvertisementController{DB: db}
}

// ListActive — GET /api/ads?placement=
// Hanya iklan aktif di dalam rentang tayangnya.
func (ctrl *AdvertisementController) ListActive(c *fiber.Ctx) error {
	now := time.Now()
	q := ctrl.DB.Model(&model.Advertisement{}).
		Where("is_active = ?", true).
		Where("starts_at IS NULL OR starts_at <= ?", now).
		Where("ends_at IS NULL OR ends_at >= ?", now)

	if placement := c.Query("placement"); placement != "" {
		if !model.IsValidPlacement(placement) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid placement")
		}
		q = q.Where("placement = ?", placement)
	}

	var ads []model.Advertisement
	if err := q.Order("created_at DESC").Find(&ads).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	return helper.JsonOK(c, "OK", ads)
}

// ListAll — GET /api/admin/ads
func (ctrl *AdvertisementController) ListAll(c *fiber.Ctx) error {
	var ads []model.Advertisement
	if err := ctrl.DB.Order("created_at DESC").Find(&ads).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	return helper.JsonOK(c, "OK", ads)
}

// Create — POST /api/admin/ads
func (ctrl *AdvertisementController) Create(c *fiber.Ctx) error {
	var body dto.AdvertisementRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := validator.New().Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	ad := model.Advertisement{
		Title:     body.Title,
		ImageURL:  body.ImageURL,
		TargetURL: body.TargetURL,
		Placement: body.Placement,
		IsActive:  body.IsActive,
		StartsAt:  body.StartsAt,
		EndsAt:    body.EndsAt,
	}
	if err := ctrl.DB.Create(&ad).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan iklan")
	}
	return helper.JsonCreated(c, "Advertisement created", ad)
}

// Update — PUT /api/admin/ads/:id
func (ctrl *AdvertisementController) Update(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid ad id")
	}

	var body dto.AdvertisementRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := validator.New().Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	var ad model.Advertisement
	if err := ctrl.DB.First(&ad, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Advertisement not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	ad.Title = body.Title
	ad.ImageURL = body.ImageURL
	ad.TargetURL = body.TargetURL
	ad.Placement = body.Placement
	ad.IsActive = body.IsActive
	ad.StartsAt = body.StartsAt
	ad.EndsAt = body.EndsAt

	if err := ctrl.DB.Save(&ad).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update iklan")
	}
	return helper.JsonUpdated(c, "Advertisement updated", ad)
}

// Delete — DELETE /api/admin/ads/:id
func (ctrl *AdvertisementController) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid ad id")
	}

	res := ctrl.DB.Delete(&model.Advertisement{}, uint(id))
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hapus iklan")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Advertisement not found")
	}
	return helper.JsonDeleted(c, "Advertisement deleted", nil)
}
