// 📁 controller/report_controller.go
package controller

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"truyenhub_backend/internals/features/community/reports/dto"
	"truyenhub_backend/internals/features/community/reports/model"
	helper "truyenhub_backend/internals/helpers"
)

type ReportController struct {
	DB *gorm.DB
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

// Create — POST /api/reports (wajib login)
func (ctrl *ReportController) Create(c *fiber.Ctx) error {
	userID, ok := helper.GetUserID(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var body dto.CreateReportRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := validator.New().Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	report := model.Report{
		UserID:    userID,
		ContentID: body.ContentID,
		ChapterID: body.ChapterID,
		Reason:    body.Reason,
		Status:    model.ReportStatusOpen,
	}
	if err := ctrl.DB.Create(&report).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan report")
	}
	return helper.JsonCreated(c, "Report created", report)
}

// List — GET /api/admin/reports?status=
func (ctrl *ReportController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 200)

	q := ctrl.DB.Model(&model.Report{})
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	var reports []model.Report
	if err := q.Order("created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).Find(&reports).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"items":      reports,
		"pagination": helper.BuildPagination(total, paging),
	})
}

// Resolve — PATCH /api/admin/reports/:id
func (ctrl *ReportController) Resolve(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid report id")
	}

	var body dto.ResolveReportRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := validator.New().Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	var report model.Report
	if err := ctrl.DB.First(&report, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Report not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	report.Status = body.Status
	if err := ctrl.DB.Save(&report).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update report")
	}
	return helper.JsonUpdated(c, "Report updated", report)
}
