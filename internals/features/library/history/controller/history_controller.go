// 📁 controller/history_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	contentModel "truyenhub_backend/internals/features/catalog/contents/model"
	"truyenhub_backend/internals/features/library/history/model"
	helper "truyenhub_backend/internals/helpers"
)

type HistoryController struct {
	DB *gorm.DB
}

func NewHistoryController(db *gorm.DB) *HistoryController {
	return &HistoryController{DB: db}
}

type historyItem struct {
	model.ReadingHistory
	Content *contentModel.Content `json:"content,omitempty"`
}

// ListMine — GET /api/me/history
// Baris history di-upsert oleh access gate tiap kali bab terbuka dibaca,
// jadi di sini cukup SELECT.
func (ctrl *HistoryController) ListMine(c *fiber.Ctx) error {
	userID, ok := helper.GetUserID(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&model.ReadingHistory{}).
		Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	var rows []model.ReadingHistory
	if err := ctrl.DB.Where("user_id = ?", userID).
		Order("read_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	items := make([]historyItem, 0, len(rows))
	for _, row := range rows {
		item := historyItem{ReadingHistory: row}
		var content contentModel.Content
		if err := ctrl.DB.First(&content, row.ContentID).Error; err == nil {
			item.Content = &content
		}
		items = append(items, item)
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"items":      items,
		"pagination": helper.BuildPagination(total, paging),
	})
}
