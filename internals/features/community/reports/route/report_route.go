package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	reportController "truyenhub_backend/internals/features/community/reports/controller"
	authMiddleware "truyenhub_backend/internals/middlewares/auth"
)

func ReportRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := reportController.NewReportController(db)

	api.Post("/reports", authMiddleware.AuthMiddleware(db), ctrl.Create)

	api.Get("/admin/reports", authMiddleware.AuthMiddleware(db), authMiddleware.IsAdmin(), ctrl.List)
	api.Patch("/admin/reports/:id", authMiddleware.AuthMiddleware(db), authMiddleware.IsAdmin(), ctrl.Resolve)
}
