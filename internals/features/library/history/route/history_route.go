package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	historyController "truyenhub_backend/internals/features/library/history/controller"
	authMiddleware "truyenhub_backend/internals/middlewares/auth"
)

func HistoryRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := historyController.NewHistoryController(db)

	api.Get("/me/history", authMiddleware.AuthMiddleware(db), ctrl.ListMine)
}
