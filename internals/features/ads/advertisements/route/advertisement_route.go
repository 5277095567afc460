package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	adController "truyenhub_backend/internals/features/ads/advertisements/controller"
	authMiddleware "truyenhub_backend/internals/middlewares/auth"
)

func AdvertisementRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := adController.NewAdvertisementController(db)

	api.Get("/ads", ctrl.ListActive)

	api.Get("/admin/ads", authMiddleware.AuthMiddleware(db), authMiddleware.IsAdmin(), ctrl.ListAll)
	api.Post("/admin/ads", authMiddleware.AuthMiddleware(db), authMiddleware.IsAdmin(), ctrl.Create)
	api.Put("/admin/ads/:id", authMiddleware.AuthMiddleware(db), authMiddleware.IsAdmin(), ctrl.Update)
	api.Delete("/admin/ads/:id", authMiddleware.AuthMiddleware(db), authMiddleware.IsAdmin(), ctrl.Delete)
}
