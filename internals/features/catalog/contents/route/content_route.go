package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	contentController "truyenhub_backend/internals/features/catalog/contents/controller"
	authMiddleware "truyenhub_backend/internals/middlewares/auth"
)

func ContentRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := contentController.NewContentController(db)

	// PUBLIC — by-title HARUS di atas :id supaya fiber tidak salah match.
	api.Get("/content", ctrl.List)
	api.Get("/content/by-title/:title", ctrl.DetailBySlug)
	api.Get("/content/:id", ctrl.Detail)

	// ADMIN
	api.Post("/content", authMiddleware.AuthMiddleware(db), authMiddleware.IsAdmin(), ctrl.Create)
	api.Put("/content/:id", authMiddleware.AuthMiddleware(db), authMiddleware.IsAdmin(), ctrl.Update)
	api.Delete("/content/:id", authMiddleware.AuthMiddleware(db), authMiddleware.IsAdmin(), ctrl.Delete)
}
