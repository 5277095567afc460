package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authorController "truyenhub_backend/internals/features/catalog/authors/controller"
	authMiddleware "truyenhub_backend/internals/middlewares/auth"
)

func AuthorRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := authorController.NewAuthorController(db)

	api.Get("/authors", ctrl.List)

	api.Post("/authors", authMiddleware.AuthMiddleware(db), authMiddleware.IsAdmin(), ctrl.Create)
	api.Put("/authors/:id", authMiddleware.AuthMiddleware(db), authMiddleware.IsAdmin(), ctrl.Update)
	api.Delete("/authors/:id", authMiddleware.AuthMiddleware(db), authMiddleware.IsAdmin(), ctrl.Delete)
}
