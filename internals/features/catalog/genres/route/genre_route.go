package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	genreController "truyenhub_backend/internals/features/catalog/genres/controller"
	authMiddleware "truyenhub_backend/internals/middlewares/auth"
)

func GenreRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := genreController.NewGenreController(db)

	api.Get("/genres", ctrl.List)

	api.Post("/genres", authMiddleware.AuthMiddleware(db), authMiddleware.IsAdmin(), ctrl.Create)
	api.Put("/genres/:id", authMiddleware.AuthMiddleware(db), authMiddleware.IsAdmin(), ctrl.Update)
	api.Delete("/genres/:id", authMiddleware.AuthMiddleware(db), authMiddleware.IsAdmin(), ctrl.Delete)
}
