package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	groupController "truyenhub_backend/internals/features/catalog/translation_groups/controller"
	authMiddleware "truyenhub_backend/internals/middlewares/auth"
)

func TranslationGroupRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := groupController.NewTranslationGroupController(db)

	api.Get("/translation-groups", ctrl.List)

	api.Post("/translation-groups", authMiddleware.AuthMiddleware(db), authMiddleware.IsAdmin(), ctrl.Create)
	api.Put("/translation-groups/:id", authMiddleware.AuthMiddleware(db), authMiddleware.IsAdmin(), ctrl.Update)
	api.Delete("/translation-groups/:id", authMiddleware.AuthMiddleware(db), authMiddleware.IsAdmin(), ctrl.Delete)
}
