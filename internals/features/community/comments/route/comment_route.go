package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	commentController "truyenhub_backend/internals/features/community/comments/controller"
	authMiddleware "truyenhub_backend/internals/middlewares/auth"
)

func CommentRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := commentController.NewCommentController(db)

	api.Get("/chapters/:id/comments", ctrl.ListByChapter)
	api.Get("/content/:id/comments", ctrl.ListByContent)

	api.Post("/comments", authMiddleware.AuthMiddleware(db), ctrl.Create)
	api.Delete("/comments/:id", authMiddleware.AuthMiddleware(db), ctrl.Delete)
}
