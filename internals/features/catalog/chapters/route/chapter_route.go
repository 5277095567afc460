package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	chapterController "truyenhub_backend/internals/features/catalog/chapters/controller"
	authMiddleware "truyenhub_backend/internals/middlewares/auth"
)

// ChapterRoutes mendaftarkan endpoint chapter.
// Endpoint baca memakai JWT opsional dari group /api (anonim tetap boleh);
// unlock wajib login; CRUD + lock toggle khusus admin.
func ChapterRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := chapterController.NewChapterController(db)

	// PUBLIC — access gate
	api.Get("/chapters/:id", ctrl.GetChapter)
	api.Get("/content/:contentId/chapters", ctrl.ListByContent)
	api.Get("/content/:contentId/chapter-by-number/:n", ctrl.GetChapterByNumber)
	api.Get("/content/by-title/:title/chapter/:n", ctrl.GetChapterBySlug)

	// USER
	api.Post("/chapters/:id/unlock", authMiddleware.AuthMiddleware(db), ctrl.Unlock)

	// ADMIN
	api.Post("/chapters", authMiddleware.AuthMiddleware(db), authMiddleware.IsAdmin(), ctrl.Create)
	api.Put("/chapters/:id", authMiddleware.AuthMiddleware(db), authMiddleware.IsAdmin(), ctrl.Update)
	api.Patch("/chapters/:id/lock", authMiddleware.AuthMiddleware(db), authMiddleware.IsAdmin(), ctrl.ToggleLock)
	api.Delete("/chapters/:id", authMiddleware.AuthMiddleware(db), authMiddleware.IsAdmin(), ctrl.Delete)
}
