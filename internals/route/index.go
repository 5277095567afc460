// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	adRoute "truyenhub_backend/internals/features/ads/advertisements/route"
	authorRoute "truyenhub_backend/internals/features/catalog/authors/route"
	chapterRoute "truyenhub_backend/internals/features/catalog/chapters/route"
	contentRoute "truyenhub_backend/internals/features/catalog/contents/route"
	genreRoute "truyenhub_backend/internals/features/catalog/genres/route"
	groupRoute "truyenhub_backend/internals/features/catalog/translation_groups/route"
	commentRoute "truyenhub_backend/internals/features/community/comments/route"
	reportRoute "truyenhub_backend/internals/features/community/reports/route"
	historyRoute "truyenhub_backend/internals/features/library/history/route"
	topupRoute "truyenhub_backend/internals/features/payment/topup/route"
	authRoute "truyenhub_backend/internals/features/users/auth/route"
	userRoute "truyenhub_backend/internals/features/users/user/route"
	authMiddleware "truyenhub_backend/internals/middlewares/auth"
)

// SetupRoutes memasang semua route di bawah /api.
// Group /api memakai JWT opsional (access gate butuh tahu user kalau ada);
// endpoint yang wajib login / admin memasang middleware-nya per route.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api", authMiddleware.OptionalAuthMiddleware(db))

	log.Println("[INFO] Mounting Auth & User routes...")
	authRoute.AuthRoutes(api, db)
	userRoute.UserRoutes(api, db)

	log.Println("[INFO] Mounting Catalog routes...")
	contentRoute.ContentRoutes(api, db)
	chapterRoute.ChapterRoutes(api, db)
	genreRoute.GenreRoutes(api, db)
	authorRoute.AuthorRoutes(api, db)
	groupRoute.TranslationGroupRoutes(api, db)

	log.Println("[INFO] Mounting Community routes...")
	commentRoute.CommentRoutes(api, db)
	reportRoute.ReportRoutes(api, db)

	log.Println("[INFO] Mounting Library routes...")
	historyRoute.HistoryRoutes(api, db)

	log.Println("[INFO] Mounting Ads routes...")
	adRoute.AdvertisementRoutes(api, db)

	log.Println("[INFO] Mounting Topup routes...")
	topupRoute.TopupRoutes(api, db)
}
