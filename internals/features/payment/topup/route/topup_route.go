package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	topupController "truyenhub_backend/internals/features/payment/topup/controller"
	authMiddleware "truyenhub_backend/internals/middlewares/auth"
)

func TopupRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := topupController.NewTopupController(db)

	// Webhook dipanggil gateway, bukan user login.
	api.Post("/topup/midtrans/webhook", ctrl.HandleNotification)

	api.Post("/topup", authMiddleware.AuthMiddleware(db), ctrl.Create)
	api.Get("/topup", authMiddleware.AuthMiddleware(db), ctrl.ListMine)
}
