package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "truyenhub_backend/internals/features/users/auth/controller"
	authMiddleware "truyenhub_backend/internals/middlewares/auth"
)

func AuthRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	api.Post("/auth/register", ctrl.Register)
	api.Post("/auth/login", ctrl.Login)

	api.Get("/auth/me", authMiddleware.AuthMiddleware(db), ctrl.Me)
}
