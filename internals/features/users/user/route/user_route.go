package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "truyenhub_backend/internals/features/users/user/controller"
	authMiddleware "truyenhub_backend/internals/middlewares/auth"
)

func UserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := userController.NewUserController(db)

	api.Get("/admin/users", authMiddleware.AuthMiddleware(db), authMiddleware.IsAdmin(), ctrl.List)
	api.Patch("/admin/users/:id/active", authMiddleware.AuthMiddleware(db), authMiddleware.IsAdmin(), ctrl.SetActive)
	api.Post("/admin/users/:id/balance", authMiddleware.AuthMiddleware(db), authMiddleware.IsAdmin(), ctrl.AdjustBalance)
}
