// 📁 controller/topup_controller.go
package controller

import (
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"truyenhub_backend/internals/features/payment/topup/dto"
	"truyenhub_backend/internals/features/payment/topup/model"
	topupService "truyenhub_backend/internals/features/payment/topup/service"
	userModel "truyenhub_backend/internals/features/users/user/model"
	helper "truyenhub_backend/internals/helpers"
)

// 1000 rupiah = 1 xu.
const rupiahPerXu = 1000

type TopupController struct {
	DB *gorm.DB
}

func NewTopupController(db *gorm.DB) *TopupController {
	return &TopupController{DB: db}
}

// Create — POST /api/topup (wajib login)
// Buat order pending + snap token; saldo baru dikredit saat webhook paid.
func (ctrl *TopupController) Create(c *fiber.Ctx) error {
	userID, ok := helper.GetUserID(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var body dto.CreateTopupRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := validator.New().Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	var user userModel.User
	if err := ctrl.DB.First(&user, userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	order := model.TopupOrder{
		UserID:     userID,
		OrderID:    fmt.Sprintf("TOPUP-%s", uuid.NewString()),
		Amount:     body.Amount,
		CoinAmount: body.Amount / rupiahPerXu,
		Status:     model.TopupStatusPending,
	}
	if err := ctrl.DB.Create(&order).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan order")
	}

	token, err := topupService.GenerateSnapToken(order, &user)
	if err != nil {
		log.Println("[ERROR] Gagal membuat snap token:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat token pembayaran")
	}

	order.PaymentToken = token
	ctrl.DB.Save(&order)

	return helper.JsonCreated(c, "Order top-up dibuat. Silakan lanjutkan pembayaran.", fiber.Map{
		"order_id":    order.OrderID,
		"snap_token":  token,
		"coin_amount": order.CoinAmount,
	})
}

// ListMine — GET /api/topup (wajib login)
func (ctrl *TopupController) ListMine(c *fiber.Ctx) error {
	userID, ok := helper.GetUserID(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var orders []model.TopupOrder
	if err := ctrl.DB.Where("user_id = ?", userID).
		Order("created_at DESC").Find(&orders).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	return helper.JsonOK(c, "OK", orders)
}

// HandleNotification — POST /api/topup/midtrans/webhook (tanpa auth, dipanggil gateway)
func (ctrl *TopupController) HandleNotification(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}

	if err := topupService.HandleTopupStatusWebhook(ctrl.DB, body); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", nil)
}
