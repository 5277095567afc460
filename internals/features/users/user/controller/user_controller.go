// 📁 controller/user_controller.go
package controller

import (
	"errors"
	"log"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"truyenhub_backend/internals/features/users/user/dto"
	"truyenhub_backend/internals/features/users/user/model"
	helper "truyenhub_backend/internals/helpers"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// List — GET /api/admin/users
func (ctrl *UserController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 200)

	q := ctrl.DB.Model(&model.User{})
	if search := c.Query("q"); search != "" {
		like := "%" + search + "%"
		q = q.Where("username ILIKE ? OR email ILIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	var users []model.User
	if err := q.Order("created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).Find(&users).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"items":      users,
		"pagination": helper.BuildPagination(total, paging),
	})
}

// SetActive — PATCH /api/admin/users/:id/active
func (ctrl *UserController) SetActive(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user id")
	}

	var body dto.SetActiveRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request")
	}

	res := ctrl.DB.Model(&model.User{}).Where("id = ?", uint(id)).
		Update("is_active", body.IsActive)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}
	return helper.JsonUpdated(c, "User status updated", fiber.Map{"is_active": body.IsActive})
}

// AdjustBalance — POST /api/admin/users/:id/balance
// Koreksi manual saldo xu (mis. hasil rekonsiliasi unlock gagal).
func (ctrl *UserController) AdjustBalance(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user id")
	}

	var body dto.AdjustBalanceRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := validator.New().Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	var user model.User
	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&user, uint(id)).Error; err != nil {
			return err
		}
		if user.Balance+body.Delta < 0 {
			return errors.New("balance would go negative")
		}
		return tx.Model(&user).
			UpdateColumn("balance", gorm.Expr("balance + ?", body.Delta)).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	log.Printf("[ADMIN] balance adjust: user=%d delta=%d reason=%q", id, body.Delta, body.Reason)
	return helper.JsonUpdated(c, "Balance adjusted", fiber.Map{
		"new_balance": user.Balance + body.Delta,
	})
}
