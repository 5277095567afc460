package controller

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	contentModel "truyenhub_backend/internals/features/catalog/contents/model"
	helper "truyenhub_backend/internals/helpers"
)

type AuthorController struct {
	DB *gorm.DB
}

func NewAuthorController(db *gorm.DB) *AuthorController {
	return &AuthorController{DB: db}
}

type authorRequest struct {
	Name string `json:"name" validate:"required,max=120"`
	Bio  string `json:"bio"`
}

// List — GET /api/authors
func (ctrl *AuthorController) List(c *fiber.Ctx) error {
	var authors []contentModel.Author
	if err := ctrl.DB.Order("name ASC").Find(&authors).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	return helper.JsonOK(c, "OK", authors)
}

// Create — POST /api/authors
func (ctrl *AuthorController) Create(c *fiber.Ctx) error {
	var body authorRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := validator.New().Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	author := contentModel.Author{Name: body.Name, Bio: body.Bio}
	if err := ctrl.DB.Create(&author).Error; err != nil {
		return helper.JsonError(c, fiber.StatusConflict, "Author sudah ada")
	}
	return helper.JsonCreated(c, "Author created", author)
}

// Update — PUT /api/authors/:id
func (ctrl *AuthorController) Update(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid author id")
	}

	var body authorRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := validator.New().Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	var author contentModel.Author
	if err := ctrl.DB.First(&author, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Author not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	author.Name = body.Name
	author.Bio = body.Bio
	if err := ctrl.DB.Save(&author).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update author")
	}
	return helper.JsonUpdated(c, "Author updated", author)
}

// Delete — DELETE /api/authors/:id
func (ctrl *AuthorController) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid author id")
	}

	res := ctrl.DB.Delete(&contentModel.Author{}, uint(id))
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hapus author")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Author not found")
	}
	return helper.JsonDeleted(c, "Author deleted", nil)
}
