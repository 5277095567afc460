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

type GenreController struct {
	DB *gorm.DB
}

func NewGenreController(db *gorm.DB) *GenreController {
	return &GenreController{DB: db}
}

type genreRequest struct {
	Name string `json:"name" validate:"required,max=60"`
}

// List — GET /api/genres
func (ctrl *GenreController) List(c *fiber.Ctx) error {
	var genres []contentModel.Genre
	if err := ctrl.DB.Order("name ASC").Find(&genres).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	return helper.JsonOK(c, "OK", genres)
}

// Create — POST /api/genres
func (ctrl *GenreController) Create(c *fiber.Ctx) error {
	var body genreRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := validator.New().Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	// Nama beda bisa fold ke slug sama (mis. "Sci-Fi" vs "Sci Fi").
	slug, err := helper.EnsureUniqueSlug(
		helper.GenerateSlug(body.Name),
		helper.SlugTaken(ctrl.DB, "genres", "slug", nil),
	)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	genre := contentModel.Genre{
		Name: body.Name,
		Slug: slug,
	}
	if err := ctrl.DB.Create(&genre).Error; err != nil {
		return helper.JsonError(c, fiber.StatusConflict, "Genre sudah ada")
	}
	return helper.JsonCreated(c, "Genre created", genre)
}

// Update — PUT /api/genres/:id
func (ctrl *GenreController) Update(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid genre id")
	}

	var body genreRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request")
	}
	if err := validator.New().Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	var genre contentModel.Genre
	if err := ctrl.DB.First(&genre, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Genre not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	slug, err := helper.EnsureUniqueSlug(
		helper.GenerateSlug(body.Name),
		helper.SlugTaken(ctrl.DB, "genres", "slug", func(q *gorm.DB) *gorm.DB {
			return q.Where("id <> ?", genre.ID)
		}),
	)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	genre.Name = body.Name
	genre.Slug = slug
	if err := ctrl.DB.Save(&genre).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update genre")
	}
	return helper.JsonUpdated(c, "Genre updated", genre)
}

// Delete — DELETE /api/genres/:id
func (ctrl *GenreController) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid genre id")
	}

	res := ctrl.DB.Delete(&contentModel.Genre{}, uint(id))
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hapus genre")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Genre not found")
	}
	return helper.JsonDeleted(c, "Genre deleted", nil)
}
