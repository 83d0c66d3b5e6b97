package controllers

import (
	"errors"

	"backend-master/models"
	"backend-master/utils"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ProvinsiController struct {
	DB *gorm.DB
}

func NewProvinsiController(DB *gorm.DB) *ProvinsiController {
	return &ProvinsiController{DB: DB}
}

func (c *ProvinsiController) Index(ctx *fiber.Ctx) error {
	q := c.DB.Model(&models.Provinsi{})

	if s := ctx.Query("search"); s != "" {
		q = q.Where("kode LIKE ? OR nama LIKE ?", "%"+s+"%", "%"+s+"%")
	}
	if v, ok := queryBool(ctx, "is_active"); ok {
		q = q.Where("is_active = ?", v)
	}

	var rows []models.Provinsi
	result, err := utils.Paginate(q.Order("nama ASC"), ctx.QueryInt("page", 1), ctx.QueryInt("per_page", 15), &rows)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(result)
}

type provinsiInput struct {
	Kode     string `json:"kode" validate:"required,max=20"`
	Nama     string `json:"nama" validate:"required,max=150"`
	IsActive *bool  `json:"is_active"`
}

func (c *ProvinsiController) Store(ctx *fiber.Ctx) error {
	var input provinsiInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}

	var count int64
	c.DB.Model(&models.Provinsi{}).Where("kode = ?", input.Kode).Count(&count)
	if count > 0 {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "Kode already used"})
	}

	row := models.Provinsi{Kode: input.Kode, Nama: input.Nama, IsActive: true}
	if input.IsActive != nil {
		row.IsActive = *input.IsActive
	}

	if err := c.DB.Create(&row).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusCreated).JSON(row)
}

func (c *ProvinsiController) Show(ctx *fiber.Ctx) error {
	var row models.Provinsi
	if err := c.DB.First(&row, ctx.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Provinsi not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(row)
}

func (c *ProvinsiController) Update(ctx *fiber.Ctx) error {
	var row models.Provinsi
	if err := c.DB.First(&row, ctx.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Provinsi not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var input provinsiInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}

	var count int64
	c.DB.Model(&models.Provinsi{}).Where("kode = ? AND id <> ?", input.Kode, row.ID).Count(&count)
	if count > 0 {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "Kode already used"})
	}

	row.Kode = input.Kode
	row.Nama = input.Nama
	if input.IsActive != nil {
		row.IsActive = *input.IsActive
	}

	if err := c.DB.Save(&row).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(row)
}

func (c *ProvinsiController) Destroy(ctx *fiber.Ctx) error {
	var row models.Provinsi
	if err := c.DB.First(&row, ctx.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Provinsi not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := c.DB.Delete(&row).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(fiber.Map{"message": "Deleted"})
}
