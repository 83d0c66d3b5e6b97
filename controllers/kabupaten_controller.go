package controllers

import (
	"errors"

	"backend-master/models"
	"backend-master/utils"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type KabupatenController struct {
	DB *gorm.DB
}

func NewKabupatenController(DB *gorm.DB) *KabupatenController {
	return &KabupatenController{DB: DB}
}

func (c *KabupatenController) Index(ctx *fiber.Ctx) error {
	q := c.DB.Model(&models.Kabupaten{}).Preload("Provinsi")

	if s := ctx.Query("search"); s != "" {
		q = q.Where("kode LIKE ? OR nama LIKE ?", "%"+s+"%", "%"+s+"%")
	}
	if v, ok := queryBool(ctx, "is_active"); ok {
		q = q.Where("is_active = ?", v)
	}
	if provinsiID := ctx.QueryInt("provinsi_id", 0); provinsiID > 0 {
		q = q.Where("provinsi_id = ?", provinsiID)
	}

	var rows []models.Kabupaten
	result, err := utils.Paginate(q.Order("nama ASC"), ctx.QueryInt("page", 1), ctx.QueryInt("per_page", 15), &rows)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(result)
}

type kabupatenInput struct {
	ProvinsiID uint   `json:"provinsi_id" validate:"required"`
	Kode       string `json:"kode" validate:"required,max=20"`
	Nama       string `json:"nama" validate:"required,max=150"`
	IsActive   *bool  `json:"is_active"`
}

func (c *KabupatenController) Store(ctx *fiber.Ctx) error {
	var input kabupatenInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}

	var provinsi models.Provinsi
	if err := c.DB.First(&provinsi, input.ProvinsiID).Error; err != nil {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "Provinsi not found"})
	}

	var count int64
	c.DB.Model(&models.Kabupaten{}).Where("kode = ?", input.Kode).Count(&count)
	if count > 0 {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "Kode already used"})
	}

	row := models.Kabupaten{
		ProvinsiID: input.ProvinsiID,
		Kode:       input.Kode,
		Nama:       input.Nama,
		IsActive:   true,
	}
	if input.IsActive != nil {
		row.IsActive = *input.IsActive
	}

	if err := c.DB.Create(&row).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	c.DB.Preload("Provinsi").First(&row, row.ID)
	return ctx.Status(fiber.StatusCreated).JSON(row)
}

func (c *KabupatenController) Show(ctx *fiber.Ctx) error {
	var row models.Kabupaten
	if err := c.DB.Preload("Provinsi").First(&row, ctx.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Kabupaten not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(row)
}

func (c *KabupatenController) Update(ctx *fiber.Ctx) error {
	var row models.Kabupaten
	if err := c.DB.First(&row, ctx.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Kabupaten not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var input kabupatenInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}

	var provinsi models.Provinsi
	if err := c.DB.First(&provinsi, input.ProvinsiID).Error; err != nil {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "Provinsi not found"})
	}

	var count int64
	c.DB.Model(&models.Kabupaten{}).Where("kode = ? AND id <> ?", input.Kode, row.ID).Count(&count)
	if count > 0 {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "Kode already used"})
	}

	row.ProvinsiID = input.ProvinsiID
	row.Kode = input.Kode
	row.Nama = input.Nama
	if input.IsActive != nil {
		row.IsActive = *input.IsActive
	}

	if err := c.DB.Save(&row).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	c.DB.Preload("Provinsi").First(&row, row.ID)
	return ctx.JSON(row)
}

func (c *KabupatenController) Destroy(ctx *fiber.Ctx) error {
	var row models.Kabupaten
	if err := c.DB.First(&row, ctx.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Kabupaten not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := c.DB.Delete(&row).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(fiber.Map{"message": "Deleted"})
}
