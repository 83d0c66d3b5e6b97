package controllers

import (
	"errors"

	"backend-master/models"
	"backend-master/utils"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CabangController struct {
	DB *gorm.DB
}

func NewCabangController(DB *gorm.DB) *CabangController {
	return &CabangController{DB: DB}
}

func (c *CabangController) Index(ctx *fiber.Ctx) error {
	q := c.DB.Model(&models.Cabang{}).Preload("Wilayah")

	if s := ctx.Query("search"); s != "" {
		q = q.Where("kode LIKE ? OR nama LIKE ?", "%"+s+"%", "%"+s+"%")
	}
	if v, ok := queryBool(ctx, "is_active"); ok {
		q = q.Where("is_active = ?", v)
	}
	if wilayahID := ctx.QueryInt("wilayah_id", 0); wilayahID > 0 {
		q = q.Where("wilayah_id = ?", wilayahID)
	}

	var rows []models.Cabang
	result, err := utils.Paginate(q.Order("nama ASC"), ctx.QueryInt("page", 1), ctx.QueryInt("per_page", 15), &rows)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(result)
}

type cabangInput struct {
	Kode      string `json:"kode" validate:"required,max=20"`
	Nama      string `json:"nama" validate:"required,max=150"`
	Alamat    string `json:"alamat" validate:"max=255"`
	WilayahID uint   `json:"wilayah_id" validate:"required"`
	IsActive  *bool  `json:"is_active"`
}

func (c *CabangController) Store(ctx *fiber.Ctx) error {
	var input cabangInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}

	var wilayah models.Wilayah
	if err := c.DB.First(&wilayah, input.WilayahID).Error; err != nil {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "Wilayah not found"})
	}

	var count int64
	c.DB.Model(&models.Cabang{}).Where("kode = ?", input.Kode).Count(&count)
	if count > 0 {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "Kode already used"})
	}

	row := models.Cabang{
		Kode:      input.Kode,
		Nama:      input.Nama,
		Alamat:    input.Alamat,
		WilayahID: input.WilayahID,
		IsActive:  true,
	}
	if input.IsActive != nil {
		row.IsActive = *input.IsActive
	}

	if err := c.DB.Create(&row).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusCreated).JSON(row)
}

func (c *CabangController) Show(ctx *fiber.Ctx) error {
	var row models.Cabang
	if err := c.DB.Preload("Wilayah").First(&row, ctx.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Cabang not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(row)
}

func (c *CabangController) Update(ctx *fiber.Ctx) error {
	var row models.Cabang
	if err := c.DB.First(&row, ctx.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Cabang not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var input cabangInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}

	var wilayah models.Wilayah
	if err := c.DB.First(&wilayah, input.WilayahID).Error; err != nil {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "Wilayah not found"})
	}

	var count int64
	c.DB.Model(&models.Cabang{}).Where("kode = ? AND id <> ?", input.Kode, row.ID).Count(&count)
	if count > 0 {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "Kode already used"})
	}

	row.Kode = input.Kode
	row.Nama = input.Nama
	row.Alamat = input.Alamat
	row.WilayahID = input.WilayahID
	if input.IsActive != nil {
		row.IsActive = *input.IsActive
	}

	if err := c.DB.Save(&row).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(row)
}

func (c *CabangController) Destroy(ctx *fiber.Ctx) error {
	var row models.Cabang
	if err := c.DB.First(&row, ctx.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Cabang not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := c.DB.Delete(&row).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(fiber.Map{"message": "Deleted"})
}
