package controllers

import (
	"errors"

	"backend-master/models"
	"backend-master/utils"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ProdukController struct {
	DB *gorm.DB
}

func NewProdukController(DB *gorm.DB) *ProdukController {
	return &ProdukController{DB: DB}
}

func (c *ProdukController) Index(ctx *fiber.Ctx) error {
	q := c.DB.Model(&models.Produk{})

	if s := ctx.Query("search"); s != "" {
		like := "%" + s + "%"
		q = q.Where("jenis_produk LIKE ? OR merk_dagang LIKE ?", like, like)
	}
	if v, ok := queryBool(ctx, "is_active"); ok {
		q = q.Where("is_active = ?", v)
	}

	var rows []models.Produk
	result, err := utils.Paginate(q.Order("no_urut ASC, merk_dagang ASC"), ctx.QueryInt("page", 1), ctx.QueryInt("per_page", 15), &rows)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(result)
}

type produkInput struct {
	JenisProduk   string `json:"jenis_produk" validate:"required,max=20"`
	MerkDagang    string `json:"merk_dagang" validate:"required,max=150"`
	CatatanProduk string `json:"catatan_produk" validate:"required"`
	NoUrut        int    `json:"no_urut"`
	IsActive      *bool  `json:"is_active"`
}

func (c *ProdukController) Store(ctx *fiber.Ctx) error {
	var input produkInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}

	row := models.Produk{
		JenisProduk:   input.JenisProduk,
		MerkDagang:    input.MerkDagang,
		CatatanProduk: input.CatatanProduk,
		NoUrut:        input.NoUrut,
		IsActive:      true,
	}
	if input.IsActive != nil {
		row.IsActive = *input.IsActive
	}
	row.StampCreated(currentUserID(ctx), ctx.IP())

	if err := c.DB.Create(&row).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusCreated).JSON(row)
}

func (c *ProdukController) Show(ctx *fiber.Ctx) error {
	var row models.Produk
	if err := c.DB.First(&row, ctx.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Produk not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(row)
}

func (c *ProdukController) Update(ctx *fiber.Ctx) error {
	var row models.Produk
	if err := c.DB.First(&row, ctx.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Produk not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var input produkInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}

	row.JenisProduk = input.JenisProduk
	row.MerkDagang = input.MerkDagang
	row.CatatanProduk = input.CatatanProduk
	row.NoUrut = input.NoUrut
	if input.IsActive != nil {
		row.IsActive = *input.IsActive
	}
	row.StampUpdated(currentUserID(ctx), ctx.IP())

	if err := c.DB.Save(&row).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(row)
}

func (c *ProdukController) Destroy(ctx *fiber.Ctx) error {
	var row models.Produk
	if err := c.DB.First(&row, ctx.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Produk not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := c.DB.Delete(&row).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(fiber.Map{"message": "Deleted"})
}
