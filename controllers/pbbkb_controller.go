package controllers

import (
	"errors"
	"strconv"
	"strings"

	"backend-master/models"
	"backend-master/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type PbbkbController struct {
	DB *gorm.DB
}

func NewPbbkbController(DB *gorm.DB) *PbbkbController {
	return &PbbkbController{DB: DB}
}

func (c *PbbkbController) Index(ctx *fiber.Ctx) error {
	q := c.DB.Model(&models.Pbbkb{})

	if s := ctx.Query("search"); s != "" {
		q = q.Where("ket_pbbkb LIKE ?", "%"+s+"%")
	}
	if v, ok := queryBool(ctx, "is_active"); ok {
		q = q.Where("is_active = ?", v)
	}

	var rows []models.Pbbkb
	result, err := utils.Paginate(q.Order("nilai_pbbkb ASC"), ctx.QueryInt("page", 1), ctx.QueryInt("per_page", 15), &rows)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(result)
}

type pbbkbInput struct {
	NilaiPbbkb string `json:"nilai_pbbkb"`
	KetPbbkb   string `json:"ket_pbbkb"`
	IsActive   *bool  `json:"is_active"`
}

// parseNilai menerima angka dengan koma desimal gaya lokal ("7,5")
func (in *pbbkbInput) parseNilai() (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(in.NilaiPbbkb, ",", "."), 64)
}

func (c *PbbkbController) Store(ctx *fiber.Ctx) error {
	var input pbbkbInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	if input.KetPbbkb == "" {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "ket_pbbkb is required"})
	}
	nilai, err := input.parseNilai()
	if err != nil {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "nilai_pbbkb must be numeric"})
	}

	row := models.Pbbkb{NilaiPbbkb: nilai, KetPbbkb: input.KetPbbkb, IsActive: true}
	if input.IsActive != nil {
		row.IsActive = *input.IsActive
	}
	row.StampCreated(currentUserID(ctx), ctx.IP())

	if err := c.DB.Create(&row).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusCreated).JSON(row)
}

func (c *PbbkbController) Show(ctx *fiber.Ctx) error {
	var row models.Pbbkb
	if err := c.DB.First(&row, ctx.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Pbbkb not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(row)
}

func (c *PbbkbController) Update(ctx *fiber.Ctx) error {
	var row models.Pbbkb
	if err := c.DB.First(&row, ctx.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Pbbkb not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var input pbbkbInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	if input.KetPbbkb == "" {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "ket_pbbkb is required"})
	}
	nilai, err := input.parseNilai()
	if err != nil {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "nilai_pbbkb must be numeric"})
	}

	row.NilaiPbbkb = nilai
	row.KetPbbkb = input.KetPbbkb
	if input.IsActive != nil {
		row.IsActive = *input.IsActive
	}
	row.StampUpdated(currentUserID(ctx), ctx.IP())

	if err := c.DB.Save(&row).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(row)
}

func (c *PbbkbController) Destroy(ctx *fiber.Ctx) error {
	var row models.Pbbkb
	if err := c.DB.First(&row, ctx.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Pbbkb not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := c.DB.Delete(&row).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(fiber.Map{"message": "Deleted"})
}
