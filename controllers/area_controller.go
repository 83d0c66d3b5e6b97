package controllers

import (
	"errors"
	"strconv"

	"backend-master/models"
	"backend-master/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type AreaController struct {
	DB *gorm.DB
}

func NewAreaController(DB *gorm.DB) *AreaController {
	return &AreaController{DB: DB}
}

func (c *AreaController) Index(ctx *fiber.Ctx) error {
	q := c.DB.Model(&models.Area{})

	if s := ctx.Query("search"); s != "" {
		q = q.Where("nama_area LIKE ?", "%"+s+"%")
	}
	if v, ok := queryBool(ctx, "is_active"); ok {
		q = q.Where("is_active = ?", v)
	}
	if v, ok := queryBool(ctx, "wapu"); ok {
		q = q.Where("wapu = ?", v)
	}

	var rows []models.Area
	result, err := utils.Paginate(q.Order("nama_area ASC"), ctx.QueryInt("page", 1), ctx.QueryInt("per_page", 15), &rows)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(result)
}

// Store menerima multipart form karena lampiran berupa file
func (c *AreaController) Store(ctx *fiber.Ctx) error {
	namaArea := ctx.FormValue("nama_area")
	if namaArea == "" {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "nama_area is required"})
	}

	row := models.Area{
		NamaArea: namaArea,
		Wapu:     formBool(ctx, "wapu", false),
		IsActive: formBool(ctx, "is_active", true),
	}

	path, err := utils.SaveUpload(ctx, "lampiran", "area")
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save lampiran"})
	}
	row.Lampiran = path
	row.StampCreated(currentUserID(ctx), ctx.IP())

	if err := c.DB.Create(&row).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusCreated).JSON(row)
}

func (c *AreaController) Show(ctx *fiber.Ctx) error {
	var row models.Area
	if err := c.DB.First(&row, ctx.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Area not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(row)
}

func (c *AreaController) Update(ctx *fiber.Ctx) error {
	var row models.Area
	if err := c.DB.First(&row, ctx.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Area not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	namaArea := ctx.FormValue("nama_area")
	if namaArea == "" {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "nama_area is required"})
	}

	row.NamaArea = namaArea
	row.Wapu = formBool(ctx, "wapu", row.Wapu)
	row.IsActive = formBool(ctx, "is_active", row.IsActive)

	// remove_lampiran=1 menghapus lampiran lama tanpa upload baru
	if ctx.FormValue("remove_lampiran") == "1" && row.Lampiran != "" {
		utils.RemoveUpload(row.Lampiran)
		row.Lampiran = ""
	}
	path, err := utils.SaveUpload(ctx, "lampiran", "area")
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save lampiran"})
	}
	if path != "" {
		if row.Lampiran != "" {
			utils.RemoveUpload(row.Lampiran)
		}
		row.Lampiran = path
	}
	row.StampUpdated(currentUserID(ctx), ctx.IP())

	if err := c.DB.Save(&row).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(row)
}

func (c *AreaController) Destroy(ctx *fiber.Ctx) error {
	var row models.Area
	if err := c.DB.First(&row, ctx.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Area not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := c.DB.Delete(&row).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if row.Lampiran != "" {
		utils.RemoveUpload(row.Lampiran)
	}
	return ctx.JSON(fiber.Map{"message": "Deleted"})
}

func formBool(ctx *fiber.Ctx, key string, def bool) bool {
	v := ctx.FormValue(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
