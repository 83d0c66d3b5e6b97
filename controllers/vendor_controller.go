package controllers

import (
	"errors"

	"backend-master/models"
	"backend-master/utils"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type VendorController struct {
	DB *gorm.DB
}

func NewVendorController(DB *gorm.DB) *VendorController {
	return &VendorController{DB: DB}
}

func (c *VendorController) Index(ctx *fiber.Ctx) error {
	q := c.DB.Model(&models.MasterVendor{})

	if s := ctx.Query("search"); s != "" {
		like := "%" + s + "%"
		q = q.Where("kode_vendor LIKE ? OR inisial_vendor LIKE ? OR nama_vendor LIKE ?", like, like, like)
	}
	if v, ok := queryBool(ctx, "is_active"); ok {
		q = q.Where("is_active = ?", v)
	}

	var rows []models.MasterVendor
	result, err := utils.Paginate(q.Order("nama_vendor ASC"), ctx.QueryInt("page", 1), ctx.QueryInt("per_page", 15), &rows)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(result)
}

type vendorInput struct {
	KodeVendor    string `json:"kode_vendor" validate:"required,max=50"`
	IDAccurate    string `json:"id_accurate" validate:"max=50"`
	InisialVendor string `json:"inisial_vendor" validate:"required,max=20"`
	NamaVendor    string `json:"nama_vendor" validate:"required,max=150"`
	IsActive      *bool  `json:"is_active"`
}

func (c *VendorController) Store(ctx *fiber.Ctx) error {
	var input vendorInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}

	var count int64
	c.DB.Model(&models.MasterVendor{}).Where("kode_vendor = ?", input.KodeVendor).Count(&count)
	if count > 0 {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "Kode vendor already used"})
	}

	row := models.MasterVendor{
		KodeVendor:    input.KodeVendor,
		IDAccurate:    input.IDAccurate,
		InisialVendor: input.InisialVendor,
		NamaVendor:    input.NamaVendor,
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

func (c *VendorController) Show(ctx *fiber.Ctx) error {
	var row models.MasterVendor
	if err := c.DB.First(&row, ctx.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Vendor not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(row)
}

func (c *VendorController) Update(ctx *fiber.Ctx) error {
	var row models.MasterVendor
	if err := c.DB.First(&row, ctx.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Vendor not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var input vendorInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}

	var count int64
	c.DB.Model(&models.MasterVendor{}).Where("kode_vendor = ? AND id <> ?", input.KodeVendor, row.ID).Count(&count)
	if count > 0 {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "Kode vendor already used"})
	}

	row.KodeVendor = input.KodeVendor
	row.IDAccurate = input.IDAccurate
	row.InisialVendor = input.InisialVendor
	row.NamaVendor = input.NamaVendor
	if input.IsActive != nil {
		row.IsActive = *input.IsActive
	}
	row.StampUpdated(currentUserID(ctx), ctx.IP())

	if err := c.DB.Save(&row).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(row)
}

func (c *VendorController) Destroy(ctx *fiber.Ctx) error {
	var row models.MasterVendor
	if err := c.DB.First(&row, ctx.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Vendor not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := c.DB.Delete(&row).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(fiber.Map{"message": "Deleted"})
}
