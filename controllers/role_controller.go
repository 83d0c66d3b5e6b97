package controllers

import (
	"errors"

	"backend-master/models"
	"backend-master/utils"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type RoleController struct {
	DB *gorm.DB
}

func NewRoleController(DB *gorm.DB) *RoleController {
	return &RoleController{DB: DB}
}

func (c *RoleController) Index(ctx *fiber.Ctx) error {
	q := c.DB.Model(&models.Role{})

	if s := ctx.Query("search"); s != "" {
		q = q.Where("kode LIKE ? OR nama LIKE ?", "%"+s+"%", "%"+s+"%")
	}
	if v, ok := queryBool(ctx, "is_active"); ok {
		q = q.Where("is_active = ?", v)
	}

	var rows []models.Role
	result, err := utils.Paginate(q.Order("nama ASC"), ctx.QueryInt("page", 1), ctx.QueryInt("per_page", 15), &rows)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(result)
}

// Active dipakai dropdown assignment, tanpa paginasi
func (c *RoleController) Active(ctx *fiber.Ctx) error {
	var rows []models.Role
	if err := c.DB.Where("is_active = ?", true).Order("nama ASC").Find(&rows).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(rows)
}

type roleInput struct {
	Kode     string `json:"kode" validate:"required,max=30"`
	Nama     string `json:"nama" validate:"required,max=120"`
	IsActive *bool  `json:"is_active"`
}

func (c *RoleController) Store(ctx *fiber.Ctx) error {
	var input roleInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}

	var count int64
	c.DB.Model(&models.Role{}).Where("kode = ?", input.Kode).Count(&count)
	if count > 0 {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "Kode already used"})
	}

	row := models.Role{Kode: input.Kode, Nama: input.Nama, IsActive: true}
	if input.IsActive != nil {
		row.IsActive = *input.IsActive
	}

	if err := c.DB.Create(&row).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.Status(fiber.StatusCreated).JSON(row)
}

func (c *RoleController) Show(ctx *fiber.Ctx) error {
	var row models.Role
	if err := c.DB.First(&row, ctx.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Role not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(row)
}

func (c *RoleController) Update(ctx *fiber.Ctx) error {
	var row models.Role
	if err := c.DB.First(&row, ctx.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Role not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var input roleInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}

	var count int64
	c.DB.Model(&models.Role{}).Where("kode = ? AND id <> ?", input.Kode, row.ID).Count(&count)
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

func (c *RoleController) Destroy(ctx *fiber.Ctx) error {
	var row models.Role
	if err := c.DB.First(&row, ctx.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Role not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	err := c.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("role_id = ?", row.ID).Delete(&models.RoleMenu{}).Error; err != nil {
			return err
		}
		if err := tx.Where("role_id = ?", row.ID).Delete(&models.UserRole{}).Error; err != nil {
			return err
		}
		return tx.Delete(&row).Error
	})
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(fiber.Map{"message": "Deleted"})
}
