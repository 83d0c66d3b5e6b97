package controllers

import (
	"errors"

	"backend-master/repositories"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type RoleMenuController struct {
	DB   *gorm.DB
	repo *repositories.MenuRepository
}

func NewRoleMenuController(DB *gorm.DB) *RoleMenuController {
	return &RoleMenuController{DB: DB, repo: repositories.NewMenuRepository(DB)}
}

// Index mengembalikan bahan layar admin role-menu: daftar role aktif, katalog
// menu flat, dan menu yang sudah tercentang untuk role_id yang diminta.
// Ini view admin yang datar, beda dengan tree hasil shaping di /auth/my-menus.
func (c *RoleMenuController) Index(ctx *fiber.Ctx) error {
	roles, err := c.repo.ActiveRoles()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	menus, err := c.repo.ActiveMenuOptions()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	checked := []uint{}
	if roleID := ctx.QueryInt("role_id", 0); roleID > 0 {
		checked, err = c.repo.MenusOfRoles([]uint{uint(roleID)})
		if err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
	}

	return ctx.JSON(fiber.Map{
		"roles":   roles,
		"menus":   menus,
		"checked": checked,
	})
}

// Store mengganti seluruh grant menu milik satu role dengan kiriman admin.
// Satu menu id tidak dikenal berarti seluruh kiriman ditolak, tidak ada
// grant parsial.
func (c *RoleMenuController) Store(ctx *fiber.Ctx) error {
	var input struct {
		RoleID  uint   `json:"role_id" validate:"required"`
		MenuIDs []uint `json:"menu_ids"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "Invalid input"})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}

	checked, err := c.repo.ReplaceRoleMenus(input.RoleID, input.MenuIDs)
	if err != nil {
		if errors.Is(err, repositories.ErrRoleNotFound) || errors.Is(err, repositories.ErrMenuNotFound) {
			return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{
		"message": "Role menus saved",
		"checked": checked,
	})
}
