package controllers

import (
	"errors"

	"backend-master/models"
	"backend-master/repositories"
	"backend-master/services"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type MenuController struct {
	DB  *gorm.DB
	nav *services.NavigationService
}

func NewMenuController(DB *gorm.DB) *MenuController {
	repo := repositories.NewMenuRepository(DB)
	return &MenuController{DB: DB, nav: services.NewNavigationService(repo)}
}

// MyMenus mengembalikan tree navigasi milik user yang sedang login.
// User tanpa role atau tanpa grant menerima array kosong, bukan error.
func (c *MenuController) MyMenus(ctx *fiber.Ctx) error {
	userID, ok := ctx.Locals("userID").(float64)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Unauthorized: Invalid user ID"})
	}

	tree, err := c.nav.MenusForUser(uint(userID))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(tree)
}

// GetAllMenus ambil seluruh katalog menu flat untuk layar admin
func (c *MenuController) GetAllMenus(ctx *fiber.Ctx) error {
	var menus []models.Menu
	err := c.DB.
		Order("COALESCE(parent_id, 0) ASC, order_no ASC, id ASC").
		Find(&menus).Error
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(fiber.Map{"data": menus, "success": true})
}

type menuInput struct {
	Name          string `json:"name" validate:"required,max=120"`
	Path          string `json:"path" validate:"max=200"`
	RouteName     string `json:"route_name" validate:"max=120"`
	Icon          string `json:"icon" validate:"max=80"`
	OrderNo       int    `json:"order_no"`
	ParentID      *uint  `json:"parent_id"`
	PermissionKey string `json:"permission_key" validate:"max=120"`
	IsActive      *bool  `json:"is_active"`
}

// CreateMenu input data baru
func (c *MenuController) CreateMenu(ctx *fiber.Ctx) error {
	var input menuInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}

	if input.ParentID != nil {
		var parent models.Menu
		if err := c.DB.First(&parent, *input.ParentID).Error; err != nil {
			return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "Parent menu not found"})
		}
	}

	menu := models.Menu{
		Name:          input.Name,
		Path:          input.Path,
		RouteName:     input.RouteName,
		Icon:          input.Icon,
		OrderNo:       input.OrderNo,
		ParentID:      input.ParentID,
		PermissionKey: input.PermissionKey,
		IsActive:      true,
	}
	if input.IsActive != nil {
		menu.IsActive = *input.IsActive
	}

	if err := c.DB.Create(&menu).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Menu created successfully", "data": menu, "success": true})
}

// UpdateMenu update data menu berdasarkan ID
func (c *MenuController) UpdateMenu(ctx *fiber.Ctx) error {
	menuID, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var menu models.Menu
	if err := c.DB.First(&menu, menuID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Menu not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var input menuInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}

	if input.ParentID != nil {
		if *input.ParentID == menu.ID {
			return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "Menu cannot be its own parent"})
		}
		var parent models.Menu
		if err := c.DB.First(&parent, *input.ParentID).Error; err != nil {
			return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "Parent menu not found"})
		}
	}

	menu.Name = input.Name
	menu.Path = input.Path
	menu.RouteName = input.RouteName
	menu.Icon = input.Icon
	menu.OrderNo = input.OrderNo
	menu.ParentID = input.ParentID
	menu.PermissionKey = input.PermissionKey
	if input.IsActive != nil {
		menu.IsActive = *input.IsActive
	}

	if err := c.DB.Save(&menu).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{"message": "Menu updated successfully", "data": menu, "success": true})
}

// DeleteMenu hapus menu berdasarkan ID. Grant role ikut dibersihkan dan
// children diangkat jadi top-level, meniru perilaku FK di skema aslinya.
func (c *MenuController) DeleteMenu(ctx *fiber.Ctx) error {
	menuID, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var menu models.Menu
	if err := c.DB.First(&menu, menuID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Menu not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	err = c.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("menu_id = ?", menu.ID).Delete(&models.RoleMenu{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Menu{}).Where("parent_id = ?", menu.ID).Update("parent_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&menu).Error
	})
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{"message": "Menu deleted successfully", "success": true})
}
