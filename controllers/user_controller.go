package controllers

import (
	"errors"
	"fmt"

	"backend-master/models"
	"backend-master/utils"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(DB *gorm.DB) *UserController {
	return &UserController{DB: DB}
}

func (c *UserController) Index(ctx *fiber.Ctx) error {
	q := c.DB.Model(&models.User{}).Preload("Roles").Preload("Cabang").Preload("Departemen")

	if s := ctx.Query("search"); s != "" {
		q = q.Where("name LIKE ? OR email LIKE ?", "%"+s+"%", "%"+s+"%")
	}
	if v, ok := queryBool(ctx, "is_active"); ok {
		q = q.Where("is_active = ?", v)
	}
	if roleID := ctx.QueryInt("role_id", 0); roleID > 0 {
		q = q.Joins("JOIN user_roles ON user_roles.user_id = users.id").
			Where("user_roles.role_id = ?", roleID)
	}

	var rows []models.User
	result, err := utils.Paginate(q.Order("name ASC"), ctx.QueryInt("page", 1), ctx.QueryInt("per_page", 15), &rows)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(result)
}

type userInput struct {
	Name         string `json:"name" validate:"required,max=120"`
	Email        string `json:"email" validate:"required,email,max=160"`
	Password     string `json:"password"`
	IsActive     *bool  `json:"is_active"`
	CabangID     *uint  `json:"cabang_id"`
	DepartemenID *uint  `json:"departemen_id"`
	RoleIDs      []uint `json:"role_ids"`
}

func (c *UserController) syncRoles(tx *gorm.DB, userID uint, roleIDs []uint) error {
	if err := tx.Where("user_id = ?", userID).Delete(&models.UserRole{}).Error; err != nil {
		return err
	}
	seen := make(map[uint]bool, len(roleIDs))
	rows := make([]models.UserRole, 0, len(roleIDs))
	for _, id := range roleIDs {
		if seen[id] {
			continue
		}
		seen[id] = true
		rows = append(rows, models.UserRole{UserID: userID, RoleID: id})
	}
	if len(rows) == 0 {
		return nil
	}
	return tx.Create(&rows).Error
}

func (c *UserController) validateRefs(input *userInput) string {
	if len(input.RoleIDs) > 0 {
		var count int64
		c.DB.Model(&models.Role{}).Where("id IN ?", input.RoleIDs).Count(&count)
		seen := make(map[uint]bool)
		distinct := 0
		for _, id := range input.RoleIDs {
			if !seen[id] {
				seen[id] = true
				distinct++
			}
		}
		if int(count) != distinct {
			return "One or more roles not found"
		}
	}
	if input.CabangID != nil {
		var cabang models.Cabang
		if err := c.DB.First(&cabang, *input.CabangID).Error; err != nil {
			return "Cabang not found"
		}
	}
	if input.DepartemenID != nil {
		var departemen models.Departemen
		if err := c.DB.First(&departemen, *input.DepartemenID).Error; err != nil {
			return "Departemen not found"
		}
	}
	return ""
}

func (c *UserController) Store(ctx *fiber.Ctx) error {
	var input userInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}
	if len(input.Password) < 6 {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "Password must be at least 6 characters"})
	}

	var count int64
	c.DB.Model(&models.User{}).Where("email = ?", input.Email).Count(&count)
	if count > 0 {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "Email already used"})
	}
	if msg := c.validateRefs(&input); msg != "" {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": msg})
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to hash password"})
	}

	row := models.User{
		Name:         input.Name,
		Email:        input.Email,
		Password:     string(hashed),
		IsActive:     true,
		CabangID:     input.CabangID,
		DepartemenID: input.DepartemenID,
	}
	if input.IsActive != nil {
		row.IsActive = *input.IsActive
	}

	err = c.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
		return c.syncRoles(tx, row.ID, input.RoleIDs)
	})
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	go utils.SendWelcomeEmail(row.Email, row.Name)

	c.DB.Preload("Roles").Preload("Cabang").Preload("Departemen").First(&row, row.ID)
	return ctx.Status(fiber.StatusCreated).JSON(row)
}

func (c *UserController) Show(ctx *fiber.Ctx) error {
	var row models.User
	if err := c.DB.Preload("Roles").Preload("Cabang").Preload("Departemen").First(&row, ctx.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(row)
}

func (c *UserController) Update(ctx *fiber.Ctx) error {
	var row models.User
	if err := c.DB.First(&row, ctx.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var input userInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}

	var count int64
	c.DB.Model(&models.User{}).Where("email = ? AND id <> ?", input.Email, row.ID).Count(&count)
	if count > 0 {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "Email already used"})
	}
	if msg := c.validateRefs(&input); msg != "" {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": msg})
	}

	row.Name = input.Name
	row.Email = input.Email
	row.CabangID = input.CabangID
	row.DepartemenID = input.DepartemenID
	if input.IsActive != nil {
		row.IsActive = *input.IsActive
	}
	// Password kosong berarti tidak diganti
	if input.Password != "" {
		if len(input.Password) < 6 {
			return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "Password must be at least 6 characters"})
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to hash password"})
		}
		row.Password = string(hashed)
	}

	err := c.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&row).Error; err != nil {
			return err
		}
		return c.syncRoles(tx, row.ID, input.RoleIDs)
	})
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	c.DB.Preload("Roles").Preload("Cabang").Preload("Departemen").First(&row, row.ID)
	return ctx.JSON(row)
}

func (c *UserController) Destroy(ctx *fiber.Ctx) error {
	var row models.User
	if err := c.DB.First(&row, ctx.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	err := c.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", row.ID).Delete(&models.UserRole{}).Error; err != nil {
			return err
		}
		return tx.Delete(&row).Error
	})
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(fiber.Map{"message": "Deleted"})
}

// Export menulis daftar user ke file Excel
func (c *UserController) Export(ctx *fiber.Ctx) error {
	var rows []models.User
	if err := c.DB.Preload("Roles").Preload("Cabang").Preload("Departemen").Order("name ASC").Find(&rows).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Users"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"No", "Name", "Email", "Roles", "Cabang", "Departemen", "Active"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for i, u := range rows {
		roleNames := ""
		for j, r := range u.Roles {
			if j > 0 {
				roleNames += ", "
			}
			roleNames += r.Nama
		}
		cabang := ""
		if u.Cabang != nil {
			cabang = u.Cabang.Nama
		}
		departemen := ""
		if u.Departemen != nil {
			departemen = u.Departemen.Nama
		}
		active := "No"
		if u.IsActive {
			active = "Yes"
		}

		values := []interface{}{i + 1, u.Name, u.Email, roleNames, cabang, departemen, active}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate file"})
	}

	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", "users.xlsx"))
	return ctx.Send(buf.Bytes())
}
