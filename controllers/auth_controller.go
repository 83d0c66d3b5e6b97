package controllers

import (
	"errors"
	"time"

	"backend-master/config"
	"backend-master/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(DB *gorm.DB) *AuthController {
	return &AuthController{DB: DB}
}

func (c *AuthController) Login(ctx *fiber.Ctx) error {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request",
		})
	}

	if input.Email == "" || input.Password == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Missing required fields",
		})
	}

	sessionID := uuid.New().String()
	now := time.Now()

	// default log FAILED, di-overwrite kalau login sukses
	loginLog := models.LoginLog{
		SessionID:   sessionID,
		Email:       input.Email,
		LoginAt:     &now,
		IPAddress:   ctx.IP(),
		UserAgent:   ctx.Get("User-Agent"),
		LoginStatus: "FAILED",
	}

	var user models.User
	result := c.DB.Where("email = ?", input.Email).First(&user)
	if result.Error != nil {
		reason := "USER_NOT_FOUND"
		loginLog.FailureReason = &reason
		c.DB.Create(&loginLog)

		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid email or password",
			})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": result.Error.Error(),
		})
	}

	if !user.IsActive {
		reason := "USER_INACTIVE"
		uid := user.ID
		loginLog.UserID = &uid
		loginLog.FailureReason = &reason
		c.DB.Create(&loginLog)

		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "User is not active",
		})
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)) != nil {
		reason := "WRONG_PASSWORD"
		uid := user.ID
		loginLog.UserID = &uid
		loginLog.FailureReason = &reason
		c.DB.Create(&loginLog)

		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Invalid email or password",
		})
	}

	uid := user.ID
	loginLog.UserID = &uid
	loginLog.LoginStatus = "SUCCESS"
	c.DB.Create(&loginLog)

	claims := jwt.MapClaims{
		"user_id":    user.ID,
		"session_id": sessionID,
		"exp":        now.Add(time.Duration(config.JWTExpiration) * time.Second).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(config.JWTSecret))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to sign token",
		})
	}

	ctx.Cookie(config.GetTokenCookie(signed))

	c.DB.Preload("Roles").First(&user, user.ID)

	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Login successful",
		"token":   signed,
		"user":    user,
	})
}

// Me mengembalikan profil user yang sedang login beserta role-nya
func (c *AuthController) Me(ctx *fiber.Ctx) error {
	userID, ok := ctx.Locals("userID").(float64)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Unauthorized: Invalid user ID",
		})
	}

	var user models.User
	err := c.DB.
		Preload("Roles").
		Preload("Cabang").
		Preload("Departemen").
		First(&user, uint(userID)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "User not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(fiber.Map{"data": user, "success": true})
}

func (c *AuthController) Logout(ctx *fiber.Ctx) error {
	sessionID, ok := ctx.Locals("sessionID").(string)
	if !ok || sessionID == "" {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Invalid session",
		})
	}

	now := time.Now()
	c.DB.Model(&models.LoginLog{}).
		Where("session_id = ? AND logout_at IS NULL", sessionID).
		Update("logout_at", &now)

	// Hapus token dari cookie
	ctx.Cookie(config.GetTokenCookie(""))

	return ctx.JSON(fiber.Map{
		"success": true,
		"message": "Logout successful",
	})
}
