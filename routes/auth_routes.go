package routes

import (
	"backend-master/config"
	"backend-master/controllers"
	"backend-master/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAuthRoutes(app *fiber.App, db *gorm.DB) {
	authController := controllers.NewAuthController(db)
	menuController := controllers.NewMenuController(db)

	api := app.Group(config.MAIN_ROUTES + "/auth")
	api.Post("/login", authController.Login)

	protected := app.Group(config.MAIN_ROUTES+"/auth", middleware.AuthMiddleware)
	protected.Get("/me", authController.Me)
	protected.Get("/my-menus", menuController.MyMenus)
	protected.Post("/logout", authController.Logout)
}
