package routes

import (
	"backend-master/config"
	"backend-master/controllers"
	"backend-master/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupMenuRoutes(app *fiber.App, db *gorm.DB) {
	menuController := controllers.NewMenuController(db)
	roleMenuController := controllers.NewRoleMenuController(db)

	api := app.Group(config.MAIN_ROUTES+"/master/menus", middleware.AuthMiddleware)
	api.Get("/", menuController.GetAllMenus)
	api.Post("/", menuController.CreateMenu)
	api.Put("/:id", menuController.UpdateMenu)
	api.Delete("/:id", menuController.DeleteMenu)

	rm := app.Group(config.MAIN_ROUTES+"/master/role-menus", middleware.AuthMiddleware)
	rm.Get("/", roleMenuController.Index)
	rm.Post("/", roleMenuController.Store)
}
