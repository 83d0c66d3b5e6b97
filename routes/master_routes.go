package routes

import (
	"backend-master/config"
	"backend-master/controllers"
	"backend-master/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// resource adalah kontrak CRUD standar untuk route master data
type resource interface {
	Index(ctx *fiber.Ctx) error
	Store(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Destroy(ctx *fiber.Ctx) error
}

func registerResource(app *fiber.App, path string, c resource) {
	api := app.Group(config.MAIN_ROUTES+"/master/"+path, middleware.AuthMiddleware)
	api.Get("/", c.Index)
	api.Post("/", c.Store)
	api.Get("/:id", c.Show)
	api.Put("/:id", c.Update)
	api.Delete("/:id", c.Destroy)
}

func SetupMasterRoutes(app *fiber.App, db *gorm.DB) {
	registerResource(app, "wilayah", controllers.NewWilayahController(db))
	registerResource(app, "cabang", controllers.NewCabangController(db))
	registerResource(app, "departemen", controllers.NewDepartemenController(db))
	registerResource(app, "provinsi", controllers.NewProvinsiController(db))
	registerResource(app, "kabupaten", controllers.NewKabupatenController(db))
	registerResource(app, "vendor", controllers.NewVendorController(db))
	registerResource(app, "area", controllers.NewAreaController(db))
	registerResource(app, "terminal", controllers.NewTerminalController(db))
	registerResource(app, "produk", controllers.NewProdukController(db))
	registerResource(app, "pbbkb", controllers.NewPbbkbController(db))
}

func SetupRoleRoutes(app *fiber.App, db *gorm.DB) {
	roleController := controllers.NewRoleController(db)

	api := app.Group(config.MAIN_ROUTES+"/master/roles", middleware.AuthMiddleware)
	api.Get("/active", roleController.Active)
	api.Get("/", roleController.Index)
	api.Post("/", roleController.Store)
	api.Get("/:id", roleController.Show)
	api.Put("/:id", roleController.Update)
	api.Delete("/:id", roleController.Destroy)
}

func SetupUserRoutes(app *fiber.App, db *gorm.DB) {
	userController := controllers.NewUserController(db)

	api := app.Group(config.MAIN_ROUTES+"/master/users", middleware.AuthMiddleware)
	api.Get("/export", userController.Export)
	api.Get("/", userController.Index)
	api.Post("/", userController.Store)
	api.Get("/:id", userController.Show)
	api.Put("/:id", userController.Update)
	api.Delete("/:id", userController.Destroy)
}
