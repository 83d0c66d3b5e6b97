package main

import (
	"fmt"
	"log"

	"backend-master/config"
	"backend-master/controllers/idgen"
	"backend-master/database"
	"backend-master/migration"
	"backend-master/routes"

	"github.com/gofiber/fiber/v2"
)

func main() {
	config.LoadConfig()

	app := fiber.New()

	// Pastikan database ada
	database.EnsureDatabaseExists(config.DBName)

	db, err := database.OpenDatabaseConnection(config.DBName)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("Failed to auto migrate: %v", err)
	}

	database.RunSeeders(db)

	idgen.Init()

	config.SetupCORS(app)

	routes.SetupAuthRoutes(app, db)
	routes.SetupMenuRoutes(app, db)
	routes.SetupMasterRoutes(app, db)
	routes.SetupRoleRoutes(app, db)
	routes.SetupUserRoutes(app, db)

	port := config.APP_PORT
	fmt.Println("🚀 Server berjalan di port " + port)

	if err := app.Listen(":" + port); err != nil {
		log.Fatal(err)
	}
}
