package migration

import (
	"backend-master/models"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Role{},
		&models.UserRole{},
		&models.Menu{},
		&models.RoleMenu{},
		&models.LoginLog{},
		&models.Wilayah{},
		&models.Cabang{},
		&models.Departemen{},
		&models.Provinsi{},
		&models.Kabupaten{},
		&models.MasterVendor{},
		&models.Area{},
		&models.Terminal{},
		&models.Produk{},
		&models.Pbbkb{},
	)
}
