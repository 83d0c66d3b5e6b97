package database

import (
	"log"

	"backend-master/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// RunSeeders mengisi data awal: wilayah, cabang, departemen, role,
// menu tree, user admin, dan grant menu untuk role ADMIN.
// Aman dipanggil berulang, seed dilewati kalau user admin sudah ada.
func RunSeeders(db *gorm.DB) {
	var count int64
	db.Model(&models.User{}).Where("email = ?", "admin@syop.local").Count(&count)
	if count > 0 {
		return
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		wilayah := models.Wilayah{Kode: "WIL-01", Nama: "JABODETABEK", IsActive: true}
		if err := tx.Create(&wilayah).Error; err != nil {
			return err
		}

		cabang := models.Cabang{WilayahID: wilayah.ID, Kode: "CBG-01", Nama: "JAKARTA", Alamat: "Head Office", IsActive: true}
		if err := tx.Create(&cabang).Error; err != nil {
			return err
		}

		departemen := models.Departemen{Kode: "DEP-IT", Nama: "IT", IsActive: true}
		if err := tx.Create(&departemen).Error; err != nil {
			return err
		}

		roles := []models.Role{
			{Kode: "ADMIN", Nama: "Administrator", IsActive: true},
			{Kode: "BM", Nama: "Branch Manager", IsActive: true},
			{Kode: "OM", Nama: "Operation Manager", IsActive: true},
			{Kode: "PROC", Nama: "Procurement", IsActive: true},
		}
		if err := tx.Create(&roles).Error; err != nil {
			return err
		}
		adminRole := roles[0]

		mkMenu := func(parent *uint, name, path, routeName, icon string, orderNo int) (*models.Menu, error) {
			m := models.Menu{
				ParentID:  parent,
				Name:      name,
				Path:      path,
				RouteName: routeName,
				Icon:      icon,
				OrderNo:   orderNo,
				IsActive:  true,
			}
			if err := tx.Create(&m).Error; err != nil {
				return nil, err
			}
			return &m, nil
		}

		dashboard, err := mkMenu(nil, "Dashboard", "/dashboard", "dashboard", "tabler-smart-home", 1)
		if err != nil {
			return err
		}
		master, err := mkMenu(nil, "Master", "", "", "tabler-settings", 2)
		if err != nil {
			return err
		}
		auth, err := mkMenu(nil, "Auth", "", "", "tabler-lock", 3)
		if err != nil {
			return err
		}

		regional, err := mkMenu(&master.ID, "Regional", "", "", "tabler-map-2", 1)
		if err != nil {
			return err
		}

		type menuDef struct {
			parent    *uint
			name      string
			path      string
			routeName string
			icon      string
			orderNo   int
		}
		defs := []menuDef{
			{&regional.ID, "Provinsi", "/master/provinsi", "master-provinsi", "tabler-map-pin", 2},
			{&regional.ID, "Kabupaten", "/master/kabupaten", "master-kabupaten", "tabler-map-pin", 3},
			{&regional.ID, "Wilayah", "/master/wilayah", "master-wilayah", "tabler-map", 4},
			{&regional.ID, "Area", "/master/area", "master-area", "tabler-map-pin", 5},
			{&master.ID, "Cabang", "/master/cabang", "master-cabang", "tabler-building", 8},
			{&master.ID, "Departemen", "/master/departemen", "master-departemen", "tabler-users", 9},
			{&master.ID, "Vendor", "/master/vendor", "master-vendor", "tabler-building-store", 10},
			{&master.ID, "Terminal", "/master/terminal", "master-terminal", "tabler-gas-station", 11},
			{&auth.ID, "Users", "/master/users", "master-users", "tabler-user", 1},
			{&auth.ID, "Roles", "/master/roles", "master-roles", "tabler-shield", 2},
			{&auth.ID, "Role Menu", "/master/role-menus", "master-role-menus", "tabler-lock", 3},
			{&auth.ID, "Produk", "/master/produk", "master-produk", "tabler-archive", 4},
			{&auth.ID, "PBBKB", "/master/pbbkb", "master-pbbkb", "tabler-article", 5},
		}

		granted := []uint{dashboard.ID, master.ID, auth.ID, regional.ID}
		for _, d := range defs {
			m, err := mkMenu(d.parent, d.name, d.path, d.routeName, d.icon, d.orderNo)
			if err != nil {
				return err
			}
			granted = append(granted, m.ID)
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		admin := models.User{
			Name:         "Admin SYOP",
			Email:        "admin@syop.local",
			Password:     string(hashed),
			IsActive:     true,
			CabangID:     &cabang.ID,
			DepartemenID: &departemen.ID,
		}
		if err := tx.Create(&admin).Error; err != nil {
			return err
		}

		if err := tx.Create(&models.UserRole{UserID: admin.ID, RoleID: adminRole.ID}).Error; err != nil {
			return err
		}

		grants := make([]models.RoleMenu, 0, len(granted))
		for _, id := range granted {
			grants = append(grants, models.RoleMenu{RoleID: adminRole.ID, MenuID: id})
		}
		return tx.Create(&grants).Error
	})
	if err != nil {
		log.Fatalf("Failed to run seeders: %v", err)
	}
}
