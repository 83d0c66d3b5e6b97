package repositories

import (
	"errors"

	"backend-master/models"

	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

var (
	ErrRoleNotFound = errors.New("role not found")
	ErrMenuNotFound = errors.New("menu not found")
)

// MenuRepository memegang tabel role_menus dan user_roles.
// Semua mutasi permission lewat ReplaceRoleMenus, tidak ada jalur lain.
type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(DB *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: DB}
}

// RoleOption adalah baris role untuk layar admin role-menu
type RoleOption struct {
	ID   uint   `json:"id"`
	Kode string `json:"kode"`
	Nama string `json:"nama"`
}

// MenuOption adalah baris menu flat untuk layar admin role-menu
type MenuOption struct {
	ID       uint   `json:"id"`
	ParentID *uint  `json:"parent_id"`
	Name     string `json:"name"`
	Icon     string `json:"icon"`
	OrderNo  int    `json:"order_no"`
}

// RolesOfUser mengembalikan semua role id milik user. User tanpa role bukan error.
func (r *MenuRepository) RolesOfUser(userID uint) ([]uint, error) {
	var roleIDs []uint
	err := r.DB.Table("user_roles").Where("user_id = ?", userID).Pluck("role_id", &roleIDs).Error
	return roleIDs, err
}

// MenusOfRoles mengembalikan gabungan menu id dari semua role yang diberikan.
// Set role kosong langsung balik kosong tanpa menyentuh database.
func (r *MenuRepository) MenusOfRoles(roleIDs []uint) ([]uint, error) {
	if len(roleIDs) == 0 {
		return []uint{}, nil
	}
	var menuIDs []uint
	err := r.DB.Model(&models.RoleMenu{}).
		Distinct("menu_id").
		Where("role_id IN ?", roleIDs).
		Pluck("menu_id", &menuIDs).Error
	return menuIDs, err
}

// ActiveMenusByIDs mengambil baris menu aktif untuk id yang diizinkan,
// diurutkan supaya hasil tree deterministik. Grant ke menu nonaktif
// tersaring di sini.
func (r *MenuRepository) ActiveMenusByIDs(menuIDs []uint) ([]models.Menu, error) {
	if len(menuIDs) == 0 {
		return []models.Menu{}, nil
	}
	var menus []models.Menu
	err := r.DB.
		Where("id IN ? AND is_active = ?", menuIDs, true).
		Order("COALESCE(parent_id, 0) ASC, order_no ASC, id ASC").
		Find(&menus).Error
	return menus, err
}

// ActiveRoles mengembalikan role aktif untuk dropdown layar admin
func (r *MenuRepository) ActiveRoles() ([]RoleOption, error) {
	var roles []RoleOption
	err := r.DB.Model(&models.Role{}).
		Where("is_active = ?", true).
		Order("nama ASC").
		Find(&roles).Error
	return roles, err
}

// ActiveMenuOptions mengembalikan daftar menu flat aktif untuk layar admin
func (r *MenuRepository) ActiveMenuOptions() ([]MenuOption, error) {
	var menus []MenuOption
	err := r.DB.Model(&models.Menu{}).
		Where("is_active = ?", true).
		Order("COALESCE(parent_id, 0) ASC, order_no ASC, id ASC").
		Find(&menus).Error
	return menus, err
}

// ReplaceRoleMenus mengganti seluruh grant menu milik satu role dengan target set.
// Strateginya hapus semua dulu baru insert ulang dalam satu transaksi, supaya
// hasil commit persis sama dengan kiriman caller termasuk kasus uncheck semua.
// Nilai balik adalah hasil baca ulang setelah commit, bukan echo input.
func (r *MenuRepository) ReplaceRoleMenus(roleID uint, menuIDs []uint) ([]uint, error) {
	// dedup input, urutan kemunculan pertama dipertahankan
	seen := make(map[uint]bool, len(menuIDs))
	ids := make([]uint, 0, len(menuIDs))
	for _, id := range menuIDs {
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}

	var role models.Role
	if err := r.DB.First(&role, roleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoleNotFound
		}
		return nil, err
	}

	// semua menu id harus ada; satu saja tidak dikenal, seluruh kiriman ditolak
	if len(ids) > 0 {
		var count int64
		if err := r.DB.Model(&models.Menu{}).Where("id IN ?", ids).Count(&count).Error; err != nil {
			return nil, err
		}
		if count != int64(len(ids)) {
			return nil, ErrMenuNotFound
		}
	}

	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("role_id = ?", roleID).Delete(&models.RoleMenu{}).Error; err != nil {
			return err
		}
		if len(ids) == 0 {
			return nil
		}
		rows := make([]models.RoleMenu, 0, len(ids))
		for _, menuID := range ids {
			rows = append(rows, models.RoleMenu{RoleID: roleID, MenuID: menuID})
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		return nil, err
	}

	checked, err := r.MenusOfRoles([]uint{roleID})
	if err != nil {
		return nil, err
	}
	slices.Sort(checked)
	return checked, nil
}
