package models

import "time"

// Role Model
type Role struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Kode      string    `json:"kode" gorm:"size:30;uniqueIndex;not null"`
	Nama      string    `json:"nama" gorm:"size:120;not null"`
	IsActive  bool      `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Menus []Menu `json:"-" gorm:"many2many:role_menus;"`
	Users []User `json:"-" gorm:"many2many:user_roles;"`
}

func (Role) TableName() string {
	return "roles"
}

// RoleMenu adalah pivot role -> menu. Satu pasangan hanya boleh ada satu baris.
type RoleMenu struct {
	RoleID uint `json:"role_id" gorm:"primaryKey;autoIncrement:false"`
	MenuID uint `json:"menu_id" gorm:"primaryKey;autoIncrement:false"`
}

func (RoleMenu) TableName() string {
	return "role_menus"
}
