package models

import "time"

type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"size:120;not null"`
	Email        string    `json:"email" gorm:"size:160;uniqueIndex;not null"`
	Password     string    `json:"-" gorm:"size:255;not null"`
	IsActive     bool      `json:"is_active" gorm:"default:true"`
	CabangID     *uint     `json:"cabang_id"`
	DepartemenID *uint     `json:"departemen_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Cabang     *Cabang     `json:"cabang,omitempty" gorm:"foreignKey:CabangID"`
	Departemen *Departemen `json:"departemen,omitempty" gorm:"foreignKey:DepartemenID"`
	Roles      []Role      `json:"roles,omitempty" gorm:"many2many:user_roles;"`
}

func (User) TableName() string {
	return "users"
}

// UserRole adalah pivot user -> role
type UserRole struct {
	UserID uint `json:"user_id" gorm:"primaryKey;autoIncrement:false"`
	RoleID uint `json:"role_id" gorm:"primaryKey;autoIncrement:false"`
}

func (UserRole) TableName() string {
	return "user_roles"
}
