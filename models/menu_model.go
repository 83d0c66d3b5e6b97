package models

import "time"

// Menu adalah node navigasi. ParentID nil berarti menu top-level.
type Menu struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	ParentID      *uint     `json:"parent_id" gorm:"index"`
	Name          string    `json:"name" gorm:"size:120;not null"`
	Path          string    `json:"path" gorm:"size:200"`
	RouteName     string    `json:"route_name" gorm:"size:120"`
	Icon          string    `json:"icon" gorm:"size:80"`
	OrderNo       int       `json:"order_no" gorm:"default:0"`
	PermissionKey string    `json:"permission_key" gorm:"size:120"`
	IsActive      bool      `json:"is_active" gorm:"default:true"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	Parent   *Menu  `json:"-" gorm:"foreignKey:ParentID"`
	Children []Menu `json:"children,omitempty" gorm:"foreignKey:ParentID"`
	Roles    []Role `json:"-" gorm:"many2many:role_menus;"`
}

func (Menu) TableName() string {
	return "menus"
}
