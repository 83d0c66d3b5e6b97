package models

import "time"

type Provinsi struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Kode      string    `json:"kode" gorm:"size:20;uniqueIndex;not null"`
	Nama      string    `json:"nama" gorm:"size:150;not null"`
	IsActive  bool      `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Provinsi) TableName() string {
	return "provinsi"
}
