package models

import "time"

type Kabupaten struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	ProvinsiID uint      `json:"provinsi_id" gorm:"not null;index"`
	Kode       string    `json:"kode" gorm:"size:20;uniqueIndex;not null"`
	Nama       string    `json:"nama" gorm:"size:150;not null"`
	IsActive   bool      `json:"is_active" gorm:"default:true"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	Provinsi *Provinsi `json:"provinsi,omitempty" gorm:"foreignKey:ProvinsiID"`
}

func (Kabupaten) TableName() string {
	return "kabupaten"
}
