package models

import "time"

type Cabang struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	WilayahID uint      `json:"wilayah_id" gorm:"not null;index"`
	Kode      string    `json:"kode" gorm:"size:20;uniqueIndex;not null"`
	Nama      string    `json:"nama" gorm:"size:150;not null"`
	Alamat    string    `json:"alamat" gorm:"size:255"`
	IsActive  bool      `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Wilayah *Wilayah `json:"wilayah,omitempty" gorm:"foreignKey:WilayahID"`
}

func (Cabang) TableName() string {
	return "cabang"
}
