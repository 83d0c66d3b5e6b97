package models

type Pbbkb struct {
	ID         uint    `json:"id" gorm:"primaryKey"`
	NilaiPbbkb float64 `json:"nilai_pbbkb" gorm:"not null"`
	KetPbbkb   string  `json:"ket_pbbkb" gorm:"not null"`
	IsActive   bool    `json:"is_active" gorm:"default:true"`
	AuditTrail
}

func (Pbbkb) TableName() string {
	return "pbbkb"
}
