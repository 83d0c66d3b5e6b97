package models

type Area struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	NamaArea string `json:"nama_area" gorm:"size:150;not null"`
	Wapu     bool   `json:"wapu" gorm:"default:false"`
	Lampiran string `json:"lampiran" gorm:"size:255"`
	IsActive bool   `json:"is_active" gorm:"default:true"`
	AuditTrail
}

func (Area) TableName() string {
	return "area"
}
