package models

type MasterVendor struct {
	ID            uint   `json:"id" gorm:"primaryKey"`
	IDAccurate    string `json:"id_accurate" gorm:"column:id_accurate;size:50"`
	KodeVendor    string `json:"kode_vendor" gorm:"size:50;uniqueIndex;not null"`
	InisialVendor string `json:"inisial_vendor" gorm:"size:20;not null"`
	NamaVendor    string `json:"nama_vendor" gorm:"size:150;not null"`
	IsActive      bool   `json:"is_active" gorm:"default:true"`
	AuditTrail
}

func (MasterVendor) TableName() string {
	return "master_vendor"
}
