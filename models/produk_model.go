package models

type Produk struct {
	ID            uint   `json:"id" gorm:"primaryKey"`
	JenisProduk   string `json:"jenis_produk" gorm:"size:20;not null"`
	MerkDagang    string `json:"merk_dagang" gorm:"size:150;not null"`
	CatatanProduk string `json:"catatan_produk"`
	NoUrut        int    `json:"no_urut" gorm:"default:0"`
	IsActive      bool   `json:"is_active" gorm:"default:true"`
	AuditTrail
}

func (Produk) TableName() string {
	return "produk"
}
