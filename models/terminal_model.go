package models

type Terminal struct {
	ID               uint     `json:"id" gorm:"primaryKey"`
	NamaTerminal     string   `json:"nama_terminal" gorm:"size:150;not null"`
	InisialTerminal  string   `json:"inisial_terminal" gorm:"size:30"`
	TankiTerminal    string   `json:"tanki_terminal" gorm:"size:100"`
	LokasiTerminal   string   `json:"lokasi_terminal" gorm:"size:150"`
	KategoriTerminal string   `json:"kategori_terminal" gorm:"size:30;not null"`
	BatasAtas        *float64 `json:"batas_atas"`
	BatasBawah       *float64 `json:"batas_bawah"`
	Latitude         *float64 `json:"latitude"`
	Longitude        *float64 `json:"longitude"`
	AlamatTerminal   string   `json:"alamat_terminal"`
	TelpTerminal     string   `json:"telp_terminal" gorm:"size:50"`
	FaxTerminal      string   `json:"fax_terminal" gorm:"size:50"`
	CcTerminal       string   `json:"cc_terminal" gorm:"size:100"`
	CatatanTerminal  string   `json:"catatan_terminal"`
	AttTerminal      string   `json:"att_terminal" gorm:"size:255"`
	IsActive         bool     `json:"is_active" gorm:"default:true"`
	IDCabang         *uint    `json:"id_cabang" gorm:"column:id_cabang"`
	IDArea           *uint    `json:"id_area" gorm:"column:id_area"`
	AuditTrail

	Cabang *Cabang `json:"cabang,omitempty" gorm:"foreignKey:IDCabang"`
	Area   *Area   `json:"area,omitempty" gorm:"foreignKey:IDArea"`
}

func (Terminal) TableName() string {
	return "terminal"
}
