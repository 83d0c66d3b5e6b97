package models

import "time"

// AuditTrail dipakai tabel master yang memakai kolom created_time / lastupdate_time
// (bukan created_at / updated_at bawaan gorm).
type AuditTrail struct {
	CreatedTime    *time.Time `json:"created_time" gorm:"column:created_time"`
	CreatedIP      string     `json:"created_ip" gorm:"column:created_ip;size:45"`
	CreatedBy      int        `json:"created_by" gorm:"column:created_by"`
	LastupdateTime *time.Time `json:"lastupdate_time" gorm:"column:lastupdate_time"`
	LastupdateIP   string     `json:"lastupdate_ip" gorm:"column:lastupdate_ip;size:45"`
	LastupdateBy   int        `json:"lastupdate_by" gorm:"column:lastupdate_by"`
}

// StampCreated mengisi audit kolom saat insert
func (a *AuditTrail) StampCreated(userID int, ip string) {
	now := time.Now()
	a.CreatedTime = &now
	a.CreatedIP = ip
	a.CreatedBy = userID
}

// StampUpdated mengisi audit kolom saat update
func (a *AuditTrail) StampUpdated(userID int, ip string) {
	now := time.Now()
	a.LastupdateTime = &now
	a.LastupdateIP = ip
	a.LastupdateBy = userID
}
