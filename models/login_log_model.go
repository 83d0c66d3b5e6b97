package models

import "time"

type LoginLog struct {
	ID            uint       `json:"id" gorm:"primaryKey"`
	SessionID     string     `json:"session_id" gorm:"size:64;index"`
	UserID        *uint      `json:"user_id"`
	Email         string     `json:"email" gorm:"size:160"`
	LoginAt       *time.Time `json:"login_at"`
	LogoutAt      *time.Time `json:"logout_at"`
	IPAddress     string     `json:"ip_address" gorm:"size:45"`
	UserAgent     string     `json:"user_agent" gorm:"size:255"`
	LoginStatus   string     `json:"login_status" gorm:"size:20"`
	FailureReason *string    `json:"failure_reason" gorm:"size:50"`
	CreatedAt     time.Time  `json:"created_at"`
}

func (LoginLog) TableName() string {
	return "login_logs"
}
