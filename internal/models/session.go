package models

import "time"

// Session só existe quando o armazenamento de sessão é feito no banco
// (sem Redis configurado). O token é o valor opaco do cookie.
type Session struct {
	Token     string    `gorm:"primaryKey;size:64" json:"token"`
	AdminID   uint      `gorm:"not null" json:"adminId"`
	ExpiresAt time.Time `gorm:"not null;index" json:"expiresAt"`

	CreatedAt time.Time `json:"createdAt"`
}
