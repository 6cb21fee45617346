package models

import "time"

// Income represents a single income record belonging to a user.
type Income struct {
	Base
	UserID uint      `gorm:"not null;index" json:"user_id"`
	Source string    `gorm:"not null" json:"source"`
	Amount float64   `gorm:"not null" json:"amount"`
	Date   time.Time `gorm:"not null;index" json:"date"`
}
