package models

import "time"

// Expense represents a single expense record belonging to a user.
// Amount holds the total cost, i.e. unit price multiplied by Quantity.
type Expense struct {
	Base
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	Category    string    `gorm:"not null" json:"category"`
	Amount      float64   `gorm:"not null" json:"amount"`
	Quantity    int       `gorm:"not null;default:1" json:"quantity"`
	Description string    `json:"description"`
	Date        time.Time `gorm:"not null;index" json:"date"`
}
