package models

// User represents the user model in the database
type User struct {
	Base
	Name     string    `gorm:"not null" json:"name"`
	Email    string    `gorm:"uniqueIndex;not null" json:"email"`
	Password string    `gorm:"not null" json:"-"`
	IsActive bool      `gorm:"default:true" json:"is_active"`
	Incomes  []Income  `gorm:"foreignKey:UserID" json:"incomes,omitempty"`
	Expenses []Expense `gorm:"foreignKey:UserID" json:"expenses,omitempty"`
}
