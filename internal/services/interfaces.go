package services

import (
	"time"

	"fintrack/internal/models"
	"fintrack/internal/pagination"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(name, email, password string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
	UpdateName(userID uint, name string) (*models.User, error)
	DeleteUser(userID uint) error
}

// LedgerFilter restricts ledger queries to an optional calendar month.
// Month and Year must be provided together.
type LedgerFilter struct {
	Month *int
	Year  *int
}

// ExpenseFilter extends LedgerFilter with a case-insensitive category
// substring match.
type ExpenseFilter struct {
	LedgerFilter
	Category string
}

// IncomeServicer defines the contract for income-related business logic.
type IncomeServicer interface {
	AddIncome(userID uint, source string, amount float64, date time.Time) (*models.Income, error)
	ListIncomes(userID uint, page pagination.PageRequest, filter LedgerFilter) (*pagination.PageResponse[models.Income], error)
	GetIncomeByID(userID, incomeID uint) (*models.Income, error)
	UpdateIncome(userID, incomeID uint, source string, amount float64, date time.Time) (*models.Income, error)
	DeleteIncome(userID, incomeID uint) error
	TotalIncome(userID uint, filter LedgerFilter) (float64, error)
}

// ExpenseServicer defines the contract for expense-related business logic.
type ExpenseServicer interface {
	AddExpense(userID uint, category string, unitAmount float64, quantity int, description string, date time.Time) (*models.Expense, error)
	ListExpenses(userID uint, page pagination.PageRequest, filter ExpenseFilter) (*pagination.PageResponse[models.Expense], error)
	GetExpenseByID(userID, expenseID uint) (*models.Expense, error)
	UpdateExpense(userID, expenseID uint, category string, unitAmount float64, quantity int, description string, date time.Time) (*models.Expense, error)
	DeleteExpense(userID, expenseID uint) error
	TotalExpenses(userID uint, filter ExpenseFilter) (float64, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(userID uint, action, resourceType string, resourceID uint, ipAddress string, changes map[string]interface{})
}
