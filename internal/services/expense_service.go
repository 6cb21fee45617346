package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/pagination"
)

// expenseService handles expense-related business logic.
type expenseService struct {
	db *gorm.DB
}

// NewExpenseService creates a new ExpenseServicer.
func NewExpenseService(db *gorm.DB) ExpenseServicer {
	return &expenseService{db: db}
}

// AddExpense creates a new expense record for a user. The stored amount is
// the unit amount multiplied by the quantity.
func (s *expenseService) AddExpense(userID uint, category string, unitAmount float64, quantity int, description string, date time.Time) (*models.Expense, error) {
	if err := validateExpenseInput(category, unitAmount, quantity); err != nil {
		return nil, err
	}

	// Default date to now if not provided
	if date.IsZero() {
		date = time.Now()
	}

	expense := &models.Expense{
		UserID:      userID,
		Category:    category,
		Amount:      unitAmount * float64(quantity),
		Quantity:    quantity,
		Description: description,
		Date:        date,
	}

	if err := s.db.Create(expense).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return expense, nil
}

// ListExpenses retrieves a paginated, filtered list of the user's expenses,
// most recent first.
func (s *expenseService) ListExpenses(userID uint, page pagination.PageRequest, filter ExpenseFilter) (*pagination.PageResponse[models.Expense], error) {
	page.Defaults()

	base := s.filteredQuery(userID, filter)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var expenses []models.Expense
	if err := base.Scopes(pagination.Paginate(page)).
		Order("date DESC, id DESC").
		Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(expenses, page, total)
	return &result, nil
}

// GetExpenseByID retrieves an expense record scoped to the owning user.
func (s *expenseService) GetExpenseByID(userID, expenseID uint) (*models.Expense, error) {
	var expense models.Expense
	if err := s.db.Where("id = ? AND user_id = ?", expenseID, userID).First(&expense).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrExpenseNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &expense, nil
}

// UpdateExpense replaces the fields of an expense record, recomputing the
// stored amount from the unit amount and quantity.
func (s *expenseService) UpdateExpense(userID, expenseID uint, category string, unitAmount float64, quantity int, description string, date time.Time) (*models.Expense, error) {
	if err := validateExpenseInput(category, unitAmount, quantity); err != nil {
		return nil, err
	}

	expense, err := s.GetExpenseByID(userID, expenseID)
	if err != nil {
		return nil, err
	}

	if date.IsZero() {
		date = time.Now()
	}

	expense.Category = category
	expense.Amount = unitAmount * float64(quantity)
	expense.Quantity = quantity
	expense.Description = description
	expense.Date = date

	if err := s.db.Save(expense).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return expense, nil
}

// DeleteExpense removes an expense record scoped to the owning user.
func (s *expenseService) DeleteExpense(userID, expenseID uint) error {
	result := s.db.Where("id = ? AND user_id = ?", expenseID, userID).Delete(&models.Expense{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrExpenseNotFound
	}
	return nil
}

// TotalExpenses sums expense amounts over the optional filters.
// Zero matching rows yield 0, not an error.
func (s *expenseService) TotalExpenses(userID uint, filter ExpenseFilter) (float64, error) {
	q := s.filteredQuery(userID, filter)

	var total float64
	if err := q.Select("COALESCE(SUM(amount), 0)").Scan(&total).Error; err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return total, nil
}

func (s *expenseService) filteredQuery(userID uint, filter ExpenseFilter) *gorm.DB {
	q := s.db.Model(&models.Expense{}).Where("user_id = ?", userID)
	if filter.Category != "" {
		q = q.Where("LOWER(category) LIKE ?", "%"+strings.ToLower(filter.Category)+"%")
	}
	return applyMonthFilter(q, filter.LedgerFilter)
}

func validateExpenseInput(category string, unitAmount float64, quantity int) error {
	if category == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "category is required")
	}
	if unitAmount <= 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than 0")
	}
	if quantity <= 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "quantity must be greater than 0")
	}
	return nil
}
