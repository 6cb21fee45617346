package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/pagination"
)

// incomeService handles income-related business logic.
type incomeService struct {
	db *gorm.DB
}

// NewIncomeService creates a new IncomeServicer.
func NewIncomeService(db *gorm.DB) IncomeServicer {
	return &incomeService{db: db}
}

// AddIncome creates a new income record for a user
func (s *incomeService) AddIncome(userID uint, source string, amount float64, date time.Time) (*models.Income, error) {
	if source == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "source is required")
	}
	if amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than 0")
	}

	// Default date to now if not provided
	if date.IsZero() {
		date = time.Now()
	}

	income := &models.Income{
		UserID: userID,
		Source: source,
		Amount: amount,
		Date:   date,
	}

	if err := s.db.Create(income).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return income, nil
}

// ListIncomes retrieves a paginated, filtered list of the user's income records,
// most recent first.
func (s *incomeService) ListIncomes(userID uint, page pagination.PageRequest, filter LedgerFilter) (*pagination.PageResponse[models.Income], error) {
	page.Defaults()

	base := s.db.Model(&models.Income{}).Where("user_id = ?", userID)
	base = applyMonthFilter(base, filter)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var incomes []models.Income
	if err := base.Scopes(pagination.Paginate(page)).
		Order("date DESC, id DESC").
		Find(&incomes).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(incomes, page, total)
	return &result, nil
}

// GetIncomeByID retrieves an income record scoped to the owning user.
func (s *incomeService) GetIncomeByID(userID, incomeID uint) (*models.Income, error) {
	var income models.Income
	if err := s.db.Where("id = ? AND user_id = ?", incomeID, userID).First(&income).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrIncomeNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &income, nil
}

// UpdateIncome replaces the source, amount, and date of an income record.
func (s *incomeService) UpdateIncome(userID, incomeID uint, source string, amount float64, date time.Time) (*models.Income, error) {
	if source == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "source is required")
	}
	if amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than 0")
	}

	income, err := s.GetIncomeByID(userID, incomeID)
	if err != nil {
		return nil, err
	}

	if date.IsZero() {
		date = time.Now()
	}

	income.Source = source
	income.Amount = amount
	income.Date = date

	if err := s.db.Save(income).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return income, nil
}

// DeleteIncome removes an income record scoped to the owning user.
func (s *incomeService) DeleteIncome(userID, incomeID uint) error {
	result := s.db.Where("id = ? AND user_id = ?", incomeID, userID).Delete(&models.Income{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrIncomeNotFound
	}
	return nil
}

// TotalIncome sums income amounts over the optional month filter.
// Zero matching rows yield 0, not an error.
func (s *incomeService) TotalIncome(userID uint, filter LedgerFilter) (float64, error) {
	q := s.db.Model(&models.Income{}).Where("user_id = ?", userID)
	q = applyMonthFilter(q, filter)

	var total float64
	if err := q.Select("COALESCE(SUM(amount), 0)").Scan(&total).Error; err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return total, nil
}
