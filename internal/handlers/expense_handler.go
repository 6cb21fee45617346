package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/pagination"
	"fintrack/internal/services"
)

// ExpenseHandler handles expense-related requests.
type ExpenseHandler struct {
	expenseService services.ExpenseServicer
	auditService   services.AuditServicer
}

// NewExpenseHandler creates a new ExpenseHandler.
func NewExpenseHandler(expenseService services.ExpenseServicer, auditService services.AuditServicer) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService, auditService: auditService}
}

// ExpenseRequest represents the payload for creating or updating an expense.
// Amount is the unit price; the stored total is amount multiplied by quantity.
type ExpenseRequest struct {
	Category    string  `json:"category" binding:"required,max=255"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Quantity    *int    `json:"quantity" binding:"omitempty,gt=0"`
	Description string  `json:"description" binding:"max=500"`
	Date        *string `json:"date"`
}

func (r *ExpenseRequest) quantity() int {
	if r.Quantity == nil {
		return 1
	}
	return *r.Quantity
}

// ExpenseResponse represents an expense record in the response.
type ExpenseResponse struct {
	ID          uint      `json:"id"`
	UserID      uint      `json:"user_id"`
	Category    string    `json:"category"`
	Amount      float64   `json:"amount"`
	Quantity    int       `json:"quantity"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
}

// CreateExpense handles the creation of a new expense record
// @Summary     Add expense
// @Description Record a new expense for the authenticated user
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body ExpenseRequest true "Expense details"
// @Success     201 {object} ExpenseResponse "Expense created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /expenses [post]
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	date, err := parseOptionalDate(req.Date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expense, err := h.expenseService.AddExpense(userID, req.Category, req.Amount, req.quantity(), req.Description, date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_EXPENSE", "expense", expense.ID, c.ClientIP(),
		map[string]interface{}{"category": req.Category, "amount": expense.Amount, "quantity": expense.Quantity})

	c.JSON(http.StatusCreated, gin.H{"expense": expense})
}

// ListExpenses returns the user's expenses with filtering and pagination
// @Summary     List expenses
// @Description List expenses, newest first, with optional category and month filters
// @Tags        expenses
// @Produce     json
// @Security    BearerAuth
// @Param       category query string false "Case-insensitive category substring"
// @Param       month query int false "Calendar month (1-12, requires year)"
// @Param       year query int false "Calendar year (requires month)"
// @Param       limit query int false "Page size (default 50)"
// @Param       offset query int false "Page offset (default 0)"
// @Success     200 {object} map[string]interface{} "Expense list with pagination"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /expenses [get]
func (h *ExpenseHandler) ListExpenses(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	filter, err := parseExpenseFilter(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.expenseService.ListExpenses(userID, page, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"expenses":   result.Data,
		"pagination": result.Pagination,
	})
}

// GetExpenseByID returns a single expense record
// @Summary     Get expense by ID
// @Tags        expenses
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Expense ID"
// @Success     200 {object} ExpenseResponse "Expense record"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /expenses/{id} [get]
func (h *ExpenseHandler) GetExpenseByID(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expenseID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	expense, err := h.expenseService.GetExpenseByID(userID, expenseID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"expense": expense})
}

// UpdateExpense replaces the fields of an expense record
// @Summary     Update expense
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Expense ID"
// @Param       request body ExpenseRequest true "New expense details"
// @Success     200 {object} ExpenseResponse "Updated expense"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /expenses/{id} [put]
func (h *ExpenseHandler) UpdateExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expenseID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	date, err := parseOptionalDate(req.Date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expense, err := h.expenseService.UpdateExpense(userID, expenseID, req.Category, req.Amount, req.quantity(), req.Description, date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_EXPENSE", "expense", expense.ID, c.ClientIP(),
		map[string]interface{}{"category": req.Category, "amount": expense.Amount, "quantity": expense.Quantity})

	c.JSON(http.StatusOK, gin.H{"expense": expense})
}

// DeleteExpense removes an expense record
// @Summary     Delete expense
// @Tags        expenses
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Expense ID"
// @Success     200 {object} map[string]string "Acknowledgment"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /expenses/{id} [delete]
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expenseID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.expenseService.DeleteExpense(userID, expenseID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_EXPENSE", "expense", expenseID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Expense deleted successfully"})
}

// GetTotalExpenses returns the summed expenses over the optional filters
// @Summary     Total expenses
// @Tags        expenses
// @Produce     json
// @Security    BearerAuth
// @Param       category query string false "Case-insensitive category substring"
// @Param       month query int false "Calendar month (1-12, requires year)"
// @Param       year query int false "Calendar year (requires month)"
// @Success     200 {object} map[string]float64 "Total"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /expenses/stats/total [get]
func (h *ExpenseHandler) GetTotalExpenses(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	filter, err := parseExpenseFilter(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	total, err := h.expenseService.TotalExpenses(userID, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"total": total})
}

func parseExpenseFilter(c *gin.Context) (services.ExpenseFilter, error) {
	var filter services.ExpenseFilter

	ledger, err := parseLedgerFilter(c)
	if err != nil {
		return filter, err
	}
	filter.LedgerFilter = ledger
	filter.Category = c.Query("category")
	return filter, nil
}
