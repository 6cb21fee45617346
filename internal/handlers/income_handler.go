package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/pagination"
	"fintrack/internal/services"
)

// IncomeHandler handles income-related requests.
type IncomeHandler struct {
	incomeService services.IncomeServicer
	auditService  services.AuditServicer
}

// NewIncomeHandler creates a new IncomeHandler.
func NewIncomeHandler(incomeService services.IncomeServicer, auditService services.AuditServicer) *IncomeHandler {
	return &IncomeHandler{incomeService: incomeService, auditService: auditService}
}

// IncomeRequest represents the payload for creating or updating an income record.
type IncomeRequest struct {
	Source string  `json:"source" binding:"required,max=255"`
	Amount float64 `json:"amount" binding:"required,gt=0"`
	Date   *string `json:"date"`
}

// IncomeResponse represents an income record in the response.
type IncomeResponse struct {
	ID     uint      `json:"id"`
	UserID uint      `json:"user_id"`
	Source string    `json:"source"`
	Amount float64   `json:"amount"`
	Date   time.Time `json:"date"`
}

// CreateIncome handles the creation of a new income record
// @Summary     Add income
// @Description Record a new income entry for the authenticated user
// @Tags        income
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body IncomeRequest true "Income details"
// @Success     201 {object} IncomeResponse "Income created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /income [post]
func (h *IncomeHandler) CreateIncome(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req IncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	date, err := parseOptionalDate(req.Date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	income, err := h.incomeService.AddIncome(userID, req.Source, req.Amount, date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_INCOME", "income", income.ID, c.ClientIP(),
		map[string]interface{}{"source": req.Source, "amount": req.Amount})

	c.JSON(http.StatusCreated, gin.H{"income": income})
}

// ListIncomes returns the user's income records with filtering and pagination
// @Summary     List income
// @Description List income records, newest first, optionally filtered to a calendar month
// @Tags        income
// @Produce     json
// @Security    BearerAuth
// @Param       month query int false "Calendar month (1-12, requires year)"
// @Param       year query int false "Calendar year (requires month)"
// @Param       limit query int false "Page size (default 50)"
// @Param       offset query int false "Page offset (default 0)"
// @Success     200 {object} map[string]interface{} "Income list with pagination"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /income [get]
func (h *IncomeHandler) ListIncomes(c *gin.Context) {
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

	filter, err := parseLedgerFilter(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.incomeService.ListIncomes(userID, page, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"incomes":    result.Data,
		"pagination": result.Pagination,
	})
}

// GetIncomeByID returns a single income record
// @Summary     Get income by ID
// @Tags        income
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Income ID"
// @Success     200 {object} IncomeResponse "Income record"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /income/{id} [get]
func (h *IncomeHandler) GetIncomeByID(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	incomeID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	income, err := h.incomeService.GetIncomeByID(userID, incomeID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"income": income})
}

// UpdateIncome replaces the fields of an income record
// @Summary     Update income
// @Tags        income
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Income ID"
// @Param       request body IncomeRequest true "New income details"
// @Success     200 {object} IncomeResponse "Updated income"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /income/{id} [put]
func (h *IncomeHandler) UpdateIncome(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	incomeID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req IncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	date, err := parseOptionalDate(req.Date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	income, err := h.incomeService.UpdateIncome(userID, incomeID, req.Source, req.Amount, date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_INCOME", "income", income.ID, c.ClientIP(),
		map[string]interface{}{"source": req.Source, "amount": req.Amount})

	c.JSON(http.StatusOK, gin.H{"income": income})
}

// DeleteIncome removes an income record
// @Summary     Delete income
// @Tags        income
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Income ID"
// @Success     200 {object} map[string]string "Acknowledgment"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /income/{id} [delete]
func (h *IncomeHandler) DeleteIncome(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	incomeID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.incomeService.DeleteIncome(userID, incomeID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_INCOME", "income", incomeID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Income deleted successfully"})
}

// GetTotalIncome returns the summed income over the optional month filter
// @Summary     Total income
// @Tags        income
// @Produce     json
// @Security    BearerAuth
// @Param       month query int false "Calendar month (1-12, requires year)"
// @Param       year query int false "Calendar year (requires month)"
// @Success     200 {object} map[string]float64 "Total"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /income/stats/total [get]
func (h *IncomeHandler) GetTotalIncome(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	filter, err := parseLedgerFilter(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	total, err := h.incomeService.TotalIncome(userID, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"total": total})
}
