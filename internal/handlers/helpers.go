package handlers

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/logger"
	"fintrack/internal/services"
)

// getUserID extracts the authenticated user ID from the Gin context.
// Returns ErrUnauthorized if not present.
func getUserID(c *gin.Context) (uint, error) {
	userID, exists := c.Get("userID")
	if !exists {
		return 0, apperrors.ErrUnauthorized
	}
	return userID.(uint), nil
}

// parsePathID parses a uint path parameter.
// Returns ErrInvalidInput if the parameter is not a valid positive integer.
func parsePathID(c *gin.Context, param string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil {
		return 0, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid "+param)
	}
	return uint(id), nil
}

// respondWithError writes a consistent JSON error response. If the error is an
// *AppError it uses the error's status code, code, and message. Otherwise it
// logs the unexpected error and returns a generic internal server error.
func respondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}
		c.JSON(appErr.StatusCode, gin.H{
			"error":   appErr.Code,
			"message": appErr.Message,
		})
		return
	}

	logger.Get().Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	c.JSON(apperrors.ErrInternalServer.StatusCode, gin.H{
		"error":   apperrors.ErrInternalServer.Code,
		"message": apperrors.ErrInternalServer.Message,
	})
}

// parseFlexibleTime accepts RFC3339 timestamps or bare YYYY-MM-DD dates.
func parseFlexibleTime(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q, use RFC3339 or YYYY-MM-DD", value)
}

// parseOptionalDate resolves an optional request date string. A missing or
// empty value yields the zero time, which services default to now.
func parseOptionalDate(value *string) (time.Time, error) {
	if value == nil || *value == "" {
		return time.Time{}, nil
	}
	t, err := parseFlexibleTime(*value)
	if err != nil {
		return time.Time{}, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
	}
	return t, nil
}

// parseLedgerFilter reads the optional month/year query pair. The pair is
// all-or-nothing: a lone month or year is rejected rather than silently ignored.
func parseLedgerFilter(c *gin.Context) (services.LedgerFilter, error) {
	var filter services.LedgerFilter

	monthStr := c.Query("month")
	yearStr := c.Query("year")
	if monthStr == "" && yearStr == "" {
		return filter, nil
	}
	if monthStr == "" || yearStr == "" {
		return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "month and year must be provided together")
	}

	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "month must be between 1 and 12")
	}
	year, err := strconv.Atoi(yearStr)
	if err != nil || year < 1 {
		return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid year")
	}

	filter.Month = &month
	filter.Year = &year
	return filter, nil
}
