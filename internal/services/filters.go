package services

import (
	"time"

	"gorm.io/gorm"
)

// applyMonthFilter narrows a ledger query to the half-open range covering the
// given calendar month. Computing the bounds in Go keeps the SQL portable
// between PostgreSQL and the SQLite used in tests.
func applyMonthFilter(q *gorm.DB, f LedgerFilter) *gorm.DB {
	if f.Month == nil || f.Year == nil {
		return q
	}
	start := time.Date(*f.Year, time.Month(*f.Month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)
	return q.Where("date >= ? AND date < ?", start, end)
}
