package services

import (
	"testing"
	"time"

	"fintrack/internal/pagination"
	"fintrack/internal/testutil"
)

func TestAddIncome(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewIncomeService(db)

		user := testutil.CreateTestUser(t, db)
		date := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

		income, err := svc.AddIncome(user.ID, "Salary", 2500.50, date)
		testutil.AssertNoError(t, err)

		if income.ID == 0 {
			t.Fatal("expected non-zero income ID")
		}
		if income.Amount != 2500.50 {
			t.Errorf("expected amount 2500.50, got %v", income.Amount)
		}
		if !income.Date.Equal(date) {
			t.Errorf("expected date %v, got %v", date, income.Date)
		}
	})

	t.Run("defaults_date_to_now", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewIncomeService(db)

		user := testutil.CreateTestUser(t, db)
		before := time.Now()
		income, err := svc.AddIncome(user.ID, "Freelance", 300, time.Time{})
		testutil.AssertNoError(t, err)

		if income.Date.Before(before.Add(-time.Second)) || income.Date.After(time.Now().Add(time.Second)) {
			t.Errorf("expected date defaulted to now, got %v", income.Date)
		}
	})

	t.Run("missing_source", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewIncomeService(db)

		user := testutil.CreateTestUser(t, db)
		_, err := svc.AddIncome(user.ID, "", 100, time.Time{})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("non_positive_amount", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewIncomeService(db)

		user := testutil.CreateTestUser(t, db)
		_, err := svc.AddIncome(user.ID, "Salary", -5, time.Time{})
		testutil.AssertAppError(t, err, "INVALID_INPUT")

		_, err = svc.AddIncome(user.ID, "Salary", 0, time.Time{})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestListIncomes(t *testing.T) {
	t.Run("pagination_window", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewIncomeService(db)

		user := testutil.CreateTestUser(t, db)
		base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		for i := 0; i < 5; i++ {
			testutil.CreateTestIncome(t, db, user.ID, "Salary", 100, base.AddDate(0, 0, i))
		}

		result, err := svc.ListIncomes(user.ID, pagination.PageRequest{Limit: 2, Offset: 4}, LedgerFilter{})
		testutil.AssertNoError(t, err)
		if len(result.Data) != 1 {
			t.Fatalf("expected 1 row at offset 4, got %d", len(result.Data))
		}
		if result.Pagination.HasMore {
			t.Error("expected has_more=false at the last page")
		}
		if result.Pagination.Total != 5 {
			t.Errorf("expected total 5, got %d", result.Pagination.Total)
		}

		result, err = svc.ListIncomes(user.ID, pagination.PageRequest{Limit: 2, Offset: 0}, LedgerFilter{})
		testutil.AssertNoError(t, err)
		if len(result.Data) != 2 {
			t.Fatalf("expected 2 rows at offset 0, got %d", len(result.Data))
		}
		if !result.Pagination.HasMore {
			t.Error("expected has_more=true on the first page")
		}
	})

	t.Run("ordered_most_recent_first", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewIncomeService(db)

		user := testutil.CreateTestUser(t, db)
		old := testutil.CreateTestIncome(t, db, user.ID, "Old", 100, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
		recent := testutil.CreateTestIncome(t, db, user.ID, "Recent", 200, time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC))

		result, err := svc.ListIncomes(user.ID, pagination.PageRequest{}, LedgerFilter{})
		testutil.AssertNoError(t, err)
		if len(result.Data) != 2 {
			t.Fatalf("expected 2 rows, got %d", len(result.Data))
		}
		if result.Data[0].ID != recent.ID || result.Data[1].ID != old.ID {
			t.Errorf("expected most recent first, got order %d, %d", result.Data[0].ID, result.Data[1].ID)
		}
	})

	t.Run("month_filter", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewIncomeService(db)

		user := testutil.CreateTestUser(t, db)
		testutil.CreateTestIncome(t, db, user.ID, "March", 100, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC))
		testutil.CreateTestIncome(t, db, user.ID, "April", 200, time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC))

		month, year := 3, 2026
		result, err := svc.ListIncomes(user.ID, pagination.PageRequest{}, LedgerFilter{Month: &month, Year: &year})
		testutil.AssertNoError(t, err)
		if len(result.Data) != 1 {
			t.Fatalf("expected 1 row for March, got %d", len(result.Data))
		}
		if result.Data[0].Source != "March" {
			t.Errorf("expected March record, got %s", result.Data[0].Source)
		}
	})

	t.Run("scoped_to_user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewIncomeService(db)

		owner := testutil.CreateTestUser(t, db)
		other := testutil.CreateTestUser(t, db)
		testutil.CreateTestIncome(t, db, owner.ID, "Salary", 100, time.Now())

		result, err := svc.ListIncomes(other.ID, pagination.PageRequest{}, LedgerFilter{})
		testutil.AssertNoError(t, err)
		if len(result.Data) != 0 {
			t.Errorf("expected no rows for other user, got %d", len(result.Data))
		}
	})
}

func TestGetIncomeByID(t *testing.T) {
	t.Run("other_users_record_is_not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewIncomeService(db)

		owner := testutil.CreateTestUser(t, db)
		intruder := testutil.CreateTestUser(t, db)
		income := testutil.CreateTestIncome(t, db, owner.ID, "Salary", 100, time.Now())

		_, err := svc.GetIncomeByID(intruder.ID, income.ID)
		testutil.AssertAppError(t, err, "INCOME_NOT_FOUND")
	})

	t.Run("missing_record", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewIncomeService(db)

		user := testutil.CreateTestUser(t, db)
		_, err := svc.GetIncomeByID(user.ID, 99999)
		testutil.AssertAppError(t, err, "INCOME_NOT_FOUND")
	})
}

func TestUpdateIncome(t *testing.T) {
	t.Run("round_trip", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewIncomeService(db)

		user := testutil.CreateTestUser(t, db)
		income := testutil.CreateTestIncome(t, db, user.ID, "Salary", 100, time.Now())

		newDate := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
		_, err := svc.UpdateIncome(user.ID, income.ID, "Bonus", 750, newDate)
		testutil.AssertNoError(t, err)

		got, err := svc.GetIncomeByID(user.ID, income.ID)
		testutil.AssertNoError(t, err)
		if got.Source != "Bonus" || got.Amount != 750 {
			t.Errorf("expected updated fields, got source=%s amount=%v", got.Source, got.Amount)
		}
		if !got.Date.Equal(newDate) {
			t.Errorf("expected date %v, got %v", newDate, got.Date)
		}
	})

	t.Run("not_found_for_other_user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewIncomeService(db)

		owner := testutil.CreateTestUser(t, db)
		intruder := testutil.CreateTestUser(t, db)
		income := testutil.CreateTestIncome(t, db, owner.ID, "Salary", 100, time.Now())

		_, err := svc.UpdateIncome(intruder.ID, income.ID, "Hijack", 1, time.Time{})
		testutil.AssertAppError(t, err, "INCOME_NOT_FOUND")
	})

	t.Run("invalid_amount", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewIncomeService(db)

		user := testutil.CreateTestUser(t, db)
		income := testutil.CreateTestIncome(t, db, user.ID, "Salary", 100, time.Now())

		_, err := svc.UpdateIncome(user.ID, income.ID, "Salary", -1, time.Time{})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestDeleteIncome(t *testing.T) {
	t.Run("deletes_owned_record", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewIncomeService(db)

		user := testutil.CreateTestUser(t, db)
		income := testutil.CreateTestIncome(t, db, user.ID, "Salary", 100, time.Now())

		testutil.AssertNoError(t, svc.DeleteIncome(user.ID, income.ID))

		_, err := svc.GetIncomeByID(user.ID, income.ID)
		testutil.AssertAppError(t, err, "INCOME_NOT_FOUND")
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewIncomeService(db)

		user := testutil.CreateTestUser(t, db)
		err := svc.DeleteIncome(user.ID, 99999)
		testutil.AssertAppError(t, err, "INCOME_NOT_FOUND")
	})
}

func TestTotalIncome(t *testing.T) {
	t.Run("zero_rows_yield_zero", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewIncomeService(db)

		user := testutil.CreateTestUser(t, db)
		total, err := svc.TotalIncome(user.ID, LedgerFilter{})
		testutil.AssertNoError(t, err)
		if total != 0 {
			t.Errorf("expected total 0, got %v", total)
		}
	})

	t.Run("sums_with_month_filter", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewIncomeService(db)

		user := testutil.CreateTestUser(t, db)
		testutil.CreateTestIncome(t, db, user.ID, "A", 100, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))
		testutil.CreateTestIncome(t, db, user.ID, "B", 250, time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC))
		testutil.CreateTestIncome(t, db, user.ID, "C", 999, time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC))

		month, year := 3, 2026
		total, err := svc.TotalIncome(user.ID, LedgerFilter{Month: &month, Year: &year})
		testutil.AssertNoError(t, err)
		if total != 350 {
			t.Errorf("expected total 350 for March, got %v", total)
		}

		total, err = svc.TotalIncome(user.ID, LedgerFilter{})
		testutil.AssertNoError(t, err)
		if total != 1349 {
			t.Errorf("expected unfiltered total 1349, got %v", total)
		}
	})
}
