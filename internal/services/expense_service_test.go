package services

import (
	"testing"
	"time"

	"fintrack/internal/pagination"
	"fintrack/internal/testutil"
)

func TestAddExpense(t *testing.T) {
	t.Run("stores_unit_amount_times_quantity", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)

		user := testutil.CreateTestUser(t, db)
		expense, err := svc.AddExpense(user.ID, "Food", 10, 3, "groceries", time.Time{})
		testutil.AssertNoError(t, err)

		if expense.Amount != 30 {
			t.Errorf("expected stored amount 30, got %v", expense.Amount)
		}
		if expense.Quantity != 3 {
			t.Errorf("expected quantity 3, got %d", expense.Quantity)
		}
	})

	t.Run("single_quantity", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)

		user := testutil.CreateTestUser(t, db)
		expense, err := svc.AddExpense(user.ID, "Rent", 1200, 1, "", time.Time{})
		testutil.AssertNoError(t, err)

		if expense.Amount != 1200 {
			t.Errorf("expected amount 1200, got %v", expense.Amount)
		}
	})

	t.Run("missing_category", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)

		user := testutil.CreateTestUser(t, db)
		_, err := svc.AddExpense(user.ID, "", 10, 1, "", time.Time{})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("non_positive_amount_or_quantity", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)

		user := testutil.CreateTestUser(t, db)
		_, err := svc.AddExpense(user.ID, "Food", -10, 1, "", time.Time{})
		testutil.AssertAppError(t, err, "INVALID_INPUT")

		_, err = svc.AddExpense(user.ID, "Food", 10, 0, "", time.Time{})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestListExpenses(t *testing.T) {
	t.Run("category_substring_case_insensitive", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)

		user := testutil.CreateTestUser(t, db)
		testutil.CreateTestExpense(t, db, user.ID, "Groceries", 50, 1, time.Now())
		testutil.CreateTestExpense(t, db, user.ID, "Transport", 20, 1, time.Now())

		result, err := svc.ListExpenses(user.ID, pagination.PageRequest{}, ExpenseFilter{Category: "GROC"})
		testutil.AssertNoError(t, err)
		if len(result.Data) != 1 {
			t.Fatalf("expected 1 matching expense, got %d", len(result.Data))
		}
		if result.Data[0].Category != "Groceries" {
			t.Errorf("expected Groceries, got %s", result.Data[0].Category)
		}
	})

	t.Run("month_filter_and_pagination", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)

		user := testutil.CreateTestUser(t, db)
		base := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
		for i := 0; i < 3; i++ {
			testutil.CreateTestExpense(t, db, user.ID, "Food", 10, 1, base.AddDate(0, 0, i))
		}
		testutil.CreateTestExpense(t, db, user.ID, "Food", 10, 1, base.AddDate(0, 1, 0))

		month, year := 5, 2026
		result, err := svc.ListExpenses(user.ID,
			pagination.PageRequest{Limit: 2, Offset: 0},
			ExpenseFilter{LedgerFilter: LedgerFilter{Month: &month, Year: &year}})
		testutil.AssertNoError(t, err)

		if result.Pagination.Total != 3 {
			t.Errorf("expected total 3 for May, got %d", result.Pagination.Total)
		}
		if len(result.Data) != 2 {
			t.Errorf("expected 2 rows on first page, got %d", len(result.Data))
		}
		if !result.Pagination.HasMore {
			t.Error("expected has_more=true")
		}
	})

	t.Run("empty_result_is_empty_slice", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)

		user := testutil.CreateTestUser(t, db)
		result, err := svc.ListExpenses(user.ID, pagination.PageRequest{}, ExpenseFilter{})
		testutil.AssertNoError(t, err)
		if result.Data == nil {
			t.Error("expected non-nil empty slice")
		}
		if result.Pagination.HasMore {
			t.Error("expected has_more=false with no rows")
		}
	})
}

func TestGetExpenseByID(t *testing.T) {
	t.Run("other_users_record_is_not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)

		owner := testutil.CreateTestUser(t, db)
		intruder := testutil.CreateTestUser(t, db)
		expense := testutil.CreateTestExpense(t, db, owner.ID, "Food", 25, 1, time.Now())

		_, err := svc.GetExpenseByID(intruder.ID, expense.ID)
		testutil.AssertAppError(t, err, "EXPENSE_NOT_FOUND")
	})
}

func TestUpdateExpense(t *testing.T) {
	t.Run("recomputes_amount", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)

		user := testutil.CreateTestUser(t, db)
		expense, err := svc.AddExpense(user.ID, "Food", 10, 2, "", time.Time{})
		testutil.AssertNoError(t, err)

		updated, err := svc.UpdateExpense(user.ID, expense.ID, "Dining", 15, 4, "team lunch", time.Time{})
		testutil.AssertNoError(t, err)

		if updated.Amount != 60 {
			t.Errorf("expected recomputed amount 60, got %v", updated.Amount)
		}
		if updated.Category != "Dining" || updated.Quantity != 4 {
			t.Errorf("expected updated fields, got category=%s quantity=%d", updated.Category, updated.Quantity)
		}
	})

	t.Run("not_found_for_other_user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)

		owner := testutil.CreateTestUser(t, db)
		intruder := testutil.CreateTestUser(t, db)
		expense := testutil.CreateTestExpense(t, db, owner.ID, "Food", 25, 1, time.Now())

		_, err := svc.UpdateExpense(intruder.ID, expense.ID, "Hijack", 1, 1, "", time.Time{})
		testutil.AssertAppError(t, err, "EXPENSE_NOT_FOUND")
	})
}

func TestDeleteExpense(t *testing.T) {
	t.Run("deletes_owned_record", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)

		user := testutil.CreateTestUser(t, db)
		expense := testutil.CreateTestExpense(t, db, user.ID, "Food", 25, 1, time.Now())

		testutil.AssertNoError(t, svc.DeleteExpense(user.ID, expense.ID))

		_, err := svc.GetExpenseByID(user.ID, expense.ID)
		testutil.AssertAppError(t, err, "EXPENSE_NOT_FOUND")
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)

		user := testutil.CreateTestUser(t, db)
		err := svc.DeleteExpense(user.ID, 99999)
		testutil.AssertAppError(t, err, "EXPENSE_NOT_FOUND")
	})
}

func TestTotalExpenses(t *testing.T) {
	t.Run("zero_rows_yield_zero", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)

		user := testutil.CreateTestUser(t, db)
		total, err := svc.TotalExpenses(user.ID, ExpenseFilter{})
		testutil.AssertNoError(t, err)
		if total != 0 {
			t.Errorf("expected total 0, got %v", total)
		}
	})

	t.Run("sums_with_category_filter", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)

		user := testutil.CreateTestUser(t, db)
		testutil.CreateTestExpense(t, db, user.ID, "Food", 30, 1, time.Now())
		testutil.CreateTestExpense(t, db, user.ID, "Food", 20, 1, time.Now())
		testutil.CreateTestExpense(t, db, user.ID, "Transport", 15, 1, time.Now())

		total, err := svc.TotalExpenses(user.ID, ExpenseFilter{Category: "food"})
		testutil.AssertNoError(t, err)
		if total != 50 {
			t.Errorf("expected total 50 for Food, got %v", total)
		}
	})
}
