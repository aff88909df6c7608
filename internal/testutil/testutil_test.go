package testutil_test

import (
	"testing"

	"moneta/internal/models"
	"moneta/internal/testutil"
)

func TestSetupTestDB(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	// Verify all tables exist by doing a simple count query on each model.
	var count int64
	for _, table := range []string{"users", "categories", "transactions", "savings_goals", "user_settings", "audit_logs"} {
		if err := db.Table(table).Count(&count).Error; err != nil {
			t.Errorf("table %q should exist after migration: %v", table, err)
		}
	}
}

func TestFixtures(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	user := testutil.CreateTestUser(t, db)
	if user.ID == "" {
		t.Fatal("user should have a non-empty ID")
	}

	category := testutil.CreateTestCategory(t, db, user.ID, models.CategoryTypeExpense)
	if category.Type != models.CategoryTypeExpense {
		t.Errorf("expected expense category, got %s", category.Type)
	}

	tx := testutil.CreateTestTransaction(t, db, user.ID, models.TransactionTypeIncome, 1000)
	if tx.Amount != 1000 {
		t.Errorf("expected amount 1000, got %v", tx.Amount)
	}

	goal := testutil.CreateTestGoalWithProgress(t, db, user.ID, 500, 120)
	if goal.CurrentAmount != 120 {
		t.Errorf("expected current amount 120, got %v", goal.CurrentAmount)
	}
	if goal.TargetAmount != 500 {
		t.Errorf("expected target amount 500, got %v", goal.TargetAmount)
	}
}
