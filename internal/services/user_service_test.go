package services

import (
	"testing"

	"moneta/internal/models"
	"moneta/internal/testutil"
)

func TestCreateUser(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		user, err := svc.CreateUser("Alice@Example.com", "password123", "alice")
		testutil.AssertNoError(t, err)

		if user.Email != "alice@example.com" {
			t.Errorf("expected lowercased email, got %s", user.Email)
		}
		if user.Password == "password123" {
			t.Error("expected password to be hashed")
		}
		if !user.IsActive {
			t.Error("expected new user to be active")
		}
	})

	t.Run("duplicate_email", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.CreateUser("alice@example.com", "password123", "alice")
		testutil.AssertNoError(t, err)

		_, err = svc.CreateUser("ALICE@example.com", "password456", "alice2")
		testutil.AssertAppError(t, err, "DUPLICATE_EMAIL")
	})

	t.Run("failed_duplicate_check_surfaces_error", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		// A broken users table must fail the duplicate check loudly
		// instead of reading as count 0 and proceeding to the insert.
		if err := db.Migrator().DropTable(&models.User{}); err != nil {
			t.Fatalf("failed to drop table: %v", err)
		}

		_, err := svc.CreateUser("bob@example.com", "password123", "bob")
		testutil.AssertAppError(t, err, "INTERNAL_ERROR")
	})

	t.Run("missing_fields", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.CreateUser("", "password123", "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestVerifyPassword(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewUserService(db)

	user, err := svc.CreateUser("alice@example.com", "password123", "alice")
	testutil.AssertNoError(t, err)

	if !svc.VerifyPassword(user, "password123") {
		t.Error("expected correct password to verify")
	}
	if svc.VerifyPassword(user, "wrongpass") {
		t.Error("expected wrong password to fail")
	}
}

func TestUpdateProfile(t *testing.T) {
	t.Run("updates username", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		user, err := svc.CreateUser("alice@example.com", "password123", "alice")
		testutil.AssertNoError(t, err)

		updated, err := svc.UpdateProfile(user.ID, "alice2", "")
		testutil.AssertNoError(t, err)

		if updated.Username != "alice2" {
			t.Errorf("expected alice2, got %s", updated.Username)
		}
	})

	t.Run("rejects email taken by another user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.CreateUser("bob@example.com", "password123", "bob")
		testutil.AssertNoError(t, err)
		alice, err := svc.CreateUser("alice@example.com", "password123", "alice")
		testutil.AssertNoError(t, err)

		_, err = svc.UpdateProfile(alice.ID, "", "bob@example.com")
		testutil.AssertAppError(t, err, "DUPLICATE_EMAIL")
	})
}
