package integration

import (
	"fmt"
	"net/http"
	"testing"
)

func TestSavingsFlow_ContributeAndWithdraw(t *testing.T) {
	app := setupApp(t)
	token, _ := app.registerUser(t, "saver@test.com", "password123")

	// Step 1: Create a goal
	goalID := app.createGoal(t, token, "Vacation", 1000)

	// Step 2: Contribute to it
	rec := app.request("POST", "/api/v1/savings/"+goalID+"/contribute",
		`{"amount":250}`, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("contribute failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	goal := result["goal"].(map[string]interface{})
	if goal["current_amount"] != 250.0 {
		t.Errorf("expected current_amount 250, got %v", goal["current_amount"])
	}
	mirror := result["transaction"].(map[string]interface{})
	if mirror["type"] != "expense" {
		t.Errorf("expected mirrored expense, got %v", mirror["type"])
	}
	if mirror["amount"] != 250.0 {
		t.Errorf("expected mirrored amount 250, got %v", mirror["amount"])
	}
	if mirror["description"] != "Contribution to Vacation" {
		t.Errorf("unexpected description: %v", mirror["description"])
	}

	// Step 3: The mirrored transaction shows up in the ledger
	rec = app.request("GET", "/api/v1/transactions", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("list transactions failed: %d %s", rec.Code, rec.Body.String())
	}
	items := parseJSON(t, rec)["data"].([]interface{})
	if len(items) != 1 {
		t.Fatalf("expected 1 transaction, got %d", len(items))
	}

	// Step 4: Withdraw part of it back
	rec = app.request("POST", "/api/v1/savings/"+goalID+"/withdraw",
		`{"amount":100}`, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("withdraw failed: %d %s", rec.Code, rec.Body.String())
	}
	result = parseJSON(t, rec)
	goal = result["goal"].(map[string]interface{})
	if goal["current_amount"] != 150.0 {
		t.Errorf("expected current_amount 150, got %v", goal["current_amount"])
	}
	mirror = result["transaction"].(map[string]interface{})
	if mirror["type"] != "income" {
		t.Errorf("expected mirrored income, got %v", mirror["type"])
	}
	if mirror["description"] != "Withdrawal from Vacation" {
		t.Errorf("unexpected description: %v", mirror["description"])
	}

	// Step 5: Summary reflects the net position
	rec = app.request("GET", "/api/v1/savings/summary", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("summary failed: %d %s", rec.Code, rec.Body.String())
	}
	summary := parseJSON(t, rec)["summary"].(map[string]interface{})
	if summary["total_saved"] != 150.0 {
		t.Errorf("expected total_saved 150, got %v", summary["total_saved"])
	}
	if summary["total_target"] != 1000.0 {
		t.Errorf("expected total_target 1000, got %v", summary["total_target"])
	}
	if summary["percent_complete"] != 15.0 {
		t.Errorf("expected percent_complete 15, got %v", summary["percent_complete"])
	}
}

func TestSavingsFlow_ContributionBeyondTargetRejected(t *testing.T) {
	app := setupApp(t)
	token, _ := app.registerUser(t, "capped@test.com", "password123")
	goalID := app.createGoal(t, token, "Emergency Fund", 500)

	rec := app.request("POST", "/api/v1/savings/"+goalID+"/contribute",
		`{"amount":501}`, token)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
	errObj := parseJSON(t, rec)["error"].(map[string]interface{})
	if errObj["code"] != "EXCEEDS_TARGET" {
		t.Errorf("expected EXCEEDS_TARGET, got %v", errObj["code"])
	}

	// The rejected contribution must leave no trace in the ledger.
	rec = app.request("GET", "/api/v1/transactions", "", token)
	items := parseJSON(t, rec)["data"].([]interface{})
	if len(items) != 0 {
		t.Errorf("expected empty ledger after rejected contribution, got %d entries", len(items))
	}
}

func TestSavingsFlow_OverdrawRejected(t *testing.T) {
	app := setupApp(t)
	token, _ := app.registerUser(t, "overdraw@test.com", "password123")
	goalID := app.createGoal(t, token, "Car", 2000)

	rec := app.request("POST", "/api/v1/savings/"+goalID+"/contribute",
		`{"amount":50}`, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("contribute failed: %d %s", rec.Code, rec.Body.String())
	}

	rec = app.request("POST", "/api/v1/savings/"+goalID+"/withdraw",
		`{"amount":50.01}`, token)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
	errObj := parseJSON(t, rec)["error"].(map[string]interface{})
	if errObj["code"] != "INSUFFICIENT_FUNDS" {
		t.Errorf("expected INSUFFICIENT_FUNDS, got %v", errObj["code"])
	}
}

func TestSavingsFlow_DeleteGoalKeepsLedger(t *testing.T) {
	app := setupApp(t)
	token, _ := app.registerUser(t, "deleter@test.com", "password123")
	goalID := app.createGoal(t, token, "Bike", 300)

	rec := app.request("POST", "/api/v1/savings/"+goalID+"/contribute",
		`{"amount":120}`, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("contribute failed: %d %s", rec.Code, rec.Body.String())
	}

	rec = app.request("DELETE", "/api/v1/savings/"+goalID, "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete failed: %d %s", rec.Code, rec.Body.String())
	}

	rec = app.request("GET", "/api/v1/savings/"+goalID, "", token)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", rec.Code)
	}

	// Past contributions remain part of the transaction history.
	rec = app.request("GET", "/api/v1/transactions", "", token)
	items := parseJSON(t, rec)["data"].([]interface{})
	if len(items) != 1 {
		t.Errorf("expected ledger entry to survive goal deletion, got %d entries", len(items))
	}
}

func TestSavingsFlow_GoalsAreUserScoped(t *testing.T) {
	app := setupApp(t)
	ownerToken, _ := app.registerUser(t, "owner@test.com", "password123")
	otherToken, _ := app.registerUser(t, "other@test.com", "password123")

	goalID := app.createGoal(t, ownerToken, "Private", 100)

	rec := app.request("GET", "/api/v1/savings/"+goalID, "", otherToken)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for another user's goal, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = app.request("POST", "/api/v1/savings/"+goalID+"/contribute",
		fmt.Sprintf(`{"amount":%v}`, 10), otherToken)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 contributing to another user's goal, got %d", rec.Code)
	}
}
