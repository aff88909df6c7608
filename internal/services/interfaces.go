package services

import (
	"io"
	"time"

	"moneta/internal/analytics"
	"moneta/internal/models"
	"moneta/internal/pagination"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password, username string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
	UpdateProfile(userID, username, email string) (*models.User, error)
}

// CategoryServicer defines the contract for category-related business logic.
type CategoryServicer interface {
	CreateCategory(userID, name string, categoryType models.CategoryType, color, icon string) (*models.Category, error)
	GetUserCategories(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Category], error)
	GetCategoryByID(userID, categoryID string) (*models.Category, error)
	UpdateCategory(userID, categoryID, name string, categoryType *models.CategoryType, color, icon string) (*models.Category, error)
	DeleteCategory(userID, categoryID string) error
}

// TransactionFilter holds optional filter parameters for listing transactions.
type TransactionFilter struct {
	FromDate   *time.Time
	ToDate     *time.Time
	Type       *models.TransactionType
	CategoryID *string
}

// TransactionServicer defines the contract for transaction-related business logic.
type TransactionServicer interface {
	CreateTransaction(userID string, categoryID *string, txType models.TransactionType, amount float64, date time.Time, description, notes string) (*models.Transaction, error)
	GetUserTransactions(userID string, page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error)
	GetTransactionSnapshot(userID string) ([]models.Transaction, error)
	GetTransactionByID(userID, transactionID string) (*models.Transaction, error)
	UpdateTransaction(userID, transactionID string, categoryID *string, txType *models.TransactionType, amount *float64, date *time.Time, description, notes *string) (*models.Transaction, error)
	DeleteTransaction(userID, transactionID string) error
}

// GoalAction is a direction of money movement on a savings goal.
type GoalAction string

const (
	GoalActionContribute GoalAction = "contribute"
	GoalActionWithdraw   GoalAction = "withdraw"
)

// GoalActionResult carries both records touched by a ledger operation: the
// updated goal and the mirrored transaction that keeps the balance consistent.
type GoalActionResult struct {
	Goal        *models.SavingsGoal `json:"goal"`
	Transaction *models.Transaction `json:"transaction"`
}

// SavingsSummary aggregates progress across all of a user's goals.
type SavingsSummary struct {
	TotalSaved      float64 `json:"total_saved"`
	TotalTarget     float64 `json:"total_target"`
	PercentComplete float64 `json:"percent_complete"`
	GoalCount       int     `json:"goal_count"`
}

// SavingsServicer defines the contract for savings-goal business logic,
// including the contribute/withdraw ledger operation.
type SavingsServicer interface {
	CreateGoal(userID, title string, targetAmount float64, deadline *time.Time) (*models.SavingsGoal, error)
	GetUserGoals(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.SavingsGoal], error)
	GetGoalByID(userID, goalID string) (*models.SavingsGoal, error)
	UpdateGoal(userID, goalID, title string, targetAmount *float64, deadline *time.Time) (*models.SavingsGoal, error)
	DeleteGoal(userID, goalID string) error
	ApplyGoalAction(userID, goalID string, action GoalAction, amount float64) (*GoalActionResult, error)
	GetSummary(userID string) (*SavingsSummary, error)
}

// SettingsUpdate holds the partial fields of a settings upsert; nil fields
// keep their stored values.
type SettingsUpdate struct {
	Currency             *string
	Language             *string
	Theme                *string
	NotificationsEnabled *bool
}

// SettingsServicer defines the contract for per-user settings.
type SettingsServicer interface {
	GetSettings(userID string) (*models.UserSettings, error)
	UpdateSettings(userID string, update SettingsUpdate) (*models.UserSettings, error)
}

// DashboardStats is the financial overview shown on the dashboard.
type DashboardStats struct {
	TotalBalance       float64              `json:"total_balance"`
	TotalIncome        float64              `json:"total_income"`
	TotalExpenses      float64              `json:"total_expenses"`
	TotalSavings       float64              `json:"total_savings"`
	Last7Days          []analytics.Bucket   `json:"last_7_days"`
	RecentTransactions []models.Transaction `json:"recent_transactions"`
}

// AnalyticsReport is the windowed aggregation shown on the analytics page.
type AnalyticsReport struct {
	Window        analytics.Window          `json:"window"`
	TotalIncome   float64                   `json:"total_income"`
	TotalExpenses float64                   `json:"total_expenses"`
	NetSavings    float64                   `json:"net_savings"`
	Series        []analytics.Bucket        `json:"series"`
	Breakdown     []analytics.CategoryTotal `json:"breakdown"`
	TopCategories []analytics.CategoryTotal `json:"top_categories"`
}

// AnalyticsServicer derives aggregate views from the user's transaction set.
type AnalyticsServicer interface {
	GetDashboard(userID string) (*DashboardStats, error)
	GetReport(userID string, window analytics.Window, now time.Time) (*AnalyticsReport, error)
	ExportTransactionsCSV(userID string, w io.Writer) error
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(userID, action, resourceType, resourceID, ipAddress string, changes map[string]interface{})
}
