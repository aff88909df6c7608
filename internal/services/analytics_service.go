package services

import (
	"io"
	"time"

	"golang.org/x/sync/errgroup"

	"moneta/internal/analytics"
	apperrors "moneta/internal/errors"
	"moneta/internal/export"
	"moneta/internal/models"
)

const recentTransactionCount = 5

// analyticsService derives aggregate views from the user's transaction set.
// All aggregations run over an in-memory snapshot so every number on a page
// comes from the same read.
type analyticsService struct {
	transactions TransactionServicer
	savings      SavingsServicer
}

// NewAnalyticsService creates a new AnalyticsServicer.
func NewAnalyticsService(transactions TransactionServicer, savings SavingsServicer) AnalyticsServicer {
	return &analyticsService{transactions: transactions, savings: savings}
}

// GetDashboard assembles the dashboard overview: lifetime totals, total saved
// across goals, the last seven days of activity, and the most recent entries.
func (s *analyticsService) GetDashboard(userID string) (*DashboardStats, error) {
	var (
		txns    []models.Transaction
		summary *SavingsSummary
	)

	var g errgroup.Group
	g.Go(func() error {
		var err error
		txns, err = s.transactions.GetTransactionSnapshot(userID)
		return err
	})
	g.Go(func() error {
		var err error
		summary, err = s.savings.GetSummary(userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	income := analytics.TotalByType(txns, models.TransactionTypeIncome)
	expenses := analytics.TotalByType(txns, models.TransactionTypeExpense)

	recent := txns
	if len(recent) > recentTransactionCount {
		recent = recent[:recentTransactionCount]
	}

	return &DashboardStats{
		TotalBalance:       income - expenses,
		TotalIncome:        income,
		TotalExpenses:      expenses,
		TotalSavings:       summary.TotalSaved,
		Last7Days:          analytics.TrailingDays(txns, 7, time.Now()),
		RecentTransactions: recent,
	}, nil
}

// GetReport aggregates the window containing now: totals, the bucketed time
// series, the expense breakdown by category, and the top five categories.
func (s *analyticsService) GetReport(userID string, window analytics.Window, now time.Time) (*AnalyticsReport, error) {
	txns, err := s.transactions.GetTransactionSnapshot(userID)
	if err != nil {
		return nil, err
	}

	start, end := window.Range(now)
	inWindow := analytics.FilterRange(txns, start, end)

	income := analytics.TotalByType(inWindow, models.TransactionTypeIncome)
	expenses := analytics.TotalByType(inWindow, models.TransactionTypeExpense)
	return &AnalyticsReport{
		Window:        window,
		TotalIncome:   income,
		TotalExpenses: expenses,
		NetSavings:    income - expenses,
		Series:        analytics.TimeSeries(txns, window, now),
		Breakdown:     analytics.CategoryBreakdown(inWindow),
		TopCategories: analytics.TopCategories(inWindow, 5),
	}, nil
}

// ExportTransactionsCSV streams the user's full transaction history as CSV.
func (s *analyticsService) ExportTransactionsCSV(userID string, w io.Writer) error {
	txns, err := s.transactions.GetTransactionSnapshot(userID)
	if err != nil {
		return err
	}
	if err := export.TransactionsCSV(w, txns); err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
