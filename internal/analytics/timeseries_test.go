package analytics

import (
	"testing"
	"time"

	"moneta/internal/models"
)

func TestWindowRange(t *testing.T) {
	// Wednesday, 2025-06-18.
	now := time.Date(2025, time.June, 18, 15, 30, 0, 0, time.UTC)

	t.Run("week starts on Sunday", func(t *testing.T) {
		start, end := WindowWeek.Range(now)
		if start.Weekday() != time.Sunday {
			t.Errorf("expected Sunday start, got %s", start.Weekday())
		}
		if !start.Equal(time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("unexpected start: %s", start)
		}
		if !end.Equal(time.Date(2025, time.June, 21, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("unexpected end: %s", end)
		}
	})

	t.Run("month covers calendar month", func(t *testing.T) {
		start, end := WindowMonth.Range(now)
		if start.Day() != 1 || start.Month() != time.June {
			t.Errorf("unexpected start: %s", start)
		}
		if end.Day() != 30 || end.Month() != time.June {
			t.Errorf("unexpected end: %s", end)
		}
	})

	t.Run("year covers calendar year", func(t *testing.T) {
		start, end := WindowYear.Range(now)
		if start.Month() != time.January || start.Day() != 1 {
			t.Errorf("unexpected start: %s", start)
		}
		if end.Month() != time.December || end.Day() != 31 {
			t.Errorf("unexpected end: %s", end)
		}
	})
}

func TestTimeSeries(t *testing.T) {
	now := time.Date(2025, time.June, 18, 12, 0, 0, 0, time.UTC)

	t.Run("week has 7 zero-filled buckets", func(t *testing.T) {
		buckets := TimeSeries(nil, WindowWeek, now)
		if len(buckets) != 7 {
			t.Fatalf("expected 7 buckets, got %d", len(buckets))
		}
		for _, b := range buckets {
			if b.Income != 0 || b.Expense != 0 || b.Net != 0 {
				t.Errorf("expected zero bucket, got %+v", b)
			}
		}
		if buckets[0].Label != "Sun" {
			t.Errorf("expected Sun first, got %s", buckets[0].Label)
		}
	})

	t.Run("month buckets each day", func(t *testing.T) {
		txns := []models.Transaction{
			tx(models.TransactionTypeIncome, 100, time.Date(2025, time.June, 5, 9, 0, 0, 0, time.UTC), ""),
			tx(models.TransactionTypeExpense, 40, time.Date(2025, time.June, 5, 18, 0, 0, 0, time.UTC), ""),
			tx(models.TransactionTypeExpense, 10, time.Date(2025, time.May, 31, 12, 0, 0, 0, time.UTC), ""),
		}

		buckets := TimeSeries(txns, WindowMonth, now)
		if len(buckets) != 30 {
			t.Fatalf("expected 30 buckets for June, got %d", len(buckets))
		}
		day5 := buckets[4]
		if day5.Income != 100 || day5.Expense != 40 || day5.Net != 60 {
			t.Errorf("unexpected June 5 bucket: %+v", day5)
		}
		// The May transaction is outside the window.
		var total float64
		for _, b := range buckets {
			total += b.Expense
		}
		if total != 40 {
			t.Errorf("expected only in-window expenses, got %f", total)
		}
	})

	t.Run("year buckets by month", func(t *testing.T) {
		txns := []models.Transaction{
			tx(models.TransactionTypeIncome, 100, time.Date(2025, time.February, 10, 0, 0, 0, 0, time.UTC), ""),
			tx(models.TransactionTypeIncome, 50, time.Date(2025, time.February, 20, 0, 0, 0, 0, time.UTC), ""),
		}

		buckets := TimeSeries(txns, WindowYear, now)
		if len(buckets) != 12 {
			t.Fatalf("expected 12 buckets, got %d", len(buckets))
		}
		if buckets[1].Label != "Feb" || buckets[1].Income != 150 {
			t.Errorf("unexpected February bucket: %+v", buckets[1])
		}
		if buckets[0].Income != 0 {
			t.Errorf("expected empty January, got %+v", buckets[0])
		}
	})
}

func TestTrailingDays(t *testing.T) {
	now := time.Date(2025, time.June, 18, 12, 0, 0, 0, time.UTC)
	txns := []models.Transaction{
		tx(models.TransactionTypeExpense, 25, now.AddDate(0, 0, -1), ""),
		tx(models.TransactionTypeExpense, 99, now.AddDate(0, 0, -10), ""),
	}

	buckets := TrailingDays(txns, 7, now)
	if len(buckets) != 7 {
		t.Fatalf("expected 7 buckets, got %d", len(buckets))
	}
	if buckets[5].Expense != 25 {
		t.Errorf("expected yesterday's expense in sixth bucket, got %+v", buckets[5])
	}
	var total float64
	for _, b := range buckets {
		total += b.Expense
	}
	if total != 25 {
		t.Errorf("expected out-of-range transaction excluded, got total %f", total)
	}
}
