package analytics

import (
	"time"

	"moneta/internal/models"
)

// Window selects the reporting period for a time series.
type Window string

const (
	WindowWeek  Window = "week"
	WindowMonth Window = "month"
	WindowYear  Window = "year"
)

// Bucket is one calendar-aligned interval of a time series. Buckets with no
// matching transactions report zeros rather than being omitted.
type Bucket struct {
	Label   string  `json:"label"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Net     float64 `json:"net"`
}

// Range returns the first and last calendar day of the window containing now.
// Weeks start on Sunday.
func (w Window) Range(now time.Time) (start, end time.Time) {
	day := atMidnight(now)
	switch w {
	case WindowWeek:
		start = day.AddDate(0, 0, -int(day.Weekday()))
		end = start.AddDate(0, 0, 6)
	case WindowYear:
		start = time.Date(day.Year(), time.January, 1, 0, 0, 0, 0, day.Location())
		end = time.Date(day.Year(), time.December, 31, 0, 0, 0, 0, day.Location())
	default: // month
		start = time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location())
		end = start.AddDate(0, 1, -1)
	}
	return start, end
}

// FilterRange returns the transactions whose date falls within [start, end],
// compared at calendar-day granularity.
func FilterRange(txns []models.Transaction, start, end time.Time) []models.Transaction {
	s, e := dayKey(start), dayKey(end)
	var out []models.Transaction
	for i := range txns {
		k := dayKey(txns[i].Date)
		if k >= s && k <= e {
			out = append(out, txns[i])
		}
	}
	return out
}

// TimeSeries buckets the snapshot over the window containing now: one bucket
// per calendar day for week and month windows, one per calendar month for the
// year window. Transactions outside the window are excluded first.
func TimeSeries(txns []models.Transaction, w Window, now time.Time) []Bucket {
	start, end := w.Range(now)
	inWindow := FilterRange(txns, start, end)

	if w == WindowYear {
		return monthlySeries(inWindow)
	}
	return dailySeries(inWindow, w, start, end)
}

func dailySeries(txns []models.Transaction, w Window, start, end time.Time) []Bucket {
	labelFormat := "Jan 2"
	if w == WindowWeek {
		labelFormat = "Mon"
	}

	var buckets []Bucket
	keys := make(map[int]int)
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		keys[dayKey(day)] = len(buckets)
		buckets = append(buckets, Bucket{Label: day.Format(labelFormat)})
	}

	for i := range txns {
		pos, ok := keys[dayKey(txns[i].Date)]
		if !ok {
			continue
		}
		accumulate(&buckets[pos], &txns[i])
	}
	finalize(buckets)
	return buckets
}

func monthlySeries(txns []models.Transaction) []Bucket {
	buckets := make([]Bucket, 12)
	for m := 0; m < 12; m++ {
		buckets[m].Label = time.Month(m + 1).String()[:3]
	}

	for i := range txns {
		accumulate(&buckets[txns[i].Date.Month()-1], &txns[i])
	}
	finalize(buckets)
	return buckets
}

func accumulate(b *Bucket, t *models.Transaction) {
	switch t.Type {
	case models.TransactionTypeIncome:
		b.Income += t.Amount
	case models.TransactionTypeExpense:
		b.Expense += t.Amount
	}
}

func finalize(buckets []Bucket) {
	for i := range buckets {
		buckets[i].Net = buckets[i].Income - buckets[i].Expense
	}
}

// TrailingDays buckets the snapshot per calendar day over the n days ending
// today, weekday labels, zeros for empty days.
func TrailingDays(txns []models.Transaction, n int, now time.Time) []Bucket {
	end := atMidnight(now)
	start := end.AddDate(0, 0, -(n - 1))
	return dailySeries(FilterRange(txns, start, end), WindowWeek, start, end)
}

// atMidnight truncates a time to its calendar day in its own location.
func atMidnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// dayKey collapses a time to a comparable calendar-day integer, ignoring the
// time-of-day and location offsets of store-supplied dates.
func dayKey(t time.Time) int {
	return t.Year()*10000 + int(t.Month())*100 + t.Day()
}
