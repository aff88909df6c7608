// Package analytics derives financial metrics from a transaction snapshot.
// Every function is pure: the same snapshot always yields the same result,
// and the input slice is never mutated.
package analytics

import (
	"moneta/internal/models"
)

// TotalByType sums the amounts of all transactions of the given type.
// An empty snapshot sums to zero.
func TotalByType(txns []models.Transaction, txType models.TransactionType) float64 {
	var total float64
	for i := range txns {
		if txns[i].Type == txType {
			total += txns[i].Amount
		}
	}
	return total
}

// Balance is total income minus total expenses across the snapshot.
func Balance(txns []models.Transaction) float64 {
	return TotalByType(txns, models.TransactionTypeIncome) -
		TotalByType(txns, models.TransactionTypeExpense)
}

// CategoryTotal is a category name with its summed expense amount.
type CategoryTotal struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// CategoryBreakdown sums expense amounts per resolved category name. A
// transaction whose category reference is absent or dangling counts under
// the "Uncategorized" sentinel. Result order is first-occurrence order; it is
// not sorted.
func CategoryBreakdown(txns []models.Transaction) []CategoryTotal {
	index := make(map[string]int)
	var totals []CategoryTotal
	for i := range txns {
		if txns[i].Type != models.TransactionTypeExpense {
			continue
		}
		name := txns[i].CategoryName()
		if pos, ok := index[name]; ok {
			totals[pos].Amount += txns[i].Amount
			continue
		}
		index[name] = len(totals)
		totals = append(totals, CategoryTotal{Name: name, Amount: txns[i].Amount})
	}
	return totals
}

// TopCategories returns the n largest expense categories in descending order.
// Ties keep their first-seen order.
func TopCategories(txns []models.Transaction, n int) []CategoryTotal {
	totals := CategoryBreakdown(txns)
	// Stable insertion sort keeps first-seen order on equal amounts.
	for i := 1; i < len(totals); i++ {
		for j := i; j > 0 && totals[j].Amount > totals[j-1].Amount; j-- {
			totals[j], totals[j-1] = totals[j-1], totals[j]
		}
	}
	if n < len(totals) {
		totals = totals[:n]
	}
	return totals
}
