package models

import "time"

// TransactionType represents the direction of a transaction. Direction is
// encoded here, never in the sign of the amount.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Transaction represents a single income or expense entry. The category is a
// weak reference: it is joined in at read time and resolves to nil if the
// category was deleted.
type Transaction struct {
	Base
	UserID      string          `gorm:"type:uuid;not null;index" json:"user_id"`
	Type        TransactionType `gorm:"not null" json:"type"`
	Amount      float64         `gorm:"not null" json:"amount"`
	CategoryID  *string         `gorm:"type:uuid" json:"category_id,omitempty"`
	Date        time.Time       `gorm:"not null" json:"date"`
	Description string          `json:"description"`
	Notes       string          `json:"notes,omitempty"`

	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

// CategoryName returns the resolved category name, or the "Uncategorized"
// sentinel when the reference is absent or dangling.
func (t *Transaction) CategoryName() string {
	if t.Category == nil {
		return "Uncategorized"
	}
	return t.Category.Name
}
