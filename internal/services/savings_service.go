package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	apperrors "moneta/internal/errors"
	"moneta/internal/models"
	"moneta/internal/pagination"
)

// savingsService handles savings-goal business logic, including the
// contribute/withdraw ledger operation.
type savingsService struct {
	db *gorm.DB
}

// NewSavingsService creates a new SavingsServicer.
func NewSavingsService(db *gorm.DB) SavingsServicer {
	return &savingsService{db: db}
}

// CreateGoal creates a new savings goal starting at zero.
func (s *savingsService) CreateGoal(userID, title string, targetAmount float64, deadline *time.Time) (*models.SavingsGoal, error) {
	if title == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "goal title is required")
	}
	if targetAmount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "target amount must be greater than zero")
	}

	goal := &models.SavingsGoal{
		UserID:       userID,
		Title:        title,
		TargetAmount: targetAmount,
		Deadline:     deadline,
	}

	if err := s.db.Create(goal).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return goal, nil
}

// GetUserGoals retrieves a paginated list of goals, newest created first.
func (s *savingsService) GetUserGoals(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.SavingsGoal], error) {
	page.Defaults()

	base := s.db.Model(&models.SavingsGoal{}).Where("user_id = ?", userID)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var goals []models.SavingsGoal
	if err := base.Scopes(pagination.Paginate(page)).
		Order("created_at DESC").
		Find(&goals).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(goals, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetGoalByID retrieves a goal by ID for a specific user
func (s *savingsService) GetGoalByID(userID, goalID string) (*models.SavingsGoal, error) {
	var goal models.SavingsGoal
	if err := s.db.Where("id = ? AND user_id = ?", goalID, userID).First(&goal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGoalNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &goal, nil
}

// UpdateGoal updates the goal's title, target, or deadline. Lowering the
// target below the current amount is rejected to keep the invariant intact.
func (s *savingsService) UpdateGoal(userID, goalID, title string, targetAmount *float64, deadline *time.Time) (*models.SavingsGoal, error) {
	goal, err := s.GetGoalByID(userID, goalID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if title != "" {
		updates["title"] = title
	}
	if targetAmount != nil {
		if *targetAmount <= 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "target amount must be greater than zero")
		}
		if *targetAmount < goal.CurrentAmount {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "target amount cannot be below the current amount")
		}
		updates["target_amount"] = *targetAmount
	}
	if deadline != nil {
		updates["deadline"] = deadline
	}

	if len(updates) > 0 {
		if err := s.db.Model(goal).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return goal, nil
}

// DeleteGoal soft-deletes a goal. Transactions created by past ledger
// operations remain in the ledger.
func (s *savingsService) DeleteGoal(userID, goalID string) error {
	goal, err := s.GetGoalByID(userID, goalID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(goal).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// ApplyGoalAction moves money into or out of a goal and records the mirrored
// transaction that keeps the overall balance consistent: a contribution books
// as an expense, a withdrawal as income. Validation happens before any write;
// on success both writes commit in a single database transaction, so the goal
// and the ledger can never diverge.
//
// The goal update is guarded by the current amount read at validation time.
// If another session changed the goal in between, the guard misses and the
// whole operation fails with a conflict instead of clobbering the other write.
func (s *savingsService) ApplyGoalAction(userID, goalID string, action GoalAction, amount float64) (*GoalActionResult, error) {
	if amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}

	goal, err := s.GetGoalByID(userID, goalID)
	if err != nil {
		return nil, err
	}

	var (
		newAmount   float64
		txType      models.TransactionType
		description string
		notes       string
	)
	switch action {
	case GoalActionContribute:
		newAmount = goal.CurrentAmount + amount
		if newAmount > goal.TargetAmount {
			return nil, apperrors.ErrExceedsTarget
		}
		txType = models.TransactionTypeExpense
		description = fmt.Sprintf("Contribution to %s", goal.Title)
		notes = "Savings goal contribute"
	case GoalActionWithdraw:
		newAmount = goal.CurrentAmount - amount
		if newAmount < 0 {
			return nil, apperrors.ErrInsufficientFunds
		}
		txType = models.TransactionTypeIncome
		description = fmt.Sprintf("Withdrawal from %s", goal.Title)
		notes = "Savings goal withdraw"
	default:
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "action must be contribute or withdraw")
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	result := &GoalActionResult{}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.SavingsGoal{}).
			Where("id = ? AND user_id = ? AND current_amount = ?", goal.ID, userID, goal.CurrentAmount).
			Update("current_amount", newAmount)
		if res.Error != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
		}
		if res.RowsAffected == 0 {
			return apperrors.ErrGoalConflict
		}

		mirrored := &models.Transaction{
			UserID:      userID,
			Type:        txType,
			Amount:      amount,
			Date:        today,
			Description: description,
			Notes:       notes,
		}
		if err := tx.Create(mirrored).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		result.Transaction = mirrored
		return nil
	})
	if err != nil {
		return nil, err
	}

	goal.CurrentAmount = newAmount
	result.Goal = goal
	return result, nil
}

// GetSummary aggregates saved and target amounts across all of the user's goals.
func (s *savingsService) GetSummary(userID string) (*SavingsSummary, error) {
	var goals []models.SavingsGoal
	if err := s.db.Where("user_id = ?", userID).Find(&goals).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	summary := &SavingsSummary{GoalCount: len(goals)}
	for i := range goals {
		summary.TotalSaved += goals[i].CurrentAmount
		summary.TotalTarget += goals[i].TargetAmount
	}
	if summary.TotalTarget > 0 {
		summary.PercentComplete = summary.TotalSaved / summary.TotalTarget * 100
	}
	return summary, nil
}
