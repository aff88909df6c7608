package models

import "time"

// SavingsGoal represents money set aside toward a target. The invariant
// 0 <= CurrentAmount <= TargetAmount holds after every contribution and
// withdrawal; violating actions are rejected, never clamped.
type SavingsGoal struct {
	Base
	UserID        string     `gorm:"type:uuid;not null;index" json:"user_id"`
	Title         string     `gorm:"not null" json:"title"`
	TargetAmount  float64    `gorm:"not null" json:"target_amount"`
	CurrentAmount float64    `gorm:"not null;default:0" json:"current_amount"`
	Deadline      *time.Time `json:"deadline,omitempty"`
}

// Progress returns the completion percentage of the goal.
func (g *SavingsGoal) Progress() float64 {
	if g.TargetAmount <= 0 {
		return 0
	}
	return g.CurrentAmount / g.TargetAmount * 100
}

// Remaining returns the amount still needed to reach the target.
func (g *SavingsGoal) Remaining() float64 {
	return g.TargetAmount - g.CurrentAmount
}
