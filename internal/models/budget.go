package models

import (
	"strings"

	"gorm.io/gorm"
)

// BudgetType determines how a budget's balance rolls over between months.
type BudgetType string

const (
	// BudgetTypeSpending is use-it-or-lose-it: leftover money returns to
	// the pool at the end of the month, overspending is carried forward.
	BudgetTypeSpending BudgetType = "spending"

	// BudgetTypeSavings accumulates across months without reset.
	BudgetTypeSavings BudgetType = "savings"

	// BudgetTypeGoal accumulates towards a one-time target amount.
	BudgetTypeGoal BudgetType = "goal"

	// BudgetTypePeriodic accumulates for expenses that recur at a cadence
	// longer than a month, e.g. yearly insurance premiums.
	BudgetTypePeriodic BudgetType = "periodic"
)

// Valid reports whether the type is one of the known budget types.
func (t BudgetType) Valid() bool {
	switch t {
	case BudgetTypeSpending, BudgetTypeSavings, BudgetTypeGoal, BudgetTypePeriodic:
		return true
	}

	return false
}

// Budget represents an envelope that money is allocated to month by month.
//
// The creation date of a budget defines the earliest month its rollover
// calculation considers.
type Budget struct {
	DefaultModel
	Name         string     `json:"name" gorm:"uniqueIndex:budget_name" example:"Groceries"`
	Note         string     `json:"note" example:"Everything for the kitchen"`
	Type         BudgetType `json:"type" example:"spending"`
	TargetAmount int64      `json:"targetAmount" example:"50000"` // Target in minor units of the currency
	Cadence      string     `json:"cadence,omitempty" example:"monthly"`
	Archived     bool       `json:"archived" example:"false"`
}

// BeforeSave ensures consistency for the budget.
//
// It defaults the type to spending and trims whitespace from all strings.
func (b *Budget) BeforeSave(_ *gorm.DB) error {
	if b.Type == "" {
		b.Type = BudgetTypeSpending
	}

	if !b.Type.Valid() {
		return ErrBudgetInvalidType
	}

	b.Name = strings.TrimSpace(b.Name)
	b.Note = strings.TrimSpace(b.Note)
	b.Cadence = strings.TrimSpace(b.Cadence)

	return nil
}
