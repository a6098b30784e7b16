package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/stashfold/backend/internal/types"
	"gorm.io/gorm"
)

// Allocation assigns money to a budget for a specific month.
//
// Multiple allocations may exist for the same budget and month, they are
// always summed. A negative amount moves money away from the budget, e.g.
// to correct an earlier allocation.
type Allocation struct {
	DefaultModel
	Budget   Budget      `json:"-"`
	BudgetID uuid.UUID   `json:"budgetId" example:"10b9705d-3356-459e-9d5a-28d42a6c4547"`
	Month    types.Month `json:"month" example:"2026-02"`
	Amount   int64       `json:"amount" example:"50000"` // Amount in minor units of the currency
	Note     string      `json:"note" example:"Moved 50 from eating out"`
}

func (a *Allocation) BeforeCreate(tx *gorm.DB) error {
	_ = a.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Allocation)
	return a.checkIntegrity(tx, *toSave)
}

func (a *Allocation) BeforeUpdate(tx *gorm.DB) error {
	toSave := tx.Statement.Dest.(Allocation)
	if tx.Statement.Changed("BudgetID") {
		err := a.checkIntegrity(tx, toSave)
		if err != nil {
			return err
		}
	}

	return nil
}

// BeforeSave ensures consistency for the allocation.
func (a *Allocation) BeforeSave(_ *gorm.DB) error {
	if a.Month.IsZero() {
		return ErrAllocationNoMonth
	}

	a.Note = strings.TrimSpace(a.Note)

	return nil
}

// checkIntegrity verifies references to other resources
func (a *Allocation) checkIntegrity(tx *gorm.DB, toSave Allocation) error {
	return tx.First(&Budget{}, toSave.BudgetID).Error
}
