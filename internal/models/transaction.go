package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Transaction represents money moving in or out of an account.
//
// A negative amount is an outflow (debit), a positive amount an inflow
// (credit). The budget reference is optional, transactions without one
// are unassigned and only contribute to the overall totals.
type Transaction struct {
	DefaultModel
	Account   Account    `json:"-"`
	AccountID uuid.UUID  `json:"accountId" example:"8e7fec11-dd6c-4b4c-a96e-3bc84ec2b5ff"`
	Budget    *Budget    `json:"-"`
	BudgetID  *uuid.UUID `json:"budgetId,omitempty" example:"10b9705d-3356-459e-9d5a-28d42a6c4547"`
	Date      time.Time  `json:"date" example:"2026-02-09T00:00:00Z"`
	Amount    int64      `json:"amount" example:"-2995"` // Amount in minor units of the currency, negative is an outflow
	Note      string     `json:"note" example:"Lunch at the bakery"`
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	_ = t.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Transaction)
	return t.checkIntegrity(tx, *toSave)
}

func (t *Transaction) BeforeUpdate(tx *gorm.DB) error {
	toSave := tx.Statement.Dest.(Transaction)
	if tx.Statement.Changed("AccountID") || tx.Statement.Changed("BudgetID") {
		err := t.checkIntegrity(tx, toSave)
		if err != nil {
			return err
		}
	}

	return nil
}

// BeforeSave sets the timezone for the date to UTC and defaults it
// to the current time.
func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	if t.Date.IsZero() {
		t.Date = time.Now().In(time.UTC)
	} else {
		t.Date = t.Date.In(time.UTC)
	}

	t.Note = strings.TrimSpace(t.Note)

	return nil
}

// AfterFind updates the date to use UTC as timezone, not +0000.
func (t *Transaction) AfterFind(_ *gorm.DB) error {
	t.Date = t.Date.In(time.UTC)
	return nil
}

// checkIntegrity verifies references to other resources
func (t *Transaction) checkIntegrity(tx *gorm.DB, toSave Transaction) error {
	err := tx.First(&Account{}, toSave.AccountID).Error
	if err != nil {
		return err
	}

	if toSave.BudgetID != nil {
		return tx.First(&Budget{}, *toSave.BudgetID).Error
	}

	return nil
}
