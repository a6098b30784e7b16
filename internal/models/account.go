package models

import (
	"strings"

	"gorm.io/gorm"
)

// AccountRole determines how an account contributes to the monthly overview.
type AccountRole string

const (
	// AccountRoleOperational marks spendable cash, e.g. a checking account.
	AccountRoleOperational AccountRole = "operational"

	// AccountRoleCapital marks savings and investments that are excluded
	// from day-to-day spending power.
	AccountRoleCapital AccountRole = "capital"
)

// Valid reports whether the role is one of the known account roles.
func (r AccountRole) Valid() bool {
	return r == AccountRoleOperational || r == AccountRoleCapital
}

// Account represents an asset account, e.g. a bank account.
//
// The balance is owned by the bank synchronization, the backend only
// reads it for aggregation.
type Account struct {
	DefaultModel
	Name     string      `json:"name" gorm:"uniqueIndex:account_name" example:"Main checking"`
	Note     string      `json:"note" example:"The account at my house bank"`
	Role     AccountRole `json:"role" example:"operational"`
	Balance  int64       `json:"balance" example:"174212"` // Balance in minor units of the currency
	Archived bool        `json:"archived" example:"false"`
}

// BeforeSave ensures consistency for the account.
//
// It defaults the role to operational and trims whitespace from all strings.
func (a *Account) BeforeSave(_ *gorm.DB) error {
	if a.Role == "" {
		a.Role = AccountRoleOperational
	}

	if !a.Role.Valid() {
		return ErrAccountInvalidRole
	}

	a.Name = strings.TrimSpace(a.Name)
	a.Note = strings.TrimSpace(a.Note)

	return nil
}

// Transactions returns all transactions for this account.
func (a Account) Transactions(db *gorm.DB) []Transaction {
	var transactions []Transaction

	db.Where(Transaction{AccountID: a.ID}).Find(&transactions)
	return transactions
}
