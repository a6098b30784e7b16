// Package overview implements the monthly overview calculation.
//
// The calculation is a pipeline of read-only aggregation steps over four
// independent data feeds: account balances, budgets, allocations and
// transactions. All monetary values are integers in minor units of the
// currency, converting to a display unit is the job of the API layer.
package overview

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stashfold/backend/internal/models"
	"github.com/stashfold/backend/internal/types"
)

// RangeSums holds the transaction sums for a date range.
type RangeSums struct {
	Inflow  int64 // Sum of all amounts > 0
	Outflow int64 // Sum of the absolute values of all amounts < 0
}

// TransactionFilter selects the transactions to sum.
//
// The date range is half-open: a transaction is included when
// From <= date < To.
type TransactionFilter struct {
	BudgetID *uuid.UUID         // nil sums transactions of all budgets, including unassigned ones
	From     time.Time
	To       time.Time
	Role     models.AccountRole // empty sums transactions of accounts with any role
}

// AccountSource lists the non-archived accounts.
type AccountSource interface {
	ListActive(ctx context.Context) ([]models.Account, error)
}

// BudgetSource lists the non-archived budgets.
type BudgetSource interface {
	ListActive(ctx context.Context) ([]models.Budget, error)
}

// AllocationSource sums allocation amounts.
//
// SumForMonth and SumThrough are deliberately two distinct operations:
// the month summary depends on the month-scoped sum while the ready-to-assign
// figure depends on the cumulative one, and substituting one for the other
// is a silent calculation bug.
type AllocationSource interface {
	// SumForMonth returns the sum of all allocation amounts for exactly
	// the given month. A nil budgetID sums across all budgets.
	SumForMonth(ctx context.Context, budgetID *uuid.UUID, month types.Month) (int64, error)

	// SumThrough returns the sum of all allocation amounts for all months
	// up to and including the given month. A nil budgetID sums across all
	// budgets.
	SumThrough(ctx context.Context, budgetID *uuid.UUID, month types.Month) (int64, error)
}

// TransactionSource sums transaction amounts in a date range.
type TransactionSource interface {
	SumInRange(ctx context.Context, filter TransactionFilter) (RangeSums, error)
}

// Sources are the four read collaborators the calculation consumes.
// The calculator treats their data as an immutable snapshot, it never
// writes anything.
type Sources struct {
	Accounts     AccountSource
	Budgets      BudgetSource
	Allocations  AllocationSource
	Transactions TransactionSource
}

// BudgetSummary is the calculated state of one budget for a month.
type BudgetSummary struct {
	BudgetID     uuid.UUID         `json:"budgetId"`
	Name         string            `json:"name"`
	Type         models.BudgetType `json:"type"`
	TargetAmount int64             `json:"targetAmount"`
	Allocated    int64             `json:"allocated"`
	Spent        int64             `json:"spent"`
	Carryover    int64             `json:"carryover"`
	Available    int64             `json:"available"`
}

// MonthlyOverview is the full financial snapshot for a month.
type MonthlyOverview struct {
	Month          types.Month     `json:"month"`
	ReadyToAssign  int64           `json:"readyToAssign"`  // Operational cash that was never allocated to any budget
	TotalAllocated int64           `json:"totalAllocated"` // Sum of all allocations for this month
	TotalSpent     int64           `json:"totalSpent"`     // Outflow of all transactions in this month
	AvailableFunds int64           `json:"availableFunds"` // Balance of all operational accounts
	CapitalBalance int64           `json:"capitalBalance"` // Balance of all capital accounts
	SavingsRate    float64         `json:"savingsRate"`    // (income - expense) / income, 0 for months without income
	Budgets        []BudgetSummary `json:"budgets"`
}
