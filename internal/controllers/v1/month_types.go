package v1

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stashfold/backend/internal/models"
	"github.com/stashfold/backend/internal/overview"
	"github.com/stashfold/backend/internal/types"
)

// BudgetSummary is the API representation of the calculated state of one
// budget for a month.
type BudgetSummary struct {
	BudgetID     uuid.UUID         `json:"budgetId" example:"10b9705d-3356-459e-9d5a-28d42a6c4547"` // ID of the budget
	Name         string            `json:"name" example:"Groceries"`                                // Name of the budget
	Type         models.BudgetType `json:"type" example:"spending"`                                 // Rollover policy of the budget
	TargetAmount decimal.Decimal   `json:"targetAmount" example:"500"`                              // The budget's target
	Allocated    decimal.Decimal   `json:"allocated" example:"500"`                                 // Money allocated this month
	Spent        decimal.Decimal   `json:"spent" example:"133.70"`                                  // Money spent this month
	Carryover    decimal.Decimal   `json:"carryover" example:"-20"`                                 // Balance rolled over from earlier months
	Available    decimal.Decimal   `json:"available" example:"346.30"`                              // allocated + carryover - spent
}

// MonthlyOverview is the API representation of the full snapshot for a
// month. All sums are converted from minor units to the display unit of
// the currency here, the calculation itself never leaves minor units.
type MonthlyOverview struct {
	Month          types.Month     `json:"month" example:"2026-02"`
	ReadyToAssign  decimal.Decimal `json:"readyToAssign" example:"200"`   // Operational cash never allocated to any budget
	TotalAllocated decimal.Decimal `json:"totalAllocated" example:"2100"` // Sum of all allocations for this month
	TotalSpent     decimal.Decimal `json:"totalSpent" example:"1337.42"`  // Spending across all transactions this month
	AvailableFunds decimal.Decimal `json:"availableFunds" example:"3423.42"`
	CapitalBalance decimal.Decimal `json:"capitalBalance" example:"15000"`
	SavingsRate    float64         `json:"savingsRate" example:"0.34"` // (income - expense) / income, 0 without income
	Budgets        []BudgetSummary `json:"budgets"`
}

type MonthResponse struct {
	Data  *MonthlyOverview `json:"data"`                                                       // The overview for the month
	Error *string          `json:"error" example:"the month must be specified in YYYY-MM format"` // The error, if any occurred
}

// displayUnit converts an amount in minor units to the decimal display
// unit of the currency.
func displayUnit(minor int64) decimal.Decimal {
	return decimal.New(minor, -2)
}

func newMonthlyOverview(result overview.MonthlyOverview) MonthlyOverview {
	budgets := make([]BudgetSummary, 0, len(result.Budgets))
	for _, budget := range result.Budgets {
		budgets = append(budgets, BudgetSummary{
			BudgetID:     budget.BudgetID,
			Name:         budget.Name,
			Type:         budget.Type,
			TargetAmount: displayUnit(budget.TargetAmount),
			Allocated:    displayUnit(budget.Allocated),
			Spent:        displayUnit(budget.Spent),
			Carryover:    displayUnit(budget.Carryover),
			Available:    displayUnit(budget.Available),
		})
	}

	return MonthlyOverview{
		Month:          result.Month,
		ReadyToAssign:  displayUnit(result.ReadyToAssign),
		TotalAllocated: displayUnit(result.TotalAllocated),
		TotalSpent:     displayUnit(result.TotalSpent),
		AvailableFunds: displayUnit(result.AvailableFunds),
		CapitalBalance: displayUnit(result.CapitalBalance),
		SavingsRate:    result.SavingsRate,
		Budgets:        budgets,
	}
}
