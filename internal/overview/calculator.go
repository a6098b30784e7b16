package overview

import (
	"context"

	"github.com/stashfold/backend/internal/models"
	"github.com/stashfold/backend/internal/types"
	"golang.org/x/sync/errgroup"
)

// IncomeScope determines which accounts the income and spending totals
// consider.
type IncomeScope string

const (
	// IncomeScopeAll counts transactions of all accounts.
	IncomeScopeAll IncomeScope = "all"

	// IncomeScopeOperational restricts income and spending to
	// operational accounts.
	IncomeScopeOperational IncomeScope = "operational"
)

// Calculator computes the monthly overview from the four read sources.
//
// A Calculator holds no state between calls. Computing the same month
// twice over unchanged data returns identical results.
type Calculator struct {
	sources Sources

	// IncomeScope is the account scope for the income, spending and
	// savings rate figures. Defaults to IncomeScopeAll.
	IncomeScope IncomeScope
}

// New returns a Calculator reading from the given sources.
func New(sources Sources) *Calculator {
	return &Calculator{
		sources:     sources,
		IncomeScope: IncomeScopeAll,
	}
}

// Compute calculates the full overview for a month.
//
// The four source reads are independent and are issued concurrently, the
// calculation itself is synchronous and free of side effects. Source
// errors propagate unmodified.
func (c *Calculator) Compute(ctx context.Context, month types.Month) (MonthlyOverview, error) {
	var (
		accounts         []models.Account
		budgets          []models.Budget
		totalAllocated   int64
		allocatedAllTime int64
		sums             RangeSums
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		accounts, err = c.sources.Accounts.ListActive(gctx)
		return
	})
	g.Go(func() (err error) {
		budgets, err = c.sources.Budgets.ListActive(gctx)
		return
	})
	g.Go(func() (err error) {
		totalAllocated, err = c.sources.Allocations.SumForMonth(gctx, nil, month)
		if err != nil {
			return
		}

		allocatedAllTime, err = c.sources.Allocations.SumThrough(gctx, nil, month)
		return
	})
	g.Go(func() (err error) {
		sums, err = c.sources.Transactions.SumInRange(gctx, TransactionFilter{
			From: month.Start(),
			To:   month.End(),
			Role: c.scopeRole(),
		})
		return
	})

	if err := g.Wait(); err != nil {
		return MonthlyOverview{}, err
	}

	result := MonthlyOverview{
		Month:          month,
		TotalAllocated: totalAllocated,
		TotalSpent:     sums.Outflow,
		AvailableFunds: AggregateFunds(accounts, models.AccountRoleOperational),
		CapitalBalance: AggregateFunds(accounts, models.AccountRoleCapital),
		SavingsRate:    savingsRate(sums.Inflow, sums.Outflow),
		Budgets:        make([]BudgetSummary, 0, len(budgets)),
	}

	// Ready to assign is operational cash minus everything that was ever
	// allocated, not just this month's allocations. It may go negative
	// when more money is assigned than exists.
	result.ReadyToAssign = result.AvailableFunds - allocatedAllTime

	for _, budget := range budgets {
		summary, err := c.budgetSummary(ctx, budget, month)
		if err != nil {
			return MonthlyOverview{}, err
		}

		result.Budgets = append(result.Budgets, summary)
	}

	return result, nil
}

// budgetSummary calculates the month state of one budget.
func (c *Calculator) budgetSummary(ctx context.Context, budget models.Budget, month types.Month) (BudgetSummary, error) {
	allocated, err := c.sources.Allocations.SumForMonth(ctx, &budget.ID, month)
	if err != nil {
		return BudgetSummary{}, err
	}

	sums, err := c.sources.Transactions.SumInRange(ctx, TransactionFilter{
		BudgetID: &budget.ID,
		From:     month.Start(),
		To:       month.End(),
	})
	if err != nil {
		return BudgetSummary{}, err
	}

	carryover, err := c.carryover(ctx, budget, month)
	if err != nil {
		return BudgetSummary{}, err
	}

	return newBudgetSummary(budget, allocated, carryover, sums.Outflow), nil
}

// newBudgetSummary combines allocation, carryover and spending for one
// budget. Available is always allocated + carryover - spent, a negative
// value is a valid, reportable state: the envelope is overspent.
func newBudgetSummary(budget models.Budget, allocated, carryover, spent int64) BudgetSummary {
	return BudgetSummary{
		BudgetID:     budget.ID,
		Name:         budget.Name,
		Type:         budget.Type,
		TargetAmount: budget.TargetAmount,
		Allocated:    allocated,
		Spent:        spent,
		Carryover:    carryover,
		Available:    allocated + carryover - spent,
	}
}

// savingsRate returns (income - expense) / income. Months without income
// have a rate of zero, never NaN or Inf.
func savingsRate(income, expense int64) float64 {
	if income == 0 {
		return 0
	}

	return float64(income-expense) / float64(income)
}

func (c *Calculator) scopeRole() models.AccountRole {
	if c.IncomeScope == IncomeScopeOperational {
		return models.AccountRoleOperational
	}

	return ""
}
