package overview

import (
	"context"

	"github.com/stashfold/backend/internal/models"
	"github.com/stashfold/backend/internal/types"
)

// carryoverFunc folds one historical month into the running balance of
// a budget.
type carryoverFunc func(running, allocated, spent int64) int64

// carryoverStrategies maps each budget type to its rollover policy.
var carryoverStrategies = map[models.BudgetType]carryoverFunc{
	models.BudgetTypeSpending: rollForwardDeficit,
	models.BudgetTypeSavings:  rollForwardAll,
	models.BudgetTypeGoal:     rollForwardAll,
	models.BudgetTypePeriodic: rollForwardAll,
}

// rollForwardDeficit resets a surplus to zero at the month boundary.
// Overspending persists until it is absorbed by a later allocation.
func rollForwardDeficit(running, allocated, spent int64) int64 {
	balance := running + allocated - spent
	if balance > 0 {
		return 0
	}

	return balance
}

// rollForwardAll keeps the full balance across the month boundary, the
// budget behaves like a running ledger.
func rollForwardAll(running, allocated, spent int64) int64 {
	return running + allocated - spent
}

// carryover returns the balance that rolls into the given month for a
// budget.
//
// It walks the budget's history in chronological order from the month the
// budget was created in up to, but not including, the target month. Months
// before the budget existed contribute nothing, a budget without history
// has a carryover of zero.
func (c *Calculator) carryover(ctx context.Context, budget models.Budget, month types.Month) (int64, error) {
	if budget.CreatedAt.IsZero() {
		return 0, nil
	}

	fold, ok := carryoverStrategies[budget.Type]
	if !ok {
		fold = rollForwardAll
	}

	var running int64
	for m := types.MonthOf(budget.CreatedAt); m.Before(month); m = m.AddDate(0, 1) {
		allocated, err := c.sources.Allocations.SumForMonth(ctx, &budget.ID, m)
		if err != nil {
			return 0, err
		}

		sums, err := c.sources.Transactions.SumInRange(ctx, TransactionFilter{
			BudgetID: &budget.ID,
			From:     m.Start(),
			To:       m.End(),
		})
		if err != nil {
			return 0, err
		}

		running = fold(running, allocated, sums.Outflow)
	}

	return running, nil
}
