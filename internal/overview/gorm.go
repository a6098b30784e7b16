package overview

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/stashfold/backend/internal/models"
	"github.com/stashfold/backend/internal/types"
	"gorm.io/gorm"
)

// NewDBSources returns Sources backed by the gorm database.
func NewDBSources(db *gorm.DB) Sources {
	return Sources{
		Accounts:     accountSource{db},
		Budgets:      budgetSource{db},
		Allocations:  allocationSource{db},
		Transactions: transactionSource{db},
	}
}

type accountSource struct {
	db *gorm.DB
}

func (s accountSource) ListActive(ctx context.Context) ([]models.Account, error) {
	var accounts []models.Account

	err := s.db.WithContext(ctx).
		Where("archived = ?", false).
		Order("name ASC").
		Find(&accounts).Error
	if err != nil {
		return nil, fmt.Errorf("listing accounts failed: %w", err)
	}

	return accounts, nil
}

type budgetSource struct {
	db *gorm.DB
}

func (s budgetSource) ListActive(ctx context.Context) ([]models.Budget, error) {
	var budgets []models.Budget

	err := s.db.WithContext(ctx).
		Where("archived = ?", false).
		Order("name ASC").
		Find(&budgets).Error
	if err != nil {
		return nil, fmt.Errorf("listing budgets failed: %w", err)
	}

	return budgets, nil
}

type allocationSource struct {
	db *gorm.DB
}

func (s allocationSource) SumForMonth(ctx context.Context, budgetID *uuid.UUID, month types.Month) (int64, error) {
	return s.sum(ctx, budgetID, month, month.AddDate(0, 1))
}

func (s allocationSource) SumThrough(ctx context.Context, budgetID *uuid.UUID, month types.Month) (int64, error) {
	return s.sum(ctx, budgetID, types.Month{}, month.AddDate(0, 1))
}

// sum adds up all allocation amounts with from <= month < to. A zero from
// month means no lower bound. Allocations of archived budgets do not
// count towards any aggregate.
func (s allocationSource) sum(ctx context.Context, budgetID *uuid.UUID, from, to types.Month) (int64, error) {
	q := s.db.WithContext(ctx).
		Table("allocations").
		Joins("JOIN budgets ON budgets.id = allocations.budget_id AND budgets.deleted_at IS NULL AND budgets.archived = ?", false).
		Where("allocations.deleted_at IS NULL").
		Where("allocations.month < date(?)", to).
		Select("SUM(allocations.amount)")

	if !from.IsZero() {
		q = q.Where("allocations.month >= date(?)", from)
	}

	if budgetID != nil {
		q = q.Where("allocations.budget_id = ?", *budgetID)
	}

	var sum sql.NullInt64
	err := q.Row().Scan(&sum)
	if err != nil {
		return 0, fmt.Errorf("summing allocations failed: %w", err)
	}

	// Without any matching allocations the SUM is NULL
	return sum.Int64, nil
}

type transactionSource struct {
	db *gorm.DB
}

func (s transactionSource) SumInRange(ctx context.Context, filter TransactionFilter) (RangeSums, error) {
	q := s.db.WithContext(ctx).
		Table("transactions").
		Where("transactions.deleted_at IS NULL").
		Where("datetime(transactions.date) >= datetime(?)", filter.From).
		Where("datetime(transactions.date) < datetime(?)", filter.To)

	if filter.BudgetID != nil {
		q = q.Where("transactions.budget_id = ?", *filter.BudgetID)
	}

	if filter.Role != "" {
		q = q.
			Joins("JOIN accounts ON accounts.id = transactions.account_id AND accounts.deleted_at IS NULL").
			Where("accounts.role = ?", filter.Role)
	}

	var inflow, outflow sql.NullInt64
	err := q.
		Select(
			"SUM(CASE WHEN transactions.amount > 0 THEN transactions.amount ELSE 0 END)," +
				"SUM(CASE WHEN transactions.amount < 0 THEN -transactions.amount ELSE 0 END)").
		Row().
		Scan(&inflow, &outflow)
	if err != nil {
		return RangeSums{}, fmt.Errorf("summing transactions failed: %w", err)
	}

	return RangeSums{
		Inflow:  inflow.Int64,
		Outflow: outflow.Int64,
	}, nil
}
