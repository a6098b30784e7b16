package models_test

import (
	"github.com/google/uuid"
	"github.com/stashfold/backend/internal/models"
	"github.com/stashfold/backend/internal/types"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestAllocationCreate() {
	budget := suite.createTestBudget(models.Budget{Name: "Groceries"})

	allocation := suite.createTestAllocation(models.Allocation{
		BudgetID: budget.ID,
		Month:    types.NewMonth(2024, 3),
		Amount:   50000,
		Note:     "  Rent increase  ",
	})

	assert.NotEqual(suite.T(), uuid.Nil, allocation.ID)
	assert.Equal(suite.T(), "Rent increase", allocation.Note)
}

func (suite *TestSuiteStandard) TestAllocationWithoutMonth() {
	budget := suite.createTestBudget(models.Budget{Name: "Groceries"})

	err := models.DB.Create(&models.Allocation{
		BudgetID: budget.ID,
		Amount:   50000,
	}).Error

	assert.ErrorIs(suite.T(), err, models.ErrAllocationNoMonth)
}

func (suite *TestSuiteStandard) TestAllocationNonExistingBudget() {
	err := models.DB.Create(&models.Allocation{
		BudgetID: uuid.New(),
		Month:    types.NewMonth(2024, 3),
		Amount:   50000,
	}).Error

	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestAllocationMonthRoundtrip() {
	budget := suite.createTestBudget(models.Budget{Name: "Groceries"})
	month := types.NewMonth(2024, 3)

	created := suite.createTestAllocation(models.Allocation{
		BudgetID: budget.ID,
		Month:    month,
		Amount:   50000,
	})

	var read models.Allocation
	err := models.DB.First(&read, created.ID).Error
	assert.Nil(suite.T(), err)
	assert.True(suite.T(), read.Month.Equal(month), "month was %s, expected %s", read.Month, month)
}

func (suite *TestSuiteStandard) TestAllocationUpdateBudgetIntegrity() {
	budget := suite.createTestBudget(models.Budget{Name: "Groceries"})

	allocation := suite.createTestAllocation(models.Allocation{
		BudgetID: budget.ID,
		Month:    types.NewMonth(2024, 3),
		Amount:   50000,
	})

	err := models.DB.Model(&allocation).Select("BudgetID").Updates(models.Allocation{BudgetID: uuid.New()}).Error
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}
