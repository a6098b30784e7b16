package models_test

import (
	"github.com/stashfold/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestBudgetTrimWhitespace() {
	budget := suite.createTestBudget(models.Budget{
		Name:    "  Groceries\t",
		Note:    " Everything for the kitchen ",
		Cadence: " yearly ",
		Type:    models.BudgetTypePeriodic,
	})

	assert.Equal(suite.T(), "Groceries", budget.Name)
	assert.Equal(suite.T(), "Everything for the kitchen", budget.Note)
	assert.Equal(suite.T(), "yearly", budget.Cadence)
}

func (suite *TestSuiteStandard) TestBudgetDefaultType() {
	budget := suite.createTestBudget(models.Budget{Name: "No type set"})
	assert.Equal(suite.T(), models.BudgetTypeSpending, budget.Type)
}

func (suite *TestSuiteStandard) TestBudgetInvalidType() {
	err := models.DB.Create(&models.Budget{
		Name: "Broken",
		Type: "envelope",
	}).Error

	assert.ErrorIs(suite.T(), err, models.ErrBudgetInvalidType)
}

func (suite *TestSuiteStandard) TestBudgetNameUnique() {
	_ = suite.createTestBudget(models.Budget{Name: "Groceries"})

	err := models.DB.Create(&models.Budget{Name: "Groceries"}).Error
	assert.ErrorIs(suite.T(), err, models.ErrBudgetNameNotUnique)
}

func (suite *TestSuiteStandard) TestBudgetTypeValid() {
	for _, budgetType := range []models.BudgetType{
		models.BudgetTypeSpending,
		models.BudgetTypeSavings,
		models.BudgetTypeGoal,
		models.BudgetTypePeriodic,
	} {
		assert.True(suite.T(), budgetType.Valid(), string(budgetType))
	}

	assert.False(suite.T(), models.BudgetType("envelope").Valid())
	assert.False(suite.T(), models.BudgetType("").Valid())
}
