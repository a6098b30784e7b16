package models_test

import (
	"time"

	"github.com/google/uuid"
	"github.com/stashfold/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestTransactionDateDefaults() {
	account := suite.createTestAccount(models.Account{Name: "Checking"})

	transaction := suite.createTestTransaction(models.Transaction{
		AccountID: account.ID,
		Amount:    -1000,
	})

	assert.False(suite.T(), transaction.Date.IsZero(), "date must default to the current time")
	assert.Equal(suite.T(), time.UTC, transaction.Date.Location())
}

func (suite *TestSuiteStandard) TestTransactionDateUTC() {
	account := suite.createTestAccount(models.Account{Name: "Checking"})

	tz, err := time.LoadLocation("Europe/Berlin")
	assert.Nil(suite.T(), err)

	transaction := suite.createTestTransaction(models.Transaction{
		AccountID: account.ID,
		Date:      time.Date(2024, 3, 12, 10, 30, 0, 0, tz),
		Amount:    -1000,
	})

	assert.Equal(suite.T(), time.UTC, transaction.Date.Location())
}

func (suite *TestSuiteStandard) TestTransactionNonExistingAccount() {
	err := models.DB.Create(&models.Transaction{
		AccountID: uuid.New(),
		Amount:    -1000,
	}).Error

	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestTransactionNonExistingBudget() {
	account := suite.createTestAccount(models.Account{Name: "Checking"})
	budgetID := uuid.New()

	err := models.DB.Create(&models.Transaction{
		AccountID: account.ID,
		BudgetID:  &budgetID,
		Amount:    -1000,
	}).Error

	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestTransactionWithoutBudget() {
	account := suite.createTestAccount(models.Account{Name: "Checking"})

	transaction := suite.createTestTransaction(models.Transaction{
		AccountID: account.ID,
		Amount:    250000,
		Note:      " Salary ",
	})

	assert.Nil(suite.T(), transaction.BudgetID)
	assert.Equal(suite.T(), "Salary", transaction.Note)
}
