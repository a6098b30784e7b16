package v1_test

import (
	"fmt"
	"net/http"
	"time"

	v1 "github.com/stashfold/backend/internal/controllers/v1"
	"github.com/stashfold/backend/internal/models"
	"github.com/stashfold/backend/internal/test"
)

func (suite *TestSuiteStandard) TestTransactionsCreate() {
	account := suite.createTestAccount(models.Account{Name: "Checking"})
	budget := suite.createTestBudget(models.Budget{Name: "Groceries"})

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/transactions", []v1.TransactionEditable{
		{AccountID: account.ID, BudgetID: &budget.ID, Amount: -1732, Note: "Weekly groceries"},
		{AccountID: account.ID, Amount: 250000, Note: "Salary"},
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.TransactionCreateResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().Len(response.Data, 2)

	suite.Require().NotNil(response.Data[0].Data)
	suite.Assert().Equal(int64(-1732), response.Data[0].Data.Amount)
	suite.Require().NotNil(response.Data[1].Data)
	suite.Assert().Nil(response.Data[1].Data.BudgetID, "income has no budget")
	suite.Assert().False(response.Data[1].Data.Date.IsZero(), "date must default to the creation time")
}

func (suite *TestSuiteStandard) TestTransactionsCreateNonExistingAccount() {
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/transactions", []v1.TransactionEditable{
		{Amount: -1732},
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestTransactionsGetFiltered() {
	checking := suite.createTestAccount(models.Account{Name: "Checking"})
	wallet := suite.createTestAccount(models.Account{Name: "Wallet"})
	groceries := suite.createTestBudget(models.Budget{Name: "Groceries"})

	_ = suite.createTestTransaction(models.Transaction{
		AccountID: checking.ID,
		BudgetID:  &groceries.ID,
		Date:      time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		Amount:    -4000,
		Note:      "REWE market",
	})
	_ = suite.createTestTransaction(models.Transaction{
		AccountID: checking.ID,
		Date:      time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Amount:    250000,
		Note:      "Salary March",
	})
	_ = suite.createTestTransaction(models.Transaction{
		AccountID: wallet.ID,
		Date:      time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC),
		Amount:    -1500,
		Note:      "Coffee",
	})

	tests := []struct {
		query string
		count int
	}{
		{fmt.Sprintf("account=%s", checking.ID), 2},
		{fmt.Sprintf("budget=%s", groceries.ID), 1},
		{"fromDate=2024-04-01", 1},
		{"untilDate=2024-04-01", 2},
		{"fromDate=2024-03-01&untilDate=2024-04-01", 2},
		{"amount=250000", 1},
		{"note=Salary", 1},
		{"notePattern=REWE*", 1},
		{"notePattern=*ar*", 2},
		{"notePattern=*&limit=2", 2},
	}

	for _, tt := range tests {
		suite.Run(tt.query, func() {
			recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/transactions?%s", tt.query), "")
			test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

			var response v1.TransactionListResponse
			test.DecodeResponse(suite.T(), &recorder, &response)
			suite.Assert().Len(response.Data, tt.count)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsGetInvalidFilters() {
	for _, query := range []string{
		"account=not-a-uuid",
		"budget=not-a-uuid",
		"fromDate=yesterday",
		"untilDate=tomorrow",
	} {
		suite.Run(query, func() {
			recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/transactions?%s", query), "")
			test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionUpdate() {
	account := suite.createTestAccount(models.Account{Name: "Checking"})
	transaction := suite.createTestTransaction(models.Transaction{
		AccountID: account.ID,
		Amount:    -4000,
	})

	recorder := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("/v1/transactions/%s", transaction.ID), map[string]any{
		"note": "Corrected note",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var updated models.Transaction
	suite.Require().Nil(models.DB.First(&updated, transaction.ID).Error)
	suite.Assert().Equal("Corrected note", updated.Note)
	suite.Assert().Equal(int64(-4000), updated.Amount)
}

func (suite *TestSuiteStandard) TestTransactionDelete() {
	account := suite.createTestAccount(models.Account{Name: "Checking"})
	transaction := suite.createTestTransaction(models.Transaction{
		AccountID: account.ID,
		Amount:    -4000,
	})

	recorder := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("/v1/transactions/%s", transaction.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	err := models.DB.First(&models.Transaction{}, transaction.ID).Error
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}
