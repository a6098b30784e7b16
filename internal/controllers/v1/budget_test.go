package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/stashfold/backend/internal/controllers/v1"
	"github.com/stashfold/backend/internal/models"
	"github.com/stashfold/backend/internal/test"
)

func (suite *TestSuiteStandard) TestBudgetsCreate() {
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/budgets", []v1.BudgetEditable{
		{Name: "Groceries", TargetAmount: 50000},
		{Name: "Vacation", Type: models.BudgetTypeSavings},
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.BudgetCreateResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().Len(response.Data, 2)

	suite.Require().NotNil(response.Data[0].Data)
	suite.Assert().Equal(models.BudgetTypeSpending, response.Data[0].Data.Type, "type must default to spending")
	suite.Require().NotNil(response.Data[1].Data)
	suite.Assert().Equal(models.BudgetTypeSavings, response.Data[1].Data.Type)
}

func (suite *TestSuiteStandard) TestBudgetsCreateInvalidType() {
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/budgets", []v1.BudgetEditable{
		{Name: "Broken", Type: "envelope"},
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var response v1.BudgetCreateResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().Len(response.Data, 1)
	suite.Require().NotNil(response.Data[0].Error)
	suite.Assert().Equal(models.ErrBudgetInvalidType.Error(), *response.Data[0].Error)
}

func (suite *TestSuiteStandard) TestBudgetsGetFiltered() {
	_ = suite.createTestBudget(models.Budget{Name: "Groceries"})
	_ = suite.createTestBudget(models.Budget{Name: "Vacation", Type: models.BudgetTypeSavings})
	_ = suite.createTestBudget(models.Budget{Name: "Insurance", Type: models.BudgetTypePeriodic, Cadence: "yearly"})

	tests := []struct {
		query string
		count int
	}{
		{"type=spending", 1},
		{"type=savings", 1},
		{"cadence=yearly", 1},
		{"search=tion", 1},
		{"archived=false", 3},
	}

	for _, tt := range tests {
		suite.Run(tt.query, func() {
			recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/budgets?%s", tt.query), "")
			test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

			var response v1.BudgetListResponse
			test.DecodeResponse(suite.T(), &recorder, &response)
			suite.Assert().Len(response.Data, tt.count)
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetUpdate() {
	budget := suite.createTestBudget(models.Budget{Name: "Groceries"})

	recorder := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("/v1/budgets/%s", budget.ID), map[string]any{
		"targetAmount": 60000,
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var updated models.Budget
	suite.Require().Nil(models.DB.First(&updated, budget.ID).Error)
	suite.Assert().Equal(int64(60000), updated.TargetAmount)
}

func (suite *TestSuiteStandard) TestBudgetDelete() {
	budget := suite.createTestBudget(models.Budget{Name: "Groceries"})

	recorder := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("/v1/budgets/%s", budget.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	err := models.DB.First(&models.Budget{}, budget.ID).Error
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}
