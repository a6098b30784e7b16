package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/stashfold/backend/internal/controllers/v1"
	"github.com/stashfold/backend/internal/models"
	"github.com/stashfold/backend/internal/test"
	"github.com/stashfold/backend/internal/types"
)

func (suite *TestSuiteStandard) TestAllocationsCreate() {
	budget := suite.createTestBudget(models.Budget{Name: "Groceries"})

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/allocations", []v1.AllocationEditable{
		{BudgetID: budget.ID, Month: types.NewMonth(2024, 3), Amount: 25000},
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.AllocationCreateResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().Len(response.Data, 1)
	suite.Require().NotNil(response.Data[0].Data)
	suite.Assert().Equal("2024-03", response.Data[0].Data.Month.String())
	suite.Assert().Contains(response.Data[0].Data.Links.Budget, budget.ID.String())
}

func (suite *TestSuiteStandard) TestAllocationsCreateWithoutMonth() {
	budget := suite.createTestBudget(models.Budget{Name: "Groceries"})

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/allocations", []v1.AllocationEditable{
		{BudgetID: budget.ID, Amount: 25000},
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var response v1.AllocationCreateResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().Len(response.Data, 1)
	suite.Require().NotNil(response.Data[0].Error)
	suite.Assert().Equal(models.ErrAllocationNoMonth.Error(), *response.Data[0].Error)
}

func (suite *TestSuiteStandard) TestAllocationsCreateNonExistingBudget() {
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/allocations", []v1.AllocationEditable{
		{Month: types.NewMonth(2024, 3), Amount: 25000},
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestAllocationsGetFiltered() {
	groceries := suite.createTestBudget(models.Budget{Name: "Groceries"})
	rent := suite.createTestBudget(models.Budget{Name: "Rent"})

	_ = suite.createTestAllocation(models.Allocation{BudgetID: groceries.ID, Month: types.NewMonth(2024, 2), Amount: 10000})
	_ = suite.createTestAllocation(models.Allocation{BudgetID: groceries.ID, Month: types.NewMonth(2024, 3), Amount: 20000})
	_ = suite.createTestAllocation(models.Allocation{BudgetID: rent.ID, Month: types.NewMonth(2024, 3), Amount: 80000})

	tests := []struct {
		query string
		count int
	}{
		{fmt.Sprintf("budget=%s", groceries.ID), 2},
		{"month=2024-03", 2},
		{fmt.Sprintf("budget=%s&month=2024-03", groceries.ID), 1},
		{"amount=80000", 1},
	}

	for _, tt := range tests {
		suite.Run(tt.query, func() {
			recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/allocations?%s", tt.query), "")
			test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

			var response v1.AllocationListResponse
			test.DecodeResponse(suite.T(), &recorder, &response)
			suite.Assert().Len(response.Data, tt.count)
		})
	}
}

func (suite *TestSuiteStandard) TestAllocationsGetInvalidMonth() {
	recorder := test.Request(suite.T(), http.MethodGet, "/v1/allocations?month=yesterday", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestAllocationUpdate() {
	budget := suite.createTestBudget(models.Budget{Name: "Groceries"})
	allocation := suite.createTestAllocation(models.Allocation{
		BudgetID: budget.ID,
		Month:    types.NewMonth(2024, 3),
		Amount:   25000,
	})

	recorder := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("/v1/allocations/%s", allocation.ID), map[string]any{
		"amount": 30000,
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var updated models.Allocation
	suite.Require().Nil(models.DB.First(&updated, allocation.ID).Error)
	suite.Assert().Equal(int64(30000), updated.Amount)
}

func (suite *TestSuiteStandard) TestAllocationDelete() {
	budget := suite.createTestBudget(models.Budget{Name: "Groceries"})
	allocation := suite.createTestAllocation(models.Allocation{
		BudgetID: budget.ID,
		Month:    types.NewMonth(2024, 3),
		Amount:   25000,
	})

	recorder := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("/v1/allocations/%s", allocation.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
}
