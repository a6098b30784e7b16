package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/stashfold/backend/internal/controllers/v1"
	"github.com/stashfold/backend/internal/models"
	"github.com/stashfold/backend/internal/test"
)

func (suite *TestSuiteStandard) TestAccountsEmptyList() {
	recorder := test.Request(suite.T(), http.MethodGet, "/v1/accounts", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.AccountListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Empty(response.Data)
	suite.Require().NotNil(response.Pagination)
	suite.Assert().Equal(int64(0), response.Pagination.Total)
}

func (suite *TestSuiteStandard) TestAccountsCreate() {
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/accounts", []v1.AccountEditable{
		{Name: "Checking", Balance: 174212},
		{Name: "Broker", Role: models.AccountRoleCapital},
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.AccountCreateResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().Len(response.Data, 2)

	suite.Require().NotNil(response.Data[0].Data)
	suite.Assert().Equal("Checking", response.Data[0].Data.Name)
	suite.Assert().Equal(models.AccountRoleOperational, response.Data[0].Data.Role, "role must default to operational")
	suite.Assert().Contains(response.Data[0].Data.Links.Self, "/v1/accounts/")
}

func (suite *TestSuiteStandard) TestAccountsCreateInvalidRole() {
	recorder := test.Request(suite.T(), http.MethodPost, "/v1/accounts", []v1.AccountEditable{
		{Name: "Broken", Role: "checking"},
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var response v1.AccountCreateResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().Len(response.Data, 1)
	suite.Require().NotNil(response.Data[0].Error)
	suite.Assert().Equal(models.ErrAccountInvalidRole.Error(), *response.Data[0].Error)
}

func (suite *TestSuiteStandard) TestAccountsCreateDuplicateName() {
	_ = suite.createTestAccount(models.Account{Name: "Checking"})

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/accounts", []v1.AccountEditable{
		{Name: "Checking"},
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var response v1.AccountCreateResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().Len(response.Data, 1)
	suite.Require().NotNil(response.Data[0].Error)
	suite.Assert().Equal(models.ErrAccountNameNotUnique.Error(), *response.Data[0].Error)
}

func (suite *TestSuiteStandard) TestAccountsGetFiltered() {
	_ = suite.createTestAccount(models.Account{Name: "Checking"})
	_ = suite.createTestAccount(models.Account{Name: "Broker", Role: models.AccountRoleCapital})
	_ = suite.createTestAccount(models.Account{Name: "Closed", Archived: true})

	tests := []struct {
		query string
		count int
	}{
		{"role=capital", 1},
		{"role=operational", 2},
		{"archived=true", 1},
		{"name=Check", 1},
		{"search=rok", 1},
		{"limit=1", 1},
	}

	for _, tt := range tests {
		suite.Run(tt.query, func() {
			recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/accounts?%s", tt.query), "")
			test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

			var response v1.AccountListResponse
			test.DecodeResponse(suite.T(), &recorder, &response)
			suite.Assert().Len(response.Data, tt.count)
		})
	}
}

func (suite *TestSuiteStandard) TestAccountGet() {
	account := suite.createTestAccount(models.Account{Name: "Checking"})

	recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/accounts/%s", account.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.AccountResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().Equal(account.ID, response.Data.ID)
}

func (suite *TestSuiteStandard) TestAccountGetNotFound() {
	recorder := test.Request(suite.T(), http.MethodGet, "/v1/accounts/d7fa5ac3-b9cf-4c5c-8d98-b7b0cd0dff74", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestAccountUpdate() {
	account := suite.createTestAccount(models.Account{Name: "Checking", Note: "Old note"})

	recorder := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("/v1/accounts/%s", account.ID), map[string]any{
		"note": "New note",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var updated models.Account
	suite.Require().Nil(models.DB.First(&updated, account.ID).Error)
	suite.Assert().Equal("New note", updated.Note)
	suite.Assert().Equal("Checking", updated.Name, "fields not in the request must not change")
}

func (suite *TestSuiteStandard) TestAccountUpdateEmptyBody() {
	account := suite.createTestAccount(models.Account{Name: "Checking"})

	recorder := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("/v1/accounts/%s", account.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestAccountDelete() {
	account := suite.createTestAccount(models.Account{Name: "Checking"})

	recorder := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("/v1/accounts/%s", account.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	err := models.DB.First(&models.Account{}, account.ID).Error
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestAccountOptions() {
	account := suite.createTestAccount(models.Account{Name: "Checking"})

	recorder := test.Request(suite.T(), http.MethodOptions, "/v1/accounts", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET, POST", recorder.Header().Get("allow"))

	recorder = test.Request(suite.T(), http.MethodOptions, fmt.Sprintf("/v1/accounts/%s", account.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET, PATCH, DELETE", recorder.Header().Get("allow"))
}
