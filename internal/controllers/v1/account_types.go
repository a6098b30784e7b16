package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/stashfold/backend/internal/models"
)

type AccountEditable struct {
	Name     string             `json:"name" example:"Main checking" default:""`              // Name of the account
	Note     string             `json:"note" example:"The account at my house bank" default:""` // A longer description for the account
	Role     models.AccountRole `json:"role" example:"operational" default:"operational"`     // operational accounts are spendable cash, capital accounts are savings and investments
	Balance  int64              `json:"balance" example:"174212" default:"0"`                 // Balance in minor units of the currency
	Archived bool               `json:"archived" example:"true" default:"false"`              // Is the account archived?
}

// model returns the database resource for the editable fields
func (editable AccountEditable) model() models.Account {
	return models.Account{
		Name:     editable.Name,
		Note:     editable.Note,
		Role:     editable.Role,
		Balance:  editable.Balance,
		Archived: editable.Archived,
	}
}

type AccountLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/accounts/af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`                     // The account itself
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?account=af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"` // Transactions referencing the account
}

// Account is the API v1 representation of an Account.
type Account struct {
	models.DefaultModel
	AccountEditable
	Links AccountLinks `json:"links"`
}

func newAccount(c *gin.Context, model models.Account) Account {
	url := c.GetString(string(models.DBContextURL))

	return Account{
		DefaultModel: model.DefaultModel,
		AccountEditable: AccountEditable{
			Name:     model.Name,
			Note:     model.Note,
			Role:     model.Role,
			Balance:  model.Balance,
			Archived: model.Archived,
		},
		Links: AccountLinks{
			Self:         fmt.Sprintf("%s/v1/accounts/%s", url, model.ID),
			Transactions: fmt.Sprintf("%s/v1/transactions?account=%s", url, model.ID),
		},
	}
}

type AccountListResponse struct {
	Data       []Account   `json:"data"`                                                     // List of accounts
	Error      *string     `json:"error" example:"the account role must be operational or capital"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                               // Pagination information
}

type AccountCreateResponse struct {
	Error *string           `json:"error" example:"the account role must be operational or capital"` // The error, if any occurred
	Data  []AccountResponse `json:"data"`                                                     // List of created accounts
}

func (a *AccountCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	a.Data = append(a.Data, AccountResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type AccountResponse struct {
	Data  *Account `json:"data"`                                                     // Data for the account
	Error *string  `json:"error" example:"the account role must be operational or capital"` // The error, if any occurred for this account
}

type AccountQueryFilter struct {
	Name     string `form:"name" filterField:"false"`   // Fuzzy filter for the account name
	Note     string `form:"note" filterField:"false"`   // Fuzzy filter for the note
	Role     string `form:"role"`                       // By role
	Archived bool   `form:"archived"`                   // Is the account archived?
	Search   string `form:"search" filterField:"false"` // By string in name or note
	Offset   uint   `form:"offset" filterField:"false"` // The offset of the first Account returned. Defaults to 0.
	Limit    int    `form:"limit" filterField:"false"`  // Maximum number of Accounts to return. Defaults to 50.
}

func (f AccountQueryFilter) model() models.Account {
	return models.Account{
		Role:     models.AccountRole(f.Role),
		Archived: f.Archived,
	}
}
