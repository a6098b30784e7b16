package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stashfold/backend/internal/models"
)

type TransactionEditable struct {
	AccountID uuid.UUID  `json:"accountId" example:"af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`           // ID of the account the transaction was booked on
	BudgetID  *uuid.UUID `json:"budgetId" example:"10b9705d-3356-459e-9d5a-28d42a6c4547"`            // ID of the budget the transaction is assigned to. Income has none.
	Date      time.Time  `json:"date" example:"2024-03-12T00:00:00Z"`                                // Date of the transaction. Defaults to the creation time.
	Amount    int64      `json:"amount" example:"-1732" default:"0"`                                 // Amount in minor units of the currency. Outflows are negative.
	Note      string     `json:"note" example:"Weekly groceries at the market" default:""`           // A longer description for the transaction
}

// model returns the database resource for the editable fields
func (editable TransactionEditable) model() models.Transaction {
	return models.Transaction{
		AccountID: editable.AccountID,
		BudgetID:  editable.BudgetID,
		Date:      editable.Date,
		Amount:    editable.Amount,
		Note:      editable.Note,
	}
}

type TransactionLinks struct {
	Self    string `json:"self" example:"https://example.com/api/v1/transactions/d430d7c3-d14c-4712-9336-ee56965a3673"` // The transaction itself
	Account string `json:"account" example:"https://example.com/api/v1/accounts/af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"` // The account the transaction was booked on
}

// Transaction is the API v1 representation of a Transaction.
type Transaction struct {
	models.DefaultModel
	TransactionEditable
	Links TransactionLinks `json:"links"`
}

func newTransaction(c *gin.Context, model models.Transaction) Transaction {
	url := c.GetString(string(models.DBContextURL))

	return Transaction{
		DefaultModel: model.DefaultModel,
		TransactionEditable: TransactionEditable{
			AccountID: model.AccountID,
			BudgetID:  model.BudgetID,
			Date:      model.Date,
			Amount:    model.Amount,
			Note:      model.Note,
		},
		Links: TransactionLinks{
			Self:    fmt.Sprintf("%s/v1/transactions/%s", url, model.ID),
			Account: fmt.Sprintf("%s/v1/accounts/%s", url, model.AccountID),
		},
	}
}

type TransactionListResponse struct {
	Data       []Transaction `json:"data"`                                                    // List of transactions
	Error      *string       `json:"error" example:"there is no account matching your query"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                              // Pagination information
}

type TransactionCreateResponse struct {
	Error *string               `json:"error" example:"there is no account matching your query"` // The error, if any occurred
	Data  []TransactionResponse `json:"data"`                                                    // List of created transactions
}

func (t *TransactionCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, TransactionResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type TransactionResponse struct {
	Data  *Transaction `json:"data"`                                                    // Data for the transaction
	Error *string      `json:"error" example:"there is no account matching your query"` // The error, if any occurred for this transaction
}

type TransactionQueryFilter struct {
	Account     string `form:"account" filterField:"false"`     // By the ID of the account
	Budget      string `form:"budget" filterField:"false"`      // By the ID of the budget
	FromDate    string `form:"fromDate" filterField:"false"`    // Transactions at or after this date, RFC3339 or YYYY-MM-DD
	UntilDate   string `form:"untilDate" filterField:"false"`   // Transactions before this date, RFC3339 or YYYY-MM-DD
	Amount      int64  `form:"amount"`                          // By exact amount
	Note        string `form:"note" filterField:"false"`        // Fuzzy filter for the note
	NotePattern string `form:"notePattern" filterField:"false"` // Glob pattern matched against the note, e.g. "REWE*"
	Offset      uint   `form:"offset" filterField:"false"`      // The offset of the first Transaction returned. Defaults to 0.
	Limit       int    `form:"limit" filterField:"false"`       // Maximum number of Transactions to return. Defaults to 50.
}

func (f TransactionQueryFilter) model() models.Transaction {
	return models.Transaction{
		Amount: f.Amount,
	}
}
