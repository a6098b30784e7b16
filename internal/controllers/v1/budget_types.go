package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/stashfold/backend/internal/models"
)

type BudgetEditable struct {
	Name         string            `json:"name" example:"Groceries" default:""`                  // Name of the budget
	Note         string            `json:"note" example:"Everything for the kitchen" default:""` // A longer description for the budget
	Type         models.BudgetType `json:"type" example:"spending" default:"spending"`           // Rollover policy of the budget
	TargetAmount int64             `json:"targetAmount" example:"50000" default:"0"`             // Target in minor units of the currency
	Cadence      string            `json:"cadence,omitempty" example:"monthly" default:""`       // Optional cadence for periodic budgets
	Archived     bool              `json:"archived" example:"true" default:"false"`              // Is the budget archived?
}

// model returns the database resource for the editable fields
func (editable BudgetEditable) model() models.Budget {
	return models.Budget{
		Name:         editable.Name,
		Note:         editable.Note,
		Type:         editable.Type,
		TargetAmount: editable.TargetAmount,
		Cadence:      editable.Cadence,
		Archived:     editable.Archived,
	}
}

type BudgetLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/budgets/10b9705d-3356-459e-9d5a-28d42a6c4547"`                     // The budget itself
	Allocations  string `json:"allocations" example:"https://example.com/api/v1/allocations?budget=10b9705d-3356-459e-9d5a-28d42a6c4547"`   // Allocations for the budget
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?budget=10b9705d-3356-459e-9d5a-28d42a6c4547"` // Transactions assigned to the budget
}

// Budget is the API v1 representation of a Budget.
type Budget struct {
	models.DefaultModel
	BudgetEditable
	Links BudgetLinks `json:"links"`
}

func newBudget(c *gin.Context, model models.Budget) Budget {
	url := c.GetString(string(models.DBContextURL))

	return Budget{
		DefaultModel: model.DefaultModel,
		BudgetEditable: BudgetEditable{
			Name:         model.Name,
			Note:         model.Note,
			Type:         model.Type,
			TargetAmount: model.TargetAmount,
			Cadence:      model.Cadence,
			Archived:     model.Archived,
		},
		Links: BudgetLinks{
			Self:         fmt.Sprintf("%s/v1/budgets/%s", url, model.ID),
			Allocations:  fmt.Sprintf("%s/v1/allocations?budget=%s", url, model.ID),
			Transactions: fmt.Sprintf("%s/v1/transactions?budget=%s", url, model.ID),
		},
	}
}

type BudgetListResponse struct {
	Data       []Budget    `json:"data"`                                                                    // List of budgets
	Error      *string     `json:"error" example:"the budget type must be one of spending, savings, goal, periodic"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                              // Pagination information
}

type BudgetCreateResponse struct {
	Error *string          `json:"error" example:"the budget type must be one of spending, savings, goal, periodic"` // The error, if any occurred
	Data  []BudgetResponse `json:"data"`                                                                    // List of created budgets
}

func (b *BudgetCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	b.Data = append(b.Data, BudgetResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type BudgetResponse struct {
	Data  *Budget `json:"data"`                                                                    // Data for the budget
	Error *string `json:"error" example:"the budget type must be one of spending, savings, goal, periodic"` // The error, if any occurred for this budget
}

type BudgetQueryFilter struct {
	Name     string `form:"name" filterField:"false"`   // Fuzzy filter for the budget name
	Note     string `form:"note" filterField:"false"`   // Fuzzy filter for the note
	Type     string `form:"type"`                       // By rollover policy
	Cadence  string `form:"cadence"`                    // By cadence
	Archived bool   `form:"archived"`                   // Is the budget archived?
	Search   string `form:"search" filterField:"false"` // By string in name or note
	Offset   uint   `form:"offset" filterField:"false"` // The offset of the first Budget returned. Defaults to 0.
	Limit    int    `form:"limit" filterField:"false"`  // Maximum number of Budgets to return. Defaults to 50.
}

func (f BudgetQueryFilter) model() models.Budget {
	return models.Budget{
		Type:     models.BudgetType(f.Type),
		Cadence:  f.Cadence,
		Archived: f.Archived,
	}
}
