package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stashfold/backend/internal/models"
	"github.com/stashfold/backend/internal/types"
)

type AllocationEditable struct {
	BudgetID uuid.UUID   `json:"budgetId" example:"10b9705d-3356-459e-9d5a-28d42a6c4547"` // ID of the budget the money is assigned to
	Month    types.Month `json:"month" example:"2024-03"`                                 // The month the money is assigned for
	Amount   int64       `json:"amount" example:"25000" default:"0"`                      // Assigned amount in minor units of the currency
	Note     string      `json:"note" example:"Rent increase starts this month" default:""` // A longer description for the allocation
}

// model returns the database resource for the editable fields
func (editable AllocationEditable) model() models.Allocation {
	return models.Allocation{
		BudgetID: editable.BudgetID,
		Month:    editable.Month,
		Amount:   editable.Amount,
		Note:     editable.Note,
	}
}

type AllocationLinks struct {
	Self   string `json:"self" example:"https://example.com/api/v1/allocations/902cd93c-3724-4e46-8540-d014131282fc"` // The allocation itself
	Budget string `json:"budget" example:"https://example.com/api/v1/budgets/10b9705d-3356-459e-9d5a-28d42a6c4547"`   // The budget the allocation belongs to
}

// Allocation is the API v1 representation of an Allocation.
type Allocation struct {
	models.DefaultModel
	AllocationEditable
	Links AllocationLinks `json:"links"`
}

func newAllocation(c *gin.Context, model models.Allocation) Allocation {
	url := c.GetString(string(models.DBContextURL))

	return Allocation{
		DefaultModel: model.DefaultModel,
		AllocationEditable: AllocationEditable{
			BudgetID: model.BudgetID,
			Month:    model.Month,
			Amount:   model.Amount,
			Note:     model.Note,
		},
		Links: AllocationLinks{
			Self:   fmt.Sprintf("%s/v1/allocations/%s", url, model.ID),
			Budget: fmt.Sprintf("%s/v1/budgets/%s", url, model.BudgetID),
		},
	}
}

type AllocationListResponse struct {
	Data       []Allocation `json:"data"`                                             // List of allocations
	Error      *string      `json:"error" example:"the month must be specified in YYYY-MM format"` // The error, if any occurred
	Pagination *Pagination  `json:"pagination"`                                       // Pagination information
}

type AllocationCreateResponse struct {
	Error *string              `json:"error" example:"the month must be specified in YYYY-MM format"` // The error, if any occurred
	Data  []AllocationResponse `json:"data"`                                             // List of created allocations
}

func (a *AllocationCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	a.Data = append(a.Data, AllocationResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type AllocationResponse struct {
	Data  *Allocation `json:"data"`                                             // Data for the allocation
	Error *string     `json:"error" example:"the month must be specified in YYYY-MM format"` // The error, if any occurred for this allocation
}

type AllocationQueryFilter struct {
	Budget string `form:"budget" filterField:"false"` // By the ID of the budget
	Month  string `form:"month" filterField:"false"`  // By month in YYYY-MM format
	Amount int64  `form:"amount"`                     // By exact amount
	Note   string `form:"note" filterField:"false"`   // Fuzzy filter for the note
	Offset uint   `form:"offset" filterField:"false"` // The offset of the first Allocation returned. Defaults to 0.
	Limit  int    `form:"limit" filterField:"false"`  // Maximum number of Allocations to return. Defaults to 50.
}

func (f AllocationQueryFilter) model() models.Allocation {
	return models.Allocation{
		Amount: f.Amount,
	}
}
