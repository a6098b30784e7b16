package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	ErrAccountNameNotUnique = errors.New("the account name must be unique")
	ErrAccountInvalidRole   = errors.New("the account role must be operational or capital")

	ErrBudgetNameNotUnique = errors.New("the budget name must be unique")
	ErrBudgetInvalidType   = errors.New("the budget type must be one of spending, savings, goal, periodic")

	ErrAllocationNoMonth = errors.New("allocations must be set for a specific month")
)
