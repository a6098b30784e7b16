// Package httperror defines the error body returned by all API endpoints.
package httperror

type Error struct {
	Message string `json:"error" example:"there is no budget matching your query"`
}

func New(e error) Error {
	return Error{
		Message: e.Error(),
	}
}

func NewFromString(s string) Error {
	return Error{
		Message: s,
	}
}
