package v1

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/stashfold/backend/internal/httputil"
	"github.com/stashfold/backend/internal/models"
	"github.com/stashfold/backend/internal/overview"
	"github.com/stashfold/backend/internal/types"
)

// RegisterMonthRoutes registers the routes for months with
// the RouterGroup that is passed.
func RegisterMonthRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/:month", OptionsMonthDetail)
	r.GET("/:month", GetMonth)
}

// newCalculator returns the overview calculator for the configured income
// scope.
//
// Whether income and spending count transactions of all accounts or only
// operational ones is a policy decision, not a fixed rule, so it is
// configurable through INCOME_SCOPE.
func newCalculator() *overview.Calculator {
	calculator := overview.New(overview.NewDBSources(models.DB))

	if os.Getenv("INCOME_SCOPE") == string(overview.IncomeScopeOperational) {
		calculator.IncomeScope = overview.IncomeScopeOperational
	}

	return calculator
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Months
// @Success		204
// @Failure		400	{object}	httpError
// @Param			month	path	string	true	"The month in YYYY-MM format"
// @Router			/v1/months/{month} [options]
func OptionsMonthDetail(c *gin.Context) {
	var uri URIMonth
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpError{
			Error: httputil.ErrInvalidMonth.Error(),
		})
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		Monthly overview
// @Description	Returns the financial snapshot for a month: unassigned funds, budget balances, spending and savings rate
// @Tags			Months
// @Produce		json
// @Success		200	{object}	MonthResponse
// @Failure		400	{object}	MonthResponse
// @Failure		500	{object}	MonthResponse
// @Param			month	path	string	true	"The month in YYYY-MM format"
// @Router			/v1/months/{month} [get]
func GetMonth(c *gin.Context) {
	var uri URIMonth
	if err := c.ShouldBindUri(&uri); err != nil {
		s := httputil.ErrInvalidMonth.Error()
		c.JSON(http.StatusBadRequest, MonthResponse{
			Error: &s,
		})
		return
	}

	result, err := newCalculator().Compute(c.Request.Context(), types.MonthOf(uri.Month))
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthResponse{
			Error: &s,
		})
		return
	}

	data := newMonthlyOverview(result)
	c.JSON(http.StatusOK, MonthResponse{Data: &data})
}
