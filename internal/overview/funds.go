package overview

import (
	"github.com/stashfold/backend/internal/models"
)

// AggregateFunds sums the balances of all non-archived accounts with the
// given role, in minor units. An empty account set sums to zero.
func AggregateFunds(accounts []models.Account, role models.AccountRole) int64 {
	var sum int64

	for _, account := range accounts {
		if account.Archived || account.Role != role {
			continue
		}

		sum += account.Balance
	}

	return sum
}
