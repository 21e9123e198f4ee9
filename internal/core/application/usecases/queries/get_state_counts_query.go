package queries

import (
	"errors"

	"pedidos/internal/pkg/guard"
)

var (
	ErrGetStateCountsQueryIsNotConstructed = errors.New(
		"GetStateCountsQuery must be created via NewGetStateCountsQuery constructor",
	)
)

// GetStateCountsQuery retrieves the number of orders in every lifecycle
// state. Backs the daily report and the report endpoint.
type GetStateCountsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetStateCountsQuery creates a state-counts query.
func NewGetStateCountsQuery() GetStateCountsQuery {
	return GetStateCountsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetStateCountsQueryIsNotConstructed if validation fails.
func (q GetStateCountsQuery) Validate() error {
	return q.guard.Validate(ErrGetStateCountsQueryIsNotConstructed)
}

// StateCountResponse is the order count of one lifecycle state.
type StateCountResponse struct {
	Status      string
	Description string
	Count       int64
}
