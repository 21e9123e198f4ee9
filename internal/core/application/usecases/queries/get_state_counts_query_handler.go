package queries

import (
	"context"

	"pedidos/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetStateCountsQueryHandler counts orders per lifecycle state.
type GetStateCountsQueryHandler struct {
	db *gorm.DB
}

// NewGetStateCountsQueryHandler creates a handler for state-count queries.
func NewGetStateCountsQueryHandler(db *gorm.DB) GetStateCountsQueryHandler {
	return GetStateCountsQueryHandler{db: db}
}

// Handle executes the query. Every state appears in the response in
// workflow order, with a zero count when no order is in it, so consumers
// can render the report deterministically.
func (h GetStateCountsQueryHandler) Handle(
	ctx context.Context,
	query GetStateCountsQuery,
) ([]StateCountResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			COUNT(*)
		FROM orders
		GROUP BY status
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[order.Status]int64)
	for rows.Next() {
		var status int
		var count int64

		if err = rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[order.Status(status)] = count
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	statuses := order.AllStatuses()
	report := make([]StateCountResponse, 0, len(statuses))
	for _, status := range statuses {
		report = append(report, StateCountResponse{
			Status:      status.String(),
			Description: status.Description(),
			Count:       counts[status],
		})
	}

	return report, nil
}
