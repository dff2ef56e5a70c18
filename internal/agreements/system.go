package agreements

import (
	"context"

	"github.com/google/uuid"

	"github.com/wrenchline/tread/pkg/pagination"
)

// System defines the public contract for agreement domain operations.
type System interface {
	Handler() *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Agreement], error)

	Find(ctx context.Context, id uuid.UUID) (*Agreement, error)

	// StatusSummary aggregates all agreements matching the filters into
	// per-status counts in priority order.
	StatusSummary(ctx context.Context, filters Filters) ([]StatusCount, error)
}
