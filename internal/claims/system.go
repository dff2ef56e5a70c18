package claims

import (
	"context"

	"github.com/google/uuid"

	"github.com/wrenchline/tread/pkg/pagination"
)

// System defines the public contract for claim domain operations.
type System interface {
	Handler() *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Claim], error)

	Find(ctx context.Context, id uuid.UUID) (*Claim, error)

	// StatusSummary aggregates all claims matching the filters into
	// per-status counts, recomputed from raw rows on every call.
	StatusSummary(ctx context.Context, filters Filters) ([]StatusCount, error)

	Create(ctx context.Context, cmd CreateCommand) (*Claim, error)
	CreateBatch(ctx context.Context, records []ClaimRecord) ([]BatchResult, error)
}
