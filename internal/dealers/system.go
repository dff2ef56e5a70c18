package dealers

import (
	"context"

	"github.com/google/uuid"

	"github.com/wrenchline/tread/pkg/pagination"
)

// System defines the public contract for dealer domain operations.
type System interface {
	Handler() *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Dealer], error)

	Find(ctx context.Context, id uuid.UUID) (*Dealer, error)

	// Leaderboard ranks dealers by total claim count. A limit below 1
	// falls back to the configured default.
	Leaderboard(ctx context.Context, limit int) (*Leaderboard, error)
}
