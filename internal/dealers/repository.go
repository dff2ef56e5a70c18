package dealers

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/wrenchline/tread/pkg/pagination"
	"github.com/wrenchline/tread/pkg/query"
	"github.com/wrenchline/tread/pkg/repository"
)

// LeaderboardConfig bounds the leaderboard size.
type LeaderboardConfig struct {
	DefaultLimit int
	MaxLimit     int
}

// Clamp resolves a requested limit against the configured bounds.
func (c LeaderboardConfig) Clamp(limit int) int {
	if limit < 1 {
		limit = c.DefaultLimit
	}
	if c.MaxLimit > 0 && limit > c.MaxLimit {
		limit = c.MaxLimit
	}
	return limit
}

type repo struct {
	db          *sql.DB
	logger      *slog.Logger
	pagination  pagination.Config
	leaderboard LeaderboardConfig
}

// New creates a dealer repository implementing the System interface.
func New(
	db *sql.DB,
	logger *slog.Logger,
	pagination pagination.Config,
	leaderboard LeaderboardConfig,
) System {
	return &repo{
		db:          db,
		logger:      logger.With("system", "dealers"),
		pagination:  pagination,
		leaderboard: leaderboard,
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger, r.pagination)
}

func (r *repo) List(
	ctx context.Context,
	page pagination.PageRequest,
	filters Filters,
) (*pagination.PageResult[Dealer], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "Name", "City")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count dealers: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	items, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanDealer)
	if err != nil {
		return nil, fmt.Errorf("query dealers: %w", err)
	}

	result := pagination.NewPageResult(items, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Dealer, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	d, err := repository.QueryOne(ctx, r.db, q, args, scanDealer)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &d, nil
}

func (r *repo) Leaderboard(ctx context.Context, limit int) (*Leaderboard, error) {
	limit = r.leaderboard.Clamp(limit)

	q, args := query.NewBuilder(claimProjection).Build()
	items, err := repository.QueryMany(ctx, r.db, q, args, scanLeaderboardClaim)
	if err != nil {
		return nil, fmt.Errorf("query claims for leaderboard: %w", err)
	}

	board := BuildLeaderboard(items, limit)
	return &board, nil
}
