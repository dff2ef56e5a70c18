package claims

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

type repo struct {
	db         *sql.DB
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates a claim repository implementing the System interface.
func New(
	db *sql.DB,
	logger *slog.Logger,
	pagination pagination.Config,
) System {
	return &repo{
		db:         db,
		logger:     logger.With("system", "claims"),
		pagination: pagination,
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger, r.pagination)
}

func (r *repo) List(
	ctx context.Context,
	page pagination.PageRequest,
	filters Filters,
) (*pagination.PageResult[Claim], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "ClaimNumber", "VIN")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count claims: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	items, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanClaim)
	if err != nil {
		return nil, fmt.Errorf("query claims: %w", err)
	}

	result := pagination.NewPageResult(items, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Claim, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	c, err := repository.QueryOne(ctx, r.db, q, args, scanClaim)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &c, nil
}

func (r *repo) StatusSummary(ctx context.Context, filters Filters) ([]StatusCount, error) {
	qb := query.NewBuilder(projection)
	filters.Apply(qb)

	q, args := qb.Build()
	items, err := repository.QueryMany(ctx, r.db, q, args, scanClaim)
	if err != nil {
		return nil, fmt.Errorf("query claims for summary: %w", err)
	}

	return AggregateStatus(items), nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Claim, error) {
	q := `
		INSERT INTO claims(claim_number, agreement_id, dealer_id, vin, incurred_date,
			reported_date, closed_date, correction, paid_amount)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`

	insertArgs := []any{
		cmd.ClaimNumber,
		cmd.AgreementID,
		cmd.DealerID,
		cmd.VIN,
		cmd.IncurredDate,
		cmd.ReportedDate,
		cmd.ClosedDate,
		cmd.Correction,
		cmd.PaidAmount,
	}

	id, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (uuid.UUID, error) {
		var id uuid.UUID
		err := tx.QueryRowContext(ctx, q, insertArgs...).Scan(&id)
		return id, err
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	c, err := r.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	r.logger.Info("claim created",
		"id", c.ID,
		"claim_number", c.ClaimNumber,
		"status", c.Status,
	)
	return c, nil
}

func (r *repo) CreateBatch(ctx context.Context, records []ClaimRecord) ([]BatchResult, error) {
	results := make([]BatchResult, 0, len(records))

	for _, record := range records {
		result := BatchResult{ClaimNumber: record.ClaimNumber}

		cmd, err := record.Normalize()
		if err != nil {
			result.Error = err.Error()
			results = append(results, result)
			continue
		}

		c, err := r.Create(ctx, cmd)
		if err != nil {
			result.Error = err.Error()
			results = append(results, result)
			continue
		}

		result.Claim = c
		results = append(results, result)
	}

	r.logger.Info("claim batch ingested",
		"total", len(records),
		"failed", countFailed(results),
	)
	return results, nil
}

func countFailed(results []BatchResult) int {
	failed := 0
	for _, r := range results {
		if r.Error != "" {
			failed++
		}
	}
	return failed
}
