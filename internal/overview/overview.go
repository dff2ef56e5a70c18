// Package overview assembles the dashboard landing payload by fanning out
// to the claim, agreement, and dealer systems concurrently.
package overview

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/wrenchline/tread/internal/agreements"
	"github.com/wrenchline/tread/internal/claims"
	"github.com/wrenchline/tread/internal/dealers"
)

// Config bounds the overview's claim window.
type Config struct {
	// DefaultRangeDays limits the claim status summary to claims reported
	// within the trailing window. Zero disables the window.
	DefaultRangeDays int
}

// Overview is the combined dashboard payload.
type Overview struct {
	ClaimStatus     []claims.StatusCount     `json:"claim_status"`
	AgreementStatus []agreements.StatusCount `json:"agreement_status"`
	Leaderboard     *dealers.Leaderboard     `json:"leaderboard"`
	RangeFrom       *time.Time               `json:"range_from,omitempty"`
	GeneratedAt     time.Time                `json:"generated_at"`
}

// System defines the public contract for the dashboard overview.
type System interface {
	Handler() *Handler
	Build(ctx context.Context) (*Overview, error)
}

type service struct {
	claims     claims.System
	agreements agreements.System
	dealers    dealers.System
	cfg        Config
	logger     *slog.Logger
	now        func() time.Time
}

// New creates an overview service over the given domain systems.
func New(
	claimSys claims.System,
	agreementSys agreements.System,
	dealerSys dealers.System,
	cfg Config,
	logger *slog.Logger,
) System {
	return &service{
		claims:     claimSys,
		agreements: agreementSys,
		dealers:    dealerSys,
		cfg:        cfg,
		logger:     logger.With("system", "overview"),
		now:        time.Now,
	}
}

func (s *service) Handler() *Handler {
	return NewHandler(s, s.logger)
}

// Build gathers the three dashboard sections concurrently. A failure in any
// section fails the whole overview; partial dashboards are worse than a
// retryable error.
func (s *service) Build(ctx context.Context) (*Overview, error) {
	result := &Overview{GeneratedAt: s.now().UTC()}

	var claimFilters claims.Filters
	if s.cfg.DefaultRangeDays > 0 {
		from := result.GeneratedAt.AddDate(0, 0, -s.cfg.DefaultRangeDays)
		claimFilters.ReportedFrom = &from
		result.RangeFrom = &from
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		counts, err := s.claims.StatusSummary(gctx, claimFilters)
		if err != nil {
			return err
		}
		result.ClaimStatus = counts
		return nil
	})

	g.Go(func() error {
		counts, err := s.agreements.StatusSummary(gctx, agreements.Filters{})
		if err != nil {
			return err
		}
		result.AgreementStatus = counts
		return nil
	})

	g.Go(func() error {
		board, err := s.dealers.Leaderboard(gctx, 0)
		if err != nil {
			return err
		}
		result.Leaderboard = board
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return result, nil
}
