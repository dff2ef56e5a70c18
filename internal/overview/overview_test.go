package overview_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/wrenchline/tread/internal/agreements"
	"github.com/wrenchline/tread/internal/claims"
	"github.com/wrenchline/tread/internal/dealers"
	"github.com/wrenchline/tread/internal/overview"
	"github.com/wrenchline/tread/pkg/pagination"
)

type stubClaims struct {
	summaryFn func(ctx context.Context, filters claims.Filters) ([]claims.StatusCount, error)
}

func (s *stubClaims) Handler() *claims.Handler { return nil }
func (s *stubClaims) List(context.Context, pagination.PageRequest, claims.Filters) (*pagination.PageResult[claims.Claim], error) {
	return nil, nil
}
func (s *stubClaims) Find(context.Context, uuid.UUID) (*claims.Claim, error) { return nil, nil }
func (s *stubClaims) StatusSummary(ctx context.Context, filters claims.Filters) ([]claims.StatusCount, error) {
	return s.summaryFn(ctx, filters)
}
func (s *stubClaims) Create(context.Context, claims.CreateCommand) (*claims.Claim, error) {
	return nil, nil
}
func (s *stubClaims) CreateBatch(context.Context, []claims.ClaimRecord) ([]claims.BatchResult, error) {
	return nil, nil
}

type stubAgreements struct {
	summaryFn func(ctx context.Context, filters agreements.Filters) ([]agreements.StatusCount, error)
}

func (s *stubAgreements) Handler() *agreements.Handler { return nil }
func (s *stubAgreements) List(context.Context, pagination.PageRequest, agreements.Filters) (*pagination.PageResult[agreements.Agreement], error) {
	return nil, nil
}
func (s *stubAgreements) Find(context.Context, uuid.UUID) (*agreements.Agreement, error) {
	return nil, nil
}
func (s *stubAgreements) StatusSummary(ctx context.Context, filters agreements.Filters) ([]agreements.StatusCount, error) {
	return s.summaryFn(ctx, filters)
}

type stubDealers struct {
	leaderboardFn func(ctx context.Context, limit int) (*dealers.Leaderboard, error)
}

func (s *stubDealers) Handler() *dealers.Handler { return nil }
func (s *stubDealers) List(context.Context, pagination.PageRequest, dealers.Filters) (*pagination.PageResult[dealers.Dealer], error) {
	return nil, nil
}
func (s *stubDealers) Find(context.Context, uuid.UUID) (*dealers.Dealer, error) { return nil, nil }
func (s *stubDealers) Leaderboard(ctx context.Context, limit int) (*dealers.Leaderboard, error) {
	return s.leaderboardFn(ctx, limit)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestBuildAssemblesSections(t *testing.T) {
	claimSys := &stubClaims{
		summaryFn: func(_ context.Context, _ claims.Filters) ([]claims.StatusCount, error) {
			return claims.AggregateStatus(nil), nil
		},
	}
	agreementSys := &stubAgreements{
		summaryFn: func(_ context.Context, _ agreements.Filters) ([]agreements.StatusCount, error) {
			return agreements.AggregateStatus(nil), nil
		},
	}
	dealerSys := &stubDealers{
		leaderboardFn: func(_ context.Context, _ int) (*dealers.Leaderboard, error) {
			board := dealers.BuildLeaderboard(nil, 10)
			return &board, nil
		},
	}

	sys := overview.New(claimSys, agreementSys, dealerSys, overview.Config{}, testLogger())

	result, err := sys.Build(context.Background())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if len(result.ClaimStatus) != 3 {
		t.Errorf("claim status length = %d, want 3", len(result.ClaimStatus))
	}
	if len(result.AgreementStatus) != 3 {
		t.Errorf("agreement status length = %d, want 3", len(result.AgreementStatus))
	}
	if result.Leaderboard == nil {
		t.Error("leaderboard is nil")
	}
	if result.RangeFrom != nil {
		t.Errorf("range from = %v, want nil without a window", result.RangeFrom)
	}
	if result.GeneratedAt.IsZero() {
		t.Error("generated at is zero")
	}
}

func TestBuildAppliesClaimWindow(t *testing.T) {
	var captured claims.Filters
	claimSys := &stubClaims{
		summaryFn: func(_ context.Context, f claims.Filters) ([]claims.StatusCount, error) {
			captured = f
			return claims.AggregateStatus(nil), nil
		},
	}
	agreementSys := &stubAgreements{
		summaryFn: func(_ context.Context, _ agreements.Filters) ([]agreements.StatusCount, error) {
			return agreements.AggregateStatus(nil), nil
		},
	}
	dealerSys := &stubDealers{
		leaderboardFn: func(_ context.Context, _ int) (*dealers.Leaderboard, error) {
			board := dealers.BuildLeaderboard(nil, 10)
			return &board, nil
		},
	}

	sys := overview.New(claimSys, agreementSys, dealerSys, overview.Config{DefaultRangeDays: 30}, testLogger())

	result, err := sys.Build(context.Background())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if captured.ReportedFrom == nil {
		t.Fatal("reported from filter not applied")
	}
	if result.RangeFrom == nil || !result.RangeFrom.Equal(*captured.ReportedFrom) {
		t.Errorf("range from = %v, filter = %v; want equal", result.RangeFrom, captured.ReportedFrom)
	}

	elapsed := time.Since(captured.ReportedFrom.AddDate(0, 0, 30))
	if elapsed < 0 || elapsed > time.Minute {
		t.Errorf("window start %v not ~30 days ago", captured.ReportedFrom)
	}
}

func TestBuildFailsWhenSectionFails(t *testing.T) {
	wantErr := errors.New("leaderboard query failed")

	claimSys := &stubClaims{
		summaryFn: func(_ context.Context, _ claims.Filters) ([]claims.StatusCount, error) {
			return claims.AggregateStatus(nil), nil
		},
	}
	agreementSys := &stubAgreements{
		summaryFn: func(_ context.Context, _ agreements.Filters) ([]agreements.StatusCount, error) {
			return agreements.AggregateStatus(nil), nil
		},
	}
	dealerSys := &stubDealers{
		leaderboardFn: func(_ context.Context, _ int) (*dealers.Leaderboard, error) {
			return nil, wantErr
		},
	}

	sys := overview.New(claimSys, agreementSys, dealerSys, overview.Config{}, testLogger())

	if _, err := sys.Build(context.Background()); !errors.Is(err, wantErr) {
		t.Errorf("Build() error = %v, want %v", err, wantErr)
	}
}
