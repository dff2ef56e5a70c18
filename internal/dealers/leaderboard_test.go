package dealers_test

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/wrenchline/tread/internal/claims"
	"github.com/wrenchline/tread/internal/dealers"
)

var (
	dealerA = uuid.MustParse("550e8400-e29b-41d4-a716-446655440001")
	dealerB = uuid.MustParse("550e8400-e29b-41d4-a716-446655440002")
	dealerC = uuid.MustParse("550e8400-e29b-41d4-a716-446655440003")
)

func ts(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &t
}

func dealerClaims(id uuid.UUID, name string, n int, paid int64) []claims.Claim {
	items := make([]claims.Claim, n)
	for i := range items {
		items[i] = claims.Claim{
			DealerID:     id,
			DealerName:   name,
			ReportedDate: ts("2024-01-01"),
			PaidAmount:   paid,
		}
	}
	return items
}

func TestBuildLeaderboardRanking(t *testing.T) {
	var items []claims.Claim
	items = append(items, dealerClaims(dealerA, "Summit Auto", 2, 10000)...)
	items = append(items, dealerClaims(dealerB, "Valley Motors", 5, 20000)...)
	items = append(items, dealerClaims(dealerC, "Coastal Cars", 3, 30000)...)

	board := dealers.BuildLeaderboard(items, 0)

	if len(board.Entries) != 3 {
		t.Fatalf("entries = %d, want 3", len(board.Entries))
	}

	want := []string{"Valley Motors", "Coastal Cars", "Summit Auto"}
	for i, e := range board.Entries {
		if e.DealerName != want[i] {
			t.Errorf("entries[%d] = %q, want %q", i, e.DealerName, want[i])
		}
	}

	top := board.Entries[0]
	if top.TotalClaims != 5 {
		t.Errorf("top total = %d, want 5", top.TotalClaims)
	}
	if top.PaidTotal != 100000 {
		t.Errorf("top paid total = %d, want 100000", top.PaidTotal)
	}
	if top.AveragePaid != 20000 {
		t.Errorf("top average = %v, want 20000", top.AveragePaid)
	}
}

func TestBuildLeaderboardTruncatesAfterSort(t *testing.T) {
	var items []claims.Claim
	items = append(items, dealerClaims(dealerA, "Summit Auto", 1, 10000)...)
	items = append(items, dealerClaims(dealerB, "Valley Motors", 9, 20000)...)
	items = append(items, dealerClaims(dealerC, "Coastal Cars", 4, 30000)...)

	board := dealers.BuildLeaderboard(items, 2)

	if len(board.Entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(board.Entries))
	}
	if board.Entries[0].DealerName != "Valley Motors" || board.Entries[1].DealerName != "Coastal Cars" {
		t.Errorf("kept %q, %q; want the two busiest dealers",
			board.Entries[0].DealerName, board.Entries[1].DealerName)
	}
}

func TestBuildLeaderboardStatusCounts(t *testing.T) {
	items := []claims.Claim{
		{DealerID: dealerA, DealerName: "Summit Auto", ReportedDate: ts("2024-01-01")},
		{DealerID: dealerA, DealerName: "Summit Auto", ClosedDate: ts("2024-01-05")},
		{DealerID: dealerA, DealerName: "Summit Auto"},
	}

	board := dealers.BuildLeaderboard(items, 0)

	if len(board.Entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(board.Entries))
	}

	e := board.Entries[0]
	if e.OpenClaims != 1 {
		t.Errorf("open = %d, want 1", e.OpenClaims)
	}
	if e.ClosedClaims != 1 {
		t.Errorf("closed = %d, want 1", e.ClosedClaims)
	}
	if len(e.StatusCounts) != 3 {
		t.Errorf("status counts length = %d, want 3", len(e.StatusCounts))
	}
}

func TestBuildLeaderboardWeightedSummary(t *testing.T) {
	var items []claims.Claim
	items = append(items, dealerClaims(dealerA, "Summit Auto", 4, 10000)...)
	items = append(items, dealerClaims(dealerB, "Valley Motors", 1, 60000)...)

	board := dealers.BuildLeaderboard(items, 0)

	s := board.Summary
	if s.Dealers != 2 {
		t.Errorf("dealers = %d, want 2", s.Dealers)
	}
	if s.TotalClaims != 5 {
		t.Errorf("total claims = %d, want 5", s.TotalClaims)
	}
	if s.PaidTotal != 100000 {
		t.Errorf("paid total = %d, want 100000", s.PaidTotal)
	}

	// (4*10000 + 1*60000) / 5, not the mean of 10000 and 60000.
	if s.AveragePaid != 20000 {
		t.Errorf("average paid = %v, want 20000", s.AveragePaid)
	}
}

func TestBuildLeaderboardSummaryCoversOnlyKeptDealers(t *testing.T) {
	var items []claims.Claim
	items = append(items, dealerClaims(dealerA, "Summit Auto", 3, 10000)...)
	items = append(items, dealerClaims(dealerB, "Valley Motors", 1, 99000)...)

	board := dealers.BuildLeaderboard(items, 1)

	if board.Summary.Dealers != 1 {
		t.Errorf("dealers = %d, want 1", board.Summary.Dealers)
	}
	if board.Summary.TotalClaims != 3 {
		t.Errorf("total claims = %d, want 3", board.Summary.TotalClaims)
	}
}

func TestBuildLeaderboardEmpty(t *testing.T) {
	board := dealers.BuildLeaderboard(nil, 10)

	if len(board.Entries) != 0 {
		t.Errorf("entries = %d, want 0", len(board.Entries))
	}
	if board.Summary.AveragePaid != 0 {
		t.Errorf("average paid = %v, want 0", board.Summary.AveragePaid)
	}
}

func TestLeaderboardConfigClamp(t *testing.T) {
	cfg := dealers.LeaderboardConfig{DefaultLimit: 10, MaxLimit: 100}

	tests := []struct {
		in   int
		want int
	}{
		{0, 10},
		{-5, 10},
		{25, 25},
		{500, 100},
	}

	for _, tt := range tests {
		if got := cfg.Clamp(tt.in); got != tt.want {
			t.Errorf("Clamp(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
