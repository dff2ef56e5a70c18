package dealers

import (
	"sort"

	"github.com/google/uuid"

	"github.com/wrenchline/tread/internal/claims"
)

// LeaderboardEntry holds one dealer's claim performance figures.
type LeaderboardEntry struct {
	DealerID     uuid.UUID            `json:"dealer_id"`
	DealerName   string               `json:"dealer_name"`
	TotalClaims  int                  `json:"total_claims"`
	StatusCounts []claims.StatusCount `json:"status_counts"`
	OpenClaims   int                  `json:"open_claims"`
	ClosedClaims int                  `json:"closed_claims"`
	PaidTotal    int64                `json:"paid_total"`
	AveragePaid  float64              `json:"average_paid"`
}

// LeaderboardSummary aggregates across the returned dealers. AveragePaid is
// weighted by claim count, not a mean of per-dealer averages.
type LeaderboardSummary struct {
	Dealers     int     `json:"dealers"`
	TotalClaims int     `json:"total_claims"`
	PaidTotal   int64   `json:"paid_total"`
	AveragePaid float64 `json:"average_paid"`
}

// Leaderboard ranks dealers by total claim volume.
type Leaderboard struct {
	Entries []LeaderboardEntry `json:"entries"`
	Summary LeaderboardSummary `json:"summary"`
}

// BuildLeaderboard groups claims by dealer, ranks dealers by total claim
// count descending, and truncates to limit after sorting so the cut always
// keeps the busiest dealers. The summary row covers only the dealers that
// survive truncation. A limit below 1 means no truncation.
func BuildLeaderboard(items []claims.Claim, limit int) Leaderboard {
	grouped := make(map[uuid.UUID][]claims.Claim)
	names := make(map[uuid.UUID]string)
	for _, c := range items {
		grouped[c.DealerID] = append(grouped[c.DealerID], c)
		if c.DealerName != "" {
			names[c.DealerID] = c.DealerName
		}
	}

	entries := make([]LeaderboardEntry, 0, len(grouped))
	for id, group := range grouped {
		counts := claims.AggregateStatus(group)

		entry := LeaderboardEntry{
			DealerID:     id,
			DealerName:   names[id],
			TotalClaims:  len(group),
			StatusCounts: counts,
		}

		for _, sc := range counts {
			switch sc.Status {
			case claims.StatusOpen:
				entry.OpenClaims = sc.Count
			case claims.StatusClosed:
				entry.ClosedClaims = sc.Count
			}
		}

		for _, c := range group {
			entry.PaidTotal += c.PaidAmount
		}
		entry.AveragePaid = float64(entry.PaidTotal) / float64(entry.TotalClaims)

		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].TotalClaims != entries[j].TotalClaims {
			return entries[i].TotalClaims > entries[j].TotalClaims
		}
		return entries[i].DealerName < entries[j].DealerName
	})

	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}

	summary := LeaderboardSummary{Dealers: len(entries)}
	for _, e := range entries {
		summary.TotalClaims += e.TotalClaims
		summary.PaidTotal += e.PaidTotal
	}
	if summary.TotalClaims > 0 {
		summary.AveragePaid = float64(summary.PaidTotal) / float64(summary.TotalClaims)
	}

	return Leaderboard{Entries: entries, Summary: summary}
}
