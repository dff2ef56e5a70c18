package agreements

import (
	"sort"
	"strings"
)

// Agreement lifecycle statuses owned by the backend store.
const (
	StatusActive    = "ACTIVE"
	StatusPending   = "PENDING"
	StatusCancelled = "CANCELLED"
	StatusExpired   = "EXPIRED"
)

// priorityStatuses are always present in a summary, zero-filled, in this
// order. Statuses observed outside this set follow, sorted by descending
// count.
var priorityStatuses = []string{StatusActive, StatusPending, StatusCancelled}

// StatusCount holds the count and share of agreements for a single status.
type StatusCount struct {
	Status     string  `json:"status"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// NormalizeStatus canonicalizes a stored status value for aggregation.
func NormalizeStatus(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// AggregateStatus folds agreements into per-status counts and percentages.
// ACTIVE, PENDING, and CANCELLED lead the result in that order even when
// empty; any other observed status follows by descending count, ties broken
// by name. Percentages are computed against the total input size and are 0
// for empty input.
func AggregateStatus(items []Agreement) []StatusCount {
	counts := make(map[string]int)
	for _, a := range items {
		counts[NormalizeStatus(a.Status)]++
	}

	total := len(items)
	pct := func(count int) float64 {
		if total == 0 {
			return 0
		}
		return float64(count) / float64(total) * 100
	}

	result := make([]StatusCount, 0, len(counts)+len(priorityStatuses))
	seen := make(map[string]bool, len(priorityStatuses))
	for _, s := range priorityStatuses {
		result = append(result, StatusCount{
			Status:     s,
			Count:      counts[s],
			Percentage: pct(counts[s]),
		})
		seen[s] = true
	}

	others := make([]StatusCount, 0, len(counts))
	for s, count := range counts {
		if seen[s] {
			continue
		}
		others = append(others, StatusCount{
			Status:     s,
			Count:      count,
			Percentage: pct(count),
		})
	}

	sort.Slice(others, func(i, j int) bool {
		if others[i].Count != others[j].Count {
			return others[i].Count > others[j].Count
		}
		return others[i].Status < others[j].Status
	})

	return append(result, others...)
}
