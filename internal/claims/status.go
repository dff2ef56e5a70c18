package claims

import (
	"strings"
	"time"
)

// Status is the derived lifecycle label of a claim.
type Status string

// Claim statuses, in fixed display order.
const (
	StatusOpen    Status = "OPEN"
	StatusPending Status = "PENDING"
	StatusClosed  Status = "CLOSED"
)

// Statuses returns all claim statuses in display order.
func Statuses() []Status {
	return []Status{StatusOpen, StatusPending, StatusClosed}
}

// ParseStatus maps a string to a Status, case-insensitively.
func ParseStatus(s string) (Status, bool) {
	switch Status(strings.ToUpper(strings.TrimSpace(s))) {
	case StatusOpen:
		return StatusOpen, true
	case StatusPending:
		return StatusPending, true
	case StatusClosed:
		return StatusClosed, true
	}
	return "", false
}

// DeriveStatus classifies a claim from its date fields. A closed date is
// authoritative regardless of the reported date; a reported date without a
// closed date means the claim is open; with neither, intake has not been
// finalized and the claim is pending. Total over all inputs.
func DeriveStatus(reported, closed *time.Time) Status {
	switch {
	case closed != nil:
		return StatusClosed
	case reported != nil:
		return StatusOpen
	default:
		return StatusPending
	}
}

var denialKeywords = []string{"denied", "not covered", "rejected"}

// IsDenied reports whether a correction text contains a denial keyword,
// case-insensitively. Denial is an informational signal alongside status,
// never a substitute for it: a claim can be CLOSED and denied at once.
func IsDenied(correction *string) bool {
	if correction == nil {
		return false
	}

	text := strings.ToLower(*correction)
	for _, kw := range denialKeywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// StatusCount holds the count and share of claims for a single status.
type StatusCount struct {
	Status     Status  `json:"status"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// AggregateStatus folds claims into per-status counts and percentages.
// All three statuses are always present, zero-filled, in display order, so
// an empty bucket renders as a zero bar rather than disappearing from a
// chart. Percentages are computed against the total input size and are 0
// for empty input.
func AggregateStatus(items []Claim) []StatusCount {
	counts := make(map[Status]int, 3)
	for _, c := range items {
		counts[DeriveStatus(c.ReportedDate, c.ClosedDate)]++
	}

	total := len(items)
	result := make([]StatusCount, 0, 3)
	for _, s := range Statuses() {
		sc := StatusCount{Status: s, Count: counts[s]}
		if total > 0 {
			sc.Percentage = float64(sc.Count) / float64(total) * 100
		}
		result = append(result, sc)
	}

	return result
}
