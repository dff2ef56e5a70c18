package agreements_test

import (
	"testing"

	"github.com/wrenchline/tread/internal/agreements"
)

func byStatus(items ...string) []agreements.Agreement {
	result := make([]agreements.Agreement, len(items))
	for i, s := range items {
		result[i] = agreements.Agreement{Status: s}
	}
	return result
}

func TestAggregateStatusPriorityOrder(t *testing.T) {
	got := agreements.AggregateStatus(byStatus(
		"CANCELLED", "ACTIVE", "PENDING", "ACTIVE",
	))

	want := []string{
		agreements.StatusActive,
		agreements.StatusPending,
		agreements.StatusCancelled,
	}

	if len(got) != 3 {
		t.Fatalf("length = %d, want 3", len(got))
	}
	for i, sc := range got {
		if sc.Status != want[i] {
			t.Errorf("[%d].status = %q, want %q", i, sc.Status, want[i])
		}
	}
	if got[0].Count != 2 {
		t.Errorf("active count = %d, want 2", got[0].Count)
	}
}

func TestAggregateStatusPriorityAlwaysPresent(t *testing.T) {
	got := agreements.AggregateStatus(nil)

	if len(got) != 3 {
		t.Fatalf("length = %d, want 3", len(got))
	}
	for _, sc := range got {
		if sc.Count != 0 || sc.Percentage != 0 {
			t.Errorf("%s = %d (%v%%), want zero", sc.Status, sc.Count, sc.Percentage)
		}
	}
}

func TestAggregateStatusOthersByDescendingCount(t *testing.T) {
	got := agreements.AggregateStatus(byStatus(
		"ACTIVE",
		"EXPIRED", "EXPIRED", "EXPIRED",
		"SUSPENDED",
		"TRANSFERRED", "TRANSFERRED",
	))

	if len(got) != 6 {
		t.Fatalf("length = %d, want 6", len(got))
	}

	others := got[3:]
	want := []struct {
		status string
		count  int
	}{
		{"EXPIRED", 3},
		{"TRANSFERRED", 2},
		{"SUSPENDED", 1},
	}

	for i, sc := range others {
		if sc.Status != want[i].status || sc.Count != want[i].count {
			t.Errorf("others[%d] = %q:%d, want %q:%d", i, sc.Status, sc.Count, want[i].status, want[i].count)
		}
	}
}

func TestAggregateStatusNormalizesCase(t *testing.T) {
	got := agreements.AggregateStatus(byStatus("active", "Active", " ACTIVE "))

	if got[0].Status != agreements.StatusActive {
		t.Fatalf("[0].status = %q, want ACTIVE", got[0].Status)
	}
	if got[0].Count != 3 {
		t.Errorf("active count = %d, want 3", got[0].Count)
	}
	if got[0].Percentage != 100 {
		t.Errorf("active percentage = %v, want 100", got[0].Percentage)
	}
}

func TestAggregateStatusConservation(t *testing.T) {
	items := byStatus("ACTIVE", "PENDING", "CANCELLED", "EXPIRED", "EXPIRED")
	got := agreements.AggregateStatus(items)

	sum := 0
	for _, sc := range got {
		sum += sc.Count
	}
	if sum != len(items) {
		t.Errorf("count sum = %d, want %d", sum, len(items))
	}
}
