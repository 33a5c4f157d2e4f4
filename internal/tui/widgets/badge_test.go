// ABOUTME: Tests for badge rendering

package widgets

import (
	"strings"
	"testing"
)

func TestCountBadge_ZeroRendersNothing(t *testing.T) {
	if got := CountBadge(0); got != "" {
		t.Errorf("CountBadge(0) = %q, want empty", got)
	}
	if got := CountBadge(-1); got != "" {
		t.Errorf("CountBadge(-1) = %q, want empty", got)
	}
}

func TestCountBadge_ShowsCount(t *testing.T) {
	if got := CountBadge(3); !strings.Contains(got, "3") {
		t.Errorf("CountBadge(3) = %q, expected the count", got)
	}
}

func TestStatusBadge_KnownStatuses(t *testing.T) {
	for _, status := range []string{"accepted", "rejected", "pending", "invited", "weird"} {
		if got := StatusBadge(status); !strings.Contains(got, status) {
			t.Errorf("StatusBadge(%q) = %q, expected the status text", status, got)
		}
	}
}

func TestPriorityBadge_MediumAbbreviated(t *testing.T) {
	if got := PriorityBadge("medium"); !strings.Contains(got, "med") {
		t.Errorf("PriorityBadge(medium) = %q", got)
	}
	if got := PriorityBadge("high"); !strings.Contains(got, "high") {
		t.Errorf("PriorityBadge(high) = %q", got)
	}
}
