// ABOUTME: Tests for the generic optimistic mutation helper

package syncer

import (
	"errors"
	"testing"
)

func TestOptimistic_CommitOnSuccess(t *testing.T) {
	var steps []string

	result, err := Optimistic(
		func() { steps = append(steps, "apply") },
		func() (int, error) { steps = append(steps, "attempt"); return 42, nil },
		func(v int) { steps = append(steps, "commit") },
		func() { steps = append(steps, "revert") },
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != 42 {
		t.Errorf("result = %d, want 42", result)
	}
	want := []string{"apply", "attempt", "commit"}
	if len(steps) != len(want) {
		t.Fatalf("steps = %v, want %v", steps, want)
	}
	for i := range want {
		if steps[i] != want[i] {
			t.Fatalf("steps = %v, want %v", steps, want)
		}
	}
}

func TestOptimistic_RevertOnFailure(t *testing.T) {
	boom := errors.New("boom")
	reverted := false

	result, err := Optimistic(
		func() {},
		func() (string, error) { return "partial", boom },
		func(string) { t.Error("commit must not run on failure") },
		func() { reverted = true },
	)
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if !reverted {
		t.Error("expected revert to run")
	}
	if result != "" {
		t.Errorf("expected zero value on failure, got %q", result)
	}
}
