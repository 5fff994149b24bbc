package study

import (
	"errors"
	"testing"
)

func TestConditionOrderRotates(t *testing.T) {
	seen := map[string]bool{}

	for n := 0; n < 3; n++ {
		order := ConditionOrder(n)

		if len(order) != 3 {
			t.Fatalf("expected 3 conditions, got %d", len(order))
		}

		unique := map[Condition]bool{}

		for _, c := range order {
			unique[c] = true
		}

		if len(unique) != 3 {
			t.Fatalf("order %v repeats a condition", order)
		}

		key := string(order[0]) + "|" + string(order[1]) + "|" + string(order[2])

		if seen[key] {
			t.Fatalf("order %v already assigned", order)
		}

		seen[key] = true
	}

	// the cycle repeats after three sessions
	first := ConditionOrder(0)
	fourth := ConditionOrder(3)

	for i := range first {
		if first[i] != fourth[i] {
			t.Fatalf("expected cycle of 3, got %v vs %v", first, fourth)
		}
	}
}

func TestParseCondition(t *testing.T) {
	for _, c := range conditions {
		got, err := ParseCondition(string(c))

		if err != nil {
			t.Fatal(err)
		}

		if got != c {
			t.Fatalf("got %q, want %q", got, c)
		}
	}

	if _, err := ParseCondition("loud"); err == nil {
		t.Fatal("expected error for unknown condition")
	}
}

func TestRatingValidate(t *testing.T) {
	rating := Rating{Naturalness: 4, Pleasantness: 7, Comprehension: 1}

	if err := rating.Validate(); err != nil {
		t.Fatal(err)
	}

	rating.Pleasantness = 8

	if err := rating.Validate(); !errors.Is(err, ErrScale) {
		t.Fatalf("expected ErrScale, got %v", err)
	}

	rating.Pleasantness = 0

	if err := rating.Validate(); !errors.Is(err, ErrScale) {
		t.Fatalf("expected ErrScale, got %v", err)
	}
}
