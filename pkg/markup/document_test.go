package markup

import (
	"errors"
	"reflect"
	"testing"
)

func TestAddRejectsOverlap(t *testing.T) {
	d := New("Hello world")

	if err := d.Add(EmphasisMark{Start: 0, End: 5, Level: EmphasisStrong}); err != nil {
		t.Fatalf("first mark: %v", err)
	}

	err := d.Add(ProsodyMark{Start: 2, End: 8, Rate: "+10%"})

	if !errors.Is(err, ErrOverlap) {
		t.Fatalf("expected ErrOverlap, got %v", err)
	}

	// all-or-nothing: the failed call must not mutate the collection
	if d.Count() != 1 {
		t.Fatalf("expected 1 mark after rejected add, got %d", d.Count())
	}
}

func TestAddAllowsAdjacentSpans(t *testing.T) {
	d := New("Hello world")

	if err := d.Add(EmphasisMark{Start: 0, End: 5, Level: EmphasisModerate}); err != nil {
		t.Fatalf("first mark: %v", err)
	}

	// shared boundary (end == start) is adjacency, not overlap
	if err := d.Add(ProsodyMark{Start: 5, End: 11, Pitch: "-5%"}); err != nil {
		t.Fatalf("adjacent mark: %v", err)
	}

	if d.Count() != 2 {
		t.Fatalf("expected 2 marks, got %d", d.Count())
	}
}

func TestAddRangeChecks(t *testing.T) {
	d := New("Hello")

	cases := []struct {
		name string
		mark Mark
	}{
		{"negative start", EmphasisMark{Start: -1, End: 3, Level: EmphasisStrong}},
		{"end past text", EmphasisMark{Start: 0, End: 6, Level: EmphasisStrong}},
		{"empty span", ProsodyMark{Start: 2, End: 2, Rate: "fast"}},
		{"inverted span", ProsodyMark{Start: 4, End: 1, Rate: "fast"}},
		{"break past text", BreakMark{At: 6, Duration: 100}},
		{"negative break offset", BreakMark{At: -1, Duration: 100}},
		{"negative duration", BreakMark{At: 2, Duration: -1}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := d.Add(tc.mark)

			if !errors.Is(err, ErrRange) {
				t.Fatalf("expected ErrRange, got %v", err)
			}

			if d.Count() != 0 {
				t.Fatalf("rejected add mutated the document")
			}
		})
	}
}

func TestBreaksSkipOverlapCheck(t *testing.T) {
	d := New("Hello world")

	if err := d.Add(EmphasisMark{Start: 0, End: 11, Level: EmphasisStrong}); err != nil {
		t.Fatalf("span: %v", err)
	}

	// break marks may land anywhere, including inside spans and stacked on
	// the same offset
	for _, at := range []int{0, 5, 5, 11} {
		if err := d.Add(BreakMark{At: at, Duration: 100}); err != nil {
			t.Fatalf("break at %d: %v", at, err)
		}
	}

	if d.Count() != 5 {
		t.Fatalf("expected 5 marks, got %d", d.Count())
	}
}

func TestMarksCanonicalOrder(t *testing.T) {
	d := New("one two three four")

	marks := []Mark{
		BreakMark{At: 7, Duration: 200},
		EmphasisMark{Start: 8, End: 13, Level: EmphasisStrong},
		BreakMark{At: 7, Duration: 100},
		ProsodyMark{Start: 0, End: 3, Rate: "slow"},
		BreakMark{At: 0, Duration: 50},
	}

	for _, m := range marks {
		if err := d.Add(m); err != nil {
			t.Fatalf("add %v: %v", m, err)
		}
	}

	// ties at offset 0 and 7 keep insertion order
	want := []Mark{
		ProsodyMark{Start: 0, End: 3, Rate: "slow"},
		BreakMark{At: 0, Duration: 50},
		BreakMark{At: 7, Duration: 200},
		BreakMark{At: 7, Duration: 100},
		EmphasisMark{Start: 8, End: 13, Level: EmphasisStrong},
	}

	got := d.Marks()

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("canonical order mismatch:\ngot  %v\nwant %v", got, want)
	}

	// repeated calls over an unchanged collection are deterministic
	if again := d.Marks(); !reflect.DeepEqual(again, got) {
		t.Fatal("Marks() is not stable across calls")
	}
}

func TestNoOverlapInvariantHolds(t *testing.T) {
	d := New("the quick brown fox jumps over the lazy dog")

	attempts := []Mark{
		EmphasisMark{Start: 4, End: 9, Level: EmphasisStrong},
		ProsodyMark{Start: 0, End: 3, Rate: "-20%"},
		ProsodyMark{Start: 2, End: 6, Pitch: "+5%"}, // overlaps both
		EmphasisMark{Start: 9, End: 15, Level: EmphasisReduced},
		EmphasisMark{Start: 8, End: 10, Level: EmphasisModerate}, // overlaps
		BreakMark{At: 9, Duration: 300},
	}

	for _, m := range attempts {
		d.Add(m)

		spans := make([][2]int, 0, d.Count())

		for _, got := range d.Marks() {
			if s, e, ok := spanRange(got); ok {
				spans = append(spans, [2]int{s, e})
			}
		}

		for i := 1; i < len(spans); i++ {
			if spans[i-1][1] > spans[i][0] {
				t.Fatalf("invariant violated after %v: %v then %v", m, spans[i-1], spans[i])
			}
		}
	}

	if d.Count() != 4 {
		t.Fatalf("expected 4 admitted marks, got %d", d.Count())
	}
}

func TestSetTextClearsMarks(t *testing.T) {
	d := New("Hello world")

	if err := d.Add(EmphasisMark{Start: 0, End: 5, Level: EmphasisStrong}); err != nil {
		t.Fatal(err)
	}

	d.SetText("Goodbye")

	if d.Count() != 0 {
		t.Fatal("SetText kept stale marks")
	}

	if d.Text() != "Goodbye" {
		t.Fatalf("unexpected text %q", d.Text())
	}
}

func TestClear(t *testing.T) {
	d := New("Hello")

	d.Add(BreakMark{At: 0, Duration: 100})
	d.Add(EmphasisMark{Start: 0, End: 5, Level: EmphasisStrong})

	d.Clear()

	if d.Count() != 0 {
		t.Fatal("Clear left marks behind")
	}
}
