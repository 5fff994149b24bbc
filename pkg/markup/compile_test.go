package markup

import (
	"errors"
	"regexp"
	"strings"
	"testing"
)

const (
	testVoice    = "en-US-JennyNeural"
	testLanguage = "en-US"
)

// inner extracts the content between the voice tags.
func inner(t *testing.T, doc string) string {
	t.Helper()

	open := `<voice name="` + testVoice + `">`

	i := strings.Index(doc, open)
	j := strings.LastIndex(doc, "</voice>")

	if i < 0 || j < 0 {
		t.Fatalf("missing voice element in %q", doc)
	}

	return doc[i+len(open) : j]
}

func TestCompileEnvelope(t *testing.T) {
	doc, err := Compile("Hello", nil, testVoice, testLanguage)

	if err != nil {
		t.Fatal(err)
	}

	if !strings.HasPrefix(doc, `<?xml version="1.0" encoding="utf-8"?>`+"\n") {
		t.Fatalf("missing document declaration: %q", doc)
	}

	for _, want := range []string{
		`<speak version="1.0"`,
		`xmlns="http://www.w3.org/2001/10/synthesis"`,
		`xmlns:mstts="https://www.w3.org/2001/mstts"`,
		`xml:lang="en-US"`,
		`<voice name="en-US-JennyNeural">`,
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("missing %q in %q", want, doc)
		}
	}

	if !strings.HasSuffix(doc, `</voice></speak>`) {
		t.Fatalf("unterminated envelope: %q", doc)
	}
}

func TestCompileEmphasis(t *testing.T) {
	marks := []Mark{EmphasisMark{Start: 0, End: 5, Level: EmphasisStrong}}

	doc, err := Compile("Hello world", marks, testVoice, testLanguage)

	if err != nil {
		t.Fatal(err)
	}

	if got, want := inner(t, doc), `<emphasis level="strong">Hello</emphasis> world`; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestCompileEscapesText(t *testing.T) {
	doc, err := Compile("A & B", nil, testVoice, testLanguage)

	if err != nil {
		t.Fatal(err)
	}

	if got, want := inner(t, doc), "A &amp; B"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestCompileEscapesAllReserved(t *testing.T) {
	text := `a&b<c>d"e'f`

	doc, err := Compile(text, nil, testVoice, testLanguage)

	if err != nil {
		t.Fatal(err)
	}

	if got, want := inner(t, doc), "a&amp;b&lt;c&gt;d&quot;e&apos;f"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	// no raw reserved characters may survive outside entity substitutions
	if regexp.MustCompile(`[<>&"']`).MatchString(strings.NewReplacer(
		"&amp;", "", "&lt;", "", "&gt;", "", "&quot;", "", "&apos;", "",
	).Replace(inner(t, doc))) {
		t.Fatalf("raw reserved character in %q", inner(t, doc))
	}
}

func TestCompileEscapesAttributes(t *testing.T) {
	doc, err := Compile("hi", nil, `Voice "A" & B`, "en<US>")

	if err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{
		`name="Voice &quot;A&quot; &amp; B"`,
		`xml:lang="en&lt;US&gt;"`,
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("missing %q in %q", want, doc)
		}
	}
}

func TestCompileBreaksPreserveInsertionOrder(t *testing.T) {
	marks := []Mark{
		BreakMark{At: 5, Duration: 200},
		BreakMark{At: 5, Duration: 100},
	}

	doc, err := Compile("Pause here", marks, testVoice, testLanguage)

	if err != nil {
		t.Fatal(err)
	}

	if got, want := inner(t, doc), `Pause<break time="200ms"/><break time="100ms"/> here`; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestCompileBoundaryBreaks(t *testing.T) {
	marks := []Mark{
		BreakMark{At: 0, Duration: 300},
		BreakMark{At: 5, Duration: 150},
	}

	doc, err := Compile("Hello", marks, testVoice, testLanguage)

	if err != nil {
		t.Fatal(err)
	}

	if got, want := inner(t, doc), `<break time="300ms"/>Hello<break time="150ms"/>`; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestCompileAdjacentSpans(t *testing.T) {
	marks := []Mark{
		ProsodyMark{Start: 5, End: 11, Rate: "slow"},
		EmphasisMark{Start: 0, End: 5, Level: EmphasisModerate},
	}

	doc, err := Compile("Hello world", marks, testVoice, testLanguage)

	if err != nil {
		t.Fatal(err)
	}

	want := `<emphasis level="moderate">Hello</emphasis><prosody rate="slow"> world</prosody>`

	if got := inner(t, doc); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestCompileProsodyAttributeSubset(t *testing.T) {
	marks := []Mark{ProsodyMark{Start: 0, End: 5, Pitch: "+10%", Volume: "loud"}}

	doc, err := Compile("Hello world", marks, testVoice, testLanguage)

	if err != nil {
		t.Fatal(err)
	}

	if got, want := inner(t, doc), `<prosody pitch="+10%" volume="loud">Hello</prosody> world`; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestCompileEmptyProsodyUnwrapped(t *testing.T) {
	marks := []Mark{ProsodyMark{Start: 0, End: 5}}

	doc, err := Compile("Hello world", marks, testVoice, testLanguage)

	if err != nil {
		t.Fatal(err)
	}

	if got, want := inner(t, doc), "Hello world"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestCompileBreakInsideSpan(t *testing.T) {
	marks := []Mark{
		EmphasisMark{Start: 0, End: 11, Level: EmphasisStrong},
		BreakMark{At: 5, Duration: 100},
	}

	doc, err := Compile("Hello world", marks, testVoice, testLanguage)

	if err != nil {
		t.Fatal(err)
	}

	want := `<emphasis level="strong">Hello<break time="100ms"/> world</emphasis>`

	if got := inner(t, doc); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestCompileBreakBetweenTextAndSpan(t *testing.T) {
	marks := []Mark{
		BreakMark{At: 3, Duration: 250},
		EmphasisMark{Start: 8, End: 13, Level: EmphasisStrong},
	}

	doc, err := Compile("one two three four", marks, testVoice, testLanguage)

	if err != nil {
		t.Fatal(err)
	}

	want := `one<break time="250ms"/> two <emphasis level="strong">three</emphasis> four`

	if got := inner(t, doc); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestCompileDeterministic(t *testing.T) {
	text := "the quick brown fox jumps over the lazy dog"

	marks := []Mark{
		BreakMark{At: 9, Duration: 120},
		EmphasisMark{Start: 4, End: 9, Level: EmphasisStrong},
		ProsodyMark{Start: 10, End: 15, Rate: "-15%", Pitch: "+5%"},
		BreakMark{At: 9, Duration: 80},
		BreakMark{At: 0, Duration: 40},
		BreakMark{At: len(text), Duration: 500},
	}

	first, err := Compile(text, marks, testVoice, testLanguage)

	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 10; i++ {
		again, err := Compile(text, marks, testVoice, testLanguage)

		if err != nil {
			t.Fatal(err)
		}

		if again != first {
			t.Fatalf("run %d differs:\n%s\n%s", i, again, first)
		}
	}
}

func TestCompileRejectsOverlap(t *testing.T) {
	marks := []Mark{
		EmphasisMark{Start: 0, End: 5, Level: EmphasisStrong},
		ProsodyMark{Start: 2, End: 8, Rate: "fast"},
	}

	doc, err := Compile("Hello world", marks, testVoice, testLanguage)

	if !errors.Is(err, ErrOverlap) {
		t.Fatalf("expected ErrOverlap, got %v", err)
	}

	if doc != "" {
		t.Fatalf("partial document returned: %q", doc)
	}
}

func TestCompileRejectsOutOfRange(t *testing.T) {
	cases := []struct {
		name  string
		marks []Mark
	}{
		{"span past end", []Mark{EmphasisMark{Start: 0, End: 12, Level: EmphasisStrong}}},
		{"break past end", []Mark{BreakMark{At: 12, Duration: 10}}},
		{"negative duration", []Mark{BreakMark{At: 0, Duration: -5}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc, err := Compile("Hello world", tc.marks, testVoice, testLanguage)

			if !errors.Is(err, ErrRange) {
				t.Fatalf("expected ErrRange, got %v", err)
			}

			if doc != "" {
				t.Fatalf("partial document returned: %q", doc)
			}
		})
	}
}

func TestCompileSpanAtTextEnd(t *testing.T) {
	marks := []Mark{ProsodyMark{Start: 6, End: 11, Volume: "soft"}}

	doc, err := Compile("Hello world", marks, testVoice, testLanguage)

	if err != nil {
		t.Fatal(err)
	}

	if got, want := inner(t, doc), `Hello <prosody volume="soft">world</prosody>`; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestCompileBreakAfterTrailingSpan(t *testing.T) {
	// text ends exactly where the span ends; the final break must still be
	// emitted once, after the wrapper
	marks := []Mark{
		EmphasisMark{Start: 6, End: 11, Level: EmphasisStrong},
		BreakMark{At: 11, Duration: 200},
	}

	doc, err := Compile("Hello world", marks, testVoice, testLanguage)

	if err != nil {
		t.Fatal(err)
	}

	want := `Hello <emphasis level="strong">world</emphasis><break time="200ms"/>`

	if got := inner(t, doc); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestCompileEmptyText(t *testing.T) {
	doc, err := Compile("", []Mark{BreakMark{At: 0, Duration: 100}}, testVoice, testLanguage)

	if err != nil {
		t.Fatal(err)
	}

	if got, want := inner(t, doc), `<break time="100ms"/>`; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestDocumentCompile(t *testing.T) {
	d := New("Hello world")

	if err := d.Add(EmphasisMark{Start: 0, End: 5, Level: EmphasisStrong}); err != nil {
		t.Fatal(err)
	}

	doc, err := d.Compile(testVoice, testLanguage)

	if err != nil {
		t.Fatal(err)
	}

	if got, want := inner(t, doc), `<emphasis level="strong">Hello</emphasis> world`; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
