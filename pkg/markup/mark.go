package markup

// Mark is a single prosody edit over the base text.
//
// The set of kinds is closed: span marks (EmphasisMark, ProsodyMark) wrap the
// half-open byte range [Start, End), break marks insert a timed pause at a
// single offset and never wrap text.
type Mark interface {
	// offset is the primary sort key for compilation order.
	offset() int
}

type EmphasisLevel string

const (
	EmphasisReduced  EmphasisLevel = "reduced"
	EmphasisModerate EmphasisLevel = "moderate"
	EmphasisStrong   EmphasisLevel = "strong"
)

type EmphasisMark struct {
	Start int
	End   int

	Level EmphasisLevel
}

// ProsodyMark shifts pitch, rate and/or volume over its span. Each attribute
// is a signed percentage or keyword string; an empty string means unset. A
// mark with all three unset compiles to its plain inner text.
type ProsodyMark struct {
	Start int
	End   int

	Pitch  string
	Rate   string
	Volume string
}

type BreakMark struct {
	At       int
	Duration int // milliseconds
}

func (m EmphasisMark) offset() int { return m.Start }
func (m ProsodyMark) offset() int  { return m.Start }
func (m BreakMark) offset() int    { return m.At }

// spanRange returns the wrapped range of a span mark, or ok=false for breaks.
func spanRange(m Mark) (start, end int, ok bool) {
	switch v := m.(type) {
	case EmphasisMark:
		return v.Start, v.End, true
	case ProsodyMark:
		return v.Start, v.End, true
	}

	return 0, 0, false
}
