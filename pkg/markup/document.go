// Package markup holds the annotation model for prosody edits over a plain
// text and compiles the edited text into a speech synthesis markup document.
package markup

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrOverlap reports a span mark intersecting an existing span mark.
	ErrOverlap = errors.New("markup: overlapping span marks")

	// ErrRange reports an offset outside the base text.
	ErrRange = errors.New("markup: offset out of range")
)

// Document is the annotation model: an immutable base text plus the marks a
// user has applied to it. A Document is owned by a single session and is not
// safe for concurrent use.
type Document struct {
	text  string
	marks []Mark
}

func New(text string) *Document {
	return &Document{
		text: text,
	}
}

func (d *Document) Text() string {
	return d.text
}

// SetText replaces the base text and drops all marks. Offsets into the old
// text are meaningless against the new one.
func (d *Document) SetText(text string) {
	d.text = text
	d.marks = nil
}

// Add admits a mark. Span marks are rejected with ErrOverlap if they
// intersect an existing span mark; any mark with offsets outside the text is
// rejected with ErrRange. A failed Add leaves the document unchanged.
func (d *Document) Add(m Mark) error {
	if err := validate(m, len(d.text), d.marks); err != nil {
		return err
	}

	d.marks = append(d.marks, m)

	return nil
}

func (d *Document) Clear() {
	d.marks = nil
}

func (d *Document) Count() int {
	return len(d.marks)
}

// Marks returns the marks in canonical compilation order: ascending by
// break offset or span start, ties kept in insertion order.
func (d *Document) Marks() []Mark {
	return ordered(d.marks)
}

// Compile renders the document for the given voice and language tag.
func (d *Document) Compile(voice, language string) (string, error) {
	return Compile(d.text, d.marks, voice, language)
}

func ordered(marks []Mark) []Mark {
	result := slices.Clone(marks)

	slices.SortStableFunc(result, func(a, b Mark) int {
		return cmp.Compare(a.offset(), b.offset())
	})

	return result
}

func validate(m Mark, length int, existing []Mark) error {
	if b, ok := m.(BreakMark); ok {
		if b.At < 0 || b.At > length {
			return fmt.Errorf("%w: break at %d, text length %d", ErrRange, b.At, length)
		}

		if b.Duration < 0 {
			return fmt.Errorf("%w: negative break duration %dms", ErrRange, b.Duration)
		}

		return nil
	}

	start, end, _ := spanRange(m)

	if start < 0 || end > length || start >= end {
		return fmt.Errorf("%w: span [%d,%d), text length %d", ErrRange, start, end, length)
	}

	for _, other := range existing {
		s, e, ok := spanRange(other)

		if !ok {
			continue
		}

		if start < e && s < end {
			return fmt.Errorf("%w: [%d,%d) intersects [%d,%d)", ErrOverlap, start, end, s, e)
		}
	}

	return nil
}
