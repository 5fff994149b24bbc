package markup

import (
	"fmt"
	"strings"
)

const (
	synthesisNamespace = "http://www.w3.org/2001/10/synthesis"
	extensionNamespace = "https://www.w3.org/2001/mstts"
)

// escaper substitutes the five reserved XML characters in a single pass, so
// ampersands introduced by the other substitutions are never escaped twice.
var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// Compile renders the base text and mark set into one well-formed synthesis
// markup document. It is a pure function: identical inputs yield
// byte-identical output. Marks need not be pre-sorted.
//
// Compile re-validates offsets and span overlap and returns ErrRange or
// ErrOverlap without emitting a partial document.
func Compile(text string, marks []Mark, voice, language string) (string, error) {
	length := len(text)

	var spans []Mark

	// Break durations keyed by offset, insertion order preserved within an
	// offset. positions tracks the offsets in ascending order so emission
	// never iterates the map.
	breaks := make(map[int][]int)
	var positions []int

	for _, m := range ordered(marks) {
		if v, ok := m.(BreakMark); ok {
			if v.At < 0 || v.At > length {
				return "", fmt.Errorf("%w: break at %d, text length %d", ErrRange, v.At, length)
			}

			if v.Duration < 0 {
				return "", fmt.Errorf("%w: negative break duration %dms", ErrRange, v.Duration)
			}

			if _, ok := breaks[v.At]; !ok {
				positions = append(positions, v.At)
			}

			breaks[v.At] = append(breaks[v.At], v.Duration)

			continue
		}

		spans = append(spans, m)
	}

	for i, m := range spans {
		start, end, _ := spanRange(m)

		if start < 0 || end > length || start >= end {
			return "", fmt.Errorf("%w: span [%d,%d), text length %d", ErrRange, start, end, length)
		}

		if i > 0 {
			_, prev, _ := spanRange(spans[i-1])

			if start < prev {
				return "", fmt.Errorf("%w: [%d,%d) begins before %d", ErrOverlap, start, end, prev)
			}
		}
	}

	var b strings.Builder

	writeBreaks := func(pos int) {
		for _, ms := range breaks[pos] {
			fmt.Fprintf(&b, `<break time="%dms"/>`, ms)
		}

		// each queue is emitted exactly once
		delete(breaks, pos)
	}

	// writeText emits the escaped slice [from,to), interleaving any break
	// queues at offsets within it (including from itself).
	writeText := func(from, to int) {
		writeBreaks(from)

		for _, p := range positions {
			if p <= from || p >= to {
				continue
			}

			b.WriteString(escaper.Replace(text[from:p]))
			writeBreaks(p)
			from = p
		}

		b.WriteString(escaper.Replace(text[from:to]))
	}

	b.WriteString(`<?xml version="1.0" encoding="utf-8"?>`)
	b.WriteString("\n")
	b.WriteString(`<speak version="1.0" xmlns="` + synthesisNamespace + `" xmlns:mstts="` + extensionNamespace + `" xml:lang="` + escaper.Replace(language) + `">`)
	b.WriteString(`<voice name="` + escaper.Replace(voice) + `">`)

	cursor := 0

	for _, m := range spans {
		start, end, _ := spanRange(m)

		writeText(cursor, start)
		writeBreaks(start)

		switch v := m.(type) {
		case EmphasisMark:
			b.WriteString(`<emphasis level="` + escaper.Replace(string(v.Level)) + `">`)
			writeText(start, end)
			b.WriteString(`</emphasis>`)

		case ProsodyMark:
			attrs := prosodyAttrs(v)

			if attrs == "" {
				// a prosody mark without attributes degrades to plain text
				writeText(start, end)
				break
			}

			b.WriteString(`<prosody` + attrs + `>`)
			writeText(start, end)
			b.WriteString(`</prosody>`)
		}

		cursor = end
	}

	writeText(cursor, length)
	writeBreaks(length)

	b.WriteString(`</voice></speak>`)

	return b.String(), nil
}

func prosodyAttrs(m ProsodyMark) string {
	var b strings.Builder

	if m.Pitch != "" {
		b.WriteString(` pitch="` + escaper.Replace(m.Pitch) + `"`)
	}

	if m.Rate != "" {
		b.WriteString(` rate="` + escaper.Replace(m.Rate) + `"`)
	}

	if m.Volume != "" {
		b.WriteString(` volume="` + escaper.Replace(m.Volume) + `"`)
	}

	return b.String()
}
