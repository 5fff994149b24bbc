package provider

import (
	"fmt"
)

type Model struct {
	ID string
}

type File struct {
	Name string

	Content     []byte
	ContentType string
}

type Usage struct {
	InputTokens  int
	OutputTokens int
}

// UpstreamError is a failure reported by an external speech or vision
// service on a syntactically valid request. The reason text is surfaced
// verbatim and never interpreted.
type UpstreamError struct {
	Status int
	Reason string
}

func (e *UpstreamError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("upstream service returned status %d", e.Status)
	}

	return fmt.Sprintf("upstream service returned status %d: %s", e.Status, e.Reason)
}
