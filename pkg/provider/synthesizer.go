package provider

import (
	"context"
)

type Synthesizer interface {
	Synthesize(ctx context.Context, input string, options *SynthesizeOptions) (*Synthesis, error)
}

type SynthesizeOptions struct {
	Voice    string
	Language string

	Format string

	// Instructions steer delivery on engines that accept a free-text
	// style prompt instead of inline markup.
	Instructions string

	// Markup indicates the input is an already compiled synthesis markup
	// document rather than plain text.
	Markup bool
}

type Synthesis struct {
	ID    string
	Model string

	Content     []byte
	ContentType string
}
