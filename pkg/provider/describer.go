package provider

import (
	"context"
)

// Describer turns a stimulus image into a plain-text description suitable
// for spoken presentation.
type Describer interface {
	Describe(ctx context.Context, input DescribeInput, options *DescribeOptions) (*Description, error)
}

type DescribeInput struct {
	Image *File

	// Prompt overrides the provider's default description instruction.
	Prompt string
}

type DescribeOptions struct {
	Temperature *float32
	MaxTokens   *int
}

type Description struct {
	ID    string
	Model string

	Text string

	Usage *Usage
}
