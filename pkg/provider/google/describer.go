package google

import (
	"context"
	"errors"
	"strings"

	"github.com/annikahug/cadenza/pkg/provider"

	"github.com/google/uuid"
	"google.golang.org/genai"
)

var _ provider.Describer = (*Describer)(nil)

const defaultPrompt = "Describe this image for a listener who cannot see it. Use one short paragraph of plain prose."

type Describer struct {
	*Config
}

func NewDescriber(model string, options ...Option) (*Describer, error) {
	cfg := &Config{
		model: model,
	}

	for _, option := range options {
		option(cfg)
	}

	return &Describer{
		Config: cfg,
	}, nil
}

func (d *Describer) Describe(ctx context.Context, input provider.DescribeInput, options *provider.DescribeOptions) (*provider.Description, error) {
	if options == nil {
		options = new(provider.DescribeOptions)
	}

	if input.Image == nil {
		return nil, errors.New("missing input image")
	}

	client, err := d.newClient(ctx)

	if err != nil {
		return nil, err
	}

	prompt := input.Prompt

	if prompt == "" {
		prompt = defaultPrompt
	}

	parts := []*genai.Part{
		genai.NewPartFromText(prompt),
		{
			InlineData: &genai.Blob{
				MIMEType: input.Image.ContentType,
				Data:     input.Image.Content,
			},
		},
	}

	contents := []*genai.Content{
		genai.NewContentFromParts(parts, genai.RoleUser),
	}

	config := &genai.GenerateContentConfig{}

	if options.Temperature != nil {
		config.Temperature = options.Temperature
	}

	if options.MaxTokens != nil {
		config.MaxOutputTokens = int32(*options.MaxTokens)
	}

	resp, err := client.Models.GenerateContent(ctx, d.model, contents, config)

	if err != nil {
		return nil, err
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, errors.New("empty response")
	}

	return &provider.Description{
		ID:    uuid.NewString(),
		Model: d.model,

		Text: joinText(resp.Candidates[0].Content.Parts),
	}, nil
}

// joinText concatenates all text parts of a candidate; responses may split
// one answer across several parts.
func joinText(parts []*genai.Part) string {
	var text strings.Builder

	for _, part := range parts {
		if part.Text == "" {
			continue
		}

		text.WriteString(part.Text)
	}

	return text.String()
}
