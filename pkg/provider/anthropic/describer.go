package anthropic

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"

	"github.com/annikahug/cadenza/pkg/provider"

	"github.com/anthropics/anthropic-sdk-go"
)

var _ provider.Describer = (*Describer)(nil)

const defaultPrompt = "Describe this image for a listener who cannot see it. Use one short paragraph of plain prose."

const defaultMaxTokens = 1024

type Describer struct {
	*Config
	messages anthropic.MessageService
}

func NewDescriber(url, model string, options ...Option) (*Describer, error) {
	cfg := &Config{
		url:   url,
		model: model,
	}

	for _, option := range options {
		option(cfg)
	}

	return &Describer{
		Config:   cfg,
		messages: anthropic.NewMessageService(cfg.Options()...),
	}, nil
}

func (d *Describer) Describe(ctx context.Context, input provider.DescribeInput, options *provider.DescribeOptions) (*provider.Description, error) {
	if options == nil {
		options = new(provider.DescribeOptions)
	}

	if input.Image == nil {
		return nil, errors.New("missing input image")
	}

	mime := input.Image.ContentType

	switch mime {
	case "image/png", "image/jpeg", "image/webp", "image/gif":
	default:
		return nil, errors.New("unsupported content type: " + mime)
	}

	prompt := input.Prompt

	if prompt == "" {
		prompt = defaultPrompt
	}

	content := base64.StdEncoding.EncodeToString(input.Image.Content)

	blocks := []anthropic.ContentBlockParamUnion{
		anthropic.NewImageBlock(anthropic.Base64ImageSourceParam{
			Data:      content,
			MediaType: anthropic.Base64ImageSourceMediaType(mime),
		}),
		anthropic.NewTextBlock(prompt),
	}

	req := anthropic.MessageNewParams{
		Model:     anthropic.Model(d.model),
		MaxTokens: int64(defaultMaxTokens),

		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(blocks...),
		},
	}

	if options.Temperature != nil {
		req.Temperature = anthropic.Float(float64(*options.Temperature))
	}

	if options.MaxTokens != nil {
		req.MaxTokens = int64(*options.MaxTokens)
	}

	message, err := d.messages.New(ctx, req)

	if err != nil {
		return nil, convertError(err)
	}

	var parts []string

	for _, block := range message.Content {
		switch block := block.AsAny().(type) {
		case anthropic.TextBlock:
			parts = append(parts, block.Text)
		}
	}

	return &provider.Description{
		ID:    message.ID,
		Model: d.model,

		Text: strings.Join(parts, "\n\n"),

		Usage: &provider.Usage{
			InputTokens:  int(message.Usage.InputTokens),
			OutputTokens: int(message.Usage.OutputTokens),
		},
	}, nil
}

func convertError(err error) error {
	var apierr *anthropic.Error

	if errors.As(err, &apierr) {
		return &provider.UpstreamError{
			Status: apierr.StatusCode,
			Reason: apierr.Error(),
		}
	}

	return err
}
