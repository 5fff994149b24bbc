package openai

import (
	"context"
	"encoding/base64"
	"errors"

	"github.com/annikahug/cadenza/pkg/provider"

	"github.com/openai/openai-go/v3"
)

var _ provider.Describer = (*Describer)(nil)

const defaultPrompt = "Describe this image for a listener who cannot see it. Use one short paragraph of plain prose."

type Describer struct {
	*Config
	completions openai.ChatCompletionService
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
		Config:      cfg,
		completions: openai.NewChatCompletionService(cfg.Options()...),
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

	imageURL := openai.ChatCompletionContentPartImageImageURLParam{
		URL: "data:" + mime + ";base64," + content,
	}

	parts := []openai.ChatCompletionContentPartUnionParam{
		openai.TextContentPart(prompt),
		openai.ImageContentPart(imageURL),
	}

	req := openai.ChatCompletionNewParams{
		Model: d.model,

		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(parts),
		},
	}

	if options.Temperature != nil {
		req.Temperature = openai.Float(float64(*options.Temperature))
	}

	if options.MaxTokens != nil {
		req.MaxCompletionTokens = openai.Int(int64(*options.MaxTokens))
	}

	completion, err := d.completions.New(ctx, req)

	if err != nil {
		return nil, convertError(err)
	}

	if len(completion.Choices) == 0 {
		return nil, errors.New("empty completion")
	}

	return &provider.Description{
		ID:    completion.ID,
		Model: d.model,

		Text: completion.Choices[0].Message.Content,

		Usage: &provider.Usage{
			InputTokens:  int(completion.Usage.PromptTokens),
			OutputTokens: int(completion.Usage.CompletionTokens),
		},
	}, nil
}
