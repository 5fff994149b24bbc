package otel

import (
	"context"

	"github.com/annikahug/cadenza/pkg/provider"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

type Describer interface {
	Observable
	provider.Describer
}

type observableDescriber struct {
	model    string
	provider string

	describer provider.Describer
}

func NewDescriber(provider, model string, p provider.Describer) Describer {
	return &observableDescriber{
		describer: p,

		model:    model,
		provider: provider,
	}
}

func (p *observableDescriber) otelSetup() {
}

func (p *observableDescriber) Describe(ctx context.Context, input provider.DescribeInput, options *provider.DescribeOptions) (*provider.Description, error) {
	ctx, span := otel.Tracer(instrumentationName).Start(ctx, "describe "+p.model,
		trace.WithAttributes(String("provider", p.provider)))
	defer span.End()

	result, err := p.describer.Describe(ctx, input, options)

	if err != nil {
		span.RecordError(err)
	}

	return result, err
}
