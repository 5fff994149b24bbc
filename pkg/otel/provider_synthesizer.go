package otel

import (
	"context"

	"github.com/annikahug/cadenza/pkg/provider"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

type Synthesizer interface {
	Observable
	provider.Synthesizer
}

type observableSynthesizer struct {
	model    string
	provider string

	synthesizer provider.Synthesizer
}

func NewSynthesizer(provider, model string, p provider.Synthesizer) Synthesizer {
	return &observableSynthesizer{
		synthesizer: p,

		model:    model,
		provider: provider,
	}
}

func (p *observableSynthesizer) otelSetup() {
}

func (p *observableSynthesizer) Synthesize(ctx context.Context, input string, options *provider.SynthesizeOptions) (*provider.Synthesis, error) {
	ctx, span := otel.Tracer(instrumentationName).Start(ctx, "synthesize "+p.model,
		trace.WithAttributes(String("provider", p.provider)))
	defer span.End()

	result, err := p.synthesizer.Synthesize(ctx, input, options)

	if err != nil {
		span.RecordError(err)
	}

	return result, err
}
