package limiter

import (
	"context"

	"github.com/annikahug/cadenza/pkg/provider"

	"golang.org/x/time/rate"
)

type Synthesizer interface {
	Limiter
	provider.Synthesizer
}

type limitedSynthesizer struct {
	limiter  *rate.Limiter
	provider provider.Synthesizer
}

func NewSynthesizer(l *rate.Limiter, p provider.Synthesizer) Synthesizer {
	return &limitedSynthesizer{
		limiter:  l,
		provider: p,
	}
}

func (p *limitedSynthesizer) limiterSetup() {
}

func (p *limitedSynthesizer) Synthesize(ctx context.Context, input string, options *provider.SynthesizeOptions) (*provider.Synthesis, error) {
	if p.limiter != nil {
		if err := p.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	return p.provider.Synthesize(ctx, input, options)
}
