package limiter

import (
	"context"

	"github.com/annikahug/cadenza/pkg/provider"

	"golang.org/x/time/rate"
)

type Describer interface {
	Limiter
	provider.Describer
}

type limitedDescriber struct {
	limiter  *rate.Limiter
	provider provider.Describer
}

func NewDescriber(l *rate.Limiter, p provider.Describer) Describer {
	return &limitedDescriber{
		limiter:  l,
		provider: p,
	}
}

func (p *limitedDescriber) limiterSetup() {
}

func (p *limitedDescriber) Describe(ctx context.Context, input provider.DescribeInput, options *provider.DescribeOptions) (*provider.Description, error) {
	if p.limiter != nil {
		if err := p.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	return p.provider.Describe(ctx, input, options)
}
