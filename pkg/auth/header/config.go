package header

func WithUserHeader(val string) Option {
	return func(p *Provider) {
		p.userHeader = val
	}
}

func WithParticipantHeader(val string) Option {
	return func(p *Provider) {
		p.participantHeader = val
	}
}
