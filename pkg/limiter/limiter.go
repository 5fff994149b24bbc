// Package limiter wraps providers with a client-side rate limit so study
// sessions cannot exhaust upstream service quotas.
package limiter

type Limiter interface {
	limiterSetup()
}
