package vllm

import (
	"log/slog"
	"time"
)

// Sampler derives per-second rates from the deltas between successive
// counter observations. It holds the previous observation for the life of
// the process. Not safe for concurrent use; the monitor calls it from a
// single goroutine.
type Sampler struct {
	primed       bool
	lastTokens   float64
	lastRequests float64
	lastAt       time.Time
}

// NewSampler returns an unprimed Sampler. The first call to Rates returns
// zero rates and primes the state.
func NewSampler() *Sampler {
	return &Sampler{}
}

// Rates returns the token and request rates since the previous observation
// and stores the current one. A counter that moved backwards (server
// restart) clamps its rate to zero; the other rate is unaffected.
func (s *Sampler) Rates(raw RawCounters, now time.Time) Rates {
	defer func() {
		s.lastTokens = raw.GenerationTokens
		s.lastRequests = raw.SuccessfulRequests
		s.lastAt = now
		s.primed = true
	}()

	if !s.primed {
		return Rates{}
	}

	elapsed := now.Sub(s.lastAt).Seconds()
	if elapsed <= 0 {
		return Rates{}
	}

	if raw.GenerationTokens < s.lastTokens || raw.SuccessfulRequests < s.lastRequests {
		slog.Debug("counter moved backwards, assuming server restart",
			slog.Float64("tokens", raw.GenerationTokens),
			slog.Float64("requests", raw.SuccessfulRequests),
		)
	}

	var r Rates
	if raw.GenerationTokens >= s.lastTokens {
		r.TokensPerSecond = (raw.GenerationTokens - s.lastTokens) / elapsed
	}
	if raw.SuccessfulRequests >= s.lastRequests {
		r.RequestsPerSecond = (raw.SuccessfulRequests - s.lastRequests) / elapsed
	}
	return r
}
