package cloud

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
)

// errEmptyTranslation counts an empty answer as a breaker failure.
var errEmptyTranslation = errors.New("empty translation")

// BreakerProvider fails fast while the wrapped provider keeps failing.
type BreakerProvider struct {
	provider Provider
	cb       *gobreaker.CircuitBreaker
}

// NewBreakerProvider wraps provider in a circuit breaker that opens after
// failures consecutive errors and probes again after timeout.
func NewBreakerProvider(provider Provider, failures uint32, timeout time.Duration, logger *logrus.Logger) *BreakerProvider {
	if failures == 0 {
		failures = DefaultProviderConfig().BreakerFailures
	}
	if logger == nil {
		logger = logrus.New()
	}

	settings := gobreaker.Settings{
		Name:        provider.Name(),
		MaxRequests: 1,
		Timeout:     timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.WithFields(logrus.Fields{
				"backend": name,
				"from":    from.String(),
				"to":      to.String(),
			}).Warn("Cloud circuit breaker changed state")
		},
	}

	return &BreakerProvider{
		provider: provider,
		cb:       gobreaker.NewCircuitBreaker(settings),
	}
}

// Translate runs the wrapped provider through the breaker
func (p *BreakerProvider) Translate(ctx context.Context, text string) (string, error) {
	out, err := p.cb.Execute(func() (interface{}, error) {
		translated, err := p.provider.Translate(ctx, text)
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(translated) == "" {
			return "", errEmptyTranslation
		}
		return translated, nil
	})
	if err != nil {
		return "", err
	}
	return out.(string), nil
}

// Name returns the provider name
func (p *BreakerProvider) Name() string {
	return fmt.Sprintf("%s (breaker)", p.provider.Name())
}

// IsAvailable reports an open breaker as unavailable
func (p *BreakerProvider) IsAvailable(ctx context.Context) error {
	if p.cb.State() == gobreaker.StateOpen {
		return fmt.Errorf("%s: %w", p.provider.Name(), gobreaker.ErrOpenState)
	}
	return p.provider.IsAvailable(ctx)
}

// Close closes the wrapped provider if it holds resources
func (p *BreakerProvider) Close() error {
	if c, ok := p.provider.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// State returns the breaker state
func (p *BreakerProvider) State() gobreaker.State {
	return p.cb.State()
}
