package cloud

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubProvider returns fixed output and counts calls
type stubProvider struct {
	out   string
	err   error
	calls int
}

func (s *stubProvider) Translate(ctx context.Context, text string) (string, error) {
	s.calls++
	return s.out, s.err
}

func (s *stubProvider) Name() string {
	return "stub"
}

func (s *stubProvider) IsAvailable(ctx context.Context) error {
	return nil
}

func TestBreakerProviderPassesThrough(t *testing.T) {
	inner := &stubProvider{out: "Hello"}
	p := NewBreakerProvider(inner, 2, time.Minute, nil)

	out, err := p.Translate(context.Background(), "Hola")
	require.NoError(t, err)
	assert.Equal(t, "Hello", out)
	assert.Equal(t, "stub (breaker)", p.Name())
	assert.Equal(t, gobreaker.StateClosed, p.State())
}

func TestBreakerProviderOpensAfterFailures(t *testing.T) {
	inner := &stubProvider{err: errors.New("network down")}
	p := NewBreakerProvider(inner, 2, time.Minute, nil)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := p.Translate(ctx, "Hola")
		require.Error(t, err)
	}
	assert.Equal(t, gobreaker.StateOpen, p.State())
	assert.Equal(t, 2, inner.calls)

	_, err := p.Translate(ctx, "Hola")
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, 2, inner.calls, "open breaker must not call the provider")
	assert.ErrorIs(t, p.IsAvailable(ctx), gobreaker.ErrOpenState)
}

func TestBreakerProviderCountsEmptyAsFailure(t *testing.T) {
	inner := &stubProvider{out: "   "}
	p := NewBreakerProvider(inner, 1, time.Minute, nil)

	_, err := p.Translate(context.Background(), "Hola")
	assert.ErrorIs(t, err, errEmptyTranslation)
	assert.Equal(t, gobreaker.StateOpen, p.State())
}

type closingProvider struct {
	stubProvider
	closed bool
}

func (c *closingProvider) Close() error {
	c.closed = true
	return nil
}

func TestBreakerProviderCloseForwards(t *testing.T) {
	inner := &closingProvider{}
	require.NoError(t, NewBreakerProvider(inner, 2, time.Minute, nil).Close())
	assert.True(t, inner.closed)

	// Providers without resources close as a no-op
	assert.NoError(t, NewBreakerProvider(&stubProvider{}, 2, time.Minute, nil).Close())
}
