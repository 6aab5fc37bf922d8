package cloud

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// TargetLanguage is the only language cloud providers translate to.
const TargetLanguage = "en"

// ErrUnknownProvider is returned for an unsupported provider name.
var ErrUnknownProvider = errors.New("unknown cloud provider")

// Provider defines the interface for cloud translation services
type Provider interface {
	// Translate translates text with auto-detected source language to English
	Translate(ctx context.Context, text string) (string, error)

	// Name returns the provider name
	Name() string

	// IsAvailable checks if the provider is properly configured and available
	IsAvailable(ctx context.Context) error
}

// Config holds common configuration for cloud providers
type Config struct {
	Provider string // "google", "gtranslate", "gcp", "gemini" or "libretranslate"

	// Credentials for gcp, gemini and libretranslate
	APIKey string

	// LibreTranslate settings
	BaseURL string

	// Gemini settings
	GeminiModel string

	// Circuit breaker, off by default
	Breaker         bool
	BreakerFailures uint32
	BreakerTimeout  time.Duration

	Logger *logrus.Logger
}

// DefaultProviderConfig returns default configuration
func DefaultProviderConfig() *Config {
	return &Config{
		Provider:        "google",
		GeminiModel:     "gemini-2.0-flash",
		BreakerFailures: 5,
		BreakerTimeout:  time.Minute,
	}
}

// NewProvider creates the appropriate cloud provider based on configuration
func NewProvider(ctx context.Context, config *Config) (Provider, error) {
	if config == nil {
		config = DefaultProviderConfig()
	}
	if config.Logger == nil {
		config.Logger = logrus.New()
	}

	provider, err := newBaseProvider(ctx, config)
	if err != nil {
		return nil, err
	}

	if config.Breaker {
		return NewBreakerProvider(provider, config.BreakerFailures, config.BreakerTimeout, config.Logger), nil
	}
	return provider, nil
}

func newBaseProvider(ctx context.Context, config *Config) (Provider, error) {
	switch config.Provider {
	case "google", "":
		return NewGoogleProvider(), nil
	case "gtranslate":
		return NewGTranslateProvider(), nil
	case "gcp":
		return NewGCPProvider(ctx, config.APIKey)
	case "gemini":
		if config.APIKey == "" {
			return nil, fmt.Errorf("Gemini API key is required")
		}
		return NewGeminiProvider(ctx, config.APIKey, config.GeminiModel)
	case "libretranslate":
		return NewLibreProvider(config.BaseURL, config.APIKey, config.Logger), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, config.Provider)
	}
}
