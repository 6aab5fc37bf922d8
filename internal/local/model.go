package local

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
)

// TargetLanguage is forced on every generation.
const TargetLanguage = "en"

// Model defines the interface for local translation models
type Model interface {
	// Translate translates text from sourceLang to English. An empty
	// sourceLang is passed to the model as is.
	Translate(ctx context.Context, sourceLang, text string) (string, error)

	// Name returns the model backend name
	Name() string

	// IsAvailable checks that the model server is reachable and ready
	IsAvailable(ctx context.Context) error
}

// Config holds configuration for local model backends
type Config struct {
	Engine  string // "m2m", "openai" or "libretranslate"
	BaseURL string
	Model   string // model name served by the engine
	APIKey  string // optional, for servers behind auth
	Logger  *logrus.Logger
}

// DefaultModelConfig returns default configuration
func DefaultModelConfig() *Config {
	return &Config{
		Engine:  "m2m",
		BaseURL: DefaultM2MURL,
		Model:   DefaultM2MModel,
	}
}

// NewModel creates the local model backend based on configuration
func NewModel(config *Config) (Model, error) {
	if config == nil {
		config = DefaultModelConfig()
	}

	switch config.Engine {
	case "m2m", "":
		return NewM2MClient(config.BaseURL, config.Model, config.Logger), nil
	case "openai":
		if config.BaseURL == "" {
			return nil, fmt.Errorf("base URL is required for the openai engine")
		}
		return NewOpenAIModel(config.BaseURL, config.APIKey, config.Model, config.Logger), nil
	case "libretranslate":
		return NewLibreModel(config.BaseURL, config.APIKey, config.Logger), nil
	default:
		return nil, fmt.Errorf("unknown local engine: %s", config.Engine)
	}
}
