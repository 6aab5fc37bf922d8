package translation

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"codeberg.org/snonux/goodtranslator/internal/cloud"
	"codeberg.org/snonux/goodtranslator/internal/detect"
	"codeberg.org/snonux/goodtranslator/internal/local"
)

// LanguageDetector identifies the source language for the local model
type LanguageDetector interface {
	Detect(text string) detect.Language
}

// Config selects and configures the backends
type Config struct {
	UseCloud bool
	UseLocal bool

	Cloud  *cloud.Config
	Local  *local.Config
	Detect *detect.Config

	Logger *logrus.Logger
}

// DefaultConfig enables both backends with their default settings
func DefaultConfig() *Config {
	return &Config{
		UseCloud: true,
		UseLocal: true,
		Cloud:    cloud.DefaultProviderConfig(),
		Local:    local.DefaultModelConfig(),
		Detect:   detect.DefaultConfig(),
	}
}

// Translator tries the cloud backend first and falls back to the local
// model. Backends are fixed at construction, so a Translator is safe for
// concurrent use.
type Translator struct {
	cloud    cloud.Provider
	local    local.Model
	detector LanguageDetector
	logger   *logrus.Logger
}

// New builds all enabled backends eagerly
func New(ctx context.Context, config *Config) (*Translator, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if !config.UseCloud && !config.UseLocal {
		return nil, ErrNoBackend
	}

	logger := config.Logger
	if logger == nil {
		logger = logrus.New()
	}

	t := &Translator{logger: logger}
	startTime := time.Now()

	if config.UseCloud {
		stageStart := time.Now()
		cloudConfig := config.Cloud
		if cloudConfig == nil {
			cloudConfig = cloud.DefaultProviderConfig()
		}
		cloudConfig.Logger = logger

		provider, err := cloud.NewProvider(ctx, cloudConfig)
		if err != nil {
			return nil, fmt.Errorf("failed to create cloud backend: %w", err)
		}
		t.cloud = provider
		logger.WithFields(logrus.Fields{
			"backend":     provider.Name(),
			"duration_ms": time.Since(stageStart).Milliseconds(),
		}).Info("Cloud backend initialized")
	}

	if config.UseLocal {
		stageStart := time.Now()
		localConfig := config.Local
		if localConfig == nil {
			localConfig = local.DefaultModelConfig()
		}
		localConfig.Logger = logger

		model, err := local.NewModel(localConfig)
		if err != nil {
			return nil, fmt.Errorf("failed to create local backend: %w", err)
		}
		t.local = model
		logger.WithFields(logrus.Fields{
			"backend":     model.Name(),
			"duration_ms": time.Since(stageStart).Milliseconds(),
		}).Info("Local model initialized")

		detectConfig := config.Detect
		if detectConfig == nil {
			detectConfig = detect.DefaultConfig()
		}
		detectConfig.Logger = logger

		detector, err := detect.New(detectConfig)
		if err != nil {
			return nil, fmt.Errorf("failed to create language detector: %w", err)
		}
		t.detector = detector
	}

	logger.WithField("duration_ms", time.Since(startTime).Milliseconds()).Info("Translator initialized")
	return t, nil
}

// NewWithBackends wires prebuilt backends. A nil provider or model
// disables that tier; a nil model also disables detection.
func NewWithBackends(provider cloud.Provider, model local.Model, detector LanguageDetector, logger *logrus.Logger) (*Translator, error) {
	if provider == nil && model == nil {
		return nil, ErrNoBackend
	}
	if model != nil && detector == nil {
		return nil, fmt.Errorf("local model requires a language detector")
	}
	if logger == nil {
		logger = logrus.New()
	}
	if model == nil {
		detector = nil
	}

	return &Translator{
		cloud:    provider,
		local:    model,
		detector: detector,
		logger:   logger,
	}, nil
}

// CloudEnabled reports whether the cloud tier is configured
func (t *Translator) CloudEnabled() bool {
	return t.cloud != nil
}

// LocalEnabled reports whether the local tier is configured
func (t *Translator) LocalEnabled() bool {
	return t.local != nil
}

// Cloud returns the cloud backend, or nil when disabled
func (t *Translator) Cloud() cloud.Provider {
	return t.cloud
}

// Local returns the local model, or nil when disabled
func (t *Translator) Local() local.Model {
	return t.local
}

// Close releases backends that hold client resources
func (t *Translator) Close() error {
	var errs []error
	for _, backend := range []any{t.cloud, t.local} {
		if c, ok := backend.(io.Closer); ok {
			if err := c.Close(); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

// TranslateViaCloud sends text to the cloud backend
func (t *Translator) TranslateViaCloud(ctx context.Context, text string) (string, error) {
	if t.cloud == nil {
		return "", fmt.Errorf("cloud backend disabled")
	}

	startTime := time.Now()
	out, err := t.cloud.Translate(ctx, text)
	if err == nil {
		out = strings.TrimSpace(out)
		if out == "" {
			err = errEmptyResponse
		}
	}

	fields := logrus.Fields{
		"backend":     t.cloud.Name(),
		"text_length": len(text),
		"duration_ms": time.Since(startTime).Milliseconds(),
	}
	if err != nil {
		t.logger.WithFields(fields).WithError(err).Warn("Cloud translation failed")
		return "", err
	}

	t.logger.WithFields(fields).Debug("Cloud translation completed")
	return out, nil
}

// TranslateViaLocalModel translates text from sourceLang to English on
// the local model. An empty sourceLang is passed through unchanged.
func (t *Translator) TranslateViaLocalModel(ctx context.Context, sourceLang, text string) (string, error) {
	if t.local == nil {
		return "", fmt.Errorf("local backend disabled")
	}

	startTime := time.Now()
	out, err := t.local.Translate(ctx, sourceLang, text)
	if err == nil {
		out = strings.TrimSpace(out)
		if out == "" {
			err = errEmptyResponse
		}
	}

	fields := logrus.Fields{
		"backend":     t.local.Name(),
		"source_lang": sourceLang,
		"text_length": len(text),
		"duration_ms": time.Since(startTime).Milliseconds(),
	}
	if err != nil {
		t.logger.WithFields(fields).WithError(err).Warn("Local translation failed")
		return "", err
	}

	t.logger.WithFields(fields).Debug("Local translation completed")
	return out, nil
}

// Translate returns the first usable translation of text, trying the
// cloud backend before the local model.
func (t *Translator) Translate(ctx context.Context, text string) Result {
	if len(text) == 0 {
		t.logger.Warn("Invalid input: empty text")
		return Result{Err: ErrInvalidInput}
	}

	var errs []error

	if t.cloud != nil {
		out, err := t.TranslateViaCloud(ctx, text)
		if err == nil {
			return Result{Text: out, Backend: BackendCloud}
		}
		errs = append(errs, &BackendError{Backend: BackendCloud, Err: err})
	}

	if t.local != nil {
		lang := t.detector.Detect(text)
		out, err := t.TranslateViaLocalModel(ctx, string(lang), text)
		if err == nil {
			return Result{Text: out, Backend: BackendLocal, Source: lang}
		}
		errs = append(errs, &BackendError{Backend: BackendLocal, Err: err})
	}

	return noResult(errs)
}

// BatchTranslate translates each text in order. It never stops early, so
// the result holds one pair per input.
func (t *Translator) BatchTranslate(ctx context.Context, texts []string) []Pair {
	pairs := make([]Pair, 0, len(texts))
	for _, text := range texts {
		pairs = append(pairs, Pair{Text: text, Result: t.Translate(ctx, text)})
	}
	return pairs
}
