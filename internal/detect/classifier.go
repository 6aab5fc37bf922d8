package detect

import (
	"errors"
	"fmt"
	"strings"

	"github.com/abadojack/whatlanggo"
	"github.com/pemistahl/lingua-go"
	"github.com/sirupsen/logrus"
)

// errNoPrediction is returned by a classifier that could not rank any label.
var errNoPrediction = errors.New("no language predicted")

// Classifier is a language-identification model.
type Classifier interface {
	// Predict returns the top-ranked label for text. Labels are ISO 639-3
	// codes, optionally in fastText form ("__label__fra_Latn").
	Predict(text string) (string, error)

	// Name returns the classifier name
	Name() string
}

// Config holds configuration for the language detector
type Config struct {
	Classifier string   // "lingua" or "whatlanggo"
	Languages  []string // optional ISO 639-1 subset, lingua only
	Logger     *logrus.Logger
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		Classifier: "lingua",
	}
}

// NewClassifier creates the classifier named in config
func NewClassifier(config *Config) (Classifier, error) {
	if config == nil {
		config = DefaultConfig()
	}

	switch config.Classifier {
	case "lingua", "":
		return NewLinguaClassifier(config.Languages)
	case "whatlanggo":
		return NewWhatlangClassifier(), nil
	default:
		return nil, fmt.Errorf("unknown language classifier: %s", config.Classifier)
	}
}

// LinguaClassifier wraps a lingua-go detector with preloaded models.
type LinguaClassifier struct {
	detector lingua.LanguageDetector
}

// NewLinguaClassifier builds a lingua detector for the given ISO 639-1
// codes, or for every language lingua knows when codes is empty.
// Building with preloaded models takes a few seconds.
func NewLinguaClassifier(codes []string) (*LinguaClassifier, error) {
	builder := lingua.NewLanguageDetectorBuilder()

	if len(codes) == 0 {
		return &LinguaClassifier{
			detector: builder.FromAllLanguages().WithPreloadedLanguageModels().Build(),
		}, nil
	}

	languages, err := linguaLanguages(codes)
	if err != nil {
		return nil, err
	}
	if len(languages) < 2 {
		return nil, fmt.Errorf("lingua needs at least two languages, got %d", len(languages))
	}

	return &LinguaClassifier{
		detector: builder.FromLanguages(languages...).WithPreloadedLanguageModels().Build(),
	}, nil
}

// Predict returns the ISO 639-3 code of the most likely language
func (c *LinguaClassifier) Predict(text string) (string, error) {
	language, exists := c.detector.DetectLanguageOf(text)
	if !exists {
		return "", errNoPrediction
	}
	return strings.ToLower(language.IsoCode639_3().String()), nil
}

// Name returns the classifier name
func (c *LinguaClassifier) Name() string {
	return "lingua"
}

func linguaLanguages(codes []string) ([]lingua.Language, error) {
	byCode := make(map[string]lingua.Language)
	for _, l := range lingua.AllLanguages() {
		byCode[strings.ToLower(l.IsoCode639_1().String())] = l
	}

	var languages []lingua.Language
	for _, code := range codes {
		normalized, err := ParseCode(code)
		if err != nil {
			return nil, err
		}
		l, ok := byCode[normalized]
		if !ok {
			return nil, fmt.Errorf("language not supported by lingua: %s", code)
		}
		languages = append(languages, l)
	}
	return languages, nil
}

// WhatlangClassifier uses the whatlanggo trigram model.
type WhatlangClassifier struct{}

// NewWhatlangClassifier creates a whatlanggo classifier
func NewWhatlangClassifier() *WhatlangClassifier {
	return &WhatlangClassifier{}
}

// Predict returns the ISO 639-3 code of the most likely language
func (c *WhatlangClassifier) Predict(text string) (string, error) {
	info := whatlanggo.Detect(text)
	code := info.Lang.Iso6393()
	if code == "" {
		return "", errNoPrediction
	}
	return code, nil
}

// Name returns the classifier name
func (c *WhatlangClassifier) Name() string {
	return "whatlanggo"
}
