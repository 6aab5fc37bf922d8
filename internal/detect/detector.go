package detect

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// Language is a short language code as understood by the local model.
type Language string

// Unknown is returned when detection fails.
const Unknown Language = ""

// String returns the code, or "unknown"
func (l Language) String() string {
	if l == Unknown {
		return "unknown"
	}
	return string(l)
}

// Detector identifies the language of a text. It never fails: any
// classifier error or unmapped label yields Unknown.
type Detector struct {
	classifier Classifier
	logger     *logrus.Logger
}

// New loads the configured classifier eagerly
func New(config *Config) (*Detector, error) {
	if config == nil {
		config = DefaultConfig()
	}
	logger := config.Logger
	if logger == nil {
		logger = logrus.New()
	}

	start := time.Now()
	classifier, err := NewClassifier(config)
	if err != nil {
		return nil, err
	}

	logger.WithFields(logrus.Fields{
		"classifier":  classifier.Name(),
		"duration_ms": time.Since(start).Milliseconds(),
	}).Info("Language detection model loaded")

	return NewWithClassifier(classifier, logger), nil
}

// NewWithClassifier creates a detector around an existing classifier
func NewWithClassifier(classifier Classifier, logger *logrus.Logger) *Detector {
	if logger == nil {
		logger = logrus.New()
	}
	return &Detector{
		classifier: classifier,
		logger:     logger,
	}
}

// Detect returns the language of text, or Unknown
func (d *Detector) Detect(text string) (lang Language) {
	defer func() {
		if r := recover(); r != nil {
			d.logFailure(text, fmt.Errorf("classifier panic: %v", r))
			lang = Unknown
		}
	}()

	label, err := d.classifier.Predict(text)
	if err != nil {
		d.logFailure(text, err)
		return Unknown
	}

	code, ok := CodeForLabel(label)
	if !ok {
		d.logFailure(text, fmt.Errorf("no language code for label %q", label))
		return Unknown
	}

	d.logger.WithFields(logrus.Fields{
		"classifier": d.classifier.Name(),
		"label":      label,
		"language":   code,
	}).Debug("Language detected")

	return Language(code)
}

func (d *Detector) logFailure(text string, err error) {
	d.logger.WithError(err).WithFields(logrus.Fields{
		"classifier":  d.classifier.Name(),
		"text_length": len(text),
	}).Warn("Unable to detect language")
}
