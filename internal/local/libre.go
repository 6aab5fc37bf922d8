package local

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"codeberg.org/snonux/goodtranslator/internal/libretranslate"
)

// LibreModel runs translation on a self-hosted LibreTranslate (Argos models)
// with an explicit source language.
type LibreModel struct {
	client *libretranslate.Client
}

// NewLibreModel creates a LibreTranslate-backed local model
func NewLibreModel(baseURL, apiKey string, logger *logrus.Logger) *LibreModel {
	return &LibreModel{client: libretranslate.NewClient(baseURL, apiKey, logger)}
}

// Translate translates text from sourceLang to English
func (m *LibreModel) Translate(ctx context.Context, sourceLang, text string) (string, error) {
	out, err := m.client.Translate(ctx, text, sourceLang, TargetLanguage)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// Name returns the backend name
func (m *LibreModel) Name() string {
	return "libretranslate"
}

// IsAvailable checks that the server answers
func (m *LibreModel) IsAvailable(ctx context.Context) error {
	return m.client.CheckHealth(ctx)
}
