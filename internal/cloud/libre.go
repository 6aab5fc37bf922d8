package cloud

import (
	"context"

	"github.com/sirupsen/logrus"

	"codeberg.org/snonux/goodtranslator/internal/libretranslate"
)

// LibreProvider uses a LibreTranslate server with source auto-detection.
type LibreProvider struct {
	client *libretranslate.Client
}

// NewLibreProvider creates a LibreTranslate-backed provider
func NewLibreProvider(baseURL, apiKey string, logger *logrus.Logger) *LibreProvider {
	return &LibreProvider{client: libretranslate.NewClient(baseURL, apiKey, logger)}
}

// Translate translates text to English
func (p *LibreProvider) Translate(ctx context.Context, text string) (string, error) {
	return p.client.Translate(ctx, text, libretranslate.AutoSource, TargetLanguage)
}

// Name returns the provider name
func (p *LibreProvider) Name() string {
	return "libretranslate"
}

// IsAvailable checks that the server answers
func (p *LibreProvider) IsAvailable(ctx context.Context) error {
	return p.client.CheckHealth(ctx)
}
