package cloud

import (
	"context"
	"fmt"

	googletranslatefree "github.com/bas24/googletranslatefree"
	"github.com/bregydoc/gtranslate"
)

// GoogleProvider uses the free Google Translate web endpoint.
type GoogleProvider struct {
	translate func(text, from, to string) (string, error)
}

// NewGoogleProvider creates a provider backed by googletranslatefree
func NewGoogleProvider() *GoogleProvider {
	return &GoogleProvider{translate: googletranslatefree.Translate}
}

// Translate translates text to English
func (p *GoogleProvider) Translate(ctx context.Context, text string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	out, err := p.translate(text, "auto", TargetLanguage)
	if err != nil {
		return "", fmt.Errorf("google translate: %w", err)
	}
	return out, nil
}

// Name returns the provider name
func (p *GoogleProvider) Name() string {
	return "google"
}

// IsAvailable always succeeds, the endpoint needs no credentials and
// probing it would count against the rate limit.
func (p *GoogleProvider) IsAvailable(ctx context.Context) error {
	return nil
}

// GTranslateProvider uses the gtranslate client for the same endpoint.
type GTranslateProvider struct {
	translate func(text string, params gtranslate.TranslationParams) (string, error)
}

// NewGTranslateProvider creates a provider backed by gtranslate
func NewGTranslateProvider() *GTranslateProvider {
	return &GTranslateProvider{translate: gtranslate.TranslateWithParams}
}

// Translate translates text to English
func (p *GTranslateProvider) Translate(ctx context.Context, text string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	out, err := p.translate(text, gtranslate.TranslationParams{
		From: "auto",
		To:   TargetLanguage,
	})
	if err != nil {
		return "", fmt.Errorf("gtranslate: %w", err)
	}
	return out, nil
}

// Name returns the provider name
func (p *GTranslateProvider) Name() string {
	return "gtranslate"
}

// IsAvailable always succeeds, see GoogleProvider.IsAvailable
func (p *GTranslateProvider) IsAvailable(ctx context.Context) error {
	return nil
}
