package cloud

import (
	"context"
	"fmt"

	"cloud.google.com/go/translate"
	"golang.org/x/text/language"
	"google.golang.org/api/option"
)

// GCPProvider uses the Google Cloud Translation v2 API. Without an API key
// the client falls back to application default credentials.
type GCPProvider struct {
	client *translate.Client
}

// NewGCPProvider creates a Cloud Translation client
func NewGCPProvider(ctx context.Context, apiKey string) (*GCPProvider, error) {
	var opts []option.ClientOption
	if apiKey != "" {
		opts = append(opts, option.WithAPIKey(apiKey))
	}

	client, err := translate.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create cloud translation client: %w", err)
	}
	return &GCPProvider{client: client}, nil
}

// Translate translates text to English, leaving the source for the API to detect
func (p *GCPProvider) Translate(ctx context.Context, text string) (string, error) {
	resp, err := p.client.Translate(ctx, []string{text}, language.English, &translate.Options{
		Format: translate.Text,
	})
	if err != nil {
		return "", fmt.Errorf("cloud translation API error: %w", err)
	}
	if len(resp) == 0 {
		return "", fmt.Errorf("no translation returned")
	}
	return resp[0].Text, nil
}

// Name returns the provider name
func (p *GCPProvider) Name() string {
	return "gcp"
}

// IsAvailable lists the supported languages as a cheap authenticated call
func (p *GCPProvider) IsAvailable(ctx context.Context) error {
	if _, err := p.client.SupportedLanguages(ctx, language.English); err != nil {
		return fmt.Errorf("cloud translation API unavailable: %w", err)
	}
	return nil
}

// Close releases the underlying client
func (p *GCPProvider) Close() error {
	return p.client.Close()
}
