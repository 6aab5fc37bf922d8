package cloud

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const geminiPrompt = "Detect the language of the following text and translate it to English. " +
	"Respond with only the English translation, nothing else.\n\n%s"

// GeminiProvider translates with a Gemini model through the Gemini API.
type GeminiProvider struct {
	client *genai.Client
	model  string
}

// NewGeminiProvider creates a Gemini API client
func NewGeminiProvider(ctx context.Context, apiKey, model string) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	if model == "" {
		model = DefaultProviderConfig().GeminiModel
	}
	return &GeminiProvider{client: client, model: model}, nil
}

// Translate translates text to English
func (p *GeminiProvider) Translate(ctx context.Context, text string) (string, error) {
	resp, err := p.client.Models.GenerateContent(ctx, p.model,
		genai.Text(fmt.Sprintf(geminiPrompt, text)),
		&genai.GenerateContentConfig{Temperature: genai.Ptr[float32](0)},
	)
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}
	return strings.TrimSpace(resp.Text()), nil
}

// Name returns the provider name
func (p *GeminiProvider) Name() string {
	return "gemini"
}

// IsAvailable checks that the configured model exists
func (p *GeminiProvider) IsAvailable(ctx context.Context) error {
	if _, err := p.client.Models.Get(ctx, p.model, nil); err != nil {
		return fmt.Errorf("Gemini model %s unavailable: %w", p.model, err)
	}
	return nil
}
