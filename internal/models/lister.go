package models

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// translationFamilies are model families built for machine translation
var translationFamilies = []string{"m2m", "nllb", "opus-mt", "madlad", "seamless"}

// Lister handles listing models of a local model server
type Lister struct {
	baseURL string
	client  *openai.Client
}

// NewLister creates a new model lister for the server at baseURL
func NewLister(baseURL, apiKey string) *Lister {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}

	return &Lister{
		baseURL: baseURL,
		client:  openai.NewClientWithConfig(config),
	}
}

// IsTranslationModel reports whether a model ID belongs to a translation family
func IsTranslationModel(modelID string) bool {
	id := strings.ToLower(modelID)
	for _, family := range translationFamilies {
		if strings.Contains(id, family) {
			return true
		}
	}
	return false
}

// ListAvailableModels writes the served model IDs to w
func (l *Lister) ListAvailableModels(ctx context.Context, w io.Writer) error {
	if l.baseURL == "" {
		return fmt.Errorf("local model server URL not set. Use --local-url or set local.url in .goodtranslator.yaml")
	}

	models, err := l.client.ListModels(ctx)
	if err != nil {
		return fmt.Errorf("failed to list models: %w", err)
	}

	translationModels := []string{}
	otherModels := []string{}

	for _, model := range models.Models {
		if IsTranslationModel(model.ID) {
			translationModels = append(translationModels, model.ID)
		} else {
			otherModels = append(otherModels, model.ID)
		}
	}

	sort.Strings(translationModels)
	sort.Strings(otherModels)

	fmt.Fprintf(w, "Models served by %s:\n", l.baseURL)
	fmt.Fprintln(w, "\nTranslation Models:")
	if len(translationModels) == 0 {
		fmt.Fprintln(w, "  No translation models found")
	}
	for _, model := range translationModels {
		fmt.Fprintf(w, "  %s\n", model)
	}

	fmt.Fprintln(w, "\nGeneral Models (usable with --local-engine openai):")
	if len(otherModels) == 0 {
		fmt.Fprintln(w, "  No other models found")
	}
	for _, model := range otherModels {
		fmt.Fprintf(w, "  %s\n", model)
	}

	return nil
}
