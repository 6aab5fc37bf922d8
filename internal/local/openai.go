package local

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// OpenAIModel uses an OpenAI-compatible server (llama.cpp, vLLM, Ollama)
// running a local model.
type OpenAIModel struct {
	client *openai.Client
	model  string
	logger *logrus.Logger
}

// NewOpenAIModel creates a client for an OpenAI-compatible local server
func NewOpenAIModel(baseURL, apiKey, model string, logger *logrus.Logger) *OpenAIModel {
	if logger == nil {
		logger = logrus.New()
	}

	config := openai.DefaultConfig(apiKey)
	config.BaseURL = baseURL

	return &OpenAIModel{
		client: openai.NewClientWithConfig(config),
		model:  model,
		logger: logger,
	}
}

// Translate translates text from sourceLang to English
func (m *OpenAIModel) Translate(ctx context.Context, sourceLang, text string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: m.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You are a translation engine. Respond with only the English translation, nothing else.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: translationPrompt(sourceLang, text),
			},
		},
		Temperature: 0,
	}

	resp, err := m.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("local model API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no translation returned")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// Name returns the backend name
func (m *OpenAIModel) Name() string {
	return "openai"
}

// IsAvailable checks that the server lists the configured model
func (m *OpenAIModel) IsAvailable(ctx context.Context) error {
	models, err := m.client.ListModels(ctx)
	if err != nil {
		return fmt.Errorf("failed to list models: %w", err)
	}
	for _, model := range models.Models {
		if model.ID == m.model {
			return nil
		}
	}
	return fmt.Errorf("model %s not served", m.model)
}

// translationPrompt names the source language when it is known
func translationPrompt(sourceLang, text string) string {
	if sourceLang == "" {
		return fmt.Sprintf("Translate the following text to English:\n\n%s", text)
	}
	return fmt.Sprintf("Translate the following %s text to English:\n\n%s", languageName(sourceLang), text)
}

func languageName(code string) string {
	tag, err := language.Parse(code)
	if err != nil {
		return code
	}
	if name := display.English.Languages().Name(tag); name != "" {
		return name
	}
	return code
}
