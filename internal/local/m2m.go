package local

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	// DefaultM2MURL is the default base URL of the model server.
	DefaultM2MURL = "http://127.0.0.1:5000"
	// DefaultM2MModel is the model the server is asked to use.
	DefaultM2MModel = "facebook/m2m100_418M"
	// DefaultM2MTimeout covers CPU inference of long inputs.
	DefaultM2MTimeout = 5 * time.Minute
)

// M2MClient talks to a server hosting an M2M100-style seq2seq model.
// The server sets the tokenizer source language from the request and
// forces the target language token on generation.
type M2MClient struct {
	baseURL    string
	model      string
	httpClient *http.Client
	logger     *logrus.Logger
}

// NewM2MClient creates a new model server client
func NewM2MClient(baseURL, model string, logger *logrus.Logger) *M2MClient {
	if baseURL == "" {
		baseURL = DefaultM2MURL
	}
	if model == "" {
		model = DefaultM2MModel
	}
	if logger == nil {
		logger = logrus.New()
	}

	return &M2MClient{
		baseURL: baseURL,
		model:   model,
		httpClient: &http.Client{
			Timeout: DefaultM2MTimeout,
		},
		logger: logger,
	}
}

type m2mRequest struct {
	Text       string `json:"text"`
	SourceLang string `json:"source_lang"`
	TargetLang string `json:"target_lang"`
	Model      string `json:"model"`
}

type m2mResponse struct {
	TranslatedText string `json:"translated_text"`
}

// Translate asks the model server for an English translation
func (c *M2MClient) Translate(ctx context.Context, sourceLang, text string) (string, error) {
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(&m2mRequest{
		Text:       text,
		SourceLang: sourceLang,
		TargetLang: TargetLanguage,
		Model:      c.model,
	}); err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	url := c.baseURL + "/translate"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, buf)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	startTime := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	c.logger.WithFields(logrus.Fields{
		"status_code": resp.StatusCode,
		"source_lang": sourceLang,
		"duration_ms": time.Since(startTime).Milliseconds(),
	}).Debug("Model server request completed")

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var mResp m2mResponse
	if err := json.NewDecoder(resp.Body).Decode(&mResp); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	return strings.TrimSpace(mResp.TranslatedText), nil
}

// Name returns the backend name
func (c *M2MClient) Name() string {
	return "m2m"
}

// IsAvailable checks the server's /health endpoint
func (c *M2MClient) IsAvailable(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return fmt.Errorf("create health check request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check returned status %d", resp.StatusCode)
	}
	return nil
}
