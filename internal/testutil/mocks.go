package testutil

import (
	"context"
	"fmt"
	"sync"

	"codeberg.org/snonux/goodtranslator/internal/detect"
)

// MockCloudProvider mocks a cloud translation backend
type MockCloudProvider struct {
	Translations map[string]string
	Errors       map[string]error
	Unavailable  error
	CloseErr     error

	mu     sync.Mutex
	Calls  []string
	Closed bool
}

// Close records the call and returns CloseErr
func (m *MockCloudProvider) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Closed = true
	return m.CloseErr
}

// Translate returns the configured translation, or an echo of the text
func (m *MockCloudProvider) Translate(ctx context.Context, text string) (string, error) {
	m.record(fmt.Sprintf("Cloud: %s", text))

	if err, ok := m.Errors[text]; ok {
		return "", err
	}
	if translation, ok := m.Translations[text]; ok {
		return translation, nil
	}
	return fmt.Sprintf("cloud translation of %s", text), nil
}

// Name returns the mock name
func (m *MockCloudProvider) Name() string {
	return "mock-cloud"
}

// IsAvailable returns Unavailable
func (m *MockCloudProvider) IsAvailable(ctx context.Context) error {
	return m.Unavailable
}

// CallCount returns the number of Translate calls
func (m *MockCloudProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

func (m *MockCloudProvider) record(call string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, call)
}

// MockLocalModel mocks a local seq2seq model. Translations and Errors
// are keyed by "lang:text".
type MockLocalModel struct {
	Translations map[string]string
	Errors       map[string]error
	Unavailable  error

	mu    sync.Mutex
	Calls []string
}

// Translate returns the configured translation, or one naming the source language
func (m *MockLocalModel) Translate(ctx context.Context, sourceLang, text string) (string, error) {
	key := sourceLang + ":" + text
	m.mu.Lock()
	m.Calls = append(m.Calls, key)
	m.mu.Unlock()

	if err, ok := m.Errors[key]; ok {
		return "", err
	}
	if translation, ok := m.Translations[key]; ok {
		return translation, nil
	}
	return fmt.Sprintf("local translation of %s from %q", text, sourceLang), nil
}

// Name returns the mock name
func (m *MockLocalModel) Name() string {
	return "mock-local"
}

// IsAvailable returns Unavailable
func (m *MockLocalModel) IsAvailable(ctx context.Context) error {
	return m.Unavailable
}

// CallCount returns the number of Translate calls
func (m *MockLocalModel) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// MockDetector returns fixed languages per text
type MockDetector struct {
	Languages map[string]detect.Language

	mu    sync.Mutex
	Calls []string
}

// Detect returns the configured language, or Unknown
func (m *MockDetector) Detect(text string) detect.Language {
	m.mu.Lock()
	m.Calls = append(m.Calls, text)
	m.mu.Unlock()

	return m.Languages[text]
}

// CallCount returns the number of Detect calls
func (m *MockDetector) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
