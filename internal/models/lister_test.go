package models

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestNewLister(t *testing.T) {
	lister := NewLister("http://localhost:8080/v1", "")

	if lister == nil {
		t.Fatal("NewLister returned nil")
	}

	if lister.client == nil {
		t.Error("OpenAI client not initialized")
	}
}

func TestListAvailableModels_NoURL(t *testing.T) {
	lister := NewLister("", "")

	err := lister.ListAvailableModels(context.Background(), &bytes.Buffer{})
	if err == nil {
		t.Fatal("Expected error for missing server URL")
	}

	expectedError := "local model server URL not set. Use --local-url or set local.url in .goodtranslator.yaml"
	if err.Error() != expectedError {
		t.Errorf("Expected error '%s', got: %v", expectedError, err)
	}
}

func TestListAvailableModels(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/models" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(`{"object":"list","data":[
			{"id":"qwen2.5-7b","object":"model"},
			{"id":"facebook/nllb-200-distilled-600M","object":"model"},
			{"id":"facebook/m2m100_418M","object":"model"}
		]}`))
	}))
	defer srv.Close()

	var buf bytes.Buffer
	lister := NewLister(srv.URL+"/v1", "")
	if err := lister.ListAvailableModels(context.Background(), &buf); err != nil {
		t.Fatalf("ListAvailableModels failed: %v", err)
	}

	out := buf.String()
	m2m := strings.Index(out, "facebook/m2m100_418M")
	nllb := strings.Index(out, "facebook/nllb-200-distilled-600M")
	qwen := strings.Index(out, "qwen2.5-7b")
	if m2m < 0 || nllb < 0 || qwen < 0 {
		t.Fatalf("Missing models in output:\n%s", out)
	}
	if !(m2m < nllb && nllb < qwen) {
		t.Errorf("Expected translation models sorted first, got:\n%s", out)
	}
}

func TestListAvailableModels_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	lister := NewLister(srv.URL+"/v1", "")
	if err := lister.ListAvailableModels(context.Background(), &bytes.Buffer{}); err == nil {
		t.Error("Expected error from failing server")
	}
}

func TestIsTranslationModel(t *testing.T) {
	tests := map[string]bool{
		"facebook/m2m100_1.2B":       true,
		"Helsinki-NLP/opus-mt-de-en": true,
		"google/madlad400-3b-mt":     true,
		"facebook/seamless-m4t-v2":   true,
		"llama-3.1-8b-instruct":      false,
	}

	for id, want := range tests {
		if got := IsTranslationModel(id); got != want {
			t.Errorf("IsTranslationModel(%q) = %v, want %v", id, got, want)
		}
	}
}
