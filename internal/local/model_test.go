package local

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultModelConfig(t *testing.T) {
	config := DefaultModelConfig()

	assert.Equal(t, "m2m", config.Engine)
	assert.Equal(t, DefaultM2MURL, config.BaseURL)
	assert.Equal(t, "facebook/m2m100_418M", config.Model)
}

func TestNewModel(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		wantName string
		wantErr  string
	}{
		{name: "nil config uses m2m", config: nil, wantName: "m2m"},
		{name: "openai", config: &Config{Engine: "openai", BaseURL: "http://localhost:8080/v1", Model: "qwen2.5"}, wantName: "openai"},
		{name: "libretranslate", config: &Config{Engine: "libretranslate"}, wantName: "libretranslate"},
		{name: "openai without url", config: &Config{Engine: "openai"}, wantErr: "base URL is required for the openai engine"},
		{name: "unknown engine", config: &Config{Engine: "marian"}, wantErr: "unknown local engine: marian"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewModel(tt.config)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, m.Name())
		})
	}
}
