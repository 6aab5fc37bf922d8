package cli

import (
	"reflect"
	"testing"
)

func TestNewFlags(t *testing.T) {
	flags := NewFlags()

	// Test default values
	tests := []struct {
		name     string
		got      interface{}
		expected interface{}
	}{
		{"LogLevel", flags.LogLevel, "info"},
		{"CloudProvider", flags.CloudProvider, "google"},
		{"GeminiModel", flags.GeminiModel, "gemini-2.0-flash"},
		{"LocalEngine", flags.LocalEngine, "m2m"},
		{"Detector", flags.Detector, "lingua"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !reflect.DeepEqual(tt.got, tt.expected) {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.expected)
			}
		})
	}

	// Test boolean defaults (should be false)
	boolTests := []struct {
		name  string
		value bool
	}{
		{"Check", flags.Check},
		{"ListModels", flags.ListModels},
		{"NoCloud", flags.NoCloud},
		{"NoLocal", flags.NoLocal},
		{"CloudBreaker", flags.CloudBreaker},
	}

	for _, tt := range boolTests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != false {
				t.Errorf("%s = %v, want false", tt.name, tt.value)
			}
		})
	}

	// Test string defaults (should be empty)
	stringTests := []struct {
		name  string
		value string
	}{
		{"CfgFile", flags.CfgFile},
		{"BatchFile", flags.BatchFile},
		{"OutputFile", flags.OutputFile},
		{"DBPath", flags.DBPath},
		{"CloudURL", flags.CloudURL},
		{"GCPKey", flags.GCPKey},
		{"LocalURL", flags.LocalURL},
		{"LocalModel", flags.LocalModel},
	}

	for _, tt := range stringTests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				t.Errorf("%s = %q, want empty string", tt.name, tt.value)
			}
		})
	}
}
