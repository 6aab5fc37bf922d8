package batch

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestReadBatchFile(t *testing.T) {
	tests := []struct {
		name        string
		fileContent string
		want        []string
	}{
		{
			name:        "empty file",
			fileContent: "",
			want:        nil,
		},
		{
			name:        "only whitespace",
			fileContent: "   \n\t\r\n   ",
			want:        nil,
		},
		{
			name: "one text per line",
			fileContent: `Bonjour
Guten Abend
こんにちは`,
			want: []string{"Bonjour", "Guten Abend", "こんにちは"},
		},
		{
			name: "empty lines and whitespace",
			fileContent: `
Bonjour

  Hola, ¿qué tal?  

`,
			want: []string{"Bonjour", "Hola, ¿qué tal?"},
		},
		{
			name:        "windows line endings",
			fileContent: "Ciao\r\nHallo\r\n",
			want:        []string{"Ciao", "Hallo"},
		},
		{
			name:        "equals sign is part of the text",
			fileContent: "a = b\n",
			want:        []string{"a = b"},
		},
		{
			name:        "duplicates are kept",
			fileContent: "Hallo\nHallo\n",
			want:        []string{"Hallo", "Hallo"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpFile := filepath.Join(t.TempDir(), "batch.txt")
			if err := os.WriteFile(tmpFile, []byte(tt.fileContent), 0644); err != nil {
				t.Fatalf("Failed to create test file: %v", err)
			}

			got, err := ReadBatchFile(tmpFile)
			if err != nil {
				t.Fatalf("ReadBatchFile() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ReadBatchFile() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReadBatchFile_NotFound(t *testing.T) {
	_, err := ReadBatchFile("/nonexistent/batch.txt")
	if err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestReadBatch_LongLine(t *testing.T) {
	long := strings.Repeat("x", 200*1024)

	got, err := ReadBatch(strings.NewReader(long + "\n"))
	if err != nil {
		t.Fatalf("ReadBatch() error = %v", err)
	}
	if len(got) != 1 || got[0] != long {
		t.Errorf("Expected one %d byte text, got %d texts", len(long), len(got))
	}
}

func TestReadBatch_TooLong(t *testing.T) {
	_, err := ReadBatch(strings.NewReader(strings.Repeat("x", maxLineSize+1)))
	if err == nil {
		t.Error("Expected error for oversized line")
	}
}
