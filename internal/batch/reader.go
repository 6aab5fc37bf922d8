package batch

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// StdinPath makes ReadBatchFile read from standard input.
const StdinPath = "-"

// maxLineSize bounds a single text; long paragraphs are fine.
const maxLineSize = 1024 * 1024

// ReadBatch reads one text per line. Surrounding whitespace is trimmed
// and blank lines are skipped.
func ReadBatch(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var texts []string
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			texts = append(texts, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read batch input: %w", err)
	}

	return texts, nil
}

// ReadBatchFile reads texts from filename, or from stdin for "-"
func ReadBatchFile(filename string) ([]string, error) {
	if filename == StdinPath {
		return ReadBatch(os.Stdin)
	}

	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}
	defer f.Close()

	return ReadBatch(f)
}
