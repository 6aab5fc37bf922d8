package translation

import (
	"fmt"
	"os"
	"strings"
)

// NoResultMarker is written in place of a translation that failed.
const NoResultMarker = "<no result>"

// FormatPair renders a pair as "text = translation"
func FormatPair(p Pair) string {
	if !p.Result.OK() {
		return fmt.Sprintf("%s = %s", p.Text, NoResultMarker)
	}
	return fmt.Sprintf("%s = %s", p.Text, p.Result.Text)
}

// SaveResults writes one line per pair to path
func SaveResults(path string, pairs []Pair) error {
	var sb strings.Builder
	for _, p := range pairs {
		sb.WriteString(FormatPair(p))
		sb.WriteString("\n")
	}

	if err := os.WriteFile(path, []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("failed to write results file: %w", err)
	}

	return nil
}
