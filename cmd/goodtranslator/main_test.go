package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/spf13/viper"

	"codeberg.org/snonux/goodtranslator/internal/cli"
	"codeberg.org/snonux/goodtranslator/internal/testutil"
	"codeberg.org/snonux/goodtranslator/internal/translation"
)

// Local-only flags pointing at a closed port, so every translation fails
// without touching the network.
var unreachableLocal = []string{
	"--no-cloud",
	"--detector", "whatlanggo",
	"--local-url", "http://127.0.0.1:1",
	"--log-level", "error",
}

func executeRoot(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)

	cmd := newRootCommand(cli.NewFlags())
	cmd.SetArgs(args)

	stdout, stderr = testutil.CaptureOutput(t, func() {
		err = cmd.Execute()
	})
	return stdout, stderr, err
}

func TestRunCommand_FailedTextReportsErrorOnce(t *testing.T) {
	stdout, stderr, err := executeRoot(t, append(unreachableLocal, "Bonjour tout le monde")...)

	if !errors.Is(err, translation.ErrNoResult) {
		t.Fatalf("Expected ErrNoResult, got %v", err)
	}
	if stdout != "<no result>\n" {
		t.Errorf("Expected no-result marker on stdout, got %q", stdout)
	}
	if n := strings.Count(stderr, "Error:"); n != 1 {
		t.Errorf("Expected one error line, got %d:\n%s", n, stderr)
	}
	if strings.Contains(stderr, "Usage:") {
		t.Errorf("Usage printed for a failed translation:\n%s", stderr)
	}
}

func TestRunCommand_FailedCheckReportsErrorOnce(t *testing.T) {
	stdout, stderr, err := executeRoot(t, append(unreachableLocal, "--check")...)

	if err == nil || err.Error() != "1 of 1 backends unavailable" {
		t.Fatalf("Expected one unavailable backend, got %v", err)
	}
	if !strings.Contains(stdout, "✗ m2m") {
		t.Errorf("Expected failed backend in check output, got %q", stdout)
	}
	if n := strings.Count(stderr, "Error:"); n != 1 {
		t.Errorf("Expected one error line, got %d:\n%s", n, stderr)
	}
	if strings.Contains(stderr, "Usage:") {
		t.Errorf("Usage printed for a failed check:\n%s", stderr)
	}
}

func TestRunCommand_UnknownFlagReportsErrorOnce(t *testing.T) {
	_, stderr, err := executeRoot(t, "--no-such-flag")

	if err == nil {
		t.Fatal("Expected error for unknown flag")
	}
	if n := strings.Count(stderr, "Error:"); n != 1 {
		t.Errorf("Expected one error line, got %d:\n%s", n, stderr)
	}
}

func TestNewLogger_InvalidLevel(t *testing.T) {
	if _, err := newLogger("chatty"); err == nil {
		t.Error("Expected error for invalid log level")
	}
}
