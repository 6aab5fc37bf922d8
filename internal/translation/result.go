package translation

import (
	"errors"
	"fmt"

	"codeberg.org/snonux/goodtranslator/internal/detect"
)

const (
	// BackendCloud marks a result produced by the cloud backend.
	BackendCloud = "cloud"
	// BackendLocal marks a result produced by the local model.
	BackendLocal = "local"
)

var (
	// ErrInvalidInput is returned for input rejected before any backend runs.
	ErrInvalidInput = errors.New("invalid input: text must not be empty")
	// ErrNoResult is returned when every attempted backend failed.
	ErrNoResult = errors.New("no translation result")
	// ErrNoBackend is returned by New when both backends are disabled.
	ErrNoBackend = errors.New("at least one of the cloud or local backends must be enabled")

	errEmptyResponse = errors.New("empty response")
)

// BackendError records why one backend failed for a text.
type BackendError struct {
	Backend string
	Err     error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("%s backend: %v", e.Backend, e.Err)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

// Result is the outcome of translating one text. It is a success only
// when Err is nil.
type Result struct {
	Text    string
	Backend string
	Source  detect.Language
	Err     error
}

// OK reports whether the result carries a translation
func (r Result) OK() bool {
	return r.Err == nil
}

// Pair couples an input text with its result in batch mode.
type Pair struct {
	Text   string
	Result Result
}

func noResult(errs []error) Result {
	return Result{Err: errors.Join(append([]error{ErrNoResult}, errs...)...)}
}
