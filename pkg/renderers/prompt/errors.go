package prompt

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("prompt: aborted")
	// ErrSubmitFailed wraps a submitter failure reported by the session.
	ErrSubmitFailed = errors.New("prompt: submit failed")
)
