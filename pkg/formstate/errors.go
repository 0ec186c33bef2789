package formstate

import "errors"

var (
	// ErrUnknownField is returned by SetField for names outside the catalogue.
	ErrUnknownField = errors.New("formstate: unknown field")
	// ErrTagIndex signals a RemoveTag call with an out-of-range index.
	ErrTagIndex = errors.New("formstate: tag index out of range")
	// ErrSubmitInProgress rejects re-entrant submissions.
	ErrSubmitInProgress = errors.New("formstate: submission in progress")
	// ErrNotSubmitting is returned when completing a submission that was never
	// started.
	ErrNotSubmitting = errors.New("formstate: no submission in progress")
)
