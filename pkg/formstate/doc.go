// Package formstate implements the profile form controller.
//
// State is an owned value; SetField, AddTag, RemoveTag, BeginSubmit and
// CompleteSubmit are pure functions that return an updated copy. Front ends
// with a single event loop (the bubbletea form) drive these functions directly.
// Session wraps a State for callers that need shared ownership, such as HTTP
// handlers, and runs the Submitter off the caller's goroutine.
//
// Submission moves through Idle, Validating, Submitting and Submitted. A failed
// validation returns to Idle with per-field messages. A valid form stages a
// snapshot of the validated values and committed tags; the snapshot is
// published once the Submitter returns. Pending tag text satisfies the tech
// stack rule but is never copied into the snapshot.
package formstate
