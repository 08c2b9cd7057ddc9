package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("tui: aborted")
	// ErrNoOption is returned when a select prompt answers with a value that
	// is not one of its options.
	ErrNoOption = errors.New("tui: selection is not an option")
)
