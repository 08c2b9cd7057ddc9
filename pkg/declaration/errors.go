package declaration

import "errors"

var (
	// ErrEmptyFile is returned for files without content.
	ErrEmptyFile = errors.New("declaration: file is empty")
	// ErrNoForms is returned when a file parses but declares no form.
	ErrNoForms = errors.New("declaration: file declares no forms")
)
