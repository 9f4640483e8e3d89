package catalog

import "fmt"

// TableLoadError represents a failure to load one of the reference tables.
// A missing or malformed table is fatal: the analyzer cannot serve any
// request without its static reference data.
type TableLoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *TableLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load reference table %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load reference table %s: %s", e.Path, e.Message)
}

func (e *TableLoadError) Unwrap() error {
	return e.Cause
}
