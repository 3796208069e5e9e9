package docmodel

import "fmt"

// InvalidResumeData reports a required field that is missing or malformed,
// either at the top level or inside a section entry.
type InvalidResumeData struct {
	Path    string
	Message string
	Cause   error
}

func (e *InvalidResumeData) Error() string {
	return fmt.Sprintf("invalid resume data: %s: %s", e.Path, e.Message)
}

func (e *InvalidResumeData) Unwrap() error {
	return e.Cause
}
