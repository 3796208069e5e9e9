package types

import (
	"encoding/json"
	"fmt"

	"github.com/jonathan/resume-docx/internal/schemas"
)

// DecodeError reports a resume payload that is not well-formed JSON or does not
// match the expected shapes.
type DecodeError struct {
	Message string
	Cause   error
}

func (e *DecodeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("decode error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("decode error: %s", e.Message)
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}

// DecodeResume checks raw JSON against the resume schema and decodes it.
// Required-field checks are left to Resume.Validate.
func DecodeResume(data []byte) (*Resume, error) {
	if err := schemas.ValidateResume(data); err != nil {
		return nil, &DecodeError{Message: "resume does not match schema", Cause: err}
	}

	var r Resume
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, &DecodeError{Message: "failed to unmarshal resume JSON", Cause: err}
	}
	return &r, nil
}
