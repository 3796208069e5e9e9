package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/resume-docx/internal/docmodel"
	"github.com/jonathan/resume-docx/internal/schemas"
	"github.com/jonathan/resume-docx/internal/types"
)

// ErrPayloadTooLarge indicates the request body exceeded the upload limit
type ErrPayloadTooLarge struct {
	Limit int64
}

func (e *ErrPayloadTooLarge) Error() string {
	return fmt.Sprintf("request body exceeds %d bytes", e.Limit)
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		tooLarge   *ErrPayloadTooLarge
		validation *ErrValidation
		decode     *types.DecodeError
		invalid    *docmodel.InvalidResumeData
		schema     *schemas.ValidationError
	)
	switch {
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.As(err, &validation),
		errors.As(err, &decode),
		errors.As(err, &invalid),
		errors.As(err, &schema):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// errorDetails returns per-field messages for errors that carry them.
func errorDetails(err error) []map[string]string {
	var schema *schemas.ValidationError
	if errors.As(err, &schema) {
		details := make([]map[string]string, 0, len(schema.Errors))
		for _, fe := range schema.Errors {
			details = append(details, map[string]string{"field": fe.Field, "message": fe.Message})
		}
		return details
	}

	var invalid *docmodel.InvalidResumeData
	if errors.As(err, &invalid) {
		return []map[string]string{{"field": invalid.Path, "message": invalid.Message}}
	}
	return nil
}
