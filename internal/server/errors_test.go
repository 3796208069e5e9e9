package server

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jonathan/resume-docx/internal/docmodel"
	"github.com/jonathan/resume-docx/internal/schemas"
	"github.com/jonathan/resume-docx/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	schemaErr := &schemas.ValidationError{Errors: []schemas.FieldError{{Field: "name", Message: "Invalid type"}}}

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "payload too large", err: &ErrPayloadTooLarge{Limit: 10}, want: http.StatusRequestEntityTooLarge},
		{name: "request validation", err: &ErrValidation{Field: "file", Message: "missing"}, want: http.StatusBadRequest},
		{name: "decode error", err: &types.DecodeError{Message: "bad", Cause: schemaErr}, want: http.StatusBadRequest},
		{name: "schema error", err: schemaErr, want: http.StatusBadRequest},
		{name: "invalid resume data", err: &docmodel.InvalidResumeData{Path: "name", Message: "is required"}, want: http.StatusBadRequest},
		{name: "wrapped invalid resume data", err: fmt.Errorf("build: %w", &docmodel.InvalidResumeData{Path: "name"}), want: http.StatusBadRequest},
		{name: "unknown error", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "request body exceeds 1024 bytes", (&ErrPayloadTooLarge{Limit: 1024}).Error())
	assert.Equal(t, "validation error: file - missing", (&ErrValidation{Field: "file", Message: "missing"}).Error())
}

func TestErrorDetails(t *testing.T) {
	decodeErr := &types.DecodeError{
		Message: "resume does not match schema",
		Cause: &schemas.ValidationError{Errors: []schemas.FieldError{
			{Field: "sections.0.content", Message: "Invalid type. Expected: array, given: string"},
		}},
	}
	assert.Equal(t, []map[string]string{
		{"field": "sections.0.content", "message": "Invalid type. Expected: array, given: string"},
	}, errorDetails(decodeErr))

	invalid := &docmodel.InvalidResumeData{Path: "sections[1].content[0].label", Message: "is required"}
	assert.Equal(t, []map[string]string{
		{"field": "sections[1].content[0].label", "message": "is required"},
	}, errorDetails(invalid))

	assert.Nil(t, errorDetails(errors.New("boom")))
}
