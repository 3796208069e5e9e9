package types

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report field paths with their wire names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	return v
}

// FieldError names the first missing or malformed field of a resume record.
type FieldError struct {
	Path    string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// Validate checks required fields at the top level and inside every entry of
// the known section types. Presence only, no cross-field checks. Unknown
// section types are not validated.
func (r *Resume) Validate() error {
	if r == nil {
		return &FieldError{Path: "(root)", Message: "resume is missing"}
	}
	if err := validate.Struct(r); err != nil {
		return toFieldError("", err)
	}

	for i, s := range r.Sections {
		prefix := fmt.Sprintf("sections[%d].content", i)
		var err error
		switch c := s.Content.(type) {
		case SkillsContent:
			err = validateEntries(prefix, c)
		case ExperienceContent:
			err = validateEntries(prefix, c)
		case EducationContent:
			err = validateEntries(prefix, c)
		case CertificationsContent:
			err = validateEntries(prefix, c)
		case ProjectsContent:
			err = validateEntries(prefix, c)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func validateEntries[E any](prefix string, entries []E) error {
	for j, entry := range entries {
		if err := validate.Struct(entry); err != nil {
			return toFieldError(fmt.Sprintf("%s[%d]", prefix, j), err)
		}
	}
	return nil
}

// toFieldError converts the first validator failure into a FieldError rooted at prefix.
func toFieldError(prefix string, err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return &FieldError{Path: orRoot(prefix), Message: err.Error()}
	}
	fe := verrs[0]

	// Namespace is "Resume.contact.items"; drop the struct name.
	path := fe.Namespace()
	if idx := strings.Index(path, "."); idx >= 0 {
		path = path[idx+1:]
	}
	if prefix != "" {
		path = prefix + "." + path
	}
	return &FieldError{Path: path, Message: describe(fe)}
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must contain at least %s item(s)", fe.Param())
	default:
		return fmt.Sprintf("failed %q check", fe.Tag())
	}
}

func orRoot(path string) string {
	if path == "" {
		return "(root)"
	}
	return path
}
