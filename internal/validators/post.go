package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-blog/models"
)

// PostValidator implements [Validator] for [models.PostInput].
type PostValidator struct{}

// NewPostValidator constructs a new PostValidator
// and returns it as the Validator interface.
func NewPostValidator() Validator {
	return &PostValidator{}
}

// Validate checks title and content (or only the named fields) of a
// models.PostInput or *models.PostInput. Values are trimmed before their
// length is measured. Every failing field contributes one entry to the
// returned [ValidationErrors]; title is always reported before content.
func (v *PostValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.PostInput:
		return v.validatePostInput(value, fields...)
	case *models.PostInput:
		return v.validatePostInput(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *PostValidator) validatePostInput(in models.PostInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldContent}
	}

	var errs ValidationErrors
	for _, f := range fields {
		switch f {
		case FieldTitle:
			if rule := checkText(in.Title, TitleMaxLength); rule != "" {
				errs = append(errs, NewValidationError(FieldTitle, rule))
			}
		case FieldContent:
			if rule := checkText(in.Content, ContentMaxLength); rule != "" {
				errs = append(errs, NewValidationError(FieldContent, rule))
			}
		default:
			return ErrUnknownField
		}
	}

	return errs.orNil()
}

// checkText returns the first failing rule for a trimmed free-text field,
// or "" when the value is acceptable.
func checkText(s string, maxLength int) string {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return RuleRequired
	case utf8.RuneCountInString(s) > maxLength:
		return RuleMaxLength
	default:
		return ""
	}
}
