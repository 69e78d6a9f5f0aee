package validators

import (
	"errors"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
)

// ValidationError describes one failed rule on one field.
type ValidationError struct {
	Field   string
	Rule    string
	Message string
}

// NewValidationError builds a [ValidationError] with the display message
// registered for the field and rule.
func NewValidationError(field, rule string) ValidationError {
	return ValidationError{
		Field:   field,
		Rule:    rule,
		Message: messageFor(field, rule),
	}
}

func (e ValidationError) Error() string {
	return e.Message
}

// ValidationErrors is an ordered list of failed rules.
type ValidationErrors []ValidationError

// Error joins every message with a single space, in the order the rules
// were checked.
func (e ValidationErrors) Error() string {
	messages := make([]string, 0, len(e))
	for _, v := range e {
		messages = append(messages, v.Message)
	}
	return strings.Join(messages, " ")
}

// Has reports whether a failure for field and rule is present.
func (e ValidationErrors) Has(field, rule string) bool {
	for _, v := range e {
		if v.Field == field && v.Rule == rule {
			return true
		}
	}
	return false
}

// orNil returns nil for an empty list so callers can compare with nil.
func (e ValidationErrors) orNil() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

// AsValidationErrors extracts [ValidationErrors] from err, also accepting a
// single wrapped [ValidationError].
func AsValidationErrors(err error) (ValidationErrors, bool) {
	var list ValidationErrors
	if errors.As(err, &list) {
		return list, true
	}

	var single ValidationError
	if errors.As(err, &single) {
		return ValidationErrors{single}, true
	}

	return nil, false
}
