package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-blog/models"
)

// UserValidator implements [Validator] for the account-related inputs:
// [models.Registration], [models.Credentials] and [models.Role].
type UserValidator struct{}

// NewUserValidator constructs a new UserValidator
// and returns it as the Validator interface.
func NewUserValidator() Validator {
	return &UserValidator{}
}

// Validate dispatches on the dynamic type of obj. Both value and pointer
// forms are accepted.
//
// Supported types:
//   - models.Registration: username, password, confirm_password
//   - models.Credentials: both fields present
//   - models.Role: one of the known roles
//
// Returns ErrUnsupportedType for anything else and ErrUnknownField when a
// requested field does not apply to the type.
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Registration:
		return v.validateRegistration(value, fields...)
	case *models.Registration:
		return v.validateRegistration(*value, fields...)

	case models.Credentials:
		return v.validateCredentials(value)
	case *models.Credentials:
		return v.validateCredentials(*value)

	case models.Role:
		return v.validateRole(value)
	case *models.Role:
		return v.validateRole(*value)

	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateRegistration(reg models.Registration, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword, FieldConfirmPassword}
	}

	var errs ValidationErrors
	for _, f := range fields {
		var rule string
		switch f {
		case FieldUsername:
			rule = checkUsername(strings.TrimSpace(reg.Username))
		case FieldPassword:
			rule = checkPassword(reg.Password)
		case FieldConfirmPassword:
			switch {
			case reg.ConfirmPassword == "":
				rule = RuleRequired
			case reg.ConfirmPassword != reg.Password:
				rule = RuleMismatch
			}
		default:
			return ErrUnknownField
		}

		if rule != "" {
			errs = append(errs, NewValidationError(f, rule))
		}
	}

	return errs.orNil()
}

func (v *UserValidator) validateCredentials(c models.Credentials) error {
	if strings.TrimSpace(c.Username) == "" || c.Password == "" {
		return ValidationErrors{NewValidationError(FieldCredentials, RuleRequired)}
	}
	return nil
}

func (v *UserValidator) validateRole(r models.Role) error {
	if !r.IsValid() {
		return ValidationErrors{NewValidationError(FieldRole, RuleInvalid)}
	}
	return nil
}

func checkUsername(username string) string {
	n := utf8.RuneCountInString(username)
	switch {
	case username == "":
		return RuleRequired
	case n < UsernameMinLength:
		return RuleMinLength
	case n > UsernameMaxLength:
		return RuleMaxLength
	case !usernamePattern.MatchString(username):
		return RulePattern
	default:
		return ""
	}
}

func checkPassword(password string) string {
	n := utf8.RuneCountInString(password)
	switch {
	case password == "":
		return RuleRequired
	case n < PasswordMinLength:
		return RuleMinLength
	case n > PasswordMaxLength:
		return RuleMaxLength
	default:
		return ""
	}
}
