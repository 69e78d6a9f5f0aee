package validators

import (
	"fmt"
	"regexp"
)

// Field names used for scoping and reported in [ValidationError.Field].
const (
	FieldTitle           = "title"
	FieldContent         = "content"
	FieldUsername        = "username"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirm_password"
	FieldCredentials     = "credentials"
	FieldRole            = "role"
)

// Rule names reported in [ValidationError.Rule].
const (
	RuleRequired  = "required"
	RuleMinLength = "min_length"
	RuleMaxLength = "max_length"
	RulePattern   = "pattern"
	RuleMismatch  = "mismatch"
	RuleTaken     = "taken"
	RuleInvalid   = "invalid"
	RuleSelf      = "self"
)

// Length limits, counted in characters after trimming where trimming applies.
const (
	TitleMaxLength    = 255
	ContentMaxLength  = 65535
	UsernameMinLength = 3
	UsernameMaxLength = 50
	PasswordMinLength = 6
	PasswordMaxLength = 255
)

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

type ruleKey struct {
	field string
	rule  string
}

var messages = map[ruleKey]string{
	{FieldTitle, RuleRequired}:  "Title is required.",
	{FieldTitle, RuleMaxLength}: fmt.Sprintf("Title must be at most %d characters.", TitleMaxLength),

	{FieldContent, RuleRequired}:  "Content is required.",
	{FieldContent, RuleMaxLength}: "Content is too long.",

	{FieldUsername, RuleRequired}:  "Username is required.",
	{FieldUsername, RuleMinLength}: fmt.Sprintf("Username must be at least %d characters long.", UsernameMinLength),
	{FieldUsername, RuleMaxLength}: fmt.Sprintf("Username must be at most %d characters.", UsernameMaxLength),
	{FieldUsername, RulePattern}:   "Username can only contain letters, numbers, and underscores.",
	{FieldUsername, RuleTaken}:     "Username already taken.",

	{FieldPassword, RuleRequired}:  "Password is required.",
	{FieldPassword, RuleMinLength}: fmt.Sprintf("Password must be at least %d characters long.", PasswordMinLength),
	{FieldPassword, RuleMaxLength}: "Password is too long.",

	{FieldConfirmPassword, RuleRequired}: "Please confirm your password.",
	{FieldConfirmPassword, RuleMismatch}: "Password confirmation does not match.",

	{FieldCredentials, RuleRequired}: "Both username and password are required.",

	{FieldRole, RuleInvalid}: "Invalid role selected.",
	{FieldRole, RuleSelf}:    "You cannot change your own role.",
}

func messageFor(field, rule string) string {
	if msg, ok := messages[ruleKey{field, rule}]; ok {
		return msg
	}
	return fmt.Sprintf("%s: %s", field, rule)
}
