// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators is the single home of every input rule of the blog:
// post title and content, registration fields, login credentials and roles.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//     Supports optional field-level scoping for targeted validation.
//   - ValidationError / ValidationErrors: the structured result. Each failed
//     rule carries the field, the rule name and a display message; several
//     failures join into one display string in rule-declaration order.
//
// The HTML layer never re-encodes these rules. Length limits shown as form
// hints are read from the exported constants.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
