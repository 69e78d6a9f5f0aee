package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/internal/validators"
)

// Messages shown to the user. Internal error detail never reaches a page.
const (
	msgSomethingWentWrong = "Something went wrong. Please try again."
	msgUserNotFound       = "User not found."
	msgIncorrectPassword  = "Incorrect password."
	msgPostNotFound       = "Post not found"
	msgTargetNotFound     = "User not found"
	msgAccessDenied       = "Access Denied: Insufficient permissions"

	msgRegistered  = "Registration successful! Please login."
	msgPostCreated = "Post created successfully"
	msgPostUpdated = "Post updated successfully"
	msgPostDeleted = "Post deleted successfully"
	msgRoleUpdated = "User role updated successfully."
)

type errorMapping struct {
	target  error
	status  int
	message string
}

// errorMappings is checked in order; the first match wins.
var errorMappings = []errorMapping{
	{service.ErrUserNotFound, http.StatusUnauthorized, msgUserNotFound},
	{service.ErrWrongPassword, http.StatusUnauthorized, msgIncorrectPassword},
	{service.ErrUnauthorized, http.StatusForbidden, msgAccessDenied},
	{service.ErrNotFound, http.StatusNotFound, msgSomethingWentWrong},
}

// statusFromError returns the status a re-rendered form answers with.
func statusFromError(err error) int {
	if _, ok := validators.AsValidationErrors(err); ok {
		return http.StatusUnprocessableEntity
	}
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			return m.status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError turns err into the text shown on a page.
func messageFromError(err error) string {
	if errs, ok := validators.AsValidationErrors(err); ok {
		return errs.Error()
	}
	var notFound service.NotFoundError
	if errors.As(err, &notFound) {
		switch notFound.Entity {
		case service.EntityPost:
			return msgPostNotFound
		case service.EntityUser:
			return msgTargetNotFound
		}
	}
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			return m.message
		}
	}
	return msgSomethingWentWrong
}

// messagesFromError lists validation failures one per line for the forms
// that show a bullet list.
func messagesFromError(err error) []string {
	errs, ok := validators.AsValidationErrors(err)
	if !ok {
		return []string{messageFromError(err)}
	}
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		out = append(out, e.Message)
	}
	return out
}
