// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package guard decides whether an actor may perform an action.
//
// [Decide] is a pure function: no I/O, no hidden state. The same
// [Request] always yields the same [Decision].
package guard

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-blog/models"
)

// Action is an operation gated by the guard.
type Action int

const (
	ViewPosts Action = iota + 1
	CreatePost
	EditPost
	DeletePost
	ChangeUserRole
	ViewAdminDashboard
)

var actionNames = map[Action]string{
	ViewPosts:          "view_posts",
	CreatePost:         "create_post",
	EditPost:           "edit_post",
	DeletePost:         "delete_post",
	ChangeUserRole:     "change_user_role",
	ViewAdminDashboard: "view_admin_dashboard",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return fmt.Sprintf("action(%d)", int(a))
}

// Reason explains a denial.
type Reason string

const (
	ReasonUnauthenticated         Reason = "unauthenticated"
	ReasonInsufficientPermissions Reason = "insufficient permissions"
	ReasonCannotChangeOwnRole     Reason = "cannot change own role"
	ReasonInvalidRole             Reason = "invalid role"
)

// ErrDenied is wrapped by [Decision.Err] for every denial.
var ErrDenied = errors.New("access denied")

// Request carries everything a decision depends on.
type Request struct {
	// Authenticated is false when the caller has no session.
	Authenticated bool

	ActorRole models.Role
	ActorID   int64

	Action Action

	// TargetUserID and RequestedRole are only read for ChangeUserRole.
	TargetUserID  int64
	RequestedRole models.Role
}

// ForSession builds a Request for the holder of s. A zero session
// (no user id) is treated as unauthenticated.
func ForSession(s models.Session, action Action) Request {
	return Request{
		Authenticated: s.UserID > 0,
		ActorRole:     s.Role,
		ActorID:       s.UserID,
		Action:        action,
	}
}

// Decision is the outcome of [Decide].
type Decision struct {
	Allowed bool
	Reason  Reason
}

// Allow returns a positive decision.
func Allow() Decision {
	return Decision{Allowed: true}
}

// Deny returns a negative decision with reason.
func Deny(reason Reason) Decision {
	return Decision{Reason: reason}
}

// Err returns nil for an allowed decision and an error wrapping
// [ErrDenied] otherwise.
func (d Decision) Err() error {
	if d.Allowed {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrDenied, d.Reason)
}

// Decide evaluates the rules in order; the first match wins.
//
//  1. ViewPosts: any authenticated role.
//  2. CreatePost, EditPost, DeletePost: admin or editor.
//  3. ChangeUserRole: admin only, never on the admin's own account, and
//     only to one of the known roles.
//  4. ViewAdminDashboard: admin only.
//  5. Anything else is denied.
//
// A request without a session is denied as unauthenticated before any
// rule is evaluated.
func Decide(req Request) Decision {
	if !req.Authenticated {
		return Deny(ReasonUnauthenticated)
	}

	switch req.Action {
	case ViewPosts:
		return Allow()

	case CreatePost, EditPost, DeletePost:
		if canManagePosts(req.ActorRole) {
			return Allow()
		}
		return Deny(ReasonInsufficientPermissions)

	case ChangeUserRole:
		if req.ActorRole != models.RoleAdmin {
			return Deny(ReasonInsufficientPermissions)
		}
		if req.TargetUserID == req.ActorID {
			return Deny(ReasonCannotChangeOwnRole)
		}
		if !req.RequestedRole.IsValid() {
			return Deny(ReasonInvalidRole)
		}
		return Allow()

	case ViewAdminDashboard:
		if req.ActorRole == models.RoleAdmin {
			return Allow()
		}
		return Deny(ReasonInsufficientPermissions)
	}

	return Deny(ReasonInsufficientPermissions)
}

// Can is a shorthand for Decide(ForSession(s, action)).Allowed, used by
// templates to show or hide controls.
func Can(s models.Session, action Action) bool {
	return Decide(ForSession(s, action)).Allowed
}

func canManagePosts(role models.Role) bool {
	return role == models.RoleAdmin || role == models.RoleEditor
}
