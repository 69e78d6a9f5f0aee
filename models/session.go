// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Session is the authenticated identity bound to a client token.
//
// Role is a snapshot taken at login time. A role change made by an admin
// afterwards is not reflected until the user logs in again.
type Session struct {
	UserID   int64
	Username string
	Role     Role

	CreatedAt time.Time
	ExpiresAt time.Time
}

// IsExpired reports whether the session has expired at the given instant.
// A zero ExpiresAt means the session never expires.
func (s Session) IsExpired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}
