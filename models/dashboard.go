// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// DashboardStats summarises the system for the admin panel.
type DashboardStats struct {
	TotalUsers int64

	// UsersByRole always contains an entry for every role in [Roles].
	UsersByRole map[Role]int64

	TotalPosts int64
}
