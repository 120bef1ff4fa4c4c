// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// DashboardStats aggregates the item counters shown on the dashboard.
type DashboardStats struct {
	// Total is the number of items reported by all users.
	Total int64 `json:"total"`

	// Lost is the number of reports with kind "lost".
	Lost int64 `json:"lost"`

	// Found is the number of reports with kind "found".
	Found int64 `json:"found"`

	// Resolved is the number of reports marked resolved.
	Resolved int64 `json:"resolved"`

	// Mine is the number of reports created by the requesting user.
	Mine int64 `json:"mine"`
}

// DashboardResponse is the JSON body of GET /api/dashboard.
type DashboardResponse struct {
	Stats DashboardStats `json:"stats"`

	// Mine lists the requesting user's own reports, newest first.
	Mine []Item `json:"mine"`

	// Latest lists the most recent reports across all users.
	Latest []Item `json:"latest"`
}

// StatusResponse is a minimal JSON acknowledgement body.
type StatusResponse struct {
	Status string `json:"status"`
}
