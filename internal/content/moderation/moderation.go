// Copyright (c) 2026 Smriti. All rights reserved.
// Author: rafid.hsn.bd@gmail.com

// Package moderation defines the shared submission review workflow.
//
// Gallery images, blog posts and tributes all pass through the same
// PENDING → APPROVED/REJECTED lifecycle, and all apply the same rule on
// creation: whatever status a non-administrator asks for, they get PENDING.
package moderation

// Status is the review state of a user-submitted item.
type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// Valid reports whether the status is one of the known review states.
func (status Status) Valid() bool {
	switch status {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Submitted resolves the stored status for a new submission.
//
// Administrative submitters keep their requested status (defaulting to
// APPROVED when empty). Everyone else gets PENDING, silently overriding the
// client-supplied value rather than rejecting the request.
func Submitted(isAdministrative bool, requested Status) Status {
	if !isAdministrative {
		return StatusPending
	}
	if !requested.Valid() {
		return StatusApproved
	}
	return requested
}
