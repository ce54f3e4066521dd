// Copyright (c) 2026 Smriti. All rights reserved.
// Author: rafid.hsn.bd@gmail.com

package sec

// # User Roles

// UserRole represents the authorization level granted to an account.
type UserRole string

const (
	// Unrestricted system access, including role management
	RoleSuperAdmin UserRole = "SUPER_ADMIN"

	// Full back-office access
	RoleAdmin UserRole = "ADMIN"

	// Manages submissions, tributes and the moderation queue
	RoleManager UserRole = "MANAGER"

	// Creates and edits published content
	RoleEditor UserRole = "EDITOR"

	// Default role for registered visitors
	RoleUser UserRole = "USER"
)

// # Role Predicates

// IsAdministrative reports whether the role grants back-office access.
//
// This predicate is the single source of truth for the admin-role set; the
// route gate, the API guards and the profile badge mapping all import it, so
// the set cannot drift between call sites.
func (r UserRole) IsAdministrative() bool {
	switch r {
	case RoleSuperAdmin, RoleAdmin, RoleManager, RoleEditor:
		return true
	}
	return false
}

// Valid reports whether the string value is a known role.
func (r UserRole) Valid() bool {
	switch r {
	case RoleSuperAdmin, RoleAdmin, RoleManager, RoleEditor, RoleUser:
		return true
	}
	return false
}

// CanManageRoles reports whether the role may change another account's role.
// Only the two top-level roles administer accounts.
func (r UserRole) CanManageRoles() bool {
	return r == RoleSuperAdmin || r == RoleAdmin
}
