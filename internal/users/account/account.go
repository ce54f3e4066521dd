// Copyright (c) 2026 Smriti. All rights reserved.
// Author: rafid.hsn.bd@gmail.com

/*
Package account handles user profile management, preferences, and role
administration.

It provides functionalities for users to view and update their private
identity data, manage notification settings, and for administrators to list
members and mutate roles.

# Architecture

  - Entities: SessionInfo (DTO); the User entity itself lives in the auth package.
  - Security: Role mutation is restricted to administrator-grade actors.
*/
package account

import (
	"context"
	"time"

	"github.com/rafidhsn/smriti/internal/platform/sec"
	"github.com/rafidhsn/smriti/internal/users/auth"
)

// # Constraints

// UsernameChangeCooldown is the minimum interval between username changes.
const UsernameChangeCooldown = 30 * 24 * time.Hour

// # Transport DTOs

// SessionInfo provides a safety-mapped view of an active user session.
// It omits sensitive token hashes for transport.
type SessionInfo struct {
	ID         string    `json:"id"`
	DeviceName string    `json:"device_name"` // e.g. "Chrome on Windows"
	IPAddress  string    `json:"ip_address"`
	CreatedAt  time.Time `json:"created_at"`
	ExpiresAt  time.Time `json:"expires_at"`
	IsCurrent  bool      `json:"is_current"` // True if this session belongs to the current request
}

// # Repository Contracts

// AccountRepository defines the persistence contract for user accounts.
type AccountRepository interface {
	/*
		FindByID retrieves a user record by their unique ID.

		Parameters:
		  - context: context.Context
		  - id: string (UUID)

		Returns:
		  - *auth.User: Loaded account entity
		  - error: apperr.NotFound or storage failures
	*/
	FindByID(context context.Context, id string) (*auth.User, error)

	/*
		FindByUsername retrieves a user record by their unique username.

		Parameters:
		  - context: context.Context
		  - username: string

		Returns:
		  - *auth.User: Loaded account entity
		  - error: apperr.NotFound or storage failures
	*/
	FindByUsername(context context.Context, username string) (*auth.User, error)

	/*
		Update modifies the mutable profile fields of an existing user.

		Parameters:
		  - context: context.Context
		  - user: *auth.User (Hydrated entity with changes)

		Returns:
		  - error: Storage or constraint failures
	*/
	Update(context context.Context, user *auth.User) error

	/*
		UpdateUsername replaces the username and stamps usernamechangedat.

		Parameters:
		  - context: context.Context
		  - userID: string
		  - username: string

		Returns:
		  - error: Uniqueness or storage failures
	*/
	UpdateUsername(context context.Context, userID, username string) error

	/*
		UpdateRole replaces the role of the target account.

		Parameters:
		  - context: context.Context
		  - userID: string
		  - role: sec.UserRole

		Returns:
		  - error: Execution failures
	*/
	UpdateRole(context context.Context, userID string, role sec.UserRole) error

	/*
		SoftDelete flags an account as logically deleted.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - error: Execution failures
	*/
	SoftDelete(context context.Context, id string) error

	/*
		List returns a paginated slice of active accounts for back-office use.

		Parameters:
		  - context: context.Context
		  - limit: int
		  - offset: int

		Returns:
		  - []auth.User: Page of accounts
		  - int: Total active account count
		  - error: Retrieval failures
	*/
	List(context context.Context, limit, offset int) ([]auth.User, int, error)
}

// SessionRepository defines the visibility and revocation contract for user sessions.
type SessionRepository interface {
	/*
		FindActiveByUserID lists all valid, non-expired sessions for a user.
	*/
	FindActiveByUserID(context context.Context, userID string) ([]SessionInfo, error)

	/*
		Revoke marks a specific session as revoked. The userID argument is a
		security constraint: only the owner's sessions match.
	*/
	Revoke(context context.Context, userID, sessionID string) error

	/*
		RevokeAll terminates every session for a user.
	*/
	RevokeAll(context context.Context, userID string) error
}
