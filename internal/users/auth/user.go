// Copyright (c) 2026 Smriti. All rights reserved.
// Author: rafid.hsn.bd@gmail.com

/*
Package auth implements the user identity and session management layer.

It defines the core domain entities (User, Session) and logic for
authentication, authorization, and account lifecycle.

# Architecture

This layer is the "Truth" of the system. Entities defined here have no
external dependencies and encapsulate all business rules related to user
identity, including the twice-invoked active-account check required at
sign-in and at claim refresh.
*/
package auth

import (
	"net/http"
	"time"

	"github.com/rafidhsn/smriti/internal/platform/apperr"
	"github.com/rafidhsn/smriti/internal/platform/sec"
)

// # Domain Entities

// User represents a registered member of the Smriti platform.
//
// PasswordHash is a pointer: externally provisioned accounts have no local
// password and must never pass credential verification.
type User struct {
	ID              string       `json:"id"`
	Username        string       `json:"username"`
	Email           string       `json:"email"`
	PasswordHash    *string      `json:"-"` // Explicitly omitted from JSON for security.
	Name            string       `json:"name"`
	Image           string       `json:"image,omitempty"`
	Bio             string       `json:"bio,omitempty"`
	Role            sec.UserRole `json:"role"`
	IsDeleted       bool         `json:"-"`
	IsVerified      bool         `json:"is_verified"`
	NotifyOnComment bool         `json:"notify_on_comment"`
	NotifyOnNews    bool         `json:"notify_on_news"`

	// UsernameChangedAt supports the 30-day username change rate limit.
	UsernameChangedAt *time.Time `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Identity returns the claim-embeddable view of the account.
func (user *User) Identity() sec.Identity {
	return sec.Identity{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Image: user.Image,
		Role:  user.Role,
	}
}

// Session represents an active refresh-token session.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	TokenHash string    `json:"-"` // Hashed value of the refresh token. Omitted for security.
	UserAgent string    `json:"user_agent"`
	IPAddress string    `json:"ip_address"`
	ExpiresAt time.Time `json:"expires_at"`
	IsRevoked bool      `json:"is_revoked"`
	CreatedAt time.Time `json:"created_at"`
}

// # Localized Messages
//
// Sign-in failures are shown to visitors in Bengali. The invalid-credentials
// message is deliberately shared between "unknown email", "no local password"
// and "wrong password" so the API cannot be used for user enumeration.

const (
	// MsgMissingCredentials: "Both email and password are required."
	MsgMissingCredentials = "ইমেইল এবং পাসওয়ার্ড উভয়ই আবশ্যক"

	// MsgInvalidCredentials: "Email or password is incorrect."
	MsgInvalidCredentials = "ইমেইল অথবা পাসওয়ার্ড সঠিক নয়"

	// MsgAccountDeleted: "This account has been removed."
	MsgAccountDeleted = "এই অ্যাকাউন্টটি মুছে ফেলা হয়েছে"
)

// # Account Capability Checks

// AssertActive rejects soft-deleted accounts.
//
// Both entry points that authenticate a user call this single function: the
// credential verifier at the authorize step, and the claim refresher on
// every authenticated request. Two calls, one implementation — the
// defense-in-depth property without duplicated logic.
func AssertActive(user *User) error {
	if user == nil {
		return apperr.Unauthorized(MsgInvalidCredentials)
	}
	if user.IsDeleted {
		return &apperr.AppError{
			Code:       "ACCOUNT_DELETED",
			Message:    MsgAccountDeleted,
			HTTPStatus: http.StatusForbidden,
		}
	}
	return nil
}

// # Field Identifiers

// Global field names for validation and identity mapping in the authentication domain.
const (
	FieldUsername        = "username"
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldName            = "name"
	FieldToken           = "token"
	FieldCurrentPassword = "current_password"
	FieldNewPassword     = "new_password"
	FieldAccessToken     = "access_token"
	FieldTokenType       = "token_type"
	FieldExpiresIn       = "expires_in"
	FieldUser            = "user"
	FieldMessage         = "message"
)
