// Copyright (c) 2026 Smriti. All rights reserved.
// Author: rafid.hsn.bd@gmail.com

package account

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/rafidhsn/smriti/internal/platform/apperr"
	"github.com/rafidhsn/smriti/internal/platform/sec"
	"github.com/rafidhsn/smriti/internal/users/auth"
)

// # Service Layer

// Service orchestrates business logic for user accounts.
//
// It enforces the username change cooldown, administrator-only role
// mutation, and session security cleanup on account deletion.
type Service struct {
	accountRepository AccountRepository
	sessionRepository SessionRepository
	logger            *slog.Logger
}

// NewService constructs a new [Service] with its repository dependencies.
func NewService(
	accountRepo AccountRepository,
	sessionRepo SessionRepository,
	logger *slog.Logger,
) *Service {
	return &Service{
		accountRepository: accountRepo,
		sessionRepository: sessionRepo,
		logger:            logger,
	}
}

// # Profile Management

/*
GetProfile retrieves the full private identity of a user.

Parameters:
  - context: context.Context
  - userID: string

Returns:
  - *auth.User: The hydrated user profile
  - error: Not found or execution failures
*/
func (service *Service) GetProfile(context context.Context, userID string) (*auth.User, error) {
	user, err := service.accountRepository.FindByID(context, userID)
	if err != nil {
		return nil, fmt.Errorf("account_service_get_profile_failed: %w", err)
	}
	return user, nil
}

// UpdateProfileInput defines the mutable subset of user profile fields.
type UpdateProfileInput struct {
	Name            *string
	Bio             *string
	Image           *string
	NotifyOnComment *bool
	NotifyOnNews    *bool
}

/*
UpdateProfile applies a partial set of changes to a user's account metadata.

Description: Fetches the existing user state, overrides provided fields, and
synchronizes the change to persistent storage. Username and role are NOT
mutable through this path.

Parameters:
  - context: context.Context
  - userID: string
  - input: UpdateProfileInput

Returns:
  - *auth.User: The updated user profile
  - error: Update or storage failures
*/
func (service *Service) UpdateProfile(context context.Context, userID string, input UpdateProfileInput) (*auth.User, error) {

	// Fetch current state
	user, err := service.accountRepository.FindByID(context, userID)
	if err != nil {
		return nil, fmt.Errorf("account_service_update_lookup_failed: %w", err)
	}

	// Apply delta updates
	if input.Name != nil {
		user.Name = *input.Name
	}

	// Apply delta updates
	if input.Bio != nil {
		user.Bio = *input.Bio
	}

	// Apply delta updates
	if input.Image != nil {
		user.Image = *input.Image
	}

	// Notification preferences
	if input.NotifyOnComment != nil {
		user.NotifyOnComment = *input.NotifyOnComment
	}
	if input.NotifyOnNews != nil {
		user.NotifyOnNews = *input.NotifyOnNews
	}

	// Persist changes
	if err := service.accountRepository.Update(context, user); err != nil {
		return nil, fmt.Errorf("account_service_update_failed: %w", err)
	}

	service.logger.Info("user_profile_updated", slog.String("user_id", userID))

	return user, nil
}

/*
ChangeUsername applies a rate-limited username change.

Description: A username may change at most once every 30 days. The cooldown
is measured from the last recorded change; accounts that never changed their
username pass immediately.

Parameters:
  - context: context.Context
  - userID: string
  - username: string

Returns:
  - error: Cooldown violation, Conflict or storage failures
*/
func (service *Service) ChangeUsername(context context.Context, userID, username string) error {

	user, err := service.accountRepository.FindByID(context, userID)
	if err != nil {
		return fmt.Errorf("account_service_change_username_lookup_failed: %w", err)
	}

	// No-op change short-circuits before the cooldown check.
	if user.Username == username {
		return nil
	}

	// Enforce the 30-day cooldown window
	if user.UsernameChangedAt != nil {
		nextAllowed := user.UsernameChangedAt.Add(UsernameChangeCooldown)
		if time.Now().Before(nextAllowed) {
			return apperr.ValidationError(fmt.Sprintf(
				"Username can be changed again on %s", nextAllowed.Format("2006-01-02"),
			))
		}
	}

	// Verify username uniqueness. Return a client-safe Conflict err.
	_, err = service.accountRepository.FindByUsername(context, username)
	if err == nil {
		return apperr.Conflict("Username is already taken")
	}

	if err := service.accountRepository.UpdateUsername(context, userID, username); err != nil {
		return fmt.Errorf("account_service_change_username_failed: %w", err)
	}

	service.logger.Info("user_username_changed", slog.String("user_id", userID))

	return nil
}

/*
DeleteAccount performs an idempotent soft-deletion of a user account.

Description: Flags the account as deleted and immediately terminates all active
security sessions to force a global sign-out. The row remains so later
credential checks can answer with the dedicated deleted-account rejection.

Parameters:
  - context: context.Context
  - userID: string

Returns:
  - error: Execution failures
*/
func (service *Service) DeleteAccount(context context.Context, userID string) error {

	if err := service.accountRepository.SoftDelete(context, userID); err != nil {
		return fmt.Errorf("account_service_delete_failed: %w", err)
	}

	// Force global revocation of sessions for the deleted account
	_ = service.sessionRepository.RevokeAll(context, userID)

	service.logger.Warn("user_account_deleted", slog.String("user_id", userID))

	return nil
}

// # Role Administration

/*
ChangeRole mutates the role of a target account on behalf of an actor.

Description: Only SUPER_ADMIN and ADMIN actors may change roles, and only a
SUPER_ADMIN may grant or strip the SUPER_ADMIN role. Actors cannot change
their own role.

Parameters:
  - context: context.Context
  - actorID: string
  - actorRole: sec.UserRole
  - targetID: string
  - newRole: sec.UserRole

Returns:
  - error: Forbidden, validation or storage failures
*/
func (service *Service) ChangeRole(context context.Context, actorID string, actorRole sec.UserRole, targetID string, newRole sec.UserRole) error {

	if !actorRole.CanManageRoles() {
		return apperr.Forbidden("You are not allowed to manage roles")
	}

	if !newRole.Valid() {
		return apperr.ValidationError("Unknown role")
	}

	// Self-demotion and self-promotion are both refused.
	if actorID == targetID {
		return apperr.Forbidden("You cannot change your own role")
	}

	target, err := service.accountRepository.FindByID(context, targetID)
	if err != nil {
		return fmt.Errorf("account_service_change_role_lookup_failed: %w", err)
	}

	// SUPER_ADMIN involvement on either side requires a SUPER_ADMIN actor.
	if (newRole == sec.RoleSuperAdmin || target.Role == sec.RoleSuperAdmin) && actorRole != sec.RoleSuperAdmin {
		return apperr.Forbidden("Only a super administrator can manage this role")
	}

	if err := service.accountRepository.UpdateRole(context, targetID, newRole); err != nil {
		return fmt.Errorf("account_service_change_role_failed: %w", err)
	}

	service.logger.Warn("user_role_changed",
		slog.String("actor_id", actorID),
		slog.String("target_id", targetID),
		slog.String("new_role", string(newRole)),
	)

	return nil
}

/*
ListAccounts returns a paginated back-office listing of active members.

Parameters:
  - context: context.Context
  - limit: int
  - offset: int

Returns:
  - []auth.User: Page of accounts
  - int: Total count
  - error: Retrieval failures
*/
func (service *Service) ListAccounts(context context.Context, limit, offset int) ([]auth.User, int, error) {
	users, total, err := service.accountRepository.List(context, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("account_service_list_failed: %w", err)
	}
	return users, total, nil
}

// # Session Security

/*
ListSessions provides a list of all active device sessions for the user.

Parameters:
  - context: context.Context
  - userID: string

Returns:
  - []SessionInfo: List of active devices
  - error: Retrieval failures
*/
func (service *Service) ListSessions(context context.Context, userID string) ([]SessionInfo, error) {
	sessions, err := service.sessionRepository.FindActiveByUserID(context, userID)
	if err != nil {
		return nil, fmt.Errorf("account_service_list_sessions_failed: %w", err)
	}
	return sessions, nil
}

/*
RevokeSession terminates a specific user session by its ID.

Parameters:
  - context: context.Context
  - userID: string
  - sessionID: string

Returns:
  - error: Revocation failures
*/
func (service *Service) RevokeSession(context context.Context, userID, sessionID string) error {
	if err := service.sessionRepository.Revoke(context, userID, sessionID); err != nil {
		return fmt.Errorf("account_service_revoke_session_failed: %w", err)
	}

	service.logger.Info("user_session_revoked",
		slog.String("user_id", userID),
		slog.String("session_id", sessionID),
	)

	return nil
}
