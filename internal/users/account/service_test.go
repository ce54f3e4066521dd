// Copyright (c) 2026 Smriti. All rights reserved.
// Author: rafid.hsn.bd@gmail.com

package account

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafidhsn/smriti/internal/platform/apperr"
	"github.com/rafidhsn/smriti/internal/platform/sec"
	"github.com/rafidhsn/smriti/internal/users/auth"
)

// # In-Memory Fakes

type fakeAccountRepository struct {
	byID       map[string]*auth.User
	byUsername map[string]*auth.User
}

func newFakeAccountRepository(users ...*auth.User) *fakeAccountRepository {
	repo := &fakeAccountRepository{
		byID:       map[string]*auth.User{},
		byUsername: map[string]*auth.User{},
	}
	for _, user := range users {
		repo.byID[user.ID] = user
		repo.byUsername[user.Username] = user
	}
	return repo
}

func (repo *fakeAccountRepository) FindByID(_ context.Context, id string) (*auth.User, error) {
	if user, ok := repo.byID[id]; ok && !user.IsDeleted {
		return user, nil
	}
	return nil, apperr.NotFound("User not found")
}

func (repo *fakeAccountRepository) FindByUsername(_ context.Context, username string) (*auth.User, error) {
	if user, ok := repo.byUsername[username]; ok && !user.IsDeleted {
		return user, nil
	}
	return nil, apperr.NotFound("User not found with this username")
}

func (repo *fakeAccountRepository) Update(_ context.Context, user *auth.User) error {
	repo.byID[user.ID] = user
	return nil
}

func (repo *fakeAccountRepository) UpdateUsername(_ context.Context, userID, username string) error {
	user := repo.byID[userID]
	delete(repo.byUsername, user.Username)
	user.Username = username
	now := time.Now()
	user.UsernameChangedAt = &now
	repo.byUsername[username] = user
	return nil
}

func (repo *fakeAccountRepository) UpdateRole(_ context.Context, userID string, role sec.UserRole) error {
	if user, ok := repo.byID[userID]; ok {
		user.Role = role
	}
	return nil
}

func (repo *fakeAccountRepository) SoftDelete(_ context.Context, id string) error {
	if user, ok := repo.byID[id]; ok {
		user.IsDeleted = true
	}
	return nil
}

func (repo *fakeAccountRepository) List(_ context.Context, limit, offset int) ([]auth.User, int, error) {
	var users []auth.User
	for _, user := range repo.byID {
		if !user.IsDeleted {
			users = append(users, *user)
		}
	}
	return users, len(users), nil
}

type fakeSessionRepository struct {
	revokedAll map[string]bool
}

func newFakeSessionRepository() *fakeSessionRepository {
	return &fakeSessionRepository{revokedAll: map[string]bool{}}
}

func (repo *fakeSessionRepository) FindActiveByUserID(_ context.Context, _ string) ([]SessionInfo, error) {
	return nil, nil
}

func (repo *fakeSessionRepository) Revoke(_ context.Context, _, _ string) error { return nil }

func (repo *fakeSessionRepository) RevokeAll(_ context.Context, userID string) error {
	repo.revokedAll[userID] = true
	return nil
}

// # Fixtures

func member(id, username string, role sec.UserRole) *auth.User {
	return &auth.User{
		ID:       id,
		Username: username,
		Email:    username + "@smriti.org.bd",
		Name:     username,
		Role:     role,
	}
}

func newTestService(users ...*auth.User) (*Service, *fakeAccountRepository, *fakeSessionRepository) {
	accounts := newFakeAccountRepository(users...)
	sessions := newFakeSessionRepository()
	logger := slog.New(slog.DiscardHandler)
	return NewService(accounts, sessions, logger), accounts, sessions
}

// # Username Cooldown

func TestChangeUsername_FirstChangeAllowed(t *testing.T) {
	user := member("u1", "oldname", sec.RoleUser)
	service, accounts, _ := newTestService(user)

	err := service.ChangeUsername(context.Background(), "u1", "newname")
	require.NoError(t, err)

	assert.Equal(t, "newname", accounts.byID["u1"].Username)
	assert.NotNil(t, accounts.byID["u1"].UsernameChangedAt)
}

func TestChangeUsername_WithinCooldownRejected(t *testing.T) {
	user := member("u1", "oldname", sec.RoleUser)
	changed := time.Now().Add(-10 * 24 * time.Hour)
	user.UsernameChangedAt = &changed
	service, _, _ := newTestService(user)

	err := service.ChangeUsername(context.Background(), "u1", "newname")
	require.Error(t, err)

	var appError *apperr.AppError
	require.True(t, errors.As(err, &appError))
	assert.Equal(t, 400, appError.HTTPStatus)
}

func TestChangeUsername_AfterCooldownAllowed(t *testing.T) {
	user := member("u1", "oldname", sec.RoleUser)
	changed := time.Now().Add(-31 * 24 * time.Hour)
	user.UsernameChangedAt = &changed
	service, accounts, _ := newTestService(user)

	err := service.ChangeUsername(context.Background(), "u1", "newname")
	require.NoError(t, err)
	assert.Equal(t, "newname", accounts.byID["u1"].Username)
}

func TestChangeUsername_TakenUsernameConflicts(t *testing.T) {
	service, _, _ := newTestService(
		member("u1", "first", sec.RoleUser),
		member("u2", "second", sec.RoleUser),
	)

	err := service.ChangeUsername(context.Background(), "u1", "second")
	require.Error(t, err)

	var appError *apperr.AppError
	require.True(t, errors.As(err, &appError))
	assert.Equal(t, 409, appError.HTTPStatus)
}

func TestChangeUsername_SameUsernameIsNoOp(t *testing.T) {
	user := member("u1", "samename", sec.RoleUser)
	changed := time.Now().Add(-1 * time.Hour) // Cooldown active; no-op bypasses it.
	user.UsernameChangedAt = &changed
	service, _, _ := newTestService(user)

	err := service.ChangeUsername(context.Background(), "u1", "samename")
	assert.NoError(t, err)
}

// # Role Administration

func TestChangeRole_RequiresManagementRole(t *testing.T) {
	service, _, _ := newTestService(
		member("actor", "actor", sec.RoleEditor),
		member("target", "target", sec.RoleUser),
	)

	for _, role := range []sec.UserRole{sec.RoleEditor, sec.RoleManager, sec.RoleUser} {
		err := service.ChangeRole(context.Background(), "actor", role, "target", sec.RoleEditor)
		require.Error(t, err, "role %s must not manage roles", role)
	}
}

func TestChangeRole_AdminPromotesEditor(t *testing.T) {
	service, accounts, _ := newTestService(
		member("actor", "actor", sec.RoleAdmin),
		member("target", "target", sec.RoleUser),
	)

	err := service.ChangeRole(context.Background(), "actor", sec.RoleAdmin, "target", sec.RoleEditor)
	require.NoError(t, err)
	assert.Equal(t, sec.RoleEditor, accounts.byID["target"].Role)
}

func TestChangeRole_SelfChangeForbidden(t *testing.T) {
	service, _, _ := newTestService(member("actor", "actor", sec.RoleSuperAdmin))

	err := service.ChangeRole(context.Background(), "actor", sec.RoleSuperAdmin, "actor", sec.RoleUser)
	require.Error(t, err)
}

func TestChangeRole_SuperAdminGrantNeedsSuperAdmin(t *testing.T) {
	service, accounts, _ := newTestService(
		member("admin", "admin", sec.RoleAdmin),
		member("root", "root", sec.RoleSuperAdmin),
		member("target", "target", sec.RoleUser),
	)

	// An ADMIN cannot grant SUPER_ADMIN.
	err := service.ChangeRole(context.Background(), "admin", sec.RoleAdmin, "target", sec.RoleSuperAdmin)
	require.Error(t, err)

	// An ADMIN cannot demote a SUPER_ADMIN.
	err = service.ChangeRole(context.Background(), "admin", sec.RoleAdmin, "root", sec.RoleAdmin)
	require.Error(t, err)

	// A SUPER_ADMIN can grant it.
	err = service.ChangeRole(context.Background(), "other-root", sec.RoleSuperAdmin, "target", sec.RoleSuperAdmin)
	require.NoError(t, err)
	assert.Equal(t, sec.RoleSuperAdmin, accounts.byID["target"].Role)
}

// # Account Deletion

func TestDeleteAccount_SoftDeletesAndRevokesSessions(t *testing.T) {
	user := member("u1", "leaving", sec.RoleUser)
	service, accounts, sessions := newTestService(user)

	err := service.DeleteAccount(context.Background(), "u1")
	require.NoError(t, err)

	assert.True(t, accounts.byID["u1"].IsDeleted)
	assert.True(t, sessions.revokedAll["u1"])
}
