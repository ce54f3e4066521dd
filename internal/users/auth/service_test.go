// Copyright (c) 2026 Smriti. All rights reserved.
// Author: rafid.hsn.bd@gmail.com

package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafidhsn/smriti/internal/platform/apperr"
	"github.com/rafidhsn/smriti/internal/platform/sec"
)

// # In-Memory Fakes

type fakeUserRepository struct {
	byEmail    map[string]*User
	byID       map[string]*User
	byUsername map[string]*User
}

func newFakeUserRepository(users ...*User) *fakeUserRepository {
	repo := &fakeUserRepository{
		byEmail:    map[string]*User{},
		byID:       map[string]*User{},
		byUsername: map[string]*User{},
	}
	for _, user := range users {
		repo.byEmail[user.Email] = user
		repo.byID[user.ID] = user
		repo.byUsername[user.Username] = user
	}
	return repo
}

func (repo *fakeUserRepository) FindByID(_ context.Context, id string) (*User, error) {
	if user, ok := repo.byID[id]; ok {
		return user, nil
	}
	return nil, apperr.NotFound("User not found")
}

func (repo *fakeUserRepository) FindByEmail(_ context.Context, email string) (*User, error) {
	if user, ok := repo.byEmail[email]; ok {
		return user, nil
	}
	return nil, apperr.NotFound("User not found with this email")
}

func (repo *fakeUserRepository) FindByUsername(_ context.Context, username string) (*User, error) {
	if user, ok := repo.byUsername[username]; ok {
		return user, nil
	}
	return nil, apperr.NotFound("User not found with this username")
}

func (repo *fakeUserRepository) Create(_ context.Context, user *User) error {
	repo.byEmail[user.Email] = user
	repo.byID[user.ID] = user
	repo.byUsername[user.Username] = user
	return nil
}

func (repo *fakeUserRepository) UpdatePassword(_ context.Context, userID, newHash string) error {
	if user, ok := repo.byID[userID]; ok {
		user.PasswordHash = &newHash
	}
	return nil
}

func (repo *fakeUserRepository) MarkVerified(_ context.Context, userID string) error {
	if user, ok := repo.byID[userID]; ok {
		user.IsVerified = true
	}
	return nil
}

type fakeSessionRepository struct {
	byTokenHash map[string]*Session
}

func newFakeSessionRepository() *fakeSessionRepository {
	return &fakeSessionRepository{byTokenHash: map[string]*Session{}}
}

func (repo *fakeSessionRepository) Create(_ context.Context, session *Session) error {
	repo.byTokenHash[session.TokenHash] = session
	return nil
}

func (repo *fakeSessionRepository) FindByTokenHash(_ context.Context, tokenHash string) (*Session, error) {
	session, ok := repo.byTokenHash[tokenHash]
	if !ok || session.IsRevoked || session.ExpiresAt.Before(time.Now()) {
		return nil, apperr.NotFound("Session not found or expired")
	}
	return session, nil
}

func (repo *fakeSessionRepository) Revoke(_ context.Context, sessionID string) error {
	for _, session := range repo.byTokenHash {
		if session.ID == sessionID {
			session.IsRevoked = true
		}
	}
	return nil
}

func (repo *fakeSessionRepository) RevokeAll(_ context.Context, userID string) error {
	for _, session := range repo.byTokenHash {
		if session.UserID == userID {
			session.IsRevoked = true
		}
	}
	return nil
}

func (repo *fakeSessionRepository) RevokeOthers(_ context.Context, userID, currentSessionID string) error {
	for _, session := range repo.byTokenHash {
		if session.UserID == userID && session.ID != currentSessionID {
			session.IsRevoked = true
		}
	}
	return nil
}

func (repo *fakeSessionRepository) DeleteExpired(_ context.Context) error { return nil }

type fakeTokenRepository struct {
	values map[string]string
}

func newFakeTokenRepository() *fakeTokenRepository {
	return &fakeTokenRepository{values: map[string]string{}}
}

func (repo *fakeTokenRepository) Set(_ context.Context, token, userID string, _ time.Duration) error {
	repo.values[token] = userID
	return nil
}

func (repo *fakeTokenRepository) Get(_ context.Context, token string) (string, error) {
	if userID, ok := repo.values[token]; ok {
		return userID, nil
	}
	return "", apperr.NotFound("Reset token is invalid or expired")
}

func (repo *fakeTokenRepository) Delete(_ context.Context, token string) error {
	delete(repo.values, token)
	return nil
}

type fakeTokenProvider struct{}

func (fakeTokenProvider) GenerateAccessToken(identity sec.Identity, _ time.Duration) (string, error) {
	return "token-for-" + identity.ID, nil
}

// # Fixtures

func activeUser(t *testing.T, password string) *User {
	t.Helper()
	hash, err := sec.HashPassword(password)
	require.NoError(t, err)
	return &User{
		ID:           "user-1",
		Username:     "rabindra",
		Email:        "poet@smriti.org.bd",
		PasswordHash: &hash,
		Name:         "Rabindra Nath",
		Role:         sec.RoleEditor,
	}
}

func newTestService(users ...*User) (*Service, *fakeSessionRepository) {
	sessions := newFakeSessionRepository()
	service := NewService(
		newFakeUserRepository(users...),
		sessions,
		newFakeTokenRepository(),
		newFakeTokenRepository(),
		fakeTokenProvider{},
	)
	return service, sessions
}

// # Login Decision Sequence

func TestLogin_MissingCredentials(t *testing.T) {
	service, _ := newTestService()

	cases := []struct {
		name     string
		email    string
		password string
	}{
		{"empty email", "", "secret123"},
		{"empty password", "poet@smriti.org.bd", ""},
		{"both empty", "", ""},
	}

	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			_, err := service.Login(context.Background(), LoginInput{
				Email:    testCase.email,
				Password: testCase.password,
			})
			require.Error(t, err)

			var appError *apperr.AppError
			require.True(t, errors.As(err, &appError))
			assert.Equal(t, MsgMissingCredentials, appError.Message)
		})
	}
}

func TestLogin_UnknownEmailAndWrongPasswordAreIndistinguishable(t *testing.T) {
	service, _ := newTestService(activeUser(t, "correct-horse"))

	_, unknownErr := service.Login(context.Background(), LoginInput{
		Email:    "nobody@smriti.org.bd",
		Password: "whatever",
	})
	_, wrongErr := service.Login(context.Background(), LoginInput{
		Email:    "poet@smriti.org.bd",
		Password: "wrong-password",
	})

	require.Error(t, unknownErr)
	require.Error(t, wrongErr)

	var unknownApp, wrongApp *apperr.AppError
	require.True(t, errors.As(unknownErr, &unknownApp))
	require.True(t, errors.As(wrongErr, &wrongApp))

	// Byte-identical messages: the endpoint must not reveal whether the email exists.
	assert.Equal(t, unknownApp.Message, wrongApp.Message)
	assert.Equal(t, MsgInvalidCredentials, unknownApp.Message)
	assert.Equal(t, unknownApp.HTTPStatus, wrongApp.HTTPStatus)
}

func TestLogin_NilPasswordHash(t *testing.T) {
	user := activeUser(t, "ignored")
	user.PasswordHash = nil
	service, _ := newTestService(user)

	_, err := service.Login(context.Background(), LoginInput{
		Email:    user.Email,
		Password: "any-password",
	})
	require.Error(t, err)

	var appError *apperr.AppError
	require.True(t, errors.As(err, &appError))
	assert.Equal(t, MsgInvalidCredentials, appError.Message)
}

func TestLogin_DeletedAccountRejectedEvenWithCorrectPassword(t *testing.T) {
	user := activeUser(t, "correct-horse")
	user.IsDeleted = true
	service, _ := newTestService(user)

	_, err := service.Login(context.Background(), LoginInput{
		Email:    user.Email,
		Password: "correct-horse",
	})
	require.Error(t, err)

	var appError *apperr.AppError
	require.True(t, errors.As(err, &appError))
	assert.Equal(t, "ACCOUNT_DELETED", appError.Code)
	assert.Equal(t, MsgAccountDeleted, appError.Message)
}

func TestLogin_Success(t *testing.T) {
	user := activeUser(t, "correct-horse")
	service, sessions := newTestService(user)

	session, err := service.Login(context.Background(), LoginInput{
		Email:     user.Email,
		Password:  "correct-horse",
		UserAgent: "test-agent",
		IPAddress: "127.0.0.1",
	})
	require.NoError(t, err)

	assert.Equal(t, "token-for-user-1", session.AccessToken)
	assert.NotEmpty(t, session.RefreshToken)
	assert.Equal(t, sec.RoleEditor, session.User.Role)

	// The refresh token is stored hashed, never in the clear.
	_, found := sessions.byTokenHash[session.RefreshToken]
	assert.False(t, found)
	_, err = sessions.FindByTokenHash(context.Background(), sec.HashToken(session.RefreshToken))
	assert.NoError(t, err)
}

// # Session Rotation

func TestRefreshSession_RotatesAndRevokesOld(t *testing.T) {
	user := activeUser(t, "correct-horse")
	service, _ := newTestService(user)

	first, err := service.Login(context.Background(), LoginInput{
		Email:    user.Email,
		Password: "correct-horse",
	})
	require.NoError(t, err)

	second, err := service.RefreshSession(context.Background(), first.RefreshToken, "agent", "127.0.0.1")
	require.NoError(t, err)
	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)

	// Replay of the rotated-out token must fail.
	_, err = service.RefreshSession(context.Background(), first.RefreshToken, "agent", "127.0.0.1")
	require.Error(t, err)
}

func TestRefreshSession_DeletedAccountCannotRotate(t *testing.T) {
	user := activeUser(t, "correct-horse")
	service, _ := newTestService(user)

	session, err := service.Login(context.Background(), LoginInput{
		Email:    user.Email,
		Password: "correct-horse",
	})
	require.NoError(t, err)

	// Deletion after sign-in: the second active-account check catches it.
	user.IsDeleted = true

	_, err = service.RefreshSession(context.Background(), session.RefreshToken, "agent", "127.0.0.1")
	require.Error(t, err)

	var appError *apperr.AppError
	require.True(t, errors.As(err, &appError))
	assert.Equal(t, "ACCOUNT_DELETED", appError.Code)
}

// # Claim Refresh

func TestRefreshClaims_ReflectsCurrentRole(t *testing.T) {
	user := activeUser(t, "correct-horse")
	service, _ := newTestService(user)

	identity, err := service.RefreshClaims(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, sec.RoleEditor, identity.Role)

	// Role change by an administrator takes effect on the next refresh.
	user.Role = sec.RoleAdmin

	identity, err = service.RefreshClaims(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, sec.RoleAdmin, identity.Role)
}

func TestRefreshClaims_DeletedAccount(t *testing.T) {
	user := activeUser(t, "correct-horse")
	user.IsDeleted = true
	service, _ := newTestService(user)

	_, err := service.RefreshClaims(context.Background(), user.ID)
	require.Error(t, err)

	var appError *apperr.AppError
	require.True(t, errors.As(err, &appError))
	assert.Equal(t, "ACCOUNT_DELETED", appError.Code)
}

// # Password Recovery

func TestResetPassword_RevokesAllSessions(t *testing.T) {
	user := activeUser(t, "correct-horse")
	service, sessions := newTestService(user)

	login, err := service.Login(context.Background(), LoginInput{
		Email:    user.Email,
		Password: "correct-horse",
	})
	require.NoError(t, err)

	token, err := service.RequestPasswordReset(context.Background(), user.Email)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	err = service.ResetPassword(context.Background(), token, "brand-new-password")
	require.NoError(t, err)

	// Old sessions are gone; the new password works.
	_, err = sessions.FindByTokenHash(context.Background(), sec.HashToken(login.RefreshToken))
	require.Error(t, err)

	_, err = service.Login(context.Background(), LoginInput{
		Email:    user.Email,
		Password: "brand-new-password",
	})
	assert.NoError(t, err)
}

func TestRequestPasswordReset_UnknownEmailIsSilent(t *testing.T) {
	service, _ := newTestService()

	token, err := service.RequestPasswordReset(context.Background(), "nobody@smriti.org.bd")
	require.NoError(t, err)
	assert.Empty(t, token)
}
