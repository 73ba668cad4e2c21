package auth

import (
	"context"
	"os"
	"testing"
	"time"

	"taskboard/internal/config"
	domainUser "taskboard/internal/domain/user"
	"taskboard/internal/logger"
	appErrors "taskboard/pkg/errors"
	"taskboard/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	if err := logger.Init("development"); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

type fakeUserRepo struct {
	users map[uuid.UUID]*domainUser.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*domainUser.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domainUser.User) error {
	for _, u := range r.users {
		if u.Phone == user.Phone {
			return domainUser.ErrPhoneAlreadyUsed
		}
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, userID uuid.UUID) (*domainUser.User, error) {
	if u, ok := r.users[userID]; ok {
		return u, nil
	}
	return nil, domainUser.ErrUserNotFound
}

func (r *fakeUserRepo) GetByPhone(_ context.Context, phone string) (*domainUser.User, error) {
	for _, u := range r.users {
		if u.Phone == phone {
			return u, nil
		}
	}
	return nil, domainUser.ErrUserNotFound
}

func (r *fakeUserRepo) Update(_ context.Context, user *domainUser.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return domainUser.ErrUserNotFound
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, userID uuid.UUID) error {
	if _, ok := r.users[userID]; !ok {
		return domainUser.ErrUserNotFound
	}
	delete(r.users, userID)
	return nil
}

type fakeTokenRepo struct {
	tokens map[string]*domainUser.RefreshToken
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{tokens: make(map[string]*domainUser.RefreshToken)}
}

func (r *fakeTokenRepo) Create(_ context.Context, token *domainUser.RefreshToken) error {
	if token.ID == uuid.Nil {
		token.ID = uuid.New()
	}
	r.tokens[token.Token] = token
	return nil
}

func (r *fakeTokenRepo) GetByToken(_ context.Context, token string) (*domainUser.RefreshToken, error) {
	stored, ok := r.tokens[token]
	if !ok || time.Now().After(stored.ExpiresAt) {
		return nil, domainUser.ErrTokenInvalid
	}
	return stored, nil
}

func (r *fakeTokenRepo) DeleteExpired(_ context.Context, olderThan time.Duration) error {
	cutoff := time.Now().Add(-olderThan)
	for key, stored := range r.tokens {
		if stored.ExpiresAt.Before(cutoff) {
			delete(r.tokens, key)
		}
	}
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			AccessSecret:        "access-secret",
			AccessExpiryMinutes: 15,
			RefreshSecret:       "refresh-secret",
			RefreshExpiryHours:  7 * 24,
		},
	}
}

func validSignupRequest() *SignupRequest {
	return &SignupRequest{
		Name:        "Alice Example",
		CountryCode: "+1",
		Phone:       "12345678",
		Password:    "password123",
	}
}

func TestSignup(t *testing.T) {
	userRepo := newFakeUserRepo()
	tokenRepo := newFakeTokenRepo()
	service := NewService(userRepo, tokenRepo, testConfig())

	response, err := service.Signup(context.Background(), validSignupRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, response.AccessToken)
	assert.NotEmpty(t, response.RefreshToken)

	user, err := userRepo.GetByPhone(context.Background(), "12345678")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", user.PasswordHashed)
	assert.True(t, utils.CheckPassword(user.PasswordHashed, "password123"))

	// The refresh token is tracked so it can be exchanged later.
	_, err = tokenRepo.GetByToken(context.Background(), response.RefreshToken)
	assert.NoError(t, err)
}

func TestSignupDuplicatePhone(t *testing.T) {
	userRepo := newFakeUserRepo()
	service := NewService(userRepo, newFakeTokenRepo(), testConfig())

	_, err := service.Signup(context.Background(), validSignupRequest())
	require.NoError(t, err)

	_, err = service.Signup(context.Background(), validSignupRequest())
	assert.ErrorIs(t, err, domainUser.ErrPhoneAlreadyUsed)
}

func TestSignupValidation(t *testing.T) {
	service := NewService(newFakeUserRepo(), newFakeTokenRepo(), testConfig())

	req := validSignupRequest()
	req.Password = "short"

	_, err := service.Signup(context.Background(), req)
	assert.True(t, appErrors.IsValidation(err))
}

func TestLogin(t *testing.T) {
	userRepo := newFakeUserRepo()
	service := NewService(userRepo, newFakeTokenRepo(), testConfig())

	_, err := service.Signup(context.Background(), validSignupRequest())
	require.NoError(t, err)

	response, err := service.Login(context.Background(), &LoginRequest{
		Phone:    "12345678",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, response.AccessToken)
	assert.NotEmpty(t, response.RefreshToken)
}

func TestLoginUnknownPhone(t *testing.T) {
	service := NewService(newFakeUserRepo(), newFakeTokenRepo(), testConfig())

	_, err := service.Login(context.Background(), &LoginRequest{
		Phone:    "99999999",
		Password: "password123",
	})
	assert.ErrorIs(t, err, domainUser.ErrUserNotFound)
}

func TestLoginWrongPassword(t *testing.T) {
	service := NewService(newFakeUserRepo(), newFakeTokenRepo(), testConfig())

	_, err := service.Signup(context.Background(), validSignupRequest())
	require.NoError(t, err)

	_, err = service.Login(context.Background(), &LoginRequest{
		Phone:    "12345678",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, appErrors.ErrInvalidCredentials)
}

func TestRefresh(t *testing.T) {
	service := NewService(newFakeUserRepo(), newFakeTokenRepo(), testConfig())

	signupResponse, err := service.Signup(context.Background(), validSignupRequest())
	require.NoError(t, err)

	response, err := service.Refresh(context.Background(), &RefreshRequest{
		Token: signupResponse.RefreshToken,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, response.AccessToken)

	claims, err := utils.ValidateToken(response.AccessToken, "access-secret")
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, claims.UserID)
}

func TestRefreshUntrackedToken(t *testing.T) {
	service := NewService(newFakeUserRepo(), newFakeTokenRepo(), testConfig())

	// Cryptographically valid, but never issued through this store.
	token, err := utils.GenerateToken(uuid.New(), "refresh-secret", time.Hour)
	require.NoError(t, err)

	_, err = service.Refresh(context.Background(), &RefreshRequest{Token: token})
	assert.ErrorIs(t, err, appErrors.ErrInvalidToken)
}

func TestRefreshMalformedToken(t *testing.T) {
	service := NewService(newFakeUserRepo(), newFakeTokenRepo(), testConfig())

	_, err := service.Refresh(context.Background(), &RefreshRequest{Token: "garbage"})
	assert.ErrorIs(t, err, appErrors.ErrInvalidToken)
}

func TestRefreshWrongSecret(t *testing.T) {
	service := NewService(newFakeUserRepo(), newFakeTokenRepo(), testConfig())

	// An access token must never pass as a refresh token.
	token, err := utils.GenerateToken(uuid.New(), "access-secret", time.Hour)
	require.NoError(t, err)

	_, err = service.Refresh(context.Background(), &RefreshRequest{Token: token})
	assert.ErrorIs(t, err, appErrors.ErrInvalidToken)
}
