package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/oyanquantum/oyan/internal/auth"
	"github.com/oyanquantum/oyan/internal/models"
	"github.com/oyanquantum/oyan/internal/repositories"
)

func testTokenGenerator() *auth.TokenGenerator {
	return auth.NewTokenGenerator("test-secret", time.Hour, 24*time.Hour)
}

func TestRegister(t *testing.T) {
	users := &mockUserRepository{createdID: 12}
	service := NewAuthService(users, testTokenGenerator(), zap.NewNop())

	resp, err := service.Register(context.Background(), &models.RegisterRequest{Username: "  Aigerim ", Password: "secret123"})

	require.NoError(t, err)
	assert.Equal(t, 12, resp.UserID)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
}

func TestRegisterValidation(t *testing.T) {
	service := NewAuthService(&mockUserRepository{}, testTokenGenerator(), zap.NewNop())

	_, err := service.Register(context.Background(), &models.RegisterRequest{Username: "", Password: "secret123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = service.Register(context.Background(), &models.RegisterRequest{Username: "aigerim", Password: ""})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	users := &mockUserRepository{err: repositories.ErrDuplicateUsername}
	service := NewAuthService(users, testTokenGenerator(), zap.NewNop())

	_, err := service.Register(context.Background(), &models.RegisterRequest{Username: "aigerim", Password: "secret123"})
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	users := &mockUserRepository{user: &models.User{ID: 7, Username: "aigerim", PasswordHash: string(hash)}}
	service := NewAuthService(users, testTokenGenerator(), zap.NewNop())

	resp, err := service.Login(context.Background(), &models.LoginRequest{Username: "aigerim", Password: "secret123"})

	require.NoError(t, err)
	assert.Equal(t, 7, resp.UserID)
}

func TestLoginWrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	users := &mockUserRepository{user: &models.User{ID: 7, Username: "aigerim", PasswordHash: string(hash)}}
	service := NewAuthService(users, testTokenGenerator(), zap.NewNop())

	_, err = service.Login(context.Background(), &models.LoginRequest{Username: "aigerim", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidPassword)
}

func TestLoginUnknownUser(t *testing.T) {
	users := &mockUserRepository{err: repositories.ErrUserNotFound}
	service := NewAuthService(users, testTokenGenerator(), zap.NewNop())

	_, err := service.Login(context.Background(), &models.LoginRequest{Username: "nobody", Password: "secret123"})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestRefresh(t *testing.T) {
	generator := testTokenGenerator()
	_, refreshToken, err := generator.GenerateTokens(7)
	require.NoError(t, err)

	users := &mockUserRepository{user: &models.User{ID: 7}}
	service := NewAuthService(users, generator, zap.NewNop())

	resp, err := service.Refresh(context.Background(), refreshToken)

	require.NoError(t, err)
	assert.Equal(t, 7, resp.UserID)
	assert.NotEmpty(t, resp.AccessToken)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	generator := testTokenGenerator()
	accessToken, _, err := generator.GenerateTokens(7)
	require.NoError(t, err)

	service := NewAuthService(&mockUserRepository{user: &models.User{ID: 7}}, generator, zap.NewNop())

	_, err = service.Refresh(context.Background(), accessToken)
	assert.ErrorIs(t, err, ErrInvalidRefresh)
}

func TestRefreshGarbageToken(t *testing.T) {
	service := NewAuthService(&mockUserRepository{}, testTokenGenerator(), zap.NewNop())

	_, err := service.Refresh(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidRefresh)
}

func TestGetProfile(t *testing.T) {
	age := 25
	users := &mockUserRepository{user: &models.User{
		ID:          7,
		Username:    "aigerim",
		FullName:    "Aigerim S.",
		Age:         &age,
		NumLevel:    4,
		CurrentUnit: 1,
		Level:       models.LevelIntermediate,
	}}
	service := NewAuthService(users, testTokenGenerator(), zap.NewNop())

	profile, err := service.GetProfile(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, 7, profile.ID)
	assert.Equal(t, models.LevelIntermediate, profile.Level)
	require.NotNil(t, profile.Age)
	assert.Equal(t, 25, *profile.Age)
}
