package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/oyanquantum/oyan/internal/auth"
	"github.com/oyanquantum/oyan/internal/models"
	"github.com/oyanquantum/oyan/internal/repositories"
)

// User-visible authentication failures. The mobile client matches on these
// exact strings, so they are part of the API contract.
var (
	ErrUsernameTaken      = errors.New("username already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidPassword    = errors.New("invalid password")
	ErrInvalidRefresh     = errors.New("invalid or expired refresh token")
	ErrInvalidCredentials = errors.New("username and password are required")
)

// UserRepository is the interface that wraps methods for User table data access
type UserRepository interface {
	// Method Create inserts a new user and returns the generated id.
	//
	// If the username is already taken the repositories.ErrDuplicateUsername
	// error will be returned together with a zero id.
	Create(ctx context.Context, user *models.User) (int, error)
	// Method GetByID retrieves a user by ID.
	//
	// If user with such ID does not exist, the error will be returned together with "nil" value.
	GetByID(ctx context.Context, id int) (*models.User, error)
	// Method GetByUsername retrieves a user by username.
	//
	// If user with such username does not exist, the error will be returned together with "nil" value.
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	// Method UpdateProfile applies the non-nil fields of the update request.
	UpdateProfile(ctx context.Context, id int, req models.ProfileUpdateRequest) error
}

// AuthService handles account creation, login and token refresh
type AuthService interface {
	// Method Register creates a new account and issues a token pair.
	//
	// Usernames are unique case-insensitively. New accounts start at the
	// beginning of the course.
	Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error)
	// Method Login verifies credentials and issues a token pair.
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	// Method Refresh exchanges a valid refresh token for a new token pair.
	Refresh(ctx context.Context, refreshToken string) (*models.AuthResponse, error)
	// Method GetProfile retrieves the user's profile.
	GetProfile(ctx context.Context, userID int) (*models.ProfileResponse, error)
	// Method UpdateProfile applies the non-nil fields of the update request
	// and returns the updated profile.
	UpdateProfile(ctx context.Context, userID int, req models.ProfileUpdateRequest) (*models.ProfileResponse, error)
}

type authService struct {
	users          UserRepository
	tokenGenerator *auth.TokenGenerator
	logger         *zap.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(users UserRepository, tokenGenerator *auth.TokenGenerator, logger *zap.Logger) AuthService {
	return &authService{
		users:          users,
		tokenGenerator: tokenGenerator,
		logger:         logger,
	}
}

func (s *authService) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	username := strings.TrimSpace(strings.ToLower(req.Username))
	if username == "" || req.Password == "" {
		return nil, ErrInvalidCredentials
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     username,
		PasswordHash: string(passwordHash),
		NumLevel:     1,
		CurrentUnit:  1,
		Level:        models.LevelBeginner,
	}
	id, err := s.users.Create(ctx, user)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateUsername) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}

	return s.issueTokens(id)
}

func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	username := strings.TrimSpace(strings.ToLower(req.Username))
	if username == "" || req.Password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidPassword
	}

	return s.issueTokens(user.ID)
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*models.AuthResponse, error) {
	userID, err := s.tokenGenerator.ValidateRefreshToken(strings.TrimSpace(refreshToken))
	if err != nil {
		return nil, ErrInvalidRefresh
	}

	// The account may have been removed since the token was issued.
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return s.issueTokens(userID)
}

func (s *authService) issueTokens(userID int) (*models.AuthResponse, error) {
	accessToken, refreshToken, err := s.tokenGenerator.GenerateTokens(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}
	return &models.AuthResponse{
		UserID:       userID,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (s *authService) GetProfile(ctx context.Context, userID int) (*models.ProfileResponse, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return profileResponse(user), nil
}

func (s *authService) UpdateProfile(ctx context.Context, userID int, req models.ProfileUpdateRequest) (*models.ProfileResponse, error) {
	if err := s.users.UpdateProfile(ctx, userID, req); err != nil {
		return nil, err
	}
	return s.GetProfile(ctx, userID)
}

func profileResponse(user *models.User) *models.ProfileResponse {
	return &models.ProfileResponse{
		ID:                  user.ID,
		Username:            user.Username,
		FullName:            user.FullName,
		Age:                 user.Age,
		NumLevel:            user.NumLevel,
		CurrentUnit:         user.CurrentUnit,
		Level:               user.Level,
		ReasonForStudying:   user.ReasonForStudying,
		StudyTimeMinutes:    user.StudyTimeMinutes,
		StartOption:         user.StartOption,
		OnboardingCompleted: user.OnboardingCompleted,
	}
}
