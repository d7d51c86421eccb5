package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/oyanquantum/oyan/internal/models"
	"github.com/oyanquantum/oyan/internal/services"
)

// AuthService is the interface that wraps methods for authentication business logic.
type AuthService interface {
	// Method Register creates a new account and issues a token pair.
	//
	// If the username is taken or the credentials are invalid, the error will be returned together with "nil" value.
	Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error)
	// Method Login verifies credentials and issues a token pair.
	//
	// If the credentials do not match an account, the error will be returned together with "nil" value.
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	// Method Refresh exchanges a valid refresh token for a new token pair.
	//
	// If the refresh token is invalid or expired, the error will be returned together with "nil" value.
	Refresh(ctx context.Context, refreshToken string) (*models.AuthResponse, error)
}

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	BaseHandler
	authService AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		BaseHandler: BaseHandler{logger: logger},
		authService: authService,
	}
}

// RegisterRoutes registers all auth handler routes
// Note: This assumes the router is already scoped to /api/v1
func (h *AuthHandler) RegisterRoutes(r chi.Router) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.Register)
		r.Post("/login", h.Login)
		r.Post("/refresh", h.Refresh)
	})
}

// Register handles POST /auth/register
// @Summary Register a new user
// @Description Register a new account with username and password. Returns the user id with access and refresh tokens.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Registration payload"
// @Success 201 {object} models.AuthResponse "User registered successfully"
// @Failure 400 {object} map[string]string "Invalid request body or missing credentials"
// @Failure 409 {object} map[string]string "Username already exists"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.authService.Register(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCredentials):
			h.respondError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, services.ErrUsernameTaken):
			h.respondError(w, http.StatusConflict, err.Error())
		default:
			h.logger.Error("failed to register user", zap.Error(err))
			h.respondError(w, http.StatusInternalServerError, "failed to register user")
		}
		return
	}

	h.respondJSON(w, http.StatusCreated, resp)
}

// Login handles POST /auth/login
// @Summary Log in
// @Description Verify username and password and return a fresh token pair.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login payload"
// @Success 200 {object} models.AuthResponse "Logged in successfully"
// @Failure 400 {object} map[string]string "Invalid request body or missing credentials"
// @Failure 401 {object} map[string]string "Unknown user or wrong password"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.authService.Login(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCredentials):
			h.respondError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, services.ErrUserNotFound), errors.Is(err, services.ErrInvalidPassword):
			h.respondError(w, http.StatusUnauthorized, err.Error())
		default:
			h.logger.Error("failed to log in user", zap.Error(err))
			h.respondError(w, http.StatusInternalServerError, "failed to log in")
		}
		return
	}

	h.respondJSON(w, http.StatusOK, resp)
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// Refresh handles POST /auth/refresh
// @Summary Refresh tokens
// @Description Exchange a valid refresh token for a new token pair.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body refreshRequest true "Refresh payload"
// @Success 200 {object} models.AuthResponse "Tokens refreshed"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Invalid or expired refresh token"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.authService.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidRefresh), errors.Is(err, services.ErrUserNotFound):
			h.respondError(w, http.StatusUnauthorized, err.Error())
		default:
			h.logger.Error("failed to refresh tokens", zap.Error(err))
			h.respondError(w, http.StatusInternalServerError, "failed to refresh tokens")
		}
		return
	}

	h.respondJSON(w, http.StatusOK, resp)
}
