package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/oyanquantum/oyan/internal/auth"
	"github.com/oyanquantum/oyan/internal/models"
	"github.com/oyanquantum/oyan/internal/services"
)

// ProfileService is the interface that wraps methods for profile business logic.
type ProfileService interface {
	// Method GetProfile retrieves the user's profile.
	GetProfile(ctx context.Context, userID int) (*models.ProfileResponse, error)
	// Method UpdateProfile applies the non-nil fields of the update request
	// and returns the updated profile.
	UpdateProfile(ctx context.Context, userID int, req models.ProfileUpdateRequest) (*models.ProfileResponse, error)
}

// OnboardingService is the interface that wraps the onboarding completion flow.
type OnboardingService interface {
	// Method CompleteOnboarding records the chosen start option and resets
	// progression to the beginning of the course.
	CompleteOnboarding(ctx context.Context, userID int, startOption string) error
}

// ProfileHandler handles profile-related HTTP requests
type ProfileHandler struct {
	BaseHandler
	profileService    ProfileService
	onboardingService OnboardingService
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profileService ProfileService, onboardingService OnboardingService, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{
		BaseHandler:       BaseHandler{logger: logger},
		profileService:    profileService,
		onboardingService: onboardingService,
	}
}

// RegisterRoutes registers all profile handler routes.
// Routes require the auth middleware.
func (h *ProfileHandler) RegisterRoutes(r chi.Router) {
	r.Route("/profile", func(r chi.Router) {
		r.Get("/", h.Get)
		r.Put("/", h.Update)
		r.Post("/onboarding", h.CompleteOnboarding)
	})
}

// Get handles GET /profile
// @Summary Get the current user's profile
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ProfileResponse "Profile"
// @Failure 401 {object} map[string]string "Authentication required"
// @Failure 404 {object} map[string]string "User not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /profile [get]
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserID(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	profile, err := h.profileService.GetProfile(r.Context(), userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			h.respondError(w, http.StatusNotFound, err.Error())
			return
		}
		h.logger.Error("failed to get profile", zap.Error(err), zap.Int("user_id", userID))
		h.respondError(w, http.StatusInternalServerError, "failed to get profile")
		return
	}

	h.respondJSON(w, http.StatusOK, profile)
}

// Update handles PUT /profile
// @Summary Update the current user's profile
// @Description Apply the provided profile fields; omitted fields stay unchanged.
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.ProfileUpdateRequest true "Fields to update"
// @Success 200 {object} models.ProfileResponse "Updated profile"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Authentication required"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /profile [put]
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserID(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req models.ProfileUpdateRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	profile, err := h.profileService.UpdateProfile(r.Context(), userID, req)
	if err != nil {
		h.logger.Error("failed to update profile", zap.Error(err), zap.Int("user_id", userID))
		h.respondError(w, http.StatusInternalServerError, "failed to update profile")
		return
	}

	h.respondJSON(w, http.StatusOK, profile)
}

type onboardingRequest struct {
	StartOption string `json:"start_option"`
}

// CompleteOnboarding handles POST /profile/onboarding
// @Summary Complete onboarding
// @Description Record the chosen start option and reset course progression to lesson 1.
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body onboardingRequest true "Onboarding payload"
// @Success 200 {object} models.ProfileResponse "Updated profile"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Authentication required"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /profile/onboarding [post]
func (h *ProfileHandler) CompleteOnboarding(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserID(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req onboardingRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	if err := h.onboardingService.CompleteOnboarding(r.Context(), userID, req.StartOption); err != nil {
		h.logger.Error("failed to complete onboarding", zap.Error(err), zap.Int("user_id", userID))
		h.respondError(w, http.StatusInternalServerError, "failed to complete onboarding")
		return
	}

	profile, err := h.profileService.GetProfile(r.Context(), userID)
	if err != nil {
		h.logger.Error("failed to reload profile after onboarding", zap.Error(err), zap.Int("user_id", userID))
		h.respondError(w, http.StatusInternalServerError, "failed to load profile")
		return
	}

	h.respondJSON(w, http.StatusOK, profile)
}
