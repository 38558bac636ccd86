package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/deepak445566/socialmedia/application/services"
	"github.com/deepak445566/socialmedia/domain/profile"
	"github.com/deepak445566/socialmedia/pkg/auth"
	"github.com/deepak445566/socialmedia/pkg/common"
	pkgerrors "github.com/deepak445566/socialmedia/pkg/errors"
)

// ProfileHandler handles profile HTTP requests
type ProfileHandler struct {
	profiles     *services.ProfileService
	errorHandler *pkgerrors.ErrorHandler
	logger       *zap.Logger
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(
	profiles *services.ProfileService,
	errorHandler *pkgerrors.ErrorHandler,
	logger *zap.Logger,
) *ProfileHandler {
	return &ProfileHandler{
		profiles:     profiles,
		errorHandler: errorHandler,
		logger:       logger,
	}
}

// UpdateProfileRequest is the request body for profile updates. Nil
// slices leave the stored lists unchanged.
type UpdateProfileRequest struct {
	Bio             string                   `json:"bio"`
	CurrentPosition string                   `json:"currentPosition"`
	PastWork        []profile.WorkEntry      `json:"pastWork"`
	Education       []profile.EducationEntry `json:"education"`
}

// GetMine handles GET /api/user/profile
func (h *ProfileHandler) GetMine(w http.ResponseWriter, r *http.Request) {
	userCtx, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		h.errorHandler.Handle(w, r, pkgerrors.NewUnauthorizedError("authentication required"))
		return
	}

	view, err := h.profiles.GetByUserID(r.Context(), userCtx.UserID)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, view)
}

// GetByUserID handles GET /api/user/profile/{userID}
func (h *ProfileHandler) GetByUserID(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	view, err := h.profiles.GetByUserID(r.Context(), userID)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, view)
}

// Update handles PUT /api/user/profile
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	userCtx, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		h.errorHandler.Handle(w, r, pkgerrors.NewUnauthorizedError("authentication required"))
		return
	}

	var req UpdateProfileRequest
	if err := common.ParseJSONBody(w, r, &req, maxJSONBody); err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	view, err := h.profiles.Update(r.Context(), userCtx.UserID, req.Bio, req.CurrentPosition, req.PastWork, req.Education)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	common.RespondMessage(w, http.StatusOK, "profile updated", view)
}

// List handles GET /api/user/profiles
func (h *ProfileHandler) List(w http.ResponseWriter, r *http.Request) {
	views, err := h.profiles.List(r.Context())
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, views)
}

// Download handles GET /api/user/download-profile?id= and returns the
// URL of the rendered profile document
func (h *ProfileHandler) Download(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("id")
	if userID == "" {
		h.errorHandler.Handle(w, r, pkgerrors.NewValidationError("id query parameter is required"))
		return
	}

	url, err := h.profiles.Export(r.Context(), userID)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, map[string]string{"url": url})
}
