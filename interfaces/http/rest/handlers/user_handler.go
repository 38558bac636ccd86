// Package handlers contains the HTTP handlers for the REST interface.
package handlers

import (
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/deepak445566/socialmedia/application/services"
	"github.com/deepak445566/socialmedia/interfaces/http/rest/middleware"
	"github.com/deepak445566/socialmedia/pkg/auth"
	"github.com/deepak445566/socialmedia/pkg/common"
	pkgerrors "github.com/deepak445566/socialmedia/pkg/errors"
	"github.com/deepak445566/socialmedia/pkg/utils"
)

const (
	maxJSONBody    = 1 << 20  // 1 MiB
	maxUploadBytes = 10 << 20 // 10 MiB
)

// UserHandler handles account and session HTTP requests
type UserHandler struct {
	accounts     *services.AccountService
	tokens       *auth.TokenService
	errorHandler *pkgerrors.ErrorHandler
	secureCookie bool
	logger       *zap.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(
	accounts *services.AccountService,
	tokens *auth.TokenService,
	errorHandler *pkgerrors.ErrorHandler,
	secureCookie bool,
	logger *zap.Logger,
) *UserHandler {
	return &UserHandler{
		accounts:     accounts,
		tokens:       tokens,
		errorHandler: errorHandler,
		secureCookie: secureCookie,
		logger:       logger,
	}
}

// RegisterRequest is the request body for account registration
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Username string `json:"username" validate:"required,min=3,max=30"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest is the request body for login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateAccountRequest is the request body for account updates. Empty
// fields leave the stored value unchanged.
type UpdateAccountRequest struct {
	Name     string `json:"name"`
	Username string `json:"username" validate:"omitempty,min=3,max=30"`
	Email    string `json:"email" validate:"omitempty,email"`
}

// Register handles POST /api/user/register
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := common.ParseJSONBody(w, r, &req, maxJSONBody); err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	result, err := h.accounts.Register(r.Context(), req.Name, req.Username, req.Email, req.Password)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	h.setSessionCookie(w, result.Token)
	common.RespondMessage(w, http.StatusCreated, "user registered successfully", result.Account)
}

// Login handles POST /api/user/login
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := common.ParseJSONBody(w, r, &req, maxJSONBody); err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	result, err := h.accounts.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	h.setSessionCookie(w, result.Token)
	common.RespondMessage(w, http.StatusOK, "login successful", result.Account)
}

// Logout handles POST /api/user/logout by expiring the session cookie
func (h *UserHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
	common.RespondMessage(w, http.StatusOK, "logged out", nil)
}

// IsAuth handles GET /api/user/isauth and returns the session's account
func (h *UserHandler) IsAuth(w http.ResponseWriter, r *http.Request) {
	userCtx, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		h.errorHandler.Handle(w, r, pkgerrors.NewUnauthorizedError("authentication required"))
		return
	}

	summary, err := h.accounts.GetAccount(r.Context(), userCtx.UserID)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, summary)
}

// Update handles PUT /api/user/update
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	userCtx, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		h.errorHandler.Handle(w, r, pkgerrors.NewUnauthorizedError("authentication required"))
		return
	}

	var req UpdateAccountRequest
	if err := common.ParseJSONBody(w, r, &req, maxJSONBody); err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	summary, err := h.accounts.UpdateAccount(r.Context(), userCtx.UserID, req.Name, req.Username, req.Email)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	common.RespondMessage(w, http.StatusOK, "user updated", summary)
}

// UploadPicture handles POST /api/user/picture (multipart, field "picture")
func (h *UserHandler) UploadPicture(w http.ResponseWriter, r *http.Request) {
	userCtx, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		h.errorHandler.Handle(w, r, pkgerrors.NewUnauthorizedError("authentication required"))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		h.errorHandler.Handle(w, r, pkgerrors.NewValidationError("invalid multipart body"))
		return
	}

	file, header, err := r.FormFile("picture")
	if err != nil {
		h.errorHandler.Handle(w, r, pkgerrors.NewValidationError("picture file is required"))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.errorHandler.Handle(w, r, pkgerrors.NewValidationError("failed to read picture file"))
		return
	}

	url, err := h.accounts.UploadPicture(r.Context(), userCtx.UserID, header.Header.Get("Content-Type"), data)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	common.RespondMessage(w, http.StatusOK, "profile picture updated", map[string]string{"url": url})
}

func (h *UserHandler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   h.tokens.ExpirySeconds(),
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}
