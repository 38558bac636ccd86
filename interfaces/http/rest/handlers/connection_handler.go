package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/deepak445566/socialmedia/application/services"
	"github.com/deepak445566/socialmedia/pkg/auth"
	"github.com/deepak445566/socialmedia/pkg/common"
	pkgerrors "github.com/deepak445566/socialmedia/pkg/errors"
	"github.com/deepak445566/socialmedia/pkg/utils"
)

// ConnectionHandler handles follower-graph HTTP requests
type ConnectionHandler struct {
	connections  *services.ConnectionService
	errorHandler *pkgerrors.ErrorHandler
	logger       *zap.Logger
}

// NewConnectionHandler creates a new connection handler
func NewConnectionHandler(
	connections *services.ConnectionService,
	errorHandler *pkgerrors.ErrorHandler,
	logger *zap.Logger,
) *ConnectionHandler {
	return &ConnectionHandler{
		connections:  connections,
		errorHandler: errorHandler,
		logger:       logger,
	}
}

// FollowRequest is the request body for follow and unfollow
type FollowRequest struct {
	UserID string `json:"userId" validate:"required"`
}

// Follow handles POST /api/user/follow
func (h *ConnectionHandler) Follow(w http.ResponseWriter, r *http.Request) {
	userCtx, req, ok := h.followRequest(w, r)
	if !ok {
		return
	}

	if _, err := h.connections.Follow(r.Context(), userCtx.UserID, req.UserID); err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	common.RespondMessage(w, http.StatusOK, "user followed successfully", nil)
}

// Unfollow handles POST /api/user/unfollow
func (h *ConnectionHandler) Unfollow(w http.ResponseWriter, r *http.Request) {
	userCtx, req, ok := h.followRequest(w, r)
	if !ok {
		return
	}

	if err := h.connections.Unfollow(r.Context(), userCtx.UserID, req.UserID); err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	common.RespondMessage(w, http.StatusOK, "user unfollowed successfully", nil)
}

// ListFollowers handles GET /api/user/followers/{userID}
func (h *ConnectionHandler) ListFollowers(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	followers, err := h.connections.ListFollowers(r.Context(), userID)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, followers)
}

// ListFollowing handles GET /api/user/following/{userID}
func (h *ConnectionHandler) ListFollowing(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	following, err := h.connections.ListFollowing(r.Context(), userID)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, following)
}

// Counts handles GET /api/user/connection-counts/{userID}
func (h *ConnectionHandler) Counts(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	counts, err := h.connections.Counts(r.Context(), userID)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, counts)
}

// CheckFollowing handles GET /api/user/check-following/{userID} and
// reports whether the session user follows the target
func (h *ConnectionHandler) CheckFollowing(w http.ResponseWriter, r *http.Request) {
	userCtx, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		h.errorHandler.Handle(w, r, pkgerrors.NewUnauthorizedError("authentication required"))
		return
	}
	targetID := chi.URLParam(r, "userID")

	following, err := h.connections.IsFollowing(r.Context(), userCtx.UserID, targetID)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, map[string]bool{"isFollowing": following})
}

func (h *ConnectionHandler) followRequest(w http.ResponseWriter, r *http.Request) (*auth.UserContext, FollowRequest, bool) {
	var req FollowRequest

	userCtx, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		h.errorHandler.Handle(w, r, pkgerrors.NewUnauthorizedError("authentication required"))
		return nil, req, false
	}

	if err := common.ParseJSONBody(w, r, &req, maxJSONBody); err != nil {
		h.errorHandler.Handle(w, r, err)
		return nil, req, false
	}
	if err := utils.ValidateStruct(req); err != nil {
		h.errorHandler.Handle(w, r, err)
		return nil, req, false
	}

	return userCtx, req, true
}
