package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/deepak445566/socialmedia/application/services"
	"github.com/deepak445566/socialmedia/pkg/auth"
	"github.com/deepak445566/socialmedia/pkg/common"
	pkgerrors "github.com/deepak445566/socialmedia/pkg/errors"
	"github.com/deepak445566/socialmedia/pkg/utils"
)

// CommentHandler handles comment HTTP requests
type CommentHandler struct {
	comments     *services.CommentService
	errorHandler *pkgerrors.ErrorHandler
	logger       *zap.Logger
}

// NewCommentHandler creates a new comment handler
func NewCommentHandler(
	comments *services.CommentService,
	errorHandler *pkgerrors.ErrorHandler,
	logger *zap.Logger,
) *CommentHandler {
	return &CommentHandler{
		comments:     comments,
		errorHandler: errorHandler,
		logger:       logger,
	}
}

// CreateCommentRequest is the request body for creating a comment
type CreateCommentRequest struct {
	PostID string `json:"postId" validate:"required"`
	Body   string `json:"body" validate:"required"`
}

// DeleteCommentRequest is the request body for deleting a comment
type DeleteCommentRequest struct {
	CommentID string `json:"commentId" validate:"required"`
}

// Create handles POST /api/post/comment
func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	userCtx, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		h.errorHandler.Handle(w, r, pkgerrors.NewUnauthorizedError("authentication required"))
		return
	}

	var req CreateCommentRequest
	if err := common.ParseJSONBody(w, r, &req, maxJSONBody); err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	view, err := h.comments.Create(r.Context(), req.PostID, userCtx.UserID, req.Body)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	common.RespondMessage(w, http.StatusCreated, "comment added", view)
}

// ListByPost handles GET /api/post/comments?postId=
func (h *CommentHandler) ListByPost(w http.ResponseWriter, r *http.Request) {
	postID := r.URL.Query().Get("postId")
	if postID == "" {
		h.errorHandler.Handle(w, r, pkgerrors.NewValidationError("postId query parameter is required"))
		return
	}

	views, err := h.comments.ListByPost(r.Context(), postID)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, views)
}

// Delete handles POST /api/post/deletecomment
func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userCtx, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		h.errorHandler.Handle(w, r, pkgerrors.NewUnauthorizedError("authentication required"))
		return
	}

	var req DeleteCommentRequest
	if err := common.ParseJSONBody(w, r, &req, maxJSONBody); err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	if err := h.comments.Delete(r.Context(), req.CommentID, userCtx.UserID); err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	common.RespondMessage(w, http.StatusOK, "comment deleted", nil)
}
