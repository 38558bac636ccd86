package handlers

import (
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/deepak445566/socialmedia/application/services"
	"github.com/deepak445566/socialmedia/pkg/auth"
	"github.com/deepak445566/socialmedia/pkg/common"
	pkgerrors "github.com/deepak445566/socialmedia/pkg/errors"
	"github.com/deepak445566/socialmedia/pkg/utils"
)

// PostHandler handles post HTTP requests
type PostHandler struct {
	posts        *services.PostService
	errorHandler *pkgerrors.ErrorHandler
	logger       *zap.Logger
}

// NewPostHandler creates a new post handler
func NewPostHandler(
	posts *services.PostService,
	errorHandler *pkgerrors.ErrorHandler,
	logger *zap.Logger,
) *PostHandler {
	return &PostHandler{
		posts:        posts,
		errorHandler: errorHandler,
		logger:       logger,
	}
}

// PostIDRequest carries a post reference in the request body
type PostIDRequest struct {
	PostID string `json:"postId" validate:"required"`
}

// Upload handles POST /api/post/postUpload. The body text comes from the
// multipart field "body"; the optional file field is "media".
func (h *PostHandler) Upload(w http.ResponseWriter, r *http.Request) {
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

	body := r.FormValue("body")

	var media []byte
	var contentType string
	if file, header, err := r.FormFile("media"); err == nil {
		defer file.Close()
		media, err = io.ReadAll(file)
		if err != nil {
			h.errorHandler.Handle(w, r, pkgerrors.NewValidationError("failed to read media file"))
			return
		}
		contentType = header.Header.Get("Content-Type")
	}

	view, err := h.posts.Create(r.Context(), userCtx.UserID, body, contentType, media)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	common.RespondMessage(w, http.StatusCreated, "post created", view)
}

// ListAll handles GET /api/post/getAllPosts
func (h *PostHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	views, err := h.posts.ListAll(r.Context())
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, views)
}

// ListMine handles GET /api/post/getMyPosts
func (h *PostHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	userCtx, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		h.errorHandler.Handle(w, r, pkgerrors.NewUnauthorizedError("authentication required"))
		return
	}

	views, err := h.posts.ListMine(r.Context(), userCtx.UserID)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, views)
}

// Delete handles DELETE /api/post/delete
func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userCtx, req, ok := h.postIDRequest(w, r)
	if !ok {
		return
	}

	if err := h.posts.Delete(r.Context(), req.PostID, userCtx.UserID); err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	common.RespondMessage(w, http.StatusOK, "post deleted", nil)
}

// ToggleLike handles PUT /api/post/like
func (h *PostHandler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	userCtx, req, ok := h.postIDRequest(w, r)
	if !ok {
		return
	}

	result, err := h.posts.ToggleLike(r.Context(), req.PostID, userCtx.UserID)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	message := "post unliked"
	if result.Liked {
		message = "post liked"
	}
	common.RespondMessage(w, http.StatusOK, message, result)
}

func (h *PostHandler) postIDRequest(w http.ResponseWriter, r *http.Request) (*auth.UserContext, PostIDRequest, bool) {
	var req PostIDRequest

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
