package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/quillpost/quillpost/internal/auth"
	"github.com/quillpost/quillpost/internal/handler/dto"
	"github.com/quillpost/quillpost/internal/service"
)

// PostHandler handles HTTP requests for post operations.
// All routes sit behind the auth middleware; the verified identity is
// read from the request context and its user ID passed explicitly into
// the service.
type PostHandler struct {
	svc    *service.PostService
	logger *slog.Logger
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(svc *service.PostService, logger *slog.Logger) *PostHandler {
	return &PostHandler{
		svc:    svc,
		logger: logger,
	}
}

// Create handles POST /posts.
func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity := auth.IdentityFromContext(r.Context())
	if identity == nil {
		writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	var req dto.CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	post, err := h.svc.CreatePost(r.Context(), service.CreatePostInput{
		Title:   req.Title,
		Content: req.Content,
	}, identity.UserID)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("post_created",
		"post_id", post.ID,
		"author_id", post.AuthorID,
	)

	writeJSON(w, http.StatusCreated, dto.PostMessageResponse{
		Message: "Post created successfully",
		Post:    dto.ToPostResponse(post),
	})
}

// List handles GET /posts.
func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	identity := auth.IdentityFromContext(r.Context())
	if identity == nil {
		writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	posts, err := h.svc.ListPosts(r.Context(), identity.UserID)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToPostListResponse(posts))
}

// Get handles GET /posts/{id}.
func (h *PostHandler) Get(w http.ResponseWriter, r *http.Request) {
	identity := auth.IdentityFromContext(r.Context())
	if identity == nil {
		writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	postID, ok := parsePostID(w, r)
	if !ok {
		return
	}

	post, err := h.svc.GetPost(r.Context(), postID, identity.UserID)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToPostResponse(post))
}

// Update handles PATCH /posts/{id}.
func (h *PostHandler) Update(w http.ResponseWriter, r *http.Request) {
	identity := auth.IdentityFromContext(r.Context())
	if identity == nil {
		writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	postID, ok := parsePostID(w, r)
	if !ok {
		return
	}

	var req dto.UpdatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	post, err := h.svc.UpdatePost(r.Context(), postID, identity.UserID, service.UpdatePostInput{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("post_updated",
		"post_id", post.ID,
		"author_id", post.AuthorID,
	)

	writeJSON(w, http.StatusOK, dto.UpdatePostResponse{
		Message:     "Post updated successfully",
		UpdatedPost: dto.ToPostResponse(post),
	})
}

// Delete handles DELETE /posts/{id}.
func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	identity := auth.IdentityFromContext(r.Context())
	if identity == nil {
		writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	postID, ok := parsePostID(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeletePost(r.Context(), postID, identity.UserID); err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("post_deleted",
		"post_id", postID,
		"author_id", identity.UserID,
	)

	writeJSON(w, http.StatusOK, dto.MessageResponse{
		Message: "Post deleted successfully",
	})
}

// parsePostID extracts the {id} path segment as a positive integer.
// Writes a 400 and returns false for anything else, before the service
// layer is reached.
func parsePostID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Post ID must be a positive integer")
		return 0, false
	}
	return id, true
}

// handleServiceError maps post service errors to HTTP responses.
func (h *PostHandler) handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, "INVALID_INPUT", err.Error())
	case errors.Is(err, service.ErrPostNotFound):
		writeError(w, http.StatusNotFound, "POST_NOT_FOUND", "Post not found")
	case errors.Is(err, service.ErrNotOwner):
		writeError(w, http.StatusForbidden, "FORBIDDEN", "You are not the owner of this post")
	default:
		h.logger.Error("internal_error", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
	}
}
