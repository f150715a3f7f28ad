package article

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/clothesshop/client-api/internal/auth"
	"github.com/clothesshop/client-api/internal/httputil"
	"github.com/clothesshop/client-api/internal/logging"
	"github.com/clothesshop/client-api/internal/validate"
)

// Handler contains HTTP handlers for article, comment and like endpoints
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// CreateArticleRequest represents the article creation body
type CreateArticleRequest struct {
	Title       string   `json:"title" validate:"required,max=200"`
	Description string   `json:"description" validate:"max=500"`
	Content     string   `json:"content" validate:"required"`
	Categories  []string `json:"categories" validate:"dive,required"`
	IsActive    *bool    `json:"is_active"`
	ReadingTime int      `json:"reading_time" validate:"min=0"`
}

func (r CreateArticleRequest) Validate() error {
	return validate.Struct(r)
}

// UpdateArticleRequest represents the article update body
type UpdateArticleRequest struct {
	Title       string   `json:"title" validate:"required,max=200"`
	Description string   `json:"description" validate:"max=500"`
	Content     string   `json:"content" validate:"required"`
	Categories  []string `json:"categories" validate:"dive,required"`
	IsActive    *bool    `json:"is_active"`
	ReadingTime int      `json:"reading_time" validate:"min=0"`
}

func (r UpdateArticleRequest) Validate() error {
	return validate.Struct(r)
}

// CreateCommentRequest represents the comment creation body
type CreateCommentRequest struct {
	Content string `json:"content" validate:"required,max=2000"`
}

func (r CreateCommentRequest) Validate() error {
	return validate.Struct(r)
}

// List handles listing active articles
// @Summary      List active articles
// @Tags         articles
// @Produce      json
// @Success      200 {array} Article
// @Router       /client/articles [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	articles, err := h.service.List(r.Context())
	if err != nil {
		logger.Error("failed to list articles", "error", err.Error())
		httputil.RespondErrorWithCode(w, "failed to list articles", httputil.CodeInternalError, http.StatusInternalServerError)
		return
	}

	httputil.RespondJSON(w, articles, http.StatusOK)
}

// Get handles fetching a single article
// @Summary      Get a single article
// @Tags         articles
// @Produce      json
// @Param        id path string true "Article ID"
// @Success      200 {object} Article
// @Failure      404 {object} httputil.ErrorResponse "Not found"
// @Router       /client/articles/{id} [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	a, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httputil.RespondErrorWithCode(w, "article not found", httputil.CodeNotFound, http.StatusNotFound)
			return
		}
		logger.Error("failed to get article", "error", err.Error())
		httputil.RespondErrorWithCode(w, "failed to get article", httputil.CodeInternalError, http.StatusInternalServerError)
		return
	}

	httputil.RespondJSON(w, a, http.StatusOK)
}

// Create handles article creation
// @Summary      Create an article
// @Tags         articles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateArticleRequest true "Article fields"
// @Success      201 {object} Article
// @Failure      400 {object} httputil.ErrorResponse "Validation error"
// @Failure      401 {object} httputil.ErrorResponse "Unauthorized"
// @Router       /client/articles [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		httputil.RespondErrorWithCode(w, "unauthorized", httputil.CodeUnauthorized, http.StatusUnauthorized)
		return
	}

	var req CreateArticleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.RespondErrorWithCode(w, "invalid request body", httputil.CodeInvalidRequestBody, http.StatusBadRequest)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.RespondErrorWithCode(w, err.Error(), httputil.CodeValidationFailed, http.StatusBadRequest)
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	created, err := h.service.Create(r.Context(), &Article{
		AuthorID:    identity.ID,
		Title:       req.Title,
		Description: req.Description,
		Content:     req.Content,
		Categories:  req.Categories,
		IsActive:    isActive,
		ReadingTime: req.ReadingTime,
	})
	if err != nil {
		logger.Error("failed to create article", "error", err.Error())
		httputil.RespondErrorWithCode(w, "failed to create article", httputil.CodeInternalError, http.StatusInternalServerError)
		return
	}

	httputil.RespondJSON(w, created, http.StatusCreated)
}

// Update handles article edits
// @Summary      Update an article
// @Tags         articles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Article ID"
// @Param        request body UpdateArticleRequest true "Article fields"
// @Success      200 {object} Article
// @Failure      400 {object} httputil.ErrorResponse "Validation error"
// @Failure      401 {object} httputil.ErrorResponse "Unauthorized"
// @Failure      404 {object} httputil.ErrorResponse "Not found"
// @Router       /client/articles/{id} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		httputil.RespondErrorWithCode(w, "unauthorized", httputil.CodeUnauthorized, http.StatusUnauthorized)
		return
	}

	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	var req UpdateArticleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.RespondErrorWithCode(w, "invalid request body", httputil.CodeInvalidRequestBody, http.StatusBadRequest)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.RespondErrorWithCode(w, err.Error(), httputil.CodeValidationFailed, http.StatusBadRequest)
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	updated, err := h.service.Update(r.Context(), &Article{
		ID:          id,
		AuthorID:    identity.ID,
		Title:       req.Title,
		Description: req.Description,
		Content:     req.Content,
		Categories:  req.Categories,
		IsActive:    isActive,
		ReadingTime: req.ReadingTime,
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httputil.RespondErrorWithCode(w, "article not found", httputil.CodeNotFound, http.StatusNotFound)
			return
		}
		logger.Error("failed to update article", "error", err.Error())
		httputil.RespondErrorWithCode(w, "failed to update article", httputil.CodeInternalError, http.StatusInternalServerError)
		return
	}

	httputil.RespondJSON(w, updated, http.StatusOK)
}

// Delete handles article removal
// @Summary      Delete an article
// @Tags         articles
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Article ID"
// @Success      200 {object} map[string]string
// @Failure      401 {object} httputil.ErrorResponse "Unauthorized"
// @Failure      404 {object} httputil.ErrorResponse "Not found"
// @Router       /client/articles/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		httputil.RespondErrorWithCode(w, "unauthorized", httputil.CodeUnauthorized, http.StatusUnauthorized)
		return
	}

	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id, identity.ID); err != nil {
		if errors.Is(err, ErrNotFound) {
			httputil.RespondErrorWithCode(w, "article not found", httputil.CodeNotFound, http.StatusNotFound)
			return
		}
		logger.Error("failed to delete article", "error", err.Error())
		httputil.RespondErrorWithCode(w, "failed to delete article", httputil.CodeInternalError, http.StatusInternalServerError)
		return
	}

	httputil.RespondJSON(w, map[string]string{"message": "article deleted"}, http.StatusOK)
}

// ListComments handles listing an article's comments
// @Summary      List an article's comments
// @Tags         comments
// @Produce      json
// @Param        id path string true "Article ID"
// @Success      200 {array} Comment
// @Failure      404 {object} httputil.ErrorResponse "Not found"
// @Router       /client/articles/{id}/comments [get]
func (h *Handler) ListComments(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	comments, err := h.service.ListComments(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httputil.RespondErrorWithCode(w, "article not found", httputil.CodeNotFound, http.StatusNotFound)
			return
		}
		logger.Error("failed to list comments", "error", err.Error())
		httputil.RespondErrorWithCode(w, "failed to list comments", httputil.CodeInternalError, http.StatusInternalServerError)
		return
	}

	httputil.RespondJSON(w, comments, http.StatusOK)
}

// CreateComment handles commenting on an article
// @Summary      Comment on an article
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Article ID"
// @Param        request body CreateCommentRequest true "Comment fields"
// @Success      201 {object} Comment
// @Failure      400 {object} httputil.ErrorResponse "Validation error"
// @Failure      401 {object} httputil.ErrorResponse "Unauthorized"
// @Failure      404 {object} httputil.ErrorResponse "Not found"
// @Router       /client/articles/{id}/comments [post]
func (h *Handler) CreateComment(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		httputil.RespondErrorWithCode(w, "unauthorized", httputil.CodeUnauthorized, http.StatusUnauthorized)
		return
	}

	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	var req CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.RespondErrorWithCode(w, "invalid request body", httputil.CodeInvalidRequestBody, http.StatusBadRequest)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.RespondErrorWithCode(w, err.Error(), httputil.CodeValidationFailed, http.StatusBadRequest)
		return
	}

	comment, err := h.service.AddComment(r.Context(), id, identity.ID, req.Content)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httputil.RespondErrorWithCode(w, "article not found", httputil.CodeNotFound, http.StatusNotFound)
			return
		}
		logger.Error("failed to create comment", "error", err.Error())
		httputil.RespondErrorWithCode(w, "failed to create comment", httputil.CodeInternalError, http.StatusInternalServerError)
		return
	}

	httputil.RespondJSON(w, comment, http.StatusCreated)
}

// DeleteComment handles removing one's own comment
// @Summary      Delete a comment
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Comment ID"
// @Success      200 {object} map[string]string
// @Failure      401 {object} httputil.ErrorResponse "Unauthorized"
// @Failure      404 {object} httputil.ErrorResponse "Not found"
// @Router       /client/comments/{id} [delete]
func (h *Handler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		httputil.RespondErrorWithCode(w, "unauthorized", httputil.CodeUnauthorized, http.StatusUnauthorized)
		return
	}

	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteComment(r.Context(), id, identity.ID); err != nil {
		if errors.Is(err, ErrCommentNotFound) {
			httputil.RespondErrorWithCode(w, "comment not found", httputil.CodeNotFound, http.StatusNotFound)
			return
		}
		logger.Error("failed to delete comment", "error", err.Error())
		httputil.RespondErrorWithCode(w, "failed to delete comment", httputil.CodeInternalError, http.StatusInternalServerError)
		return
	}

	httputil.RespondJSON(w, map[string]string{"message": "comment deleted"}, http.StatusOK)
}

// ToggleLike handles toggling a like on an article
// @Summary      Toggle a like on an article
// @Tags         likes
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Article ID"
// @Success      200 {object} LikeState
// @Failure      401 {object} httputil.ErrorResponse "Unauthorized"
// @Failure      404 {object} httputil.ErrorResponse "Not found"
// @Router       /client/articles/{id}/like [put]
func (h *Handler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		httputil.RespondErrorWithCode(w, "unauthorized", httputil.CodeUnauthorized, http.StatusUnauthorized)
		return
	}

	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	state, err := h.service.ToggleLike(r.Context(), id, identity.ID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httputil.RespondErrorWithCode(w, "article not found", httputil.CodeNotFound, http.StatusNotFound)
			return
		}
		logger.Error("failed to toggle like", "error", err.Error())
		httputil.RespondErrorWithCode(w, "failed to toggle like", httputil.CodeInternalError, http.StatusInternalServerError)
		return
	}

	httputil.RespondJSON(w, state, http.StatusOK)
}

// parseIDParam parses a UUID path parameter, responding 404 on malformed
// input so unknown and invalid ids look the same.
func parseIDParam(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		httputil.RespondErrorWithCode(w, "not found", httputil.CodeNotFound, http.StatusNotFound)
		return uuid.Nil, false
	}
	return id, true
}
