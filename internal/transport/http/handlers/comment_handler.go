package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/akademix/backend/internal/service"
	"github.com/akademix/backend/internal/transport/http/middleware"
	"github.com/akademix/backend/pkg/validator"
)

type CommentHandler struct {
	commentService  *service.CommentService
	reactionService *service.ReactionService
	log             *zap.Logger
}

func NewCommentHandler(
	commentService *service.CommentService,
	reactionService *service.ReactionService,
	log *zap.Logger,
) *CommentHandler {
	return &CommentHandler{
		commentService:  commentService,
		reactionService: reactionService,
		log:             log,
	}
}

func (h *CommentHandler) ListByPublication(w http.ResponseWriter, r *http.Request) {
	publicationID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid publication ID")
		return
	}
	page, size := pageParams(r)

	result, err := h.commentService.ListByPublication(r.Context(), publicationID, page, size)
	if err != nil {
		if errors.Is(err, service.ErrPublicationNotFound) {
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Publication not found")
		} else {
			h.log.Error("list comments failed", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	callerID := middleware.GetUserID(r.Context())
	publicationID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid publication ID")
		return
	}

	var input service.CommentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if errs := validator.ValidateComment(input.Content); errs.HasErrors() {
		writeValidationErrors(w, errs)
		return
	}

	comment, err := h.commentService.Create(r.Context(), callerID, publicationID, input)
	if err != nil {
		h.writeCommentError(w, err, "create comment failed")
		return
	}

	writeJSON(w, http.StatusCreated, comment)
}

func (h *CommentHandler) Update(w http.ResponseWriter, r *http.Request) {
	callerID := middleware.GetUserID(r.Context())
	commentID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid comment ID")
		return
	}

	var input service.CommentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if errs := validator.ValidateComment(input.Content); errs.HasErrors() {
		writeValidationErrors(w, errs)
		return
	}

	comment, err := h.commentService.Update(r.Context(), commentID, callerID, input)
	if err != nil {
		h.writeCommentError(w, err, "update comment failed")
		return
	}

	writeJSON(w, http.StatusOK, comment)
}

func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	callerID := middleware.GetUserID(r.Context())
	commentID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid comment ID")
		return
	}

	if err := h.commentService.Delete(r.Context(), commentID, callerID); err != nil {
		h.writeCommentError(w, err, "delete comment failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *CommentHandler) Like(w http.ResponseWriter, r *http.Request) {
	callerID := middleware.GetUserID(r.Context())
	commentID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid comment ID")
		return
	}

	if err := h.reactionService.LikeComment(r.Context(), callerID, commentID); err != nil {
		h.writeCommentError(w, err, "like comment failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *CommentHandler) Unlike(w http.ResponseWriter, r *http.Request) {
	callerID := middleware.GetUserID(r.Context())
	commentID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid comment ID")
		return
	}

	if err := h.reactionService.UnlikeComment(r.Context(), callerID, commentID); err != nil {
		h.writeCommentError(w, err, "unlike comment failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *CommentHandler) writeCommentError(w http.ResponseWriter, err error, logMsg string) {
	switch {
	case errors.Is(err, service.ErrCommentNotFound):
		writeError(w, http.StatusNotFound, "NOT_FOUND", "Comment not found")
	case errors.Is(err, service.ErrPublicationNotFound):
		writeError(w, http.StatusNotFound, "NOT_FOUND", "Publication not found")
	case errors.Is(err, service.ErrUserNotFound):
		writeError(w, http.StatusNotFound, "NOT_FOUND", "User not found")
	case errors.Is(err, service.ErrNotCommentAuthor):
		writeError(w, http.StatusForbidden, "FORBIDDEN", "Only the author can do this")
	case errors.Is(err, service.ErrContentRequired):
		writeError(w, http.StatusBadRequest, "INVALID_INPUT", err.Error())
	default:
		h.log.Error(logMsg, zap.Error(err))
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
	}
}
