package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/akademix/backend/internal/domain"
	"github.com/akademix/backend/internal/service"
	"github.com/akademix/backend/internal/transport/http/middleware"
	"github.com/akademix/backend/pkg/validator"
)

type PublicationHandler struct {
	publicationService *service.PublicationService
	reactionService    *service.ReactionService
	log                *zap.Logger
}

func NewPublicationHandler(
	publicationService *service.PublicationService,
	reactionService *service.ReactionService,
	log *zap.Logger,
) *PublicationHandler {
	return &PublicationHandler{
		publicationService: publicationService,
		reactionService:    reactionService,
		log:                log,
	}
}

func (h *PublicationHandler) List(w http.ResponseWriter, r *http.Request) {
	page, size := pageParams(r)

	result, err := h.publicationService.List(r.Context(), page, size)
	if err != nil {
		h.log.Error("list publications failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *PublicationHandler) ListByAuthor(w http.ResponseWriter, r *http.Request) {
	authorID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid user ID")
		return
	}
	page, size := pageParams(r)

	result, err := h.publicationService.ListByAuthor(r.Context(), authorID, page, size)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			writeError(w, http.StatusNotFound, "NOT_FOUND", "User not found")
		} else {
			h.log.Error("list publications by author failed", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *PublicationHandler) Search(w http.ResponseWriter, r *http.Request) {
	keyword := r.URL.Query().Get("keyword")

	pubs, err := h.publicationService.Search(r.Context(), keyword)
	if err != nil {
		h.log.Error("publication search failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}
	if pubs == nil {
		pubs = []domain.PublicationSummary{}
	}

	writeJSON(w, http.StatusOK, pubs)
}

func (h *PublicationHandler) Get(w http.ResponseWriter, r *http.Request) {
	publicationID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid publication ID")
		return
	}
	callerID := middleware.OptionalUserID(r.Context())

	details, err := h.publicationService.GetDetails(r.Context(), publicationID, callerID)
	if err != nil {
		if errors.Is(err, service.ErrPublicationNotFound) {
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Publication not found")
		} else {
			h.log.Error("get publication failed", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, details)
}

func (h *PublicationHandler) Create(w http.ResponseWriter, r *http.Request) {
	callerID := middleware.GetUserID(r.Context())

	var input service.PublicationInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if errs := validator.ValidatePublication(input.Title, input.Content); errs.HasErrors() {
		writeValidationErrors(w, errs)
		return
	}

	pub, err := h.publicationService.Create(r.Context(), callerID, input)
	if err != nil {
		h.log.Error("create publication failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	writeJSON(w, http.StatusCreated, pub)
}

func (h *PublicationHandler) Update(w http.ResponseWriter, r *http.Request) {
	callerID := middleware.GetUserID(r.Context())
	publicationID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid publication ID")
		return
	}

	var input service.PublicationInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if errs := validator.ValidatePublication(input.Title, input.Content); errs.HasErrors() {
		writeValidationErrors(w, errs)
		return
	}

	pub, err := h.publicationService.Update(r.Context(), publicationID, callerID, input)
	if err != nil {
		h.writePublicationError(w, err, "update publication failed")
		return
	}

	writeJSON(w, http.StatusOK, pub)
}

func (h *PublicationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	callerID := middleware.GetUserID(r.Context())
	publicationID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid publication ID")
		return
	}

	if err := h.publicationService.Delete(r.Context(), publicationID, callerID); err != nil {
		h.writePublicationError(w, err, "delete publication failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *PublicationHandler) Like(w http.ResponseWriter, r *http.Request) {
	callerID := middleware.GetUserID(r.Context())
	publicationID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid publication ID")
		return
	}

	if err := h.reactionService.LikePublication(r.Context(), callerID, publicationID); err != nil {
		h.writePublicationError(w, err, "like publication failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *PublicationHandler) Unlike(w http.ResponseWriter, r *http.Request) {
	callerID := middleware.GetUserID(r.Context())
	publicationID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid publication ID")
		return
	}

	if err := h.reactionService.UnlikePublication(r.Context(), callerID, publicationID); err != nil {
		h.writePublicationError(w, err, "unlike publication failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *PublicationHandler) writePublicationError(w http.ResponseWriter, err error, logMsg string) {
	switch {
	case errors.Is(err, service.ErrPublicationNotFound):
		writeError(w, http.StatusNotFound, "NOT_FOUND", "Publication not found")
	case errors.Is(err, service.ErrUserNotFound):
		writeError(w, http.StatusNotFound, "NOT_FOUND", "User not found")
	case errors.Is(err, service.ErrNotPublicationAuthor):
		writeError(w, http.StatusForbidden, "FORBIDDEN", "Only the author can do this")
	case errors.Is(err, service.ErrTitleRequired), errors.Is(err, service.ErrContentRequired):
		writeError(w, http.StatusBadRequest, "INVALID_INPUT", err.Error())
	default:
		h.log.Error(logMsg, zap.Error(err))
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
	}
}

// pageParams reads the zero-based page index and page size query params.
func pageParams(r *http.Request) (page, size int) {
	page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	size, _ = strconv.Atoi(r.URL.Query().Get("size"))
	return page, size
}
