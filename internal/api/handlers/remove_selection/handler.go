package remove_selection

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/CBO-CourseService/internal/api/handlers"
	selectionsService "github.com/m04kA/CBO-CourseService/internal/service/selections"
)

const (
	msgInvalidSelectionID = "некорректный ID активности"
	msgSelectionNotFound  = "активность не найдена"
	msgSessionMismatch    = "активность принадлежит другой сессии"
)

type Handler struct {
	service SelectionsService
	logger  Logger
}

func NewHandler(service SelectionsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/sessions/{sessionId}/selections/{selectionId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sessionID := vars["sessionId"]

	selectionID, err := strconv.ParseInt(vars["selectionId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /sessions/{id}/selections/{id} - Invalid selection ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSelectionID)
		return
	}

	if err := h.service.Remove(r.Context(), sessionID, selectionID); err != nil {
		switch {
		case errors.Is(err, selectionsService.ErrSelectionNotFound):
			h.logger.Warn("DELETE /sessions/{id}/selections/{id} - Not found: session=%s, selection_id=%d",
				sessionID, selectionID)
			handlers.RespondNotFound(w, msgSelectionNotFound)

		case errors.Is(err, selectionsService.ErrSessionMismatch):
			h.logger.Warn("DELETE /sessions/{id}/selections/{id} - Session mismatch: session=%s, selection_id=%d",
				sessionID, selectionID)
			handlers.RespondError(w, http.StatusForbidden, msgSessionMismatch)

		default:
			h.logger.Error("DELETE /sessions/{id}/selections/{id} - Failed: session=%s, selection_id=%d, error=%v",
				sessionID, selectionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /sessions/{id}/selections/{id} - Removed: session=%s, selection_id=%d",
		sessionID, selectionID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
