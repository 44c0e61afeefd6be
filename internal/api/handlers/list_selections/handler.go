package list_selections

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/CBO-CourseService/internal/api/handlers"
	selectionsService "github.com/m04kA/CBO-CourseService/internal/service/selections"
)

const (
	msgMissingSessionID = "ID сессии обязателен"
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

// Handle GET /api/v1/sessions/{sessionId}/selections
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	result, err := h.service.List(r.Context(), sessionID)
	if err != nil {
		switch {
		case errors.Is(err, selectionsService.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgMissingSessionID)

		default:
			h.logger.Error("GET /sessions/{id}/selections - Failed: session=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /sessions/{id}/selections - %d selections: session=%s", result.Total, sessionID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
