package stage_selection

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/CBO-CourseService/internal/api/handlers"
	selectionsService "github.com/m04kA/CBO-CourseService/internal/service/selections"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgSelectionNotFound  = "редактируемая активность не найдена"
	msgSessionMismatch    = "активность принадлежит другой сессии"
	msgInvalidStageData   = "некорректные данные активности"
	msgBackendUnavailable = "сервис курсов недоступен"
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

// Handle POST /api/v1/sessions/{sessionId}/selections
// Конфликт не ошибка: возвращается 200 с hasConflict=true и деталями
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req StageSelectionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions/{id}/selections - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest(sessionID)
	if err != nil {
		h.logger.Warn("POST /sessions/{id}/selections - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.Stage(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, selectionsService.ErrSelectionNotFound):
			h.logger.Warn("POST /sessions/{id}/selections - Edited selection not found: session=%s", sessionID)
			handlers.RespondNotFound(w, msgSelectionNotFound)

		case errors.Is(err, selectionsService.ErrSessionMismatch):
			h.logger.Warn("POST /sessions/{id}/selections - Session mismatch: session=%s", sessionID)
			handlers.RespondError(w, http.StatusForbidden, msgSessionMismatch)

		case errors.Is(err, selectionsService.ErrInvalidInput):
			h.logger.Warn("POST /sessions/{id}/selections - Invalid input: session=%s, error=%v", sessionID, err)
			handlers.RespondBadRequest(w, msgInvalidStageData)

		case errors.Is(err, selectionsService.ErrBackendUnavailable):
			h.logger.Error("POST /sessions/{id}/selections - Course service unavailable: %v", err)
			handlers.RespondError(w, http.StatusBadGateway, msgBackendUnavailable)

		default:
			h.logger.Error("POST /sessions/{id}/selections - Failed: session=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	status := http.StatusCreated
	if result.HasConflict {
		status = http.StatusOK
		h.logger.Info("POST /sessions/{id}/selections - Conflict, not staged: session=%s, conflicts=%d",
			sessionID, len(result.Conflicts))
	} else {
		h.logger.Info("POST /sessions/{id}/selections - Staged: session=%s, selection_id=%d",
			sessionID, result.Selection.ID)
	}
	handlers.RespondJSON(w, status, result)
}
