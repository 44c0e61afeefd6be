package commit_session

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/CBO-CourseService/internal/api/handlers"
	"github.com/m04kA/CBO-CourseService/internal/api/middleware"
	commitBooking "github.com/m04kA/CBO-CourseService/internal/usecase/commit_booking"
)

const (
	msgEmptySession       = "в сессии нет активностей"
	msgCourseNotFound     = "курс не найден"
	msgConflictDetected   = "обнаружено пересечение по времени"
	msgNoCapacity         = "нет мест в подгруппах"
	msgDateMismatch       = "расписание курса изменилось, обновите выбор"
	msgCapacityStale      = "вместимость изменилась, обновите данные и повторите"
	msgInvalidCommit      = "некорректные данные фиксации"
	msgUnauthorized       = "пользователь не аутентифицирован"
	msgBackendUnavailable = "сервис курсов недоступен"
)

type Handler struct {
	useCase CommitBookingUseCase
	logger  Logger
}

func NewHandler(useCase CommitBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/sessions/{sessionId}/commit
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("POST /sessions/{id}/commit - No user in context: session=%s", sessionID)
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &commitBooking.Request{
		SessionID: sessionID,
		UserID:    userID,
	})
	if err != nil {
		switch {
		case errors.Is(err, commitBooking.ErrEmptySession):
			h.logger.Warn("POST /sessions/{id}/commit - Empty session: session=%s", sessionID)
			handlers.RespondBadRequest(w, msgEmptySession)

		case errors.Is(err, commitBooking.ErrCourseNotFound):
			h.logger.Warn("POST /sessions/{id}/commit - Course not found: session=%s", sessionID)
			handlers.RespondNotFound(w, msgCourseNotFound)

		case errors.Is(err, commitBooking.ErrConflictDetected):
			h.logger.Warn("POST /sessions/{id}/commit - Conflict: session=%s, error=%v", sessionID, err)
			handlers.RespondError(w, http.StatusConflict, msgConflictDetected)

		case errors.Is(err, commitBooking.ErrNoCapacity):
			h.logger.Warn("POST /sessions/{id}/commit - No capacity: session=%s, error=%v", sessionID, err)
			handlers.RespondError(w, http.StatusConflict, msgNoCapacity)

		case errors.Is(err, commitBooking.ErrDateMismatch):
			h.logger.Warn("POST /sessions/{id}/commit - Date mismatch: session=%s", sessionID)
			handlers.RespondError(w, http.StatusConflict, msgDateMismatch)

		case errors.Is(err, commitBooking.ErrCapacityStale):
			// Временная ошибка: клиент перечитывает занятость и повторяет
			h.logger.Warn("POST /sessions/{id}/commit - Capacity stale: session=%s", sessionID)
			handlers.RespondRetryableError(w, http.StatusConflict, msgCapacityStale)

		case errors.Is(err, commitBooking.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidCommit)

		case errors.Is(err, commitBooking.ErrBackendUnavailable):
			h.logger.Error("POST /sessions/{id}/commit - Course service unavailable: session=%s, error=%v", sessionID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgBackendUnavailable)

		default:
			h.logger.Error("POST /sessions/{id}/commit - Failed: session=%s, user_id=%d, error=%v",
				sessionID, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions/{id}/commit - Committed %d bookings: session=%s, user_id=%d",
		len(result.Committed), sessionID, userID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
