package generate_dates

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/CBO-CourseService/internal/api/handlers"
	generateDates "github.com/m04kA/CBO-CourseService/internal/usecase/generate_dates"
	"github.com/m04kA/CBO-CourseService/pkg/types"
)

const (
	msgInvalidCourseID     = "некорректный ID курса"
	msgInvalidIntervalID   = "некорректный ID интервала"
	msgCourseNotFound      = "курс не найден"
	msgIntervalNotFound    = "интервал не найден"
	msgEmptyWeeklyPattern  = "не отмечен ни один день недели"
	msgInvalidConsecutive  = "некорректное количество последовательных дней"
	msgManualDateOutside   = "дата вне границ интервала"
	msgIntervalsOverlap    = "интервалы курса пересекаются"
	msgInvalidBounds       = "конец интервала раньше начала"
	msgUnknownMethod       = "неизвестный метод генерации дат"
	msgInvalidGenerateData = "некорректные данные генерации"
	msgBackendUnavailable  = "сервис курсов недоступен"
)

type Handler struct {
	useCase GenerateDatesUseCase
	logger  Logger
}

func NewHandler(useCase GenerateDatesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/courses/{courseId}/intervals/{intervalId}/generate-dates
// Query params: preview (optional, "true" - только локальный расчет)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	courseID, err := strconv.ParseInt(vars["courseId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /courses/{id}/intervals/{id}/generate-dates - Invalid course ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCourseID)
		return
	}

	intervalID, err := strconv.ParseInt(vars["intervalId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /courses/{id}/intervals/{id}/generate-dates - Invalid interval ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidIntervalID)
		return
	}

	preview := r.URL.Query().Get("preview") == "true"

	result, err := h.useCase.Execute(r.Context(), &generateDates.Request{
		CourseID:   types.NumericID(courseID),
		IntervalID: types.NumericID(intervalID),
		Preview:    preview,
	})
	if err != nil {
		switch {
		case errors.Is(err, generateDates.ErrCourseNotFound):
			h.logger.Warn("POST /courses/{id}/intervals/{id}/generate-dates - Course not found: course_id=%d", courseID)
			handlers.RespondNotFound(w, msgCourseNotFound)

		case errors.Is(err, generateDates.ErrIntervalNotFound):
			h.logger.Warn("POST /courses/{id}/intervals/{id}/generate-dates - Interval not found: course_id=%d, interval_id=%d",
				courseID, intervalID)
			handlers.RespondNotFound(w, msgIntervalNotFound)

		case errors.Is(err, generateDates.ErrEmptyWeeklyPattern):
			handlers.RespondBadRequest(w, msgEmptyWeeklyPattern)

		case errors.Is(err, generateDates.ErrInvalidConsecutiveCount):
			handlers.RespondBadRequest(w, msgInvalidConsecutive)

		case errors.Is(err, generateDates.ErrManualDateOutOfBounds):
			handlers.RespondBadRequest(w, msgManualDateOutside)

		case errors.Is(err, generateDates.ErrIntervalsOverlap):
			handlers.RespondBadRequest(w, msgIntervalsOverlap)

		case errors.Is(err, generateDates.ErrInvalidBounds):
			handlers.RespondBadRequest(w, msgInvalidBounds)

		case errors.Is(err, generateDates.ErrUnknownMethod):
			handlers.RespondBadRequest(w, msgUnknownMethod)

		case errors.Is(err, generateDates.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidGenerateData)

		case errors.Is(err, generateDates.ErrBackendUnavailable):
			h.logger.Error("POST /courses/{id}/intervals/{id}/generate-dates - Course service unavailable: %v", err)
			handlers.RespondError(w, http.StatusBadGateway, msgBackendUnavailable)

		default:
			h.logger.Error("POST /courses/{id}/intervals/{id}/generate-dates - Failed: course_id=%d, interval_id=%d, error=%v",
				courseID, intervalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /courses/{id}/intervals/{id}/generate-dates - Generated %d dates: course_id=%d, interval_id=%d, preview=%t",
		len(result.Dates), courseID, intervalID, preview)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
