package get_occupancy

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/CBO-CourseService/internal/api/handlers"
	occupancyService "github.com/m04kA/CBO-CourseService/internal/service/occupancy"
	"github.com/m04kA/CBO-CourseService/pkg/types"
)

const (
	msgInvalidCourseID    = "некорректный ID курса"
	msgInvalidIntervalID  = "некорректный ID интервала"
	msgInvalidDegreeID    = "некорректный ID уровня"
	msgMissingDegreeID    = "ID уровня обязателен"
	msgCourseNotFound     = "курс не найден"
	msgBackendUnavailable = "сервис курсов недоступен"
)

type Handler struct {
	service OccupancyService
	logger  Logger
}

func NewHandler(service OccupancyService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/courses/{courseId}/intervals/{intervalId}/occupancy
// Query params: degreeId (required)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	courseID, err := strconv.ParseInt(vars["courseId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /courses/{id}/intervals/{id}/occupancy - Invalid course ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCourseID)
		return
	}

	intervalID, err := strconv.ParseInt(vars["intervalId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /courses/{id}/intervals/{id}/occupancy - Invalid interval ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidIntervalID)
		return
	}

	degreeIDStr := r.URL.Query().Get("degreeId")
	if degreeIDStr == "" {
		h.logger.Warn("GET /courses/{id}/intervals/{id}/occupancy - Missing degree ID")
		handlers.RespondBadRequest(w, msgMissingDegreeID)
		return
	}
	degreeID, err := strconv.ParseInt(degreeIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /courses/{id}/intervals/{id}/occupancy - Invalid degree ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDegreeID)
		return
	}

	result, err := h.service.Indicators(r.Context(), &occupancyService.Request{
		CourseID:   types.NumericID(courseID),
		IntervalID: types.NumericID(intervalID),
		DegreeID:   types.NumericID(degreeID),
	})
	if err != nil {
		switch {
		case errors.Is(err, occupancyService.ErrCourseNotFound):
			h.logger.Warn("GET /courses/{id}/intervals/{id}/occupancy - Course not found: course_id=%d", courseID)
			handlers.RespondNotFound(w, msgCourseNotFound)

		case errors.Is(err, occupancyService.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidDegreeID)

		case errors.Is(err, occupancyService.ErrBackendUnavailable):
			h.logger.Error("GET /courses/{id}/intervals/{id}/occupancy - Course service unavailable: %v", err)
			handlers.RespondError(w, http.StatusBadGateway, msgBackendUnavailable)

		default:
			h.logger.Error("GET /courses/{id}/intervals/{id}/occupancy - Failed: course_id=%d, interval_id=%d, error=%v",
				courseID, intervalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /courses/{id}/intervals/{id}/occupancy - %d subgroups: course_id=%d, interval_id=%d, degree_id=%d",
		len(result.Subgroups), courseID, intervalID, degreeID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
