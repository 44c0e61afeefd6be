package check_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/CBO-CourseService/internal/api/handlers"
	allocateSubgroup "github.com/m04kA/CBO-CourseService/internal/usecase/allocate_subgroup"
	"github.com/m04kA/CBO-CourseService/pkg/types"
)

const (
	msgInvalidCourseID    = "некорректный ID курса"
	msgInvalidDateID      = "некорректный ID даты"
	msgInvalidDegreeID    = "некорректный ID уровня"
	msgMissingDegreeID    = "ID уровня обязателен"
	msgInvalidSlots       = "некорректное количество мест"
	msgCourseNotFound     = "курс не найден"
	msgDateNotFound       = "дата курса не найдена"
	msgBackendUnavailable = "сервис курсов недоступен"
)

type Handler struct {
	useCase AllocateSubgroupUseCase
	logger  Logger
}

func NewHandler(useCase AllocateSubgroupUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/courses/{courseId}/dates/{dateId}/availability
// Query params: degreeId (required), slots (optional, default 1)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	courseID, err := strconv.ParseInt(vars["courseId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /courses/{id}/dates/{id}/availability - Invalid course ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCourseID)
		return
	}

	dateID, err := strconv.ParseInt(vars["dateId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /courses/{id}/dates/{id}/availability - Invalid date ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateID)
		return
	}

	degreeIDStr := r.URL.Query().Get("degreeId")
	if degreeIDStr == "" {
		h.logger.Warn("GET /courses/{id}/dates/{id}/availability - Missing degree ID")
		handlers.RespondBadRequest(w, msgMissingDegreeID)
		return
	}
	degreeID, err := strconv.ParseInt(degreeIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /courses/{id}/dates/{id}/availability - Invalid degree ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDegreeID)
		return
	}

	slots := 1
	if slotsStr := r.URL.Query().Get("slots"); slotsStr != "" {
		slots, err = strconv.Atoi(slotsStr)
		if err != nil || slots <= 0 {
			h.logger.Warn("GET /courses/{id}/dates/{id}/availability - Invalid slots: %q", slotsStr)
			handlers.RespondBadRequest(w, msgInvalidSlots)
			return
		}
	}

	result, err := h.useCase.Execute(r.Context(), &allocateSubgroup.Request{
		CourseID:    types.NumericID(courseID),
		DateID:      types.NumericID(dateID),
		DegreeID:    types.NumericID(degreeID),
		NeededSlots: slots,
	})
	if err != nil {
		switch {
		case errors.Is(err, allocateSubgroup.ErrCourseNotFound):
			h.logger.Warn("GET /courses/{id}/dates/{id}/availability - Course not found: course_id=%d", courseID)
			handlers.RespondNotFound(w, msgCourseNotFound)

		case errors.Is(err, allocateSubgroup.ErrDateNotFound):
			h.logger.Warn("GET /courses/{id}/dates/{id}/availability - Date not found: course_id=%d, date_id=%d",
				courseID, dateID)
			handlers.RespondNotFound(w, msgDateNotFound)

		case errors.Is(err, allocateSubgroup.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidSlots)

		case errors.Is(err, allocateSubgroup.ErrBackendUnavailable):
			h.logger.Error("GET /courses/{id}/dates/{id}/availability - Course service unavailable: %v", err)
			handlers.RespondError(w, http.StatusBadGateway, msgBackendUnavailable)

		default:
			h.logger.Error("GET /courses/{id}/dates/{id}/availability - Failed: course_id=%d, date_id=%d, error=%v",
				courseID, dateID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /courses/{id}/dates/{id}/availability - available=%t: course_id=%d, date_id=%d, degree_id=%d, slots=%d",
		result.Available, courseID, dateID, degreeID, slots)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
