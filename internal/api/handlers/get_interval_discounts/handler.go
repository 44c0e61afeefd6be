package get_interval_discounts

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/CBO-CourseService/internal/api/handlers"
	discountsService "github.com/m04kA/CBO-CourseService/internal/service/discounts"
	"github.com/m04kA/CBO-CourseService/pkg/types"
)

const (
	msgInvalidIntervalID  = "некорректный ID интервала"
	msgIntervalNotFound   = "интервал не найден"
	msgBackendUnavailable = "сервис курсов недоступен"
)

type Handler struct {
	service DiscountsService
	logger  Logger
}

func NewHandler(service DiscountsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/intervals/{intervalId}/discounts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	intervalID, err := strconv.ParseInt(vars["intervalId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /intervals/{id}/discounts - Invalid interval ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidIntervalID)
		return
	}

	rules, err := h.service.Get(r.Context(), types.NumericID(intervalID))
	if err != nil {
		switch {
		case errors.Is(err, discountsService.ErrIntervalNotFound):
			h.logger.Warn("GET /intervals/{id}/discounts - Interval not found: interval_id=%d", intervalID)
			handlers.RespondNotFound(w, msgIntervalNotFound)

		case errors.Is(err, discountsService.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidIntervalID)

		case errors.Is(err, discountsService.ErrBackendUnavailable):
			h.logger.Error("GET /intervals/{id}/discounts - Course service unavailable: %v", err)
			handlers.RespondError(w, http.StatusBadGateway, msgBackendUnavailable)

		default:
			h.logger.Error("GET /intervals/{id}/discounts - Failed: interval_id=%d, error=%v", intervalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /intervals/{id}/discounts - %d rules: interval_id=%d", len(rules), intervalID)
	handlers.RespondJSON(w, http.StatusOK, FromDomainRules(intervalID, rules))
}
