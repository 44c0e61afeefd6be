package update_interval_discounts

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
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidIntervalID   = "некорректный ID интервала"
	msgIntervalNotFound    = "интервал не найден"
	msgInvalidRule         = "некорректное правило скидки"
	msgDuplicateThresholds = "пороги правил должны быть уникальны"
	msgBackendUnavailable  = "сервис курсов недоступен"
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

// Handle PUT /api/v1/intervals/{intervalId}/discounts
// Заменяет правила интервала целиком; пустой список снимает скидки
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	intervalID, err := strconv.ParseInt(vars["intervalId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /intervals/{id}/discounts - Invalid interval ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidIntervalID)
		return
	}

	var req UpdateDiscountsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /intervals/{id}/discounts - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	err = h.service.Put(r.Context(), types.NumericID(intervalID), req.ToDomainRules())
	if err != nil {
		switch {
		case errors.Is(err, discountsService.ErrIntervalNotFound):
			h.logger.Warn("PUT /intervals/{id}/discounts - Interval not found: interval_id=%d", intervalID)
			handlers.RespondNotFound(w, msgIntervalNotFound)

		case errors.Is(err, discountsService.ErrDuplicateThreshold):
			h.logger.Warn("PUT /intervals/{id}/discounts - Duplicate thresholds: interval_id=%d", intervalID)
			handlers.RespondBadRequest(w, msgDuplicateThresholds)

		case errors.Is(err, discountsService.ErrInvalidRule), errors.Is(err, discountsService.ErrInvalidInput):
			h.logger.Warn("PUT /intervals/{id}/discounts - Invalid rule: interval_id=%d, error=%v", intervalID, err)
			handlers.RespondBadRequest(w, msgInvalidRule)

		case errors.Is(err, discountsService.ErrBackendUnavailable):
			h.logger.Error("PUT /intervals/{id}/discounts - Course service unavailable: %v", err)
			handlers.RespondError(w, http.StatusBadGateway, msgBackendUnavailable)

		default:
			h.logger.Error("PUT /intervals/{id}/discounts - Failed: interval_id=%d, error=%v", intervalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /intervals/{id}/discounts - Saved %d rules: interval_id=%d", len(req.Rules), intervalID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
