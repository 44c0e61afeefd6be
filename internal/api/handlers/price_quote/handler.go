package price_quote

import (
	"errors"
	"net/http"

	"github.com/m04kA/CBO-CourseService/internal/api/handlers"
	priceSelection "github.com/m04kA/CBO-CourseService/internal/usecase/price_selection"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgCourseNotFound     = "курс не найден"
	msgIntervalNotFound   = "интервал не найден"
	msgNoPriceForCount    = "для выбранного количества участников нет цены"
	msgEmptySelection     = "не выбрано ни одной даты"
	msgInvalidQuoteData   = "некорректные данные расчета"
	msgBackendUnavailable = "сервис курсов недоступен"
)

type Handler struct {
	useCase PriceSelectionUseCase
	logger  Logger
}

func NewHandler(useCase PriceSelectionUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/pricing/quote
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req PriceQuoteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /pricing/quote - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /pricing/quote - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, priceSelection.ErrCourseNotFound):
			h.logger.Warn("POST /pricing/quote - Course not found: course_id=%s", req.CourseID)
			handlers.RespondNotFound(w, msgCourseNotFound)

		case errors.Is(err, priceSelection.ErrIntervalNotFound):
			h.logger.Warn("POST /pricing/quote - Interval not found: course_id=%s", req.CourseID)
			handlers.RespondNotFound(w, msgIntervalNotFound)

		case errors.Is(err, priceSelection.ErrNoPriceForParticipants):
			// Курс исключается из выбора для этого количества участников
			h.logger.Info("POST /pricing/quote - No price for participants: course_id=%s, count=%d",
				req.CourseID, req.ParticipantCount)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgNoPriceForCount)

		case errors.Is(err, priceSelection.ErrEmptySelection):
			handlers.RespondBadRequest(w, msgEmptySelection)

		case errors.Is(err, priceSelection.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidQuoteData)

		case errors.Is(err, priceSelection.ErrBackendUnavailable):
			h.logger.Error("POST /pricing/quote - Course service unavailable: %v", err)
			handlers.RespondError(w, http.StatusBadGateway, msgBackendUnavailable)

		default:
			h.logger.Error("POST /pricing/quote - Failed: course_id=%s, error=%v", req.CourseID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /pricing/quote - base=%.2f discount=%.2f final=%.2f: course_id=%s",
		result.Quote.Base, result.Quote.Discount, result.Quote.Final, req.CourseID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
