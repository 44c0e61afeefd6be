package price_selection

import (
	"context"
	"errors"
	"fmt"

	client "github.com/m04kA/CBO-CourseService/internal/integrations/courseservice"
)

// UseCase use case расчета цены выбранных дат
type UseCase struct {
	courseClient CourseServiceClient
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(courseClient CourseServiceClient, logger Logger) *UseCase {
	return &UseCase{
		courseClient: courseClient,
		logger:       logger,
	}
}

// Execute выполняет расчет цены
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("PriceSelection: course=%s, dates=%d, participants=%d",
		req.CourseID, len(req.SelectedDates), req.ParticipantCount)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("PriceSelection: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем агрегат курса
	course, err := uc.courseClient.GetCourse(ctx, req.CourseID)
	if err != nil {
		if errors.Is(err, client.ErrCourseNotFound) {
			uc.logger.Warn("PriceSelection: course id=%s not found", req.CourseID)
			return nil, ErrCourseNotFound
		}
		if errors.Is(err, client.ErrServiceUnavailable) {
			uc.logger.Error("PriceSelection: course service unavailable: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
		}
		uc.logger.Error("PriceSelection: failed to get course id=%s: %v", req.CourseID, err)
		return nil, fmt.Errorf("%w: failed to get course: %v", ErrInternal, err)
	}

	// 3. Interval-scoped вариант: интервал должен существовать
	if req.IntervalID != nil && course.IntervalByID(*req.IntervalID) == nil {
		uc.logger.Warn("PriceSelection: interval id=%s not found in course id=%s",
			req.IntervalID, req.CourseID)
		return nil, ErrIntervalNotFound
	}

	// 4. Чистый расчет
	quote, err := priceSelection(course, req.SelectedDates, req.ParticipantCount, req.IntervalID)
	if err != nil {
		if errors.Is(err, ErrNoPriceForParticipants) {
			uc.logger.Info("PriceSelection: course=%s has no price for %d participants",
				req.CourseID, req.ParticipantCount)
		} else {
			uc.logger.Warn("PriceSelection: pricing failed: %v", err)
		}
		return nil, err
	}

	uc.logger.Info("PriceSelection: course=%s base=%.2f discount=%.2f final=%.2f %s",
		req.CourseID, quote.Base, quote.Discount, quote.Final, quote.Currency)

	return &Response{CourseID: req.CourseID, Quote: *quote}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CourseID.IsZero() {
		return fmt.Errorf("%w: courseID is required", ErrInvalidInput)
	}
	if len(req.SelectedDates) == 0 {
		return fmt.Errorf("%w: selectedDates are required", ErrInvalidInput)
	}
	if req.ParticipantCount <= 0 {
		return fmt.Errorf("%w: participantCount must be positive", ErrInvalidInput)
	}
	return nil
}
