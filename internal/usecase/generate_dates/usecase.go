package generate_dates

import (
	"context"
	"errors"
	"fmt"

	client "github.com/m04kA/CBO-CourseService/internal/integrations/courseservice"
)

// UseCase use case генерации конкретных дат интервала
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

// Execute выполняет use case генерации дат.
// В режиме Preview считает даты только локально; иначе дополнительно
// запускает серверную генерацию и возвращает её счетчик для сверки.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GenerateDates: course=%s, interval=%s, preview=%t",
		req.CourseID, req.IntervalID, req.Preview)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GenerateDates: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем агрегат курса
	course, err := uc.courseClient.GetCourse(ctx, req.CourseID)
	if err != nil {
		if errors.Is(err, client.ErrCourseNotFound) {
			uc.logger.Warn("GenerateDates: course id=%s not found", req.CourseID)
			return nil, ErrCourseNotFound
		}
		if errors.Is(err, client.ErrServiceUnavailable) {
			uc.logger.Error("GenerateDates: course service unavailable: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
		}
		uc.logger.Error("GenerateDates: failed to get course id=%s: %v", req.CourseID, err)
		return nil, fmt.Errorf("%w: failed to get course: %v", ErrInternal, err)
	}

	// 3. Находим интервал
	interval := course.IntervalByID(req.IntervalID)
	if interval == nil {
		uc.logger.Warn("GenerateDates: interval id=%s not found in course id=%s",
			req.IntervalID, req.CourseID)
		return nil, ErrIntervalNotFound
	}

	// 4. Проверяем интервалы курса на пересечение диапазонов
	if err := ValidateIntervals(course.Intervals); err != nil {
		uc.logger.Warn("GenerateDates: interval validation failed: %v", err)
		return nil, err
	}

	// 5. Генерируем даты локально (детерминированный предпросмотр)
	dates, warnings, err := generateDates(interval, course.Settings)
	if err != nil {
		uc.logger.Warn("GenerateDates: generation failed: %v", err)
		return nil, err
	}

	resp := &Response{
		CourseID:   req.CourseID,
		IntervalID: req.IntervalID,
		Dates:      dates,
		Warnings:   warnings,
	}

	// 6. Не-preview режим: запускаем серверную генерацию и сверяем счетчики
	if !req.Preview {
		serverCount, err := uc.courseClient.GenerateDates(ctx, req.IntervalID)
		if err != nil {
			if errors.Is(err, client.ErrServiceUnavailable) {
				uc.logger.Error("GenerateDates: course service unavailable: %v", err)
				return nil, fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
			}
			uc.logger.Error("GenerateDates: server-side generation failed for interval=%s: %v",
				req.IntervalID, err)
			return nil, fmt.Errorf("%w: server-side generation: %v", ErrInternal, err)
		}

		resp.ServerCount = &serverCount

		if serverCount != len(dates) {
			uc.logger.Warn("GenerateDates: preview/server mismatch for interval=%s: local=%d server=%d",
				req.IntervalID, len(dates), serverCount)
			resp.Warnings = append(resp.Warnings, fmt.Sprintf(
				"local preview produced %d dates but server generated %d", len(dates), serverCount))
		}
	}

	uc.logger.Info("GenerateDates: produced %d dates for interval=%s (%d warnings)",
		len(dates), req.IntervalID, len(resp.Warnings))

	return resp, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CourseID.IsZero() {
		return fmt.Errorf("%w: courseID is required", ErrInvalidInput)
	}
	if req.IntervalID.IsZero() {
		return fmt.Errorf("%w: intervalID is required", ErrInvalidInput)
	}
	return nil
}
