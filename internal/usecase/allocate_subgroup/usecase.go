package allocate_subgroup

import (
	"context"
	"errors"
	"fmt"

	client "github.com/m04kA/CBO-CourseService/internal/integrations/courseservice"
)

// UseCase use case подбора подгруппы с достаточной вместимостью
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

// Execute выполняет use case подбора подгруппы.
// Результат - рекомендация на основе снимка занятости: authoritative-проверка
// происходит на сервере при фиксации бронирования, отказ после успешного
// локального подбора обрабатывается как обычная retryable-ошибка.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("AllocateSubgroup: course=%s, date=%s, degree=%s, slots=%d",
		req.CourseID, req.DateID, req.DegreeID, req.NeededSlots)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("AllocateSubgroup: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем свежий агрегат курса (снимок занятости)
	course, err := uc.courseClient.GetCourse(ctx, req.CourseID)
	if err != nil {
		if errors.Is(err, client.ErrCourseNotFound) {
			uc.logger.Warn("AllocateSubgroup: course id=%s not found", req.CourseID)
			return nil, ErrCourseNotFound
		}
		if errors.Is(err, client.ErrServiceUnavailable) {
			uc.logger.Error("AllocateSubgroup: course service unavailable: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
		}
		uc.logger.Error("AllocateSubgroup: failed to get course id=%s: %v", req.CourseID, err)
		return nil, fmt.Errorf("%w: failed to get course: %v", ErrInternal, err)
	}

	// 3. Находим дату курса
	courseDate := course.DateByID(req.DateID)
	if courseDate == nil {
		uc.logger.Warn("AllocateSubgroup: date id=%s not found in course id=%s",
			req.DateID, req.CourseID)
		return nil, ErrDateNotFound
	}

	// 4. Собираем индикаторы занятости всех подгрупп уровня на дате
	var indicators []SubgroupIndicator
	if group := courseDate.GroupByDegree(req.DegreeID); group != nil {
		for i := range group.Subgroups {
			sg := &group.Subgroups[i]
			indicators = append(indicators, SubgroupIndicator{
				SubgroupID: sg.ID,
				Indicator:  FormatOccupancy(sg.Occupancy(), sg.MaxParticipants),
			})
		}
	}

	// 5. First-fit подбор подгруппы
	subgroup := FindSubgroup(courseDate, req.DegreeID, req.NeededSlots)
	if subgroup == nil {
		// Нет группы для уровня или все подгруппы заполнены - нормальный
		// исход, вызывающий показывает "нет мест"
		uc.logger.Info("AllocateSubgroup: no capacity for degree=%s on date=%s (slots=%d)",
			req.DegreeID, req.DateID, req.NeededSlots)
		return &Response{Available: false, Subgroups: indicators}, nil
	}

	occupancy := subgroup.Occupancy()
	uc.logger.Info("AllocateSubgroup: selected subgroup=%s (%s)",
		subgroup.ID, FormatOccupancy(occupancy, subgroup.MaxParticipants))

	return &Response{
		Available: true,
		Subgroup: &AllocatedSubgroup{
			SubgroupID:      subgroup.ID,
			DegreeID:        subgroup.DegreeID,
			MonitorID:       subgroup.MonitorID,
			MaxParticipants: subgroup.MaxParticipants,
			Occupancy:       occupancy,
			FreeSlots:       subgroup.FreeSlots(),
			Indicator:       FormatOccupancy(occupancy, subgroup.MaxParticipants),
		},
		Subgroups: indicators,
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CourseID.IsZero() {
		return fmt.Errorf("%w: courseID is required", ErrInvalidInput)
	}
	if req.DateID.IsZero() {
		return fmt.Errorf("%w: dateID is required", ErrInvalidInput)
	}
	if req.DegreeID.IsZero() {
		return fmt.Errorf("%w: degreeID is required", ErrInvalidInput)
	}
	if req.NeededSlots <= 0 {
		return fmt.Errorf("%w: neededSlots must be positive", ErrInvalidInput)
	}
	return nil
}
