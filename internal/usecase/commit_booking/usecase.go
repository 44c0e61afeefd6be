package commit_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/CBO-CourseService/internal/domain"
	client "github.com/m04kA/CBO-CourseService/internal/integrations/courseservice"
	"github.com/m04kA/CBO-CourseService/internal/usecase/check_conflicts"
)

// UseCase use case фиксации сессии бронирования
type UseCase struct {
	selectionRepo   SelectionRepository
	courseClient    CourseServiceClient
	conflictChecker ConflictChecker
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	selectionRepo SelectionRepository,
	courseClient CourseServiceClient,
	conflictChecker ConflictChecker,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		selectionRepo:   selectionRepo,
		courseClient:    courseClient,
		conflictChecker: conflictChecker,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute фиксирует все staged-активности сессии в backend.
// Перед фиксацией пересечения и вместимость проверяются заново: между
// выбором и фиксацией другие операторы могли занять места. Фиксация
// выполняется в сериализуемой транзакции; любая отклоненная активность
// отменяет сессию целиком.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CommitBooking: session=%s, user=%d", req.SessionID, req.UserID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CommitBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Загружаем staged-активности сессии
	selections, err := uc.selectionRepo.ListBySession(ctx, req.SessionID)
	if err != nil {
		uc.logger.Error("CommitBooking: failed to list selections for session=%s: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: failed to list selections: %v", ErrInternal, err)
	}
	if len(selections) == 0 {
		uc.logger.Warn("CommitBooking: session=%s has no staged selections", req.SessionID)
		return nil, ErrEmptySession
	}

	// 3. Повторная проверка пересечений каждой активности: локально по
	// сессии и authoritative по уже зафиксированным бронированиям
	for i := range selections {
		sel := &selections[i]
		result, err := uc.conflictChecker.Execute(ctx, &check_conflicts.Request{
			SessionID: req.SessionID,
			Candidate: check_conflicts.Candidate{
				EditedSelectionID: &sel.ID,
				CourseID:          sel.CourseID,
				DegreeID:          sel.DegreeID,
				ParticipantIDs:    sel.ParticipantIDs,
				Dates:             sel.Dates,
			},
		})
		if err != nil {
			uc.logger.Error("CommitBooking: conflict re-check failed for selection=%d: %v", sel.ID, err)
			return nil, fmt.Errorf("%w: conflict re-check: %v", ErrInternal, err)
		}
		if result.HasConflict {
			c := result.Conflicts[0]
			uc.logger.Warn("CommitBooking: conflict for selection=%d participant=%s on %s %s-%s",
				sel.ID, c.ParticipantID, c.Date.Format(domain.DateFormat), c.StartTime, c.EndTime)
			return nil, fmt.Errorf("%w: participant %s busy on %s %s-%s", ErrConflictDetected,
				c.ParticipantID, c.Date.Format(domain.DateFormat), c.StartTime, c.EndTime)
		}
	}

	var committed []CommittedSelection

	// 4. Фиксируем активности в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		for i := range selections {
			entry, err := uc.commitSelection(txCtx, &selections[i])
			if err != nil {
				return err
			}
			committed = append(committed, *entry)
		}

		// 4.1. Зафиксированная сессия очищается от staged-строк
		if err := uc.selectionRepo.DeleteBySession(txCtx, req.SessionID); err != nil {
			uc.logger.Error("CommitBooking: failed to clear session=%s: %v", req.SessionID, err)
			return fmt.Errorf("%w: failed to clear session: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CommitBooking: session=%s committed, %d bookings created", req.SessionID, len(committed))

	return &Response{
		SessionID: req.SessionID,
		Committed: committed,
	}, nil
}

// commitSelection фиксирует одну staged-активность: перечитывает курс,
// заново выбирает подгруппу по актуальной занятости и отправляет
// бронирование в backend
func (uc *UseCase) commitSelection(ctx context.Context, sel *domain.Selection) (*CommittedSelection, error) {
	course, err := uc.courseClient.GetCourse(ctx, sel.CourseID)
	if err != nil {
		if errors.Is(err, client.ErrCourseNotFound) {
			uc.logger.Warn("CommitBooking: course id=%s not found for selection=%d", sel.CourseID, sel.ID)
			return nil, ErrCourseNotFound
		}
		if errors.Is(err, client.ErrServiceUnavailable) {
			uc.logger.Error("CommitBooking: course service unavailable: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
		}
		uc.logger.Error("CommitBooking: failed to get course id=%s: %v", sel.CourseID, err)
		return nil, fmt.Errorf("%w: failed to get course: %v", ErrInternal, err)
	}

	matched, err := matchCourseDates(course, sel.Dates)
	if err != nil {
		uc.logger.Warn("CommitBooking: selection=%d dates no longer match course=%s schedule", sel.ID, sel.CourseID)
		return nil, err
	}

	// Advisory-выбор подгруппы по свежей занятости. Backend остается
	// authoritative: его отказ обрабатывается ниже.
	subgroup := chooseSubgroup(matched, sel.DegreeID, len(sel.ParticipantIDs))
	if subgroup == nil {
		uc.logger.Warn("CommitBooking: no subgroup capacity for selection=%d, course=%s, degree=%s, needed=%d",
			sel.ID, sel.CourseID, sel.DegreeID, len(sel.ParticipantIDs))
		return nil, fmt.Errorf("%w: course %s, degree %s", ErrNoCapacity, sel.CourseID, sel.DegreeID)
	}

	uc.logger.Info("CommitBooking: selection=%d allocated subgroup=%s (%s)",
		sel.ID, subgroup.ID, occupancyIndicator(subgroup))

	commit := &client.BookingCommit{
		CourseID:       sel.CourseID,
		DegreeID:       sel.DegreeID,
		SubgroupID:     subgroup.ID,
		ParticipantIDs: sel.ParticipantIDs,
		Dates:          make([]client.BookingDate, 0, len(matched)),
	}
	for _, cd := range matched {
		commit.Dates = append(commit.Dates, client.BookingDate{
			CourseDateID: cd.ID,
			Date:         domain.DateOnly(cd.Date).Format(domain.DateFormat),
			StartTime:    cd.StartTime.String(),
			EndTime:      cd.EndTime.String(),
		})
	}

	result, err := uc.courseClient.CreateBooking(ctx, commit)
	if err != nil {
		switch {
		case errors.Is(err, client.ErrCapacityStale):
			uc.logger.Warn("CommitBooking: backend rejected selection=%d, capacity changed", sel.ID)
			return nil, ErrCapacityStale
		case errors.Is(err, client.ErrBookingConflict):
			uc.logger.Warn("CommitBooking: backend rejected selection=%d, booking conflict", sel.ID)
			return nil, fmt.Errorf("%w: backend rejected selection %d", ErrConflictDetected, sel.ID)
		case errors.Is(err, client.ErrServiceUnavailable):
			uc.logger.Error("CommitBooking: course service unavailable: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
		default:
			uc.logger.Error("CommitBooking: failed to create booking for selection=%d: %v", sel.ID, err)
			return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}
	}

	return &CommittedSelection{
		SelectionID: sel.ID,
		BookingID:   result.BookingID,
		SubgroupID:  subgroup.ID,
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.SessionID == "" {
		return fmt.Errorf("%w: sessionID is required", ErrInvalidInput)
	}
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}
	return nil
}
