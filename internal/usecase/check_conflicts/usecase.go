package check_conflicts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/CBO-CourseService/internal/domain"
	client "github.com/m04kA/CBO-CourseService/internal/integrations/courseservice"
	"github.com/m04kA/CBO-CourseService/pkg/types"
)

// UseCase use case проверки пересечений по времени для участников
type UseCase struct {
	selectionRepo SelectionRepository
	courseClient  CourseServiceClient
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(selectionRepo SelectionRepository, courseClient CourseServiceClient, logger Logger) *UseCase {
	return &UseCase{
		selectionRepo: selectionRepo,
		courseClient:  courseClient,
		logger:        logger,
	}
}

// Execute выполняет проверку конфликтов в два этапа:
// сначала локально по staged-активностям сессии (без похода на сервер),
// затем - если локально чисто - authoritative-проверка backend'а по уже
// зафиксированным бронированиям.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckConflicts: session=%s, course=%s, participants=%d, dates=%d",
		req.SessionID, req.Candidate.CourseID, len(req.Candidate.ParticipantIDs), len(req.Candidate.Dates))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckConflicts: validation failed: %v", err)
		return nil, err
	}

	// 2. Загружаем staged-активности сессии
	selections, err := uc.selectionRepo.ListBySession(ctx, req.SessionID)
	if err != nil {
		uc.logger.Error("CheckConflicts: failed to list selections for session=%s: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: failed to list selections: %v", ErrInternal, err)
	}

	// 3. Локальная проверка: короткое замыкание на первом пересечении
	if conflict := findLocalConflict(&req.Candidate, selections); conflict != nil {
		uc.logger.Info("CheckConflicts: local conflict with selection=%d on %s %s-%s",
			*conflict.SelectionID, conflict.Date.Format(domain.DateFormat),
			conflict.StartTime, conflict.EndTime)
		return &Response{HasConflict: true, Conflicts: []Conflict{*conflict}}, nil
	}

	if req.SkipRemote {
		return &Response{HasConflict: false}, nil
	}

	// 4. Удаленная проверка по каждой дате кандидата
	remote, err := uc.checkRemote(ctx, &req.Candidate)
	if err != nil {
		return nil, err
	}

	if len(remote) > 0 {
		uc.logger.Info("CheckConflicts: backend reported %d conflicting slots", len(remote))
		return &Response{HasConflict: true, Conflicts: remote}, nil
	}

	uc.logger.Info("CheckConflicts: no conflicts for session=%s", req.SessionID)
	return &Response{HasConflict: false}, nil
}

// checkRemote делегирует проверку backend'у и конвертирует ответ
func (uc *UseCase) checkRemote(ctx context.Context, candidate *Candidate) ([]Conflict, error) {
	var conflicts []Conflict

	for _, d := range candidate.Dates {
		result, err := uc.courseClient.CheckAvailability(ctx, &client.AvailabilityRequest{
			ParticipantIDs: candidate.ParticipantIDs,
			Date:           domain.DateOnly(d.Date).Format(domain.DateFormat),
			StartTime:      d.StartTime.String(),
			EndTime:        d.EndTime.String(),
		})
		if err != nil {
			if errors.Is(err, client.ErrServiceUnavailable) {
				uc.logger.Error("CheckConflicts: course service unavailable: %v", err)
				return nil, fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
			}
			uc.logger.Error("CheckConflicts: remote availability check failed: %v", err)
			return nil, fmt.Errorf("%w: remote availability check: %v", ErrInternal, err)
		}

		if result.Available {
			continue
		}

		for _, slot := range result.Conflicts {
			conflictDate, err := time.Parse(domain.DateFormat, slot.Date)
			if err != nil {
				// Дата не распарсилась - используем дату кандидата
				conflictDate = domain.DateOnly(d.Date)
			}

			conflicts = append(conflicts, Conflict{
				Source:        SourceRemote,
				ParticipantID: slot.ParticipantID,
				Date:          conflictDate,
				StartTime:     types.TimeString(slot.StartTime),
				EndTime:       types.TimeString(slot.EndTime),
				CourseName:    slot.CourseName,
			})
		}
	}

	return conflicts, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.SessionID == "" {
		return fmt.Errorf("%w: sessionID is required", ErrInvalidInput)
	}
	if len(req.Candidate.ParticipantIDs) == 0 {
		return fmt.Errorf("%w: at least one participant is required", ErrInvalidInput)
	}
	if len(req.Candidate.Dates) == 0 {
		return fmt.Errorf("%w: at least one date is required", ErrInvalidInput)
	}
	for _, d := range req.Candidate.Dates {
		if d.StartTime.IsZero() || d.EndTime.IsZero() {
			return fmt.Errorf("%w: date %s has no time range", ErrInvalidInput,
				d.Date.Format(domain.DateFormat))
		}
		if err := d.StartTime.Validate(); err != nil {
			return fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
		}
		if err := d.EndTime.Validate(); err != nil {
			return fmt.Errorf("%w: invalid endTime: %v", ErrInvalidInput, err)
		}
	}
	return nil
}
