package selections

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/CBO-CourseService/internal/domain"
	selectionRepo "github.com/m04kA/CBO-CourseService/internal/infra/storage/selection"
	"github.com/m04kA/CBO-CourseService/internal/service/selections/models"
	"github.com/m04kA/CBO-CourseService/internal/usecase/check_conflicts"
	"github.com/m04kA/CBO-CourseService/pkg/types"
)

// Service сервис staged-активностей сессии бронирования
type Service struct {
	selectionRepo   SelectionRepository
	conflictChecker ConflictChecker
	logger          Logger
}

// NewService создает новый экземпляр сервиса staged-активностей
func NewService(
	selectionRepo SelectionRepository,
	conflictChecker ConflictChecker,
	logger Logger,
) *Service {
	return &Service{
		selectionRepo:   selectionRepo,
		conflictChecker: conflictChecker,
		logger:          logger,
	}
}

// Stage ставит активность в сессию после проверки пересечений.
// Конфликт не ошибка: активность не сохраняется, ответ несет детали
// пересечений. При EditedSelectionID активность обновляется, а из
// локальной проверки исключается ее прежняя версия.
func (s *Service) Stage(ctx context.Context, req *models.StageSelectionRequest) (*models.StageSelectionResponse, error) {
	s.logger.Info("Stage: session=%s, course=%d, participants=%d, dates=%d",
		req.SessionID, req.CourseID, len(req.ParticipantIDs), len(req.Dates))

	if err := validateStageRequest(req); err != nil {
		s.logger.Warn("Stage: validation failed: %v", err)
		return nil, err
	}

	sel := req.ToDomainSelection()

	result, err := s.conflictChecker.Execute(ctx, &check_conflicts.Request{
		SessionID: req.SessionID,
		Candidate: check_conflicts.Candidate{
			EditedSelectionID: req.EditedSelectionID,
			CourseID:          sel.CourseID,
			DegreeID:          sel.DegreeID,
			ParticipantIDs:    sel.ParticipantIDs,
			Dates:             sel.Dates,
		},
	})
	if err != nil {
		if errors.Is(err, check_conflicts.ErrBackendUnavailable) {
			s.logger.Error("Stage: course service unavailable: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
		}
		s.logger.Error("Stage: conflict check failed for session=%s: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: Stage - conflict check: %v", ErrInternal, err)
	}

	if result.HasConflict {
		s.logger.Info("Stage: session=%s, %d conflicts found, selection not staged",
			req.SessionID, len(result.Conflicts))
		return &models.StageSelectionResponse{
			HasConflict: true,
			Conflicts:   conflictsToResponse(result.Conflicts),
		}, nil
	}

	stored, err := s.persist(ctx, sel, req.EditedSelectionID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Stage: session=%s, selection=%d staged", req.SessionID, stored.ID)
	return &models.StageSelectionResponse{
		Selection: models.FromDomainSelection(stored),
	}, nil
}

// List возвращает все staged-активности сессии
func (s *Service) List(ctx context.Context, sessionID string) (*models.SelectionListResponse, error) {
	s.logger.Info("List: session=%s", sessionID)

	if sessionID == "" {
		return nil, fmt.Errorf("%w: sessionID is required", ErrInvalidInput)
	}

	selections, err := s.selectionRepo.ListBySession(ctx, sessionID)
	if err != nil {
		s.logger.Error("List: repository error for session=%s: %v", sessionID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSelectionList(selections), nil
}

// Remove удаляет staged-активность из сессии.
// Активность другой сессии трогать нельзя.
func (s *Service) Remove(ctx context.Context, sessionID string, id int64) error {
	s.logger.Info("Remove: session=%s, selection=%d", sessionID, id)

	sel, err := s.selectionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, selectionRepo.ErrSelectionNotFound) {
			s.logger.Warn("Remove: selection=%d not found", id)
			return ErrSelectionNotFound
		}
		s.logger.Error("Remove: repository error for selection=%d: %v", id, err)
		return fmt.Errorf("%w: Remove - repository error: %v", ErrInternal, err)
	}

	if sel.SessionID != sessionID {
		s.logger.Warn("Remove: selection=%d belongs to session=%s, not %s", id, sel.SessionID, sessionID)
		return ErrSessionMismatch
	}

	if err := s.selectionRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, selectionRepo.ErrSelectionNotFound) {
			return ErrSelectionNotFound
		}
		s.logger.Error("Remove: failed to delete selection=%d: %v", id, err)
		return fmt.Errorf("%w: Remove - delete: %v", ErrInternal, err)
	}

	s.logger.Info("Remove: selection=%d removed from session=%s", id, sessionID)
	return nil
}

// persist сохраняет активность: обновление при редактировании, иначе создание
func (s *Service) persist(ctx context.Context, sel *domain.Selection, editedID *int64) (*domain.Selection, error) {
	if editedID == nil {
		stored, err := s.selectionRepo.Create(ctx, sel)
		if err != nil {
			s.logger.Error("Stage: failed to create selection: %v", err)
			return nil, fmt.Errorf("%w: Stage - create: %v", ErrInternal, err)
		}
		return stored, nil
	}

	existing, err := s.selectionRepo.GetByID(ctx, *editedID)
	if err != nil {
		if errors.Is(err, selectionRepo.ErrSelectionNotFound) {
			s.logger.Warn("Stage: edited selection=%d not found", *editedID)
			return nil, ErrSelectionNotFound
		}
		s.logger.Error("Stage: repository error for selection=%d: %v", *editedID, err)
		return nil, fmt.Errorf("%w: Stage - repository error: %v", ErrInternal, err)
	}
	if existing.SessionID != sel.SessionID {
		s.logger.Warn("Stage: edited selection=%d belongs to session=%s, not %s",
			*editedID, existing.SessionID, sel.SessionID)
		return nil, ErrSessionMismatch
	}

	if err := s.selectionRepo.Update(ctx, sel); err != nil {
		if errors.Is(err, selectionRepo.ErrSelectionNotFound) {
			return nil, ErrSelectionNotFound
		}
		s.logger.Error("Stage: failed to update selection=%d: %v", *editedID, err)
		return nil, fmt.Errorf("%w: Stage - update: %v", ErrInternal, err)
	}

	sel.CreatedAt = existing.CreatedAt
	return sel, nil
}

// conflictsToResponse конвертирует найденные пересечения в response модель
func conflictsToResponse(conflicts []check_conflicts.Conflict) []models.ConflictResponse {
	result := make([]models.ConflictResponse, 0, len(conflicts))
	for _, c := range conflicts {
		result = append(result, models.ConflictResponse{
			Source:        string(c.Source),
			SelectionID:   c.SelectionID,
			ParticipantID: c.ParticipantID.Int64(),
			Date:          domain.DateOnly(c.Date).Format(domain.DateFormat),
			StartTime:     c.StartTime.String(),
			EndTime:       c.EndTime.String(),
			CourseName:    c.CourseName,
		})
	}
	return result
}

// validateStageRequest валидирует запрос постановки активности
func validateStageRequest(req *models.StageSelectionRequest) error {
	if req.SessionID == "" {
		return fmt.Errorf("%w: sessionID is required", ErrInvalidInput)
	}
	if req.CourseID <= 0 {
		return fmt.Errorf("%w: courseId must be positive", ErrInvalidInput)
	}
	if req.CourseType != string(domain.CourseCollective) && req.CourseType != string(domain.CoursePrivate) {
		return fmt.Errorf("%w: unknown courseType %q", ErrInvalidInput, req.CourseType)
	}
	if len(req.ParticipantIDs) == 0 {
		return fmt.Errorf("%w: at least one participant is required", ErrInvalidInput)
	}
	if len(req.Dates) == 0 {
		return fmt.Errorf("%w: at least one date is required", ErrInvalidInput)
	}
	for _, d := range req.Dates {
		start := types.TimeString(d.StartTime)
		end := types.TimeString(d.EndTime)
		if err := start.Validate(); err != nil {
			return fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
		}
		if err := end.Validate(); err != nil {
			return fmt.Errorf("%w: invalid endTime: %v", ErrInvalidInput, err)
		}
		if !start.IsBefore(end) {
			return fmt.Errorf("%w: startTime %s must be before endTime %s", ErrInvalidInput, start, end)
		}
	}
	return nil
}
