package occupancy

import (
	"context"
	"errors"
	"fmt"
	"sync"

	client "github.com/m04kA/CBO-CourseService/internal/integrations/courseservice"
	"github.com/m04kA/CBO-CourseService/internal/usecase/allocate_subgroup"
	"github.com/m04kA/CBO-CourseService/pkg/types"
)

// Request параметры запроса индикаторов занятости
type Request struct {
	CourseID   types.NumericID
	IntervalID types.NumericID
	DegreeID   types.NumericID
}

// SubgroupIndicator индикатор занятости одной подгруппы
type SubgroupIndicator struct {
	Index      int             `json:"index"`
	SubgroupID types.NumericID `json:"subgroupId"`
	// Indicator строка "occupied/total", "3/∞" для безлимитной подгруппы
	Indicator   string `json:"indicator"`
	HasBookings bool   `json:"hasBookings"`
}

// Response индикаторы занятости подгрупп уровня
type Response struct {
	CourseID   types.NumericID     `json:"courseId"`
	IntervalID types.NumericID     `json:"intervalId"`
	DegreeID   types.NumericID     `json:"degreeId"`
	Subgroups  []SubgroupIndicator `json:"subgroups"`
}

// refreshKey одна точка обновления: курс + интервал + уровень
type refreshKey struct {
	courseID   types.NumericID
	intervalID types.NumericID
	degreeID   types.NumericID
}

// Service сервис индикаторов занятости. Помимо синхронного запроса
// поддерживает фоновое обновление: на каждую точку (курс, интервал,
// уровень) живет не больше одного запроса, новый запрос отменяет
// предыдущий. Ответ устаревшего запроса не доставляется.
type Service struct {
	courseClient CourseServiceClient
	logger       Logger

	mu       sync.Mutex
	inflight map[refreshKey]*refreshJob
}

// refreshJob одно фоновое обновление; сравнивается по указателю
type refreshJob struct {
	cancel context.CancelFunc
}

// NewService создает новый экземпляр сервиса занятости
func NewService(courseClient CourseServiceClient, logger Logger) *Service {
	return &Service{
		courseClient: courseClient,
		logger:       logger,
		inflight:     make(map[refreshKey]*refreshJob),
	}
}

// Indicators синхронно строит индикаторы занятости подгрупп уровня.
// Подгруппы с записями идут первыми, занятость суммируется по датам интервала.
func (s *Service) Indicators(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		s.logger.Warn("Indicators: validation failed: %v", err)
		return nil, err
	}

	course, err := s.courseClient.GetCourse(ctx, req.CourseID)
	if err != nil {
		if errors.Is(err, client.ErrCourseNotFound) {
			s.logger.Warn("Indicators: course=%s not found", req.CourseID)
			return nil, ErrCourseNotFound
		}
		if errors.Is(err, client.ErrServiceUnavailable) {
			s.logger.Error("Indicators: course service unavailable: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
		}
		s.logger.Error("Indicators: client error for course=%s: %v", req.CourseID, err)
		return nil, fmt.Errorf("%w: Indicators - client error: %v", ErrInternal, err)
	}

	summaries := allocate_subgroup.SubgroupsForDegree(course, req.IntervalID, req.DegreeID)

	indicators := make([]SubgroupIndicator, 0, len(summaries))
	for _, sg := range summaries {
		indicators = append(indicators, SubgroupIndicator{
			Index:       sg.Index,
			SubgroupID:  sg.SubgroupID,
			Indicator:   allocate_subgroup.FormatOccupancy(sg.Occupancy, sg.MaxParticipants),
			HasBookings: sg.HasBookings,
		})
	}

	return &Response{
		CourseID:   req.CourseID,
		IntervalID: req.IntervalID,
		DegreeID:   req.DegreeID,
		Subgroups:  indicators,
	}, nil
}

// Refresh запускает фоновое обновление индикаторов. Предыдущее обновление
// той же точки отменяется: при быстрых переключениях в интерфейсе
// доставляется только последний результат. deliver вызывается из
// горутины обновления; для отмененного запроса не вызывается вовсе.
func (s *Service) Refresh(ctx context.Context, req *Request, deliver func(*Response, error)) {
	key := refreshKey{req.CourseID, req.IntervalID, req.DegreeID}

	refreshCtx, cancel := context.WithCancel(ctx)
	job := &refreshJob{cancel: cancel}

	s.mu.Lock()
	if prev, ok := s.inflight[key]; ok {
		prev.cancel()
	}
	s.inflight[key] = job
	s.mu.Unlock()

	go func() {
		defer s.release(key, job)

		resp, err := s.Indicators(refreshCtx, req)

		// Запрос отменен более новым обновлением или остановкой сервиса
		if refreshCtx.Err() != nil {
			return
		}

		deliver(resp, err)
	}()
}

// Stop отменяет все фоновые обновления
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key, job := range s.inflight {
		job.cancel()
		delete(s.inflight, key)
	}
}

// release снимает завершенное обновление, если его не сменило более новое
func (s *Service) release(key refreshKey, own *refreshJob) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if current, ok := s.inflight[key]; ok && current == own {
		current.cancel()
		delete(s.inflight, key)
	}
}

// validateRequest валидирует параметры запроса
func validateRequest(req *Request) error {
	if req.CourseID.IsZero() {
		return fmt.Errorf("%w: courseID is required", ErrInvalidInput)
	}
	if req.IntervalID.IsZero() {
		return fmt.Errorf("%w: intervalID is required", ErrInvalidInput)
	}
	if req.DegreeID.IsZero() {
		return fmt.Errorf("%w: degreeID is required", ErrInvalidInput)
	}
	return nil
}
