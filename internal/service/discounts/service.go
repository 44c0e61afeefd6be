package discounts

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/m04kA/CBO-CourseService/internal/domain"
	client "github.com/m04kA/CBO-CourseService/internal/integrations/courseservice"
	"github.com/m04kA/CBO-CourseService/pkg/types"
)

// Service сервис правил скидок интервала
type Service struct {
	courseClient CourseServiceClient
	logger       Logger
}

// NewService создает новый экземпляр сервиса скидок
func NewService(courseClient CourseServiceClient, logger Logger) *Service {
	return &Service{
		courseClient: courseClient,
		logger:       logger,
	}
}

// Get возвращает правила скидок интервала, отсортированные по порогу дней
func (s *Service) Get(ctx context.Context, intervalID types.NumericID) ([]domain.DiscountRule, error) {
	s.logger.Info("GetDiscounts: interval=%s", intervalID)

	if intervalID.IsZero() {
		return nil, fmt.Errorf("%w: intervalID is required", ErrInvalidInput)
	}

	rules, err := s.courseClient.GetIntervalDiscounts(ctx, intervalID)
	if err != nil {
		if errors.Is(err, client.ErrIntervalNotFound) {
			s.logger.Warn("GetDiscounts: interval=%s not found", intervalID)
			return nil, ErrIntervalNotFound
		}
		if errors.Is(err, client.ErrServiceUnavailable) {
			s.logger.Error("GetDiscounts: course service unavailable: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
		}
		s.logger.Error("GetDiscounts: client error for interval=%s: %v", intervalID, err)
		return nil, fmt.Errorf("%w: GetDiscounts - client error: %v", ErrInternal, err)
	}

	sort.SliceStable(rules, func(i, j int) bool {
		return rules[i].Days < rules[j].Days
	})

	return rules, nil
}

// Put валидирует и сохраняет правила скидок интервала целиком.
// Пустой список допустим: он снимает скидки интервала, и расчет цены
// возвращается к глобальным правилам курса.
func (s *Service) Put(ctx context.Context, intervalID types.NumericID, rules []domain.DiscountRule) error {
	s.logger.Info("PutDiscounts: interval=%s, rules=%d", intervalID, len(rules))

	if intervalID.IsZero() {
		return fmt.Errorf("%w: intervalID is required", ErrInvalidInput)
	}
	if err := validateRules(rules); err != nil {
		s.logger.Warn("PutDiscounts: validation failed for interval=%s: %v", intervalID, err)
		return err
	}

	if err := s.courseClient.PutIntervalDiscounts(ctx, intervalID, rules); err != nil {
		if errors.Is(err, client.ErrIntervalNotFound) {
			s.logger.Warn("PutDiscounts: interval=%s not found", intervalID)
			return ErrIntervalNotFound
		}
		if errors.Is(err, client.ErrServiceUnavailable) {
			s.logger.Error("PutDiscounts: course service unavailable: %v", err)
			return fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
		}
		s.logger.Error("PutDiscounts: client error for interval=%s: %v", intervalID, err)
		return fmt.Errorf("%w: PutDiscounts - client error: %v", ErrInternal, err)
	}

	s.logger.Info("PutDiscounts: interval=%s saved %d rules", intervalID, len(rules))
	return nil
}

// validateRules проверяет каждое правило и уникальность порогов
func validateRules(rules []domain.DiscountRule) error {
	seen := make(map[int]struct{}, len(rules))

	for _, r := range rules {
		if r.Days < domain.MinDiscountDays {
			return fmt.Errorf("%w: days threshold %d below minimum %d", ErrInvalidRule, r.Days, domain.MinDiscountDays)
		}
		if r.Value <= 0 {
			return fmt.Errorf("%w: value must be positive, got %v", ErrInvalidRule, r.Value)
		}

		switch r.Type {
		case domain.DiscountPercentage:
			if r.Value > domain.MaxDiscountPercent {
				return fmt.Errorf("%w: percentage %v exceeds %d", ErrInvalidRule, r.Value, domain.MaxDiscountPercent)
			}
		case domain.DiscountFixed:
			// Фиксированная скидка ограничивается базой при расчете
		default:
			return fmt.Errorf("%w: unknown type %q", ErrInvalidRule, r.Type)
		}

		if _, ok := seen[r.Days]; ok {
			return fmt.Errorf("%w: days=%d", ErrDuplicateThreshold, r.Days)
		}
		seen[r.Days] = struct{}{}
	}

	return nil
}
