package check_conflicts

import (
	"context"

	"github.com/m04kA/CBO-CourseService/internal/domain"
	"github.com/m04kA/CBO-CourseService/internal/integrations/courseservice"
)

// SelectionRepository интерфейс репозитория staged-активностей
type SelectionRepository interface {
	// ListBySession возвращает все staged-активности сессии
	ListBySession(ctx context.Context, sessionID string) ([]domain.Selection, error)
}

// CourseServiceClient интерфейс клиента persistence API
type CourseServiceClient interface {
	// CheckAvailability authoritative-проверка пересечений с уже
	// зафиксированными бронированиями
	CheckAvailability(ctx context.Context, req *courseservice.AvailabilityRequest) (*courseservice.AvailabilityResult, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
