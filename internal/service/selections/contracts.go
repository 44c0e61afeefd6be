package selections

import (
	"context"

	"github.com/m04kA/CBO-CourseService/internal/domain"
	"github.com/m04kA/CBO-CourseService/internal/usecase/check_conflicts"
)

// SelectionRepository интерфейс репозитория staged-активностей
type SelectionRepository interface {
	Create(ctx context.Context, sel *domain.Selection) (*domain.Selection, error)
	GetByID(ctx context.Context, id int64) (*domain.Selection, error)
	ListBySession(ctx context.Context, sessionID string) ([]domain.Selection, error)
	Update(ctx context.Context, sel *domain.Selection) error
	Delete(ctx context.Context, id int64) error
}

// ConflictChecker интерфейс проверки пересечений перед постановкой в сессию
type ConflictChecker interface {
	Execute(ctx context.Context, req *check_conflicts.Request) (*check_conflicts.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
