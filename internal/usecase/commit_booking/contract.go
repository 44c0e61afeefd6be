package commit_booking

import (
	"context"

	"github.com/m04kA/CBO-CourseService/internal/domain"
	"github.com/m04kA/CBO-CourseService/internal/integrations/courseservice"
	"github.com/m04kA/CBO-CourseService/internal/usecase/check_conflicts"
	"github.com/m04kA/CBO-CourseService/pkg/types"
)

// SelectionRepository интерфейс репозитория staged-активностей
type SelectionRepository interface {
	ListBySession(ctx context.Context, sessionID string) ([]domain.Selection, error)
	DeleteBySession(ctx context.Context, sessionID string) error
}

// CourseServiceClient интерфейс клиента persistence API
type CourseServiceClient interface {
	GetCourse(ctx context.Context, courseID types.NumericID) (*domain.Course, error)
	CreateBooking(ctx context.Context, commit *courseservice.BookingCommit) (*courseservice.BookingResult, error)
}

// ConflictChecker интерфейс повторной проверки пересечений перед фиксацией
type ConflictChecker interface {
	Execute(ctx context.Context, req *check_conflicts.Request) (*check_conflicts.Response, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
