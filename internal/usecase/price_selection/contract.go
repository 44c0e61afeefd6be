package price_selection

import (
	"context"

	"github.com/m04kA/CBO-CourseService/internal/domain"
	"github.com/m04kA/CBO-CourseService/pkg/types"
)

// CourseServiceClient интерфейс клиента persistence API
type CourseServiceClient interface {
	GetCourse(ctx context.Context, courseID types.NumericID) (*domain.Course, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
