package generate_dates

import (
	"context"

	generateDates "github.com/m04kA/CBO-CourseService/internal/usecase/generate_dates"
)

type GenerateDatesUseCase interface {
	Execute(ctx context.Context, req *generateDates.Request) (*generateDates.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
