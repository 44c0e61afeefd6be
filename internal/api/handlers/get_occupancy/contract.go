package get_occupancy

import (
	"context"

	occupancyService "github.com/m04kA/CBO-CourseService/internal/service/occupancy"
)

type OccupancyService interface {
	Indicators(ctx context.Context, req *occupancyService.Request) (*occupancyService.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
