package stage_selection

import (
	"context"

	"github.com/m04kA/CBO-CourseService/internal/service/selections/models"
)

type SelectionsService interface {
	Stage(ctx context.Context, req *models.StageSelectionRequest) (*models.StageSelectionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
