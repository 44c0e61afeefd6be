package list_selections

import (
	"context"

	"github.com/m04kA/CBO-CourseService/internal/service/selections/models"
)

type SelectionsService interface {
	List(ctx context.Context, sessionID string) (*models.SelectionListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
