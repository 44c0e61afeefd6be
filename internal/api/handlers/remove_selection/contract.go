package remove_selection

import (
	"context"
)

type SelectionsService interface {
	Remove(ctx context.Context, sessionID string, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
