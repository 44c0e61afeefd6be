package discounts

import (
	"context"

	"github.com/m04kA/CBO-CourseService/internal/domain"
	"github.com/m04kA/CBO-CourseService/pkg/types"
)

// CourseServiceClient интерфейс клиента persistence API
type CourseServiceClient interface {
	GetIntervalDiscounts(ctx context.Context, intervalID types.NumericID) ([]domain.DiscountRule, error)
	PutIntervalDiscounts(ctx context.Context, intervalID types.NumericID, rules []domain.DiscountRule) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
