package get_interval_discounts

import (
	"context"

	"github.com/m04kA/CBO-CourseService/internal/domain"
	"github.com/m04kA/CBO-CourseService/pkg/types"
)

type DiscountsService interface {
	Get(ctx context.Context, intervalID types.NumericID) ([]domain.DiscountRule, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
