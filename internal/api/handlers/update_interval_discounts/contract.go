package update_interval_discounts

import (
	"context"

	"github.com/m04kA/CBO-CourseService/internal/domain"
	"github.com/m04kA/CBO-CourseService/pkg/types"
)

type DiscountsService interface {
	Put(ctx context.Context, intervalID types.NumericID, rules []domain.DiscountRule) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
