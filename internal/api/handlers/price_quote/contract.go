package price_quote

import (
	"context"

	priceSelection "github.com/m04kA/CBO-CourseService/internal/usecase/price_selection"
)

type PriceSelectionUseCase interface {
	Execute(ctx context.Context, req *priceSelection.Request) (*priceSelection.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
