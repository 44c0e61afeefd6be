package check_availability

import (
	"context"

	allocateSubgroup "github.com/m04kA/CBO-CourseService/internal/usecase/allocate_subgroup"
)

type AllocateSubgroupUseCase interface {
	Execute(ctx context.Context, req *allocateSubgroup.Request) (*allocateSubgroup.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
