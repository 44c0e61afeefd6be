package allocate_subgroup

import "errors"

var (
	// ErrCourseNotFound возвращается, когда курс не найден
	ErrCourseNotFound = errors.New("allocate_subgroup: course not found")

	// ErrDateNotFound возвращается, когда дата курса не найдена
	ErrDateNotFound = errors.New("allocate_subgroup: course date not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("allocate_subgroup: invalid input data")

	// ErrBackendUnavailable возвращается, когда persistence API недоступен
	ErrBackendUnavailable = errors.New("allocate_subgroup: course service unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("allocate_subgroup: internal error")
)
