package check_conflicts

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия бронирования не найдена
	ErrSessionNotFound = errors.New("check_conflicts: booking session not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("check_conflicts: invalid input data")

	// ErrBackendUnavailable возвращается, когда persistence API недоступен
	ErrBackendUnavailable = errors.New("check_conflicts: course service unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("check_conflicts: internal error")
)
