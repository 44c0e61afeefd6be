package discounts

import "errors"

var (
	// ErrIntervalNotFound возвращается, когда интервал не найден
	ErrIntervalNotFound = errors.New("interval not found")

	// ErrInvalidRule возвращается при некорректном правиле скидки
	ErrInvalidRule = errors.New("invalid discount rule")

	// ErrDuplicateThreshold возвращается, когда два правила используют один
	// и тот же порог дней
	ErrDuplicateThreshold = errors.New("duplicate discount threshold")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrBackendUnavailable возвращается, когда persistence API недоступен
	ErrBackendUnavailable = errors.New("course service unavailable")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
