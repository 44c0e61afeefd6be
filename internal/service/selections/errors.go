package selections

import "errors"

var (
	// ErrSelectionNotFound возвращается, когда staged-активность не найдена
	ErrSelectionNotFound = errors.New("selection not found")

	// ErrSessionMismatch возвращается, когда staged-активность принадлежит
	// другой сессии
	ErrSessionMismatch = errors.New("selection belongs to another session")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrBackendUnavailable возвращается, когда persistence API недоступен
	// для проверки пересечений
	ErrBackendUnavailable = errors.New("course service unavailable")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
