package courseservice

import "errors"

var (
	// ErrCourseNotFound возвращается, когда курс не найден
	ErrCourseNotFound = errors.New("course not found")

	// ErrIntervalNotFound возвращается, когда интервал не найден
	ErrIntervalNotFound = errors.New("interval not found")

	// ErrBookingConflict возвращается, когда backend нашел пересечение
	// по времени для участника (authoritative проверка)
	ErrBookingConflict = errors.New("courseservice client: booking conflict reported")

	// ErrCapacityStale возвращается, когда backend отклонил бронирование
	// после успешной локальной проверки вместимости. Ошибка retryable:
	// вызывающий обязан перечитать агрегат курса и повторить аллокацию.
	ErrCapacityStale = errors.New("courseservice client: capacity changed since last fetch")

	// ErrValidation возвращается, когда backend отклонил данные валидацией
	ErrValidation = errors.New("courseservice client: validation rejected")

	// ErrServiceUnavailable возвращается, когда persistence API недоступен
	// (сетевая ошибка или таймаут). Вызывающий отвечает 502 и не ретраит
	ErrServiceUnavailable = errors.New("courseservice client: service unavailable")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("courseservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("courseservice client: invalid response")
)
