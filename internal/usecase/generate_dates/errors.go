package generate_dates

import "errors"

var (
	// ErrCourseNotFound возвращается, когда курс не найден
	ErrCourseNotFound = errors.New("generate_dates: course not found")

	// ErrIntervalNotFound возвращается, когда интервал не найден в курсе
	ErrIntervalNotFound = errors.New("generate_dates: interval not found")

	// ErrEmptyWeeklyPattern возвращается, когда метод weekly выбран,
	// но ни один день недели не отмечен
	ErrEmptyWeeklyPattern = errors.New("generate_dates: weekly pattern has no weekday selected")

	// ErrInvalidConsecutiveCount возвращается при неположительном количестве
	// последовательных дней
	ErrInvalidConsecutiveCount = errors.New("generate_dates: consecutive days count must be positive")

	// ErrManualDateOutOfBounds возвращается, когда вручную заданная дата
	// выходит за границы интервала
	ErrManualDateOutOfBounds = errors.New("generate_dates: manual date is outside interval bounds")

	// ErrIntervalsOverlap возвращается, когда диапазоны дат интервалов
	// одного курса пересекаются. Жесткая ошибка валидации - сохранение
	// отклоняется целиком.
	ErrIntervalsOverlap = errors.New("generate_dates: course intervals overlap")

	// ErrInvalidBounds возвращается, когда конец интервала раньше начала
	ErrInvalidBounds = errors.New("generate_dates: interval end date is before start date")

	// ErrUnknownMethod возвращается при неизвестном методе генерации
	ErrUnknownMethod = errors.New("generate_dates: unknown date generation method")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("generate_dates: invalid input data")

	// ErrBackendUnavailable возвращается, когда persistence API недоступен
	ErrBackendUnavailable = errors.New("generate_dates: course service unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("generate_dates: internal error")
)
