package price_selection

import "errors"

var (
	// ErrCourseNotFound возвращается, когда курс не найден
	ErrCourseNotFound = errors.New("price_selection: course not found")

	// ErrIntervalNotFound возвращается, когда интервал не найден в курсе
	ErrIntervalNotFound = errors.New("price_selection: interval not found")

	// ErrNoPriceForParticipants возвращается, когда матрица цен приватного
	// курса не содержит ни одной цены для запрошенного количества участников.
	// Такой курс исключается из выбора, а не оценивается по плоской цене.
	ErrNoPriceForParticipants = errors.New("price_selection: no price defined for participant count")

	// ErrEmptySelection возвращается при пустом наборе выбранных дат
	ErrEmptySelection = errors.New("price_selection: selection contains no dates")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("price_selection: invalid input data")

	// ErrBackendUnavailable возвращается, когда persistence API недоступен
	ErrBackendUnavailable = errors.New("price_selection: course service unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("price_selection: internal error")
)
