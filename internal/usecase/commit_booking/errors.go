package commit_booking

import "errors"

var (
	// ErrEmptySession возвращается при попытке зафиксировать сессию без
	// staged-активностей
	ErrEmptySession = errors.New("commit_booking: session has no staged selections")

	// ErrCourseNotFound возвращается, когда курс staged-активности не найден
	ErrCourseNotFound = errors.New("commit_booking: course not found")

	// ErrConflictDetected возвращается, когда повторная проверка пересечений
	// нашла конфликт; фиксация отменяется целиком
	ErrConflictDetected = errors.New("commit_booking: time conflict detected")

	// ErrNoCapacity возвращается, когда ни одна подгруппа не вмещает
	// участников staged-активности на всех ее датах
	ErrNoCapacity = errors.New("commit_booking: no subgroup capacity")

	// ErrDateMismatch возвращается, когда дата staged-активности отсутствует
	// в расписании курса (расписание изменилось после выбора)
	ErrDateMismatch = errors.New("commit_booking: selected date no longer in course schedule")

	// ErrCapacityStale возвращается, когда backend отклонил фиксацию из-за
	// изменившейся вместимости. Ошибка временная: вызывающий перечитывает
	// курс и повторяет выбор подгруппы.
	ErrCapacityStale = errors.New("commit_booking: capacity changed, re-fetch and retry")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("commit_booking: invalid input data")

	// ErrBackendUnavailable возвращается, когда persistence API недоступен
	ErrBackendUnavailable = errors.New("commit_booking: course service unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("commit_booking: internal error")
)
