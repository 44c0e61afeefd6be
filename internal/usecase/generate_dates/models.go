package generate_dates

import (
	"time"

	"github.com/m04kA/CBO-CourseService/pkg/types"
)

// Request модель запроса генерации дат интервала
type Request struct {
	CourseID   types.NumericID
	IntervalID types.NumericID
	// Preview true - только локальный расчет без вызова серверной генерации
	Preview bool
}

// Response модель ответа с рассчитанными датами
type Response struct {
	CourseID   types.NumericID
	IntervalID types.NumericID
	Dates      []time.Time
	// Warnings нефатальные предупреждения (например, обрезка consecutive-серии)
	Warnings []string
	// ServerCount количество дат, сгенерированных сервером (только не-preview).
	// Расхождение с len(Dates) означает рассинхрон клиентского предпросмотра.
	ServerCount *int
}
