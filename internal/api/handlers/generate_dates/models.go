package generate_dates

import (
	"github.com/m04kA/CBO-CourseService/internal/domain"
	generateDates "github.com/m04kA/CBO-CourseService/internal/usecase/generate_dates"
)

// GenerateDatesResponse HTTP ответ с рассчитанными датами
type GenerateDatesResponse struct {
	CourseID   int64    `json:"courseId"`
	IntervalID int64    `json:"intervalId"`
	Dates      []string `json:"dates"` // "2025-10-15"
	Warnings   []string `json:"warnings,omitempty"`
	// ServerCount количество дат, сгенерированных сервером (отсутствует в preview)
	ServerCount *int `json:"serverCount,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(result *generateDates.Response) *GenerateDatesResponse {
	dates := make([]string, 0, len(result.Dates))
	for _, d := range result.Dates {
		dates = append(dates, d.Format(domain.DateFormat))
	}

	return &GenerateDatesResponse{
		CourseID:    result.CourseID.Int64(),
		IntervalID:  result.IntervalID.Int64(),
		Dates:       dates,
		Warnings:    result.Warnings,
		ServerCount: result.ServerCount,
	}
}
