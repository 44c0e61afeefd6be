package stage_selection

import (
	"fmt"
	"time"

	"github.com/m04kA/CBO-CourseService/internal/domain"
	"github.com/m04kA/CBO-CourseService/internal/service/selections/models"
)

// SelectionDateInput одна дата активности в HTTP запросе
type SelectionDateInput struct {
	Date      string `json:"date"` // "2025-10-15"
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// StageSelectionRequest HTTP запрос постановки активности в сессию
type StageSelectionRequest struct {
	CourseID          int64                `json:"courseId"`
	CourseType        string               `json:"courseType"`
	DegreeID          int64                `json:"degreeId"`
	ParticipantIDs    []int64              `json:"participantIds"`
	Dates             []SelectionDateInput `json:"dates"`
	EditedSelectionID *int64               `json:"editedSelectionId,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса (с парсингом дат)
func (r *StageSelectionRequest) ToServiceRequest(sessionID string) (*models.StageSelectionRequest, error) {
	dates := make([]models.SelectionDateInput, 0, len(r.Dates))
	for _, d := range r.Dates {
		day, err := time.Parse(domain.DateFormat, d.Date)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q: %w", d.Date, err)
		}
		dates = append(dates, models.SelectionDateInput{
			Date:      day,
			StartTime: d.StartTime,
			EndTime:   d.EndTime,
		})
	}

	return &models.StageSelectionRequest{
		SessionID:         sessionID,
		CourseID:          r.CourseID,
		CourseType:        r.CourseType,
		DegreeID:          r.DegreeID,
		ParticipantIDs:    r.ParticipantIDs,
		Dates:             dates,
		EditedSelectionID: r.EditedSelectionID,
	}, nil
}
