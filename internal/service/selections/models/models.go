package models

import (
	"time"

	"github.com/m04kA/CBO-CourseService/internal/domain"
	"github.com/m04kA/CBO-CourseService/pkg/types"
)

// Request модели

// SelectionDateInput одна выбранная дата в запросе
type SelectionDateInput struct {
	Date      time.Time `json:"date"`
	StartTime string    `json:"startTime"` // "10:00"
	EndTime   string    `json:"endTime"`   // "11:00"
}

// StageSelectionRequest запрос на постановку активности в сессию
type StageSelectionRequest struct {
	SessionID      string               `json:"sessionId"`
	CourseID       int64                `json:"courseId"`
	CourseType     string               `json:"courseType"`
	DegreeID       int64                `json:"degreeId"`
	ParticipantIDs []int64              `json:"participantIds"`
	Dates          []SelectionDateInput `json:"dates"`
	// EditedSelectionID ID существующей staged-активности при редактировании;
	// nil - создается новая
	EditedSelectionID *int64 `json:"editedSelectionId,omitempty"`
}

// ToDomainSelection конвертирует request в domain модель
func (r *StageSelectionRequest) ToDomainSelection() *domain.Selection {
	participants := make([]types.NumericID, 0, len(r.ParticipantIDs))
	for _, id := range r.ParticipantIDs {
		participants = append(participants, types.NumericID(id))
	}

	dates := make([]domain.SelectionDate, 0, len(r.Dates))
	for _, d := range r.Dates {
		dates = append(dates, domain.SelectionDate{
			Date:      d.Date,
			StartTime: types.TimeString(d.StartTime),
			EndTime:   types.TimeString(d.EndTime),
		})
	}

	sel := &domain.Selection{
		SessionID:      r.SessionID,
		CourseID:       types.NumericID(r.CourseID),
		CourseType:     domain.CourseType(r.CourseType),
		DegreeID:       types.NumericID(r.DegreeID),
		ParticipantIDs: participants,
		Dates:          dates,
	}
	if r.EditedSelectionID != nil {
		sel.ID = *r.EditedSelectionID
	}

	return sel
}

// Response модели

// SelectionDateResponse одна дата staged-активности в ответе
type SelectionDateResponse struct {
	Date      string `json:"date"` // "2025-10-15"
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// SelectionResponse ответ с данными staged-активности
type SelectionResponse struct {
	ID             int64                   `json:"id"`
	SessionID      string                  `json:"sessionId"`
	CourseID       int64                   `json:"courseId"`
	CourseType     string                  `json:"courseType"`
	DegreeID       int64                   `json:"degreeId"`
	ParticipantIDs []int64                 `json:"participantIds"`
	Dates          []SelectionDateResponse `json:"dates"`
	CreatedAt      time.Time               `json:"createdAt"`
	UpdatedAt      time.Time               `json:"updatedAt"`
}

// ConflictResponse описание пересечения, помешавшего постановке
type ConflictResponse struct {
	Source        string `json:"source"` // "local" | "remote"
	SelectionID   *int64 `json:"selectionId,omitempty"`
	ParticipantID int64  `json:"participantId"`
	Date          string `json:"date"`
	StartTime     string `json:"startTime"`
	EndTime       string `json:"endTime"`
	CourseName    string `json:"courseName,omitempty"`
}

// StageSelectionResponse результат постановки активности в сессию.
// Конфликт - нормальный исход: активность не сохраняется, детали
// пересечений возвращаются для пользовательского сообщения.
type StageSelectionResponse struct {
	HasConflict bool               `json:"hasConflict"`
	Selection   *SelectionResponse `json:"selection,omitempty"`
	Conflicts   []ConflictResponse `json:"conflicts,omitempty"`
}

// SelectionListResponse ответ со списком staged-активностей сессии
type SelectionListResponse struct {
	Selections []SelectionResponse `json:"selections"`
	Total      int                 `json:"total"`
}

// FromDomainSelection конвертирует domain модель в response
func FromDomainSelection(sel *domain.Selection) *SelectionResponse {
	participants := make([]int64, 0, len(sel.ParticipantIDs))
	for _, id := range sel.ParticipantIDs {
		participants = append(participants, id.Int64())
	}

	dates := make([]SelectionDateResponse, 0, len(sel.Dates))
	for _, d := range sel.Dates {
		dates = append(dates, SelectionDateResponse{
			Date:      domain.DateOnly(d.Date).Format(domain.DateFormat),
			StartTime: d.StartTime.String(),
			EndTime:   d.EndTime.String(),
		})
	}

	return &SelectionResponse{
		ID:             sel.ID,
		SessionID:      sel.SessionID,
		CourseID:       sel.CourseID.Int64(),
		CourseType:     string(sel.CourseType),
		DegreeID:       sel.DegreeID.Int64(),
		ParticipantIDs: participants,
		Dates:          dates,
		CreatedAt:      sel.CreatedAt,
		UpdatedAt:      sel.UpdatedAt,
	}
}

// FromDomainSelectionList конвертирует список domain моделей в response
func FromDomainSelectionList(selections []domain.Selection) *SelectionListResponse {
	result := make([]SelectionResponse, 0, len(selections))
	for i := range selections {
		result = append(result, *FromDomainSelection(&selections[i]))
	}
	return &SelectionListResponse{
		Selections: result,
		Total:      len(result),
	}
}
