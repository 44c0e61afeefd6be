package check_conflicts

import (
	"time"

	"github.com/m04kA/CBO-CourseService/internal/domain"
	"github.com/m04kA/CBO-CourseService/pkg/types"
)

// ConflictSource источник обнаруженного конфликта
type ConflictSource string

const (
	// SourceLocal конфликт с другой staged-активностью текущей сессии
	SourceLocal ConflictSource = "local"
	// SourceRemote конфликт с уже зафиксированным бронированием (ответ backend)
	SourceRemote ConflictSource = "remote"
)

// Candidate проверяемая активность
type Candidate struct {
	// EditedSelectionID ID staged-активности, которая сейчас редактируется;
	// она исключается из сравнения с самой собой
	EditedSelectionID *int64

	CourseID       types.NumericID
	DegreeID       types.NumericID
	ParticipantIDs []types.NumericID
	Dates          []domain.SelectionDate
}

// Request модель запроса проверки конфликтов
type Request struct {
	SessionID string
	Candidate Candidate
	// SkipRemote true - только локальная проверка по staged-активностям
	SkipRemote bool
}

// Conflict описание одного пересечения. Несет полный контекст для
// пользовательского сообщения: участник, дата, времена, источник.
type Conflict struct {
	Source ConflictSource
	// SelectionID staged-активность, с которой найден конфликт (для local)
	SelectionID   *int64
	ParticipantID types.NumericID
	Date          time.Time
	StartTime     types.TimeString
	EndTime       types.TimeString
	// CourseName название курса конфликтующего слота (для remote, если известно)
	CourseName string
}

// Response модель ответа проверки конфликтов
type Response struct {
	HasConflict bool
	Conflicts   []Conflict
}
