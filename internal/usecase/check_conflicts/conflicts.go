package check_conflicts

import (
	"github.com/m04kA/CBO-CourseService/internal/domain"
	"github.com/m04kA/CBO-CourseService/pkg/types"
)

// findLocalConflict ищет первое пересечение кандидата со staged-активностями
// сессии. Возвращает nil, если пересечений нет.
//
// Пересечение времени считается по полуоткрытым интервалам [s, e):
// [s1,e1) и [s2,e2) пересекаются тогда и только тогда, когда s1 < e2 И s2 < e1.
// Слоты 10:00-11:00 и 11:00-12:00 граничат, но НЕ пересекаются.
func findLocalConflict(candidate *Candidate, existing []domain.Selection) *Conflict {
	for i := range existing {
		sel := &existing[i]

		// Редактируемая активность не сравнивается сама с собой
		if candidate.EditedSelectionID != nil && *candidate.EditedSelectionID == sel.ID {
			continue
		}

		// Совпадение курса, уровня и точного набора дат при общих участниках -
		// это та же активность (редактирование на месте), времена не сверяем
		if sel.CourseID == candidate.CourseID &&
			sel.DegreeID == candidate.DegreeID &&
			sel.SameDateSet(candidate.Dates) &&
			sel.SharesParticipant(candidate.ParticipantIDs) {
			continue
		}

		if !sel.SharesParticipant(candidate.ParticipantIDs) {
			continue
		}

		for _, candidateDate := range candidate.Dates {
			for _, selDate := range sel.Dates {
				if !domain.SameDay(candidateDate.Date, selDate.Date) {
					continue
				}

				if timesOverlap(candidateDate.StartTime, candidateDate.EndTime, selDate.StartTime, selDate.EndTime) {
					selID := sel.ID
					return &Conflict{
						Source:        SourceLocal,
						SelectionID:   &selID,
						ParticipantID: firstSharedParticipant(sel, candidate.ParticipantIDs),
						Date:          domain.DateOnly(selDate.Date),
						StartTime:     selDate.StartTime,
						EndTime:       selDate.EndTime,
					}
				}
			}
		}
	}

	return nil
}

// timesOverlap проверяет пересечение полуоткрытых интервалов [s1,e1) и [s2,e2)
func timesOverlap(s1, e1, s2, e2 types.TimeString) bool {
	return s1.IsBefore(e2) && s2.IsBefore(e1)
}

// firstSharedParticipant возвращает первого общего участника для сообщения
// об ошибке
func firstSharedParticipant(sel *domain.Selection, participantIDs []types.NumericID) types.NumericID {
	for _, mine := range sel.ParticipantIDs {
		for _, other := range participantIDs {
			if mine == other {
				return mine
			}
		}
	}
	return 0
}
