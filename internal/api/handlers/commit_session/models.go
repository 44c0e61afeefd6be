package commit_session

import (
	commitBooking "github.com/m04kA/CBO-CourseService/internal/usecase/commit_booking"
)

// CommittedSelectionResponse одна зафиксированная активность
type CommittedSelectionResponse struct {
	SelectionID int64 `json:"selectionId"`
	BookingID   int64 `json:"bookingId"`
	SubgroupID  int64 `json:"subgroupId"`
}

// CommitSessionResponse HTTP ответ фиксации сессии
type CommitSessionResponse struct {
	SessionID string                       `json:"sessionId"`
	Committed []CommittedSelectionResponse `json:"committed"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(result *commitBooking.Response) *CommitSessionResponse {
	committed := make([]CommittedSelectionResponse, 0, len(result.Committed))
	for _, c := range result.Committed {
		committed = append(committed, CommittedSelectionResponse{
			SelectionID: c.SelectionID,
			BookingID:   c.BookingID.Int64(),
			SubgroupID:  c.SubgroupID.Int64(),
		})
	}
	return &CommitSessionResponse{
		SessionID: result.SessionID,
		Committed: committed,
	}
}
