package commit_booking

import (
	"github.com/m04kA/CBO-CourseService/pkg/types"
)

// Request модель запроса фиксации сессии
type Request struct {
	SessionID string
	UserID    int64
}

// CommittedSelection одна зафиксированная активность
type CommittedSelection struct {
	SelectionID int64
	BookingID   types.NumericID
	SubgroupID  types.NumericID
}

// Response модель ответа фиксации сессии
type Response struct {
	SessionID string
	Committed []CommittedSelection
}
