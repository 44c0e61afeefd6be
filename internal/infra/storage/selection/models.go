package selection

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/m04kA/CBO-CourseService/internal/domain"
	"github.com/m04kA/CBO-CourseService/pkg/types"
)

// dateRow JSON-представление одной даты в колонке dates
type dateRow struct {
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// encodeParticipants сериализует участников в JSONB-колонку
func encodeParticipants(ids []types.NumericID) ([]byte, error) {
	raw := make([]int64, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.Int64())
	}
	data, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: participants: %v", ErrEncode, err)
	}
	return data, nil
}

// decodeParticipants читает участников из JSONB-колонки
func decodeParticipants(data []byte) ([]types.NumericID, error) {
	var raw []int64
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: participants: %v", ErrDecode, err)
	}
	ids := make([]types.NumericID, 0, len(raw))
	for _, id := range raw {
		ids = append(ids, types.NumericID(id))
	}
	return ids, nil
}

// encodeDates сериализует выбранные даты в JSONB-колонку
func encodeDates(dates []domain.SelectionDate) ([]byte, error) {
	rows := make([]dateRow, 0, len(dates))
	for _, d := range dates {
		rows = append(rows, dateRow{
			Date:      domain.DateOnly(d.Date).Format(domain.DateFormat),
			StartTime: d.StartTime.String(),
			EndTime:   d.EndTime.String(),
		})
	}
	data, err := json.Marshal(rows)
	if err != nil {
		return nil, fmt.Errorf("%w: dates: %v", ErrEncode, err)
	}
	return data, nil
}

// decodeDates читает выбранные даты из JSONB-колонки
func decodeDates(data []byte) ([]domain.SelectionDate, error) {
	var rows []dateRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("%w: dates: %v", ErrDecode, err)
	}
	dates := make([]domain.SelectionDate, 0, len(rows))
	for _, r := range rows {
		day, err := time.Parse(domain.DateFormat, r.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: dates: invalid date %q", ErrDecode, r.Date)
		}
		dates = append(dates, domain.SelectionDate{
			Date:      day,
			StartTime: types.TimeString(r.StartTime),
			EndTime:   types.TimeString(r.EndTime),
		})
	}
	return dates, nil
}
