package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestInterval_Overlaps(t *testing.T) {
	base := Interval{StartDate: date(2024, 12, 1), EndDate: date(2024, 12, 15)}

	tests := []struct {
		name  string
		other Interval
		want  bool
	}{
		{
			name:  "disjoint after",
			other: Interval{StartDate: date(2024, 12, 16), EndDate: date(2024, 12, 31)},
			want:  false,
		},
		{
			name:  "touching boundary overlaps",
			other: Interval{StartDate: date(2024, 12, 15), EndDate: date(2024, 12, 31)},
			want:  true,
		},
		{
			name:  "contained",
			other: Interval{StartDate: date(2024, 12, 5), EndDate: date(2024, 12, 10)},
			want:  true,
		},
		{
			name:  "disjoint before",
			other: Interval{StartDate: date(2024, 11, 1), EndDate: date(2024, 11, 30)},
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Overlaps(&tt.other))
			// Пересечение симметрично
			assert.Equal(t, tt.want, tt.other.Overlaps(&base))
		})
	}
}

func TestWeeklyPattern_Contains(t *testing.T) {
	pattern := WeeklyPattern{Monday: true, Wednesday: true}

	assert.True(t, pattern.Contains(time.Monday))
	assert.True(t, pattern.Contains(time.Wednesday))
	assert.False(t, pattern.Contains(time.Sunday))
	assert.False(t, WeeklyPattern{}.Contains(time.Monday))
	assert.True(t, WeeklyPattern{}.IsEmpty())
	assert.False(t, pattern.IsEmpty())
}

func TestInterval_DaysAvailable(t *testing.T) {
	i := Interval{StartDate: date(2024, 12, 29), EndDate: date(2024, 12, 31)}
	assert.Equal(t, 3, i.DaysAvailable())

	single := Interval{StartDate: date(2024, 12, 1), EndDate: date(2024, 12, 1)}
	assert.Equal(t, 1, single.DaysAvailable())

	inverted := Interval{StartDate: date(2024, 12, 2), EndDate: date(2024, 12, 1)}
	assert.Equal(t, 0, inverted.DaysAvailable())
}
