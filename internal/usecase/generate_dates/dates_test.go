package generate_dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CBO-CourseService/internal/domain"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestGenerateDates_Weekly(t *testing.T) {
	// Декабрь 2024: понедельники 2, 9, 16, 23, 30; среды 4, 11, 18, 25
	interval := &domain.Interval{
		ID:            1,
		StartDate:     day(2024, 12, 1),
		EndDate:       day(2024, 12, 31),
		ConfigMode:    domain.ConfigCustom,
		Method:        domain.MethodWeekly,
		WeeklyPattern: domain.WeeklyPattern{Monday: true, Wednesday: true},
	}

	dates, warnings, err := generateDates(interval, domain.CourseSettings{})
	require.NoError(t, err)
	assert.Empty(t, warnings)

	want := []time.Time{
		day(2024, 12, 2), day(2024, 12, 4), day(2024, 12, 9), day(2024, 12, 11),
		day(2024, 12, 16), day(2024, 12, 18), day(2024, 12, 23), day(2024, 12, 25),
		day(2024, 12, 30),
	}
	assert.Equal(t, want, dates)

	// Каждая дата в паттерне и в границах
	for _, d := range dates {
		assert.True(t, interval.WeeklyPattern.Contains(d.Weekday()))
		assert.True(t, interval.ContainsDate(d))
	}
}

func TestGenerateDates_WeeklyEmptyPattern(t *testing.T) {
	interval := &domain.Interval{
		StartDate:  day(2024, 12, 1),
		EndDate:    day(2024, 12, 31),
		ConfigMode: domain.ConfigCustom,
		Method:     domain.MethodWeekly,
	}

	_, _, err := generateDates(interval, domain.CourseSettings{})
	assert.ErrorIs(t, err, ErrEmptyWeeklyPattern)
}

func TestGenerateDates_Consecutive(t *testing.T) {
	tests := []struct {
		name         string
		count        int
		start, end   time.Time
		wantLen      int
		wantWarnings int
	}{
		{
			name:  "fits within interval",
			count: 3, start: day(2024, 12, 1), end: day(2024, 12, 31),
			wantLen: 3, wantWarnings: 0,
		},
		{
			name:  "clipped to end date with warning",
			count: 10, start: day(2024, 12, 29), end: day(2024, 12, 31),
			wantLen: 3, wantWarnings: 1,
		},
		{
			name:  "exactly fills interval",
			count: 3, start: day(2024, 12, 29), end: day(2024, 12, 31),
			wantLen: 3, wantWarnings: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			interval := &domain.Interval{
				StartDate:            tt.start,
				EndDate:              tt.end,
				ConfigMode:           domain.ConfigCustom,
				Method:               domain.MethodConsecutive,
				ConsecutiveDaysCount: tt.count,
			}

			dates, warnings, err := generateDates(interval, domain.CourseSettings{})
			require.NoError(t, err)
			assert.Len(t, dates, tt.wantLen)
			assert.Len(t, warnings, tt.wantWarnings)

			// Непрерывная серия, начинающаяся со start_date
			for i, d := range dates {
				assert.Equal(t, tt.start.AddDate(0, 0, i), d)
			}
		})
	}
}

func TestGenerateDates_ConsecutiveInvalidCount(t *testing.T) {
	interval := &domain.Interval{
		StartDate:  day(2024, 12, 1),
		EndDate:    day(2024, 12, 31),
		ConfigMode: domain.ConfigCustom,
		Method:     domain.MethodConsecutive,
	}

	_, _, err := generateDates(interval, domain.CourseSettings{})
	assert.ErrorIs(t, err, ErrInvalidConsecutiveCount)
}

func TestGenerateDates_FirstDay(t *testing.T) {
	interval := &domain.Interval{
		StartDate:  day(2024, 12, 5),
		EndDate:    day(2024, 12, 31),
		ConfigMode: domain.ConfigCustom,
		Method:     domain.MethodFirstDay,
	}

	dates, _, err := generateDates(interval, domain.CourseSettings{})
	require.NoError(t, err)
	assert.Equal(t, []time.Time{day(2024, 12, 5)}, dates)
}

func TestGenerateDates_Manual(t *testing.T) {
	interval := &domain.Interval{
		StartDate:   day(2024, 12, 1),
		EndDate:     day(2024, 12, 31),
		ConfigMode:  domain.ConfigCustom,
		Method:      domain.MethodManual,
		ManualDates: []time.Time{day(2024, 12, 10), day(2024, 12, 5), day(2024, 12, 10)},
	}

	dates, _, err := generateDates(interval, domain.CourseSettings{})
	require.NoError(t, err)
	// Дубликаты убраны, порядок по возрастанию
	assert.Equal(t, []time.Time{day(2024, 12, 5), day(2024, 12, 10)}, dates)
}

func TestGenerateDates_ManualOutOfBounds(t *testing.T) {
	interval := &domain.Interval{
		StartDate:   day(2024, 12, 1),
		EndDate:     day(2024, 12, 31),
		ConfigMode:  domain.ConfigCustom,
		Method:      domain.MethodManual,
		ManualDates: []time.Time{day(2025, 1, 1)},
	}

	_, _, err := generateDates(interval, domain.CourseSettings{})
	assert.ErrorIs(t, err, ErrManualDateOutOfBounds)
}

func TestGenerateDates_InheritResolution(t *testing.T) {
	// Интервал с inherit использует правила уровня курса
	interval := &domain.Interval{
		StartDate:  day(2024, 12, 1),
		EndDate:    day(2024, 12, 7),
		ConfigMode: domain.ConfigInherit,
		// Собственный метод интервала должен игнорироваться
		Method: domain.MethodFirstDay,
	}

	settings := domain.CourseSettings{
		DateGenerationMethod: domain.MethodWeekly,
		WeeklyPattern:        domain.WeeklyPattern{Friday: true},
	}

	dates, _, err := generateDates(interval, settings)
	require.NoError(t, err)
	assert.Equal(t, []time.Time{day(2024, 12, 6)}, dates)
}

func TestGenerateDates_Idempotent(t *testing.T) {
	interval := &domain.Interval{
		StartDate:            day(2024, 12, 1),
		EndDate:              day(2024, 12, 31),
		ConfigMode:           domain.ConfigCustom,
		Method:               domain.MethodConsecutive,
		ConsecutiveDaysCount: 5,
	}

	first, _, err := generateDates(interval, domain.CourseSettings{})
	require.NoError(t, err)

	second, _, err := generateDates(interval, domain.CourseSettings{})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestValidateIntervals(t *testing.T) {
	ok := []domain.Interval{
		{Name: "A", StartDate: day(2024, 12, 1), EndDate: day(2024, 12, 15)},
		{Name: "B", StartDate: day(2024, 12, 16), EndDate: day(2024, 12, 31)},
	}
	assert.NoError(t, ValidateIntervals(ok))

	overlapping := []domain.Interval{
		{Name: "A", StartDate: day(2024, 12, 1), EndDate: day(2024, 12, 20)},
		{Name: "B", StartDate: day(2024, 12, 15), EndDate: day(2024, 12, 31)},
	}
	assert.ErrorIs(t, ValidateIntervals(overlapping), ErrIntervalsOverlap)
}

func TestGenerateDates_InvalidBounds(t *testing.T) {
	interval := &domain.Interval{
		StartDate:  day(2024, 12, 31),
		EndDate:    day(2024, 12, 1),
		ConfigMode: domain.ConfigCustom,
		Method:     domain.MethodFirstDay,
	}

	_, _, err := generateDates(interval, domain.CourseSettings{})
	assert.ErrorIs(t, err, ErrInvalidBounds)
}
