package courseservice

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CBO-CourseService/internal/domain"
)

func TestNormalizeCourse_SnakeCaseShape(t *testing.T) {
	raw := `{
		"id": 7,
		"name": "Ski course",
		"course_type": "collective",
		"is_flexible": true,
		"price": 50,
		"currency": "EUR",
		"settings": {
			"must_be_consecutive": true,
			"date_generation_method": "weekly",
			"weekly_pattern": {"monday": true, "wednesday": true}
		},
		"intervals": [{
			"id": 1,
			"name": "December",
			"start_date": "2024-12-01",
			"end_date": "2024-12-31",
			"config_mode": "inherit",
			"discounts": [{"days": 2, "type": "percentage", "value": 10}]
		}],
		"course_dates": [{
			"id": 100,
			"interval_id": 1,
			"date": "2024-12-02",
			"hour_start": "10:00",
			"hour_end": "11:00",
			"course_groups": [{
				"id": 200,
				"degree_id": 5,
				"course_subgroups": [{
					"id": 300,
					"degree_id": 5,
					"max_participants": 6,
					"booking_users": [
						{"id": 1, "client_id": 11, "status": "active"},
						{"id": 2, "client_id": 12, "status": "cancelled"}
					]
				}]
			}]
		}]
	}`

	var wire courseWire
	require.NoError(t, json.Unmarshal([]byte(raw), &wire))

	course, err := normalizeCourse(&wire)
	require.NoError(t, err)

	assert.Equal(t, domain.CourseCollective, course.Type)
	assert.True(t, course.IsFlexible)
	assert.True(t, course.Settings.MustBeConsecutive)
	assert.Equal(t, domain.MethodWeekly, course.Settings.DateGenerationMethod)
	assert.True(t, course.Settings.WeeklyPattern.Monday)

	require.Len(t, course.Intervals, 1)
	assert.Equal(t, domain.ConfigInherit, course.Intervals[0].ConfigMode)
	require.Len(t, course.Intervals[0].DiscountRules, 1)
	assert.Equal(t, 2, course.Intervals[0].DiscountRules[0].Days)

	require.Len(t, course.Dates, 1)
	d := course.Dates[0]
	require.NotNil(t, d.IntervalID)
	require.Len(t, d.Groups, 1)
	require.Len(t, d.Groups[0].Subgroups, 1)

	sg := d.Groups[0].Subgroups[0]
	assert.Equal(t, 6, sg.MaxParticipants)
	assert.Equal(t, 1, sg.Occupancy(), "cancelled booking must not count")
}

func TestNormalizeCourse_CamelCaseShape(t *testing.T) {
	raw := `{
		"id": "7",
		"name": "Ski course",
		"courseType": "private",
		"isFlexible": true,
		"price": 90,
		"currency": "EUR",
		"intervals": [{
			"id": "1",
			"name": "January",
			"startDate": "2025-01-01",
			"endDate": "2025-01-31",
			"configMode": "custom",
			"dateGenerationMethod": "consecutive",
			"consecutiveDaysCount": 5
		}],
		"courseDates": [{
			"id": "100",
			"intervalId": "1",
			"date": "2025-01-01",
			"startTime": "09:00",
			"endTime": "10:00"
		}],
		"price_range": [
			{"duration": "1h", "prices": {"1": 70, "2": 55}},
			{"duration": "1h 30min", "prices": {"1": 65}}
		]
	}`

	var wire courseWire
	require.NoError(t, json.Unmarshal([]byte(raw), &wire))

	course, err := normalizeCourse(&wire)
	require.NoError(t, err)

	// Числовые строки в id должны сравниваться наравне с числами
	assert.EqualValues(t, 7, course.ID)
	assert.Equal(t, domain.CoursePrivate, course.Type)

	require.Len(t, course.Intervals, 1)
	assert.Equal(t, domain.MethodConsecutive, course.Intervals[0].Method)
	assert.Equal(t, 5, course.Intervals[0].ConsecutiveDaysCount)

	require.Len(t, course.Dates, 1)
	require.NotNil(t, course.Dates[0].IntervalID)
	assert.EqualValues(t, 1, *course.Dates[0].IntervalID)

	require.Len(t, course.PriceRange, 2)
	assert.InDelta(t, 55, course.PriceRange[0].Prices[2], 0.0001)
	assert.True(t, course.HasPriceForParticipants(2))
	assert.False(t, course.HasPriceForParticipants(3))
}

func TestNormalizeCourse_FlatActiveBookingsFallback(t *testing.T) {
	raw := `{
		"id": 7,
		"name": "Course",
		"course_type": "collective",
		"price": 50,
		"currency": "EUR",
		"course_dates": [{
			"id": 100,
			"date": "2024-12-02",
			"hour_start": "10:00",
			"hour_end": "11:00",
			"booking_users_active": [
				{"id": 1, "client_id": 11, "course_subgroup_id": 300},
				{"id": 2, "client_id": 12, "course_subgroup_id": 300},
				{"id": 3, "client_id": 13, "course_subgroup_id": 301}
			],
			"course_groups": [{
				"id": 200,
				"degree_id": 5,
				"course_subgroups": [
					{"id": 300, "degree_id": 5, "max_participants": 6},
					{"id": 301, "degree_id": 5, "max_participants": 6}
				]
			}]
		}]
	}`

	var wire courseWire
	require.NoError(t, json.Unmarshal([]byte(raw), &wire))

	course, err := normalizeCourse(&wire)
	require.NoError(t, err)

	subgroups := course.Dates[0].Groups[0].Subgroups
	require.Len(t, subgroups, 2)

	// Записи из плоского списка распределяются по подгруппам и считаются активными
	assert.Equal(t, 2, subgroups[0].Occupancy())
	assert.Equal(t, 1, subgroups[1].Occupancy())
}

func TestNormalizeCourse_EmbeddedPreferredOverFlat(t *testing.T) {
	raw := `{
		"id": 7,
		"name": "Course",
		"course_type": "collective",
		"price": 50,
		"currency": "EUR",
		"course_dates": [{
			"id": 100,
			"date": "2024-12-02",
			"booking_users_active": [
				{"id": 9, "client_id": 99, "course_subgroup_id": 300}
			],
			"course_groups": [{
				"id": 200,
				"degree_id": 5,
				"course_subgroups": [{
					"id": 300,
					"degree_id": 5,
					"max_participants": 6,
					"booking_users": [
						{"id": 1, "client_id": 11, "status": "active"},
						{"id": 2, "client_id": 12, "status": "active"}
					]
				}]
			}]
		}]
	}`

	var wire courseWire
	require.NoError(t, json.Unmarshal([]byte(raw), &wire))

	course, err := normalizeCourse(&wire)
	require.NoError(t, err)

	sg := course.Dates[0].Groups[0].Subgroups[0]
	// При наличии обоих источников занятости выигрывает вложенный
	assert.Equal(t, 2, sg.Occupancy())
}
