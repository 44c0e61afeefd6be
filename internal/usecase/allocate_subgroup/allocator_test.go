package allocate_subgroup

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CBO-CourseService/internal/domain"
	"github.com/m04kA/CBO-CourseService/pkg/types"
)

func activeBookings(participantIDs ...int64) []domain.BookingUser {
	result := make([]domain.BookingUser, 0, len(participantIDs))
	for _, id := range participantIDs {
		result = append(result, domain.BookingUser{
			ParticipantID: types.NumericID(id),
			Status:        domain.BookingActive,
		})
	}
	return result
}

func dateWithSubgroups(degreeID types.NumericID, subgroups ...domain.CourseSubgroup) *domain.CourseDate {
	return &domain.CourseDate{
		ID:   1,
		Date: time.Date(2024, 12, 2, 0, 0, 0, 0, time.UTC),
		Groups: []domain.CourseGroup{
			{ID: 1, DegreeID: degreeID, Subgroups: subgroups},
		},
	}
}

func TestFindSubgroup_FirstFit(t *testing.T) {
	courseDate := dateWithSubgroups(5,
		domain.CourseSubgroup{ID: 301, DegreeID: 5, MaxParticipants: 6, Bookings: activeBookings(1, 2, 3, 4)},
		domain.CourseSubgroup{ID: 302, DegreeID: 5, MaxParticipants: 6, Bookings: activeBookings(7)},
	)

	// max=6, занято 4: 2 места есть, 3 - нет
	got := FindSubgroup(courseDate, 5, 2)
	require.NotNil(t, got)
	assert.EqualValues(t, 301, got.ID)

	got = FindSubgroup(courseDate, 5, 3)
	require.NotNil(t, got)
	assert.EqualValues(t, 302, got.ID, "full first subgroup is skipped, next candidate returned")
}

func TestFindSubgroup_NoCapacity(t *testing.T) {
	courseDate := dateWithSubgroups(5,
		domain.CourseSubgroup{ID: 301, DegreeID: 5, MaxParticipants: 2, Bookings: activeBookings(1, 2)},
	)

	assert.Nil(t, FindSubgroup(courseDate, 5, 1))
}

func TestFindSubgroup_NoGroupForDegree(t *testing.T) {
	courseDate := dateWithSubgroups(5,
		domain.CourseSubgroup{ID: 301, DegreeID: 5, MaxParticipants: 6},
	)

	// Незнакомый уровень - nil, никакого fallback на другой уровень
	assert.Nil(t, FindSubgroup(courseDate, 99, 1))
}

func TestFindSubgroup_UnlimitedSubgroup(t *testing.T) {
	courseDate := dateWithSubgroups(5,
		domain.CourseSubgroup{ID: 301, DegreeID: 5, MaxParticipants: domain.UnlimitedParticipants},
	)

	got := FindSubgroup(courseDate, 5, 50)
	require.NotNil(t, got)
	assert.EqualValues(t, 301, got.ID)
}

func TestFindSubgroup_Idempotent(t *testing.T) {
	courseDate := dateWithSubgroups(5,
		domain.CourseSubgroup{ID: 301, DegreeID: 5, MaxParticipants: 6, Bookings: activeBookings(1, 2)},
		domain.CourseSubgroup{ID: 302, DegreeID: 5, MaxParticipants: 6},
	)

	first := FindSubgroup(courseDate, 5, 2)
	second := FindSubgroup(courseDate, 5, 2)

	require.NotNil(t, first)
	require.NotNil(t, second)
	assert.Equal(t, first.ID, second.ID)
}

func TestAggregateOccupancy(t *testing.T) {
	course := &domain.Course{
		Dates: []domain.CourseDate{
			*dateWithSubgroups(5, domain.CourseSubgroup{ID: 301, DegreeID: 5, MaxParticipants: 6, Bookings: activeBookings(1, 2)}),
			*dateWithSubgroups(5, domain.CourseSubgroup{ID: 301, DegreeID: 5, MaxParticipants: 6, Bookings: activeBookings(1, 3, 4)}),
			*dateWithSubgroups(5, domain.CourseSubgroup{ID: 302, DegreeID: 5, MaxParticipants: 6, Bookings: activeBookings(9)}),
		},
	}

	assert.Equal(t, 5, AggregateOccupancy(course, 301))
	assert.Equal(t, 1, AggregateOccupancy(course, 302))
	assert.Equal(t, 0, AggregateOccupancy(course, 999))
}

func TestSubgroupsForDegree_BookedFirstOrdering(t *testing.T) {
	intervalID := types.NumericID(1)

	makeDate := func(id int64, subgroups ...domain.CourseSubgroup) domain.CourseDate {
		return domain.CourseDate{
			ID:         types.NumericID(id),
			IntervalID: &intervalID,
			Date:       time.Date(2024, 12, 2, 0, 0, 0, 0, time.UTC),
			Groups:     []domain.CourseGroup{{ID: 1, DegreeID: 5, Subgroups: subgroups}},
		}
	}

	course := &domain.Course{
		Dates: []domain.CourseDate{
			makeDate(1,
				domain.CourseSubgroup{ID: 301, DegreeID: 5, MaxParticipants: 6},
				domain.CourseSubgroup{ID: 302, DegreeID: 5, MaxParticipants: 6, Bookings: activeBookings(1)},
			),
			makeDate(2,
				domain.CourseSubgroup{ID: 301, DegreeID: 5, MaxParticipants: 6},
				domain.CourseSubgroup{ID: 302, DegreeID: 5, MaxParticipants: 6, Bookings: activeBookings(2)},
			),
		},
	}

	got := SubgroupsForDegree(course, intervalID, 5)
	require.Len(t, got, 2)

	// Подгруппа с записями идет первой и переиндексирована
	assert.EqualValues(t, 302, got[0].SubgroupID)
	assert.Equal(t, 0, got[0].Index)
	assert.True(t, got[0].HasBookings)
	assert.Equal(t, 2, got[0].Occupancy)

	assert.EqualValues(t, 301, got[1].SubgroupID)
	assert.Equal(t, 1, got[1].Index)
	assert.False(t, got[1].HasBookings)
}

func TestFormatOccupancy(t *testing.T) {
	assert.Equal(t, "4/6", FormatOccupancy(4, 6))
	assert.Equal(t, "0/6", FormatOccupancy(0, 6))
	assert.Equal(t, "3/∞", FormatOccupancy(3, domain.UnlimitedParticipants))
}
