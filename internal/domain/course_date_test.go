package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func subgroupWithBookings(max int, bookings ...BookingUser) CourseSubgroup {
	return CourseSubgroup{ID: 1, DegreeID: 10, MaxParticipants: max, Bookings: bookings}
}

func TestCourseSubgroup_Occupancy(t *testing.T) {
	tests := []struct {
		name     string
		subgroup CourseSubgroup
		want     int
	}{
		{
			name:     "empty subgroup",
			subgroup: subgroupWithBookings(6),
			want:     0,
		},
		{
			name: "counts unique active participants",
			subgroup: subgroupWithBookings(6,
				BookingUser{ParticipantID: 1, Status: BookingActive},
				BookingUser{ParticipantID: 2, Status: BookingActive},
				BookingUser{ParticipantID: 3, Status: BookingActive},
			),
			want: 3,
		},
		{
			name: "duplicate participant records count once",
			subgroup: subgroupWithBookings(6,
				BookingUser{ParticipantID: 1, Status: BookingActive},
				BookingUser{ParticipantID: 1, Status: BookingActive},
				BookingUser{ParticipantID: 2, Status: BookingActive},
			),
			want: 2,
		},
		{
			name: "cancelled assignments are excluded",
			subgroup: subgroupWithBookings(6,
				BookingUser{ParticipantID: 1, Status: BookingActive},
				BookingUser{ParticipantID: 2, Status: BookingCancelled},
				BookingUser{ParticipantID: 3, Status: BookingCancelled},
			),
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.subgroup.Occupancy())
		})
	}
}

func TestCourseSubgroup_HasCapacityFor(t *testing.T) {
	// Сценарий из постановки: max=6, 4 активных уникальных участника
	sg := subgroupWithBookings(6,
		BookingUser{ParticipantID: 1, Status: BookingActive},
		BookingUser{ParticipantID: 2, Status: BookingActive},
		BookingUser{ParticipantID: 3, Status: BookingActive},
		BookingUser{ParticipantID: 4, Status: BookingActive},
	)

	assert.True(t, sg.HasCapacityFor(2))
	assert.False(t, sg.HasCapacityFor(3))
}

func TestCourseSubgroup_Unlimited(t *testing.T) {
	sg := subgroupWithBookings(UnlimitedParticipants,
		BookingUser{ParticipantID: 1, Status: BookingActive},
	)

	assert.True(t, sg.IsUnlimited())
	assert.True(t, sg.HasCapacityFor(1000))
}

func TestCourseSubgroup_FreeSlots(t *testing.T) {
	sg := subgroupWithBookings(6,
		BookingUser{ParticipantID: 1, Status: BookingActive},
		BookingUser{ParticipantID: 2, Status: BookingActive},
		BookingUser{ParticipantID: 3, Status: BookingActive},
		BookingUser{ParticipantID: 4, Status: BookingActive},
	)
	assert.Equal(t, 2, sg.FreeSlots())

	// Переполнение извне не уводит счетчик в минус
	over := subgroupWithBookings(1,
		BookingUser{ParticipantID: 1, Status: BookingActive},
		BookingUser{ParticipantID: 2, Status: BookingActive},
	)
	assert.Equal(t, 0, over.FreeSlots())

	unlimited := subgroupWithBookings(UnlimitedParticipants,
		BookingUser{ParticipantID: 1, Status: BookingActive},
	)
	assert.Equal(t, -1, unlimited.FreeSlots())
}
