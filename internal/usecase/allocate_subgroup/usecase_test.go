package allocate_subgroup

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CBO-CourseService/internal/domain"
	"github.com/m04kA/CBO-CourseService/pkg/types"
)

type fakeCourseClient struct {
	course *domain.Course
	err    error
}

func (f *fakeCourseClient) GetCourse(_ context.Context, _ types.NumericID) (*domain.Course, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.course, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestExecute_ReportsFreeSlots(t *testing.T) {
	courseDate := dateWithSubgroups(5,
		domain.CourseSubgroup{ID: 301, DegreeID: 5, MaxParticipants: 6, Bookings: activeBookings(1, 2, 3, 4)},
	)
	courseClient := &fakeCourseClient{course: &domain.Course{ID: 100, Dates: []domain.CourseDate{*courseDate}}}
	uc := NewUseCase(courseClient, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		CourseID:    100,
		DateID:      1,
		DegreeID:    5,
		NeededSlots: 2,
	})

	require.NoError(t, err)
	require.True(t, resp.Available)
	require.NotNil(t, resp.Subgroup)
	assert.EqualValues(t, 301, resp.Subgroup.SubgroupID)
	assert.Equal(t, 4, resp.Subgroup.Occupancy)
	assert.Equal(t, 2, resp.Subgroup.FreeSlots)
	assert.Equal(t, "4/6", resp.Subgroup.Indicator)
}

func TestExecute_UnlimitedSubgroupFreeSlots(t *testing.T) {
	courseDate := dateWithSubgroups(5,
		domain.CourseSubgroup{ID: 301, DegreeID: 5, MaxParticipants: domain.UnlimitedParticipants, Bookings: activeBookings(1)},
	)
	courseClient := &fakeCourseClient{course: &domain.Course{ID: 100, Dates: []domain.CourseDate{*courseDate}}}
	uc := NewUseCase(courseClient, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		CourseID:    100,
		DateID:      1,
		DegreeID:    5,
		NeededSlots: 50,
	})

	require.NoError(t, err)
	require.True(t, resp.Available)
	require.NotNil(t, resp.Subgroup)
	assert.Equal(t, -1, resp.Subgroup.FreeSlots, "unlimited capacity has no free-slot count")
}
