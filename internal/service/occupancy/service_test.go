package occupancy

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CBO-CourseService/internal/domain"
	"github.com/m04kA/CBO-CourseService/pkg/types"
)

type blockingClient struct {
	course *domain.Course
	// gate закрывается тестом, когда клиенту можно отвечать
	gate  chan struct{}
	calls int32
}

func (c *blockingClient) GetCourse(ctx context.Context, _ types.NumericID) (*domain.Course, error) {
	atomic.AddInt32(&c.calls, 1)
	if c.gate != nil {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-c.gate:
		}
	}
	return c.course, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testCourse() *domain.Course {
	intervalID := types.NumericID(10)
	active := func(ids ...int64) []domain.BookingUser {
		users := make([]domain.BookingUser, 0, len(ids))
		for _, id := range ids {
			users = append(users, domain.BookingUser{
				ParticipantID: types.NumericID(id),
				Status:        domain.BookingActive,
			})
		}
		return users
	}

	return &domain.Course{
		ID: 7,
		Dates: []domain.CourseDate{
			{
				ID:         100,
				IntervalID: &intervalID,
				Date:       time.Date(2024, time.December, 2, 0, 0, 0, 0, time.UTC),
				Groups: []domain.CourseGroup{
					{
						ID:       1,
						DegreeID: 5,
						Subgroups: []domain.CourseSubgroup{
							{ID: 51, DegreeID: 5, MaxParticipants: 6, Bookings: active(31, 32, 33, 34)},
							{ID: 52, DegreeID: 5, MaxParticipants: 0},
						},
					},
				},
			},
		},
	}
}

func TestIndicators_FormatsOccupancy(t *testing.T) {
	svc := NewService(&blockingClient{course: testCourse()}, nopLogger{})

	resp, err := svc.Indicators(context.Background(), &Request{CourseID: 7, IntervalID: 10, DegreeID: 5})
	require.NoError(t, err)

	require.Len(t, resp.Subgroups, 2)

	// Подгруппа с записями идет первой
	assert.Equal(t, types.NumericID(51), resp.Subgroups[0].SubgroupID)
	assert.Equal(t, "4/6", resp.Subgroups[0].Indicator)
	assert.True(t, resp.Subgroups[0].HasBookings)

	assert.Equal(t, types.NumericID(52), resp.Subgroups[1].SubgroupID)
	assert.Equal(t, "0/∞", resp.Subgroups[1].Indicator)
	assert.False(t, resp.Subgroups[1].HasBookings)
}

func TestRefresh_CancelAndRestart(t *testing.T) {
	client := &blockingClient{course: testCourse(), gate: make(chan struct{})}
	svc := NewService(client, nopLogger{})
	defer svc.Stop()

	delivered := make(chan *Response, 2)
	deliver := func(resp *Response, err error) {
		require.NoError(t, err)
		delivered <- resp
	}

	req := &Request{CourseID: 7, IntervalID: 10, DegreeID: 5}

	// Первое обновление виснет на клиенте, второе отменяет его
	svc.Refresh(context.Background(), req, deliver)
	svc.Refresh(context.Background(), req, deliver)

	close(client.gate)

	select {
	case resp := <-delivered:
		assert.Equal(t, types.NumericID(7), resp.CourseID)
	case <-time.After(2 * time.Second):
		t.Fatal("refresh result was not delivered")
	}

	// Отмененное обновление не доставляет ничего
	select {
	case <-delivered:
		t.Fatal("superseded refresh delivered a result")
	case <-time.After(100 * time.Millisecond):
	}

	assert.Equal(t, int32(2), atomic.LoadInt32(&client.calls))
}

func TestRefresh_IndependentKeysRunConcurrently(t *testing.T) {
	client := &blockingClient{course: testCourse()}
	svc := NewService(client, nopLogger{})
	defer svc.Stop()

	delivered := make(chan *Response, 2)
	deliver := func(resp *Response, err error) {
		require.NoError(t, err)
		delivered <- resp
	}

	// Разные уровни - разные точки обновления, ни одна не отменяет другую
	svc.Refresh(context.Background(), &Request{CourseID: 7, IntervalID: 10, DegreeID: 5}, deliver)
	svc.Refresh(context.Background(), &Request{CourseID: 7, IntervalID: 10, DegreeID: 6}, deliver)

	for i := 0; i < 2; i++ {
		select {
		case <-delivered:
		case <-time.After(2 * time.Second):
			t.Fatal("refresh result was not delivered")
		}
	}
}
