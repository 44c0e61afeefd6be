package check_conflicts

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CBO-CourseService/internal/domain"
	client "github.com/m04kA/CBO-CourseService/internal/integrations/courseservice"
)

type fakeSelectionRepo struct {
	selections []domain.Selection
}

func (f *fakeSelectionRepo) ListBySession(_ context.Context, _ string) ([]domain.Selection, error) {
	return f.selections, nil
}

type fakeCourseClient struct {
	err    error
	result *client.AvailabilityResult
	calls  int
}

func (f *fakeCourseClient) CheckAvailability(_ context.Context, _ *client.AvailabilityRequest) (*client.AvailabilityResult, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestExecute_CleanLocallyAndRemotely(t *testing.T) {
	repo := &fakeSelectionRepo{}
	courseClient := &fakeCourseClient{result: &client.AvailabilityResult{Available: true}}
	uc := NewUseCase(repo, courseClient, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		SessionID: "s1",
		Candidate: *candidate([]int64{11}, selDate(day(2024, 12, 25), "10:00", "11:00")),
	})

	require.NoError(t, err)
	assert.False(t, resp.HasConflict)
	assert.Equal(t, 1, courseClient.calls)
}

func TestExecute_BackendUnavailable(t *testing.T) {
	repo := &fakeSelectionRepo{}
	courseClient := &fakeCourseClient{
		err: fmt.Errorf("%w: connection refused", client.ErrServiceUnavailable),
	}
	uc := NewUseCase(repo, courseClient, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		SessionID: "s1",
		Candidate: *candidate([]int64{11}, selDate(day(2024, 12, 25), "10:00", "11:00")),
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBackendUnavailable))
	assert.False(t, errors.Is(err, ErrInternal))
}

func TestExecute_LocalConflictSkipsRemote(t *testing.T) {
	christmas := day(2024, 12, 25)
	repo := &fakeSelectionRepo{selections: []domain.Selection{
		selection(1, []int64{11}, selDate(christmas, "10:00", "11:00")),
	}}
	courseClient := &fakeCourseClient{result: &client.AvailabilityResult{Available: true}}
	uc := NewUseCase(repo, courseClient, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		SessionID: "s1",
		Candidate: *candidate([]int64{11}, selDate(christmas, "10:30", "11:30")),
	})

	require.NoError(t, err)
	assert.True(t, resp.HasConflict)
	require.Len(t, resp.Conflicts, 1)
	assert.Equal(t, SourceLocal, resp.Conflicts[0].Source)
	assert.Equal(t, 0, courseClient.calls, "remote check is skipped on a local conflict")
}
