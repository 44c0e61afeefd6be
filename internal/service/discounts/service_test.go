package discounts

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CBO-CourseService/internal/domain"
	"github.com/m04kA/CBO-CourseService/pkg/types"
)

type fakeClient struct {
	rules map[types.NumericID][]domain.DiscountRule
}

func (f *fakeClient) GetIntervalDiscounts(_ context.Context, intervalID types.NumericID) ([]domain.DiscountRule, error) {
	return f.rules[intervalID], nil
}

func (f *fakeClient) PutIntervalDiscounts(_ context.Context, intervalID types.NumericID, rules []domain.DiscountRule) error {
	if f.rules == nil {
		f.rules = make(map[types.NumericID][]domain.DiscountRule)
	}
	f.rules[intervalID] = rules
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestPut_ValidRulesStored(t *testing.T) {
	client := &fakeClient{}
	svc := NewService(client, nopLogger{})

	rules := []domain.DiscountRule{
		{Days: 4, Type: domain.DiscountPercentage, Value: 20},
		{Days: 2, Type: domain.DiscountPercentage, Value: 10},
		{Days: 6, Type: domain.DiscountFixed, Value: 50},
	}

	require.NoError(t, svc.Put(context.Background(), 7, rules))

	// Get возвращает правила по возрастанию порога
	got, err := svc.Get(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, 2, got[0].Days)
	assert.Equal(t, 4, got[1].Days)
	assert.Equal(t, 6, got[2].Days)
}

func TestPut_EmptyListClearsRules(t *testing.T) {
	client := &fakeClient{rules: map[types.NumericID][]domain.DiscountRule{
		7: {{Days: 2, Type: domain.DiscountPercentage, Value: 10}},
	}}
	svc := NewService(client, nopLogger{})

	require.NoError(t, svc.Put(context.Background(), 7, nil))
	got, err := svc.Get(context.Background(), 7)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestPut_RejectsInvalidRules(t *testing.T) {
	svc := NewService(&fakeClient{}, nopLogger{})
	ctx := context.Background()

	tests := []struct {
		name    string
		rules   []domain.DiscountRule
		wantErr error
	}{
		{
			name:    "zero days threshold",
			rules:   []domain.DiscountRule{{Days: 0, Type: domain.DiscountPercentage, Value: 10}},
			wantErr: ErrInvalidRule,
		},
		{
			name:    "negative value",
			rules:   []domain.DiscountRule{{Days: 2, Type: domain.DiscountFixed, Value: -5}},
			wantErr: ErrInvalidRule,
		},
		{
			name:    "percentage over 100",
			rules:   []domain.DiscountRule{{Days: 2, Type: domain.DiscountPercentage, Value: 120}},
			wantErr: ErrInvalidRule,
		},
		{
			name:    "unknown type",
			rules:   []domain.DiscountRule{{Days: 2, Type: "bonus", Value: 10}},
			wantErr: ErrInvalidRule,
		},
		{
			name: "duplicate threshold",
			rules: []domain.DiscountRule{
				{Days: 2, Type: domain.DiscountPercentage, Value: 10},
				{Days: 2, Type: domain.DiscountFixed, Value: 20},
			},
			wantErr: ErrDuplicateThreshold,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.Put(ctx, 7, tt.rules)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
