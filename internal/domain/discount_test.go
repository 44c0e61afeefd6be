package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBestRuleForDays(t *testing.T) {
	rules := []DiscountRule{
		{Days: 2, Type: DiscountPercentage, Value: 10},
		{Days: 4, Type: DiscountPercentage, Value: 20},
	}

	tests := []struct {
		name          string
		selectedCount int
		wantDays      int
		wantNil       bool
	}{
		{name: "below all thresholds", selectedCount: 1, wantNil: true},
		{name: "exact first threshold", selectedCount: 2, wantDays: 2},
		{name: "between thresholds picks closest below", selectedCount: 3, wantDays: 2},
		{name: "exact second threshold", selectedCount: 4, wantDays: 4},
		{name: "above all thresholds picks highest", selectedCount: 10, wantDays: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BestRuleForDays(rules, tt.selectedCount)
			if tt.wantNil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.wantDays, got.Days)
		})
	}
}

func TestDiscountRule_Apply(t *testing.T) {
	percentage := DiscountRule{Days: 2, Type: DiscountPercentage, Value: 10}
	assert.InDelta(t, 15.0, percentage.Apply(150), 0.0001)

	fixed := DiscountRule{Days: 2, Type: DiscountFixed, Value: 25}
	assert.InDelta(t, 25.0, fixed.Apply(150), 0.0001)
}
