package valueobject

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecisionFromScore(t *testing.T) {
	tests := []struct {
		name      string
		score     int
		threshold int
		want      Decision
	}{
		{"well below threshold", 10, 70, DecisionAllow},
		{"just below threshold", 69, 70, DecisionAllow},
		{"at threshold", 70, 70, DecisionBlock},
		{"above threshold", 100, 70, DecisionBlock},
		{"zero score", 0, 70, DecisionAllow},
		{"custom threshold", 50, 50, DecisionBlock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.want.Equal(DecisionFromScore(tt.score, tt.threshold)))
		})
	}
}

func TestDecisionFromString(t *testing.T) {
	allow, err := DecisionFromString("ALLOW")
	require.NoError(t, err)
	assert.False(t, allow.IsBlocked())

	block, err := DecisionFromString("BLOCK")
	require.NoError(t, err)
	assert.True(t, block.IsBlocked())

	_, err = DecisionFromString("MAYBE")
	assert.Error(t, err)
}

func TestDecision_IsZero(t *testing.T) {
	assert.True(t, Decision{}.IsZero())
	assert.False(t, DecisionAllow.IsZero())
}
