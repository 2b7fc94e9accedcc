package durationaccumulator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAverageDuration(t *testing.T) {
	accumulator := NewDurationAccumulator()
	accumulator.UpdateAccumulator(100)
	accumulator.UpdateAccumulator(300)

	average, ok := accumulator.GetAverageDuration()
	require.True(t, ok)
	assert.InDelta(t, 200.0, average, 1e-9)
	assert.InDelta(t, 400.0, accumulator.TotalDuration, 1e-9)
}

func TestGetAverageDuration_Empty(t *testing.T) {
	_, ok := NewDurationAccumulator().GetAverageDuration()
	assert.False(t, ok)
}
