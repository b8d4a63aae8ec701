package audio

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToneSourceFillsWindow(t *testing.T) {
	src := NewToneSource(1000, 8000, 0.5, false)

	out := make([]float32, 16)
	require.NoError(t, src.ReadWindow(out))

	step := 2 * math.Pi * 1000 / 8000
	for i, got := range out {
		want := 0.5 * math.Sin(step*float64(i))
		assert.InDelta(t, want, float64(got), 1e-6, "sample %d", i)
	}
}

func TestToneSourcePhaseIsContinuousAcrossWindows(t *testing.T) {
	src := NewToneSource(440, 44100, 1.0, false)

	first := make([]float32, 32)
	second := make([]float32, 32)
	require.NoError(t, src.ReadWindow(first))
	require.NoError(t, src.ReadWindow(second))

	step := 2 * math.Pi * 440 / 44100
	for i, got := range second {
		want := math.Sin(step * float64(32+i))
		assert.InDelta(t, want, float64(got), 1e-6, "sample %d", i)
	}
}

func TestToneSourceReadAfterCloseFails(t *testing.T) {
	src := NewToneSource(440, 44100, 1.0, false)
	require.NoError(t, src.Close())

	err := src.ReadWindow(make([]float32, 8))
	assert.ErrorIs(t, err, ErrSourceClosed)
}
