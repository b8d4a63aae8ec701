package dsp

import (
	"fmt"
	"math"
)

// PaletteLevels is the number of discrete display levels a cell can take.
const PaletteLevels = 3

// FrameState holds the per-column smoothed amplitudes that persist across
// capture cycles. It is owned by the capture loop and mutated in place by a
// Smoother once per window.
type FrameState struct {
	amps []float64
}

// NewFrameState creates a frame state with one zero amplitude per column.
func NewFrameState(columns int) *FrameState {
	return &FrameState{amps: make([]float64, columns)}
}

// Columns returns the number of tracked columns.
func (f *FrameState) Columns() int {
	return len(f.amps)
}

// Amplitudes returns a copy of the current per-column amplitudes.
func (f *FrameState) Amplitudes() []float64 {
	out := make([]float64, len(f.amps))
	copy(out, f.amps)
	return out
}

// Smoother blends new per-column magnitudes into a FrameState using a
// one-sided exponential decay: amplitude jumps up instantly on a loud reading
// and falls off gradually when the signal quiets, like VU-meter ballistics.
type Smoother struct {
	decay float64
}

// NewSmoother creates a smoother with the given decay factor, which must lie
// strictly between 0 and 1.
func NewSmoother(decay float64) (*Smoother, error) {
	if decay <= 0 || decay >= 1 {
		return nil, fmt.Errorf("decay must be in (0, 1), got %g", decay)
	}
	return &Smoother{decay: decay}, nil
}

// Update applies state[c] = max(state[c]*decay, magnitudes[c]) per column.
// NaN and infinite magnitudes are treated as zero so that one bad reading
// cannot corrupt the persistent state for the rest of the run.
func (s *Smoother) Update(state *FrameState, magnitudes []float64) error {
	if len(magnitudes) != len(state.amps) {
		return fmt.Errorf("expected %d magnitudes, got %d", len(state.amps), len(magnitudes))
	}

	for c, m := range magnitudes {
		if math.IsNaN(m) || math.IsInf(m, 0) {
			m = 0
		}
		state.amps[c] = math.Max(state.amps[c]*s.decay, m)
	}

	return nil
}

// Brackets maps a continuous amplitude into one of PaletteLevels discrete
// display levels using two ordered thresholds. The mapping is monotonic:
// a higher amplitude never produces a lower level.
type Brackets struct {
	low  float64
	high float64
}

// NewBrackets creates the amplitude brackets. low must be strictly below high.
func NewBrackets(low, high float64) (*Brackets, error) {
	if !(low < high) {
		return nil, fmt.Errorf("thresholds must be ordered, got low=%g high=%g", low, high)
	}
	return &Brackets{low: low, high: high}, nil
}

// Level returns the palette level for one amplitude: 0 below the low
// threshold, 1 below the high threshold, 2 at or above it.
func (b *Brackets) Level(amplitude float64) int {
	switch {
	case amplitude < b.low:
		return 0
	case amplitude < b.high:
		return 1
	default:
		return 2
	}
}

// Levels quantizes the frame state into a rows x columns grid of palette
// levels. Row r sees each amplitude attenuated by (r+1)/rows, so the bottom
// row carries full strength and higher rows fade out earlier.
func (b *Brackets) Levels(state *FrameState, rows int) [][]int {
	grid := make([][]int, rows)
	for r := range grid {
		attenuation := float64(r+1) / float64(rows)
		row := make([]int, len(state.amps))
		for c, amp := range state.amps {
			row[c] = b.Level(amp * attenuation)
		}
		grid[r] = row
	}
	return grid
}
