package dsp

import (
	"fmt"
	"math"
)

// defaultLogFloor bounds the squared magnitude away from zero before the
// logarithm. log10 of a silent bin would otherwise be -Inf and poison the
// smoothing state downstream.
const defaultLogFloor = 1e-12

// BinMap is an immutable mapping from display column to an index into the
// valid range of the spectrum. Each column reads the midpoint of its share of
// the lower spectrum, pulled toward the audible range by freqScale.
type BinMap struct {
	windowSize int
	indices    []int
}

// NewBinMap precomputes the column-to-bin mapping for the given window size,
// column count and frequency scaling factor. Every mapped index must fall in
// [0, windowSize/2); configurations that map a column past the Nyquist index
// are rejected.
func NewBinMap(windowSize, columns int, freqScale float64) (*BinMap, error) {
	if windowSize <= 0 || windowSize%2 != 0 {
		return nil, fmt.Errorf("window size must be a positive even number, got %d", windowSize)
	}
	if columns <= 0 {
		return nil, fmt.Errorf("column count must be positive, got %d", columns)
	}
	if freqScale <= 0 {
		return nil, fmt.Errorf("frequency scale must be positive, got %g", freqScale)
	}

	span := (windowSize / 2) / columns
	indices := make([]int, columns)
	for c := range indices {
		idx := int(float64(span) * (float64(c) + 0.5) * freqScale)
		if idx < 0 || idx >= windowSize/2 {
			return nil, fmt.Errorf("column %d maps to bin %d, outside [0, %d)", c, idx, windowSize/2)
		}
		indices[c] = idx
	}

	return &BinMap{windowSize: windowSize, indices: indices}, nil
}

// Columns returns the number of mapped columns.
func (m *BinMap) Columns() int {
	return len(m.indices)
}

// Index returns the spectrum index for the given column.
func (m *BinMap) Index(col int) int {
	return m.indices[col]
}

// Indices returns a copy of the full column-to-bin mapping.
func (m *BinMap) Indices() []int {
	out := make([]int, len(m.indices))
	copy(out, m.indices)
	return out
}

// Sampler extracts one perceptual magnitude per display column from a
// spectrum, using a precomputed bin map.
type Sampler struct {
	bins  *BinMap
	floor float64
}

// NewSampler creates a sampler over the given bin map. floor clamps the
// squared magnitude before the logarithm; values <= 0 select the default.
func NewSampler(bins *BinMap, floor float64) *Sampler {
	if floor <= 0 {
		floor = defaultLogFloor
	}
	return &Sampler{bins: bins, floor: floor}
}

// Sample reads the complex value at each mapped bin and writes
// log10(re^2 + im^2) per column into out, clamped at the configured floor.
// out must have exactly one slot per column.
func (s *Sampler) Sample(spectrum []complex128, out []float64) error {
	if len(out) != s.bins.Columns() {
		return fmt.Errorf("expected %d output slots, got %d", s.bins.Columns(), len(out))
	}

	for c := range out {
		idx := s.bins.Index(c)
		if idx >= len(spectrum) {
			return fmt.Errorf("bin %d outside spectrum of length %d", idx, len(spectrum))
		}
		re := real(spectrum[idx])
		im := imag(spectrum[idx])
		power := re*re + im*im
		if power < s.floor {
			power = s.floor
		}
		out[c] = math.Log10(power)
	}

	return nil
}
