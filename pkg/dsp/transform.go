package dsp

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/dsp/fourier"
)

// Window function names accepted by NewTransformer.
const (
	WindowNone = "none"
	WindowHann = "hann"
)

// Transformer converts one fixed-length window of real samples into its
// frequency-domain representation. The FFT plan is computed once at
// construction and reused for every call; plan setup is the expensive part
// and must not be repeated per window.
type Transformer struct {
	size   int
	fft    *fourier.FFT
	window []float64 // window function coefficients, nil when disabled
	input  []float64
	coeffs []complex128
}

// NewTransformer creates a transformer for windows of exactly size samples.
// windowFn selects an optional window function applied before the transform
// ("none" or "hann"). The empty string means "none".
func NewTransformer(size int, windowFn string) (*Transformer, error) {
	if size <= 0 || size%2 != 0 {
		return nil, fmt.Errorf("window size must be a positive even number, got %d", size)
	}

	t := &Transformer{
		size:   size,
		fft:    fourier.NewFFT(size),
		input:  make([]float64, size),
		coeffs: make([]complex128, size/2+1),
	}

	switch windowFn {
	case "", WindowNone:
		// No window function: every sample passes through unchanged,
		// matching the raw rectangular-window behavior.
	case WindowHann:
		t.window = make([]float64, size)
		for i := range t.window {
			t.window[i] = 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(size-1)))
		}
	default:
		return nil, fmt.Errorf("unknown window function %q", windowFn)
	}

	return t, nil
}

// Size returns the expected input window length.
func (t *Transformer) Size() int {
	return t.size
}

// Bins returns the number of valid output coefficients (size/2 + 1).
func (t *Transformer) Bins() int {
	return t.size/2 + 1
}

// Transform computes the real-to-complex transform of one sample window.
// The returned slice holds Bins() coefficients, valid up to and including the
// Nyquist index. The slice is an internal buffer overwritten by the next
// call; callers must not retain it.
func (t *Transformer) Transform(samples []float64) ([]complex128, error) {
	if len(samples) != t.size {
		return nil, fmt.Errorf("expected %d samples, got %d", t.size, len(samples))
	}

	if t.window == nil {
		copy(t.input, samples)
	} else {
		for i, s := range samples {
			t.input[i] = s * t.window[i]
		}
	}

	return t.fft.Coefficients(t.coeffs, t.input), nil
}
