package dsp

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sineWindow(size, bin int) []float64 {
	samples := make([]float64, size)
	for i := range samples {
		samples[i] = math.Sin(2 * math.Pi * float64(bin) * float64(i) / float64(size))
	}
	return samples
}

func TestNewTransformerRejectsBadSizes(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"zero", 0},
		{"negative", -4},
		{"odd", 1023},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTransformer(tt.size, WindowNone)
			assert.Error(t, err)
		})
	}
}

func TestNewTransformerRejectsUnknownWindowFunction(t *testing.T) {
	_, err := NewTransformer(1024, "blackman")
	assert.Error(t, err)
}

func TestTransformOutputLength(t *testing.T) {
	tr, err := NewTransformer(1024, WindowNone)
	require.NoError(t, err)

	assert.Equal(t, 1024, tr.Size())
	assert.Equal(t, 513, tr.Bins())

	spectrum, err := tr.Transform(sineWindow(1024, 10))
	require.NoError(t, err)
	assert.Len(t, spectrum, 513)
}

func TestTransformRejectsWrongInputLength(t *testing.T) {
	tr, err := NewTransformer(1024, WindowNone)
	require.NoError(t, err)

	_, err = tr.Transform(make([]float64, 512))
	assert.Error(t, err)
}

func TestTransformIsDeterministic(t *testing.T) {
	tr, err := NewTransformer(1024, WindowNone)
	require.NoError(t, err)

	input := sineWindow(1024, 37)

	first, err := tr.Transform(input)
	require.NoError(t, err)
	// The output buffer is reused, so keep a copy before transforming again.
	saved := append([]complex128(nil), first...)

	second, err := tr.Transform(input)
	require.NoError(t, err)

	assert.Equal(t, saved, second)
}

func TestTransformSinePeaksAtItsBin(t *testing.T) {
	const size = 1024
	const bin = 127

	tr, err := NewTransformer(size, WindowNone)
	require.NoError(t, err)

	spectrum, err := tr.Transform(sineWindow(size, bin))
	require.NoError(t, err)

	peak := cmplx.Abs(spectrum[bin])
	assert.InDelta(t, float64(size)/2, peak, 1e-6)

	for i := range spectrum {
		if i == bin {
			continue
		}
		assert.Less(t, cmplx.Abs(spectrum[i]), peak,
			"bin %d should not exceed the sine's bin", i)
	}
}

func TestTransformHannWindowAttenuatesEdges(t *testing.T) {
	tr, err := NewTransformer(1024, WindowHann)
	require.NoError(t, err)

	// A pure DC input under a Hann window concentrates energy at bin 0
	// with roughly half the rectangular-window magnitude.
	input := make([]float64, 1024)
	for i := range input {
		input[i] = 1.0
	}

	spectrum, err := tr.Transform(input)
	require.NoError(t, err)

	assert.InDelta(t, 512.0, cmplx.Abs(spectrum[0]), 1.0)
}
