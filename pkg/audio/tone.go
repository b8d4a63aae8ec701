package audio

import (
	"math"
	"time"
)

// ToneSource synthesizes a continuous sine tone. It stands in for a live
// capture device in the demo command and in tests: deterministic output,
// phase-continuous across windows, no external dependencies.
type ToneSource struct {
	frequency  float64
	sampleRate float64
	amplitude  float64
	phase      float64
	realtime   bool
	closed     bool
}

// NewToneSource creates a sine source at the given frequency and sample
// rate. When realtime is set, each ReadWindow sleeps for one window's worth
// of wall-clock time so the capture loop runs at the same cadence a live
// device would impose.
func NewToneSource(frequency float64, sampleRate int, amplitude float64, realtime bool) *ToneSource {
	return &ToneSource{
		frequency:  frequency,
		sampleRate: float64(sampleRate),
		amplitude:  amplitude,
		realtime:   realtime,
	}
}

// ReadWindow fills out with the next len(out) samples of the tone.
func (s *ToneSource) ReadWindow(out []float32) error {
	if s.closed {
		return ErrSourceClosed
	}

	step := 2 * math.Pi * s.frequency / s.sampleRate
	for i := range out {
		out[i] = float32(s.amplitude * math.Sin(s.phase))
		s.phase += step
	}
	// Keep the phase bounded over long runs.
	s.phase = math.Mod(s.phase, 2*math.Pi)

	if s.realtime {
		time.Sleep(time.Duration(float64(len(out)) / s.sampleRate * float64(time.Second)))
	}

	return nil
}

// Close marks the source closed; subsequent reads fail.
func (s *ToneSource) Close() error {
	s.closed = true
	return nil
}
