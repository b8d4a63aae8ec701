package audio

import (
	"encoding/binary"
	"fmt"
	"math"

	pulse "github.com/mesilliac/pulse-simple"
)

// PulseSource captures mono FLOAT32LE audio from a PulseAudio source device
// using the simple blocking API. Device names are the ones reported by
// `pactl list sources short`.
type PulseSource struct {
	stream *pulse.Stream
	buf    []byte
}

// NewPulseSource opens a recording stream on the named device at the given
// sample rate. An empty device name selects the server default.
func NewPulseSource(device string, sampleRate int) (*PulseSource, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("sample rate must be positive, got %d", sampleRate)
	}

	ss := pulse.SampleSpec{
		Format:   pulse.SAMPLE_FLOAT32LE,
		Rate:     uint32(sampleRate),
		Channels: 1,
	}

	stream, err := pulse.NewStream("", "spectle", pulse.STREAM_RECORD, device, "record", &ss, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open pulse source %q: %w", device, err)
	}

	return &PulseSource{stream: stream}, nil
}

// ReadWindow blocks until len(out) samples have been captured.
func (s *PulseSource) ReadWindow(out []float32) error {
	if s.stream == nil {
		return ErrSourceClosed
	}

	need := len(out) * 4
	if cap(s.buf) < need {
		s.buf = make([]byte, need)
	}
	buf := s.buf[:need]

	n, err := s.stream.Read(buf)
	if err != nil {
		return fmt.Errorf("pulse read failed: %w", err)
	}
	if n != need {
		return fmt.Errorf("%w: got %d of %d bytes", ErrShortRead, n, need)
	}

	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(buf[i*4:]))
	}

	return nil
}

// Close releases the pulse stream. Safe to call once on every exit path.
func (s *PulseSource) Close() error {
	if s.stream != nil {
		s.stream.Free()
		s.stream = nil
	}
	return nil
}
