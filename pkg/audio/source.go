// Package audio provides the capture sources that feed the visualizer with
// fixed-size windows of mono float32 samples.
package audio

import "errors"

// Common capture errors.
var (
	// ErrShortRead indicates the source delivered fewer samples than one
	// full window. Partial windows are never passed downstream.
	ErrShortRead = errors.New("audio: short read from capture source")

	// ErrSourceClosed indicates a read was attempted after Close.
	ErrSourceClosed = errors.New("audio: source is closed")
)

// Source supplies mono float32 samples at a fixed sample rate. ReadWindow
// blocks until it can fill out completely or the source fails; it never
// returns a partially filled window without an error.
type Source interface {
	ReadWindow(out []float32) error
	Close() error
}
