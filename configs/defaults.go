package configs

import (
	"time"

	"github.com/spf13/viper"
)

// SetDefaults sets default configuration values for all components. The
// defaults reproduce the classic behavior: 1024-sample windows at 44.1 kHz
// for ten seconds, a 5x6 grid, 0.9 decay and brackets at 0.5 and 1.0.
func SetDefaults(v *viper.Viper) {
	// Application defaults
	if !v.IsSet("verbose") {
		v.Set("verbose", false)
	}
	if !v.IsSet("log_level") {
		v.Set("log_level", "info")
	}

	// Audio capture defaults
	if !v.IsSet("audio.sample_rate") {
		v.Set("audio.sample_rate", 44100)
	}
	if !v.IsSet("audio.window_size") {
		v.Set("audio.window_size", 1024)
	}
	if !v.IsSet("audio.duration") {
		v.Set("audio.duration", 10*time.Second)
	}
	if !v.IsSet("audio.window_function") {
		v.Set("audio.window_function", "none")
	}

	// Display defaults
	if !v.IsSet("display.columns") {
		v.Set("display.columns", 5)
	}
	if !v.IsSet("display.rows") {
		v.Set("display.rows", 6)
	}
	if !v.IsSet("display.palette") {
		v.Set("display.palette", "emoji")
	}
	if !v.IsSet("display.freq_scale") {
		v.Set("display.freq_scale", 0.5)
	}

	// Smoothing defaults
	if !v.IsSet("smoothing.decay") {
		v.Set("smoothing.decay", 0.9)
	}
	if !v.IsSet("smoothing.log_floor") {
		v.Set("smoothing.log_floor", 1e-12)
	}
	if !v.IsSet("smoothing.low_threshold") {
		v.Set("smoothing.low_threshold", 0.5)
	}
	if !v.IsSet("smoothing.high_threshold") {
		v.Set("smoothing.high_threshold", 1.0)
	}
}
