package configs

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadDefaults(t *testing.T) *Config {
	t.Helper()
	viper.Reset()
	SetDefaults(viper.GetViper())

	config, err := LoadConfig()
	require.NoError(t, err)
	return config
}

func TestLoadConfigDefaults(t *testing.T) {
	config := loadDefaults(t)

	assert.Equal(t, 44100, config.Audio.SampleRate)
	assert.Equal(t, 1024, config.Audio.WindowSize)
	assert.Equal(t, 10*time.Second, config.Audio.Duration)
	assert.Equal(t, "none", config.Audio.WindowFunction)
	assert.Equal(t, 5, config.Display.Columns)
	assert.Equal(t, 6, config.Display.Rows)
	assert.Equal(t, "emoji", config.Display.Palette)
	assert.InDelta(t, 0.5, config.Display.FreqScale, 1e-12)
	assert.InDelta(t, 0.9, config.Smoothing.Decay, 1e-12)
	assert.InDelta(t, 0.5, config.Smoothing.LowThreshold, 1e-12)
	assert.InDelta(t, 1.0, config.Smoothing.HighThreshold, 1e-12)

	assert.NoError(t, ValidateConfig(config))
}

func TestAudioConfigDerivedValues(t *testing.T) {
	config := loadDefaults(t)

	// 10 s of 44.1 kHz audio in 1024-sample windows.
	assert.Equal(t, 430, config.Audio.Cycles())
	assert.InDelta(t, 1024.0/44100.0, config.Audio.WindowDuration().Seconds(), 1e-9)
}

func TestValidateConfigRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero sample rate", func(c *Config) { c.Audio.SampleRate = 0 }},
		{"odd window size", func(c *Config) { c.Audio.WindowSize = 1023 }},
		{"zero duration", func(c *Config) { c.Audio.Duration = 0 }},
		{"duration below one window", func(c *Config) { c.Audio.Duration = time.Millisecond }},
		{"zero columns", func(c *Config) { c.Display.Columns = 0 }},
		{"zero rows", func(c *Config) { c.Display.Rows = 0 }},
		{"zero freq scale", func(c *Config) { c.Display.FreqScale = 0 }},
		{"decay too high", func(c *Config) { c.Smoothing.Decay = 1.0 }},
		{"decay too low", func(c *Config) { c.Smoothing.Decay = 0 }},
		{"unordered thresholds", func(c *Config) { c.Smoothing.LowThreshold = 2.0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := loadDefaults(t)
			tt.mutate(config)
			assert.Error(t, ValidateConfig(config))
		})
	}
}

func TestLoadConfigHonorsOverrides(t *testing.T) {
	viper.Reset()
	viper.Set("audio.window_size", 2048)
	viper.Set("smoothing.decay", 0.8)
	SetDefaults(viper.GetViper())

	config, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 2048, config.Audio.WindowSize)
	assert.InDelta(t, 0.8, config.Smoothing.Decay, 1e-12)
	// Untouched keys keep their defaults.
	assert.Equal(t, 44100, config.Audio.SampleRate)
}
