package configs

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config represents the application configuration. Every value the signal
// pipeline consumes is runtime configuration with the classic defaults, not
// a compile-time constant.
type Config struct {
	// Application settings
	Verbose  bool   `mapstructure:"verbose" yaml:"verbose"`
	LogLevel string `mapstructure:"log_level" yaml:"log_level"`

	// Audio capture configuration
	Audio AudioConfig `mapstructure:"audio" yaml:"audio"`

	// Display grid configuration
	Display DisplayConfig `mapstructure:"display" yaml:"display"`

	// Smoothing and quantization configuration
	Smoothing SmoothingConfig `mapstructure:"smoothing" yaml:"smoothing"`
}

// AudioConfig contains capture settings.
type AudioConfig struct {
	SampleRate     int           `mapstructure:"sample_rate" yaml:"sample_rate"`
	WindowSize     int           `mapstructure:"window_size" yaml:"window_size"`
	Duration       time.Duration `mapstructure:"duration" yaml:"duration"`
	WindowFunction string        `mapstructure:"window_function" yaml:"window_function"`
}

// DisplayConfig contains grid shape and rendering settings.
type DisplayConfig struct {
	Columns   int     `mapstructure:"columns" yaml:"columns"`
	Rows      int     `mapstructure:"rows" yaml:"rows"`
	Palette   string  `mapstructure:"palette" yaml:"palette"`
	FreqScale float64 `mapstructure:"freq_scale" yaml:"freq_scale"`
}

// SmoothingConfig contains the temporal smoothing and bracket settings.
type SmoothingConfig struct {
	Decay         float64 `mapstructure:"decay" yaml:"decay"`
	LogFloor      float64 `mapstructure:"log_floor" yaml:"log_floor"`
	LowThreshold  float64 `mapstructure:"low_threshold" yaml:"low_threshold"`
	HighThreshold float64 `mapstructure:"high_threshold" yaml:"high_threshold"`
}

// WindowDuration returns the wall-clock time covered by one sample window.
func (c *AudioConfig) WindowDuration() time.Duration {
	if c.SampleRate <= 0 {
		return 0
	}
	return time.Duration(float64(c.WindowSize) / float64(c.SampleRate) * float64(time.Second))
}

// Cycles returns the fixed number of capture iterations for the run:
// total samples over the configured duration divided by the window size.
func (c *AudioConfig) Cycles() int {
	if c.WindowSize <= 0 {
		return 0
	}
	totalSamples := int(c.Duration.Seconds() * float64(c.SampleRate))
	return totalSamples / c.WindowSize
}

// LoadConfig loads configuration from viper.
func LoadConfig() (*Config, error) {
	config := &Config{}

	if err := viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("unable to decode configuration: %w", err)
	}

	return config, nil
}

// ValidateConfig validates the configuration.
func ValidateConfig(config *Config) error {
	if config.Audio.SampleRate <= 0 {
		return fmt.Errorf("audio sample rate must be positive")
	}

	if config.Audio.WindowSize <= 0 || config.Audio.WindowSize%2 != 0 {
		return fmt.Errorf("audio window size must be a positive even number")
	}

	if config.Audio.Duration <= 0 {
		return fmt.Errorf("capture duration must be positive")
	}

	if config.Audio.Duration < config.Audio.WindowDuration() {
		return fmt.Errorf("capture duration is shorter than a single window")
	}

	if config.Display.Columns <= 0 {
		return fmt.Errorf("display columns must be positive")
	}

	if config.Display.Rows <= 0 {
		return fmt.Errorf("display rows must be positive")
	}

	if config.Display.FreqScale <= 0 {
		return fmt.Errorf("frequency scale must be positive")
	}

	if config.Smoothing.Decay <= 0 || config.Smoothing.Decay >= 1 {
		return fmt.Errorf("smoothing decay must be between 0 and 1 exclusive")
	}

	if config.Smoothing.LowThreshold >= config.Smoothing.HighThreshold {
		return fmt.Errorf("low threshold must be below high threshold")
	}

	return nil
}
