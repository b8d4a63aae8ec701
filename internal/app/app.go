// Package app wires configuration, logging, the audio source and the
// renderer into a runnable visualizer.
package app

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/spectle/spectle/configs"
	"github.com/spectle/spectle/internal/visualizer"
	"github.com/spectle/spectle/pkg/audio"
	"github.com/spectle/spectle/pkg/render"
)

// Context holds the CLI arguments and runtime state shared by commands.
type Context struct {
	// CLI arguments
	Device  string
	Verbose bool
	Quiet   bool

	// Runtime context
	Logger *zap.Logger
	Config *configs.Config
}

// App handles the visualizer application lifecycle.
type App struct {
	ctx    *Context
	config *configs.Config
	logger *zap.Logger
}

// NewApp loads and validates configuration, then sets up logging.
func NewApp(ctx *Context) (*App, error) {
	config, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := configs.ValidateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	ctx.Config = config

	logger, err := setupLogging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logging: %w", err)
	}
	ctx.Logger = logger

	logger.Debug("Application initialized",
		zap.String("device", ctx.Device),
		zap.Int("sample_rate", config.Audio.SampleRate),
		zap.Int("window_size", config.Audio.WindowSize),
		zap.Duration("duration", config.Audio.Duration),
		zap.Int("cycles", config.Audio.Cycles()),
	)

	return &App{ctx: ctx, config: config, logger: logger}, nil
}

// Run captures from the configured PulseAudio device and visualizes it.
func (a *App) Run(ctx context.Context) error {
	source, err := audio.NewPulseSource(a.ctx.Device, a.config.Audio.SampleRate)
	if err != nil {
		return fmt.Errorf("failed to open audio source: %w", err)
	}

	return a.runWithSource(ctx, source)
}

// RunDemo visualizes a synthetic tone instead of a live device, paced at the
// cadence a real capture would impose.
func (a *App) RunDemo(ctx context.Context, frequency float64) error {
	source := audio.NewToneSource(frequency, a.config.Audio.SampleRate, 1.0, true)
	return a.runWithSource(ctx, source)
}

// runWithSource builds the pipeline around the given source and runs it.
// The orchestrator owns the source once constructed; on construction failure
// it is closed here so every exit path releases it exactly once.
func (a *App) runWithSource(ctx context.Context, source audio.Source) error {
	renderer, err := render.NewTermRenderer(os.Stdout, a.config.Display.Palette)
	if err != nil {
		source.Close()
		return fmt.Errorf("failed to create renderer: %w", err)
	}

	orchestrator, err := visualizer.NewOrchestrator(a.visualizerConfig(), source, renderer, a.logger)
	if err != nil {
		source.Close()
		return fmt.Errorf("failed to create orchestrator: %w", err)
	}

	summary, err := orchestrator.Run(ctx)
	if summary != nil {
		a.logger.Info("Capture run finished",
			zap.Int("cycles_completed", summary.CyclesCompleted),
			zap.Int("cycles_planned", summary.CyclesPlanned),
			zap.Duration("elapsed", summary.Elapsed),
		)
	}
	if err != nil {
		return fmt.Errorf("capture run failed: %w", err)
	}

	return nil
}

// visualizerConfig flattens the application config into the orchestrator's
// pipeline parameters.
func (a *App) visualizerConfig() visualizer.Config {
	return visualizer.Config{
		SampleRate:     a.config.Audio.SampleRate,
		WindowSize:     a.config.Audio.WindowSize,
		Duration:       a.config.Audio.Duration,
		WindowFunction: a.config.Audio.WindowFunction,
		Columns:        a.config.Display.Columns,
		Rows:           a.config.Display.Rows,
		FreqScale:      a.config.Display.FreqScale,
		Decay:          a.config.Smoothing.Decay,
		LogFloor:       a.config.Smoothing.LogFloor,
		LowThreshold:   a.config.Smoothing.LowThreshold,
		HighThreshold:  a.config.Smoothing.HighThreshold,
	}
}

// setupLogging configures the zap logger. Logs go to stderr so they never
// interleave with the grid frames on stdout.
func setupLogging(ctx *Context) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if ctx.Config != nil {
		if parsed, err := zapcore.ParseLevel(ctx.Config.LogLevel); err == nil {
			level = parsed
		}
	}
	if ctx.Verbose {
		level = zapcore.DebugLevel
	}
	if ctx.Quiet {
		level = zapcore.ErrorLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	return cfg.Build()
}
