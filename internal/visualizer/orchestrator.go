// Package visualizer drives the capture pipeline: it pulls sample windows
// from an audio source, runs the spectral transform, samples the mapped
// frequency bins, smooths the per-column amplitudes and hands the quantized
// grid to a renderer, once per window, for a fixed number of cycles.
package visualizer

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/spectle/spectle/pkg/audio"
	"github.com/spectle/spectle/pkg/dsp"
	"github.com/spectle/spectle/pkg/render"
)

// Config carries the pipeline parameters the orchestrator needs.
type Config struct {
	SampleRate     int
	WindowSize     int
	Duration       time.Duration
	WindowFunction string

	Columns   int
	Rows      int
	FreqScale float64

	Decay         float64
	LogFloor      float64
	LowThreshold  float64
	HighThreshold float64
}

// Summary reports how a run went.
type Summary struct {
	CyclesPlanned   int
	CyclesCompleted int
	Elapsed         time.Duration
}

// Orchestrator owns the per-run pipeline state. It takes ownership of the
// source at construction and releases it exactly once when Run drains,
// whether the run completes, fails mid-read or is cancelled.
type Orchestrator struct {
	cfg      Config
	source   audio.Source
	renderer render.Renderer
	logger   *zap.Logger

	transformer *dsp.Transformer
	sampler     *dsp.Sampler
	smoother    *dsp.Smoother
	brackets    *dsp.Brackets
	state       *dsp.FrameState
}

// NewOrchestrator acquires the transform plan and precomputes the bin map.
// Any failure here is fatal: no partial run is attempted and the caller
// still owns the source.
func NewOrchestrator(cfg Config, source audio.Source, renderer render.Renderer, logger *zap.Logger) (*Orchestrator, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	transformer, err := dsp.NewTransformer(cfg.WindowSize, cfg.WindowFunction)
	if err != nil {
		return nil, fmt.Errorf("failed to create spectral transformer: %w", err)
	}

	binMap, err := dsp.NewBinMap(cfg.WindowSize, cfg.Columns, cfg.FreqScale)
	if err != nil {
		return nil, fmt.Errorf("failed to build frequency bin map: %w", err)
	}

	smoother, err := dsp.NewSmoother(cfg.Decay)
	if err != nil {
		return nil, fmt.Errorf("failed to create smoother: %w", err)
	}

	brackets, err := dsp.NewBrackets(cfg.LowThreshold, cfg.HighThreshold)
	if err != nil {
		return nil, fmt.Errorf("failed to create amplitude brackets: %w", err)
	}

	logger.Debug("Pipeline initialized",
		zap.Int("window_size", cfg.WindowSize),
		zap.Int("sample_rate", cfg.SampleRate),
		zap.Ints("bin_map", binMap.Indices()),
		zap.Float64("decay", cfg.Decay),
	)

	return &Orchestrator{
		cfg:         cfg,
		source:      source,
		renderer:    renderer,
		logger:      logger,
		transformer: transformer,
		sampler:     dsp.NewSampler(binMap, cfg.LogFloor),
		smoother:    smoother,
		brackets:    brackets,
		state:       dsp.NewFrameState(cfg.Columns),
	}, nil
}

// Run executes the fixed number of capture cycles. The blocking source read
// paces the loop; there is no timer. A read failure ends the run early and
// is returned after the source has been drained, so every frame rendered
// before the failure stays valid.
func (o *Orchestrator) Run(ctx context.Context) (*Summary, error) {
	start := time.Now()

	cycles := o.cycles()
	summary := &Summary{CyclesPlanned: cycles}

	o.logger.Debug("Starting capture loop",
		zap.Int("cycles", cycles),
		zap.Duration("duration", o.cfg.Duration),
	)

	window := make([]float32, o.cfg.WindowSize)
	samples := make([]float64, o.cfg.WindowSize)
	magnitudes := make([]float64, o.cfg.Columns)

	var runErr error

	for i := 0; i < cycles; i++ {
		if err := ctx.Err(); err != nil {
			runErr = err
			break
		}

		if err := o.source.ReadWindow(window); err != nil {
			o.logger.Error("Audio source read failed, stopping early",
				zap.Int("cycle", i),
				zap.Error(err),
			)
			runErr = fmt.Errorf("read failed on cycle %d: %w", i, err)
			break
		}

		if err := o.step(window, samples, magnitudes); err != nil {
			runErr = fmt.Errorf("pipeline failed on cycle %d: %w", i, err)
			break
		}

		summary.CyclesCompleted++
	}

	if err := o.source.Close(); err != nil {
		o.logger.Error("Failed to close audio source", zap.Error(err))
		if runErr == nil {
			runErr = fmt.Errorf("failed to close audio source: %w", err)
		}
	}

	summary.Elapsed = time.Since(start)

	o.logger.Debug("Capture loop finished",
		zap.Int("cycles_completed", summary.CyclesCompleted),
		zap.Int("cycles_planned", summary.CyclesPlanned),
		zap.Duration("elapsed", summary.Elapsed),
	)

	return summary, runErr
}

// step runs one window through the full pipeline and renders the result.
func (o *Orchestrator) step(window []float32, samples, magnitudes []float64) error {
	for i, s := range window {
		samples[i] = float64(s)
	}

	spectrum, err := o.transformer.Transform(samples)
	if err != nil {
		return err
	}

	if err := o.sampler.Sample(spectrum, magnitudes); err != nil {
		return err
	}

	if err := o.smoother.Update(o.state, magnitudes); err != nil {
		return err
	}

	grid := o.brackets.Levels(o.state, o.cfg.Rows)
	if err := o.renderer.Render(grid); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	return nil
}

// cycles derives the fixed iteration count from the configured capture
// duration and window size.
func (o *Orchestrator) cycles() int {
	totalSamples := int(o.cfg.Duration.Seconds() * float64(o.cfg.SampleRate))
	return totalSamples / o.cfg.WindowSize
}
