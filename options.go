package engine

import (
	"log/slog"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/watchmen-in/cisadex-engine/tuning"
)

// Option configures the Engine.
type Option func(*config)

// config holds configuration for an Engine instance.
type config struct {
	logger     *slog.Logger
	tracer     trace.Tracer
	meter      metric.Meter
	params     *tuning.Params
	tuningPath string
}

func defaultConfig() *config {
	return &config{
		logger: slog.Default(),
	}
}

// WithLogger sets a custom logger for the engine.
// If not provided, slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithTracer sets an OpenTelemetry tracer for the engine's query
// operations. Without it no spans are created.
func WithTracer(tracer trace.Tracer) Option {
	return func(c *config) {
		c.tracer = tracer
	}
}

// WithMeter sets an OpenTelemetry meter. Search duration and result
// metrics are recorded when a meter is configured.
func WithMeter(meter metric.Meter) Option {
	return func(c *config) {
		c.meter = meter
	}
}

// WithTuning sets the tuning parameters directly. Overrides WithTuningFile.
func WithTuning(params *tuning.Params) Option {
	return func(c *config) {
		c.params = params
	}
}

// WithTuningFile loads tuning parameters from a YAML file during New.
// A load failure makes New return a configuration error.
func WithTuningFile(path string) Option {
	return func(c *config) {
		c.tuningPath = path
	}
}
