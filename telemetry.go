package engine

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/watchmen-in/cisadex-engine/search"
)

// searchMetrics holds the OpenTelemetry metric instruments for search
// operations. These are created once during New and reused for every
// search.
type searchMetrics struct {
	// durationHistogram records search duration in milliseconds.
	durationHistogram metric.Float64Histogram

	// resultHistogram records the number of entities each search matched.
	resultHistogram metric.Float64Histogram

	// countCounter increments for each search performed.
	countCounter metric.Int64Counter
}

// initSearchMetrics creates the metric instruments, or returns nil when
// no meter is configured.
func initSearchMetrics(meter metric.Meter) (*searchMetrics, error) {
	if meter == nil {
		return nil, nil
	}

	m := &searchMetrics{}
	var err error

	m.durationHistogram, err = meter.Float64Histogram(
		"engine.search.duration",
		metric.WithDescription("Search duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, fmt.Errorf("create duration histogram: %w", err)
	}

	m.resultHistogram, err = meter.Float64Histogram(
		"engine.search.results",
		metric.WithDescription("Number of entities matched per search"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("create result histogram: %w", err)
	}

	m.countCounter, err = meter.Int64Counter(
		"engine.search.count",
		metric.WithDescription("Number of searches performed"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("create count counter: %w", err)
	}

	return m, nil
}

// recordSearch creates a span and records metrics for one search.
// If telemetry is not configured (nil tracer and metrics), this returns
// silently; observability failures never break the query path.
func (e *Engine) recordSearch(ctx context.Context, result *search.Result, searchErr error) {
	if e.tracer == nil && e.metrics == nil {
		return
	}

	if e.tracer != nil {
		_, span := e.tracer.Start(ctx, "engine.search",
			trace.WithSpanKind(trace.SpanKindInternal))
		defer span.End()

		if searchErr != nil {
			span.RecordError(searchErr)
			span.SetStatus(codes.Error, searchErr.Error())
		} else {
			span.SetAttributes(
				attribute.Int("search.total_count", result.TotalCount),
				attribute.Int("search.cluster_count", len(result.Clusters)),
				attribute.StringSlice("search.applied_filters", result.AppliedFilters),
				attribute.Float64("search.duration_ms", result.SearchTime),
			)
			span.SetStatus(codes.Ok, "")
		}
	}

	if e.metrics != nil && searchErr == nil {
		e.metrics.durationHistogram.Record(ctx, result.SearchTime)
		e.metrics.resultHistogram.Record(ctx, float64(result.TotalCount))
		e.metrics.countCounter.Add(ctx, 1)
	}
}
