package run

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// They are no-op unless the embedding program installs an SDK.
var (
	tracer = otel.Tracer("yala.run") //nolint:gochecknoglobals
	meter  = otel.Meter("yala.run")  //nolint:gochecknoglobals
)

var (
	unitDuration metric.Float64Histogram //nolint:gochecknoglobals
	unitTotal    metric.Int64Counter     //nolint:gochecknoglobals
	findingTotal metric.Int64Counter     //nolint:gochecknoglobals

	metricsOnce sync.Once //nolint:gochecknoglobals
	metricsErr  error     //nolint:gochecknoglobals
)

func initMetrics() error {
	metricsOnce.Do(func() {
		var err error
		unitDuration, err = meter.Float64Histogram(
			"yala_linter_duration_seconds",
			metric.WithDescription("Duration of linter executions"),
			metric.WithUnit("s"),
		)
		if err != nil {
			metricsErr = err
			return
		}
		unitTotal, err = meter.Int64Counter(
			"yala_linter_runs_total",
			metric.WithDescription("Total number of linter executions"),
		)
		if err != nil {
			metricsErr = err
			return
		}
		findingTotal, err = meter.Int64Counter(
			"yala_findings_total",
			metric.WithDescription("Total number of findings reported by linters"),
		)
		if err != nil {
			metricsErr = err
		}
	})
	return metricsErr
}

func startUnitSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "linter.run", trace.WithAttributes(
		attribute.String("linter", name),
	))
}

func setUnitSpanError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

func recordUnitMetrics(ctx context.Context, name string, d time.Duration, findings int, err error) {
	if initMetrics() != nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	attrs := metric.WithAttributes(
		attribute.String("linter", name),
		attribute.String("status", status),
	)
	unitDuration.Record(ctx, d.Seconds(), attrs)
	unitTotal.Add(ctx, 1, attrs)
	if findings > 0 {
		findingTotal.Add(ctx, int64(findings), metric.WithAttributes(attribute.String("linter", name)))
	}
}
