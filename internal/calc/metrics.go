package calc

import (
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// Metric instruments — initialized once via InitMetrics().
var (
	attemptsCounter metric.Int64Counter
	evalHistogram   metric.Float64Histogram
	failureCounter  metric.Int64Counter
	resultGauge     metric.Float64Gauge
	sessionsGauge   metric.Int64Gauge
	historyGauge    metric.Int64Gauge
)

// InitMetrics registers custom OTel metric instruments for the calculator
// domain. Call this once at startup (after observability.InitMetrics).
func InitMetrics() error {
	meter := otel.Meter("calc")

	var err error

	attemptsCounter, err = meter.Int64Counter("calc.attempts.total",
		metric.WithDescription("Total number of evaluation attempts, successes and failures alike"),
		metric.WithUnit("{attempt}"),
	)
	if err != nil {
		return fmt.Errorf("creating attempts counter: %w", err)
	}

	evalHistogram, err = meter.Float64Histogram("calc.evaluation.duration",
		metric.WithDescription("Evaluation duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return fmt.Errorf("creating evaluation histogram: %w", err)
	}

	failureCounter, err = meter.Int64Counter("calc.failures.total",
		metric.WithDescription("Total number of domain validation failures"),
		metric.WithUnit("{failure}"),
	)
	if err != nil {
		return fmt.Errorf("creating failure counter: %w", err)
	}

	resultGauge, err = meter.Float64Gauge("calc.last_result",
		metric.WithDescription("Most recent successful result"),
	)
	if err != nil {
		return fmt.Errorf("creating result gauge: %w", err)
	}

	sessionsGauge, err = meter.Int64Gauge("calc.sessions.active",
		metric.WithDescription("Number of live sessions"),
		metric.WithUnit("{session}"),
	)
	if err != nil {
		return fmt.Errorf("creating sessions gauge: %w", err)
	}

	historyGauge, err = meter.Int64Gauge("calc.history.entries",
		metric.WithDescription("Size of the session history after the latest record"),
		metric.WithUnit("{entry}"),
	)
	if err != nil {
		return fmt.Errorf("creating history gauge: %w", err)
	}

	return nil
}
