package observability

import (
	"context"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Logger is the process-wide structured logger. InitLogger must run before
// anything logs through it.
var Logger *zap.Logger

func InitLogger() error {
	var err error

	Logger, err = zap.NewProduction()
	if err != nil {
		return err
	}

	return nil
}

func SyncLogger() {
	_ = Logger.Sync()
}

// LoggerWithTrace returns a child logger enriched with trace_id and span_id
// fields from the active span in ctx.
//
// The ctx itself is embedded as a zap.Any field so the otelzap bridge can
// pass it to Emit, which stamps the native TraceID/SpanID on the exported
// OTLP log record; without it every exported record carries an all-zero
// trace ID and log/trace correlation breaks in the backend. The plain
// trace_id and span_id string fields are kept alongside so stdout JSON
// stays greppable without OTel tooling.
func LoggerWithTrace(ctx context.Context) *zap.Logger {
	span := trace.SpanContextFromContext(ctx)

	if !span.IsValid() {
		return Logger
	}

	return Logger.With(
		zap.Any("context", ctx),
		zap.String("trace_id", span.TraceID().String()),
		zap.String("span_id", span.SpanID().String()),
	)
}
