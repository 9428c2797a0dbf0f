package observability

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/qlimaxx/pizza-ordering-api/internal/core/application/usecases"
	"github.com/qlimaxx/pizza-ordering-api/internal/pkg/errs"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"
)

const tracerName = "github.com/qlimaxx/pizza-ordering-api/internal/pkg/observability"

const (
	outcomeOK       = "ok"
	outcomeRejected = "rejected"
	outcomeFailed   = "failed"
)

type decorator struct {
	name    string
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics handlerMetrics
}

type Option func(*decorator)

func WithLogger(logger *slog.Logger) Option {
	return func(d *decorator) {
		d.logger = logger
	}
}

func WithTracer(tr trace.Tracer) Option {
	return func(d *decorator) {
		d.tracer = tr
	}
}

// WithMeter records a handled counter and a duration histogram per handler.
func WithMeter(m metric.Meter) Option {
	return func(d *decorator) {
		d.metrics = newHandlerMetrics(m)
	}
}

// WithInstruments applies the logger, tracer and meter of i.
func WithInstruments(i *Instruments) Option {
	return func(d *decorator) {
		if i == nil {
			return
		}
		d.logger = i.Logger
		d.tracer = i.Tracer(tracerName)
		d.metrics = newHandlerMetrics(i.Meter(tracerName))
	}
}

func newDecorator(name string, opts []Option) decorator {
	d := decorator{
		name:   name,
		tracer: nooptrace.NewTracerProvider().Tracer(tracerName),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&d)
		}
	}
	if d.tracer == nil {
		d.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	if d.logger == nil {
		d.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	d.logger = d.logger.With("component", "usecase", "handler", name)
	return d
}

type tracedCommand[C any] struct {
	decorator
	inner usecases.CommandHandler[C]
}

// TraceCommand wraps a command handler in a span, a log line and metrics.
func TraceCommand[C any](name string, inner usecases.CommandHandler[C], opts ...Option) usecases.CommandHandler[C] {
	return &tracedCommand[C]{decorator: newDecorator(name, opts), inner: inner}
}

func (t *tracedCommand[C]) Handle(ctx context.Context, cmd C) error {
	ctx, span := t.tracer.Start(ctx, "command."+t.name, trace.WithSpanKind(trace.SpanKindInternal))
	defer span.End()

	start := time.Now()
	err := t.inner.Handle(ctx, cmd)
	t.finish(ctx, span, start, err)
	return err
}

type tracedQuery[Q, R any] struct {
	decorator
	inner usecases.QueryHandler[Q, R]
}

// TraceQuery is TraceCommand for query handlers.
func TraceQuery[Q, R any](name string, inner usecases.QueryHandler[Q, R], opts ...Option) usecases.QueryHandler[Q, R] {
	return &tracedQuery[Q, R]{decorator: newDecorator(name, opts), inner: inner}
}

func (t *tracedQuery[Q, R]) Handle(ctx context.Context, query Q) (R, error) {
	ctx, span := t.tracer.Start(ctx, "query."+t.name, trace.WithSpanKind(trace.SpanKindInternal))
	defer span.End()

	start := time.Now()
	result, err := t.inner.Handle(ctx, query)
	t.finish(ctx, span, start, err)
	return result, err
}

// finish classifies err: caller mistakes are "rejected" and leave the span
// status unset, everything else marks the span as failed.
func (d decorator) finish(ctx context.Context, span trace.Span, start time.Time, err error) {
	elapsed := time.Since(start)
	outcome := classify(err)
	span.SetAttributes(attribute.String("usecase.outcome", outcome))

	switch outcome {
	case outcomeOK:
		d.logger.LogAttrs(ctx, slog.LevelDebug, "handled", slog.Duration("elapsed", elapsed))
	case outcomeRejected:
		span.AddEvent("rejected", trace.WithAttributes(attribute.String("reason", err.Error())))
		d.logger.LogAttrs(ctx, slog.LevelInfo, "rejected",
			slog.Duration("elapsed", elapsed), slog.String("reason", err.Error()))
	default:
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		d.logger.LogAttrs(ctx, slog.LevelError, "failed",
			slog.Duration("elapsed", elapsed), slog.String("error", err.Error()))
	}

	d.metrics.record(ctx, d.name, outcome, elapsed)
}

func classify(err error) string {
	switch {
	case err == nil:
		return outcomeOK
	case errs.IsValidation(err),
		errors.Is(err, errs.ErrObjectNotFound),
		errors.Is(err, errs.ErrObjectAlreadyExists):
		return outcomeRejected
	default:
		return outcomeFailed
	}
}

type handlerMetrics struct {
	handled  metric.Int64Counter
	duration metric.Float64Histogram
}

func newHandlerMetrics(m metric.Meter) handlerMetrics {
	if m == nil {
		return handlerMetrics{}
	}
	handled, _ := m.Int64Counter("pizza.usecase.handled",
		metric.WithDescription("Number of handled commands and queries"))
	duration, _ := m.Float64Histogram("pizza.usecase.duration",
		metric.WithDescription("Handler latency"), metric.WithUnit("ms"))
	return handlerMetrics{handled: handled, duration: duration}
}

func (m handlerMetrics) record(ctx context.Context, name, outcome string, elapsed time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String("handler", name),
		attribute.String("outcome", outcome),
	)
	if m.handled != nil {
		m.handled.Add(ctx, 1, attrs)
	}
	if m.duration != nil {
		m.duration.Record(ctx, float64(elapsed.Microseconds())/1000, attrs)
	}
}
