package observability_test

import (
	"context"
	"errors"
	"testing"

	"github.com/qlimaxx/pizza-ordering-api/internal/pkg/errs"
	"github.com/qlimaxx/pizza-ordering-api/internal/pkg/observability"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

type commandFunc func(ctx context.Context, cmd string) error

func (f commandFunc) Handle(ctx context.Context, cmd string) error { return f(ctx, cmd) }

type queryFunc func(ctx context.Context, q int) (int, error)

func (f queryFunc) Handle(ctx context.Context, q int) (int, error) { return f(ctx, q) }

func newRecorder() (*tracetest.SpanRecorder, observability.Option) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	return recorder, observability.WithTracer(tp.Tracer("test"))
}

func outcomeOf(t *testing.T, attrs []attribute.KeyValue) string {
	t.Helper()
	for _, a := range attrs {
		if a.Key == "usecase.outcome" {
			return a.Value.AsString()
		}
	}
	t.Fatal("no outcome attribute")
	return ""
}

func TestTraceCommand(t *testing.T) {
	t.Run("should pass through and record a span", func(t *testing.T) {
		recorder, withTracer := newRecorder()
		var got string
		h := observability.TraceCommand[string]("create_order", commandFunc(func(_ context.Context, cmd string) error {
			got = cmd
			return nil
		}), withTracer)

		require.NoError(t, h.Handle(t.Context(), "payload"))

		assert.Equal(t, "payload", got)
		spans := recorder.Ended()
		require.Len(t, spans, 1)
		assert.Equal(t, "command.create_order", spans[0].Name())
		assert.Equal(t, "ok", outcomeOf(t, spans[0].Attributes()))
		assert.Equal(t, codes.Unset, spans[0].Status().Code)
	})

	t.Run("should leave the span unset for validation errors", func(t *testing.T) {
		recorder, withTracer := newRecorder()
		invalid := errs.NewValueIsInvalidError("status")
		h := observability.TraceCommand[string]("change_status", commandFunc(func(context.Context, string) error {
			return invalid
		}), withTracer)

		require.ErrorIs(t, h.Handle(t.Context(), ""), invalid)

		span := recorder.Ended()[0]
		assert.Equal(t, "rejected", outcomeOf(t, span.Attributes()))
		assert.Equal(t, codes.Unset, span.Status().Code)
	})

	t.Run("should mark unexpected errors", func(t *testing.T) {
		recorder, withTracer := newRecorder()
		boom := errors.New("db down")
		h := observability.TraceCommand[string]("delete_order", commandFunc(func(context.Context, string) error {
			return boom
		}), withTracer)

		require.ErrorIs(t, h.Handle(t.Context(), ""), boom)

		span := recorder.Ended()[0]
		assert.Equal(t, "failed", outcomeOf(t, span.Attributes()))
		assert.Equal(t, codes.Error, span.Status().Code)
		assert.NotEmpty(t, span.Events())
	})
}

func TestTraceQuery(t *testing.T) {
	recorder, withTracer := newRecorder()
	reader := sdkmetric.NewManualReader()
	meter := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)).Meter("test")

	h := observability.TraceQuery[int, int]("get_order", queryFunc(func(_ context.Context, q int) (int, error) {
		if q < 0 {
			return 0, errs.NewObjectNotFoundError("order", q)
		}
		return q * 2, nil
	}), withTracer, observability.WithMeter(meter))

	got, err := h.Handle(t.Context(), 21)
	require.NoError(t, err)
	assert.Equal(t, 42, got)

	_, err = h.Handle(t.Context(), -1)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	spans := recorder.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, "query.get_order", spans[0].Name())
	assert.Equal(t, "rejected", outcomeOf(t, spans[1].Attributes()))

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(t.Context(), &rm))
	require.NotEmpty(t, rm.ScopeMetrics)

	var handled int64
	for _, m := range rm.ScopeMetrics[0].Metrics {
		if sum, ok := m.Data.(metricdata.Sum[int64]); ok && m.Name == "pizza.usecase.handled" {
			for _, dp := range sum.DataPoints {
				handled += dp.Value
			}
		}
	}
	assert.Equal(t, int64(2), handled)
}

func TestWithInstruments_NilIsIgnored(t *testing.T) {
	h := observability.TraceCommand[string]("noop", commandFunc(func(context.Context, string) error { return nil }),
		observability.WithInstruments(nil))

	assert.NoError(t, h.Handle(t.Context(), ""))
}
