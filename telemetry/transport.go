package telemetry

import (
	"fmt"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const scopeName = "github.com/bartOssh/airly-go/telemetry"

// Doer abstracts HTTP request execution. It matches the contract expected
// by airly.ClientConfig.HTTPClient, so a Transport can wrap any client that
// satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// TransportConfig holds configuration for an instrumented transport.
type TransportConfig struct {
	// Base executes the requests. Defaults to http.DefaultClient.
	Base Doer

	// TracerProvider supplies the tracer. Defaults to the global provider.
	TracerProvider trace.TracerProvider

	// MeterProvider supplies the meter. Defaults to the global provider.
	MeterProvider metric.MeterProvider
}

// Transport decorates a Doer with a client span and request metrics per
// call, and injects W3C trace context into outgoing request headers.
type Transport struct {
	base            Doer
	tracer          trace.Tracer
	propagator      propagation.TextMapPropagator
	requestDuration metric.Float64Histogram
	requestTotal    metric.Int64Counter
}

// NewTransport creates an instrumented transport with initialized
// instruments.
func NewTransport(cfg TransportConfig) (*Transport, error) {
	base := cfg.Base
	if base == nil {
		base = http.DefaultClient
	}

	tracerProvider := cfg.TracerProvider
	if tracerProvider == nil {
		tracerProvider = otel.GetTracerProvider()
	}

	meterProvider := cfg.MeterProvider
	if meterProvider == nil {
		meterProvider = otel.GetMeterProvider()
	}

	meter := meterProvider.Meter(scopeName)

	requestDuration, err := meter.Float64Histogram(
		"airly.client.request.duration",
		metric.WithDescription("Duration of Airly API requests in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	requestTotal, err := meter.Int64Counter(
		"airly.client.request.total",
		metric.WithDescription("Total number of Airly API requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, err
	}

	return &Transport{
		base:            base,
		tracer:          tracerProvider.Tracer(scopeName),
		propagator:      otel.GetTextMapPropagator(),
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
	}, nil
}

// Do executes the request inside a client span and records duration and
// outcome metrics. The passed request is cloned before headers are touched.
func (t *Transport) Do(req *http.Request) (*http.Response, error) {
	spanName := fmt.Sprintf("%s %s", req.Method, req.URL.Path)

	ctx, span := t.tracer.Start(req.Context(), spanName,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", req.Method),
			attribute.String("url.full", req.URL.String()),
			attribute.String("url.path", req.URL.Path),
			attribute.String("server.address", req.URL.Host),
		),
	)
	defer span.End()

	req = req.Clone(ctx)
	t.propagator.Inject(ctx, propagation.HeaderCarrier(req.Header))

	start := time.Now()
	resp, err := t.base.Do(req)
	elapsed := time.Since(start)

	attrs := []attribute.KeyValue{
		attribute.String("http.request.method", req.Method),
		attribute.String("url.path", req.URL.Path),
	}

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		attrs = append(attrs, attribute.Bool("error", true))
	} else {
		span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
		attrs = append(attrs, attribute.Int("http.response.status_code", resp.StatusCode))

		// A client treats any non-2xx answer as a failed call, unlike a
		// server span where only 5xx counts.
		if resp.StatusCode >= 400 {
			span.SetStatus(codes.Error, http.StatusText(resp.StatusCode))
			attrs = append(attrs, attribute.Bool("error", true))
		}
	}

	t.requestDuration.Record(ctx, elapsed.Seconds(), metric.WithAttributes(attrs...))
	t.requestTotal.Add(ctx, 1, metric.WithAttributes(attrs...))

	if err != nil {
		return nil, err
	}
	return resp, nil
}
