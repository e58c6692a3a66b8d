// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package telemetry configures OpenTelemetry tracing for the service.
//
// Tracing is opt-in. When it is disabled, Setup registers nothing and the
// global otel tracer provider stays a no-op, so instrumented code (the HTTP
// tracing middleware) runs unchanged at almost no cost.
package telemetry

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-newsletter/internal/config"
	"github.com/MKhiriev/go-newsletter/internal/logger"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// ShutdownFunc flushes pending spans and releases exporter resources.
type ShutdownFunc func(context.Context) error

func noopShutdown(context.Context) error { return nil }

// Setup initialises OpenTelemetry tracing from cfg.
//
// When cfg.Enabled is false or cfg.OTLPEndpoint is empty, Setup returns a
// no-op shutdown function and no global provider is registered. Otherwise an
// OTLP/HTTP exporter is created, wrapped in a batching tracer provider and
// registered globally together with the W3C trace-context propagator.
//
// The returned shutdown function should be deferred by the caller.
func Setup(ctx context.Context, cfg config.Telemetry, version string, log *logger.Logger) (ShutdownFunc, error) {
	if !cfg.Enabled || cfg.OTLPEndpoint == "" {
		log.Info().Msg("tracing disabled")
		return noopShutdown, nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpointURL(cfg.OTLPEndpoint),
	)
	if err != nil {
		return noopShutdown, fmt.Errorf("error creating OTLP exporter: %w", err)
	}

	attrs := []resource.Option{
		resource.WithAttributes(semconv.ServiceName(cfg.ServiceName)),
	}
	if version != "" {
		attrs = append(attrs, resource.WithAttributes(semconv.ServiceVersion(version)))
	}

	res, err := resource.New(ctx, attrs...)
	if err != nil {
		return noopShutdown, fmt.Errorf("error creating trace resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.AlwaysSample())),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	log.Info().
		Str("endpoint", cfg.OTLPEndpoint).
		Str("service", cfg.ServiceName).
		Msg("tracing enabled")

	return tp.Shutdown, nil
}
