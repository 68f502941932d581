// Package observability wires tracing, log export and Prometheus metrics for
// metro. Every feature is opt-in: the zero Config runs in noop mode, and all
// helpers stay safe to call whether or not Setup enabled them.
package observability

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploggrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const instrumentationName = "github.com/okdaichi/metro"

// Config selects which signals are exported.
type Config struct {
	// Service is reported as service.name on traces and logs.
	Service string

	// TraceAddr is an OTLP/gRPC collector endpoint (host:port) for spans.
	// Empty disables tracing.
	TraceAddr string

	// LogAddr is an OTLP/gRPC collector endpoint (host:port) for log records.
	// Empty disables log export.
	LogAddr string

	// Metrics enables the Prometheus registry.
	Metrics bool

	// MetricsFile, if set, receives the registry in text exposition format
	// on Flush and Shutdown (node_exporter textfile collector layout).
	MetricsFile string
}

var (
	mu          sync.Mutex
	tracerProv  *sdktrace.TracerProvider
	loggerProv  *sdklog.LoggerProvider
	logHandler  slog.Handler
	metricsOn   bool
	metricsFile string
)

// Setup installs the exporters selected by cfg. Calling Setup again shuts
// down the providers of the previous configuration before replacing it.
func Setup(ctx context.Context, cfg Config) error {
	mu.Lock()
	defer mu.Unlock()

	if err := errors.Join(stopProviders(ctx)...); err != nil {
		return err
	}

	res := resource.NewSchemaless(attribute.String("service.name", cfg.Service))

	if cfg.TraceAddr != "" {
		exp, err := otlptracegrpc.New(ctx,
			otlptracegrpc.WithEndpoint(cfg.TraceAddr),
			otlptracegrpc.WithInsecure(),
		)
		if err != nil {
			return fmt.Errorf("create trace exporter: %w", err)
		}
		tracerProv = sdktrace.NewTracerProvider(
			sdktrace.WithBatcher(exp),
			sdktrace.WithResource(res),
		)
		otel.SetTracerProvider(tracerProv)
	}

	if cfg.LogAddr != "" {
		exp, err := otlploggrpc.New(ctx,
			otlploggrpc.WithEndpoint(cfg.LogAddr),
			otlploggrpc.WithInsecure(),
		)
		if err != nil {
			return fmt.Errorf("create log exporter: %w", err)
		}
		loggerProv = sdklog.NewLoggerProvider(
			sdklog.WithProcessor(sdklog.NewBatchProcessor(exp)),
			sdklog.WithResource(res),
		)
		logHandler = otelslog.NewHandler(instrumentationName, otelslog.WithLoggerProvider(loggerProv))
	}

	metricsOn = cfg.Metrics
	metricsFile = cfg.MetricsFile
	if metricsOn {
		newMetrics()
	} else {
		resetMetrics()
	}

	return nil
}

// Shutdown flushes the metrics file and stops the exporters.
// Errors from every stage are joined.
func Shutdown(ctx context.Context) error {
	var errs []error
	if err := Flush(); err != nil {
		errs = append(errs, err)
	}

	mu.Lock()
	defer mu.Unlock()

	errs = append(errs, stopProviders(ctx)...)

	metricsOn = false
	metricsFile = ""
	resetMetrics()

	return errors.Join(errs...)
}

// stopProviders shuts down and clears the trace and log providers.
// Must be called with mu held.
func stopProviders(ctx context.Context) []error {
	var errs []error
	if tracerProv != nil {
		if err := tracerProv.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("shutdown tracer provider: %w", err))
		}
		tracerProv = nil
		otel.SetTracerProvider(noop.NewTracerProvider())
	}
	if loggerProv != nil {
		if err := loggerProv.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("shutdown logger provider: %w", err))
		}
		loggerProv = nil
	}
	logHandler = nil
	return errs
}

// Enabled reports whether spans are exported.
func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return tracerProv != nil
}

// MetricsEnabled reports whether the Prometheus registry is active.
func MetricsEnabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return metricsOn
}

// LogHandler returns the OTLP log handler, or nil when log export is off.
func LogHandler() slog.Handler {
	mu.Lock()
	defer mu.Unlock()
	return logHandler
}
