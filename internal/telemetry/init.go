package telemetry

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/hashicorp/go-retryablehttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.30.0"
)

const serviceName = "fareassist"

// InitOpenTelemetry installs the global propagator and, for each configured
// endpoint, the OTLP trace or metric pipeline.
type InitOpenTelemetry struct {
	Logger          *log.Logger `resolve:""`
	TracesEndpoint  string      `config:"OTEL_EXPORTER_OTLP_TRACES_ENDPOINT" default:"-"`
	MetricsEndpoint string      `config:"OTEL_EXPORTER_OTLP_METRICS_ENDPOINT" default:"-"`
	ServiceVersion  string      `config:"APP_VERSION" default:"dev"`
	Environment     string      `config:"DEPLOY_ENV" default:"local"`
	shutdowns       []func(context.Context) error
}

// Initialize sets up the providers. The OTLP exporters read their endpoints from
// the standard OTEL_* environment variables.
func (o *InitOpenTelemetry) Initialize(ctx context.Context) (context.Context, error) {
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(o.ServiceVersion),
			semconv.DeploymentEnvironmentName(o.Environment),
		),
	)
	if err != nil {
		return ctx, fmt.Errorf("failed to create resource: %w", err)
	}

	if o.TracesEndpoint != "-" {
		tp, exporter, err := newTracerProvider(ctx, res)
		if err != nil {
			return ctx, err
		}
		otel.SetTracerProvider(tp)
		o.shutdowns = append(o.shutdowns, tp.Shutdown, exporter.Shutdown)
		o.Logger.Printf("InitOpenTelemetry: exporting traces to %s", o.TracesEndpoint)
	}

	if o.MetricsEndpoint != "-" {
		mp, exporter, err := newMeterProvider(ctx, res)
		if err != nil {
			return ctx, err
		}
		otel.SetMeterProvider(mp)
		o.shutdowns = append(o.shutdowns, mp.Shutdown, exporter.Shutdown)
		o.Logger.Printf("InitOpenTelemetry: exporting metrics to %s", o.MetricsEndpoint)
	}

	return ctx, nil
}

// Close flushes and shuts down whichever pipelines were started.
func (o *InitOpenTelemetry) Close() {
	if len(o.shutdowns) == 0 {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var errs []error
	for _, shutdown := range o.shutdowns {
		errs = append(errs, shutdown(ctx))
	}
	if err := errors.Join(errs...); err != nil {
		o.Logger.Printf("InitOpenTelemetry: shutdown: %v", err)
	}
	o.shutdowns = nil
}

// InitHttpClient registers the *http.Client used to reach the model backend.
// Only connection-level failures are retried here; every response, whatever its
// status, goes back to the caller, which owns the transient/permanent decision.
type InitHttpClient struct {
	Logger       *log.Logger   `resolve:""`
	RetryMax     int           `config:"LLM_HTTP_RETRY_MAX" default:"3"`
	RetryWaitMax time.Duration `config:"LLM_HTTP_RETRY_WAIT_MAX" default:"5s"`
}

// Initialize builds the retrying, instrumented client and registers it.
func (i InitHttpClient) Initialize(ctx context.Context) (context.Context, error) {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = i.RetryMax
	if i.RetryWaitMax > 0 {
		retryClient.RetryWaitMax = i.RetryWaitMax
	}
	retryClient.CheckRetry = retryConnectionErrorsOnly(retryablehttp.DefaultRetryPolicy)
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler
	retryClient.Logger = i.Logger

	client := retryClient.StandardClient()
	client.Transport = otelhttp.NewTransport(
		client.Transport,
		otelhttp.WithSpanNameFormatter(SpanNameFormatter),
	)

	depend.Register(client)
	return ctx, nil
}

func retryConnectionErrorsOnly(policy retryablehttp.CheckRetry) retryablehttp.CheckRetry {
	return func(ctx context.Context, resp *http.Response, err error) (bool, error) {
		if ctx.Err() != nil {
			return false, ctx.Err()
		}
		if err == nil {
			return false, nil
		}
		return policy(ctx, resp, err)
	}
}
