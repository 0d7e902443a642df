package services

import (
	goContext "context"
	"os"
	"time"

	"github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// TracingService installs an OTLP trace provider when an endpoint is
// configured; the API client's transport picks it up. Without an endpoint it
// is a no-op.
type TracingService struct {
	context.DefaultService

	provider *trace.TracerProvider
}

const TRACING_SVC = "tracing_svc"

func (svc TracingService) Id() string {
	return TRACING_SVC
}

func (svc *TracingService) Start() error {
	endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if endpoint == "" {
		return nil
	}

	exporter, err := otlptracehttp.New(goContext.Background(),
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return err
	}

	svc.provider = trace.NewTracerProvider(
		trace.WithBatcher(exporter),
		trace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(SERVICE_NAME),
		)),
	)
	otel.SetTracerProvider(svc.provider)

	return nil
}

func (svc *TracingService) Shutdown() {
	if svc.provider == nil {
		return
	}

	ctx, cancel := goContext.WithTimeout(goContext.Background(), 5*time.Second)
	defer cancel()

	if err := svc.provider.Shutdown(ctx); err != nil {
		log.WithError(err).Warn("Failed to shut down tracer provider")
	}
}
