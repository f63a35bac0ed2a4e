package trace

import (
	"context"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// Options configures OTLP export.
type Options struct {
	Endpoint    string
	ServiceName string
	Insecure    bool
}

// Recorder exports one span per browsing session, with a child span for
// every recorded Event. A nil *Recorder is valid and records nothing.
type Recorder struct {
	SessionID string

	tracer   oteltrace.Tracer
	session  oteltrace.Span
	ctx      context.Context
	shutdown func(context.Context) error
}

// NewRecorder creates an OTLP/HTTP recorder. Returns nil when no endpoint is
// configured (disabled).
func NewRecorder(ctx context.Context, opts Options) (*Recorder, error) {
	if opts.Endpoint == "" {
		return nil, nil
	}

	httpOpts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(opts.Endpoint)}
	if opts.Insecure {
		httpOpts = append(httpOpts, otlptracehttp.WithInsecure())
	}
	exporter, err := otlptracehttp.New(ctx, httpOpts...)
	if err != nil {
		return nil, err
	}

	serviceName := opts.ServiceName
	if serviceName == "" {
		serviceName = "folio"
	}
	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)
	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	return newRecorder(ctx, provider, provider.Shutdown), nil
}

func newRecorder(ctx context.Context, tp oteltrace.TracerProvider, shutdown func(context.Context) error) *Recorder {
	r := &Recorder{
		SessionID: uuid.NewString(),
		tracer:    tp.Tracer("folio/ui"),
		shutdown:  shutdown,
	}
	r.ctx, r.session = r.tracer.Start(ctx, "folio.session",
		oteltrace.WithAttributes(attribute.String("folio.session.id", r.SessionID)))
	return r
}

// Record exports ev as a child of the session span.
func (r *Recorder) Record(ev Event) {
	if r == nil {
		return
	}
	_, span := r.tracer.Start(r.ctx, "folio."+string(ev.Type), oteltrace.WithTimestamp(ev.Timestamp))
	attrs := make([]attribute.KeyValue, 0, len(ev.Attributes))
	for k, v := range ev.Attributes {
		attrs = append(attrs, attribute.String(attributeKey(k), v))
	}
	span.SetAttributes(attrs...)
	span.End(oteltrace.WithTimestamp(ev.Timestamp))
}

// attributeKey maps short event keys into the folio.* namespace.
func attributeKey(k string) string {
	switch k {
	case "from":
		return "folio.section.from"
	case "to":
		return "folio.section.to"
	case "label":
		return "folio.media.label"
	case "index":
		return "folio.media.index"
	case "url":
		return "folio.link.url"
	default:
		return "folio." + k
	}
}

// Shutdown ends the session span and flushes the exporter.
func (r *Recorder) Shutdown(ctx context.Context) error {
	if r == nil {
		return nil
	}
	r.session.End()
	if r.shutdown == nil {
		return nil
	}
	return r.shutdown(ctx)
}
