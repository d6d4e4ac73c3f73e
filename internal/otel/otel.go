// Package otel exports generation-run events as OpenTelemetry spans.
package otel

import (
	"context"
	"sync"

	eventbus "github.com/camaragon/gql-codegen-tools/internal/eventbus"
	events "github.com/camaragon/gql-codegen-tools/internal/events"
	runid "github.com/camaragon/gql-codegen-tools/internal/runid"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/semconv/v1.17.0"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc"
)

// Setup configures OpenTelemetry and attaches eventbus subscribers.
// If endpoint is empty, no telemetry is configured.
func Setup(endpoint, service string) (func(context.Context) error, error) {
	if endpoint == "" {
		return func(context.Context) error { return nil }, nil
	}
	exp, err := otlptracegrpc.New(context.Background(),
		otlptracegrpc.WithEndpoint(endpoint),
		otlptracegrpc.WithDialOption(grpc.WithInsecure()))
	if err != nil {
		return nil, err
	}
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(service),
		)),
	)
	otel.SetTracerProvider(tp)

	sub := &subscriber{tracer: otel.Tracer("gqlmock")}
	sub.register()

	return tp.Shutdown, nil
}

type fragmentKey struct {
	rid  int64
	name string
}

type subscriber struct {
	tracer    trace.Tracer
	runSpans  sync.Map // rid -> trace.Span
	fragSpans sync.Map // fragmentKey -> trace.Span
}

func (s *subscriber) register() {
	eventbus.Subscribe(func(ctx context.Context, e events.RunStart) {
		rid, _ := runid.FromContext(ctx)
		_, span := s.tracer.Start(ctx, "gqlmock.run")
		span.SetAttributes(
			attribute.String("gqlmock.schema", e.Schema),
			attribute.Int("gqlmock.documents", e.Documents),
		)
		s.runSpans.Store(rid, span)
	})

	eventbus.Subscribe(func(ctx context.Context, e events.RunFinish) {
		rid, _ := runid.FromContext(ctx)
		v, ok := s.runSpans.LoadAndDelete(rid)
		if !ok {
			return
		}
		span := v.(trace.Span)
		span.SetAttributes(
			attribute.Int("gqlmock.artifacts", e.Artifacts),
			attribute.Int("gqlmock.failed", e.Failed),
		)
		span.End()
	})

	eventbus.Subscribe(func(ctx context.Context, e events.FragmentStart) {
		rid, _ := runid.FromContext(ctx)
		parent := ctx
		if v, ok := s.runSpans.Load(rid); ok {
			parent = trace.ContextWithSpan(ctx, v.(trace.Span))
		}
		_, span := s.tracer.Start(parent, "gqlmock.fragment")
		span.SetAttributes(
			attribute.String("gqlmock.fragment.name", e.Name),
			attribute.String("gqlmock.fragment.path", e.Path),
		)
		s.fragSpans.Store(fragmentKey{rid: rid, name: e.Name}, span)
	})

	eventbus.Subscribe(func(ctx context.Context, e events.FragmentFinish) {
		rid, _ := runid.FromContext(ctx)
		v, ok := s.fragSpans.LoadAndDelete(fragmentKey{rid: rid, name: e.Name})
		if !ok {
			return
		}
		span := v.(trace.Span)
		if e.Err != nil {
			span.RecordError(e.Err)
		}
		span.End()
	})

	eventbus.Subscribe(func(ctx context.Context, e events.RegistryPersisted) {
		rid, _ := runid.FromContext(ctx)
		v, ok := s.runSpans.Load(rid)
		if !ok {
			return
		}
		v.(trace.Span).AddEvent("registry.persisted", trace.WithAttributes(
			attribute.String("gqlmock.registry.path", e.Path),
			attribute.Int("gqlmock.registry.entries", e.Entries),
		))
	})
}
