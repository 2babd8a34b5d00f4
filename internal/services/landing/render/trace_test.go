package render

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/flaskhub/landing/internal/services/landing/content"
	"github.com/flaskhub/landing/internal/services/landing/i18n"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"golang.org/x/text/language"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed pipe")
}

func withSpanRecorder(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	previous := otel.GetTracerProvider()
	otel.SetTracerProvider(provider)
	t.Cleanup(func() {
		otel.SetTracerProvider(previous)
		_ = provider.Shutdown(context.Background())
	})
	return recorder
}

func spanAttr(span sdktrace.ReadOnlySpan, key attribute.Key) (attribute.Value, bool) {
	for _, kv := range span.Attributes() {
		if kv.Key == key {
			return kv.Value, true
		}
	}
	return attribute.Value{}, false
}

func TestPageRecordsRenderSpan(t *testing.T) {
	recorder := withSpanRecorder(t)

	copy := i18n.For(language.MustParse("pt-BR"))
	if err := Page(copy, content.Default()).Render(context.Background(), io.Discard); err != nil {
		t.Fatalf("Page() = %v", err)
	}

	spans := recorder.Ended()
	if len(spans) != 1 {
		t.Fatalf("ended spans = %d, want 1", len(spans))
	}
	span := spans[0]
	if span.Name() != "landing.render" {
		t.Fatalf("span name = %q, want %q", span.Name(), "landing.render")
	}
	if v, ok := spanAttr(span, "landing.lang"); !ok || v.AsString() != "pt-BR" {
		t.Fatalf("landing.lang = %v, want pt-BR", v.Emit())
	}
	if v, ok := spanAttr(span, "landing.features"); !ok || v.AsInt64() != 3 {
		t.Fatalf("landing.features = %v, want 3", v.Emit())
	}
	if v, ok := spanAttr(span, "landing.stats"); !ok || v.AsInt64() != 3 {
		t.Fatalf("landing.stats = %v, want 3", v.Emit())
	}
}

func TestPageSpanRecordsWriterError(t *testing.T) {
	recorder := withSpanRecorder(t)

	copy := i18n.For(language.MustParse("en-US"))
	if err := Page(copy, content.Default()).Render(context.Background(), failingWriter{}); err == nil {
		t.Fatalf("Page() error = nil, want writer error")
	}

	spans := recorder.Ended()
	if len(spans) != 1 {
		t.Fatalf("ended spans = %d, want 1", len(spans))
	}
	if got := spans[0].Status().Code; got != codes.Error {
		t.Fatalf("span status = %v, want %v", got, codes.Error)
	}
}
