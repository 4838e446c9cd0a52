package httpapi

import (
	"context"
	"testing"
)

func TestShouldCreateHTTPAPISpan(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{name: "handler span", in: "httpapi.Handler.ListMatches", want: true},
		{name: "middleware span", in: "httpapi.RequestLogging", want: false},
		{name: "recover span", in: "httpapi.recoverPanic", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := shouldCreateHTTPAPISpan(tt.in)
			if got != tt.want {
				t.Fatalf("shouldCreateHTTPAPISpan(%q)=%v want=%v", tt.in, got, tt.want)
			}
		})
	}
}

func TestStartSpan_NoParentIsNoop(t *testing.T) {
	ctx := context.Background()
	got, span := startSpan(ctx, "httpapi.Handler.ListLeagues")
	defer span.End()

	if got != ctx {
		t.Fatalf("expected the context to be returned unchanged")
	}
	if span.SpanContext().IsValid() {
		t.Fatalf("expected a no-op span without a parent")
	}
}
