package ctxutil

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func TestWithRequestID_And_RequestIDFromCtx(t *testing.T) {
	t.Parallel()

	ctx := WithRequestID(context.Background(), "req-42")
	if got := RequestIDFromCtx(ctx); got != "req-42" {
		t.Fatalf("expected req-42, got %q", got)
	}
}

func TestRequestIDFromCtx_EmptyContext(t *testing.T) {
	t.Parallel()

	if got := RequestIDFromCtx(context.Background()); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}

func TestEnsureRequestID_GeneratesUUID(t *testing.T) {
	t.Parallel()

	ctx, id := EnsureRequestID(context.Background())
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("expected a UUID, got %q: %v", id, err)
	}
	if got := RequestIDFromCtx(ctx); got != id {
		t.Fatalf("context carries %q, want %q", got, id)
	}
}

func TestEnsureRequestID_KeepsExisting(t *testing.T) {
	t.Parallel()

	ctx := WithRequestID(context.Background(), "req-1")
	got, id := EnsureRequestID(ctx)
	if id != "req-1" {
		t.Fatalf("expected existing id req-1, got %q", id)
	}
	if got != ctx {
		t.Fatal("expected the same context to be returned")
	}
}

func TestWithWord_And_WordFromCtx(t *testing.T) {
	t.Parallel()

	ctx := WithWord(context.Background(), "σπίτι")
	if got := WordFromCtx(ctx); got != "σπίτι" {
		t.Fatalf("expected σπίτι, got %q", got)
	}
	if got := WordFromCtx(context.Background()); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}
