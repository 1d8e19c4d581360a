package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestError_IsByKind(t *testing.T) {
	own := Conflict("cannot claim your own item")
	wrapped := fmt.Errorf("submit: %w", own)

	if !errors.Is(wrapped, ErrConflict) {
		t.Fatalf("want kind conflict to match")
	}
	if !errors.Is(wrapped, own) {
		t.Fatalf("want identity match")
	}
	if errors.Is(wrapped, ErrNotFound) {
		t.Fatalf("conflict must not match not_found")
	}
	if errors.Is(wrapped, Conflict("something else")) {
		t.Fatalf("different message must not match")
	}
}

func TestStorage_KeepsCause(t *testing.T) {
	cause := errors.New("deadlock found")
	err := Storage("approving claim", cause)

	if !errors.Is(err, cause) {
		t.Fatalf("cause must be reachable through Unwrap")
	}
	if !errors.Is(err, ErrStorage) {
		t.Fatalf("want storage kind")
	}
	if got, want := err.Error(), "approving claim: deadlock found"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"nil", nil, ""},
		{"plain", errors.New("x"), ""},
		{"validation", Validation("bad"), KindValidation},
		{"wrapped embedding", fmt.Errorf("outer: %w", Embedding("embed", errors.New("x"))), KindEmbedding},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.want {
				t.Fatalf("KindOf = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAsStorage(t *testing.T) {
	if AsStorage("op", nil) != nil {
		t.Fatalf("nil must stay nil")
	}
	own := Conflict("cannot claim your own item")
	if got := AsStorage("submitting claim", own); got != own {
		t.Fatalf("domain error must pass through, got %v", got)
	}
	got := AsStorage("submitting claim", errors.New("lock wait timeout"))
	if !errors.Is(got, ErrStorage) || got.Error() != "submitting claim: lock wait timeout" {
		t.Fatalf("want storage error with cause, got %v", got)
	}
}
