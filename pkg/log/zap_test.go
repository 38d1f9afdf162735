package log

import (
	"context"
	"testing"
)

func TestStructured(t *testing.T) {
	tests := []struct {
		name string
		args []any
		want bool
	}{
		{"message only", []any{"hello"}, false},
		{"message with pair", []any{"hello", "k", 1}, true},
		{"odd pair", []any{"hello", "k"}, false},
		{"non string key", []any{"hello", 1, 2}, false},
		{"non string message", []any{42, "k", "v"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, ok := structured(tt.args)
			if ok != tt.want {
				t.Errorf("structured(%v) = %v, want %v", tt.args, ok, tt.want)
			}
		})
	}
}

func TestContextIDs(t *testing.T) {
	ctx := WithClientID(WithRequestID(context.Background(), "req-1"), "client-1")
	if got := RequestID(ctx); got != "req-1" {
		t.Errorf("RequestID = %q", got)
	}
	if got := ClientID(ctx); got != "client-1" {
		t.Errorf("ClientID = %q", got)
	}
	if got := ClientID(context.Background()); got != "" {
		t.Errorf("expected empty client id, got %q", got)
	}

	// Must not panic with ids attached.
	NewNop().Info(ctx, "message", "key", "value")
}
