package config

import (
	"context"
	"testing"
)

func testContext(t *testing.T) context.Context {
	t.Helper()
	return context.TODO()
}

func TestWithContext(t *testing.T) {
	ctx := context.TODO()
	cfg := DefaultConfig()
	cfg.Name = "ctx"
	ctx = WithContext(ctx, cfg)
	if got := FromContext(ctx); got.Name != "ctx" {
		t.Errorf("FromContext(ctx).Name => %q, want %q", got.Name, "ctx")
	}
}
