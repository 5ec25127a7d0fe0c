package jwk

import (
	"errors"
	"testing"

	"github.com/radiocarbon-hq/radiocarbon/pkg/config"
)

func TestBadNewPair(t *testing.T) {
	_, err := NewPair(nil)
	if !errors.Is(err, config.ErrNilConfig) {
		t.Errorf("NewPair(nil) => %v, want %v", err, config.ErrNilConfig)
	}
}

func TestGoodNewPair(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.DataPath = t.TempDir()
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	pair, err := NewPair(cfg)
	if err != nil {
		t.Fatalf("NewPair(cfg) => _, %v, want nil error", err)
	}
	if pair.JWK().KeyID == "" {
		t.Error("NewPair(cfg) => empty key id")
	}

	// The pair is stable across invocations.
	again, err := NewPair(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if again.JWK().KeyID != pair.JWK().KeyID {
		t.Errorf("key id changed across invocations: %q != %q", again.JWK().KeyID, pair.JWK().KeyID)
	}
}
