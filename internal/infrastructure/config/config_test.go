package config

import (
	"context"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Port == "" {
		t.Fatalf("expected default port")
	}
	if cfg.Mongo.URI == "" || cfg.Mongo.Database == "" {
		t.Fatalf("expected mongo defaults, got %+v", cfg.Mongo)
	}
}

func TestLoad_SecretKeyFromEnv(t *testing.T) {
	t.Setenv("SECRET_KEY", "configured-secret")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.SecretKey != "configured-secret" {
		t.Fatalf("expected env secret, got %q", cfg.SecretKey)
	}
}

func TestLoad_SecretKeyFallbackIsRandom(t *testing.T) {
	t.Setenv("SECRET_KEY", "")

	a, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	b, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if a.SecretKey == "" {
		t.Fatalf("expected generated secret")
	}
	if len(a.SecretKey) != 64 { // 32 bytes hex-encoded
		t.Fatalf("expected 64 hex chars, got %d", len(a.SecretKey))
	}
	if a.SecretKey == b.SecretKey {
		t.Fatalf("two generated secrets are identical")
	}
}
