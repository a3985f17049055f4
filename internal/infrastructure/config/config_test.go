package config

import (
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Port != 8080 || cfg.Store != StoreSQLite || cfg.PollMaxAttempts != 15 || cfg.PollInterval != 20*time.Second {
			t.Fatalf("unexpected defaults: %+v", cfg)
		}
		if cfg.PartnerTimeout != 30*time.Second || cfg.DynamoDB.Region != "us-east-1" {
			t.Fatalf("unexpected defaults: %+v", cfg)
		}
	})

	t.Run("partner prefixes", func(t *testing.T) {
		t.Setenv("BANRISUL_BASE_URL", "https://api.banrisul.test")
		t.Setenv("BANRISUL_API_KEY", "k1")
		t.Setenv("DIGITIZATION_STORE", "DynamoDB")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !cfg.Banrisul.Enabled() || cfg.Banrisul.APIKey != "k1" || cfg.C6.Enabled() {
			t.Fatalf("unexpected partners: %+v %+v", cfg.Banrisul, cfg.C6)
		}
		if cfg.Store != StoreDynamoDB {
			t.Fatalf("expected dynamodb store, got %q", cfg.Store)
		}
	})

	t.Run("invalid store", func(t *testing.T) {
		t.Setenv("DIGITIZATION_STORE", "postgres")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("invalid duration", func(t *testing.T) {
		t.Setenv("FORMALIZATION_INTERVAL", "soon")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error")
		}
	})
}
