package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"HTTP_ADDR", "SHUTDOWN_TIMEOUT", "DOCSTORE_BACKEND", "DATA_DIR",
		"CATALOG_TABLE", "ORDER_EVENTS_QUEUE_URL", "AWS_REGION", "RUN_LOCAL",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("default addr wrong: %q", cfg.HTTPAddr)
	}
	if cfg.Backend != BackendFile {
		t.Fatalf("default backend wrong: %q", cfg.Backend)
	}
	if cfg.DataDir != "database" {
		t.Fatalf("default data dir wrong: %q", cfg.DataDir)
	}
	if cfg.ShutdownTimeout != 15*time.Second {
		t.Fatalf("default shutdown timeout wrong: %v", cfg.ShutdownTimeout)
	}
	if cfg.AWSRegion != "us-east-1" {
		t.Fatalf("default region wrong: %q", cfg.AWSRegion)
	}
	if cfg.RunLocal {
		t.Fatal("RunLocal should default to false")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("DOCSTORE_BACKEND", BackendDynamoDB)
	t.Setenv("CATALOG_TABLE", "catalog")
	t.Setenv("ORDER_EVENTS_QUEUE_URL", "https://sqs.example/queue")
	t.Setenv("SHUTDOWN_TIMEOUT", "30")
	t.Setenv("AWS_REGION", "eu-west-1")
	t.Setenv("RUN_LOCAL", "true")

	cfg := Load()
	if cfg.HTTPAddr != ":9090" || cfg.Backend != BackendDynamoDB || cfg.CatalogTable != "catalog" {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.OrderEventsQueueURL != "https://sqs.example/queue" {
		t.Fatalf("queue url wrong: %q", cfg.OrderEventsQueueURL)
	}
	if cfg.AWSRegion != "eu-west-1" {
		t.Fatalf("region wrong: %q", cfg.AWSRegion)
	}
	if cfg.ShutdownTimeout != 30*time.Second {
		t.Fatalf("shutdown timeout wrong: %v", cfg.ShutdownTimeout)
	}
	if !cfg.RunLocal {
		t.Fatal("RunLocal should be true")
	}
}

func TestLoad_InvalidNumberFallsBackToDefault(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "soon")
	cfg := Load()
	if cfg.ShutdownTimeout != 15*time.Second {
		t.Fatalf("expected default on parse failure, got %v", cfg.ShutdownTimeout)
	}
}
