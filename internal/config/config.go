// Package config provides runtime configuration values for the service.
package config

import (
	"os"
	"strconv"
	"time"
)

// Backend selects the document store implementation.
const (
	BackendFile     = "file"
	BackendDynamoDB = "dynamodb"
)

// Config holds configuration knobs for the API server and its collaborators.
type Config struct {
	HTTPAddr        string
	ShutdownTimeout time.Duration

	// Document store
	Backend      string // "file" or "dynamodb"
	DataDir      string // file backend: directory holding <collection>.json
	CatalogTable string // dynamodb backend: table name

	// Optional order-created event queue. Empty disables publishing.
	OrderEventsQueueURL string

	AWSRegion string
	RunLocal  bool
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoienv(key string, def int) int {
	v := getenv(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func durenvs(key string, defSec int) time.Duration {
	sec := atoienv(key, defSec)
	return time.Duration(sec) * time.Second
}

// Load collects configuration from environment with defaults.
func Load() Config {
	return Config{
		HTTPAddr:            getenv("HTTP_ADDR", ":8080"),
		ShutdownTimeout:     durenvs("SHUTDOWN_TIMEOUT", 15),
		Backend:             getenv("DOCSTORE_BACKEND", BackendFile),
		DataDir:             getenv("DATA_DIR", "database"),
		CatalogTable:        getenv("CATALOG_TABLE", ""),
		OrderEventsQueueURL: getenv("ORDER_EVENTS_QUEUE_URL", ""),
		AWSRegion:           getenv("AWS_REGION", "us-east-1"),
		RunLocal:            getenv("RUN_LOCAL", "") == "true",
	}
}
