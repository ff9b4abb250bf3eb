package api

import (
	"time"

	"github.com/airdata/ourairports-api/pkg/catalog"
)

// APIResponse represents a standard API response
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// StatusResponse describes the snapshot being served.
type StatusResponse struct {
	Snapshot string         `json:"snapshot"`
	LoadedAt time.Time      `json:"loaded_at"`
	Counts   map[string]int `json:"counts"`
}

// ServerConfig holds configuration for the API server
type ServerConfig struct {
	Addr            string
	StaticDir       string   // Directory served at / when set
	AllowedOrigins  []string // CORS origins
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

// SnapshotSource provides the snapshot to serve. *catalog.Catalog satisfies it.
type SnapshotSource interface {
	Current() (*catalog.Snapshot, error)
}
