// Package api provides interfaces for dependency injection
package api

import (
	"context"
	"time"

	"github.com/airdata/ourairports-api/pkg/ourairports"
)

// FetcherFactory creates the client used to download datasets
type FetcherFactory interface {
	// CreateFetcher returns a fetcher bounded by timeout that identifies itself as userAgent
	CreateFetcher(timeout time.Duration, userAgent string) ourairports.Fetcher
}

// ServerStarter defines the interface for starting the API server
type ServerStarter interface {
	// StartServer serves source until ctx is cancelled
	StartServer(ctx context.Context, source SnapshotSource, config ServerConfig, metrics *Metrics) error
}

// ServerFactory creates server instances
type ServerFactory interface {
	// CreateServerStarter creates a server starter
	CreateServerStarter() ServerStarter
}
