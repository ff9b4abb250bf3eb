// Package api provides factory implementations for dependency injection
package api

import (
	"context"
	"time"

	"github.com/airdata/ourairports-api/pkg/ourairports"
)

// DefaultFetcherFactory is the default implementation of FetcherFactory
type DefaultFetcherFactory struct{}

// NewFetcherFactory creates a new fetcher factory
func NewFetcherFactory() FetcherFactory {
	return &DefaultFetcherFactory{}
}

// CreateFetcher returns an HTTP fetcher
func (f *DefaultFetcherFactory) CreateFetcher(timeout time.Duration, userAgent string) ourairports.Fetcher {
	return ourairports.NewHTTPFetcher(timeout, userAgent)
}

// DefaultServerFactory is the default implementation of ServerFactory
type DefaultServerFactory struct{}

// NewServerFactory creates a new server factory
func NewServerFactory() ServerFactory {
	return &DefaultServerFactory{}
}

// CreateServerStarter creates a server starter
func (f *DefaultServerFactory) CreateServerStarter() ServerStarter {
	return &DefaultServerStarter{}
}

// DefaultServerStarter is the default implementation of ServerStarter
type DefaultServerStarter struct{}

// StartServer starts the API server with the given configuration
func (s *DefaultServerStarter) StartServer(ctx context.Context, source SnapshotSource, config ServerConfig, metrics *Metrics) error {
	return StartServer(ctx, source, config, metrics)
}
