// Package di provides dependency injection container
package di

import (
	"github.com/airdata/ourairports-api/pkg/api" //nolint:depguard
)

// Container holds all the dependencies for the application
type Container struct {
	fetcherFactory api.FetcherFactory
	serverFactory  api.ServerFactory
}

// NewContainer creates a new dependency injection container
func NewContainer() *Container {
	return &Container{
		fetcherFactory: api.NewFetcherFactory(),
		serverFactory:  api.NewServerFactory(),
	}
}

// GetFetcherFactory returns the dataset fetcher factory
func (c *Container) GetFetcherFactory() api.FetcherFactory {
	return c.fetcherFactory
}

// GetServerFactory returns the server factory
func (c *Container) GetServerFactory() api.ServerFactory {
	return c.serverFactory
}

// SetFetcherFactory allows overriding the fetcher factory (for testing)
func (c *Container) SetFetcherFactory(factory api.FetcherFactory) {
	c.fetcherFactory = factory
}

// SetServerFactory allows overriding the server factory (for testing)
func (c *Container) SetServerFactory(factory api.ServerFactory) {
	c.serverFactory = factory
}
