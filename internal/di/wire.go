//go:build wireinject
// +build wireinject

package di

import (
	"SpreadWatch/pkg/config"
	"SpreadWatch/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		ProvideLogger,
		ProvideMetrics,

		// Series source (FRED client, optional cache decorator)
		ProvideSeriesSource,

		// Spread engine
		ProvideRegistry,
		ProvideMonitor,

		// HTTP edge
		ProvideHandler,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
