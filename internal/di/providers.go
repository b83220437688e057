package di

import (
	"fmt"
	"time"

	drepo "SpreadWatch/internal/domain/repository"
	"SpreadWatch/internal/handler/api"
	"SpreadWatch/internal/service/fred"
	"SpreadWatch/internal/service/seriescache"
	"SpreadWatch/internal/services/spread"
	"SpreadWatch/internal/usecase"
	"SpreadWatch/pkg/cache"
	"SpreadWatch/pkg/config"
	xhttp "SpreadWatch/pkg/http"
	applogger "SpreadWatch/pkg/logger"
	"SpreadWatch/pkg/metrics"
	"SpreadWatch/pkg/server"
)

// ProvideLogger creates the application logger from config.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	lc := &applogger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	}
	if lc.Level == "" {
		lc.Level = "info"
	}
	if lc.Format == "" {
		lc.Format = "console"
	}
	if lc.Output == "" {
		lc.Output = "stdout"
	}
	return applogger.New(lc)
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() drepo.Metrics {
	return metrics.New()
}

// ProvideSeriesSource creates the FRED-backed series source, wrapped in
// the TTL cache decorator when caching is enabled.
func ProvideSeriesSource(cfg *config.Config, l *applogger.Logger) (drepo.SeriesSource, error) {
	client := fred.New(
		cfg.FRED.BaseURL,
		cfg.FRED.APIKey,
		cfg.FRED.Timeout,
		cfg.FRED.RatePerMinute,
		cfg.FRED.Burst,
	)
	if !cfg.Cache.Enabled {
		return client, nil
	}

	backend, err := buildCacheBackend(cfg)
	if err != nil {
		return nil, fmt.Errorf("series cache: %w", err)
	}
	ttl := cfg.Cache.TTL
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return seriescache.Wrap(client, backend, ttl, l), nil
}

func buildCacheBackend(cfg *config.Config) (cache.Service, error) {
	switch cfg.Cache.Backend {
	case "", "memory":
		return cache.NewMemoryCache(), nil
	case "redis":
		return newRedisBackend(cfg)
	case "layered":
		rc, err := newRedisBackend(cfg)
		if err != nil {
			return nil, err
		}
		return cache.NewLayeredCache(rc), nil
	default:
		return nil, fmt.Errorf("unknown backend %q", cfg.Cache.Backend)
	}
}

func newRedisBackend(cfg *config.Config) (*cache.RedisCache, error) {
	return cache.NewRedisCache(
		cache.WithRedisHost(cfg.Cache.Redis.Host),
		cache.WithRedisPort(cfg.Cache.Redis.Port),
		cache.WithRedisPassword(cfg.Cache.Redis.Password),
		cache.WithRedisDB(cfg.Cache.Redis.DB),
		cache.WithRedisPrefix("spreadwatch"),
	)
}

// ProvideRegistry builds the validated spread definition registry.
func ProvideRegistry(l *applogger.Logger) (*spread.Registry, error) {
	return spread.NewRegistry(spread.DefaultDefinitions(), l)
}

// ProvideMonitor creates the spread monitor use case.
func ProvideMonitor(
	source drepo.SeriesSource,
	registry *spread.Registry,
	m drepo.Metrics,
	l *applogger.Logger,
	cfg *config.Config,
) *usecase.SpreadMonitor {
	return usecase.NewSpreadMonitor(source, registry, m, l, cfg.Spreads.FetchTimeout)
}

// ProvideHandler creates the Echo API handler.
func ProvideHandler(l *applogger.Logger, monitor *usecase.SpreadMonitor) xhttp.Handler {
	return api.NewSpreadsEchoHandler(l, monitor)
}

// ProvideApp creates the application server.
func ProvideApp(cfg *config.Config, l *applogger.Logger, h xhttp.Handler) *server.App {
	return server.New(cfg, l, h)
}
