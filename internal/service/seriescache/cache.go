package seriescache

import (
	"context"
	"encoding/json"
	"time"

	"SpreadWatch/internal/domain/models"
	drepo "SpreadWatch/internal/domain/repository"
	"SpreadWatch/pkg/cache"
	xlogger "SpreadWatch/pkg/logger"
)

const dateLayout = "2006-01-02"

// CachedSource decorates a SeriesSource with a TTL cache keyed by
// (series, start, end). Series round-trip as JSON strings so every
// cache backend (memory, redis, layered) handles them uniformly.
// Cache failures are soft: a miss or backend error falls through to the
// underlying source.
type CachedSource struct {
	src    drepo.SeriesSource
	cache  cache.Service
	ttl    time.Duration
	logger *xlogger.Logger
}

// Wrap builds the caching decorator.
func Wrap(src drepo.SeriesSource, c cache.Service, ttl time.Duration, l *xlogger.Logger) *CachedSource {
	return &CachedSource{src: src, cache: c, ttl: ttl, logger: l}
}

var _ drepo.SeriesSource = (*CachedSource)(nil)

// Fetch returns the cached series when present, otherwise delegates and
// stores the result.
func (s *CachedSource) Fetch(ctx context.Context, seriesID string, start, end time.Time) (models.Series, error) {
	key := s.key(seriesID, start, end)

	var raw string
	if err := s.cache.Get(ctx, key, &raw); err == nil {
		var cached models.Series
		if err := json.Unmarshal([]byte(raw), &cached); err == nil {
			return cached, nil
		}
		// Corrupt entry; drop it and refetch.
		_ = s.cache.Delete(ctx, key)
	}

	series, err := s.src.Fetch(ctx, seriesID, start, end)
	if err != nil {
		return models.Series{}, err
	}

	if b, err := json.Marshal(series); err == nil {
		if err := s.cache.Set(ctx, key, string(b), s.ttl); err != nil && s.logger != nil {
			s.logger.Warn("series cache write failed", xlogger.String("series", seriesID), xlogger.Error(err))
		}
	}

	return series, nil
}

func (s *CachedSource) key(seriesID string, start, end time.Time) string {
	endPart := "latest"
	if !end.IsZero() {
		endPart = end.Format(dateLayout)
	}
	return cache.GenerateKeyWithParams("series", seriesID, start.Format(dateLayout), endPart)
}
