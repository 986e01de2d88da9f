// Package chart serves the per-coin price history series shown in the
// detail view. Failures degrade to an empty series: a missing chart is a
// valid, non-fatal state and never surfaces as an error.
package chart

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/DanaramPradeep/crypto-tracker/cache"
	"github.com/DanaramPradeep/crypto-tracker/coingecko"
	"github.com/DanaramPradeep/crypto-tracker/config"
	"github.com/DanaramPradeep/crypto-tracker/metrics"
)

const CHART_CACHE_PREFIX = "chart"

// Service fetches history series on demand with a TTL cache in front
type Service struct {
	cache         *cache.GoCache
	config        *config.Config
	metricsWriter *metrics.MetricsWriter
	apiClient     coingecko.Client
}

// NewService creates a new chart service
func NewService(c *cache.GoCache, cfg *config.Config, apiClient coingecko.Client) *Service {
	return &Service{
		cache:         c,
		config:        cfg,
		metricsWriter: metrics.NewMetricsWriter(metrics.ServiceChart),
		apiClient:     apiClient,
	}
}

// Start implements core.Interface
func (s *Service) Start(ctx context.Context) error {
	if s.cache == nil {
		return fmt.Errorf("cache dependency not provided")
	}
	return nil
}

// Stop implements core.Interface
func (s *Service) Stop() {
	// Nothing to tear down; the cache handles its own cleanup
}

// History returns the price series for one coin over the configured
// lookback window. On any failure it logs and returns an empty series.
func (s *Service) History(ctx context.Context, id string) []coingecko.PricePoint {
	days := s.config.Chart.GetLookbackDays()
	cacheKey := fmt.Sprintf("%s:%s:%d", CHART_CACHE_PREFIX, id, days)

	if data, found := s.cache.Get(cacheKey); found {
		var points []coingecko.PricePoint
		if err := json.Unmarshal(data, &points); err == nil {
			return points
		}
		s.cache.Delete(cacheKey)
	}

	points, err := s.apiClient.FetchMarketChart(ctx, id, days)
	if err != nil {
		log.Printf("Chart: history fetch for %s failed, rendering without chart: %v", id, err)
		return []coingecko.PricePoint{}
	}

	if data, err := json.Marshal(points); err == nil {
		s.cache.Set(cacheKey, data, s.config.Chart.GetCacheTTL())
	}

	return points
}
