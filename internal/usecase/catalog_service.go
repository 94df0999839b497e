package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/storefront/backend/internal/domain"
	"github.com/storefront/backend/internal/infrastructure/metrics"
)

// CatalogServiceConfig holds configuration for the catalog service
type CatalogServiceConfig struct {
	// FetchTimeout bounds each vendor fetch independently
	FetchTimeout time.Duration
	// CacheTTL enables caching of raw feeds when positive and a cache is set
	CacheTTL time.Duration
}

// CatalogService aggregates both vendor feeds and serves catalog queries
type CatalogService struct {
	client       domain.VendorClient
	cache        domain.CacheRepository
	standardizer *StandardizationService
	logger       *zap.Logger
	metrics      *metrics.Metrics
	fetchTimeout time.Duration
	cacheTTL     time.Duration
}

// NewCatalogService creates a catalog service. cache may be nil.
func NewCatalogService(
	client domain.VendorClient,
	cache domain.CacheRepository,
	standardizer *StandardizationService,
	logger *zap.Logger,
	m *metrics.Metrics,
	config CatalogServiceConfig,
) *CatalogService {
	if logger == nil {
		logger = zap.NewNop()
	}

	fetchTimeout := config.FetchTimeout
	if fetchTimeout <= 0 {
		fetchTimeout = 10 * time.Second
	}

	return &CatalogService{
		client:       client,
		cache:        cache,
		standardizer: standardizer,
		logger:       logger.Named("catalog"),
		metrics:      m,
		fetchTimeout: fetchTimeout,
		cacheTTL:     config.CacheTTL,
	}
}

// ListProducts fetches, standardizes and queries the catalog.
// Flow: fetch both feeds concurrently -> standardize -> filter/sort/paginate
func (s *CatalogService) ListProducts(ctx context.Context, query domain.ProductQuery) (domain.ProductPage, domain.StandardizeReport) {
	raw := s.FetchAll(ctx)
	products, report := s.standardizer.StandardizeMany(raw)
	return QueryProducts(products, query), report
}

// Standardize runs the standardization pipeline over a caller-supplied JSON array
func (s *CatalogService) Standardize(items []any) ([]domain.Product, domain.StandardizeReport) {
	return s.standardizer.StandardizeItems(items)
}

// FetchAll fetches every vendor feed concurrently and merges them in provider
// order. A failing feed is logged and contributes nothing; it never cancels
// the other fetches.
func (s *CatalogService) FetchAll(ctx context.Context) []domain.RawRecord {
	batches := make([][]domain.RawRecord, len(domain.Providers))

	var g errgroup.Group
	for i, provider := range domain.Providers {
		g.Go(func() error {
			records, err := s.fetchProvider(ctx, provider)
			if err != nil {
				s.logger.Error("Vendor feed unavailable, continuing without it",
					zap.String("provider", string(provider)),
					zap.Error(err),
				)
				return nil
			}
			batches[i] = records
			return nil
		})
	}
	_ = g.Wait()

	var merged []domain.RawRecord
	for _, batch := range batches {
		merged = append(merged, batch...)
	}
	return merged
}

func (s *CatalogService) fetchProvider(ctx context.Context, provider domain.Provider) ([]domain.RawRecord, error) {
	cacheKey := feedCacheKey(provider)

	if cached, err := s.getFromCache(ctx, cacheKey); err == nil {
		return cached, nil
	}

	fetchCtx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
	defer cancel()

	start := time.Now()
	records, err := s.client.FetchProducts(fetchCtx, provider)
	s.metrics.ObserveFetch(string(provider), time.Since(start), err)
	if err != nil {
		return nil, err
	}

	tagged := tagProvider(records, provider)

	if err := s.setInCache(ctx, cacheKey, tagged); err != nil {
		s.logger.Warn("Failed to cache vendor feed",
			zap.String("provider", string(provider)),
			zap.Error(err),
		)
	}

	return tagged, nil
}

// tagProvider copies each record and stamps its provenance on it
func tagProvider(records []domain.RawRecord, provider domain.Provider) []domain.RawRecord {
	tagged := make([]domain.RawRecord, 0, len(records))
	for _, record := range records {
		copied := make(domain.RawRecord, len(record)+1)
		for k, v := range record {
			copied[k] = v
		}
		copied["provider"] = string(provider)
		tagged = append(tagged, copied)
	}
	return tagged
}

// feedCacheKey format: "catalog:feed:{provider}"
func feedCacheKey(provider domain.Provider) string {
	return fmt.Sprintf("catalog:feed:%s", provider)
}

func (s *CatalogService) cacheEnabled() bool {
	return s.cache != nil && s.cacheTTL > 0
}

// getFromCache retrieves a raw feed from cache
func (s *CatalogService) getFromCache(ctx context.Context, key string) ([]domain.RawRecord, error) {
	if !s.cacheEnabled() {
		return nil, domain.ErrCacheMiss
	}

	value, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, domain.ErrCacheMiss) {
			s.logger.Warn("Cache read failed", zap.String("key", key), zap.Error(err))
		}
		return nil, domain.ErrCacheMiss
	}

	switch v := value.(type) {
	case []domain.RawRecord:
		return v, nil
	case []interface{}:
		// JSON round-tripped caches hand back generic arrays
		records, _ := RecordsFromJSON(v)
		return records, nil
	default:
		return nil, domain.ErrCacheMiss
	}
}

// setInCache stores a raw feed in cache
func (s *CatalogService) setInCache(ctx context.Context, key string, records []domain.RawRecord) error {
	if !s.cacheEnabled() {
		return nil
	}
	return s.cache.Set(ctx, key, records, s.cacheTTL)
}
