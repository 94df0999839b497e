package feed

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/storefront/backend/internal/domain"
)

// ClientConfig holds the feed endpoints and client behavior
type ClientConfig struct {
	BrazilianURL      string
	EuropeanURL       string
	MaxAttempts       int
	RequestsPerSecond float64
	HTTPTimeout       time.Duration
}

// Client fetches raw product feeds from the vendor endpoints
type Client struct {
	httpClient  *http.Client
	urls        map[domain.Provider]string
	maxAttempts int
	rateLimiter *rate.Limiter
	logger      *zap.Logger
}

// NewClient creates a new vendor feed client
func NewClient(cfg ClientConfig, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}

	attempts := cfg.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 10
	}

	timeout := cfg.HTTPTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		urls: map[domain.Provider]string{
			domain.ProviderBrazilian: cfg.BrazilianURL,
			domain.ProviderEuropean:  cfg.EuropeanURL,
		},
		maxAttempts: attempts,
		rateLimiter: rate.NewLimiter(rate.Limit(rps), 4),
		logger:      logger.Named("vendor"),
	}
}

// exponentialBackoff returns the delay before the next attempt: 500ms, 1s, 2s, ...
func exponentialBackoff(attempt int) time.Duration {
	return time.Duration(500*(1<<(attempt-1))) * time.Millisecond
}

// doRequest executes an HTTP GET request with proper headers and error handling
func (c *Client) doRequest(ctx context.Context, reqURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "Storefront/1.0")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrVendorFetchFailure, err)
	}

	return resp, nil
}

// FetchProducts downloads the feed of one provider and decodes it as a JSON
// array of objects. Non-object entries are discarded.
func (c *Client) FetchProducts(ctx context.Context, provider domain.Provider) ([]domain.RawRecord, error) {
	reqURL, ok := c.urls[provider]
	if !ok || reqURL == "" {
		return nil, fmt.Errorf("%w: no feed configured for %s", domain.ErrVendorFetchFailure, provider)
	}

	log := c.logger.With(zap.String("provider", string(provider)))

	var lastErr error
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return nil, fmt.Errorf("%w: %v", domain.ErrVendorFetchFailure, ctx.Err())
			case <-time.After(exponentialBackoff(attempt - 1)):
			}
		}

		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("%w: rate limiter: %v", domain.ErrVendorFetchFailure, err)
		}

		resp, err := c.doRequest(ctx, reqURL)
		if err != nil {
			log.Warn("Feed request error", zap.Int("attempt", attempt), zap.Error(err))
			lastErr = err
			continue
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = fmt.Errorf("%w: read body: %v", domain.ErrVendorFetchFailure, err)
			continue
		}

		if resp.StatusCode != http.StatusOK {
			log.Warn("Feed returned error status",
				zap.Int("attempt", attempt),
				zap.Int("status", resp.StatusCode),
			)
			lastErr = fmt.Errorf("%w: status %d", domain.ErrVendorFetchFailure, resp.StatusCode)
			// client errors will not fix themselves
			if resp.StatusCode >= 400 && resp.StatusCode < 500 && resp.StatusCode != http.StatusTooManyRequests {
				return nil, lastErr
			}
			continue
		}

		records, err := decodeFeed(body)
		if err != nil {
			return nil, err
		}

		log.Debug("Fetched feed", zap.Int("records", len(records)))
		return records, nil
	}

	return nil, lastErr
}

// decodeFeed decodes a JSON array, keeping numbers as json.Number
func decodeFeed(body []byte) ([]domain.RawRecord, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var items []any
	if err := dec.Decode(&items); err != nil {
		return nil, fmt.Errorf("%w: decode feed: %v", domain.ErrVendorFetchFailure, err)
	}

	records := make([]domain.RawRecord, 0, len(items))
	for _, item := range items {
		if obj, ok := item.(map[string]any); ok {
			records = append(records, domain.RawRecord(obj))
		}
	}
	return records, nil
}
