package coingecko

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"sync/atomic"

	"golang.org/x/time/rate"

	"github.com/DanaramPradeep/crypto-tracker/config"
)

//go:generate mockgen -destination=mocks/client.go . Client

// Client defines the market data operations the dashboard needs
type Client interface {
	// FetchMarkets fetches one snapshot of market data for the given coin ids.
	// Issues exactly one request; ids must be non-empty.
	FetchMarkets(ctx context.Context, ids []string) ([]Coin, error)
	// FetchMarketChart fetches the (timestamp, price) history series for one
	// coin over the given lookback window in days
	FetchMarketChart(ctx context.Context, id string, days int) ([]PricePoint, error)
	// Healthy reports whether at least one fetch has succeeded
	Healthy() bool
}

// StatusHandler receives the outcome of each upstream request
type StatusHandler interface {
	OnRequest(status string)
}

// HTTPClient implements Client against the CoinGecko HTTP API.
//
// The client performs no retries and imposes no timeout beyond the transport
// default: recovery is the refresh controller's job, which retries on its
// next tick with the last good snapshot still on screen.
type HTTPClient struct {
	config          *config.Config
	httpClient      *http.Client
	limiter         *rate.Limiter
	statusHandler   StatusHandler
	successfulFetch atomic.Bool
}

// NewHTTPClient creates a new CoinGecko API client
func NewHTTPClient(cfg *config.Config, statusHandler StatusHandler) *HTTPClient {
	return &HTTPClient{
		config:        cfg,
		httpClient:    &http.Client{},
		limiter:       rate.NewLimiter(rate.Limit(cfg.Tracker.GetRateLimitRPS()), 1),
		statusHandler: statusHandler,
	}
}

func (c *HTTPClient) baseURL() string {
	if c.config.OverrideCoingeckoURL != "" {
		return c.config.OverrideCoingeckoURL
	}
	return COINGECKO_PUBLIC_URL
}

// Healthy reports whether the client has had at least one successful fetch
func (c *HTTPClient) Healthy() bool {
	return c.successfulFetch.Load()
}

// FetchMarkets fetches one page of market data for the given ids
func (c *HTTPClient) FetchMarkets(ctx context.Context, ids []string) ([]Coin, error) {
	request, err := NewMarketsRequestBuilder(c.baseURL()).
		WithIDs(ids).
		WithPerPage(len(ids)).
		WithCurrency(c.config.Tracker.GetCurrency()).
		Build()
	if err != nil {
		return nil, err
	}

	body, err := c.executeRequest(ctx, request)
	if err != nil {
		return nil, err
	}

	var coins []Coin
	if err := json.Unmarshal(body, &coins); err != nil {
		log.Printf("CoinGecko: Error parsing markets response: %v", err)
		return nil, err
	}

	c.successfulFetch.Store(true)
	log.Printf("CoinGecko: Fetched markets snapshot with %d coins", len(coins))

	return coins, nil
}

// FetchMarketChart fetches the price history series for one coin
func (c *HTTPClient) FetchMarketChart(ctx context.Context, id string, days int) ([]PricePoint, error) {
	request, err := NewMarketChartRequestBuilder(c.baseURL(), id).
		WithDays(days).
		WithCurrency(c.config.Tracker.GetCurrency()).
		Build()
	if err != nil {
		return nil, err
	}

	body, err := c.executeRequest(ctx, request)
	if err != nil {
		return nil, err
	}

	var chart marketChartResponse
	if err := json.Unmarshal(body, &chart); err != nil {
		log.Printf("CoinGecko: Error parsing market chart response: %v", err)
		return nil, err
	}

	c.successfulFetch.Store(true)
	log.Printf("CoinGecko: Fetched market chart for %s with %d points", id, len(chart.Prices))

	return chart.toPricePoints(), nil
}

// executeRequest runs one request through the rate limiter and maps failures
// onto the NetworkError/APIError taxonomy
func (c *HTTPClient) executeRequest(ctx context.Context, req *http.Request) ([]byte, error) {
	req = req.WithContext(ctx)

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, &NetworkError{URL: req.URL.Path, Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.recordStatus("error")
		return nil, &NetworkError{URL: req.URL.Path, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		if resp.StatusCode == http.StatusTooManyRequests {
			c.recordStatus("rate_limited")
		} else {
			c.recordStatus("error")
		}
		return nil, &APIError{URL: req.URL.Path, StatusCode: resp.StatusCode, Body: string(body)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.recordStatus("error")
		return nil, &NetworkError{URL: req.URL.Path, Err: err}
	}

	c.recordStatus("success")
	return body, nil
}

func (c *HTTPClient) recordStatus(status string) {
	if c.statusHandler != nil {
		c.statusHandler.OnRequest(status)
	}
}
