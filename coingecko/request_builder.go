package coingecko

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

const (
	// Base URL for the public API
	COINGECKO_PUBLIC_URL = "https://api.coingecko.com"

	MARKETS_API_PATH            = "/api/v3/coins/markets"
	MARKET_CHART_API_PATH_TMPL  = "/api/v3/coins/%s/market_chart"
	PRICE_CHANGE_WINDOW_24H     = "24h"
	MARKETS_ORDER_BY_MARKET_CAP = "market_cap_desc"
)

// buildURL safely combines a base URL with a path
func buildURL(baseURL, path string) string {
	baseURL = strings.TrimRight(baseURL, "/")
	trimmedPath := strings.TrimLeft(path, "/")

	return baseURL + "/" + trimmedPath
}

// RequestBuilder implements the Builder pattern for CoinGecko API requests
type RequestBuilder struct {
	baseURL   string
	apiPath   string
	params    map[string]string
	userAgent string
	headers   map[string]string
}

// NewRequestBuilder creates a new base request builder for CoinGecko endpoints
func NewRequestBuilder(baseURL, apiPath string) *RequestBuilder {
	rb := &RequestBuilder{
		baseURL:   baseURL,
		apiPath:   apiPath,
		params:    make(map[string]string),
		headers:   make(map[string]string),
		userAgent: "Mozilla/5.0 Crypto-Tracker",
	}

	rb.headers["Accept"] = "application/json"

	return rb
}

// With adds a custom parameter to the URL query
func (rb *RequestBuilder) With(key, value string) *RequestBuilder {
	rb.params[key] = value
	return rb
}

// WithCurrency adds vs_currency parameter
func (rb *RequestBuilder) WithCurrency(currency string) *RequestBuilder {
	if currency != "" {
		rb.params["vs_currency"] = currency
	}
	return rb
}

// BuildURL builds the complete URL for the request
func (rb *RequestBuilder) BuildURL() string {
	fullPath := buildURL(rb.baseURL, rb.apiPath)

	query := url.Values{}
	for key, value := range rb.params {
		query.Add(key, value)
	}

	finalURL := fullPath
	if queryString := query.Encode(); queryString != "" {
		finalURL = fmt.Sprintf("%s?%s", finalURL, queryString)
	}

	return finalURL
}

// Build creates an http.Request object
func (rb *RequestBuilder) Build() (*http.Request, error) {
	req, err := http.NewRequest(http.MethodGet, rb.BuildURL(), nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", rb.userAgent)
	for key, value := range rb.headers {
		req.Header.Set(key, value)
	}

	return req, nil
}

// MarketsRequestBuilder builds requests for the markets endpoint
type MarketsRequestBuilder struct {
	*RequestBuilder
}

// NewMarketsRequestBuilder creates a request builder for the markets endpoint
// with the dashboard's fixed defaults: one page, market-cap order, 24h change
// window, no sparkline.
func NewMarketsRequestBuilder(baseURL string) *MarketsRequestBuilder {
	rb := &MarketsRequestBuilder{
		RequestBuilder: NewRequestBuilder(baseURL, MARKETS_API_PATH),
	}

	rb.WithCurrency("usd")
	rb.With("order", MARKETS_ORDER_BY_MARKET_CAP)
	rb.With("page", "1")
	rb.With("sparkline", "false")
	rb.With("price_change_percentage", PRICE_CHANGE_WINDOW_24H)

	return rb
}

// WithIDs adds ids parameter (comma-separated list of coin IDs)
func (rb *MarketsRequestBuilder) WithIDs(ids []string) *MarketsRequestBuilder {
	if len(ids) > 0 {
		rb.With("ids", strings.Join(ids, ","))
	}
	return rb
}

// WithPerPage adds per_page parameter
func (rb *MarketsRequestBuilder) WithPerPage(perPage int) *MarketsRequestBuilder {
	if perPage > 0 {
		rb.With("per_page", strconv.Itoa(perPage))
	}
	return rb
}

// MarketChartRequestBuilder builds requests for the market_chart endpoint
type MarketChartRequestBuilder struct {
	*RequestBuilder
	coinID string
}

// NewMarketChartRequestBuilder creates a request builder for one coin's
// history series
func NewMarketChartRequestBuilder(baseURL, coinID string) *MarketChartRequestBuilder {
	apiPath := fmt.Sprintf(MARKET_CHART_API_PATH_TMPL, coinID)

	rb := &MarketChartRequestBuilder{
		RequestBuilder: NewRequestBuilder(baseURL, apiPath),
		coinID:         coinID,
	}

	rb.WithCurrency("usd")

	return rb
}

// WithDays adds the lookback window in days
func (rb *MarketChartRequestBuilder) WithDays(days int) *MarketChartRequestBuilder {
	if days > 0 {
		rb.With("days", strconv.Itoa(days))
	}
	return rb
}
