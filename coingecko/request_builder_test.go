package coingecko

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarketsRequestBuilder_Defaults(t *testing.T) {
	request, err := NewMarketsRequestBuilder("https://api.example.com").
		WithIDs([]string{"bitcoin", "ethereum"}).
		WithPerPage(20).
		Build()
	require.NoError(t, err)

	assert.Equal(t, "GET", request.Method)
	assert.Equal(t, "/api/v3/coins/markets", request.URL.Path)
	assert.Equal(t, "application/json", request.Header.Get("Accept"))

	query := request.URL.Query()
	assert.Equal(t, "usd", query.Get("vs_currency"))
	assert.Equal(t, "market_cap_desc", query.Get("order"))
	assert.Equal(t, "1", query.Get("page"))
	assert.Equal(t, "20", query.Get("per_page"))
	assert.Equal(t, "false", query.Get("sparkline"))
	assert.Equal(t, "24h", query.Get("price_change_percentage"))
	assert.Equal(t, "bitcoin,ethereum", query.Get("ids"))
}

func TestMarketsRequestBuilder_EmptyIDsOmitted(t *testing.T) {
	builder := NewMarketsRequestBuilder("https://api.example.com").WithIDs(nil)

	parsed, err := url.Parse(builder.BuildURL())
	require.NoError(t, err)
	assert.Empty(t, parsed.Query().Get("ids"))
}

func TestMarketChartRequestBuilder(t *testing.T) {
	request, err := NewMarketChartRequestBuilder("https://api.example.com", "bitcoin").
		WithDays(7).
		Build()
	require.NoError(t, err)

	assert.Equal(t, "/api/v3/coins/bitcoin/market_chart", request.URL.Path)

	query := request.URL.Query()
	assert.Equal(t, "usd", query.Get("vs_currency"))
	assert.Equal(t, "7", query.Get("days"))
}

func TestBuildURL_TrimsSlashes(t *testing.T) {
	assert.Equal(t, "https://api.example.com/api/v3/coins/markets",
		buildURL("https://api.example.com/", "/api/v3/coins/markets"))
	assert.Equal(t, "https://api.example.com/api/v3/coins/markets",
		buildURL("https://api.example.com", "api/v3/coins/markets"))
}
