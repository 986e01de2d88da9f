package chart

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/DanaramPradeep/crypto-tracker/cache"
	"github.com/DanaramPradeep/crypto-tracker/coingecko"
	mock_coingecko "github.com/DanaramPradeep/crypto-tracker/coingecko/mocks"
	"github.com/DanaramPradeep/crypto-tracker/config"
)

func testConfig() *config.Config {
	return &config.Config{
		Chart: config.ChartConfig{
			LookbackDays: 7,
			CacheTTL:     time.Minute,
		},
	}
}

func newTestService(client coingecko.Client) *Service {
	return NewService(cache.NewGoCache(time.Minute, time.Minute), testConfig(), client)
}

func samplePoints() []coingecko.PricePoint {
	return []coingecko.PricePoint{
		{Timestamp: time.UnixMilli(1700000000000).UTC(), Price: 50000},
		{Timestamp: time.UnixMilli(1700003600000).UTC(), Price: 50100},
	}
}

func TestHistory_FetchesAndCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mock_coingecko.NewMockClient(ctrl)
	client.EXPECT().
		FetchMarketChart(gomock.Any(), "bitcoin", 7).
		Return(samplePoints(), nil).
		Times(1)

	service := newTestService(client)

	points := service.History(context.Background(), "bitcoin")
	assert.Equal(t, samplePoints(), points)

	// Second call within TTL is served from cache; the mock allows one call
	points = service.History(context.Background(), "bitcoin")
	assert.Equal(t, samplePoints(), points)
}

func TestHistory_FailureDegradesToEmptySeries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mock_coingecko.NewMockClient(ctrl)
	client.EXPECT().
		FetchMarketChart(gomock.Any(), "bitcoin", 7).
		Return(nil, &coingecko.APIError{StatusCode: 429, Body: "rate limited"})

	service := newTestService(client)

	points := service.History(context.Background(), "bitcoin")
	assert.NotNil(t, points)
	assert.Empty(t, points, "no chart data is a valid, non-fatal state")
}

func TestHistory_FailedFetchIsNotCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mock_coingecko.NewMockClient(ctrl)
	failed := client.EXPECT().
		FetchMarketChart(gomock.Any(), "bitcoin", 7).
		Return(nil, &coingecko.NetworkError{Err: context.DeadlineExceeded})
	client.EXPECT().
		FetchMarketChart(gomock.Any(), "bitcoin", 7).
		Return(samplePoints(), nil).
		After(failed)

	service := newTestService(client)

	assert.Empty(t, service.History(context.Background(), "bitcoin"))
	assert.Equal(t, samplePoints(), service.History(context.Background(), "bitcoin"))
}

func TestService_StartRequiresCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewService(nil, testConfig(), mock_coingecko.NewMockClient(ctrl))
	require.Error(t, service.Start(context.Background()))

	service = newTestService(mock_coingecko.NewMockClient(ctrl))
	require.NoError(t, service.Start(context.Background()))
	service.Stop()
}
