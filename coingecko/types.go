package coingecko

import "time"

// Coin is one row of the CoinGecko /coins/markets response, limited to the
// fields the dashboard renders.
type Coin struct {
	ID                       string  `json:"id"`
	Symbol                   string  `json:"symbol"`
	Name                     string  `json:"name"`
	Image                    string  `json:"image"`
	CurrentPrice             float64 `json:"current_price"`
	MarketCap                float64 `json:"market_cap"`
	TotalVolume              float64 `json:"total_volume"`
	High24h                  float64 `json:"high_24h"`
	Low24h                   float64 `json:"low_24h"`
	PriceChangePercentage24h float64 `json:"price_change_percentage_24h"`
	CirculatingSupply        float64 `json:"circulating_supply"`
	ATH                      float64 `json:"ath"`
}

// PricePoint is a single (timestamp, price) pair of a history series
type PricePoint struct {
	Timestamp time.Time `json:"timestamp"`
	Price     float64   `json:"price"`
}

// marketChartResponse mirrors the /coins/{id}/market_chart payload.
// Each entry is a [unix_ms, value] pair.
type marketChartResponse struct {
	Prices [][2]float64 `json:"prices"`
}

func (r *marketChartResponse) toPricePoints() []PricePoint {
	points := make([]PricePoint, 0, len(r.Prices))
	for _, pair := range r.Prices {
		points = append(points, PricePoint{
			Timestamp: time.UnixMilli(int64(pair[0])).UTC(),
			Price:     pair[1],
		})
	}
	return points
}
