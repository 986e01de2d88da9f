// Package view maps the derived projection onto the presentation model the
// rendering collaborator draws. Pure data out, no side effects.
package view

import (
	"github.com/DanaramPradeep/crypto-tracker/coingecko"
	"github.com/DanaramPradeep/crypto-tracker/format"
	"github.com/DanaramPradeep/crypto-tracker/refresh"
	"github.com/DanaramPradeep/crypto-tracker/store"
)

// Card is one asset's summary card
type Card struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Symbol          string `json:"symbol"`
	Image           string `json:"image"`
	Price           string `json:"price"`
	Change          string `json:"change"`
	ChangeDirection string `json:"change_direction"` // "up" or "down"
	PriceChanged    bool   `json:"price_changed"`
	MarketCap       string `json:"market_cap"`
	Volume          string `json:"volume"`
	Favorite        bool   `json:"favorite"`
}

// Header carries the two formatted header figures
type Header struct {
	TotalMarketCap string `json:"total_market_cap"`
	LastUpdated    string `json:"last_updated"`
}

// ChartPoint is one point of the detail chart, timestamp in unix
// milliseconds as the charting collaborator expects
type ChartPoint struct {
	Timestamp int64   `json:"t"`
	Price     float64 `json:"p"`
}

// Detail extends the card with the figures only the detail view shows
type Detail struct {
	Card
	High24h           string       `json:"high_24h"`
	Low24h            string       `json:"low_24h"`
	CirculatingSupply string       `json:"circulating_supply"`
	ATH               string       `json:"ath"`
	Chart             []ChartPoint `json:"chart"`
}

// Cards maps a projection plus the favorites set onto summary cards
func Cards(assets []store.Asset, favorites []string) []Card {
	favSet := make(map[string]struct{}, len(favorites))
	for _, id := range favorites {
		favSet[id] = struct{}{}
	}

	cards := make([]Card, 0, len(assets))
	for _, asset := range assets {
		_, favorite := favSet[asset.ID]
		cards = append(cards, newCard(asset, favorite))
	}
	return cards
}

// BuildHeader formats the header statistics
func BuildHeader(stats refresh.HeaderStats) Header {
	header := Header{
		TotalMarketCap: format.Compact(stats.TotalMarketCap),
	}
	if !stats.LastUpdated.IsZero() {
		header.LastUpdated = format.Clock(stats.LastUpdated)
	}
	return header
}

// BuildDetail maps one asset and its history series onto the detail
// projection. An empty series is a valid no-chart state.
func BuildDetail(asset store.Asset, favorite bool, series []coingecko.PricePoint) Detail {
	points := make([]ChartPoint, 0, len(series))
	for _, point := range series {
		points = append(points, ChartPoint{
			Timestamp: point.Timestamp.UnixMilli(),
			Price:     point.Price,
		})
	}

	return Detail{
		Card:              newCard(asset, favorite),
		High24h:           format.USD(asset.High24h),
		Low24h:            format.USD(asset.Low24h),
		CirculatingSupply: format.Amount(asset.CirculatingSupply),
		ATH:               format.USD(asset.ATH),
		Chart:             points,
	}
}

func newCard(asset store.Asset, favorite bool) Card {
	direction := "up"
	if asset.PriceChangePercentage24h < 0 {
		direction = "down"
	}

	return Card{
		ID:              asset.ID,
		Name:            asset.Name,
		Symbol:          asset.Symbol,
		Image:           asset.Image,
		Price:           format.USD(asset.CurrentPrice),
		Change:          format.Percent(asset.PriceChangePercentage24h),
		ChangeDirection: direction,
		PriceChanged:    asset.PriceChanged,
		MarketCap:       format.Compact(asset.MarketCap),
		Volume:          format.Compact(asset.TotalVolume),
		Favorite:        favorite,
	}
}
