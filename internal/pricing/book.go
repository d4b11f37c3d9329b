// Package pricing answers "what is this commodity selling for today" from a
// mandi price book. Books quote rupees per quintal; suggestions are per kg.
package pricing

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"voice-listing-go/internal/types"
)

var ErrNoPrice = errors.New("pricing: no price for commodity")

const (
	TrendRising  = "rising"
	TrendFalling = "falling"
	TrendStable  = "stable"
)

type Lookup interface {
	GetPriceSuggestion(ctx context.Context, commodity, locationHint string) (types.PriceSuggestion, error)
}

// Quote is one row of a mandi price book, in rupees per quintal.
type Quote struct {
	Commodity string
	Market    string
	State     string
	Min       float64
	Max       float64
	Modal     float64
	Trend     string
}

// Book is an in-memory price book. The first quote for a commodity is its
// default market.
type Book struct {
	quotes map[string][]Quote
}

func NewBook(quotes []Quote) *Book {
	b := &Book{quotes: make(map[string][]Quote)}
	for _, q := range quotes {
		k := commodityKey(q.Commodity)
		if k == "" || q.Modal <= 0 {
			continue
		}
		b.quotes[k] = append(b.quotes[k], q)
	}
	return b
}

func (b *Book) Len() int {
	n := 0
	for _, qs := range b.quotes {
		n += len(qs)
	}
	return n
}

func (b *Book) GetPriceSuggestion(ctx context.Context, commodity, locationHint string) (types.PriceSuggestion, error) {
	if err := ctx.Err(); err != nil {
		return types.PriceSuggestion{}, err
	}
	qs := b.quotes[commodityKey(commodity)]
	if len(qs) == 0 {
		return types.PriceSuggestion{}, fmt.Errorf("%w: %q", ErrNoPrice, commodity)
	}
	return suggestion(pick(qs, locationHint)), nil
}

// pick prefers a quote whose market, then state, appears in the hint.
func pick(qs []Quote, hint string) Quote {
	hint = strings.ToLower(hint)
	if hint != "" {
		for _, q := range qs {
			if m := strings.ToLower(q.Market); m != "" && strings.Contains(hint, m) {
				return q
			}
		}
		for _, q := range qs {
			if s := strings.ToLower(q.State); s != "" && strings.Contains(hint, s) {
				return q
			}
		}
	}
	return qs[0]
}

func suggestion(q Quote) types.PriceSuggestion {
	lo, hi := q.Min, q.Max
	if lo <= 0 {
		lo = q.Modal
	}
	if hi <= 0 {
		hi = q.Modal
	}
	trend := normalizeTrend(q.Trend)
	market := q.Market
	if q.State != "" && !strings.Contains(strings.ToLower(market), strings.ToLower(q.State)) {
		market = market + ", " + q.State
	}
	return types.PriceSuggestion{
		PricePerKg: types.PriceRange{
			Min:     perKg(lo),
			Max:     perKg(hi),
			Average: perKg(q.Modal),
		},
		Market: market,
		Trend:  trend,
		Advice: advice(trend),
	}
}

func perKg(perQuintal float64) float64 {
	return math.Round(perQuintal) / 100
}

func normalizeTrend(t string) string {
	switch strings.ToLower(strings.TrimSpace(t)) {
	case "up", "rising", "increasing", "higher", "↑":
		return TrendRising
	case "down", "falling", "decreasing", "lower", "↓":
		return TrendFalling
	default:
		return TrendStable
	}
}

func advice(trend string) string {
	switch trend {
	case TrendRising:
		return "Prices are going up, so you can ask near the top of the range."
	case TrendFalling:
		return "Prices are coming down, so selling soon near the average is safer."
	default:
		return "Prices are steady, so a price near the average should sell quickly."
	}
}

// commodityKey folds English plurals so "Tomato" finds "Tomatoes".
func commodityKey(c string) string {
	c = strings.ToLower(strings.TrimSpace(c))
	switch {
	case strings.HasSuffix(c, "ies"), strings.HasSuffix(c, "oes"):
		return strings.TrimSuffix(c, "es")
	default:
		return strings.TrimSuffix(c, "s")
	}
}
