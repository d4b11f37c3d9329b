// Package catalog assembles the marketplace listing from a confirmed conversation.
package catalog

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"voice-listing-go/internal/normalize"
	"voice-listing-go/internal/types"
)

const (
	DefaultLogisticsProvider = "default-logistics"
	Currency                 = "INR"
)

var ErrIncomplete = errors.New("catalog: listing is incomplete")

type Builder struct {
	logistics string
	now       func() time.Time
	newID     func() string
}

type Option func(*Builder)

func WithLogisticsProvider(name string) Option {
	return func(b *Builder) {
		if name = strings.TrimSpace(name); name != "" {
			b.logistics = name
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(b *Builder) { b.now = now }
}

func WithIDs(newID func() string) Option {
	return func(b *Builder) { b.newID = newID }
}

func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		logistics: DefaultLogisticsProvider,
		now:       time.Now,
		newID:     func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build turns collected data and the confirmed per-kg price into a listing.
// Quantities are already in kg, so the listing unit is always kg.
func (b *Builder) Build(d types.CollectedData, pricePerKg float64) (types.CatalogItem, error) {
	var missing []string
	if strings.TrimSpace(d.Commodity) == "" {
		missing = append(missing, "commodity")
	}
	if d.QuantityKg <= 0 {
		missing = append(missing, "quantity")
	}
	if pricePerKg <= 0 {
		missing = append(missing, "price")
	}
	if len(missing) > 0 {
		return types.CatalogItem{}, fmt.Errorf("%w: missing %s", ErrIncomplete, strings.Join(missing, ", "))
	}
	grade := d.Quality
	if !grade.Valid() {
		grade = types.GradeStandard
	}
	return types.CatalogItem{
		ID:                b.newID(),
		Name:              DisplayName(d),
		Commodity:         d.Commodity,
		Grade:             grade,
		Location:          d.Location,
		Price:             types.Amount{Value: round2(pricePerKg), Currency: Currency, Unit: normalize.UnitKg},
		Quantity:          types.Quantity{Value: d.QuantityKg, Unit: normalize.UnitKg},
		LogisticsProvider: b.logistics,
		CreatedAt:         b.now().UTC(),
	}, nil
}

// DisplayName is "<place> <commodity>", the place being the first part of the location.
func DisplayName(d types.CollectedData) string {
	place := d.Location
	if d.UseCustomLocation && d.CustomCity != "" {
		place = d.CustomCity
	}
	if i := strings.Index(place, ","); i >= 0 {
		place = place[:i]
	}
	place = strings.TrimSpace(place)
	if place == "" {
		return d.Commodity
	}
	return place + " " + d.Commodity
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
