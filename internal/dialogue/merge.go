package dialogue

import (
	"voice-listing-go/internal/normalize"
	"voice-listing-go/internal/types"
)

// merge applies one extraction to the collected data. Fields the extraction
// does not mention are kept; nothing is ever cleared. The flag reports whether
// the extraction carried anything usable.
func merge(d types.CollectedData, ext types.Extraction) (types.CollectedData, bool) {
	used := false

	if c := ext.CanonicalCommodity(); c != "" {
		d.Commodity = c
		used = true
	}

	var quantityKg float64
	if ext.Quantity > 0 {
		if kg, err := normalize.QuantityKg(ext.Quantity, ext.QuantityUnit); err == nil && kg > 0 {
			quantityKg = kg
			d.QuantityKg = kg
			used = true
		}
	}

	if g, ok := normalize.Grade(ext.Quality); ok {
		d.Quality = g
		used = true
	}

	if ext.Location != "" {
		d.Location = ext.Location
		used = true
	}
	if ext.HasCustomLocation() {
		if ext.CustomState != "" {
			d.CustomState = ext.CustomState
		}
		if ext.CustomCity != "" {
			d.CustomCity = ext.CustomCity
		}
		if ext.CustomMandi != "" {
			d.CustomMandi = ext.CustomMandi
		}
		d.UseCustomLocation = true
		used = true
	}

	if ext.UseMarketPrice {
		d.UseMarketPrice = true
		used = true
	}

	if ext.Price > 0 {
		q := quantityKg
		if q <= 0 {
			q = d.QuantityKg
		}
		// A lump sum with no known quantity cannot be priced per kg yet.
		if p, err := normalize.PricePerKg(ext.Price, ext.PriceUnit, q); err == nil && p > 0 {
			d.PreferredPrice = p
			if !ext.UseMarketPrice {
				d.UseMarketPrice = false
			}
			used = true
		}
	}
	return d, used
}
