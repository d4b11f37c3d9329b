// Package resolver decides which stage follows from what is known about a listing.
// It is pure: no I/O, no clock, no randomness.
package resolver

import "voice-listing-go/internal/types"

type Input struct {
	Data types.CollectedData
	// HasAllInfo is the extraction flag of the current turn: commodity, quantity
	// and price all came in one utterance.
	HasAllInfo bool
	// MarketPrices is false when no price lookup can be made.
	MarketPrices bool
}

type Decision struct {
	Stage       types.Stage
	Data        types.CollectedData
	FastTracked bool
}

// Resolve asks for the first missing field in the order commodity, quantity,
// quality, price. A complete listing goes to the market price comparison, or
// straight to confirmation when prices cannot be looked up.
//
// When one utterance carried commodity, quantity and price but no quality, the
// quality defaults to Standard and the intermediate questions are skipped.
func Resolve(in Input) Decision {
	d := in.Data
	fast := false
	if in.HasAllInfo && d.Quality == "" && d.Commodity != "" && d.QuantityKg > 0 && d.PreferredPrice > 0 {
		d.Quality = types.GradeStandard
		fast = true
	}

	stage := types.StageConfirmingListing
	switch {
	case d.Commodity == "":
		stage = types.StageAskingCommodity
	case d.QuantityKg <= 0:
		stage = types.StageAskingQuantity
	case d.Quality == "":
		stage = types.StageAskingQuality
	case d.PreferredPrice <= 0 && !(d.UseMarketPrice && in.MarketPrices):
		stage = types.StageAskingPricePreference
	case in.MarketPrices:
		stage = types.StageShowingMarketPrices
	}
	return Decision{Stage: stage, Data: d, FastTracked: fast}
}

// Missing lists the fields still needed, in asking order.
func Missing(d types.CollectedData) []string {
	var out []string
	if d.Commodity == "" {
		out = append(out, "commodity")
	}
	if d.QuantityKg <= 0 {
		out = append(out, "quantity")
	}
	if d.Quality == "" {
		out = append(out, "quality")
	}
	if d.PreferredPrice <= 0 && !d.UseMarketPrice {
		out = append(out, "price")
	}
	return out
}
