package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"voice-listing-go/internal/types"
)

func TestPriorityOrder(t *testing.T) {
	cases := []struct {
		name string
		data types.CollectedData
		want types.Stage
	}{
		{"nothing", types.CollectedData{}, types.StageAskingCommodity},
		{"quantity without commodity", types.CollectedData{QuantityKg: 100, PreferredPrice: 2}, types.StageAskingCommodity},
		{"commodity", types.CollectedData{Commodity: "Onions"}, types.StageAskingQuantity},
		{"no quality", types.CollectedData{Commodity: "Onions", QuantityKg: 500, PreferredPrice: 20}, types.StageAskingQuality},
		{"no price", types.CollectedData{Commodity: "Onions", QuantityKg: 500, Quality: types.GradeA}, types.StageAskingPricePreference},
		{"complete", types.CollectedData{Commodity: "Onions", QuantityKg: 500, Quality: types.GradeA, PreferredPrice: 20}, types.StageShowingMarketPrices},
		{"market price", types.CollectedData{Commodity: "Onions", QuantityKg: 500, Quality: types.GradeA, UseMarketPrice: true}, types.StageShowingMarketPrices},
	}
	for _, c := range cases {
		got := Resolve(Input{Data: c.data, MarketPrices: true})
		assert.Equal(t, c.want, got.Stage, c.name)
		assert.False(t, got.FastTracked, c.name)
	}
}

func TestWithoutPriceLookup(t *testing.T) {
	d := types.CollectedData{Commodity: "Onions", QuantityKg: 500, Quality: types.GradeA, PreferredPrice: 20}
	assert.Equal(t, types.StageConfirmingListing, Resolve(Input{Data: d}).Stage)

	d.PreferredPrice = 0
	d.UseMarketPrice = true
	assert.Equal(t, types.StageAskingPricePreference, Resolve(Input{Data: d}).Stage)
}

func TestFastTrackDefaultsQuality(t *testing.T) {
	in := Input{
		Data:         types.CollectedData{Commodity: "Wheat", QuantityKg: 40000, PreferredPrice: 0.5},
		HasAllInfo:   true,
		MarketPrices: true,
	}
	got := Resolve(in)
	assert.Equal(t, types.StageShowingMarketPrices, got.Stage)
	assert.Equal(t, types.GradeStandard, got.Data.Quality)
	assert.True(t, got.FastTracked)
	assert.Empty(t, in.Data.Quality, "input must not be modified")
}

func TestFastTrackKeepsStatedQuality(t *testing.T) {
	got := Resolve(Input{
		Data:         types.CollectedData{Commodity: "Wheat", QuantityKg: 40000, PreferredPrice: 0.5, Quality: types.GradeB},
		HasAllInfo:   true,
		MarketPrices: true,
	})
	assert.Equal(t, types.GradeB, got.Data.Quality)
	assert.False(t, got.FastTracked)
}

func TestHasAllInfoNeedsTheFields(t *testing.T) {
	got := Resolve(Input{Data: types.CollectedData{Commodity: "Wheat"}, HasAllInfo: true, MarketPrices: true})
	assert.Equal(t, types.StageAskingQuantity, got.Stage)
	assert.Empty(t, got.Data.Quality)
}

func TestMissing(t *testing.T) {
	assert.Equal(t, []string{"commodity", "quantity", "quality", "price"}, Missing(types.CollectedData{}))
	assert.Empty(t, Missing(types.CollectedData{Commodity: "Rice", QuantityKg: 1, Quality: types.GradeA, UseMarketPrice: true}))
}
