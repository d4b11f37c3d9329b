package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voice-listing-go/internal/types"
)

func fixedBuilder(opts ...Option) *Builder {
	at := time.Date(2026, 2, 14, 10, 30, 0, 0, time.FixedZone("IST", 5*3600+1800))
	return NewBuilder(append([]Option{
		WithClock(func() time.Time { return at }),
		WithIDs(func() string { return "item-1" }),
	}, opts...)...)
}

func TestBuild(t *testing.T) {
	item, err := fixedBuilder().Build(types.CollectedData{
		Commodity:  "Onions",
		QuantityKg: 500,
		Quality:    types.GradeA,
		Location:   "Nasik, Maharashtra",
	}, 18.456)
	require.NoError(t, err)

	assert.Equal(t, "item-1", item.ID)
	assert.Equal(t, "Nasik Onions", item.Name)
	assert.Equal(t, types.GradeA, item.Grade)
	assert.Equal(t, types.Amount{Value: 18.46, Currency: "INR", Unit: "kg"}, item.Price)
	assert.Equal(t, types.Quantity{Value: 500, Unit: "kg"}, item.Quantity)
	assert.Equal(t, DefaultLogisticsProvider, item.LogisticsProvider)
	assert.Equal(t, time.UTC, item.CreatedAt.Location())
	assert.Equal(t, 5, item.CreatedAt.Hour())
}

func TestBuildDefaultsAndOverrides(t *testing.T) {
	item, err := fixedBuilder(WithLogisticsProvider("kisan-freight")).Build(types.CollectedData{
		Commodity:  "Wheat",
		QuantityKg: 40000,
	}, 0.5)
	require.NoError(t, err)
	assert.Equal(t, "Wheat", item.Name)
	assert.Equal(t, types.GradeStandard, item.Grade)
	assert.Equal(t, "kisan-freight", item.LogisticsProvider)

	b := NewBuilder(WithLogisticsProvider("  "))
	assert.Equal(t, DefaultLogisticsProvider, b.logistics)
}

func TestBuildRejectsIncomplete(t *testing.T) {
	_, err := fixedBuilder().Build(types.CollectedData{Commodity: "Onions"}, 0)
	require.ErrorIs(t, err, ErrIncomplete)
	assert.Contains(t, err.Error(), "quantity, price")
}

func TestDisplayNamePrefersCustomCity(t *testing.T) {
	d := types.CollectedData{Commodity: "Tomatoes", Location: "Nasik, Maharashtra", CustomCity: "Pune", UseCustomLocation: true}
	assert.Equal(t, "Pune Tomatoes", DisplayName(d))
}
