package pricing

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"voice-listing-go/internal/cache"
	"voice-listing-go/internal/logger"
	"voice-listing-go/internal/types"
)

func TestStaticBookConvertsToPerKg(t *testing.T) {
	ps, err := StaticBook().GetPriceSuggestion(context.Background(), "Wheat", "")
	require.NoError(t, err)
	assert.Equal(t, 23.5, ps.PricePerKg.Min)
	assert.Equal(t, 27.0, ps.PricePerKg.Max)
	assert.Equal(t, 25.0, ps.PricePerKg.Average)
	assert.Equal(t, "Indore, Madhya Pradesh", ps.Market)
	assert.Equal(t, TrendStable, ps.Trend)
	assert.NotEmpty(t, ps.Advice)
}

func TestLocationHintPicksMarket(t *testing.T) {
	b := StaticBook()

	ps, err := b.GetPriceSuggestion(context.Background(), "onion", "Nasik, Maharashtra")
	require.NoError(t, err)
	assert.Equal(t, "Nasik, Maharashtra", ps.Market)

	ps, err = b.GetPriceSuggestion(context.Background(), "Onions", "somewhere in Delhi")
	require.NoError(t, err)
	assert.Equal(t, "Azadpur, Delhi", ps.Market)

	ps, err = b.GetPriceSuggestion(context.Background(), "Tomato", "")
	require.NoError(t, err)
	assert.Equal(t, "Pune, Maharashtra", ps.Market)
}

func TestUnknownCommodity(t *testing.T) {
	_, err := StaticBook().GetPriceSuggestion(context.Background(), "Saffron", "")
	assert.ErrorIs(t, err, ErrNoPrice)
}

func TestCommodityKey(t *testing.T) {
	assert.Equal(t, commodityKey("Green Chillies"), commodityKey("green chilli"))
	assert.Equal(t, commodityKey("Mangoes"), commodityKey("mango"))
	assert.Equal(t, commodityKey("Grapes"), commodityKey("grape"))
}

func writeSheet(t *testing.T, rows [][]any) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	for i, r := range rows {
		cellRef, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cellRef, &r))
	}
	path := filepath.Join(t.TempDir(), "prices.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestLoadSheet(t *testing.T) {
	path := writeSheet(t, [][]any{
		{"State", "Mandi Name", "Commodity", "Min Price (Rs/qtl)", "Max Price (Rs/qtl)", "Modal Price (Rs/qtl)", "Trend"},
		{"Maharashtra", "Lasalgaon", "Onion", 1500, 2600, 2100, "up"},
		{"Karnataka", "Hubballi", "Onion", "1,300", "2,200", "1,800", "down"},
		{"", "", "", "", "", "", ""},
		{"Gujarat", "Unjha", "Cumin", 20000, 24000, 0, ""},
	})

	b, err := LoadSheet(path)
	require.NoError(t, err)
	assert.Equal(t, 2, b.Len())

	ps, err := b.GetPriceSuggestion(context.Background(), "Onions", "Karnataka")
	require.NoError(t, err)
	assert.Equal(t, "Hubballi, Karnataka", ps.Market)
	assert.Equal(t, 18.0, ps.PricePerKg.Average)
	assert.Equal(t, TrendFalling, ps.Trend)

	ps, err = b.GetPriceSuggestion(context.Background(), "Onions", "")
	require.NoError(t, err)
	assert.Equal(t, TrendRising, ps.Trend)

	_, err = b.GetPriceSuggestion(context.Background(), "Cumin", "")
	assert.ErrorIs(t, err, ErrNoPrice)
}

func TestLoadSheetRejectsMissingColumns(t *testing.T) {
	path := writeSheet(t, [][]any{
		{"Name", "Price"},
		{"Onion", 20},
	})
	_, err := LoadSheet(path)
	assert.Error(t, err)

	_, err = LoadSheet(filepath.Join(t.TempDir(), "missing.xlsx"))
	assert.Error(t, err)
}

type countingLookup struct {
	calls int
	err   error
}

func (c *countingLookup) GetPriceSuggestion(_ context.Context, commodity, _ string) (types.PriceSuggestion, error) {
	c.calls++
	if c.err != nil {
		return types.PriceSuggestion{}, c.err
	}
	return types.PriceSuggestion{Market: commodity}, nil
}

func TestServiceCachesWithInjectedClock(t *testing.T) {
	now := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	c, err := cache.NewTTL[string, types.PriceSuggestion](32, 15*time.Minute, cache.WithClock(func() time.Time { return now }))
	require.NoError(t, err)
	inner := &countingLookup{}
	svc := NewService(inner, c, logger.Discard().Component("pricing"))

	for i := 0; i < 3; i++ {
		_, err := svc.GetPriceSuggestion(context.Background(), "Onions", "Nasik")
		require.NoError(t, err)
	}
	assert.Equal(t, 1, inner.calls)

	now = now.Add(16 * time.Minute)
	_, err = svc.GetPriceSuggestion(context.Background(), "Onions", "Nasik")
	require.NoError(t, err)
	assert.Equal(t, 2, inner.calls)
}

func TestServiceDoesNotCacheFailures(t *testing.T) {
	c, err := cache.NewTTL[string, types.PriceSuggestion](32, time.Minute)
	require.NoError(t, err)
	inner := &countingLookup{err: errors.New("upstream down")}
	svc := NewService(inner, c, logger.Discard().Component("pricing"))

	_, err = svc.GetPriceSuggestion(context.Background(), "Onions", "")
	assert.Error(t, err)
	_, err = svc.GetPriceSuggestion(context.Background(), "Onions", "")
	assert.Error(t, err)
	assert.Equal(t, 2, inner.calls)
}

func TestLocationHint(t *testing.T) {
	d := types.CollectedData{Location: "Nasik, Maharashtra", CustomCity: "Pune", CustomState: "Maharashtra"}
	assert.Equal(t, "Nasik, Maharashtra", LocationHint(d))

	d.UseCustomLocation = true
	assert.Equal(t, "Pune, Maharashtra", LocationHint(d))

	d.CustomMandi = "Gultekdi"
	assert.Equal(t, "Gultekdi, Pune, Maharashtra", LocationHint(d))

	assert.Equal(t, "Nasik, Maharashtra", LocationHint(types.CollectedData{Location: "Nasik, Maharashtra", UseCustomLocation: true}))
}
