package dialogue

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voice-listing-go/internal/catalog"
	"voice-listing-go/internal/dictionary"
	"voice-listing-go/internal/extractor"
	"voice-listing-go/internal/language"
	"voice-listing-go/internal/logger"
	"voice-listing-go/internal/pricing"
	"voice-listing-go/internal/responder"
	"voice-listing-go/internal/types"
)

type fakeExtractor struct {
	ext    types.Extraction
	panics bool
}

func (f *fakeExtractor) Extract(context.Context, string, types.LanguageConfig) types.Extraction {
	if f.panics {
		panic("extractor blew up")
	}
	return f.ext
}

type failingPrices struct{}

func (failingPrices) GetPriceSuggestion(context.Context, string, string) (types.PriceSuggestion, error) {
	return types.PriceSuggestion{}, errors.New("price service down")
}

type countingBuilder struct {
	builds int
	inner  *catalog.Builder
}

func (c *countingBuilder) Build(d types.CollectedData, price float64) (types.CatalogItem, error) {
	c.builds++
	return c.inner.Build(d, price)
}

func quiet() Option {
	return WithLogger(logger.Discard().Component("dialogue"))
}

func dictionaryEngine(opts ...Option) *Engine {
	ex := extractor.New(dictionary.NewMatcher(), extractor.WithLogger(logger.Discard().Component("extractor")))
	return New(ex, append([]Option{quiet()}, opts...)...)
}

func english() types.LanguageConfig {
	return language.Default()
}

func completeData() types.CollectedData {
	return types.CollectedData{
		Commodity:      "Onions",
		QuantityKg:     500,
		Quality:        types.GradeA,
		Location:       "Nasik, Maharashtra",
		PreferredPrice: 20,
	}
}

func TestInitConversationEveryLanguage(t *testing.T) {
	e := New(&fakeExtractor{}, quiet())
	for _, l := range language.All() {
		st := e.InitConversation(l)
		assert.Equal(t, types.StageGreeting, st.Stage, l.Code)
		assert.Equal(t, types.CollectedData{}, st.CollectedData, l.Code)

		resp := e.Opening(st)
		assert.Equal(t, l.Greeting, resp.Text, l.Code)
		assert.True(t, resp.ExpectsResponse)
	}
}

func TestFastTrackSkipsQuestions(t *testing.T) {
	fake := &fakeExtractor{ext: types.Extraction{
		CommodityEnglish: "Wheat",
		Quantity:         400,
		QuantityUnit:     "quintal",
		Price:            50,
		PriceUnit:        "quintal",
		Understood:       true,
		HasAllInfo:       true,
	}}
	e := New(fake, quiet(), WithPrices(pricing.StaticBook()))

	res := e.ProcessInput(context.Background(), e.InitConversation(english()), "400 quintal gehu 50 rupaye quintal")
	d := res.State.CollectedData
	assert.Equal(t, "Wheat", d.Commodity)
	assert.InDelta(t, 40000, d.QuantityKg, 1e-9)
	assert.InDelta(t, 0.5, d.PreferredPrice, 1e-9)
	assert.Equal(t, types.GradeStandard, d.Quality)
	assert.Equal(t, types.StageShowingMarketPrices, res.State.Stage)
	require.NotNil(t, res.State.PriceSuggestion)
	assert.Same(t, res.State.PriceSuggestion, res.Response.PriceSuggestion)
}

func TestSellerSentenceWithoutModel(t *testing.T) {
	e := dictionaryEngine()
	res := e.ProcessInput(context.Background(), e.InitConversation(english()), "Arre bhai, 500 kilo pyaaz hai Nasik se, Grade A hai")

	d := res.State.CollectedData
	assert.Equal(t, "Onions", d.Commodity)
	assert.Equal(t, 500.0, d.QuantityKg)
	assert.Equal(t, types.GradeA, d.Quality)
	assert.Contains(t, d.Location, "Nasik")
	assert.Equal(t, types.StageAskingPricePreference, res.State.Stage)
	assert.Equal(t, `At what price do you want to sell your Onions? Tell me a price, or say "market price".`, res.Response.Text)
}

func TestAllInfoSentence(t *testing.T) {
	e := dictionaryEngine(WithPrices(pricing.StaticBook()))
	res := e.ProcessInput(context.Background(), e.InitConversation(english()), "400 quintal wheat at 50 rs")

	d := res.State.CollectedData
	assert.Equal(t, "Wheat", d.Commodity)
	assert.InDelta(t, 40000, d.QuantityKg, 1e-9)
	assert.InDelta(t, 0.5, d.PreferredPrice, 1e-9)
	assert.Equal(t, types.GradeStandard, d.Quality)
	assert.Equal(t, types.StageShowingMarketPrices, res.State.Stage)
}

func TestStepByStepConversation(t *testing.T) {
	e := dictionaryEngine(WithPrices(pricing.StaticBook()))
	ctx := context.Background()
	st := e.InitConversation(english())

	steps := []struct {
		say   string
		stage types.Stage
	}{
		{"I want to sell onions", types.StageAskingQuantity},
		{"500", types.StageAskingQuality},
		{"pata nahi", types.StageAskingPricePreference},
		{"market price", types.StageShowingMarketPrices},
		{"haan", types.StageConfirmingListing},
		{"yes", types.StageBroadcasting},
		{"ok", types.StageSuccess},
	}
	for _, s := range steps {
		res := e.ProcessInput(ctx, st, s.say)
		require.Equal(t, s.stage, res.State.Stage, s.say)
		st = res.State
	}

	assert.Equal(t, 500.0, st.CollectedData.QuantityKg)
	assert.Equal(t, types.GradeStandard, st.CollectedData.Quality)
	require.NotNil(t, st.PriceSuggestion)
	assert.Equal(t, st.PriceSuggestion.PricePerKg.Average, st.CollectedData.PreferredPrice)
	require.NotNil(t, st.CatalogItem)
	assert.Equal(t, "Onions", st.CatalogItem.Commodity)
	assert.Equal(t, "kg", st.CatalogItem.Quantity.Unit)
}

func TestCommodityIsNeverCleared(t *testing.T) {
	fake := &fakeExtractor{}
	e := New(fake, quiet())
	st := types.ConversationState{
		Stage:         types.StageAskingQuantity,
		Language:      english(),
		CollectedData: types.CollectedData{Commodity: "Onions"},
	}

	for _, utt := range []string{"", "hmm", "kya bola"} {
		res := e.ProcessInput(context.Background(), st, utt)
		assert.Equal(t, "Onions", res.State.CollectedData.Commodity, utt)
		assert.Equal(t, types.StageAskingQuantity, res.State.Stage, utt)
		assert.Equal(t, "Sorry, I did not understand that. How much Onions do you have? You can say it in kg, quintal or ton.", res.Response.Text)
	}

	fake.ext = types.Extraction{Quantity: 2, QuantityUnit: "ton", Understood: true}
	res := e.ProcessInput(context.Background(), st, "2 ton")
	assert.Equal(t, "Onions", res.State.CollectedData.Commodity)
	assert.Equal(t, 2000.0, res.State.CollectedData.QuantityKg)

	fake.ext = types.Extraction{Commodity: "aloo", CommodityEnglish: "Potatoes", Understood: true}
	res = e.ProcessInput(context.Background(), res.State, "aloo")
	assert.Equal(t, "Potatoes", res.State.CollectedData.Commodity)
	assert.Equal(t, 2000.0, res.State.CollectedData.QuantityKg)
}

func TestInputStateIsNotModified(t *testing.T) {
	e := dictionaryEngine(WithPrices(pricing.StaticBook()))
	st := types.ConversationState{Stage: types.StageConfirmingListing, Language: english(), CollectedData: completeData()}
	before := st

	res := e.ProcessInput(context.Background(), st, "yes")
	require.NotNil(t, res.State.CatalogItem)
	assert.Equal(t, before, st)
	assert.Nil(t, st.CatalogItem)
}

func TestNeverPanics(t *testing.T) {
	e := dictionaryEngine(WithPrices(pricing.StaticBook()))
	for _, stage := range types.Stages() {
		for _, utt := range []string{"", "   ", "yes", "no", "₹", "999999999999999999999 kg", "Hindi"} {
			st := types.ConversationState{Stage: stage, CollectedData: completeData()}
			var res types.TurnResult
			require.NotPanics(t, func() { res = e.ProcessInput(context.Background(), st, utt) }, "%s %q", stage, utt)
			assert.True(t, res.State.Stage.Valid())
			assert.NotEmpty(t, res.Response.Text)
			assert.Equal(t, "Onions", res.State.CollectedData.Commodity)
		}
	}
}

func TestHandlerFaultBecomesErrorStage(t *testing.T) {
	fake := &fakeExtractor{panics: true}
	e := New(fake, quiet())
	st := types.ConversationState{
		Stage:         types.StageAskingQuantity,
		Language:      english(),
		CollectedData: types.CollectedData{Commodity: "Onions", Location: "Nasik, Maharashtra"},
	}

	res := e.ProcessInput(context.Background(), st, "500 kg")
	assert.Equal(t, types.StageError, res.State.Stage)
	assert.Equal(t, types.StageAskingQuantity, res.State.ResumeStage)
	assert.Contains(t, res.State.Error, "extractor blew up")
	assert.Equal(t, st.CollectedData, res.State.CollectedData)
	assert.Equal(t, "Sorry, something went wrong on our side. Please say that again.", res.Response.Text)
	assert.True(t, res.Response.ExpectsResponse)

	// Still failing: the session stays in error and keeps its resume point.
	res = e.ProcessInput(context.Background(), res.State, "500 kg")
	assert.Equal(t, types.StageError, res.State.Stage)
	assert.Equal(t, types.StageAskingQuantity, res.State.ResumeStage)

	fake.panics = false
	fake.ext = types.Extraction{Quantity: 500, QuantityUnit: "kg", Understood: true}
	res = e.ProcessInput(context.Background(), res.State, "500 kg")
	assert.Equal(t, types.StageAskingQuality, res.State.Stage)
	assert.Equal(t, 500.0, res.State.CollectedData.QuantityKg)
	assert.Empty(t, res.State.Error)
	assert.Empty(t, res.State.ResumeStage)
}

func TestUnknownStageIsAFault(t *testing.T) {
	e := New(&fakeExtractor{}, quiet())
	res := e.ProcessInput(context.Background(), types.ConversationState{Stage: "bargaining", Language: english()}, "hello")
	assert.Equal(t, types.StageError, res.State.Stage)
	assert.Equal(t, types.StageGreeting, res.State.ResumeStage)
	assert.Contains(t, res.State.Error, "bargaining")
}

func TestLocalizedErrorMessage(t *testing.T) {
	e := New(&fakeExtractor{panics: true}, quiet())
	hi, _ := language.ByCode("hi")
	res := e.ProcessInput(context.Background(), e.InitConversation(hi), "kuch bhi")
	assert.Equal(t, types.StageError, res.State.Stage)
	assert.NotEqual(t, "Sorry, something went wrong on our side. Please say that again.", res.Response.Text)
	assert.NotEmpty(t, res.Response.Text)
}

func TestConfirmingNoReturnsToGreetingKeepingFields(t *testing.T) {
	e := dictionaryEngine()
	st := types.ConversationState{Stage: types.StageConfirmingListing, Language: english(), CollectedData: completeData()}

	res := e.ProcessInput(context.Background(), st, "no")
	assert.Equal(t, types.StageGreeting, res.State.Stage)
	assert.Equal(t, completeData(), res.State.CollectedData)
	assert.Nil(t, res.State.CatalogItem)
	assert.Equal(t, "Okay, I have not listed it. Tell me what you would like to sell.", res.Response.Text)
}

func TestConfirmingStatedPriceReconfirms(t *testing.T) {
	e := dictionaryEngine()
	st := types.ConversationState{Stage: types.StageConfirmingListing, Language: english(), CollectedData: completeData()}

	res := e.ProcessInput(context.Background(), st, "make it 24 rupees")
	assert.Equal(t, types.StageConfirmingListing, res.State.Stage)
	assert.Equal(t, 24.0, res.State.CollectedData.PreferredPrice)
	assert.Contains(t, res.Response.Text, "₹24 per kg")
}

func TestCatalogItemIsBuiltOnce(t *testing.T) {
	b := &countingBuilder{inner: catalog.NewBuilder(catalog.WithIDs(func() string { return "listing-1" }))}
	e := dictionaryEngine(WithCatalog(b))
	ctx := context.Background()
	st := types.ConversationState{Stage: types.StageConfirmingListing, Language: english(), CollectedData: completeData()}

	res := e.ProcessInput(ctx, st, "haan ji")
	require.Equal(t, types.StageBroadcasting, res.State.Stage)
	require.NotNil(t, res.State.CatalogItem)
	assert.Equal(t, "listing-1", res.State.CatalogItem.ID)
	assert.Equal(t, "Nasik Onions", res.State.CatalogItem.Name)
	assert.Equal(t, 20.0, res.State.CatalogItem.Price.Value)
	assert.False(t, res.Response.ExpectsResponse)
	assert.Same(t, res.State.CatalogItem, res.Response.CatalogItem)
	item := res.State.CatalogItem

	// Confirming again with a listing already attached reuses it.
	again := res.State
	again.Stage = types.StageConfirmingListing
	res = e.ProcessInput(ctx, again, "yes")
	assert.Same(t, item, res.State.CatalogItem)

	res = e.ProcessInput(ctx, res.State, "")
	assert.Equal(t, types.StageSuccess, res.State.Stage)
	res = e.ProcessInput(ctx, res.State, "")
	assert.Equal(t, types.StageSuccess, res.State.Stage)
	assert.Same(t, item, res.State.CatalogItem)

	assert.Equal(t, 1, b.builds)
}

func TestMarketPriceReview(t *testing.T) {
	sug := &types.PriceSuggestion{
		PricePerKg: types.PriceRange{Min: 11.5, Max: 21, Average: 17},
		Market:     "Nasik, Maharashtra",
		Trend:      pricing.TrendRising,
	}
	base := types.ConversationState{
		Stage:           types.StageShowingMarketPrices,
		Language:        english(),
		CollectedData:   completeData(),
		PriceSuggestion: sug,
	}
	e := dictionaryEngine(WithPrices(pricing.StaticBook()))
	ctx := context.Background()

	t.Run("yes keeps own price", func(t *testing.T) {
		res := e.ProcessInput(ctx, base, "yes")
		assert.Equal(t, types.StageConfirmingListing, res.State.Stage)
		assert.Equal(t, 20.0, res.State.CollectedData.PreferredPrice)
	})

	t.Run("yes takes the average for market price sellers", func(t *testing.T) {
		st := base
		st.CollectedData.PreferredPrice = 0
		st.CollectedData.UseMarketPrice = true
		res := e.ProcessInput(ctx, st, "theek hai")
		assert.Equal(t, types.StageConfirmingListing, res.State.Stage)
		assert.Equal(t, 17.0, res.State.CollectedData.PreferredPrice)
	})

	t.Run("stated price overwrites", func(t *testing.T) {
		res := e.ProcessInput(ctx, base, "₹19")
		assert.Equal(t, types.StageConfirmingListing, res.State.Stage)
		assert.Equal(t, 19.0, res.State.CollectedData.PreferredPrice)
		assert.False(t, res.State.CollectedData.UseMarketPrice)
	})

	t.Run("change goes back to the price question", func(t *testing.T) {
		res := e.ProcessInput(ctx, base, "change it")
		assert.Equal(t, types.StageAskingPricePreference, res.State.Stage)
		assert.Equal(t, 20.0, res.State.CollectedData.PreferredPrice)
	})

	t.Run("unclear stays", func(t *testing.T) {
		res := e.ProcessInput(ctx, base, "hmm")
		assert.Equal(t, types.StageShowingMarketPrices, res.State.Stage)
		assert.Contains(t, res.Response.Text, "Sorry, I did not understand that.")
	})
}

func TestPriceLookupFailure(t *testing.T) {
	fake := &fakeExtractor{ext: types.Extraction{Quality: "A", Understood: true}}
	e := New(fake, quiet(), WithPrices(failingPrices{}))
	data := completeData()
	data.Quality = ""
	st := types.ConversationState{Stage: types.StageAskingQuality, Language: english(), CollectedData: data}

	res := e.ProcessInput(context.Background(), st, "A grade")
	assert.Equal(t, types.StageConfirmingListing, res.State.Stage)
	assert.Nil(t, res.State.PriceSuggestion)
	assert.Equal(t, "I could not get today's market price for Onions. Your price is ₹20 per kg. Shall we go ahead?", res.Response.Text)

	data.PreferredPrice = 0
	data.UseMarketPrice = true
	st.CollectedData = data
	res = e.ProcessInput(context.Background(), st, "A grade")
	assert.Equal(t, types.StageAskingPricePreference, res.State.Stage)
}

func TestWithoutPricesGoesStraightToConfirmation(t *testing.T) {
	e := dictionaryEngine()
	data := completeData()
	data.PreferredPrice = 0
	st := types.ConversationState{Stage: types.StageAskingPricePreference, Language: english(), CollectedData: data}

	res := e.ProcessInput(context.Background(), st, "22")
	assert.Equal(t, types.StageConfirmingListing, res.State.Stage)
	assert.Equal(t, 22.0, res.State.CollectedData.PreferredPrice)
}

func TestLanguageSelection(t *testing.T) {
	e := New(&fakeExtractor{}, quiet())
	st := e.InitLanguageSelection()
	assert.Equal(t, types.StageLanguageSelection, st.Stage)
	assert.Len(t, e.Opening(st).Options, len(language.All()))

	res := e.ProcessInput(context.Background(), st, "Klingon please")
	assert.Equal(t, types.StageLanguageSelection, res.State.Stage)
	assert.Contains(t, res.Response.Text, "Sorry, I did not understand that.")

	res = e.ProcessInput(context.Background(), st, "मराठी")
	mr, _ := language.ByCode("mr")
	assert.Equal(t, types.StageGreeting, res.State.Stage)
	assert.Equal(t, mr, res.State.Language)
	assert.Equal(t, mr.Greeting, res.Response.Text)
}

func TestOfferedOptionsAreUnderstood(t *testing.T) {
	e := dictionaryEngine(WithPrices(pricing.StaticBook()))
	ctx := context.Background()

	for _, l := range language.All() {
		quality := types.ConversationState{
			Stage:         types.StageAskingQuality,
			Language:      l,
			CollectedData: types.CollectedData{Commodity: "Onions", QuantityKg: 500},
		}
		for _, opt := range responder.Options(types.StageAskingQuality, l.Code) {
			res := e.ProcessInput(ctx, quality, opt)
			assert.Equal(t, types.StageAskingPricePreference, res.State.Stage, "%s %q", l.Code, opt)
			assert.NotEmpty(t, res.State.CollectedData.Quality, "%s %q", l.Code, opt)
		}

		price := quality
		price.Stage = types.StageAskingPricePreference
		price.CollectedData.Quality = types.GradeA
		market := responder.Options(types.StageAskingPricePreference, l.Code)
		require.Len(t, market, 1)
		res := e.ProcessInput(ctx, price, market[0])
		assert.Equal(t, types.StageShowingMarketPrices, res.State.Stage, l.Code)
		assert.True(t, res.State.CollectedData.UseMarketPrice, l.Code)

		review := res.State
		review.CollectedData.UseMarketPrice = false
		review.CollectedData.PreferredPrice = 20
		opts := responder.Options(types.StageShowingMarketPrices, l.Code)
		require.Len(t, opts, 3)
		wants := []types.Stage{types.StageConfirmingListing, types.StageAskingPricePreference, types.StageAskingPricePreference}
		for i, opt := range opts {
			assert.Equal(t, wants[i], e.ProcessInput(ctx, review, opt).State.Stage, "%s %q", l.Code, opt)
		}

		confirm := review
		confirm.Stage = types.StageConfirmingListing
		opts = responder.Options(types.StageConfirmingListing, l.Code)
		require.Len(t, opts, 2)
		assert.Equal(t, types.StageBroadcasting, e.ProcessInput(ctx, confirm, opts[0]).State.Stage, l.Code)
		assert.Equal(t, types.StageGreeting, e.ProcessInput(ctx, confirm, opts[1]).State.Stage, l.Code)
	}
}

func TestBareGradeAnswers(t *testing.T) {
	e := dictionaryEngine()
	st := types.ConversationState{
		Stage:         types.StageAskingQuality,
		Language:      english(),
		CollectedData: types.CollectedData{Commodity: "Onions", QuantityKg: 500},
	}
	cases := map[string]types.Grade{"A": types.GradeA, "b.": types.GradeB, "premium": types.GradePremium, "Mixed": types.GradeMixed}
	for in, want := range cases {
		res := e.ProcessInput(context.Background(), st, in)
		assert.Equal(t, want, res.State.CollectedData.Quality, in)
		assert.Equal(t, types.StageAskingPricePreference, res.State.Stage, in)
	}
}

func TestPriceAnswerWithUnit(t *testing.T) {
	e := dictionaryEngine()
	st := types.ConversationState{
		Stage:    types.StageAskingPricePreference,
		Language: english(),
		CollectedData: types.CollectedData{
			Commodity:  "Onions",
			QuantityKg: 500,
			Quality:    types.GradeA,
		},
	}
	for _, in := range []string{"2000 per quintal", "2000 rupees per quintal", "2000/qtl"} {
		res := e.ProcessInput(context.Background(), st, in)
		assert.Equal(t, 20.0, res.State.CollectedData.PreferredPrice, in)
		assert.Equal(t, types.StageConfirmingListing, res.State.Stage, in)
	}
	res := e.ProcessInput(context.Background(), st, "25")
	assert.Equal(t, 25.0, res.State.CollectedData.PreferredPrice)
}

func TestLeadingTotalIsALumpSum(t *testing.T) {
	e := dictionaryEngine()
	st := e.InitConversation(english())
	res := e.ProcessInput(context.Background(), st, "I have 10 ton of tomatoes, total 50000 rupees")
	assert.Equal(t, "Tomatoes", res.State.CollectedData.Commodity)
	assert.Equal(t, 10000.0, res.State.CollectedData.QuantityKg)
	assert.Equal(t, 5.0, res.State.CollectedData.PreferredPrice)
}
