package dialogue

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"voice-listing-go/internal/dictionary"
	"voice-listing-go/internal/language"
	"voice-listing-go/internal/metrics"
	"voice-listing-go/internal/normalize"
	"voice-listing-go/internal/pricing"
	"voice-listing-go/internal/resolver"
	"voice-listing-go/internal/templates"
	"voice-listing-go/internal/types"
)

type outcome struct {
	state         types.ConversationState
	key           templates.MessageKey
	notUnderstood bool
	// greeting replaces the reply with the session language's own greeting.
	greeting bool
}

type handler func(ctx context.Context, st types.ConversationState, utterance string) (outcome, error)

var stageKeys = map[types.Stage]templates.MessageKey{
	types.StageLanguageSelection:     templates.ChooseLanguage,
	types.StageGreeting:              templates.AskCommodity,
	types.StageAskingCommodity:       templates.AskCommodity,
	types.StageAskingQuantity:        templates.AskQuantity,
	types.StageAskingQuality:         templates.AskQuality,
	types.StageAskingPricePreference: templates.AskPrice,
	types.StageShowingMarketPrices:   templates.MarketPrices,
	types.StageConfirmingListing:     templates.ConfirmListing,
	types.StageBroadcasting:          templates.Broadcasting,
	types.StageSuccess:               templates.Success,
	types.StageError:                 templates.GenericError,
}

// settle clears the fault markers a successful turn leaves behind.
func settle(st types.ConversationState, stage types.Stage) types.ConversationState {
	st.Stage = stage
	st.Error = ""
	st.ResumeStage = ""
	return st
}

func (e *Engine) selectLanguage(_ context.Context, st types.ConversationState, utterance string) (outcome, error) {
	l, ok := language.Match(utterance)
	if !ok {
		return outcome{state: settle(st, types.StageLanguageSelection), key: templates.ChooseLanguage, notUnderstood: true}, nil
	}
	next := settle(st, types.StageGreeting)
	next.Language = l
	return outcome{state: next, key: templates.AskCommodity, greeting: true}, nil
}

// collect serves the greeting and every asking stage: extract, merge, resolve.
func (e *Engine) collect(ctx context.Context, st types.ConversationState, utterance string) (outcome, error) {
	ext := e.extractor.Extract(ctx, utterance, st.Language)

	switch st.Stage {
	case types.StageAskingQuality:
		if ext.Quality == "" {
			// Bare grade letters like "A" are too short for the keyword tables.
			if g, ok := normalize.Grade(strings.Trim(utterance, " .!,")); ok {
				ext.Quality = string(g)
			} else if dictionary.IsUnsure(utterance) {
				ext.Quality = string(types.GradeStandard)
			}
		}
	case types.StageAskingPricePreference:
		if ext.Price <= 0 && dictionary.WantsMarketPrice(utterance) {
			ext.UseMarketPrice = true
		}
	}
	if ext.Quantity <= 0 && ext.Price <= 0 {
		if n, ok := dictionary.Number(utterance); ok {
			switch st.Stage {
			case types.StageAskingQuantity:
				ext.Quantity, ext.QuantityUnit = n, normalize.UnitKg
			case types.StageAskingPricePreference:
				ext.Price, ext.PriceUnit = n, normalize.UnitKg
			}
		}
	}

	data, changed := merge(st.CollectedData, ext)
	return e.advance(ctx, st, data, ext.HasAllInfo, changed), nil
}

// advance resolves the next stage for data and prepares the matching reply.
func (e *Engine) advance(ctx context.Context, st types.ConversationState, data types.CollectedData, hasAllInfo, changed bool) outcome {
	dec := resolver.Resolve(resolver.Input{Data: data, HasAllInfo: hasAllInfo, MarketPrices: e.prices != nil})
	if dec.FastTracked {
		e.log.WithField("commodity", dec.Data.Commodity).Debug("fast-tracked to market prices")
	}

	next := settle(st, dec.Stage)
	next.CollectedData = dec.Data
	if dec.Data.Commodity != st.CollectedData.Commodity {
		next.PriceSuggestion = nil
		next.CatalogItem = nil
	}
	key := stageKeys[dec.Stage]

	if dec.Stage == types.StageShowingMarketPrices {
		sug, err := e.prices.GetPriceSuggestion(ctx, dec.Data.Commodity, pricing.LocationHint(dec.Data))
		if err != nil {
			e.log.WithError(err).WithField("commodity", dec.Data.Commodity).Warn("market price lookup failed")
			dec = resolver.Resolve(resolver.Input{Data: dec.Data})
			next.Stage = dec.Stage
			next.PriceSuggestion = nil
			key = stageKeys[dec.Stage]
			if dec.Stage == types.StageConfirmingListing {
				key = templates.MarketPricesUnavailable
			}
		} else {
			next.PriceSuggestion = &sug
		}
	}

	return outcome{
		state:         next,
		key:           key,
		notUnderstood: !changed && next.Stage == st.Stage,
	}
}

func (e *Engine) reviewMarketPrices(ctx context.Context, st types.ConversationState, utterance string) (outcome, error) {
	ext := e.extractor.Extract(ctx, utterance, st.Language)
	if c := ext.CanonicalCommodity(); c != "" && c != st.CollectedData.Commodity {
		// A different commodity starts the listing questions again.
		data, _ := merge(st.CollectedData, ext)
		return e.advance(ctx, st, data, ext.HasAllInfo, true), nil
	}

	if price, ok := statedPrice(ext, utterance, st.CollectedData.QuantityKg); ok {
		data := st.CollectedData
		data.PreferredPrice = price
		data.UseMarketPrice = false
		return e.confirm(st, data), nil
	}

	switch dictionary.DetectConfirmation(utterance) {
	case dictionary.Yes:
		data := st.CollectedData
		if data.UseMarketPrice || data.PreferredPrice <= 0 {
			if st.PriceSuggestion == nil || st.PriceSuggestion.PricePerKg.Average <= 0 {
				return outcome{}, errors.New("no market average to accept")
			}
			data.PreferredPrice = st.PriceSuggestion.PricePerKg.Average
		}
		return e.confirm(st, data), nil
	case dictionary.No, dictionary.Adjust:
		next := settle(st, types.StageAskingPricePreference)
		next.CollectedData.UseMarketPrice = false
		return outcome{state: next, key: templates.AskPrice}, nil
	default:
		if dictionary.WantsMarketPrice(utterance) && st.PriceSuggestion != nil {
			data := st.CollectedData
			data.PreferredPrice = st.PriceSuggestion.PricePerKg.Average
			data.UseMarketPrice = true
			return e.confirm(st, data), nil
		}
		return outcome{state: settle(st, st.Stage), key: templates.MarketPrices, notUnderstood: true}, nil
	}
}

func (e *Engine) confirm(st types.ConversationState, data types.CollectedData) outcome {
	next := settle(st, types.StageConfirmingListing)
	next.CollectedData = data
	return outcome{state: next, key: templates.ConfirmListing}
}

func (e *Engine) confirmListing(ctx context.Context, st types.ConversationState, utterance string) (outcome, error) {
	ext := e.extractor.Extract(ctx, utterance, st.Language)
	if price, ok := statedPrice(ext, utterance, st.CollectedData.QuantityKg); ok {
		data := st.CollectedData
		data.PreferredPrice = price
		data.UseMarketPrice = false
		return e.confirm(st, data), nil
	}

	switch dictionary.DetectConfirmation(utterance) {
	case dictionary.Yes:
		next := settle(st, types.StageBroadcasting)
		if next.CatalogItem == nil {
			item, err := e.catalog.Build(st.CollectedData, st.CollectedData.PreferredPrice)
			if err != nil {
				return outcome{}, fmt.Errorf("build listing: %w", err)
			}
			next.CatalogItem = &item
			metrics.CatalogItemBuilt()
			e.log.WithFields(logrus.Fields{
				"listing_id": item.ID,
				"commodity":  item.Commodity,
				"quantity":   item.Quantity.Value,
				"price":      item.Price.Value,
			}).Info("listing built")
		}
		return outcome{state: next, key: templates.Broadcasting}, nil
	case dictionary.No:
		// The draft is abandoned but its fields stay for the next attempt.
		return outcome{state: settle(st, types.StageGreeting), key: templates.ListingDiscarded}, nil
	case dictionary.Adjust:
		next := settle(st, types.StageAskingPricePreference)
		next.CollectedData.UseMarketPrice = false
		return outcome{state: next, key: templates.AskPrice}, nil
	default:
		return outcome{state: settle(st, st.Stage), key: templates.ConfirmListing, notUnderstood: true}, nil
	}
}

func (e *Engine) broadcast(_ context.Context, st types.ConversationState, _ string) (outcome, error) {
	if st.CatalogItem == nil {
		return outcome{}, errors.New("no listing to broadcast")
	}
	return outcome{state: settle(st, types.StageSuccess), key: templates.Success}, nil
}

// resume hands the utterance to the stage the fault interrupted.
func (e *Engine) resume(ctx context.Context, st types.ConversationState, utterance string) (outcome, error) {
	target := st.ResumeStage
	if !target.Valid() || target == types.StageError {
		target = types.StageGreeting
	}
	h, ok := e.handlers[target]
	if !ok {
		return outcome{}, fmt.Errorf("cannot resume to %q", target)
	}
	st.Stage = target
	return h(ctx, st, utterance)
}

// statedPrice returns the per-kg price an answer names, either through
// extraction or as a bare figure taken as rupees per kg.
func statedPrice(ext types.Extraction, utterance string, quantityKg float64) (float64, bool) {
	if ext.Price > 0 {
		q := quantityKg
		if ext.Quantity > 0 {
			if kg, err := normalize.QuantityKg(ext.Quantity, ext.QuantityUnit); err == nil {
				q = kg
			}
		}
		if p, err := normalize.PricePerKg(ext.Price, ext.PriceUnit, q); err == nil && p > 0 {
			return p, true
		}
		return 0, false
	}
	if ext.Quantity > 0 {
		return 0, false
	}
	if n, ok := dictionary.Number(utterance); ok {
		return n, true
	}
	return 0, false
}
