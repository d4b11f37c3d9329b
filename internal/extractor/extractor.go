// Package extractor turns one seller utterance into listing fields. A model does
// the work when one is configured; the keyword dictionary covers everything else.
package extractor

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"voice-listing-go/internal/cache"
	"voice-listing-go/internal/dictionary"
	"voice-listing-go/internal/llm"
	"voice-listing-go/internal/metrics"
	"voice-listing-go/internal/normalize"
	"voice-listing-go/internal/types"
)

type Extractor struct {
	inference  llm.StructuredInference
	matcher    *dictionary.Matcher
	translator *Translator
	cache      *cache.TTL[string, types.Extraction]
	log        *logrus.Entry
}

type Option func(*Extractor)

// WithInference enables model extraction. Without it the extractor is fully deterministic.
func WithInference(inf llm.StructuredInference) Option {
	return func(e *Extractor) { e.inference = inf }
}

// WithTranslator lets the extractor translate commodity names nobody else could map.
func WithTranslator(t *Translator) Option {
	return func(e *Extractor) { e.translator = t }
}

// WithCache remembers successful model extractions per language and utterance.
func WithCache(c *cache.TTL[string, types.Extraction]) Option {
	return func(e *Extractor) { e.cache = c }
}

func WithLogger(log *logrus.Entry) Option {
	return func(e *Extractor) { e.log = log }
}

func New(matcher *dictionary.Matcher, opts ...Option) *Extractor {
	if matcher == nil {
		matcher = dictionary.NewMatcher()
	}
	e := &Extractor{matcher: matcher, log: logrus.NewEntry(logrus.StandardLogger())}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract never fails: model problems fall through to the dictionary.
func (e *Extractor) Extract(ctx context.Context, utterance string, lang types.LanguageConfig) types.Extraction {
	utterance = strings.TrimSpace(utterance)
	if utterance == "" {
		return types.Extraction{}
	}
	if e.inference == nil {
		return e.fallback(utterance, "disabled", nil)
	}

	key := lang.Code + "|" + strings.ToLower(utterance)
	if e.cache != nil {
		if ext, ok := e.cache.Get(key); ok {
			return ext
		}
	}

	ext, err := e.infer(ctx, utterance, lang)
	if err != nil {
		return e.fallback(utterance, "error", err)
	}
	if !ext.Understood && ext.CanonicalCommodity() == "" {
		return e.fallback(utterance, "not_understood", nil)
	}

	// The dictionary fills whatever the model left out.
	ext = supplement(ext, e.matcher.Extract(utterance))
	if ext.Commodity != "" && ext.CommodityEnglish == "" {
		ext.CommodityEnglish = e.canonicalCommodity(ctx, ext.Commodity, lang)
	}
	ext = finish(ext)

	if e.cache != nil {
		e.cache.Set(key, ext)
	}
	return ext
}

func (e *Extractor) infer(ctx context.Context, utterance string, lang types.LanguageConfig) (types.Extraction, error) {
	started := time.Now()
	raw, err := e.inference.Infer(ctx, llm.Request{
		System: systemPrompt,
		Prompt: buildPrompt(utterance, lang),
		Schema: listingSchema,
	})
	if err != nil {
		return types.Extraction{}, fmt.Errorf("infer: %w", err)
	}
	ext, err := llm.Decode[types.Extraction](raw)
	if err != nil {
		return types.Extraction{}, err
	}
	e.log.WithFields(logrus.Fields{
		"commodity":    ext.CanonicalCommodity(),
		"understood":   ext.Understood,
		"has_all_info": ext.HasAllInfo,
		"duration_ms":  time.Since(started).Milliseconds(),
	}).Debug("model extraction")
	return sanitize(ext, e.log), nil
}

func (e *Extractor) fallback(utterance, reason string, err error) types.Extraction {
	metrics.ExtractionFallback(reason)
	entry := e.log.WithField("reason", reason)
	if err != nil {
		entry = entry.WithField("error", err.Error())
	}
	if reason == "disabled" {
		entry.Debug("dictionary extraction")
	} else {
		entry.Warn("model extraction unusable, using dictionary")
	}
	return finish(e.matcher.Extract(utterance))
}

// canonicalCommodity maps a local commodity name to English: dictionary first,
// then translation. An untranslatable name stays as spoken.
func (e *Extractor) canonicalCommodity(ctx context.Context, name string, lang types.LanguageConfig) string {
	if c, ok := e.matcher.CanonicalCommodity(name); ok {
		return c
	}
	if e.translator != nil {
		if out, ok := e.translator.ToEnglish(ctx, name, lang); ok {
			return out
		}
	}
	return name
}

// sanitize drops values the rest of the pipeline cannot interpret.
func sanitize(ext types.Extraction, log *logrus.Entry) types.Extraction {
	if ext.Quantity > 0 {
		u, err := normalize.Unit(ext.QuantityUnit)
		if err != nil || u == normalize.UnitTotal {
			log.WithField("unit", ext.QuantityUnit).Warn("dropping quantity with unusable unit")
			ext.Quantity, ext.QuantityUnit = 0, ""
		} else {
			ext.QuantityUnit = u
		}
	} else {
		ext.Quantity, ext.QuantityUnit = 0, ""
	}
	if ext.Price > 0 {
		if ext.PriceUnit == "" {
			ext.PriceUnit = normalize.DefaultPriceUnit(ext.QuantityUnit)
		} else if u, err := normalize.Unit(ext.PriceUnit); err != nil {
			log.WithField("unit", ext.PriceUnit).Warn("dropping price with unusable unit")
			ext.Price, ext.PriceUnit = 0, ""
		} else {
			ext.PriceUnit = u
		}
	} else {
		ext.Price, ext.PriceUnit = 0, ""
	}
	if ext.Quality != "" {
		if g, ok := normalize.Grade(ext.Quality); ok {
			ext.Quality = string(g)
		} else {
			ext.Quality = ""
		}
	}
	ext.Commodity = strings.TrimSpace(ext.Commodity)
	ext.CommodityEnglish = strings.TrimSpace(ext.CommodityEnglish)
	ext.Location = strings.TrimSpace(ext.Location)
	return ext
}

// supplement fills fields missing from primary with those found in secondary.
func supplement(primary, secondary types.Extraction) types.Extraction {
	if primary.CanonicalCommodity() == "" {
		primary.Commodity = secondary.Commodity
		primary.CommodityEnglish = secondary.CommodityEnglish
	}
	if primary.Quantity <= 0 && secondary.Quantity > 0 {
		primary.Quantity, primary.QuantityUnit = secondary.Quantity, secondary.QuantityUnit
	}
	if primary.Price <= 0 && secondary.Price > 0 {
		primary.Price, primary.PriceUnit = secondary.Price, secondary.PriceUnit
	}
	if primary.Quality == "" {
		primary.Quality = secondary.Quality
	}
	if primary.Location == "" {
		primary.Location = secondary.Location
	}
	primary.UseMarketPrice = primary.UseMarketPrice || secondary.UseMarketPrice
	return primary
}

// finish recomputes both confidence flags from what was actually recovered.
func finish(ext types.Extraction) types.Extraction {
	ext.Understood = !ext.Empty()
	ext.HasAllInfo = ext.CanonicalCommodity() != "" && ext.Quantity > 0 && ext.Price > 0
	return ext
}
