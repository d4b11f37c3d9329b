// Package app wires configuration into a ready dialogue engine and session
// store. Both the HTTP service and the chat REPL start from here.
package app

import (
	"context"
	"fmt"

	"voice-listing-go/internal/cache"
	"voice-listing-go/internal/catalog"
	"voice-listing-go/internal/config"
	"voice-listing-go/internal/dialogue"
	"voice-listing-go/internal/dictionary"
	"voice-listing-go/internal/extractor"
	"voice-listing-go/internal/language"
	"voice-listing-go/internal/llm"
	"voice-listing-go/internal/logger"
	"voice-listing-go/internal/pricing"
	"voice-listing-go/internal/responder"
	"voice-listing-go/internal/retry"
	"voice-listing-go/internal/session"
	"voice-listing-go/internal/types"
)

const (
	extractionCacheSize  = 2048
	translationCacheSize = 1024
	priceCacheSize       = 512
	sessionCacheSize     = 10000
)

type App struct {
	Engine     *dialogue.Engine
	Store      session.Store
	Translator *extractor.Translator

	closers []func() error
}

// Build assembles the application. A missing or rejected model key is not an
// error: the service runs on the dictionary and templates instead.
func Build(ctx context.Context, cfg config.Config, log *logger.Logger) (*App, error) {
	a := &App{}

	var matcherOpts []dictionary.Option
	if cfg.DictionaryPath != "" {
		ext, err := dictionary.LoadExtensions(cfg.DictionaryPath)
		if err != nil {
			return nil, fmt.Errorf("dictionary extensions: %w", err)
		}
		log.WithField("path", cfg.DictionaryPath).
			WithField("commodities", len(ext.Commodities)).
			Info("dictionary extensions loaded")
		matcherOpts = append(matcherOpts, dictionary.WithExtensions(ext))
	}
	matcher := dictionary.NewMatcher(matcherOpts...)

	var gen *llm.Gemini
	if cfg.LLMEnabled() {
		g, err := llm.NewGemini(ctx, cfg.LLM.APIKey, cfg.LLM.Model)
		if err != nil {
			log.WithError(err).Warn("model unavailable, using dictionary and templates")
		} else {
			gen = g
			log.WithField("model", cfg.LLM.Model).Info("model enabled")
		}
	} else {
		log.Info("model disabled, using dictionary and templates")
	}

	policy := retry.Policy{MaxAttempts: cfg.Retry.MaxAttempts, Backoff: retry.Exponential(cfg.Retry.BaseDelay)}
	exOpts := []extractor.Option{extractor.WithLogger(log.Component("extractor"))}
	var textGen llm.TextGenerator
	if gen != nil {
		translations, err := cache.NewTTL[string, string](translationCacheSize, cfg.ExtractionCacheTTL)
		if err != nil {
			return nil, err
		}
		a.Translator = extractor.NewTranslator(gen, policy, translations, log.Component("translator"))

		extractions, err := cache.NewTTL[string, types.Extraction](extractionCacheSize, cfg.ExtractionCacheTTL)
		if err != nil {
			return nil, err
		}
		exOpts = append(exOpts,
			extractor.WithInference(gen),
			extractor.WithTranslator(a.Translator),
			extractor.WithCache(extractions),
		)
		if cfg.LLM.NaturalResponses {
			textGen = gen
		}
	}
	ex := extractor.New(matcher, exOpts...)

	book := pricing.StaticBook()
	if cfg.PriceSheetPath != "" {
		b, err := pricing.LoadSheet(cfg.PriceSheetPath)
		if err != nil {
			return nil, fmt.Errorf("price sheet: %w", err)
		}
		log.WithField("path", cfg.PriceSheetPath).WithField("quotes", b.Len()).Info("price sheet loaded")
		book = b
	}
	priceCache, err := cache.NewTTL[string, types.PriceSuggestion](priceCacheSize, cfg.PriceCacheTTL)
	if err != nil {
		return nil, err
	}
	prices := pricing.NewService(book, priceCache, log.Component("pricing"))

	a.Engine = dialogue.New(ex,
		dialogue.WithPrices(prices),
		dialogue.WithResponder(responder.New(textGen, log.Component("responder"))),
		dialogue.WithCatalog(catalog.NewBuilder(catalog.WithLogisticsProvider(cfg.LogisticsProvider))),
		dialogue.WithLogger(log.Component("dialogue")),
	)

	if a.Store, err = buildStore(ctx, cfg.Session, a); err != nil {
		return nil, err
	}
	log.WithField("store", cfg.Session.Store).Info("session store ready")
	return a, nil
}

func buildStore(ctx context.Context, cfg config.SessionConfig, a *App) (session.Store, error) {
	switch cfg.Store {
	case "", "memory":
		return session.NewMemoryStore(sessionCacheSize, cfg.TTL)
	case "redis":
		cli, err := session.Dial(ctx, cfg.RedisURL, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, cli.Close)
		return session.NewRedisStore(cli, cfg.TTL), nil
	default:
		return nil, fmt.Errorf("unknown session store %q", cfg.Store)
	}
}

// DefaultLanguage resolves the configured language code, falling back to English.
func DefaultLanguage(cfg config.Config) types.LanguageConfig {
	if l, ok := language.ByCode(cfg.DefaultLanguage); ok {
		return l
	}
	return language.Default()
}

func (a *App) Close() error {
	var first error
	for _, c := range a.closers {
		if err := c(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
