// Package dialogue runs one turn of the listing conversation: it dispatches on
// the current stage, merges what the seller said into the collected data,
// decides the next stage and produces the reply.
//
// A turn consumes a state and returns a new one; the input is never modified.
// ProcessInput never panics and never returns an error: faults become an
// error-stage reply and the next turn resumes where the fault happened.
package dialogue

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"voice-listing-go/internal/catalog"
	"voice-listing-go/internal/extractor"
	"voice-listing-go/internal/language"
	"voice-listing-go/internal/metrics"
	"voice-listing-go/internal/pricing"
	"voice-listing-go/internal/responder"
	"voice-listing-go/internal/templates"
	"voice-listing-go/internal/types"
)

type Extractor interface {
	Extract(ctx context.Context, utterance string, lang types.LanguageConfig) types.Extraction
}

type Responder interface {
	Respond(ctx context.Context, req responder.Request) types.Response
}

type CatalogBuilder interface {
	Build(d types.CollectedData, pricePerKg float64) (types.CatalogItem, error)
}

type Engine struct {
	extractor Extractor
	prices    pricing.Lookup
	responder Responder
	catalog   CatalogBuilder
	log       *logrus.Entry
	handlers  map[types.Stage]handler
}

type Option func(*Engine)

// WithPrices enables the market price comparison stage.
func WithPrices(l pricing.Lookup) Option {
	return func(e *Engine) { e.prices = l }
}

func WithResponder(r Responder) Option {
	return func(e *Engine) { e.responder = r }
}

func WithCatalog(b CatalogBuilder) Option {
	return func(e *Engine) { e.catalog = b }
}

func WithLogger(log *logrus.Entry) Option {
	return func(e *Engine) { e.log = log }
}

func New(ex Extractor, opts ...Option) *Engine {
	e := &Engine{
		extractor: ex,
		log:       logrus.NewEntry(logrus.StandardLogger()),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.extractor == nil {
		e.extractor = extractor.New(nil, extractor.WithLogger(e.log))
	}
	if e.responder == nil {
		e.responder = responder.New(nil, e.log)
	}
	if e.catalog == nil {
		e.catalog = catalog.NewBuilder()
	}
	e.handlers = map[types.Stage]handler{
		types.StageLanguageSelection:     e.selectLanguage,
		types.StageGreeting:              e.collect,
		types.StageAskingCommodity:       e.collect,
		types.StageAskingQuantity:        e.collect,
		types.StageAskingQuality:         e.collect,
		types.StageAskingPricePreference: e.collect,
		types.StageShowingMarketPrices:   e.reviewMarketPrices,
		types.StageConfirmingListing:     e.confirmListing,
		types.StageBroadcasting:          e.broadcast,
		types.StageSuccess:               e.broadcast,
		types.StageError:                 e.resume,
	}
	return e
}

// InitConversation starts a session in the given language at the greeting stage.
func (e *Engine) InitConversation(lang types.LanguageConfig) types.ConversationState {
	return types.ConversationState{Stage: types.StageGreeting, Language: lang}
}

// InitLanguageSelection starts a session that first asks for a language.
func (e *Engine) InitLanguageSelection() types.ConversationState {
	return types.ConversationState{Stage: types.StageLanguageSelection, Language: language.Default()}
}

// Opening is the first thing said to the seller in a new session.
func (e *Engine) Opening(st types.ConversationState) types.Response {
	if st.Stage == types.StageLanguageSelection {
		return types.Response{
			Text:            templates.Render(st.Language.Code, templates.ChooseLanguage, nil),
			Stage:           st.Stage,
			ExpectsResponse: true,
			Options:         responder.Options(st.Stage, st.Language.Code),
		}
	}
	return types.Response{Text: st.Language.Greeting, Stage: st.Stage, ExpectsResponse: true}
}

// ProcessInput advances the conversation by one seller utterance.
func (e *Engine) ProcessInput(ctx context.Context, st types.ConversationState, utterance string) (res types.TurnResult) {
	start := time.Now()
	log := e.log.WithField("stage", st.Stage)

	defer func() {
		if r := recover(); r != nil {
			res = e.fault(st, fmt.Errorf("panic in %s handler: %v", st.Stage, r))
		}
		metrics.TurnCompleted(string(res.State.Stage))
		log.WithFields(logrus.Fields{
			"next_stage":  res.State.Stage,
			"duration_ms": time.Since(start).Milliseconds(),
		}).Info("turn processed")
	}()

	if st.Language.Code == "" {
		st.Language = language.Default()
	}
	h, ok := e.handlers[st.Stage]
	if !ok {
		return e.fault(st, fmt.Errorf("unknown stage %q", st.Stage))
	}

	out, err := h(ctx, st, utterance)
	if err != nil {
		return e.fault(st, err)
	}
	if out.greeting {
		return types.TurnResult{Response: e.Opening(out.state), State: out.state}
	}
	resp := e.responder.Respond(ctx, responder.Request{
		Key:           out.key,
		From:          st.Stage,
		State:         out.state,
		NotUnderstood: out.notUnderstood,
		Utterance:     utterance,
	})
	return types.TurnResult{Response: resp, State: out.state}
}

// fault moves the session to the error stage, keeping everything collected so far.
func (e *Engine) fault(st types.ConversationState, err error) types.TurnResult {
	metrics.HandlerFault(string(st.Stage))
	e.log.WithError(err).WithField("stage", st.Stage).Error("stage handler fault")

	resume := st.Stage
	if resume == types.StageError {
		resume = st.ResumeStage
	}
	if !resume.Valid() || resume == types.StageError {
		resume = types.StageGreeting
	}
	next := st
	next.Stage = types.StageError
	next.ResumeStage = resume
	next.Error = err.Error()
	return types.TurnResult{
		Response: types.Response{
			Text:            templates.Render(st.Language.Code, templates.GenericError, nil),
			Stage:           types.StageError,
			ExpectsResponse: true,
		},
		State: next,
	}
}
