// Package api exposes the listing conversation over HTTP. The server owns
// session storage; the dialogue engine itself stays stateless.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"voice-listing-go/internal/language"
	"voice-listing-go/internal/logger"
	"voice-listing-go/internal/session"
	"voice-listing-go/internal/types"
)

type Engine interface {
	InitConversation(lang types.LanguageConfig) types.ConversationState
	InitLanguageSelection() types.ConversationState
	Opening(st types.ConversationState) types.Response
	ProcessInput(ctx context.Context, st types.ConversationState, utterance string) types.TurnResult
}

type Translator interface {
	ToEnglish(ctx context.Context, text string, lang types.LanguageConfig) (string, bool)
}

type Server struct {
	engine      Engine
	store       session.Store
	translator  Translator
	log         *logger.Logger
	newID       func() string
	turnTimeout time.Duration
	metrics     http.Handler

	// turns of one session run one at a time
	locks keyedLocks
}

type Option func(*Server)

func WithTranslator(t Translator) Option {
	return func(s *Server) { s.translator = t }
}

func WithIDs(newID func() string) Option {
	return func(s *Server) { s.newID = newID }
}

func WithTurnTimeout(d time.Duration) Option {
	return func(s *Server) {
		if d > 0 {
			s.turnTimeout = d
		}
	}
}

// WithMetricsHandler replaces the default Prometheus handler on /metrics.
func WithMetricsHandler(h http.Handler) Option {
	return func(s *Server) { s.metrics = h }
}

func NewServer(engine Engine, store session.Store, log *logger.Logger, opts ...Option) *Server {
	s := &Server{
		engine:      engine,
		store:       store,
		log:         log,
		newID:       uuid.NewString,
		turnTimeout: 30 * time.Second,
		metrics:     promhttp.Handler(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(recoverer(s.log), requestLog(s.log))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", s.metrics)
	r.Get("/languages", s.handleLanguages)

	r.Group(func(r chi.Router) {
		r.Use(timeout(s.turnTimeout))
		r.Post("/conversations", s.handleCreate)
		r.Get("/conversations/{id}", s.handleGet)
		r.Delete("/conversations/{id}", s.handleDelete)
		r.Post("/conversations/{id}/turns", s.handleTurn)
		r.Post("/translate", s.handleTranslate)
	})
	return r
}

type createRequest struct {
	Language string `json:"language"`
}

type createResponse struct {
	SessionID string                  `json:"sessionId"`
	State     types.ConversationState `json:"state"`
	Greeting  types.Response          `json:"greeting"`
}

type turnRequest struct {
	Utterance string `json:"utterance"`
}

type turnResponse struct {
	Response types.Response          `json:"response"`
	State    types.ConversationState `json:"state"`
}

type translateRequest struct {
	Text     string `json:"text"`
	Language string `json:"language"`
}

type translateResponse struct {
	Text       string `json:"text"`
	Translated bool   `json:"translated"`
}

func (s *Server) handleLanguages(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"languages": language.All(), "default": language.DefaultCode})
}

// handleCreate starts a conversation. Without a language the seller is asked to pick one.
func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
	}

	var st types.ConversationState
	if code := strings.TrimSpace(req.Language); code == "" {
		st = s.engine.InitLanguageSelection()
	} else {
		l, ok := language.ByCode(code)
		if !ok {
			writeError(w, http.StatusBadRequest, "unsupported language: "+code)
			return
		}
		st = s.engine.InitConversation(l)
	}

	id := s.newID()
	reqLog := s.log.WithRequest(r).WithField("session_id", id)
	if err := s.store.Put(r.Context(), id, st); err != nil {
		reqLog.WithError(err).Error("failed to save session")
		writeError(w, http.StatusInternalServerError, "could not start conversation")
		return
	}
	reqLog.WithField("language", st.Language.Code).Info("conversation started")
	writeJSON(w, http.StatusCreated, createResponse{SessionID: id, State: st, Greeting: s.engine.Opening(st)})
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	st, ok := s.load(w, r, id)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.store.Delete(r.Context(), id); err != nil {
		s.log.WithRequest(r).WithError(err).Error("failed to delete session")
		writeError(w, http.StatusInternalServerError, "could not delete conversation")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleTurn(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req turnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	release := s.locks.acquire(id)
	defer release()

	st, ok := s.load(w, r, id)
	if !ok {
		return
	}
	res := s.engine.ProcessInput(r.Context(), st, req.Utterance)

	reqLog := s.log.WithRequest(r).WithField("session_id", id)
	if err := s.store.Put(r.Context(), id, res.State); err != nil {
		reqLog.WithError(err).Error("failed to save session")
		writeError(w, http.StatusInternalServerError, "could not save conversation")
		return
	}
	reqLog.WithField("stage", res.State.Stage).Info("turn handled")
	writeJSON(w, http.StatusOK, turnResponse{Response: res.Response, State: res.State})
}

func (s *Server) handleTranslate(w http.ResponseWriter, r *http.Request) {
	var req translateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Text) == "" {
		writeError(w, http.StatusBadRequest, "text is required")
		return
	}
	l, ok := language.ByCode(req.Language)
	if !ok {
		writeError(w, http.StatusBadRequest, "unsupported language: "+req.Language)
		return
	}
	if s.translator == nil {
		writeJSON(w, http.StatusOK, translateResponse{Text: req.Text})
		return
	}
	out, translated := s.translator.ToEnglish(r.Context(), req.Text, l)
	writeJSON(w, http.StatusOK, translateResponse{Text: out, Translated: translated})
}

func (s *Server) load(w http.ResponseWriter, r *http.Request, id string) (types.ConversationState, bool) {
	st, err := s.store.Get(r.Context(), id)
	switch {
	case errors.Is(err, session.ErrNotFound):
		writeError(w, http.StatusNotFound, "conversation not found")
		return st, false
	case err != nil:
		s.log.WithRequest(r).WithError(err).WithField("session_id", id).Error("failed to load session")
		writeError(w, http.StatusInternalServerError, "could not load conversation")
		return st, false
	}
	return st, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
