package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"voice-listing-go/internal/metrics"
)

const DefaultModel = "gemini-2.0-flash"

// Gemini implements StructuredInference and TextGenerator on the Gemini API.
type Gemini struct {
	cli         *genai.Client
	model       string
	temperature float32
	timeout     time.Duration
}

type GeminiOption func(*Gemini)

func WithTemperature(t float32) GeminiOption {
	return func(g *Gemini) { g.temperature = t }
}

// WithCallTimeout bounds every single model call.
func WithCallTimeout(d time.Duration) GeminiOption {
	return func(g *Gemini) { g.timeout = d }
}

func NewGemini(ctx context.Context, apiKey, model string, opts ...GeminiOption) (*Gemini, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrNotConfigured
	}
	if model == "" {
		model = DefaultModel
	}
	cli, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}
	g := &Gemini{cli: cli, model: model, temperature: 0.2, timeout: 12 * time.Second}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

func (g *Gemini) Infer(ctx context.Context, req Request) (json.RawMessage, error) {
	temp := float32(0)
	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   toGenAISchema(req.Schema),
		Temperature:      &temp,
	}
	if req.System != "" {
		cfg.SystemInstruction = genai.NewContentFromText(req.System, genai.RoleUser)
	}
	txt, err := g.generate(ctx, "infer", req.Prompt, cfg)
	if err != nil {
		return nil, err
	}
	s := extractJSON(txt)
	if s == "" {
		return nil, fmt.Errorf("%w: no JSON object in %q", ErrEmptyResponse, truncate(txt, 120))
	}
	return json.RawMessage(s), nil
}

func (g *Gemini) GenerateText(ctx context.Context, prompt string) (string, error) {
	temp := g.temperature
	txt, err := g.generate(ctx, "generate", prompt, &genai.GenerateContentConfig{Temperature: &temp})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(txt), nil
}

func (g *Gemini) generate(ctx context.Context, op, prompt string, cfg *genai.GenerateContentConfig) (txt string, err error) {
	started := time.Now()
	defer func() { metrics.ObserveLLMCall(op, started, err == nil) }()

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}
	resp, err := g.cli.Models.GenerateContent(ctx, g.model,
		[]*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)},
		cfg,
	)
	if err != nil {
		return "", fmt.Errorf("gemini %s: %w", op, err)
	}
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", ErrEmptyResponse
	}
	var b strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		if p != nil {
			b.WriteString(p.Text)
		}
	}
	if strings.TrimSpace(b.String()) == "" {
		return "", ErrEmptyResponse
	}
	return b.String(), nil
}

func toGenAISchema(s Schema) *genai.Schema {
	if len(s.Fields) == 0 {
		return nil
	}
	props := make(map[string]*genai.Schema, len(s.Fields))
	order := make([]string, 0, len(s.Fields))
	for _, f := range s.Fields {
		props[f.Name] = &genai.Schema{
			Type:        genaiType(f.Type),
			Description: f.Description,
			Enum:        f.Enum,
		}
		order = append(order, f.Name)
	}
	return &genai.Schema{
		Type:             genai.TypeObject,
		Title:            s.Name,
		Description:      s.Description,
		Properties:       props,
		PropertyOrdering: order,
		Required:         s.Required,
	}
}

func genaiType(t FieldType) genai.Type {
	switch t {
	case TypeNumber:
		return genai.TypeNumber
	case TypeBoolean:
		return genai.TypeBoolean
	default:
		return genai.TypeString
	}
}
