// Package responder writes the reply for a turn. With a text generator it asks
// for a short conversational reply; without one, or when generation fails, it
// renders the fixed template for the stage.
package responder

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"voice-listing-go/internal/language"
	"voice-listing-go/internal/llm"
	"voice-listing-go/internal/metrics"
	"voice-listing-go/internal/templates"
	"voice-listing-go/internal/types"
)

// Request describes one reply to produce.
type Request struct {
	Key   templates.MessageKey
	From  types.Stage
	State types.ConversationState
	// NotUnderstood prefixes the reply with an apology for not understanding.
	NotUnderstood bool
	Utterance     string
}

type Responder struct {
	gen llm.TextGenerator
	log *logrus.Entry
}

// New returns a template-only responder when gen is nil.
func New(gen llm.TextGenerator, log *logrus.Entry) *Responder {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Responder{gen: gen, log: log}
}

func (r *Responder) Respond(ctx context.Context, req Request) types.Response {
	st := req.State
	resp := types.Response{
		Stage:           st.Stage,
		ExpectsResponse: st.Stage != types.StageBroadcasting && st.Stage != types.StageSuccess,
		Options:         Options(st.Stage, st.Language.Code),
		CatalogItem:     st.CatalogItem,
		PriceSuggestion: st.PriceSuggestion,
	}

	fallback := Template(req)
	resp.Text = fallback
	if r.gen == nil || req.Key == templates.GenericError {
		return resp
	}

	text, err := r.gen.GenerateText(ctx, naturalPrompt(req, fallback))
	text = strings.TrimSpace(text)
	switch {
	case err != nil:
		metrics.GenerationFallback("error")
		r.log.WithError(err).WithField("stage", st.Stage).Warn("natural reply failed, using template")
	case text == "":
		metrics.GenerationFallback("empty")
		r.log.WithField("stage", st.Stage).Warn("natural reply empty, using template")
	default:
		resp.Text = text
	}
	return resp
}

// Template renders the fixed reply for a request.
func Template(req Request) string {
	code := req.State.Language.Code
	text := templates.Render(code, req.Key, Vars(req.State))
	if req.NotUnderstood {
		text = templates.Render(code, templates.NotUnderstood, nil) + " " + text
	}
	return text
}

// Vars exposes the state to templates.
func Vars(st types.ConversationState) templates.Vars {
	d := st.CollectedData
	v := templates.Vars{
		"commodity": d.Commodity,
		"quantity":  formatNumber(d.QuantityKg),
		"quality":   string(d.Quality),
		"price":     formatNumber(d.PreferredPrice),
	}
	if v["quality"] == "" {
		v["quality"] = string(types.GradeStandard)
	}
	if d.Location != "" {
		v["location"] = " (" + d.Location + ")"
	}
	if ps := st.PriceSuggestion; ps != nil {
		v["min"] = formatNumber(ps.PricePerKg.Min)
		v["max"] = formatNumber(ps.PricePerKg.Max)
		v["average"] = formatNumber(ps.PricePerKg.Average)
		v["market"] = ps.Market
		v["trend"] = ps.Trend
		v["advice"] = ps.Advice
		if d.PreferredPrice <= 0 {
			v["price"] = formatNumber(ps.PricePerKg.Average)
		}
	}
	if st.CatalogItem != nil {
		v["name"] = st.CatalogItem.Name
	}
	return v
}

// Options are the quick replies offered at a stage, in the session language.
func Options(stage types.Stage, code string) []string {
	set := templates.Lookup(code)
	opt := func(k templates.MessageKey) string { return set[k](nil) }
	switch stage {
	case types.StageLanguageSelection:
		var out []string
		for _, l := range language.All() {
			out = append(out, l.Name)
		}
		return out
	case types.StageAskingQuality:
		var out []string
		for _, g := range types.Grades() {
			out = append(out, string(g))
		}
		return append(out, opt(templates.OptionDontKnow))
	case types.StageAskingPricePreference:
		return []string{opt(templates.OptionMarketPrice)}
	case types.StageShowingMarketPrices:
		return []string{opt(templates.OptionYes), opt(templates.OptionChangePrice), opt(templates.OptionNo)}
	case types.StageConfirmingListing:
		return []string{opt(templates.OptionYes), opt(templates.OptionNo)}
	default:
		return nil
	}
}

func naturalPrompt(req Request, fallback string) string {
	st := req.State
	collected, _ := json.Marshal(st.CollectedData)

	var b strings.Builder
	b.WriteString("You are a friendly assistant helping an Indian farmer list produce for sale by voice.\n")
	fmt.Fprintf(&b, "Reply in %s (%s) only, in one to three short, warm, spoken-style sentences. No markdown, no lists.\n", st.Language.EnglishName, st.Language.Code)
	fmt.Fprintf(&b, "Conversation moved from stage %q to stage %q.\n", req.From, st.Stage)
	if req.Utterance != "" {
		fmt.Fprintf(&b, "The farmer just said: %q\n", req.Utterance)
	}
	fmt.Fprintf(&b, "Known so far (prices in rupees per kg, quantity in kg): %s\n", collected)
	if ps := st.PriceSuggestion; ps != nil {
		fmt.Fprintf(&b, "Market prices in %s: min ₹%s, max ₹%s, average ₹%s per kg, trend %s.\n",
			ps.Market, formatNumber(ps.PricePerKg.Min), formatNumber(ps.PricePerKg.Max), formatNumber(ps.PricePerKg.Average), ps.Trend)
	}
	if req.NotUnderstood {
		b.WriteString("You did not understand the farmer's last answer; say so gently.\n")
	}
	fmt.Fprintf(&b, "Your reply must convey the same thing as: %s\n", fallback)
	return b.String()
}

func formatNumber(v float64) string {
	if v <= 0 {
		return "0"
	}
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}
