package extractor

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"voice-listing-go/internal/cache"
	"voice-listing-go/internal/llm"
	"voice-listing-go/internal/retry"
	"voice-listing-go/internal/types"
)

// Translator renders short seller phrases in English.
type Translator struct {
	gen   llm.TextGenerator
	cache *cache.TTL[string, string]
	log   *logrus.Entry
}

// NewTranslator retries gen under policy. cache may be nil.
func NewTranslator(gen llm.TextGenerator, policy retry.Policy, c *cache.TTL[string, string], log *logrus.Entry) *Translator {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	t := &Translator{cache: c, log: log}
	if gen != nil {
		policy.Notify = func(err error, wait time.Duration) {
			log.WithError(err).WithField("wait", wait.String()).Warn("translation failed, retrying")
		}
		t.gen = llm.WithRetry(gen, policy)
	}
	return t
}

// ToEnglish returns the English rendering of text and whether a translation
// happened. English input, a missing generator and exhausted retries all return
// text unchanged.
func (t *Translator) ToEnglish(ctx context.Context, text string, lang types.LanguageConfig) (string, bool) {
	text = strings.TrimSpace(text)
	if text == "" || t == nil || t.gen == nil || lang.Code == "en" {
		return text, false
	}
	key := lang.Code + "|" + strings.ToLower(text)
	if t.cache != nil {
		if out, ok := t.cache.Get(key); ok {
			return out, true
		}
	}

	prompt := fmt.Sprintf("Translate this %s phrase to English. Reply with the translation only, no quotes.\n\n%s", lang.EnglishName, text)
	out, err := t.gen.GenerateText(ctx, prompt)
	out = strings.Trim(strings.TrimSpace(out), `"'`)
	if err != nil || out == "" {
		t.log.WithError(err).WithField("lang", lang.Code).Warn("translation unavailable, keeping original")
		return text, false
	}
	if t.cache != nil {
		t.cache.Set(key, out)
	}
	return out, true
}
