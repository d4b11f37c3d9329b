// Package dictionary is the deterministic keyword extractor used when structured
// inference is unavailable or unsure.
//
// Matching rules: case-insensitive; a key only matches where a word starts; the
// final word of a key may run on into a longer word (plurals, inflections) only
// when it has at least five runes; among all matching keys the longest wins and
// equal lengths resolve by table order.
package dictionary

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"voice-listing-go/internal/normalize"
	"voice-listing-go/internal/types"
)

const minInflectableRunes = 5

type Matcher struct {
	commodities []Entry
	locations   []Entry
	qualities   []Entry
}

type Option func(*Matcher)

// WithExtensions appends extra synonyms after the built-in tables.
func WithExtensions(t Tables) Option {
	return func(m *Matcher) {
		m.commodities = append(m.commodities, t.Commodities...)
		m.locations = append(m.locations, t.Locations...)
		m.qualities = append(m.qualities, t.Qualities...)
	}
}

func NewMatcher(opts ...Option) *Matcher {
	m := &Matcher{
		commodities: append([]Entry(nil), builtinCommodities...),
		locations:   append([]Entry(nil), builtinLocations...),
		qualities:   append([]Entry(nil), builtinQualities...),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Matcher) Commodity(text string) (Entry, bool) {
	return bestMatch(m.commodities, prepare(text))
}

func (m *Matcher) Location(text string) (Entry, bool) {
	return bestMatch(m.locations, prepare(text))
}

func (m *Matcher) Quality(text string) (types.Grade, bool) {
	e, ok := bestMatch(m.qualities, prepare(text))
	if !ok {
		return "", false
	}
	return types.Grade(e.Value), true
}

// CanonicalCommodity maps a commodity name in any supported language to English.
func (m *Matcher) CanonicalCommodity(name string) (string, bool) {
	e, ok := m.Commodity(name)
	if !ok {
		return "", false
	}
	return e.Value, true
}

// Extract pulls every field it can recognise out of one utterance.
func (m *Matcher) Extract(utterance string) types.Extraction {
	text := prepare(utterance)
	var ext types.Extraction

	if e, ok := bestMatch(m.commodities, text); ok {
		ext.Commodity = e.Key
		ext.CommodityEnglish = e.Value
	}
	if e, ok := bestMatch(m.locations, text); ok {
		ext.Location = e.Value
	}
	if e, ok := bestMatch(m.qualities, text); ok {
		ext.Quality = e.Value
	}

	rest := text
	if p, ok := findPrice(text); ok {
		ext.Price = p.value
		ext.PriceUnit = p.unit
		rest = text[:p.start] + strings.Repeat(" ", p.end-p.start) + text[p.end:]
	}
	if q, ok := findQuantity(rest); ok {
		ext.Quantity = q.value
		ext.QuantityUnit = q.unit
	}
	if ext.Price > 0 && ext.PriceUnit == "" {
		ext.PriceUnit = normalize.DefaultPriceUnit(ext.QuantityUnit)
	}
	ext.UseMarketPrice = WantsMarketPrice(text)

	ext.Understood = !ext.Empty()
	ext.HasAllInfo = ext.CommodityEnglish != "" && ext.Quantity > 0 && ext.Price > 0
	return ext
}

// prepare lower-cases and folds Indic digits to ASCII.
func prepare(s string) string {
	return strings.ToLower(foldDigits(s))
}

func foldDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) && r > '9' {
			if d := digitValue(r); d >= 0 {
				return '0' + rune(d)
			}
		}
		return r
	}, s)
}

// digitValue handles the decimal digit blocks used by Indian scripts.
func digitValue(r rune) int {
	for _, zero := range []rune{'०', '০', '੦', '૦', '୦', '௦', '౦', '೦', '൦'} {
		if r >= zero && r <= zero+9 {
			return int(r - zero)
		}
	}
	return -1
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsMark(r) || unicode.IsDigit(r)
}

func bestMatch(table []Entry, text string) (Entry, bool) {
	best := -1
	bestLen := 0
	for i, e := range table {
		key := strings.ToLower(strings.TrimSpace(e.Key))
		if key == "" || !containsKey(text, key) {
			continue
		}
		if n := utf8.RuneCountInString(key); n > bestLen {
			best, bestLen = i, n
		}
	}
	if best < 0 {
		return Entry{}, false
	}
	return table[best], true
}

func containsKey(text, key string) bool {
	needsEnd := utf8.RuneCountInString(lastWord(key)) < minInflectableRunes
	for offset := 0; offset <= len(text); {
		i := strings.Index(text[offset:], key)
		if i < 0 {
			return false
		}
		start := offset + i
		end := start + len(key)
		if atWordStart(text, start) && (!needsEnd || atWordEnd(text, end)) {
			return true
		}
		_, size := utf8.DecodeRuneInString(text[start:])
		offset = start + size
	}
	return false
}

func lastWord(key string) string {
	fields := strings.FieldsFunc(key, func(r rune) bool { return !isWordRune(r) })
	if len(fields) == 0 {
		return key
	}
	return fields[len(fields)-1]
}

func atWordStart(text string, i int) bool {
	if i == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(text[:i])
	return !isWordRune(r)
}

func atWordEnd(text string, i int) bool {
	if i >= len(text) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(text[i:])
	return !isWordRune(r)
}
