package dictionary

import (
	"regexp"
	"strconv"
	"strings"

	"voice-listing-go/internal/normalize"
)

const (
	numberPattern   = `(\d+(?:,\d{2,3})*(?:\.\d+)?)`
	currencyPattern = `(?:rs\.?|₹|inr|rupees?|rupaye|rupaiye|rupiya|रुपये|रुपए|रुपया|रु\.?)`
	unitPattern     = `(kgs?|kilos?|kilograms?|किलो|quintals?|qtl|kuintal|kwintal|क्विंटल|tonnes?|tons?|टन)`
	boundaryBefore  = `(?:^|[^\p{L}\p{M}\p{N}])`
	boundaryAfter   = `(?:[^\p{L}\p{M}]|$)`
)

var (
	pricePrefixRe = regexp.MustCompile(boundaryBefore + currencyPattern + `\s*` + numberPattern)
	priceSuffixRe = regexp.MustCompile(numberPattern + `\s*` + currencyPattern + boundaryAfter)
	priceCueRe    = regexp.MustCompile(boundaryBefore + `(?:at|@|rate|price|bhav|bhaav|daam|dam|भाव|दाम|दर)\s*(?:of\s*|is\s*|hai\s*)?(?:rs\.?|₹)?\s*` + numberPattern)
	priceRateRe   = regexp.MustCompile(boundaryBefore + numberPattern + `\s*(?:/|per|prati|प्रति)\s*` + unitPattern + boundaryAfter)
	priceUnitRe   = regexp.MustCompile(`^\s*(?:/|per|prati|a|ka|ki|ke|का|की|के|प्रति)?\s*(?:` + unitPattern + `|(total|kul|कुल))` + boundaryAfter)
	quantityRe    = regexp.MustCompile(numberPattern + `\s*` + unitPattern + boundaryAfter)
	totalLeadRe   = regexp.MustCompile(boundaryBefore + `(?:total|kul|कुल)\s*(?:price\s*|amount\s*|rate\s*|of\s*|is\s*|hai\s*|:\s*)*(?:rs\.?|₹)?\s*$`)
)

type amount struct {
	value      float64
	unit       string
	start, end int
}

// findPrice returns the earliest price mention, with its unit when one follows.
// Unit is empty when the seller did not say.
func findPrice(text string) (amount, bool) {
	var best *amount
	for _, re := range []*regexp.Regexp{pricePrefixRe, priceSuffixRe, priceCueRe, priceRateRe} {
		loc := re.FindStringSubmatchIndex(text)
		if loc == nil {
			continue
		}
		v, ok := parseNumber(text[loc[2]:loc[3]])
		if !ok || v <= 0 {
			continue
		}
		if best != nil && loc[0] >= best.start {
			continue
		}
		end := loc[1]
		if re == priceRateRe {
			// The unit is read below, like any other trailing unit.
			end = loc[3]
		}
		best = &amount{value: v, start: loc[0], end: end}
	}
	if best == nil {
		return amount{}, false
	}
	if u := priceUnitRe.FindStringSubmatchIndex(text[best.end:]); u != nil {
		raw := ""
		switch {
		case u[2] >= 0:
			raw = text[best.end+u[2] : best.end+u[3]]
		case u[4] >= 0:
			raw = normalize.UnitTotal
		}
		if unit, err := normalize.Unit(raw); err == nil {
			best.unit = unit
			best.end += u[1]
		}
	}
	if best.unit == "" {
		if t := totalLeadRe.FindStringIndex(text[:best.start]); t != nil {
			best.unit = normalize.UnitTotal
			best.start = t[0]
		}
	}
	return *best, true
}

func findQuantity(text string) (amount, bool) {
	loc := quantityRe.FindStringSubmatchIndex(text)
	if loc == nil {
		return amount{}, false
	}
	v, ok := parseNumber(text[loc[2]:loc[3]])
	if !ok || v <= 0 {
		return amount{}, false
	}
	unit, err := normalize.Unit(text[loc[4]:loc[5]])
	if err != nil {
		return amount{}, false
	}
	return amount{value: v, unit: unit, start: loc[0], end: loc[1]}, true
}

func parseNumber(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

var bareNumberRe = regexp.MustCompile(boundaryBefore + numberPattern + boundaryAfter)

// Number returns the first number in an answer that is just a figure, like "500"
// to "how much do you have?".
func Number(utterance string) (float64, bool) {
	text := prepare(utterance)
	loc := bareNumberRe.FindStringSubmatchIndex(text)
	if loc == nil {
		return 0, false
	}
	v, ok := parseNumber(text[loc[2]:loc[3]])
	return v, ok && v > 0
}
