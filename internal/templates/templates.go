// Package templates holds the fixed reply for every dialogue message in every
// supported locale. Replies are used whenever natural generation is off or fails.
package templates

import (
	"fmt"
	"sort"
	"strings"
)

type MessageKey int

const (
	ChooseLanguage MessageKey = iota
	AskCommodity
	AskQuantity
	AskQuality
	AskPrice
	MarketPrices
	MarketPricesUnavailable
	ConfirmListing
	ListingDiscarded
	Broadcasting
	Success
	NotUnderstood
	GenericError
	OptionYes
	OptionNo
	OptionChangePrice
	OptionMarketPrice
	OptionDontKnow

	keyCount
)

var keyNames = [...]string{
	ChooseLanguage:          "choose_language",
	AskCommodity:            "ask_commodity",
	AskQuantity:             "ask_quantity",
	AskQuality:              "ask_quality",
	AskPrice:                "ask_price",
	MarketPrices:            "market_prices",
	MarketPricesUnavailable: "market_prices_unavailable",
	ConfirmListing:          "confirm_listing",
	ListingDiscarded:        "listing_discarded",
	Broadcasting:            "broadcasting",
	Success:                 "success",
	NotUnderstood:           "not_understood",
	GenericError:            "generic_error",
	OptionYes:               "option_yes",
	OptionNo:                "option_no",
	OptionChangePrice:       "option_change_price",
	OptionMarketPrice:       "option_market_price",
	OptionDontKnow:          "option_dont_know",
}

func (k MessageKey) String() string {
	if k < 0 || k >= keyCount {
		return fmt.Sprintf("MessageKey(%d)", int(k))
	}
	return keyNames[k]
}

// Keys returns every message key.
func Keys() []MessageKey {
	out := make([]MessageKey, 0, keyCount)
	for k := MessageKey(0); k < keyCount; k++ {
		out = append(out, k)
	}
	return out
}

// Vars fills {name} placeholders.
type Vars map[string]string

type Template func(Vars) string

type Set map[MessageKey]Template

// tpl compiles a "{name}" template. Unknown placeholders render empty.
func tpl(text string) Template {
	return func(v Vars) string {
		var b strings.Builder
		rest := text
		for {
			open := strings.IndexByte(rest, '{')
			if open < 0 {
				b.WriteString(rest)
				break
			}
			end := strings.IndexByte(rest[open:], '}')
			if end < 0 {
				b.WriteString(rest)
				break
			}
			b.WriteString(rest[:open])
			b.WriteString(v[rest[open+1:open+end]])
			rest = rest[open+end+1:]
		}
		return b.String()
	}
}

const fallbackLocale = "en"

var locales = map[string]Set{
	"en": english,
	"hi": hindi,
	"mr": marathi,
	"ta": tamil,
	"te": telugu,
}

func init() {
	if err := Validate(); err != nil {
		panic(err)
	}
}

// Validate reports the first locale missing a message key.
func Validate() error {
	codes := make([]string, 0, len(locales))
	for code := range locales {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	for _, code := range codes {
		set := locales[code]
		for _, k := range Keys() {
			if set[k] == nil {
				return fmt.Errorf("templates: locale %q has no %s message", code, k)
			}
		}
	}
	return nil
}

// Lookup returns the template set for a language code. A language without its
// own set gets the English set in full.
func Lookup(code string) Set {
	if set, ok := locales[code]; ok {
		return set
	}
	return locales[fallbackLocale]
}

// Has reports whether the language has its own templates.
func Has(code string) bool {
	_, ok := locales[code]
	return ok
}

func Render(code string, key MessageKey, v Vars) string {
	return Lookup(code)[key](v)
}
