package dictionary

import (
	"strings"
)

type Confirmation int

const (
	Unknown Confirmation = iota
	Yes
	No
	Adjust
)

func (c Confirmation) String() string {
	switch c {
	case Yes:
		return "yes"
	case No:
		return "no"
	case Adjust:
		return "adjust"
	default:
		return "unknown"
	}
}

var yesWords = wordSet(
	"yes", "yeah", "yep", "ok", "okay", "sure", "confirm", "correct", "right", "done", "proceed",
	"haan", "han", "ha", "haa", "haanji", "ji", "theek", "thik", "thick", "sahi", "bilkul", "chalega", "pakka",
	"हाँ", "हां", "हा", "जी", "ठीक", "सही", "बिल्कुल", "चलेगा", "होय", "हो", "बरोबर",
	"ஆம்", "சரி", "ஆமாம்", "అవును", "సరే", "হ্যাঁ", "হাঁ", "હા", "ಹೌದು",
)

var noWords = wordSet(
	"no", "nope", "nah", "cancel", "stop", "wrong", "dont", "don't",
	"nahi", "nahin", "nai", "na", "mat", "galat",
	"नहीं", "नही", "ना", "मत", "गलत", "नाही", "नको",
	"இல்லை", "வேண்டாம்", "కాదు", "వద్దు", "లేదు", "না", "ના", "ಇಲ್ಲ",
)

var adjustWords = wordSet(
	"change", "adjust", "modify", "edit", "update", "different", "less", "more", "increase", "decrease",
	"badlo", "badal", "badalna", "badlen", "badle", "badlein", "kam", "zyada", "jyada", "kamm",
	"बदलो", "बदल", "बदलें", "बदलना", "बदले", "कम", "ज्यादा", "ज़्यादा", "बदला",
	"மாற்று", "మార్చు",
)

var marketPricePhrases = []string{
	"market price", "market rate", "market bhav", "market ka bhav", "current rate", "current price",
	"bazaar bhav", "bazar bhav", "bazaar rate", "mandi bhav", "mandi rate", "mandi ka bhav", "aaj ka bhav",
	"jo bhav", "jo rate", "बाजार भाव", "बाज़ार भाव", "मंडी भाव", "आज का भाव", "बाजारभाव",
	"சந்தை விலை", "మార్కెట్ ధర",
}

var unsurePhrases = []string{
	"pata nahi", "pata nahin", "nahi pata", "malum nahi", "maloom nahi", "koi bhi", "don't know",
	"dont know", "not sure", "no idea", "whatever", "पता नहीं", "मालूम नहीं", "माहीत नाही", "कोई भी",
	"தெரியாது", "తెలియదు",
}

func wordSet(words ...string) map[string]bool {
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}

func tokens(text string) []string {
	return strings.FieldsFunc(prepare(text), func(r rune) bool {
		return !isWordRune(r) && r != '\''
	})
}

// DetectConfirmation classifies a reply to a yes/no question.
// A negative word wins over a positive one; change words win over both.
func DetectConfirmation(utterance string) Confirmation {
	var yes, no, adjust bool
	for _, t := range tokens(utterance) {
		switch {
		case adjustWords[t]:
			adjust = true
		case noWords[t]:
			no = true
		case yesWords[t]:
			yes = true
		}
	}
	switch {
	case adjust:
		return Adjust
	case no:
		return No
	case yes:
		return Yes
	default:
		return Unknown
	}
}

// WantsMarketPrice reports whether the seller asked to sell at the going rate.
func WantsMarketPrice(utterance string) bool {
	return containsAny(prepare(utterance), marketPricePhrases)
}

// IsUnsure reports "I don't know"-style answers.
func IsUnsure(utterance string) bool {
	return containsAny(prepare(utterance), unsurePhrases)
}

func containsAny(text string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(text, p) {
			return true
		}
	}
	return false
}
