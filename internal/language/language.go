// Package language lists the languages a seller can talk in.
package language

import (
	"strings"

	"voice-listing-go/internal/types"
)

const DefaultCode = "en"

var languages = []types.LanguageConfig{
	{Code: "en", Name: "English", EnglishName: "English", Greeting: "Hello! What would you like to sell today?", Region: "India", SpeechLocale: "en-IN"},
	{Code: "hi", Name: "हिन्दी", EnglishName: "Hindi", Greeting: "नमस्ते! आज आप क्या बेचना चाहते हैं?", Region: "North India", SpeechLocale: "hi-IN"},
	{Code: "mr", Name: "मराठी", EnglishName: "Marathi", Greeting: "नमस्कार! आज तुम्हाला काय विकायचे आहे?", Region: "Maharashtra", SpeechLocale: "mr-IN"},
	{Code: "ta", Name: "தமிழ்", EnglishName: "Tamil", Greeting: "வணக்கம்! இன்று நீங்கள் என்ன விற்க விரும்புகிறீர்கள்?", Region: "Tamil Nadu", SpeechLocale: "ta-IN"},
	{Code: "te", Name: "తెలుగు", EnglishName: "Telugu", Greeting: "నమస్కారం! ఈరోజు మీరు ఏమి అమ్మాలనుకుంటున్నారు?", Region: "Andhra Pradesh & Telangana", SpeechLocale: "te-IN"},
	{Code: "bn", Name: "বাংলা", EnglishName: "Bengali", Greeting: "নমস্কার! আজ আপনি কী বিক্রি করতে চান?", Region: "West Bengal", SpeechLocale: "bn-IN"},
	{Code: "gu", Name: "ગુજરાતી", EnglishName: "Gujarati", Greeting: "નમસ્તે! આજે તમે શું વેચવા માંગો છો?", Region: "Gujarat", SpeechLocale: "gu-IN"},
	{Code: "kn", Name: "ಕನ್ನಡ", EnglishName: "Kannada", Greeting: "ನಮಸ್ಕಾರ! ಇಂದು ನೀವು ಏನು ಮಾರಾಟ ಮಾಡಲು ಬಯಸುತ್ತೀರಿ?", Region: "Karnataka", SpeechLocale: "kn-IN"},
}

// All returns a copy of the supported languages in display order.
func All() []types.LanguageConfig {
	out := make([]types.LanguageConfig, len(languages))
	copy(out, languages)
	return out
}

func ByCode(code string) (types.LanguageConfig, bool) {
	code = strings.ToLower(strings.TrimSpace(code))
	if i := strings.IndexAny(code, "-_"); i > 0 {
		code = code[:i]
	}
	for _, l := range languages {
		if l.Code == code {
			return l, true
		}
	}
	return types.LanguageConfig{}, false
}

func Default() types.LanguageConfig {
	l, _ := ByCode(DefaultCode)
	return l
}

// Match finds the language a seller named, by code, English name or native name.
func Match(utterance string) (types.LanguageConfig, bool) {
	text := strings.ToLower(strings.TrimSpace(utterance))
	if text == "" {
		return types.LanguageConfig{}, false
	}
	if l, ok := ByCode(text); ok {
		return l, true
	}
	for _, l := range languages {
		if strings.Contains(text, strings.ToLower(l.EnglishName)) || strings.Contains(text, strings.ToLower(l.Name)) {
			return l, true
		}
	}
	// Common spoken spellings.
	for alias, code := range map[string]string{"hindee": "hi", "bangla": "bn", "telgu": "te", "tamizh": "ta", "angrezi": "en", "इंग्लिश": "en"} {
		if strings.Contains(text, alias) {
			return ByCode(code)
		}
	}
	return types.LanguageConfig{}, false
}
