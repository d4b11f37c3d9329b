package types

import "time"

// Stage is a step of the listing dialogue.
type Stage string

const (
	StageLanguageSelection     Stage = "language_selection"
	StageGreeting              Stage = "greeting"
	StageAskingCommodity       Stage = "asking_commodity"
	StageAskingQuantity        Stage = "asking_quantity"
	StageAskingQuality         Stage = "asking_quality"
	StageAskingPricePreference Stage = "asking_price_preference"
	StageShowingMarketPrices   Stage = "showing_market_prices"
	StageConfirmingListing     Stage = "confirming_listing"
	StageBroadcasting          Stage = "broadcasting"
	StageSuccess               Stage = "success"
	StageError                 Stage = "error"
)

var stages = []Stage{
	StageLanguageSelection,
	StageGreeting,
	StageAskingCommodity,
	StageAskingQuantity,
	StageAskingQuality,
	StageAskingPricePreference,
	StageShowingMarketPrices,
	StageConfirmingListing,
	StageBroadcasting,
	StageSuccess,
	StageError,
}

// Stages returns every dialogue stage in flow order.
func Stages() []Stage {
	out := make([]Stage, len(stages))
	copy(out, stages)
	return out
}

func (s Stage) Valid() bool {
	for _, st := range stages {
		if st == s {
			return true
		}
	}
	return false
}

// Grade is the canonical quality of a lot.
type Grade string

const (
	GradePremium  Grade = "Premium"
	GradeA        Grade = "A"
	GradeB        Grade = "B"
	GradeStandard Grade = "Standard"
	GradeMixed    Grade = "Mixed"
)

func Grades() []Grade {
	return []Grade{GradePremium, GradeA, GradeB, GradeStandard, GradeMixed}
}

func (g Grade) Valid() bool {
	for _, v := range Grades() {
		if v == g {
			return true
		}
	}
	return false
}

type LanguageConfig struct {
	Code         string `json:"code"`
	Name         string `json:"name"`
	EnglishName  string `json:"englishName"`
	Greeting     string `json:"greeting"`
	Region       string `json:"region"`
	SpeechLocale string `json:"speechLocale"`
}

// CollectedData holds what the seller has told us so far. Zero values mean "not known yet".
type CollectedData struct {
	Commodity         string  `json:"commodity,omitempty"`
	QuantityKg        float64 `json:"quantityKg,omitempty"`
	Quality           Grade   `json:"quality,omitempty"`
	Location          string  `json:"location,omitempty"`
	PreferredPrice    float64 `json:"preferredPrice,omitempty"` // per kg
	UseMarketPrice    bool    `json:"useMarketPrice,omitempty"`
	CustomState       string  `json:"customState,omitempty"`
	CustomCity        string  `json:"customCity,omitempty"`
	CustomMandi       string  `json:"customMandi,omitempty"`
	UseCustomLocation bool    `json:"useCustomLocation,omitempty"`
}

type PriceRange struct {
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Average float64 `json:"average"`
}

type PriceSuggestion struct {
	PricePerKg PriceRange `json:"pricePerKg"`
	Market     string     `json:"market"`
	Trend      string     `json:"trend"`
	Advice     string     `json:"advice"`
}

type Amount struct {
	Value    float64 `json:"value"`
	Currency string  `json:"currency"`
	Unit     string  `json:"unit"`
}

type Quantity struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// CatalogItem is the listing handed to the marketplace validator.
type CatalogItem struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Commodity         string    `json:"commodity"`
	Grade             Grade     `json:"grade"`
	Location          string    `json:"location,omitempty"`
	Price             Amount    `json:"price"`
	Quantity          Quantity  `json:"quantity"`
	LogisticsProvider string    `json:"logisticsProvider"`
	CreatedAt         time.Time `json:"createdAt"`
}

// ConversationState is replaced, never mutated, on every turn.
// PriceSuggestion and CatalogItem are shared between states and must be treated as read-only.
type ConversationState struct {
	Stage           Stage            `json:"stage"`
	Language        LanguageConfig   `json:"language"`
	CollectedData   CollectedData    `json:"collectedData"`
	PriceSuggestion *PriceSuggestion `json:"priceSuggestion,omitempty"`
	CatalogItem     *CatalogItem     `json:"catalogItem,omitempty"`
	Error           string           `json:"error,omitempty"`
	ResumeStage     Stage            `json:"resumeStage,omitempty"`
}

type Response struct {
	Text            string           `json:"text"`
	Stage           Stage            `json:"stage"`
	ExpectsResponse bool             `json:"expectsResponse"`
	Options         []string         `json:"options,omitempty"`
	CatalogItem     *CatalogItem     `json:"catalogItem,omitempty"`
	PriceSuggestion *PriceSuggestion `json:"priceSuggestion,omitempty"`
}

type TurnResult struct {
	Response Response          `json:"response"`
	State    ConversationState `json:"newState"`
}
