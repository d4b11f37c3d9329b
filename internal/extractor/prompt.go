package extractor

import (
	"fmt"

	"voice-listing-go/internal/llm"
	"voice-listing-go/internal/types"
)

const systemPrompt = `You extract produce listings from what Indian farmers and traders say.
The seller may mix languages (Hindi, Marathi, Tamil, Telugu, English) and may give
several details at once. Return ONLY the JSON object described by the schema.

Rules:
- Use only what the seller said. Never invent numbers or places.
- "commodity" is the word the seller used; "commodityEnglish" is its common English
  plural name (pyaaz -> Onions, gehun -> Wheat).
- Quantities: unit is kg, quintal or ton. "kilo" is kg; "qtl" is quintal.
- Prices: unit is kg, quintal or ton when the seller said "per ..." or "a kilo";
  use "total" for a lump sum for the whole lot. Leave it empty if not said.
- Quality must be one of Premium, A, B, Standard, Mixed, or empty.
- Only set customState/customCity/customMandi when the seller names where to sell,
  separate from where the produce is.
- useMarketPrice is true when the seller wants to sell at the current market rate.
- understood is false when nothing about a listing was said.
- hasAllInfo is true only when commodity, quantity and price were ALL said.`

var listingSchema = llm.Schema{
	Name:        "listing_extraction",
	Description: "Fields of a produce listing found in one seller utterance.",
	Fields: []llm.Field{
		{Name: "commodity", Type: llm.TypeString, Description: "commodity as spoken"},
		{Name: "commodityEnglish", Type: llm.TypeString, Description: "English name of the commodity"},
		{Name: "quantity", Type: llm.TypeNumber},
		{Name: "quantityUnit", Type: llm.TypeString, Enum: []string{"kg", "quintal", "ton"}},
		{Name: "price", Type: llm.TypeNumber, Description: "price in rupees"},
		{Name: "priceUnit", Type: llm.TypeString, Enum: []string{"kg", "quintal", "ton", "total"}},
		{Name: "quality", Type: llm.TypeString, Enum: gradeNames()},
		{Name: "location", Type: llm.TypeString, Description: "where the produce is, as City, State"},
		{Name: "customState", Type: llm.TypeString},
		{Name: "customCity", Type: llm.TypeString},
		{Name: "customMandi", Type: llm.TypeString},
		{Name: "useMarketPrice", Type: llm.TypeBoolean},
		{Name: "understood", Type: llm.TypeBoolean},
		{Name: "hasAllInfo", Type: llm.TypeBoolean},
	},
	Required: []string{"understood", "hasAllInfo"},
}

func gradeNames() []string {
	var out []string
	for _, g := range types.Grades() {
		out = append(out, string(g))
	}
	return out
}

func buildPrompt(utterance string, lang types.LanguageConfig) string {
	return fmt.Sprintf("Seller language: %s (%s)\nSeller said: %q", lang.EnglishName, lang.Code, utterance)
}
