package types

// Extraction is what one utterance yielded, before unit normalization.
type Extraction struct {
	Commodity        string  `json:"commodity"`
	CommodityEnglish string  `json:"commodityEnglish"`
	Quantity         float64 `json:"quantity"`
	QuantityUnit     string  `json:"quantityUnit"` // kg | quintal | ton
	Price            float64 `json:"price"`
	PriceUnit        string  `json:"priceUnit"` // kg | quintal | ton | total
	Quality          string  `json:"quality"`
	Location         string  `json:"location"`
	CustomState      string  `json:"customState"`
	CustomCity       string  `json:"customCity"`
	CustomMandi      string  `json:"customMandi"`
	UseMarketPrice   bool    `json:"useMarketPrice"`
	Understood       bool    `json:"understood"`
	HasAllInfo       bool    `json:"hasAllInfo"`
}

// CanonicalCommodity prefers the English name.
func (e Extraction) CanonicalCommodity() string {
	if e.CommodityEnglish != "" {
		return e.CommodityEnglish
	}
	return e.Commodity
}

func (e Extraction) HasCustomLocation() bool {
	return e.CustomState != "" || e.CustomCity != "" || e.CustomMandi != ""
}

// Empty reports whether nothing usable was parsed.
func (e Extraction) Empty() bool {
	return e.Commodity == "" && e.CommodityEnglish == "" && e.Quantity <= 0 && e.Price <= 0 &&
		e.Quality == "" && e.Location == "" && !e.HasCustomLocation() && !e.UseMarketPrice
}
