package pricing

// Typical modal mandi rates (rupees per quintal), used when no price sheet is configured.
var staticQuotes = []Quote{
	{Commodity: "Onions", Market: "Lasalgaon", State: "Maharashtra", Min: 1200, Max: 2200, Modal: 1750, Trend: TrendRising},
	{Commodity: "Onions", Market: "Nasik", State: "Maharashtra", Min: 1150, Max: 2100, Modal: 1700, Trend: TrendRising},
	{Commodity: "Onions", Market: "Azadpur", State: "Delhi", Min: 1400, Max: 2500, Modal: 1950, Trend: TrendStable},
	{Commodity: "Tomatoes", Market: "Pune", State: "Maharashtra", Min: 800, Max: 2000, Modal: 1400, Trend: TrendFalling},
	{Commodity: "Tomatoes", Market: "Koyambedu", State: "Tamil Nadu", Min: 900, Max: 2200, Modal: 1500, Trend: TrendStable},
	{Commodity: "Potatoes", Market: "Agra", State: "Uttar Pradesh", Min: 1000, Max: 1600, Modal: 1300, Trend: TrendStable},
	{Commodity: "Wheat", Market: "Indore", State: "Madhya Pradesh", Min: 2350, Max: 2700, Modal: 2500, Trend: TrendStable},
	{Commodity: "Wheat", Market: "Khanna", State: "Punjab", Min: 2425, Max: 2600, Modal: 2450, Trend: TrendStable},
	{Commodity: "Rice", Market: "Karnal", State: "Haryana", Min: 3000, Max: 4200, Modal: 3600, Trend: TrendRising},
	{Commodity: "Paddy", Market: "Karnal", State: "Haryana", Min: 2183, Max: 2400, Modal: 2300, Trend: TrendStable},
	{Commodity: "Maize", Market: "Guntur", State: "Andhra Pradesh", Min: 1900, Max: 2250, Modal: 2100, Trend: TrendFalling},
	{Commodity: "Chickpeas", Market: "Indore", State: "Madhya Pradesh", Min: 5200, Max: 5900, Modal: 5600, Trend: TrendRising},
	{Commodity: "Pigeon Peas", Market: "Nagpur", State: "Maharashtra", Min: 6800, Max: 7800, Modal: 7300, Trend: TrendFalling},
	{Commodity: "Green Gram", Market: "Jaipur", State: "Rajasthan", Min: 7000, Max: 8200, Modal: 7600, Trend: TrendStable},
	{Commodity: "Groundnut", Market: "Rajkot", State: "Gujarat", Min: 5200, Max: 6400, Modal: 5800, Trend: TrendStable},
	{Commodity: "Soybean", Market: "Indore", State: "Madhya Pradesh", Min: 4100, Max: 4600, Modal: 4400, Trend: TrendFalling},
	{Commodity: "Cotton", Market: "Rajkot", State: "Gujarat", Min: 6800, Max: 7600, Modal: 7200, Trend: TrendStable},
	{Commodity: "Mustard", Market: "Jaipur", State: "Rajasthan", Min: 5500, Max: 6200, Modal: 5900, Trend: TrendRising},
	{Commodity: "Turmeric", Market: "Unjha", State: "Gujarat", Min: 11000, Max: 14500, Modal: 12800, Trend: TrendRising},
	{Commodity: "Coriander", Market: "Unjha", State: "Gujarat", Min: 6500, Max: 8000, Modal: 7200, Trend: TrendStable},
	{Commodity: "Green Chillies", Market: "Guntur", State: "Andhra Pradesh", Min: 2500, Max: 4500, Modal: 3500, Trend: TrendFalling},
	{Commodity: "Garlic", Market: "Indore", State: "Madhya Pradesh", Min: 6000, Max: 12000, Modal: 9000, Trend: TrendFalling},
	{Commodity: "Ginger", Market: "Bengaluru", State: "Karnataka", Min: 3000, Max: 5500, Modal: 4200, Trend: TrendStable},
	{Commodity: "Bananas", Market: "Coimbatore", State: "Tamil Nadu", Min: 1500, Max: 2800, Modal: 2200, Trend: TrendStable},
	{Commodity: "Mangoes", Market: "Vashi", State: "Maharashtra", Min: 4000, Max: 9000, Modal: 6500, Trend: TrendRising},
	{Commodity: "Pomegranates", Market: "Pune", State: "Maharashtra", Min: 5000, Max: 12000, Modal: 8500, Trend: TrendStable},
	{Commodity: "Grapes", Market: "Nasik", State: "Maharashtra", Min: 3000, Max: 6000, Modal: 4500, Trend: TrendFalling},
	{Commodity: "Pearl Millet", Market: "Jaipur", State: "Rajasthan", Min: 2200, Max: 2600, Modal: 2400, Trend: TrendStable},
	{Commodity: "Sorghum", Market: "Hubballi", State: "Karnataka", Min: 2800, Max: 3600, Modal: 3200, Trend: TrendStable},
	{Commodity: "Cauliflower", Market: "Azadpur", State: "Delhi", Min: 600, Max: 1600, Modal: 1100, Trend: TrendFalling},
	{Commodity: "Cabbage", Market: "Azadpur", State: "Delhi", Min: 500, Max: 1200, Modal: 800, Trend: TrendStable},
	{Commodity: "Brinjal", Market: "Vashi", State: "Maharashtra", Min: 1000, Max: 2400, Modal: 1700, Trend: TrendStable},
	{Commodity: "Sugarcane", Market: "Kanpur", State: "Uttar Pradesh", Min: 340, Max: 370, Modal: 355, Trend: TrendStable},
}

// StaticBook returns the built-in price book.
func StaticBook() *Book {
	return NewBook(staticQuotes)
}
