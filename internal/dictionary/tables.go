package dictionary

// Entry maps a spoken keyword to its canonical value.
type Entry struct {
	Key   string `yaml:"key"`
	Value string `yaml:"value"`
}

func group(value string, keys ...string) []Entry {
	out := make([]Entry, 0, len(keys))
	for _, k := range keys {
		out = append(out, Entry{Key: k, Value: value})
	}
	return out
}

func concat(groups ...[]Entry) []Entry {
	var out []Entry
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// Table order matters only for keys of equal length matching the same utterance.
var builtinCommodities = concat(
	group("Onions", "onion", "pyaaz", "pyaz", "piyaz", "pyaj", "kanda", "प्याज", "प्याज़", "कांदा", "வெங்காயம்", "ఉల్లి"),
	group("Tomatoes", "tomato", "tamatar", "tamaatar", "टमाटर", "टोमॅटो", "தக்காளி", "టమాటా"),
	group("Potatoes", "potato", "aloo", "alu", "batata", "आलू", "बटाटा", "உருளைக்கிழங்கு", "బంగాళాదుంప"),
	group("Wheat", "wheat", "gehun", "gehu", "gehoon", "gahu", "गेहूं", "गेहूँ", "गहू", "கோதுமை", "గోధుమ"),
	group("Rice", "rice", "chawal", "chaawal", "basmati", "चावल", "तांदूळ", "அரிசி", "బియ్యం"),
	group("Paddy", "paddy", "dhan", "dhaan", "धान", "நெல்", "వరి"),
	group("Coriander", "coriander", "dhaniya", "dhania", "धनिया", "कोथिंबीर", "கொத்தமல்லி", "కొత్తిమీర"),
	group("Maize", "maize", "corn", "makka", "makki", "bhutta", "मक्का", "मका", "மக்காச்சோளம்", "మొక్కజొన్న"),
	group("Chickpeas", "chickpea", "chana", "channa", "चना", "हरभरा", "கொண்டைக்கடலை", "శనగ"),
	group("Pigeon Peas", "arhar", "toor", "tur", "tuvar", "अरहर", "तूर", "துவரை", "కంది"),
	group("Turmeric", "turmeric", "haldi", "हल्दी", "हळद", "மஞ்சள்", "పసుపు"),
	group("Green Gram", "moong", "mung", "मूंग", "पाचू", "பாசிப்பயறு", "పెసలు"),
	group("Groundnut", "groundnut", "peanut", "moongphali", "mungfali", "shengdana", "मूंगफली", "शेंगदाणा", "நிலக்கடலை", "వేరుశనగ"),
	group("Soybean", "soybean", "soyabean", "soya", "सोयाबीन", "சோயா", "సోయా"),
	group("Cotton", "cotton", "kapas", "kapaas", "कपास", "कापूस", "பருத்தி", "పత్తి"),
	group("Mustard", "mustard", "sarson", "sarso", "सरसों", "मोहरी", "கடுகு", "ఆవాలు"),
	group("Sugarcane", "sugarcane", "ganna", "गन्ना", "ऊस", "கரும்பு", "చెరకు"),
	group("Green Chillies", "chilli", "chili", "mirchi", "mirch", "मिर्च", "मिरची", "மிளகாய்", "మిరప"),
	group("Garlic", "garlic", "lahsun", "lehsun", "लहसुन", "लसूण", "பூண்டு", "వెల్లుల్లి"),
	group("Ginger", "ginger", "adrak", "adrakh", "अदरक", "आले", "இஞ்சி", "అల్లం"),
	group("Bananas", "banana", "kela", "keli", "केला", "केळी", "வாழைப்பழம்", "అరటి"),
	group("Mangoes", "mango", "aam", "आम", "आंबा", "மாம்பழம்", "మామిడి"),
	group("Pomegranates", "pomegranate", "anar", "anaar", "डाळिंब", "अनार", "மாதுளை", "దానిమ్మ"),
	group("Grapes", "grapes", "grape", "angoor", "angur", "अंगूर", "द्राक्षे", "திராட்சை", "ద్రాక్ష"),
	group("Pearl Millet", "bajra", "bajri", "बाजरा", "बाजरी", "கம்பு", "సజ్జలు"),
	group("Sorghum", "jowar", "jwari", "ज्वार", "ज्वारी", "சோளம்", "జొన్న"),
	group("Cauliflower", "cauliflower", "gobhi", "gobi", "phool gobhi", "फूलगोभी", "फुलकोबी", "காலிஃபிளவர்", "కాలీఫ్లవర్"),
	group("Cabbage", "cabbage", "patta gobhi", "band gobhi", "पत्तागोभी", "कोबी", "முட்டைக்கோஸ்", "క్యాబేజీ"),
	group("Brinjal", "brinjal", "eggplant", "baingan", "baigan", "vangi", "बैंगन", "वांगी", "கத்தரிக்காய்", "వంకాయ"),
)

var builtinLocations = concat(
	group("Nasik, Maharashtra", "nasik", "nashik", "नासिक", "नाशिक"),
	group("Lasalgaon, Maharashtra", "lasalgaon", "lasalgaon mandi", "लासलगाव"),
	group("Pune, Maharashtra", "pune", "poona", "पुणे"),
	group("Vashi, Mumbai, Maharashtra", "vashi", "mumbai", "bombay", "मुंबई", "वाशी"),
	group("Nagpur, Maharashtra", "nagpur", "नागपुर", "नागपूर"),
	group("Azadpur, Delhi", "azadpur", "delhi", "dilli", "दिल्ली", "आजादपुर"),
	group("Indore, Madhya Pradesh", "indore", "इंदौर"),
	group("Jaipur, Rajasthan", "jaipur", "जयपुर"),
	group("Lucknow, Uttar Pradesh", "lucknow", "लखनऊ"),
	group("Agra, Uttar Pradesh", "agra", "आगरा"),
	group("Kanpur, Uttar Pradesh", "kanpur", "कानपुर"),
	group("Karnal, Haryana", "karnal", "करनाल"),
	group("Khanna, Punjab", "khanna", "खन्ना"),
	group("Ludhiana, Punjab", "ludhiana", "लुधियाना"),
	group("Ahmedabad, Gujarat", "ahmedabad", "अहमदाबाद"),
	group("Unjha, Gujarat", "unjha", "ऊंझा"),
	group("Rajkot, Gujarat", "rajkot", "राजकोट"),
	group("Bengaluru, Karnataka", "bengaluru", "bangalore", "ಬೆಂಗಳೂರು"),
	group("Hubballi, Karnataka", "hubli", "hubballi"),
	group("Koyambedu, Chennai, Tamil Nadu", "koyambedu", "chennai", "madras", "சென்னை", "கோயம்பேடு"),
	group("Coimbatore, Tamil Nadu", "coimbatore", "kovai", "கோயம்புத்தூர்"),
	group("Guntur, Andhra Pradesh", "guntur", "గుంటూరు"),
	group("Hyderabad, Telangana", "hyderabad", "హైదరాబాద్"),
	group("Kolkata, West Bengal", "kolkata", "calcutta", "কলকাতা"),
	group("Patna, Bihar", "patna", "पटना"),
)

var builtinQualities = concat(
	group("Premium", "premium", "export quality", "best quality", "top quality", "a+ grade", "grade a+", "ekdum first class", "sabse badhiya", "प्रीमियम", "सबसे बढ़िया"),
	group("A", "grade a", "a grade", "a-grade", "first quality", "first class", "ek number", "ए ग्रेड", "ग्रेड ए", "अव्वल", "ஏ கிரேடு", "ఏ గ్రేడ్"),
	group("B", "grade b", "b grade", "b-grade", "second quality", "medium quality", "madhyam", "बी ग्रेड", "ग्रेड बी", "मध्यम", "பி கிரேடு", "బి గ్రేడ్"),
	group("Standard", "standard", "normal quality", "regular quality", "sadharan", "faq", "सामान्य", "साधारण"),
	group("Mixed", "mixed", "mix quality", "mila jula", "mishrit", "मिला जुला", "मिश्रित"),
)
