package templates

var english = Set{
	ChooseLanguage:          tpl("Which language would you like to talk in? English, Hindi, Marathi, Tamil, Telugu, Bengali, Gujarati or Kannada."),
	AskCommodity:            tpl("What would you like to sell today? You can tell me everything at once, like \"500 kg onions from Nasik at 20 rupees a kilo\"."),
	AskQuantity:             tpl("How much {commodity} do you have? You can say it in kg, quintal or ton."),
	AskQuality:              tpl("What is the quality of your {commodity}? Premium, A, B, Standard or Mixed?"),
	AskPrice:                tpl("At what price do you want to sell your {commodity}? Tell me a price, or say \"market price\"."),
	MarketPrices:            tpl("Today {commodity} is selling at ₹{min} to ₹{max} per kg in {market}, around ₹{average} on average. The trend is {trend}. {advice} Your price is ₹{price} per kg. Shall we go ahead?"),
	MarketPricesUnavailable: tpl("I could not get today's market price for {commodity}. Your price is ₹{price} per kg. Shall we go ahead?"),
	ConfirmListing:          tpl("Please confirm: {quantity} kg of {quality} grade {commodity}{location} at ₹{price} per kg. Shall I list it?"),
	ListingDiscarded:        tpl("Okay, I have not listed it. Tell me what you would like to sell."),
	Broadcasting:            tpl("Your listing \"{name}\" is live. I am sharing it with buyers now."),
	Success:                 tpl("Your listing \"{name}\" has been shared with buyers. You will hear from them soon."),
	NotUnderstood:           tpl("Sorry, I did not understand that."),
	GenericError:            tpl("Sorry, something went wrong on our side. Please say that again."),
	OptionYes:               tpl("Yes"),
	OptionNo:                tpl("No"),
	OptionChangePrice:       tpl("Change price"),
	OptionMarketPrice:       tpl("Market price"),
	OptionDontKnow:          tpl("Don't know"),
}

var hindi = Set{
	ChooseLanguage:          tpl("आप किस भाषा में बात करना चाहेंगे? हिन्दी, English, मराठी, தமிழ், తెలుగు, বাংলা, ગુજરાતી या ಕನ್ನಡ।"),
	AskCommodity:            tpl("आज आप क्या बेचना चाहते हैं? आप सब एक साथ बता सकते हैं, जैसे \"नासिक से 500 किलो प्याज़, 20 रुपये किलो\"।"),
	AskQuantity:             tpl("आपके पास कितना {commodity} है? किलो, क्विंटल या टन में बताइए।"),
	AskQuality:              tpl("आपके {commodity} की क्वालिटी क्या है? प्रीमियम, A, B, स्टैंडर्ड या मिला-जुला?"),
	AskPrice:                tpl("आप अपना {commodity} किस भाव पर बेचना चाहते हैं? भाव बताइए, या \"बाज़ार भाव\" बोलिए।"),
	MarketPrices:            tpl("आज {market} में {commodity} ₹{min} से ₹{max} प्रति किलो बिक रहा है, औसत लगभग ₹{average}। रुझान: {trend}। {advice} आपका भाव ₹{price} प्रति किलो है। आगे बढ़ें?"),
	MarketPricesUnavailable: tpl("{commodity} का आज का बाज़ार भाव नहीं मिल पाया। आपका भाव ₹{price} प्रति किलो है। आगे बढ़ें?"),
	ConfirmListing:          tpl("कृपया पुष्टि करें: {quantity} किलो {quality} ग्रेड {commodity}{location}, ₹{price} प्रति किलो। लिस्ट कर दूँ?"),
	ListingDiscarded:        tpl("ठीक है, लिस्टिंग नहीं की। बताइए आप क्या बेचना चाहते हैं।"),
	Broadcasting:            tpl("आपकी लिस्टिंग \"{name}\" लाइव है। मैं इसे खरीदारों तक पहुँचा रहा हूँ।"),
	Success:                 tpl("आपकी लिस्टिंग \"{name}\" खरीदारों तक पहुँच गई है। जल्द ही आपसे संपर्क होगा।"),
	NotUnderstood:           tpl("माफ़ कीजिए, मैं समझ नहीं पाया।"),
	GenericError:            tpl("माफ़ कीजिए, हमारी तरफ़ कुछ गड़बड़ हुई। कृपया फिर से बोलिए।"),
	OptionYes:               tpl("हाँ"),
	OptionNo:                tpl("नहीं"),
	OptionChangePrice:       tpl("भाव बदलें"),
	OptionMarketPrice:       tpl("बाज़ार भाव"),
	OptionDontKnow:          tpl("पता नहीं"),
}

var marathi = Set{
	ChooseLanguage:          tpl("तुम्हाला कोणत्या भाषेत बोलायचे आहे? मराठी, हिन्दी, English, தமிழ், తెలుగు, বাংলা, ગુજરાતી किंवा ಕನ್ನಡ."),
	AskCommodity:            tpl("आज तुम्हाला काय विकायचे आहे? सगळे एकदम सांगू शकता, जसे \"नाशिकचा 500 किलो कांदा, 20 रुपये किलो\"."),
	AskQuantity:             tpl("तुमच्याकडे किती {commodity} आहे? किलो, क्विंटल किंवा टनमध्ये सांगा."),
	AskQuality:              tpl("तुमच्या {commodity} ची प्रत कशी आहे? प्रीमियम, A, B, स्टँडर्ड की मिश्र?"),
	AskPrice:                tpl("तुम्हाला {commodity} कोणत्या दराने विकायचे आहे? दर सांगा, किंवा \"बाजारभाव\" म्हणा."),
	MarketPrices:            tpl("आज {market} मध्ये {commodity} ₹{min} ते ₹{max} प्रति किलो विकला जात आहे, सरासरी सुमारे ₹{average}. कल: {trend}. {advice} तुमचा दर ₹{price} प्रति किलो आहे. पुढे जाऊया?"),
	MarketPricesUnavailable: tpl("{commodity} चा आजचा बाजारभाव मिळाला नाही. तुमचा दर ₹{price} प्रति किलो आहे. पुढे जाऊया?"),
	ConfirmListing:          tpl("कृपया खात्री करा: {quantity} किलो {quality} प्रतीचा {commodity}{location}, ₹{price} प्रति किलो. लिस्ट करू का?"),
	ListingDiscarded:        tpl("ठीक आहे, लिस्टिंग केली नाही. तुम्हाला काय विकायचे आहे ते सांगा."),
	Broadcasting:            tpl("तुमची लिस्टिंग \"{name}\" सुरू झाली आहे. मी ती खरेदीदारांपर्यंत पोहोचवत आहे."),
	Success:                 tpl("तुमची लिस्टिंग \"{name}\" खरेदीदारांपर्यंत पोहोचली आहे. लवकरच संपर्क होईल."),
	NotUnderstood:           tpl("माफ करा, मला समजले नाही."),
	GenericError:            tpl("माफ करा, आमच्याकडून काहीतरी चूक झाली. कृपया पुन्हा सांगा."),
	OptionYes:               tpl("होय"),
	OptionNo:                tpl("नाही"),
	OptionChangePrice:       tpl("दर बदला"),
	OptionMarketPrice:       tpl("बाजारभाव"),
	OptionDontKnow:          tpl("माहीत नाही"),
}

var tamil = Set{
	ChooseLanguage:          tpl("எந்த மொழியில் பேச விரும்புகிறீர்கள்? தமிழ், English, हिन्दी, मराठी, తెలుగు, বাংলা, ગુજરાતી அல்லது ಕನ್ನಡ."),
	AskCommodity:            tpl("இன்று நீங்கள் என்ன விற்க விரும்புகிறீர்கள்? எல்லாவற்றையும் ஒரே முறையில் சொல்லலாம்."),
	AskQuantity:             tpl("உங்களிடம் எவ்வளவு {commodity} உள்ளது? கிலோ, குவிண்டால் அல்லது டன்னில் சொல்லுங்கள்."),
	AskQuality:              tpl("உங்கள் {commodity} தரம் என்ன? பிரீமியம், A, B, ஸ்டாண்டர்ட் அல்லது கலப்பு?"),
	AskPrice:                tpl("உங்கள் {commodity} எந்த விலைக்கு விற்க விரும்புகிறீர்கள்? விலையைச் சொல்லுங்கள், அல்லது \"சந்தை விலை\" என்று சொல்லுங்கள்."),
	MarketPrices:            tpl("இன்று {market} சந்தையில் {commodity} கிலோவுக்கு ₹{min} முதல் ₹{max} வரை, சராசரி ₹{average}. போக்கு: {trend}. {advice} உங்கள் விலை கிலோவுக்கு ₹{price}. தொடரலாமா?"),
	MarketPricesUnavailable: tpl("{commodity} இன்றைய சந்தை விலை கிடைக்கவில்லை. உங்கள் விலை கிலோவுக்கு ₹{price}. தொடரலாமா?"),
	ConfirmListing:          tpl("உறுதி செய்யுங்கள்: {quantity} கிலோ {quality} தர {commodity}{location}, கிலோவுக்கு ₹{price}. பட்டியலிடலாமா?"),
	ListingDiscarded:        tpl("சரி, பட்டியலிடவில்லை. நீங்கள் என்ன விற்க விரும்புகிறீர்கள் என்று சொல்லுங்கள்."),
	Broadcasting:            tpl("உங்கள் பட்டியல் \"{name}\" நேரலையில் உள்ளது. வாங்குபவர்களுக்கு அனுப்புகிறேன்."),
	Success:                 tpl("உங்கள் பட்டியல் \"{name}\" வாங்குபவர்களுக்கு அனுப்பப்பட்டது. விரைவில் தொடர்பு கொள்வார்கள்."),
	NotUnderstood:           tpl("மன்னிக்கவும், எனக்குப் புரியவில்லை."),
	GenericError:            tpl("மன்னிக்கவும், எங்கள் பக்கம் ஏதோ தவறு நடந்தது. மீண்டும் சொல்லுங்கள்."),
	OptionYes:               tpl("ஆம்"),
	OptionNo:                tpl("இல்லை"),
	OptionChangePrice:       tpl("விலையை மாற்று"),
	OptionMarketPrice:       tpl("சந்தை விலை"),
	OptionDontKnow:          tpl("தெரியாது"),
}

var telugu = Set{
	ChooseLanguage:          tpl("మీరు ఏ భాషలో మాట్లాడాలనుకుంటున్నారు? తెలుగు, English, हिन्दी, मराठी, தமிழ், বাংলা, ગુજરાતી లేదా ಕನ್ನಡ."),
	AskCommodity:            tpl("ఈరోజు మీరు ఏమి అమ్మాలనుకుంటున్నారు? అన్నీ ఒకేసారి చెప్పవచ్చు."),
	AskQuantity:             tpl("మీ దగ్గర ఎంత {commodity} ఉంది? కిలో, క్వింటాల్ లేదా టన్నులో చెప్పండి."),
	AskQuality:              tpl("మీ {commodity} నాణ్యత ఏమిటి? ప్రీమియం, A, B, స్టాండర్డ్ లేదా మిశ్రమం?"),
	AskPrice:                tpl("మీ {commodity} ని ఏ ధరకు అమ్మాలనుకుంటున్నారు? ధర చెప్పండి, లేదా \"మార్కెట్ ధర\" అనండి."),
	MarketPrices:            tpl("ఈరోజు {market} లో {commodity} కిలోకు ₹{min} నుండి ₹{max} వరకు, సగటు ₹{average}. ధోరణి: {trend}. {advice} మీ ధర కిలోకు ₹{price}. ముందుకు వెళ్దామా?"),
	MarketPricesUnavailable: tpl("{commodity} ఈరోజు మార్కెట్ ధర దొరకలేదు. మీ ధర కిలోకు ₹{price}. ముందుకు వెళ్దామా?"),
	ConfirmListing:          tpl("దయచేసి నిర్ధారించండి: {quantity} కిలో {quality} గ్రేడ్ {commodity}{location}, కిలోకు ₹{price}. లిస్ట్ చేయనా?"),
	ListingDiscarded:        tpl("సరే, లిస్ట్ చేయలేదు. మీరు ఏమి అమ్మాలనుకుంటున్నారో చెప్పండి."),
	Broadcasting:            tpl("మీ లిస్టింగ్ \"{name}\" లైవ్‌లో ఉంది. కొనుగోలుదారులకు పంపుతున్నాను."),
	Success:                 tpl("మీ లిస్టింగ్ \"{name}\" కొనుగోలుదారులకు చేరింది. త్వరలో సంప్రదిస్తారు."),
	NotUnderstood:           tpl("క్షమించండి, నాకు అర్థం కాలేదు."),
	GenericError:            tpl("క్షమించండి, మా వైపు ఏదో పొరపాటు జరిగింది. దయచేసి మళ్ళీ చెప్పండి."),
	OptionYes:               tpl("అవును"),
	OptionNo:                tpl("కాదు"),
	OptionChangePrice:       tpl("ధర మార్చు"),
	OptionMarketPrice:       tpl("మార్కెట్ ధర"),
	OptionDontKnow:          tpl("తెలియదు"),
}
