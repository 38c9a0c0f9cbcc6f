package langguess

// languageNames holds the built-in display names.
var languageNames = map[Code]string{
	"ab":    "Abkhazian",
	"af":    "Afrikaans",
	"ar":    "arabic",
	"az":    "azeri",
	"be":    "Byelorussian",
	"bg":    "bulgarian",
	"bn":    "bengali",
	"bo":    "tibetan",
	"br":    "Breton",
	"ca":    "Catalan",
	"ceb":   "cebuano",
	"cs":    "czech",
	"cy":    "welsh",
	"da":    "danish",
	"de":    "german",
	"el":    "greek",
	"en":    "english",
	"eo":    "Esperanto",
	"es":    "spanish",
	"et":    "estonian",
	"eu":    "Basque",
	"fa":    "farsi",
	"fi":    "finnish",
	"fo":    "Faroese",
	"fr":    "french",
	"fy":    "Frisian",
	"gd":    "Scots Gaelic",
	"gl":    "Galician",
	"gu":    "gujarati",
	"ha":    "hausa",
	"haw":   "hawaiian",
	"he":    "hebrew",
	"hi":    "hindi",
	"hr":    "croatian",
	"hu":    "hungarian",
	"hy":    "armenian",
	"id":    "indonesian",
	"is":    "icelandic",
	"it":    "italian",
	"ja":    "japanese",
	"ka":    "georgian",
	"kk":    "kazakh",
	"km":    "Cambodian",
	"ko":    "korean",
	"ku":    "Kurdish",
	"ky":    "kyrgyz",
	"la":    "latin",
	"lt":    "lithuanian",
	"lv":    "latvian",
	"mg":    "Malagasy",
	"mk":    "macedonian",
	"ml":    "malayalam",
	"mn":    "mongolian",
	"mr":    "Marathi",
	"ms":    "Malay",
	"ne":    "nepali",
	"nl":    "dutch",
	"nn":    "Nynorsk",
	"no":    "norwegian",
	"pa":    "Punjabi",
	"pl":    "polish",
	"ps":    "pashto",
	"pt":    "portuguese",
	"ro":    "romanian",
	"ru":    "russian",
	"sa":    "Sanskrit",
	"sh":    "Serbo-Croatian",
	"sk":    "slovak",
	"sl":    "slovene",
	"so":    "somali",
	"sq":    "albanian",
	"sr":    "serbian",
	"sv":    "swedish",
	"sw":    "swahili",
	"ta":    "tamil",
	"te":    "telugu",
	"th":    "thai",
	"tl":    "tagalog",
	"tlh":   "klingon",
	"tn":    "Setswana",
	"tr":    "turkish",
	"tw":    "Twi",
	"uk":    "ukrainian",
	"ur":    "urdu",
	"uz":    "uzbek",
	"vi":    "vietnamese",
	"zh":    "chinese",
	"zh-tw": "Traditional Chinese (Taiwan)",
}

// languageIDs holds the built-in numeric language ids.
var languageIDs = map[Code]int{
	"ab":    12026,
	"af":    40,
	"ar":    26020,
	"az":    26030,
	"be":    11890,
	"bg":    26050,
	"bn":    26040,
	"bo":    26601,
	"br":    1361,
	"ca":    3,
	"ceb":   26060,
	"cs":    26080,
	"cy":    26560,
	"da":    26090,
	"de":    26160,
	"el":    26165,
	"en":    26110,
	"eo":    11933,
	"es":    26460,
	"et":    26120,
	"eu":    1232,
	"fa":    26130,
	"fi":    26140,
	"fo":    11817,
	"fr":    26150,
	"fy":    1353,
	"gd":    65555,
	"gl":    1252,
	"gu":    26599,
	"ha":    26170,
	"haw":   26180,
	"he":    26592,
	"hi":    26190,
	"hr":    26070,
	"hu":    26200,
	"hy":    26597,
	"id":    26220,
	"is":    26210,
	"it":    26230,
	"ja":    26235,
	"ka":    26600,
	"kk":    26240,
	"km":    1222,
	"ko":    26255,
	"ku":    11815,
	"ky":    26260,
	"la":    26280,
	"lt":    26300,
	"lv":    26290,
	"mg":    1362,
	"mk":    26310,
	"ml":    26598,
	"mn":    26320,
	"mr":    1201,
	"ms":    1147,
	"ne":    26330,
	"nl":    26100,
	"nn":    172,
	"no":    26340,
	"pa":    65550,
	"pl":    26380,
	"ps":    26350,
	"pt":    26390,
	"ro":    26400,
	"ru":    26410,
	"sa":    1500,
	"sh":    1399,
	"sk":    26430,
	"sl":    26440,
	"so":    26450,
	"sq":    26010,
	"sr":    26420,
	"sv":    26480,
	"sw":    26470,
	"ta":    26595,
	"te":    26596,
	"th":    26594,
	"tl":    26490,
	"tlh":   26250,
	"tn":    65578,
	"tr":    26500,
	"tw":    1499,
	"uk":    26510,
	"ur":    26530,
	"uz":    26540,
	"vi":    26550,
	"zh":    26065,
	"zh-tw": 22,
}
