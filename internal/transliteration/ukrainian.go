package transliteration

// GOST 7.79-2000 System B, Ukrainian.
var gost779bUA = table{
	'А': "A", 'а': "a",
	'Б': "B", 'б': "b",
	'В': "V", 'в': "v",
	'Г': "G", 'г': "g",
	'Ґ': "G`", 'ґ': "g`",
	'Д': "D", 'д': "d",
	'Е': "E", 'е': "e",
	'Є': "Ye", 'є': "ye",
	'Ж': "Zh", 'ж': "zh",
	'З': "Z", 'з': "z",
	'И': "Y`", 'и': "y`",
	'І': "I", 'і': "i",
	'Ї': "Yi", 'ї': "yi",
	'Й': "J", 'й': "j",
	'К': "K", 'к': "k",
	'Л': "L", 'л': "l",
	'М': "M", 'м': "m",
	'Н': "N", 'н': "n",
	'О': "O", 'о': "o",
	'П': "P", 'п': "p",
	'Р': "R", 'р': "r",
	'С': "S", 'с': "s",
	'Т': "T", 'т': "t",
	'У': "U", 'у': "u",
	'Ф': "F", 'ф': "f",
	'Х': "X", 'х': "x",
	'Ц': "C", 'ц': "c",
	'Ч': "Ch", 'ч': "ch",
	'Ш': "Sh", 'ш': "sh",
	'Щ': "Shh", 'щ': "shh",
	'Ь': "`", 'ь': "`",
	'Ю': "Yu", 'ю': "yu",
	'Я': "Ya", 'я': "ya",
}

// Ukrainian national transliteration, Cabinet of Ministers resolution
// No. 55 of 27.01.2010. Є Ї Й Ю Я take a leading Y only at the start of
// a word; inside a word they start with I. Inside a word multi-letter
// forms of capitals are all caps.
var (
	kmu2010UAStart = table{
		'А': "A", 'а': "a",
		'Б': "B", 'б': "b",
		'В': "V", 'в': "v",
		'Г': "H", 'г': "h",
		'Ґ': "G", 'ґ': "g",
		'Д': "D", 'д': "d",
		'Е': "E", 'е': "e",
		'Є': "Ye", 'є': "ye",
		'Ж': "Zh", 'ж': "zh",
		'З': "Z", 'з': "z",
		'И': "Y", 'и': "y",
		'І': "I", 'і': "i",
		'Ї': "Yi", 'ї': "yi",
		'Й': "Y", 'й': "y",
		'К': "K", 'к': "k",
		'Л': "L", 'л': "l",
		'М': "M", 'м': "m",
		'Н': "N", 'н': "n",
		'О': "O", 'о': "o",
		'П': "P", 'п': "p",
		'Р': "R", 'р': "r",
		'С': "S", 'с': "s",
		'Т': "T", 'т': "t",
		'У': "U", 'у': "u",
		'Ф': "F", 'ф': "f",
		'Х': "Kh", 'х': "kh",
		'Ц': "Ts", 'ц': "ts",
		'Ч': "Ch", 'ч': "ch",
		'Ш': "Sh", 'ш': "sh",
		'Щ': "Shch", 'щ': "shch",
		'Ю': "Yu", 'ю': "yu",
		'Я': "Ya", 'я': "ya",
	}

	kmu2010UARest = table{
		'А': "A", 'а': "a",
		'Б': "B", 'б': "b",
		'В': "V", 'в': "v",
		'Г': "H", 'г': "h",
		'Ґ': "G", 'ґ': "g",
		'Д': "D", 'д': "d",
		'Е': "E", 'е': "e",
		'Є': "IE", 'є': "ie",
		'Ж': "ZH", 'ж': "zh",
		'З': "Z", 'з': "z",
		'И': "Y", 'и': "y",
		'І': "I", 'і': "i",
		'Ї': "I", 'ї': "i",
		'Й': "I", 'й': "i",
		'К': "K", 'к': "k",
		'Л': "L", 'л': "l",
		'М': "M", 'м': "m",
		'Н': "N", 'н': "n",
		'О': "O", 'о': "o",
		'П': "P", 'п': "p",
		'Р': "R", 'р': "r",
		'С': "S", 'с': "s",
		'Т': "T", 'т': "t",
		'У': "U", 'у': "u",
		'Ф': "F", 'ф': "f",
		'Х': "KH", 'х': "kh",
		'Ц': "TS", 'ц': "ts",
		'Ч': "CH", 'ч': "ch",
		'Ш': "SH", 'ш': "sh",
		'Щ': "SHCH", 'щ': "shch",
		'Ю': "IU", 'ю': "iu",
		'Я': "IA", 'я': "ia",
	}

	// зг is written zgh to keep it apart from ж (zh).
	kmu2010UAAfterZ = &digraphRule{
		triggers: newRuneSet('з', 'З'),
		start:    table{'г': "gh", 'Г': "Gh"},
		rest:     table{'г': "gh", 'Г': "GH"},
	}
)

func init() {
	register(GOST779bUA, &ruleset{
		language:    "Ukrainian",
		description: "GOST 7.79-2000 System B",
		start:       gost779bUA,
		rest:        gost779bUA,
		reverse:     newReverseTable(gost779bUA),
	})
	register(KMU2010UA, &ruleset{
		language:    "Ukrainian",
		description: "National standard, CMU resolution 55 (2010)",
		start:       kmu2010UAStart,
		rest:        kmu2010UARest,
		elidable:    newRuneSet('ь', 'Ь'),
		apostrophes: newRuneSet('’', '\'', 'ʼ'),
		digraph:     kmu2010UAAfterZ,
	})
}
