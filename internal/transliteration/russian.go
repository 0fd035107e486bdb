package transliteration

// GOST 7.79-2000 System B, Russian, including the pre-1918 letters.
var gost779bRU = table{
	'А': "A", 'а': "a",
	'Б': "B", 'б': "b",
	'В': "V", 'в': "v",
	'Г': "G", 'г': "g",
	'Д': "D", 'д': "d",
	'Е': "E", 'е': "e",
	'Ё': "Yo", 'ё': "yo",
	'Ж': "Zh", 'ж': "zh",
	'З': "Z", 'з': "z",
	'И': "I", 'и': "i",
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
	'Ъ': "``", 'ъ': "``",
	'Ы': "Y`", 'ы': "y`",
	'Ь': "`", 'ь': "`",
	'Э': "E`", 'э': "e`",
	'Ю': "Yu", 'ю': "yu",
	'Я': "Ya", 'я': "ya",

	'І': "I`", 'і': "i`",
	'Ѣ': "Ye`", 'ѣ': "ye`",
	'Ѳ': "Fh", 'ѳ': "fh",
	'Ѵ': "Yh", 'ѵ': "yh",
}

// Passport transliteration (FMS order No. 320 of 2013, after ICAO Doc 9303).
// Ь is dropped; Ё and Э both collapse to E, so there is no way back.
var passport2013RU = table{
	'А': "A", 'а': "a",
	'Б': "B", 'б': "b",
	'В': "V", 'в': "v",
	'Г': "G", 'г': "g",
	'Д': "D", 'д': "d",
	'Е': "E", 'е': "e",
	'Ё': "E", 'ё': "e",
	'Ж': "Zh", 'ж': "zh",
	'З': "Z", 'з': "z",
	'И': "I", 'и': "i",
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
	'Х': "Kh", 'х': "kh",
	'Ц': "Ts", 'ц': "ts",
	'Ч': "Ch", 'ч': "ch",
	'Ш': "Sh", 'ш': "sh",
	'Щ': "Shch", 'щ': "shch",
	'Ъ': "Ie", 'ъ': "ie",
	'Ы': "Y", 'ы': "y",
	'Э': "E", 'э': "e",
	'Ю': "Iu", 'ю': "iu",
	'Я': "Ia", 'я': "ia",
}

func init() {
	register(GOST779bRU, &ruleset{
		language:    "Russian",
		description: "GOST 7.79-2000 System B",
		start:       gost779bRU,
		rest:        gost779bRU,
		reverse:     newReverseTable(gost779bRU),
	})
	register(Passport2013RU, &ruleset{
		language:    "Russian",
		description: "International passport, FMS order 320 (2013)",
		start:       passport2013RU,
		rest:        passport2013RU,
		elidable:    newRuneSet('ь', 'Ь'),
	})
}
