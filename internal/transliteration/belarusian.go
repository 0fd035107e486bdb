package transliteration

// GOST 7.79-2000 System B, Belarusian. The apostrophe is not in the table
// and is copied as is in both directions.
var gost779bBY = table{
	'А': "A", 'а': "a",
	'Б': "B", 'б': "b",
	'В': "V", 'в': "v",
	'Г': "H", 'г': "h",
	'Ґ': "G", 'ґ': "g",
	'Д': "D", 'д': "d",
	'Е': "E", 'е': "e",
	'Ё': "Yo", 'ё': "yo",
	'Ж': "Zh", 'ж': "zh",
	'З': "Z", 'з': "z",
	'І': "I", 'і': "i",
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
	'Ў': "U`", 'ў': "u`",
	'Ф': "F", 'ф': "f",
	'Х': "X", 'х': "x",
	'Ц': "C", 'ц': "c",
	'Ч': "Ch", 'ч': "ch",
	'Ш': "Sh", 'ш': "sh",
	'Ы': "Y`", 'ы': "y`",
	'Ь': "`", 'ь': "`",
	'Э': "E`", 'э': "e`",
	'Ю': "Yu", 'ю': "yu",
	'Я': "Ya", 'я': "ya",
}

func init() {
	register(GOST779bBY, &ruleset{
		language:    "Belarusian",
		description: "GOST 7.79-2000 System B",
		start:       gost779bBY,
		rest:        gost779bBY,
		reverse:     newReverseTable(gost779bBY),
	})
}
