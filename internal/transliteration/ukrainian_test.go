package transliteration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kmu(t *testing.T) *Transliterator {
	t.Helper()
	tr, err := New(KMU2010UA)
	require.NoError(t, err)
	return tr
}

func TestKMUWordStartAndRestTables(t *testing.T) {
	assert.Equal(t, "Y", kmu2010UAStart['Й'])
	assert.Equal(t, "y", kmu2010UAStart['й'])
	assert.Equal(t, "I", kmu2010UARest['Й'])
	assert.Equal(t, "i", kmu2010UARest['й'])
}

func TestKMUMixedWithASCII(t *testing.T) {
	tr := kmu(t)
	tests := []struct {
		input string
		want  string
	}{
		{"before Алушта after", "before Alushta after"},
		{"before_Алушта_after", "before_Alushta_after"},
		{"beforeАлуштаafter", "beforeAlushtaafter"},
	}
	for _, tt := range tests {
		if got := tr.ToLatin(tt.input); got != tt.want {
			t.Errorf("ToLatin(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestKMUApostrophes(t *testing.T) {
	tr := kmu(t)
	tests := []struct {
		input string
		want  string
	}{
		{"є", "ye"},
		{"пє", "pie"},
		{"п’є", "pie"},
		{"п'є", "pie"},
		{"пʼє", "pie"},
		{"'є", "'ye"},
		{"слово 'є", "slovo 'ye"},
		{"''є", "''ye"},
	}
	for _, tt := range tests {
		if got := tr.ToLatin(tt.input); got != tt.want {
			t.Errorf("ToLatin(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestKMUSoftSignIsDropped(t *testing.T) {
	tr := kmu(t)
	assert.Equal(t, "Tkachenko", tr.ToLatin("Ткаченко"))
	assert.Equal(t, "Ternopil", tr.ToLatin("Тернопіль"))
	assert.Equal(t, "Ternopil Lviv", tr.ToLatin("Тернопіль Львів"))
	// a leading soft sign keeps the next letter in word-start position
	assert.Equal(t, "Ye", tr.ToLatin("ьЄ"))
}

func TestKMUPositionalForms(t *testing.T) {
	tr := kmu(t)
	assert.Equal(t, "Yenakiieve", tr.ToLatin("Єнакієве"))
	assert.Equal(t, "YeNAKIIEVE", tr.ToLatin("ЄНАКІЄВЕ"))
	assert.Equal(t, "Yalyna i smereka", tr.ToLatin("Ялина і смерека"))
	assert.Equal(t, "Haievych ye", tr.ToLatin("Гаєвич є"))
}

func TestKMUAfterZ(t *testing.T) {
	tr := kmu(t)
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"word start", "Згурський", "Zghurskyi"},
		{"inside word", "Підзгурський", "Pidzghurskyi"},
		{"upper case", "ЗГУРСЬКИЙ", "ZGHURSKYI"},
		{"no trigger", "Ужгород", "Uzhhorod"},
		{"plain h", "Богдан", "Bohdan"},
		{"trigger alone", "з", "z"},
		{"trigger at end", "Київ з", "Kyiv z"},
		{"trigger then other letter", "Зуб", "Zub"},
		{"trigger across space", "з горами", "z horamy"},
		{"soft sign between", "зьг", "zgh"},
		{"apostrophe between", "з’г", "zgh"},
		{"flag does not stick", "згг", "zghh"},
		{"double trigger", "ззг", "zzgh"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tr.ToLatin(tt.input))
		})
	}
}

func TestKMUAfterZCapitalisation(t *testing.T) {
	out, ok := kmu2010UAAfterZ.lookup('Г', true)
	require.True(t, ok)
	assert.Equal(t, "Gh", out)

	out, ok = kmu2010UAAfterZ.lookup('Г', false)
	require.True(t, ok)
	assert.Equal(t, "GH", out)

	_, ok = kmu2010UAAfterZ.lookup('у', false)
	assert.False(t, ok)
}

var kmuWords = []struct {
	input string
	want  string
}{
	{"Алушта", "Alushta"},
	{"Андрій", "Andrii"},
	{"Борщагівка", "Borshchahivka"},
	{"Борисенко", "Borysenko"},
	{"Вінниця", "Vinnytsia"},
	{"Володимир", "Volodymyr"},
	{"Гадяч", "Hadiach"},
	{"Богдан", "Bohdan"},
	{"Згурський", "Zghurskyi"},
	{"Підзгурський", "Pidzghurskyi"},
	{"Ґалаґан", "Galagan"},
	{"Ґорґани", "Gorgany"},
	{"Донецьк", "Donetsk"},
	{"Дмитро", "Dmytro"},
	{"Рівне", "Rivne"},
	{"Олег", "Oleh"},
	{"Есмань", "Esman"},
	{"Єнакієве", "Yenakiieve"},
	{"Гаєвич", "Haievych"},
	{"Короп’є", "Koropie"},
	{"Житомир", "Zhytomyr"},
	{"Жанна", "Zhanna"},
	{"Жежелів", "Zhezheliv"},
	{"Закарпаття", "Zakarpattia"},
	{"Казимирчук", "Kazymyrchuk"},
	{"Медвин", "Medvyn"},
	{"Михайленко", "Mykhailenko"},
	{"Іванків", "Ivankiv"},
	{"Іващенко", "Ivashchenko"},
	{"Їжакевич", "Yizhakevych"},
	{"Кадиївка", "Kadyivka"},
	{"Мар’їне", "Marine"},
	{"Йосипівка", "Yosypivka"},
	{"Стрий", "Stryi"},
	{"Олексій", "Oleksii"},
	{"Київ", "Kyiv"},
	{"Коваленко", "Kovalenko"},
	{"Лебедин", "Lebedyn"},
	{"Леонід", "Leonid"},
	{"Миколаїв", "Mykolaiv"},
	{"Маринич", "Marynych"},
	{"Ніжин", "Nizhyn"},
	{"Наталія", "Nataliia"},
	{"Одеса", "Odesa"},
	{"Онищенко", "Onyshchenko"},
	{"Полтава", "Poltava"},
	{"Петро", "Petro"},
	{"Решетилівка", "Reshetylivka"},
	{"Рибчинський", "Rybchynskyi"},
	{"Суми", "Sumy"},
	{"Соломія", "Solomiia"},
	{"Тернопіль", "Ternopil"},
	{"Троць", "Trots"},
	{"Ужгород", "Uzhhorod"},
	{"Уляна", "Uliana"},
	{"Фастів", "Fastiv"},
	{"Філіпчук", "Filipchuk"},
	{"Харків", "Kharkiv"},
	{"Христина", "Khrystyna"},
	{"Біла Церква", "Bila Tserkva"},
	{"Стеценко", "Stetsenko"},
	{"Чернівці", "Chernivtsi"},
	{"Шевченко", "Shevchenko"},
	{"Шостка", "Shostka"},
	{"Кишеньки", "Kyshenky"},
	{"Щербухи", "Shcherbukhy"},
	{"Гоща", "Hoshcha"},
	{"Гаращенко", "Harashchenko"},
	{"Юрій", "Yurii"},
	{"Корюківка", "Koriukivka"},
	{"Яготин", "Yahotyn"},
	{"Ярошенко", "Yaroshenko"},
	{"Костянтин", "Kostiantyn"},
	{"Знам’янка", "Znamianka"},
	{"Феодосія", "Feodosiia"},
}

var kmuUpperWords = []struct {
	input string
	want  string
}{
	{"АЛУШТА", "ALUSHTA"},
	{"АНДРІЙ", "ANDRII"},
	{"БОРЩАГІВКА", "BORSHCHAHIVKA"},
	{"БОРИСЕНКО", "BORYSENKO"},
	{"ВІННИЦЯ", "VINNYTSIA"},
	{"ВОЛОДИМИР", "VOLODYMYR"},
	{"ГАДЯЧ", "HADIACH"},
	{"БОГДАН", "BOHDAN"},
	{"ЗГУРСЬКИЙ", "ZGHURSKYI"},
	{"ПІДЗГУРСЬКИЙ", "PIDZGHURSKYI"},
	{"ҐАЛАҐАН", "GALAGAN"},
	{"ҐОРҐАНИ", "GORGANY"},
	{"ДОНЕЦЬК", "DONETSK"},
	{"ДМИТРО", "DMYTRO"},
	{"РІВНЕ", "RIVNE"},
	{"ОЛЕГ", "OLEH"},
	{"ЕСМАНЬ", "ESMAN"},
	{"ЄНАКІЄВЕ", "YeNAKIIEVE"},
	{"ГАЄВИЧ", "HAIEVYCH"},
	{"КОРОП’Є", "KOROPIE"},
	{"ЖИТОМИР", "ZhYTOMYR"},
	{"ЖАННА", "ZhANNA"},
	{"ЖЕЖЕЛІВ", "ZhEZHELIV"},
	{"ЗАКАРПАТТЯ", "ZAKARPATTIA"},
	{"КАЗИМИРЧУК", "KAZYMYRCHUK"},
	{"МЕДВИН", "MEDVYN"},
	{"МИХАЙЛЕНКО", "MYKHAILENKO"},
	{"ІВАНКІВ", "IVANKIV"},
	{"ІВАЩЕНКО", "IVASHCHENKO"},
	{"ЇЖАКЕВИЧ", "YiZHAKEVYCH"},
	{"КАДИЇВКА", "KADYIVKA"},
	{"МАР’ЇНЕ", "MARINE"},
	{"ЙОСИПІВКА", "YOSYPIVKA"},
	{"СТРИЙ", "STRYI"},
	{"ОЛЕКСІЙ", "OLEKSII"},
	{"КИЇВ", "KYIV"},
	{"КОВАЛЕНКО", "KOVALENKO"},
	{"ЛЕБЕДИН", "LEBEDYN"},
	{"ЛЕОНІД", "LEONID"},
	{"МИКОЛАЇВ", "MYKOLAIV"},
	{"МАРИНИЧ", "MARYNYCH"},
	{"НІЖИН", "NIZHYN"},
	{"НАТАЛІЯ", "NATALIIA"},
	{"ОДЕСА", "ODESA"},
	{"ОНИЩЕНКО", "ONYSHCHENKO"},
	{"ПОЛТАВА", "POLTAVA"},
	{"ПЕТРО", "PETRO"},
	{"РЕШЕТИЛІВКА", "RESHETYLIVKA"},
	{"РИБЧИНСЬКИЙ", "RYBCHYNSKYI"},
	{"СУМИ", "SUMY"},
	{"СОЛОМІЯ", "SOLOMIIA"},
	{"ТЕРНОПІЛЬ", "TERNOPIL"},
	{"ТРОЦЬ", "TROTS"},
	{"УЖГОРОД", "UZHHOROD"},
	{"УЛЯНА", "ULIANA"},
	{"ФАСТІВ", "FASTIV"},
	{"ФІЛІПЧУК", "FILIPCHUK"},
	{"ХАРКІВ", "KhARKIV"},
	{"ХРИСТИНА", "KhRYSTYNA"},
	{"БІЛА ЦЕРКВА", "BILA TsERKVA"},
	{"СТЕЦЕНКО", "STETSENKO"},
	{"ЧЕРНІВЦІ", "ChERNIVTSI"},
	{"ШЕВЧЕНКО", "ShEVCHENKO"},
	{"ШОСТКА", "ShOSTKA"},
	{"КИШЕНЬКИ", "KYSHENKY"},
	{"ЩЕРБУХИ", "ShchERBUKHY"},
	{"ГОЩА", "HOSHCHA"},
	{"ГАРАЩЕНКО", "HARASHCHENKO"},
	{"ЮРІЙ", "YuRII"},
	{"КОРЮКІВКА", "KORIUKIVKA"},
	{"ЯГОТИН", "YaHOTYN"},
	{"ЯРОШЕНКО", "YaROSHENKO"},
	{"КОСТЯНТИН", "KOSTIANTYN"},
	{"ЗНАМ’ЯНКА", "ZNAMIANKA"},
	{"ФЕОДОСІЯ", "FEODOSIIA"},
}

func TestKMUWords(t *testing.T) {
	tr := kmu(t)
	for _, tt := range kmuWords {
		if got := tr.ToLatin(tt.input); got != tt.want {
			t.Errorf("ToLatin(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestKMUUpperWords(t *testing.T) {
	tr := kmu(t)
	for _, tt := range kmuUpperWords {
		if got := tr.ToLatin(tt.input); got != tt.want {
			t.Errorf("ToLatin(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestKMUHasNoReverse(t *testing.T) {
	tr := kmu(t)
	assert.False(t, tr.Reversible())
	_, err := tr.FromLatin("Kyiv")
	assert.ErrorIs(t, err, ErrUnsupportedDirection)
}

const (
	sourceUA = "Гей, хлопці, не вспію - на ґанку " +
		"ваша файна їжа знищується бурундучком."
	gostUA = "Gej, xlopci, ne vspiyu - na g`anku " +
		"vasha fajna yizha zny`shhuyet`sya burunduchkom."
)

func TestGOSTUkrainian(t *testing.T) {
	tr := MustNew(GOST779bUA)

	assert.Equal(t, gostUA, tr.ToLatin(sourceUA))

	back, err := tr.FromLatin(gostUA)
	require.NoError(t, err)
	assert.Equal(t, sourceUA, back)
}

func TestGOSTUkrainianUpperRoundTrip(t *testing.T) {
	tr := MustNew(GOST779bUA)
	for _, s := range []string{"ЗНИЩУЄТЬСЯ", "ҐАНОК", "Їжак", "ТЬМА"} {
		back, err := tr.FromLatin(tr.ToLatin(s))
		require.NoError(t, err)
		assert.Equal(t, s, back, "round trip of %q via %q", s, tr.ToLatin(s))
	}
}
