package transliteration

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// table maps one source rune to its replacement. Runes that are not in
// the table are copied through unchanged.
type table map[rune]string

func (t table) lookup(r rune) (string, bool) {
	s, ok := t[r]
	return s, ok
}

type runeSet map[rune]struct{}

func newRuneSet(rs ...rune) runeSet {
	set := make(runeSet, len(rs))
	for _, r := range rs {
		set[r] = struct{}{}
	}
	return set
}

func (s runeSet) has(r rune) bool {
	_, ok := s[r]
	return ok
}

// digraphRule replaces a letter with a fixed sequence when the previous
// significant rune was one of the triggers.
type digraphRule struct {
	triggers runeSet
	start    table
	rest     table
}

func (d *digraphRule) isTrigger(r rune) bool {
	return d != nil && d.triggers.has(r)
}

func (d *digraphRule) lookup(r rune, wordStart bool) (string, bool) {
	if d == nil {
		return "", false
	}
	if wordStart {
		return d.start.lookup(r)
	}
	return d.rest.lookup(r)
}

type reverseEntry struct {
	r rune
	// caseless is set for marks like ` and `` whose letter has two cases
	// but whose Latin form has none.
	caseless bool
}

type reverseTable struct {
	entries map[string]reverseEntry
	maxKey  int
}

// newReverseTable inverts a forward table. Every sequence also gets its
// all-caps form so that upper-case words convert back. Two letters that
// are not case variants of each other must never share a sequence.
func newReverseTable(forward table) *reverseTable {
	rt := &reverseTable{entries: make(map[string]reverseEntry, len(forward)*2)}
	for src, latin := range forward {
		if latin == "" {
			panic(fmt.Sprintf("transliteration: %q has an empty mapping and cannot be reversed", src))
		}
		caseless := strings.ToUpper(latin) == strings.ToLower(latin)
		if caseless {
			rt.add(latin, reverseEntry{r: unicode.ToLower(src), caseless: unicode.IsUpper(unicode.ToUpper(src))})
			continue
		}
		rt.add(latin, reverseEntry{r: src})
		if unicode.IsUpper(src) {
			if upper := strings.ToUpper(latin); upper != latin {
				rt.add(upper, reverseEntry{r: src})
			}
		}
	}
	return rt
}

func (rt *reverseTable) add(key string, e reverseEntry) {
	if prev, ok := rt.entries[key]; ok && prev.r != e.r {
		panic(fmt.Sprintf("transliteration: %q maps back to both %q and %q", key, prev.r, e.r))
	}
	rt.entries[key] = e
	if n := utf8.RuneCountInString(key); n > rt.maxKey {
		rt.maxKey = n
	}
}

func (rt *reverseTable) lookup(key string) (reverseEntry, bool) {
	e, ok := rt.entries[key]
	return e, ok
}
