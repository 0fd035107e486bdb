package transliteration

import (
	"strings"
	"unicode"
)

// toLatin runs the forward scan. Word start is true at the beginning of
// the input and after any rune that is copied through from inside a
// word. Elided runes and dropped apostrophes are invisible to both the
// word-start and the digraph state.
func (rs *ruleset) toLatin(text string) string {
	if text == "" {
		return text
	}

	var b strings.Builder
	b.Grow(len(text) + len(text)/4)

	wordStart := true
	triggered := false

	for _, ch := range text {
		if rs.elidable.has(ch) {
			continue
		}
		if rs.apostrophes.has(ch) {
			if wordStart {
				b.WriteRune(ch)
			}
			continue
		}

		if triggered {
			triggered = false
			if out, ok := rs.digraph.lookup(ch, wordStart); ok {
				b.WriteString(out)
				wordStart = false
				continue
			}
		}
		if rs.digraph.isTrigger(ch) {
			triggered = true
		}

		if wordStart {
			if out, ok := rs.start.lookup(ch); ok {
				b.WriteString(out)
				wordStart = false
			} else {
				b.WriteRune(ch)
			}
			continue
		}
		if out, ok := rs.rest.lookup(ch); ok {
			b.WriteString(out)
		} else {
			b.WriteRune(ch)
			wordStart = true
		}
	}

	return b.String()
}

// fromLatin runs the reverse scan with greedy longest match.
func (rs *ruleset) fromLatin(text string) string {
	if text == "" {
		return text
	}

	src := []rune(text)
	var b strings.Builder
	b.Grow(len(text))

	var prev, prevPrev rune
	emit := func(r rune) {
		b.WriteRune(r)
		prevPrev, prev = prev, r
	}

	for i := 0; i < len(src); {
		n := min(rs.reverse.maxKey, len(src)-i)
		for ; n > 0; n-- {
			e, ok := rs.reverse.lookup(string(src[i : i+n]))
			if !ok {
				continue
			}
			r := e.r
			if e.caseless && upperContext(prev, prevPrev, src, i+n) {
				r = unicode.ToUpper(r)
			}
			emit(r)
			break
		}
		if n == 0 {
			emit(src[i])
			n = 1
		}
		i += n
	}

	return b.String()
}

// upperContext decides the case of a caseless mark from its neighbours:
// the letter before must be upper case, and so must the letter after, or
// the one before that when the mark ends the word.
func upperContext(prev, prevPrev rune, src []rune, next int) bool {
	if !unicode.IsUpper(prev) {
		return false
	}
	if next < len(src) && unicode.IsLetter(src[next]) {
		return unicode.IsUpper(src[next])
	}
	return unicode.IsUpper(prevPrev)
}
