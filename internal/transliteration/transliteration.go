// Package transliteration converts Russian, Belarusian and Ukrainian text
// to and from Latin script under a fixed set of named standards.
//
// All tables are built once at package init and never mutated, so a
// Transliterator can be shared freely between goroutines.
package transliteration

import "fmt"

// Transliterator converts text under one standard.
type Transliterator struct {
	id    Standard
	rules *ruleset
}

// New returns a Transliterator for the given standard.
func New(id Standard) (*Transliterator, error) {
	rs, ok := registry[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStandard, id)
	}
	return &Transliterator{id: id, rules: rs}, nil
}

// MustNew is like New but panics on an unknown standard.
func MustNew(id Standard) *Transliterator {
	t, err := New(id)
	if err != nil {
		panic(err)
	}
	return t
}

func (t *Transliterator) Standard() Standard { return t.id }

// Reversible reports whether FromLatin is supported.
func (t *Transliterator) Reversible() bool { return t.rules.reverse != nil }

// Convert runs Cyrillic→Latin when toLatin is set, Latin→Cyrillic otherwise.
func (t *Transliterator) Convert(text string, toLatin bool) (string, error) {
	if toLatin {
		return t.ToLatin(text), nil
	}
	return t.FromLatin(text)
}

// ConvertDirection is Convert keyed by Direction.
func (t *Transliterator) ConvertDirection(text string, dir Direction) (string, error) {
	switch dir {
	case ToLatinDirection:
		return t.ToLatin(text), nil
	case FromLatinDirection:
		return t.FromLatin(text)
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDirection, dir)
}

func (t *Transliterator) ToLatin(text string) string {
	return t.rules.toLatin(text)
}

// FromLatin fails with ErrUnsupportedDirection for forward-only standards.
func (t *Transliterator) FromLatin(text string) (string, error) {
	if t.rules.reverse == nil {
		return "", fmt.Errorf("%w: %s has no reverse table", ErrUnsupportedDirection, t.id)
	}
	return t.rules.fromLatin(text), nil
}

// Convert converts text under the given standard.
func Convert(text string, id Standard, toLatin bool) (string, error) {
	t, err := New(id)
	if err != nil {
		return "", err
	}
	return t.Convert(text, toLatin)
}

func ToLatin(text string, id Standard) (string, error) {
	return Convert(text, id, true)
}

func FromLatin(text string, id Standard) (string, error) {
	return Convert(text, id, false)
}
