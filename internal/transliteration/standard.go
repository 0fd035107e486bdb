package transliteration

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
)

var (
	// ErrUnsupportedDirection is returned when Latin→Cyrillic conversion is
	// requested for a standard that has no reverse table.
	ErrUnsupportedDirection = errors.New("unsupported direction")
	ErrUnknownStandard      = errors.New("unknown standard")
	ErrUnknownDirection     = errors.New("unknown direction")
)

// Standard identifies one transliteration scheme for one language.
type Standard string

const (
	GOST779bRU     Standard = "gost779b-ru"
	Passport2013RU Standard = "passport2013-ru"
	GOST779bBY     Standard = "gost779b-by"
	GOST779bUA     Standard = "gost779b-ua"
	KMU2010UA      Standard = "kmu2010-ua"
)

// Info describes a registered standard.
type Info struct {
	ID          Standard `json:"id"`
	Language    string   `json:"language"`
	Description string   `json:"description"`
	Reversible  bool     `json:"reversible"`
}

// Direction selects which way a conversion runs.
type Direction string

const (
	ToLatinDirection   Direction = "to-latin"
	FromLatinDirection Direction = "from-latin"
)

// ParseDirection accepts "to-latin"/"from-latin" and their underscore forms.
func ParseDirection(s string) (Direction, error) {
	switch strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-") {
	case "", string(ToLatinDirection):
		return ToLatinDirection, nil
	case string(FromLatinDirection):
		return FromLatinDirection, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}

// ruleset is everything the engine needs to run one standard.
type ruleset struct {
	language    string
	description string

	start table
	rest  table

	elidable    runeSet
	apostrophes runeSet
	digraph     *digraphRule

	// nil for forward-only standards
	reverse *reverseTable
}

var registry = map[Standard]*ruleset{}

func register(id Standard, rs *ruleset) {
	if _, dup := registry[id]; dup {
		panic(fmt.Sprintf("transliteration: standard %s registered twice", id))
	}
	registry[id] = rs
}

// ParseStandard resolves a standard ID, ignoring case and surrounding space.
func ParseStandard(s string) (Standard, error) {
	id := Standard(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := registry[id]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownStandard, s)
	}
	return id, nil
}

// Standards lists every registered standard ordered by ID.
func Standards() []Info {
	ids := lo.Keys(registry)
	slices.Sort(ids)
	return lo.Map(ids, func(id Standard, _ int) Info {
		rs := registry[id]
		return Info{
			ID:          id,
			Language:    rs.language,
			Description: rs.description,
			Reversible:  rs.reverse != nil,
		}
	})
}

// IDs returns the registered standard IDs as strings, ordered.
func IDs() []string {
	return lo.Map(Standards(), func(i Info, _ int) string { return string(i.ID) })
}
