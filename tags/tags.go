// Package tags classifies FurTrack tag strings by their numeric type prefix.
//
// FurTrack encodes the type of a tag inside the tag name itself: a one or
// two character numeric prefix, terminated by ':' for most types. A tag
// with no recognized prefix is a general tag.
package tags

import "strings"

// Type represents the classification of a tag.
type Type int

const (
	// General is the fallback type for tags with no recognized prefix.
	General Type = iota
	// Character tags name a fursuit character ("1:" prefix).
	Character
	// Maker tags name a fursuit maker ("2:" prefix).
	Maker
	// Photographer tags name the photographer ("3:" prefix).
	Photographer
	// Event tags name a convention or meet ("5:" prefix).
	Event
	// Species tags name a species ("6" prefix, no colon).
	Species
)

// String returns the string representation of a Type.
func (t Type) String() string {
	switch t {
	case Character:
		return "character"
	case Maker:
		return "maker"
	case Photographer:
		return "photographer"
	case Event:
		return "event"
	case Species:
		return "species"
	default:
		return "general"
	}
}

// rule maps a tag name prefix to its type.
type rule struct {
	prefix string
	typ    Type
}

// rules is tried in order and the first matching prefix wins. The order is
// load-bearing: "6" has no colon terminator, so it also matches any tag
// whose name merely starts with the digit 6. A hypothetical future prefix
// like "60:" would be swallowed by the species rule. This mirrors the
// upstream tag encoding exactly and must not be reordered.
var rules = []rule{
	{"1:", Character},
	{"2:", Maker},
	{"3:", Photographer},
	{"5:", Event},
	{"6", Species},
}

// Parsed is the result of classifying a raw tag string.
type Parsed struct {
	Type  Type
	Value string
}

// Parse classifies a raw tag string into its type and bare value. Matching
// is byte-exact on the prefix with no trimming or case folding. Tags that
// match no rule come back as General with the value unchanged.
func Parse(raw string) Parsed {
	for _, r := range rules {
		if strings.HasPrefix(raw, r.prefix) {
			return Parsed{Type: r.typ, Value: raw[len(r.prefix):]}
		}
	}
	return Parsed{Type: General, Value: raw}
}

// Record is a single tag entry as returned by the FurTrack API.
type Record struct {
	TagName string `json:"tagName"`
}

// ValuesByType returns the bare values of every record whose parsed type
// equals t, in input order with duplicates preserved. The result is never
// nil.
func ValuesByType(records []Record, t Type) []string {
	values := make([]string, 0, len(records))
	for _, rec := range records {
		if p := Parse(rec.TagName); p.Type == t {
			values = append(values, p.Value)
		}
	}
	return values
}
