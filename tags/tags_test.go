package tags

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Parsed
	}{
		{
			name: "character prefix",
			raw:  "1:myriad",
			want: Parsed{Type: Character, Value: "myriad"},
		},
		{
			name: "maker prefix",
			raw:  "2:mixedcandy",
			want: Parsed{Type: Maker, Value: "mixedcandy"},
		},
		{
			name: "photographer prefix",
			raw:  "3:somephotographer",
			want: Parsed{Type: Photographer, Value: "somephotographer"},
		},
		{
			name: "event prefix",
			raw:  "5:anthrocon_2024",
			want: Parsed{Type: Event, Value: "anthrocon_2024"},
		},
		{
			name: "species prefix has no colon",
			raw:  "6fox",
			want: Parsed{Type: Species, Value: "fox"},
		},
		{
			name: "no prefix falls back to general",
			raw:  "outdoors",
			want: Parsed{Type: General, Value: "outdoors"},
		},
		{
			name: "unknown numeric prefix is general",
			raw:  "4:whatever",
			want: Parsed{Type: General, Value: "4:whatever"},
		},
		{
			name: "empty string",
			raw:  "",
			want: Parsed{Type: General, Value: ""},
		},
		{
			name: "no trimming is performed",
			raw:  " 1:myriad",
			want: Parsed{Type: General, Value: " 1:myriad"},
		},
		{
			name: "matching is case and byte exact",
			raw:  "1 :myriad",
			want: Parsed{Type: General, Value: "1 :myriad"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.raw))
		})
	}
}

// The bare "6" rule matches any tag starting with that digit, colon or not.
// A hypothetical "60:" prefix would be swallowed by it. That ambiguity is
// part of the upstream encoding and deliberately kept.
func TestParseSpeciesRuleOrder(t *testing.T) {
	assert.Equal(t, Parsed{Type: Species, Value: ":wolf"}, Parse("6:wolf"))
	assert.Equal(t, Parsed{Type: Species, Value: "0:future-type"}, Parse("60:future-type"))
	assert.Equal(t, Parsed{Type: Species, Value: ""}, Parse("6"))
}

func TestTypeString(t *testing.T) {
	tests := []struct {
		typ      Type
		expected string
	}{
		{General, "general"},
		{Character, "character"},
		{Maker, "maker"},
		{Photographer, "photographer"},
		{Event, "event"},
		{Species, "species"},
		{Type(99), "general"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.typ.String())
		})
	}
}

func TestValuesByType(t *testing.T) {
	records := []Record{
		{TagName: "1:Alpha"},
		{TagName: "2:Beta"},
		{TagName: "1:Gamma"},
		{TagName: "random"},
	}

	t.Run("filters in input order", func(t *testing.T) {
		assert.Equal(t, []string{"Alpha", "Gamma"}, ValuesByType(records, Character))
	})

	t.Run("no match yields empty non-nil slice", func(t *testing.T) {
		values := ValuesByType([]Record{{TagName: "2:Beta"}}, Event)
		assert.NotNil(t, values)
		assert.Empty(t, values)
	})

	t.Run("duplicates are preserved", func(t *testing.T) {
		dupes := []Record{{TagName: "6fox"}, {TagName: "6fox"}}
		assert.Equal(t, []string{"fox", "fox"}, ValuesByType(dupes, Species))
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, ValuesByType(nil, General))
	})
}
