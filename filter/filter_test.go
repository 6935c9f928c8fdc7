package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/go-furtrack/furtrack"
)

func TestCompile(t *testing.T) {
	t.Run("valid expression", func(t *testing.T) {
		f, err := Compile(`Filetype == "jpg"`)
		require.NoError(t, err)
		assert.Equal(t, `Filetype == "jpg"`, f.String())
	})

	t.Run("empty expression", func(t *testing.T) {
		_, err := Compile("   ")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "empty filter expression")
	})

	t.Run("syntax error", func(t *testing.T) {
		_, err := Compile(`Filetype ==`)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to compile")
	})
}

func TestEvaluate(t *testing.T) {
	jpg := furtrack.Post{ID: 10, SubmitUserID: 42, MetaFingerprint: "abc", MetaFiletype: "jpg"}
	video := furtrack.Post{ID: 11, SubmitUserID: 7, MetaFingerprint: "def", MetaFiletype: "mp4"}

	tests := []struct {
		name string
		expr string
		post furtrack.Post
		want bool
	}{
		{"filetype match", `Filetype == "jpg"`, jpg, true},
		{"filetype mismatch", `Filetype == "jpg"`, video, false},
		{"id comparison", `ID > 10`, video, true},
		{"uploader helper", `uploadedBy(42)`, jpg, true},
		{"video helper", `isVideo()`, video, true},
		{"video helper on image", `isVideo()`, jpg, false},
		{"case-insensitive helper", `icontains(Fingerprint, "AB")`, jpg, true},
		{"case-insensitive helper with lower helper", `iendsWith(upper(Filetype), "PG")`, jpg, true},
		{"native contains operator", `Fingerprint contains "ab"`, jpg, true},
		{"native contains operator is case-sensitive", `Fingerprint contains "AB"`, jpg, false},
		{"native startsWith operator", `Filetype startsWith "jp"`, jpg, true},
		{"combined", `Filetype == "mp4" && SubmitUserID == 7`, video, true},
		{"non-boolean result is no match", `ID`, jpg, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Compile(tt.expr)
			require.NoError(t, err)
			assert.Equal(t, tt.want, f.Evaluate(tt.post))
		})
	}
}

func TestApply(t *testing.T) {
	posts := []furtrack.Post{
		{ID: 1, MetaFiletype: "jpg"},
		{ID: 2, MetaFiletype: "mp4"},
		{ID: 3, MetaFiletype: "jpg"},
	}

	f, err := Compile(`Filetype == "jpg"`)
	require.NoError(t, err)

	matched := f.Apply(posts)
	require.Len(t, matched, 2)
	assert.Equal(t, int64(1), matched[0].ID)
	assert.Equal(t, int64(3), matched[1].ID)

	t.Run("nil filter matches everything", func(t *testing.T) {
		var nilFilter *PostFilter
		assert.Equal(t, posts, nilFilter.Apply(posts))
	})
}
