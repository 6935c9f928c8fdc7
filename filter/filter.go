// Package filter compiles expr expressions for selecting posts client-side.
// The API only filters by tag server-side; anything finer (filetype,
// uploader, ID ranges) happens here after a page has been fetched.
package filter

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/s0up4200/go-furtrack/furtrack"
)

// PostFilter represents a compiled expr filter over posts.
type PostFilter struct {
	program *vm.Program
	expr    string
}

// staticEnv holds the helper functions available in every expression. The
// case-insensitive string helpers carry an "i" prefix because expr already
// claims contains/startsWith/endsWith as case-sensitive binary operators.
func staticEnv() map[string]any {
	return map[string]any{
		"icontains": func(str, substr string) bool {
			return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
		},
		"istartsWith": func(str, prefix string) bool {
			return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
		},
		"iendsWith": func(str, suffix string) bool {
			return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
		},
		"lower": strings.ToLower,
		"upper": strings.ToUpper,
	}
}

// Compile compiles a filter expression.
func Compile(expression string) (*PostFilter, error) {
	if strings.TrimSpace(expression) == "" {
		return nil, fmt.Errorf("empty filter expression")
	}

	program, err := expr.Compile(expression,
		expr.Env(staticEnv()),
		expr.AllowUndefinedVariables(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to compile filter expression: %w", err)
	}

	return &PostFilter{
		program: program,
		expr:    expression,
	}, nil
}

// Evaluate evaluates the filter against a post. Evaluation errors and
// non-boolean results count as no match.
func (f *PostFilter) Evaluate(post furtrack.Post) bool {
	env := staticEnv()

	// Direct post properties
	env["ID"] = post.ID
	env["SubmitUserID"] = post.SubmitUserID
	env["Fingerprint"] = post.MetaFingerprint
	env["Filetype"] = post.MetaFiletype
	env["ThumbnailURL"] = post.ThumbnailURL()

	env["isVideo"] = func() bool {
		switch strings.ToLower(post.MetaFiletype) {
		case "mp4", "webm", "mov":
			return true
		}
		return false
	}
	env["uploadedBy"] = func(userID int) bool {
		return post.SubmitUserID == int64(userID)
	}

	result, err := expr.Run(f.program, env)
	if err != nil {
		return false
	}

	boolResult, ok := result.(bool)
	return ok && boolResult
}

// String returns the original expression.
func (f *PostFilter) String() string {
	return f.expr
}

// Apply returns the posts matching the filter, in input order. A nil filter
// matches everything.
func (f *PostFilter) Apply(posts []furtrack.Post) []furtrack.Post {
	if f == nil {
		return posts
	}

	matched := make([]furtrack.Post, 0, len(posts))
	for _, post := range posts {
		if f.Evaluate(post) {
			matched = append(matched, post)
		}
	}
	return matched
}
