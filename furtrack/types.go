package furtrack

import (
	"fmt"

	"github.com/s0up4200/go-furtrack/tags"
)

// Reserved album IDs. User albums are numeric; these two pseudo-albums are
// addressed by fixed non-numeric IDs.
const (
	// AlbumUploads is the pseudo-album holding everything a user posted.
	AlbumUploads = "3"
	// AlbumLikes is the pseudo-album holding posts a user liked.
	AlbumLikes = "o"
)

// Post is a single post as it appears in API responses. Only the fields the
// library itself consumes are typed; FurTrack returns more than these.
type Post struct {
	ID              int64  `json:"id"`
	SubmitUserID    int64  `json:"submitUserId"`
	MetaFingerprint string `json:"metaFingerprint"`
	MetaFiletype    string `json:"metaFiletype"`
}

// ThumbnailURL builds the thumbnail URL for the post. No validation is
// performed: a post missing any of the source fields yields a URL with
// zero-value placeholders, matching how the site itself degrades. Use
// Client.GetThumbnail for a checked variant.
func (p Post) ThumbnailURL() string {
	return fmt.Sprintf("%s/gallery/%d/%d-%s.%s",
		thumbnailBaseURL, p.SubmitUserID, p.ID, p.MetaFingerprint, p.MetaFiletype)
}

// hasThumbnailFields reports whether every field the thumbnail URL is built
// from is present.
func (p Post) hasThumbnailFields() bool {
	return p.ID != 0 && p.SubmitUserID != 0 && p.MetaFingerprint != "" && p.MetaFiletype != ""
}

// PostResponse is the body of a single-post lookup. The post itself sits
// under "post"; its tags come alongside, each carrying the raw prefixed tag
// name (see the tags package).
type PostResponse struct {
	Post Post          `json:"post"`
	Tags []tags.Record `json:"tags"`
}

// postsEnvelope unwraps list responses. The "posts" field is absent when a
// page is empty.
type postsEnvelope struct {
	Posts []Post `json:"posts"`
}
