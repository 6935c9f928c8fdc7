package furtrack

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// pagedPath appends the page segment to a path. Page 0 is the first page
// and is addressed by omitting the segment entirely; the API does not
// accept a literal "/0".
func pagedPath(path string, page int) string {
	if page > 0 {
		return path + "/" + strconv.Itoa(page)
	}
	return path
}

// GetTagInfo retrieves the index entry for a tag. The response shape is
// undocumented upstream and returned as decoded.
func (c *Client) GetTagInfo(ctx context.Context, tag string) (map[string]any, error) {
	var out map[string]any
	if err := c.getJSON(ctx, "/get/index/"+url.PathEscape(tag), &out); err != nil {
		return nil, fmt.Errorf("failed to get tag %q: %w", tag, err)
	}
	return out, nil
}

// GetUser retrieves a user's profile. The response shape is undocumented
// upstream and returned as decoded.
func (c *Client) GetUser(ctx context.Context, username string) (map[string]any, error) {
	var out map[string]any
	if err := c.getJSON(ctx, "/get/u/"+url.PathEscape(username), &out); err != nil {
		return nil, fmt.Errorf("failed to get user %q: %w", username, err)
	}
	return out, nil
}

// GetPost retrieves a single post together with its tags.
func (c *Client) GetPost(ctx context.Context, postID int64) (*PostResponse, error) {
	var out PostResponse
	if err := c.getJSON(ctx, "/view/post/"+strconv.FormatInt(postID, 10), &out); err != nil {
		return nil, fmt.Errorf("failed to get post %d: %w", postID, err)
	}
	return &out, nil
}

// GetPostsByTag retrieves one page of posts carrying the given tag. Page 0
// is the first page. The result is never nil; an exhausted page comes back
// empty.
func (c *Client) GetPostsByTag(ctx context.Context, tag string, page int) ([]Post, error) {
	posts, err := c.getPosts(ctx, pagedPath("/get/tag/"+url.PathEscape(tag), page))
	if err != nil {
		return nil, fmt.Errorf("failed to get posts for tag %q: %w", tag, err)
	}
	return posts, nil
}

// GetPostsByUser retrieves one page of posts uploaded by a user.
func (c *Client) GetPostsByUser(ctx context.Context, username string, page int) ([]Post, error) {
	posts, err := c.getAlbumPosts(ctx, username, AlbumUploads, page)
	if err != nil {
		return nil, fmt.Errorf("failed to get posts for user %q: %w", username, err)
	}
	return posts, nil
}

// GetLikes retrieves one page of posts a user has liked.
func (c *Client) GetLikes(ctx context.Context, username string, page int) ([]Post, error) {
	posts, err := c.getAlbumPosts(ctx, username, AlbumLikes, page)
	if err != nil {
		return nil, fmt.Errorf("failed to get likes for user %q: %w", username, err)
	}
	return posts, nil
}

// GetAlbum retrieves one page of a user's album. Unlike the list
// operations, the body is returned whole rather than unwrapped, since
// albums carry metadata next to their posts. The response shape is
// undocumented upstream.
func (c *Client) GetAlbum(ctx context.Context, username, albumID string, page int) (map[string]any, error) {
	var out map[string]any
	if err := c.getJSON(ctx, albumPath(username, albumID, page), &out); err != nil {
		return nil, fmt.Errorf("failed to get album %s/%s: %w", username, albumID, err)
	}
	return out, nil
}

// GetThumbnail fetches a post and derives its thumbnail URL. It returns
// ErrMissingThumbnailFields when the payload lacks any of the fields the
// URL is built from; use Post.ThumbnailURL to format regardless.
func (c *Client) GetThumbnail(ctx context.Context, postID int64) (string, error) {
	resp, err := c.GetPost(ctx, postID)
	if err != nil {
		return "", err
	}
	if !resp.Post.hasThumbnailFields() {
		return "", fmt.Errorf("post %d: %w", postID, ErrMissingThumbnailFields)
	}
	return resp.Post.ThumbnailURL(), nil
}

func albumPath(username, albumID string, page int) string {
	return pagedPath("/view/album/"+url.PathEscape(username)+"/"+url.PathEscape(albumID), page)
}

func (c *Client) getAlbumPosts(ctx context.Context, username, albumID string, page int) ([]Post, error) {
	return c.getPosts(ctx, albumPath(username, albumID, page))
}

func (c *Client) getPosts(ctx context.Context, path string) ([]Post, error) {
	var envelope postsEnvelope
	if err := c.getJSON(ctx, path, &envelope); err != nil {
		return nil, err
	}

	c.logger.Debug().Str("path", path).Int("count", len(envelope.Posts)).
		Msg("Retrieved posts from FurTrack")

	if envelope.Posts == nil {
		return []Post{}, nil
	}
	return envelope.Posts, nil
}
