package furtrack

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// maxThumbnailConcurrency bounds the number of in-flight post lookups when
// resolving thumbnails in bulk.
const maxThumbnailConcurrency = 10

// GetThumbnails resolves thumbnail URLs for multiple posts concurrently.
// Posts that fail to resolve are logged and omitted from the result, so a
// single missing post does not sink the whole batch. The request context
// still cancels everything.
func (c *Client) GetThumbnails(ctx context.Context, postIDs []int64) (map[int64]string, error) {
	results := make(map[int64]string, len(postIDs))
	if len(postIDs) == 0 {
		return results, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxThumbnailConcurrency)

	var mu sync.Mutex

	for _, postID := range postIDs {
		postID := postID
		g.Go(func() error {
			thumbURL, err := c.GetThumbnail(ctx, postID)
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				c.logger.Warn().Err(err).Int64("post_id", postID).
					Msg("Failed to resolve thumbnail")
				return nil
			}

			mu.Lock()
			results[postID] = thumbURL
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
