package services

import (
	"context"
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"

	"posts-admin/models"
)

// CommentsCache maps a post id to its loaded comments. A bucket exists only
// after the comments of that post were fetched (or a comment was created into
// it); it is never refetched or expired, mutations patch it in place.
type CommentsCache struct {
	api CommentsAPI

	mu      sync.Mutex
	entries map[int][]models.Comment

	loads singleflight.Group
}

func NewCommentsCache(api CommentsAPI) *CommentsCache {
	return &CommentsCache{
		api:     api,
		entries: map[int][]models.Comment{},
	}
}

// Comments returns a copy of the bucket for postID and whether it is loaded.
func (c *CommentsCache) Comments(postID int) ([]models.Comment, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	bucket, ok := c.entries[postID]
	if !ok {
		return nil, false
	}
	return append([]models.Comment{}, bucket...), true
}

func (c *CommentsCache) loaded(postID int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.entries[postID]
	return ok
}

// EnsureLoaded fetches the comments of postID unless a bucket already exists,
// including an empty one. Concurrent callers for the same post share a single
// fetch; a failed fetch stores nothing, so the next call tries again.
func (c *CommentsCache) EnsureLoaded(ctx context.Context, postID int) error {
	if c.loaded(postID) {
		return nil
	}

	// 공유 요청은 먼저 들어온 호출자의 취소에 묶이지 않는다. 각 호출자는 자신의 ctx 로만 빠져나간다.
	fetchCtx := context.WithoutCancel(ctx)
	ch := c.loads.DoChan(strconv.Itoa(postID), func() (any, error) {
		if c.loaded(postID) {
			return nil, nil
		}
		comments, err := c.api.ListByPost(fetchCtx, postID)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		defer c.mu.Unlock()
		if _, ok := c.entries[postID]; !ok {
			c.entries[postID] = comments
		}
		return nil, nil
	})

	select {
	case res := <-ch:
		return res.Err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Create posts a new comment and appends the response to its post's bucket.
func (c *CommentsCache) Create(ctx context.Context, draft models.CommentDraft) (models.Comment, error) {
	created, err := c.api.Create(ctx, draft)
	if err != nil {
		return models.Comment{}, err
	}
	postID := created.PostID
	if postID == 0 {
		postID = draft.PostID
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[postID] = append(c.entries[postID], created)
	return created, nil
}

// Update replaces the comment in the bucket named by the response's postId.
// A response without postId returns ErrMalformedComment and changes nothing.
func (c *CommentsCache) Update(ctx context.Context, comment models.Comment) (models.Comment, error) {
	updated, err := c.api.Update(ctx, comment)
	if err != nil {
		return models.Comment{}, err
	}
	if updated.PostID == 0 {
		return models.Comment{}, ErrMalformedComment
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.replace(updated.PostID, updated.ID, func(models.Comment) models.Comment { return updated })
	return updated, nil
}

// Remove deletes the comment upstream and drops it from the postID bucket.
func (c *CommentsCache) Remove(ctx context.Context, id, postID int) error {
	if err := c.api.Delete(ctx, id); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	bucket, ok := c.entries[postID]
	if !ok {
		return nil
	}
	kept := make([]models.Comment, 0, len(bucket))
	for _, cm := range bucket {
		if cm.ID != id {
			kept = append(kept, cm)
		}
	}
	c.entries[postID] = kept
	return nil
}

// Like sends likes = cached+1 and stores the response with its likes
// overridden to the cached value + 1. The server's own count is not trusted.
func (c *CommentsCache) Like(ctx context.Context, id, postID int) (models.Comment, error) {
	c.mu.Lock()
	current := 0
	for _, cm := range c.entries[postID] {
		if cm.ID == id {
			current = cm.Likes
			break
		}
	}
	c.mu.Unlock()

	resp, err := c.api.SetLikes(ctx, id, current+1)
	if err != nil {
		return models.Comment{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	liked := resp
	c.replace(postID, resp.ID, func(cached models.Comment) models.Comment {
		liked = resp
		liked.Likes = cached.Likes + 1
		return liked
	})
	return liked, nil
}

// replace must be called with mu held. Missing buckets are not created.
func (c *CommentsCache) replace(postID, id int, fn func(models.Comment) models.Comment) {
	bucket, ok := c.entries[postID]
	if !ok {
		return
	}
	next := make([]models.Comment, len(bucket))
	for i, cm := range bucket {
		if cm.ID == id {
			next[i] = fn(cm)
		} else {
			next[i] = cm
		}
	}
	c.entries[postID] = next
}
