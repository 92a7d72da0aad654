package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"posts-admin/cmd/api/clients/postclient"
	"posts-admin/cmd/api/query"
	"posts-admin/models"
)

// PostsGateway fetches post pages from the posts API and decorates them with
// authors from the users API. It holds no list state; PostsController applies
// the results.
type PostsGateway struct {
	posts PostsAPI
	users UsersAPI
}

func NewPostsGateway(posts PostsAPI, users UsersAPI) *PostsGateway {
	return &PostsGateway{posts: posts, users: users}
}

// ListPage fetches one page and joins each post with its author from the full
// lightweight user index.
func (g *PostsGateway) ListPage(ctx context.Context, skip, limit int) (models.PostPage, error) {
	resp, err := g.posts.ListPosts(ctx, skip, limit)
	if err != nil {
		return models.PostPage{}, err
	}
	users, err := g.users.ListSummaries(ctx)
	if err != nil {
		return models.PostPage{}, err
	}
	return models.PostPage{Posts: joinAuthors(resp.PostList, users), Total: resp.Total}, nil
}

// Search runs a full-text search. An empty query is a plain ListPage.
// Search results are returned without authors.
func (g *PostsGateway) Search(ctx context.Context, q string, skip, limit int) (models.PostPage, error) {
	if q == "" {
		return g.ListPage(ctx, skip, limit)
	}
	resp, err := g.posts.SearchPosts(ctx, q)
	if err != nil {
		return models.PostPage{}, err
	}
	return models.PostPage{Posts: nonNil(resp.PostList), Total: resp.Total}, nil
}

// ListByTag fetches posts carrying tag together with the user index; both
// requests run concurrently and both must succeed. "" and "all" fall back to
// ListPage.
func (g *PostsGateway) ListByTag(ctx context.Context, tag string, skip, limit int) (models.PostPage, error) {
	if !query.IsTagFilter(tag) {
		return g.ListPage(ctx, skip, limit)
	}

	var (
		resp  postclient.ListPostsResponse
		users []models.UserSummary
	)
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		resp, err = g.posts.ListPostsByTag(egCtx, tag)
		return err
	})
	eg.Go(func() error {
		var err error
		users, err = g.users.ListSummaries(egCtx)
		return err
	})
	if err := eg.Wait(); err != nil {
		return models.PostPage{}, err
	}

	return models.PostPage{Posts: joinAuthors(resp.PostList, users), Total: resp.Total}, nil
}

func (g *PostsGateway) LoadTags(ctx context.Context) ([]models.Tag, error) {
	tags, err := g.posts.ListTags(ctx)
	if err != nil {
		return nil, err
	}
	if tags == nil {
		tags = []models.Tag{}
	}
	return tags, nil
}

func (g *PostsGateway) CreatePost(ctx context.Context, draft models.PostDraft) (models.Post, error) {
	return g.posts.CreatePost(ctx, draft)
}

func (g *PostsGateway) UpdatePost(ctx context.Context, post models.Post) (models.Post, error) {
	return g.posts.UpdatePost(ctx, post)
}

func (g *PostsGateway) DeletePost(ctx context.Context, id int) error {
	return g.posts.DeletePost(ctx, id)
}

// GetUser loads the full profile shown in the user dialog.
func (g *PostsGateway) GetUser(ctx context.Context, id int) (models.UserDetail, error) {
	return g.users.GetUser(ctx, id)
}

// joinAuthors attaches the matching user to each post; unmatched posts keep a nil Author.
func joinAuthors(posts []models.Post, users []models.UserSummary) []models.Post {
	byID := make(map[int]models.UserSummary, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	out := make([]models.Post, 0, len(posts))
	for _, p := range posts {
		if u, ok := byID[p.UserID]; ok {
			author := u
			p.Author = &author
		} else {
			p.Author = nil
		}
		out = append(out, p)
	}
	return out
}

func nonNil(posts []models.Post) []models.Post {
	if posts == nil {
		return []models.Post{}
	}
	return posts
}
