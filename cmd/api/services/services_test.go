package services

import (
	"testing"

	"posts-admin/cmd/api/apitest"
	"posts-admin/cmd/api/clients/commentclient"
	"posts-admin/cmd/api/clients/postclient"
	"posts-admin/cmd/api/clients/userclient"
	"posts-admin/models"
)

// newTestStack wires real clients against a seeded fake API.
func newTestStack(t *testing.T, posts int) (*apitest.Server, *PostsGateway, *CommentsCache) {
	t.Helper()

	api := apitest.Seeded(posts)
	t.Cleanup(api.Close)

	base := api.Base()
	gateway := NewPostsGateway(postclient.New(base), userclient.New(base))
	cache := NewCommentsCache(commentclient.New(base))
	return api, gateway, cache
}

func newTestController(t *testing.T, posts int) (*apitest.Server, *PostsController) {
	t.Helper()

	api, gateway, cache := newTestStack(t, posts)
	return api, NewPostsController(gateway, cache)
}

func ids(posts []models.Post) []int {
	out := make([]int, 0, len(posts))
	for _, p := range posts {
		out = append(out, p.ID)
	}
	return out
}
