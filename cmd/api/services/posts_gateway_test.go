package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListPageRequestsSkipAndLimitAndJoinsAuthors(t *testing.T) {
	api, gateway, _ := newTestStack(t, 25)

	page, err := gateway.ListPage(context.Background(), 20, 10)
	require.NoError(t, err)

	assert.Equal(t, []string{"limit=10&skip=20"}, api.Queries("GET /postList"))
	assert.Equal(t, 25, page.Total)
	// min(limit, total-skip)
	assert.Len(t, page.Posts, 5)
	assert.Equal(t, []int{21, 22, 23, 24, 25}, ids(page.Posts))

	require.NotNil(t, page.Posts[0].Author)
	assert.Equal(t, page.Posts[0].UserID, page.Posts[0].Author.ID)
	assert.Equal(t, "sophiab", page.Posts[0].Author.Username)
	// post 25 belongs to a user missing from the index
	assert.Nil(t, page.Posts[4].Author)
}

func TestListPageFailsWhenUserIndexFails(t *testing.T) {
	api, gateway, _ := newTestStack(t, 5)
	api.Fail("GET /users", http.StatusInternalServerError)

	_, err := gateway.ListPage(context.Background(), 0, 10)
	assert.Error(t, err)
}

func TestListByTagAllOrEmptyDelegatesToListPage(t *testing.T) {
	api, gateway, _ := newTestStack(t, 12)
	ctx := context.Background()

	want, err := gateway.ListPage(ctx, 10, 10)
	require.NoError(t, err)

	for _, tag := range []string{"", "all"} {
		got, err := gateway.ListByTag(ctx, tag, 10, 10)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	assert.Equal(t, 0, api.Calls("GET /postList/tag/:tag"))
	assert.Equal(t, []string{"limit=10&skip=10", "limit=10&skip=10", "limit=10&skip=10"}, api.Queries("GET /postList"))
}

func TestListByTagJoinsAuthors(t *testing.T) {
	api, gateway, _ := newTestStack(t, 9)

	page, err := gateway.ListByTag(context.Background(), "history", 0, 10)
	require.NoError(t, err)

	assert.Equal(t, []int{3, 6, 9}, ids(page.Posts))
	assert.Equal(t, 3, page.Total)
	require.NotNil(t, page.Posts[0].Author)
	assert.Equal(t, "sophiab", page.Posts[0].Author.Username)
	assert.Nil(t, page.Posts[2].Author)
	assert.Equal(t, 1, api.Calls("GET /users"))
}

func TestListByTagFailsIfEitherRequestFails(t *testing.T) {
	for _, route := range []string{"GET /postList/tag/:tag", "GET /users"} {
		t.Run(route, func(t *testing.T) {
			api, gateway, _ := newTestStack(t, 9)
			api.Fail(route, http.StatusBadGateway)

			_, err := gateway.ListByTag(context.Background(), "history", 0, 10)
			assert.Error(t, err)
		})
	}
}

func TestSearchEmptyNeverCallsSearchEndpoint(t *testing.T) {
	api, gateway, _ := newTestStack(t, 5)

	page, err := gateway.Search(context.Background(), "", 0, 10)
	require.NoError(t, err)

	assert.Equal(t, 0, api.Calls("GET /postList/search"))
	assert.Equal(t, 1, api.Calls("GET /postList"))
	assert.Len(t, page.Posts, 5)
}

func TestSearchSkipsAuthorJoin(t *testing.T) {
	api, gateway, _ := newTestStack(t, 5)

	page, err := gateway.Search(context.Background(), "post 2", 0, 10)
	require.NoError(t, err)

	assert.Equal(t, []string{"q=post+2"}, api.Queries("GET /postList/search"))
	assert.Equal(t, []int{2}, ids(page.Posts))
	assert.Nil(t, page.Posts[0].Author)
	assert.Equal(t, 0, api.Calls("GET /users"))
}

func TestLoadTags(t *testing.T) {
	_, gateway, _ := newTestStack(t, 1)

	tags, err := gateway.LoadTags(context.Background())
	require.NoError(t, err)
	require.Len(t, tags, 2)
	assert.Equal(t, "history", tags[1].Slug)
}
