package services

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"posts-admin/cmd/api/query"
	"posts-admin/models"
)

func TestMountLoadsTagsAndFirstPage(t *testing.T) {
	api, ctrl := newTestController(t, 25)

	require.NoError(t, ctrl.Mount(context.Background()))

	st := ctrl.State()
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, ids(st.Posts))
	assert.Equal(t, 25, st.Total)
	assert.False(t, st.Loading)
	assert.Len(t, st.Tags, 2)
	assert.Equal(t, []string{"limit=10&skip=0"}, api.Queries("GET /postList"))
}

func TestMountJoinsErrorsButKeepsWhatLoaded(t *testing.T) {
	api, ctrl := newTestController(t, 5)
	api.Fail("GET /postList/tags", http.StatusInternalServerError)

	err := ctrl.Mount(context.Background())
	require.Error(t, err)

	st := ctrl.State()
	assert.Empty(t, st.Tags)
	assert.Len(t, st.Posts, 5)
}

func TestApplyQueryUsesTagPathWhenTagSelected(t *testing.T) {
	api, ctrl := newTestController(t, 12)

	q := query.Default()
	q.SelectedTag = "history"
	require.NoError(t, ctrl.ApplyQuery(context.Background(), q))

	assert.Equal(t, []int{3, 6, 9, 12}, ids(ctrl.State().Posts))
	assert.Equal(t, 1, api.Calls("GET /postList/tag/:tag"))
	assert.Equal(t, 0, api.Calls("GET /postList"))
}

func TestApplyQueryWithTagAllUsesListPath(t *testing.T) {
	api, ctrl := newTestController(t, 12)

	q := query.Default()
	q.SelectedTag = query.TagAll
	require.NoError(t, ctrl.ApplyQuery(context.Background(), q))

	assert.Len(t, ctrl.State().Posts, 10)
	assert.Equal(t, 0, api.Calls("GET /postList/tag/:tag"))
	assert.Equal(t, 1, api.Calls("GET /postList"))
}

func TestApplyQueryWithSearchDoesNotRunSearch(t *testing.T) {
	api, ctrl := newTestController(t, 5)

	q := query.Default()
	q.SearchQuery = "post 2"
	require.NoError(t, ctrl.ApplyQuery(context.Background(), q))

	assert.Equal(t, 0, api.Calls("GET /postList/search"))
	assert.Len(t, ctrl.State().Posts, 5)
	assert.Equal(t, "post 2", ctrl.State().Query.SearchQuery)
}

func TestSearchStoresTermAndReplacesList(t *testing.T) {
	_, ctrl := newTestController(t, 5)
	ctx := context.Background()
	require.NoError(t, ctrl.Mount(ctx))

	require.NoError(t, ctrl.Search(ctx, "post 2"))

	st := ctrl.State()
	assert.Equal(t, "post 2", st.Query.SearchQuery)
	assert.Equal(t, []int{2}, ids(st.Posts))
	assert.Equal(t, 1, st.Total)
	assert.Nil(t, st.Posts[0].Author)
}

func TestPaginationMovesSkipAndRefetches(t *testing.T) {
	api, ctrl := newTestController(t, 25)
	ctx := context.Background()
	require.NoError(t, ctrl.Mount(ctx))

	require.NoError(t, ctrl.NextPage(ctx))
	assert.Equal(t, 10, ctrl.State().Query.Skip)
	assert.Equal(t, 11, ctrl.State().Posts[0].ID)

	require.NoError(t, ctrl.PrevPage(ctx))
	require.NoError(t, ctrl.PrevPage(ctx))
	assert.Equal(t, 0, ctrl.State().Query.Skip)

	require.NoError(t, ctrl.SetPage(ctx, 20, 20))
	st := ctrl.State()
	assert.Equal(t, []int{21, 22, 23, 24, 25}, ids(st.Posts))

	assert.Equal(t, "limit=20&skip=20", api.Queries("GET /postList")[4])
}

func TestSetSortOnlyChangesQuery(t *testing.T) {
	api, ctrl := newTestController(t, 5)
	ctx := context.Background()

	require.NoError(t, ctrl.SetSort(ctx, "title", "desc"))

	st := ctrl.State()
	assert.Equal(t, "title", st.Query.SortBy)
	assert.Equal(t, "desc", st.Query.SortOrder)
	for _, raw := range api.Queries("GET /postList") {
		assert.NotContains(t, raw, "sort")
		assert.NotContains(t, raw, "order")
	}
}

func TestRefetchFailureKeepsPreviousList(t *testing.T) {
	api, ctrl := newTestController(t, 5)
	ctx := context.Background()
	require.NoError(t, ctrl.Mount(ctx))

	api.Fail("GET /postList", http.StatusInternalServerError)
	require.Error(t, ctrl.NextPage(ctx))

	st := ctrl.State()
	assert.Equal(t, []int{1, 2, 3, 4, 5}, ids(st.Posts))
	assert.False(t, st.Loading)
}

func TestSupersededFetchIsDropped(t *testing.T) {
	api, ctrl := newTestController(t, 12)
	ctx := context.Background()

	release := api.Hold("GET /postList/tag/:tag")
	defer release()

	done := make(chan error, 1)
	go func() { done <- ctrl.SetTag(ctx, "history") }()

	require.Eventually(t, func() bool {
		return api.Calls("GET /postList/tag/:tag") == 1
	}, time.Second, 5*time.Millisecond)
	assert.True(t, ctrl.State().Loading)

	require.NoError(t, ctrl.SetTag(ctx, ""))
	release()
	require.NoError(t, <-done)

	st := ctrl.State()
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, ids(st.Posts))
	assert.Equal(t, 12, st.Total)
	assert.Equal(t, "", st.Query.SelectedTag)
	assert.False(t, st.Loading)
}

func TestCreatePostPrependsAndResetsForm(t *testing.T) {
	_, ctrl := newTestController(t, 5)
	ctx := context.Background()
	require.NoError(t, ctrl.Mount(ctx))

	ctrl.OpenCreatePost()
	ctrl.EditPostForm(models.PostDraft{Title: "Hello", Body: "World", UserID: 2})
	assert.True(t, ctrl.Dialogs().PostFormOpen)

	require.NoError(t, ctrl.SubmitPostForm(ctx))

	st := ctrl.State()
	require.Len(t, st.Posts, 6)
	assert.GreaterOrEqual(t, st.Posts[0].ID, 1000)
	assert.Equal(t, "Hello", st.Posts[0].Title)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, ids(st.Posts[1:]))

	d := ctrl.Dialogs()
	assert.False(t, d.PostFormOpen)
	assert.Equal(t, models.PostDraft{Title: "", Body: "", UserID: 1}, d.NewPost)
}

func TestPatchPostFormKeepsUntouchedFields(t *testing.T) {
	_, ctrl := newTestController(t, 1)

	ctrl.OpenCreatePost()
	require.NoError(t, ctrl.PatchPostForm(func(d *models.PostDraft) error {
		d.Body = "body"
		return nil
	}))
	require.NoError(t, ctrl.PatchPostForm(func(d *models.PostDraft) error {
		d.Title = "title"
		return nil
	}))
	assert.Equal(t, models.PostDraft{Title: "title", Body: "body", UserID: 1}, ctrl.Dialogs().NewPost)

	boom := errors.New("bad input")
	assert.ErrorIs(t, ctrl.PatchPostForm(func(d *models.PostDraft) error {
		d.Title = "lost"
		return boom
	}), boom)
	assert.Equal(t, "title", ctrl.Dialogs().NewPost.Title)
}

func TestCreatePostFailureClosesFormAndKeepsList(t *testing.T) {
	api, ctrl := newTestController(t, 5)
	ctx := context.Background()
	require.NoError(t, ctrl.Mount(ctx))
	api.Fail("POST /postList/add", http.StatusBadRequest)

	ctrl.OpenCreatePost()
	ctrl.EditPostForm(models.PostDraft{Title: "Hello", UserID: 1})
	require.Error(t, ctrl.SubmitPostForm(ctx))

	assert.Len(t, ctrl.State().Posts, 5)
	assert.False(t, ctrl.Dialogs().PostFormOpen)
}

func TestEditPostReplacesInPlaceAndKeepsAuthor(t *testing.T) {
	_, ctrl := newTestController(t, 5)
	ctx := context.Background()
	require.NoError(t, ctrl.Mount(ctx))

	require.NoError(t, ctrl.OpenEditPost(2))
	ctrl.EditPostForm(models.PostDraft{Title: "Renamed", Body: "New body", UserID: 3})

	d := ctrl.Dialogs()
	require.NotNil(t, d.SelectedPost)
	assert.Equal(t, 2, d.SelectedPost.UserID)

	require.NoError(t, ctrl.SubmitPostForm(ctx))

	st := ctrl.State()
	assert.Equal(t, []int{1, 2, 3, 4, 5}, ids(st.Posts))
	assert.Equal(t, "Renamed", st.Posts[1].Title)
	require.NotNil(t, st.Posts[1].Author)
	assert.Equal(t, "michaelw", st.Posts[1].Author.Username)
	assert.Nil(t, ctrl.Dialogs().SelectedPost)
}

func TestOpenEditPostUnknownID(t *testing.T) {
	_, ctrl := newTestController(t, 3)
	require.NoError(t, ctrl.Mount(context.Background()))

	assert.ErrorIs(t, ctrl.OpenEditPost(99), ErrPostNotInList)
	assert.False(t, ctrl.Dialogs().PostFormOpen)
}

func TestDeletePostKeepsOrderOfOthers(t *testing.T) {
	_, ctrl := newTestController(t, 5)
	ctx := context.Background()
	require.NoError(t, ctrl.Mount(ctx))

	require.NoError(t, ctrl.DeletePost(ctx, 3))
	assert.Equal(t, []int{1, 2, 4, 5}, ids(ctrl.State().Posts))
}

func TestDeletePostFailureKeepsList(t *testing.T) {
	api, ctrl := newTestController(t, 5)
	ctx := context.Background()
	require.NoError(t, ctrl.Mount(ctx))
	api.Fail("DELETE /postList/:id", http.StatusInternalServerError)

	require.Error(t, ctrl.DeletePost(ctx, 3))
	assert.Equal(t, []int{1, 2, 3, 4, 5}, ids(ctrl.State().Posts))
}

func TestOpenPostDetailLoadsCommentsOnce(t *testing.T) {
	api, ctrl := newTestController(t, 5)
	ctx := context.Background()
	require.NoError(t, ctrl.Mount(ctx))

	require.NoError(t, ctrl.OpenPostDetail(ctx, 1))
	ctrl.ClosePostDetail()
	require.NoError(t, ctrl.OpenPostDetail(ctx, 1))

	assert.Equal(t, 1, api.Calls("GET /comments/post/:postId"))

	v := ctrl.View()
	assert.True(t, v.Dialogs.PostDetailOpen)
	require.NotNil(t, v.Dialogs.DetailPost)
	assert.Equal(t, 1, v.Dialogs.DetailPost.ID)
	assert.Len(t, v.DetailComments, 2)
}

func TestOpenPostDetailFailureKeepsDialogOpenWithoutComments(t *testing.T) {
	api, ctrl := newTestController(t, 5)
	ctx := context.Background()
	require.NoError(t, ctrl.Mount(ctx))
	api.Fail("GET /comments/post/:postId", http.StatusInternalServerError)

	require.Error(t, ctrl.OpenPostDetail(ctx, 1))

	v := ctrl.View()
	assert.True(t, v.Dialogs.PostDetailOpen)
	assert.Nil(t, v.DetailComments)
	_, ok := ctrl.Comments(1)
	assert.False(t, ok)
}

func TestCommentFormCreateAndEdit(t *testing.T) {
	_, ctrl := newTestController(t, 5)
	ctx := context.Background()
	require.NoError(t, ctrl.Mount(ctx))
	require.NoError(t, ctrl.OpenPostDetail(ctx, 1))

	ctrl.OpenCreateComment(1)
	ctrl.EditCommentForm("hello there")
	require.NoError(t, ctrl.SubmitCommentForm(ctx))

	comments, ok := ctrl.Comments(1)
	require.True(t, ok)
	require.Len(t, comments, 3)
	assert.Equal(t, "hello there", comments[2].Body)
	assert.Equal(t, models.CommentDraft{Body: "", PostID: 0, UserID: 1}, ctrl.Dialogs().NewComment)

	require.NoError(t, ctrl.OpenEditComment(2, 1))
	ctrl.EditCommentForm("edited")
	require.NoError(t, ctrl.SubmitCommentForm(ctx))

	comments, _ = ctrl.Comments(1)
	assert.Equal(t, "edited", comments[1].Body)
	assert.False(t, ctrl.Dialogs().CommentFormOpen)
	assert.Nil(t, ctrl.Dialogs().SelectedComment)
}

func TestOpenEditCommentRequiresLoadedComment(t *testing.T) {
	_, ctrl := newTestController(t, 5)

	assert.ErrorIs(t, ctrl.OpenEditComment(1, 1), ErrCommentNotCached)
	assert.False(t, ctrl.Dialogs().CommentFormOpen)
}

func TestLikeAndDeleteComment(t *testing.T) {
	api, ctrl := newTestController(t, 5)
	ctx := context.Background()
	require.NoError(t, ctrl.Mount(ctx))
	require.NoError(t, ctrl.OpenPostDetail(ctx, 1))

	require.NoError(t, ctrl.LikeComment(ctx, 1, 1))
	comments, _ := ctrl.Comments(1)
	assert.Equal(t, 4, comments[0].Likes)
	assert.Equal(t, 4, api.LikesOf(1))

	require.NoError(t, ctrl.DeleteComment(ctx, 1, 1))
	comments, _ = ctrl.Comments(1)
	require.Len(t, comments, 1)
	assert.Equal(t, 2, comments[0].ID)
}

func TestOpenUserProfile(t *testing.T) {
	api, ctrl := newTestController(t, 5)
	ctx := context.Background()

	require.NoError(t, ctrl.OpenUserProfile(ctx, 1))
	d := ctrl.Dialogs()
	assert.True(t, d.UserProfileOpen)
	require.NotNil(t, d.SelectedUser)
	assert.Equal(t, "Emily", d.SelectedUser.FirstName)

	ctrl.CloseUserProfile()
	assert.False(t, ctrl.Dialogs().UserProfileOpen)
	assert.Nil(t, ctrl.Dialogs().SelectedUser)

	require.Error(t, ctrl.OpenUserProfile(ctx, 42))
	assert.False(t, ctrl.Dialogs().UserProfileOpen)

	require.NoError(t, ctrl.OpenUserProfile(ctx, 1))
	assert.Equal(t, 3, api.Calls("GET /users/:id"))
}

func TestViewHighlightsSearchTermAndPagination(t *testing.T) {
	_, ctrl := newTestController(t, 25)
	ctx := context.Background()
	require.NoError(t, ctrl.Mount(ctx))

	v := ctrl.View()
	assert.Equal(t, "", v.QueryString)
	assert.False(t, v.HasPrev)
	assert.True(t, v.HasNext)
	assert.Equal(t, query.LimitOptions, v.LimitOptions)

	require.NoError(t, ctrl.Search(ctx, "title"))
	v = ctrl.View()
	assert.Equal(t, "search=title", v.QueryString)
	require.NotEmpty(t, v.Posts)
	assert.Contains(t, v.Posts[0].TitleHTML, "<mark>title</mark>")
}

func TestWithLimitOptions(t *testing.T) {
	_, gateway, cache := newTestStack(t, 1)
	ctrl := NewPostsController(gateway, cache, WithLimitOptions([]int{5, 50}), WithInitialQuery(query.State{Skip: 0, Limit: 5, SortOrder: "asc"}))

	v := ctrl.View()
	assert.Equal(t, []int{5, 50}, v.LimitOptions)
	assert.Equal(t, "limit=5", v.QueryString)
}
