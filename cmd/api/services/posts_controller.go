package services

import (
	"context"
	"errors"
	"sync"

	"posts-admin/cmd/api/dto"
	"posts-admin/cmd/api/query"
	"posts-admin/cmd/internal/logger"
	"posts-admin/highlight"
	"posts-admin/models"
)

// AppState is what the admin page currently shows.
type AppState struct {
	Query   query.State
	Posts   []models.Post
	Total   int
	Loading bool
	Tags    []models.Tag
}

// PostsController owns the page state, the comments cache and the dialogs.
// Its methods are the only write path. Upstream calls run without the lock;
// results are applied under it.
//
// Every failure is logged and returned, and leaves the previous state in
// place.
type PostsController struct {
	gateway  *PostsGateway
	comments *CommentsCache

	limitOptions []int

	mu         sync.Mutex
	state      AppState
	dialogs    *DialogCoordinator
	generation uint64
}

type ControllerOption func(*PostsController)

// WithLimitOptions overrides the page sizes offered in the view.
func WithLimitOptions(opts []int) ControllerOption {
	return func(c *PostsController) {
		if len(opts) > 0 {
			c.limitOptions = append([]int(nil), opts...)
		}
	}
}

// WithInitialQuery sets the query used before the first ApplyQuery.
func WithInitialQuery(q query.State) ControllerOption {
	return func(c *PostsController) { c.state.Query = q }
}

func NewPostsController(gateway *PostsGateway, comments *CommentsCache, opts ...ControllerOption) *PostsController {
	c := &PostsController{
		gateway:      gateway,
		comments:     comments,
		limitOptions: query.LimitOptions,
		state: AppState{
			Query: query.Default(),
			Posts: []models.Post{},
			Tags:  []models.Tag{},
		},
		dialogs: NewDialogCoordinator(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func logFailure(op string, err error, fields logger.Fields) {
	if fields == nil {
		fields = logger.Fields{}
	}
	fields["op"] = op
	fields["error"] = err.Error()
	logger.ErrorWithFields("posts admin operation failed", fields)
}

// -------------------- Query / listing --------------------

// Mount loads the tag list and the first page for the current query.
func (c *PostsController) Mount(ctx context.Context) error {
	tagErr := c.LoadTags(ctx)
	listErr := c.Refresh(ctx)
	return errors.Join(tagErr, listErr)
}

func (c *PostsController) LoadTags(ctx context.Context) error {
	tags, err := c.gateway.LoadTags(ctx)
	if err != nil {
		logFailure("load_tags", err, nil)
		return err
	}

	c.mu.Lock()
	c.state.Tags = tags
	c.mu.Unlock()
	return nil
}

// ApplyQuery replaces the query (for example after the URL changed) and
// refetches through the tag path when a tag filter is active, the list path otherwise.
func (c *PostsController) ApplyQuery(ctx context.Context, q query.State) error {
	c.mu.Lock()
	c.state.Query = q
	c.mu.Unlock()
	return c.Refresh(ctx)
}

// Refresh refetches the current page for the current query.
func (c *PostsController) Refresh(ctx context.Context) error {
	return c.refetch(ctx, "refresh", func(ctx context.Context, q query.State) (models.PostPage, error) {
		if q.TagFilterActive() {
			return c.gateway.ListByTag(ctx, q.SelectedTag, q.Skip, q.Limit)
		}
		return c.gateway.ListPage(ctx, q.Skip, q.Limit)
	})
}

// Search stores text as the search query and runs it.
func (c *PostsController) Search(ctx context.Context, text string) error {
	c.mu.Lock()
	c.state.Query.SearchQuery = text
	c.mu.Unlock()

	return c.refetch(ctx, "search", func(ctx context.Context, q query.State) (models.PostPage, error) {
		return c.gateway.Search(ctx, q.SearchQuery, q.Skip, q.Limit)
	})
}

func (c *PostsController) SetPage(ctx context.Context, skip, limit int) error {
	return c.mutateQuery(ctx, func(q *query.State) {
		q.Skip = skip
		q.Limit = limit
	})
}

func (c *PostsController) NextPage(ctx context.Context) error {
	return c.mutateQuery(ctx, func(q *query.State) { *q = q.Next() })
}

func (c *PostsController) PrevPage(ctx context.Context) error {
	return c.mutateQuery(ctx, func(q *query.State) { *q = q.Prev() })
}

func (c *PostsController) SetTag(ctx context.Context, tag string) error {
	return c.mutateQuery(ctx, func(q *query.State) { q.SelectedTag = tag })
}

// SetSort only changes the URL-visible sort fields; the page is refetched as
// for any other query change.
func (c *PostsController) SetSort(ctx context.Context, sortBy, sortOrder string) error {
	return c.mutateQuery(ctx, func(q *query.State) {
		q.SortBy = sortBy
		q.SortOrder = sortOrder
	})
}

func (c *PostsController) mutateQuery(ctx context.Context, fn func(*query.State)) error {
	c.mu.Lock()
	fn(&c.state.Query)
	c.mu.Unlock()
	return c.Refresh(ctx)
}

// refetch runs fetch for the current query. Only the most recently started
// refetch may write its result; older ones are dropped when they land.
func (c *PostsController) refetch(ctx context.Context, op string, fetch func(context.Context, query.State) (models.PostPage, error)) error {
	c.mu.Lock()
	c.generation++
	gen := c.generation
	q := c.state.Query
	c.state.Loading = true
	c.mu.Unlock()

	page, err := fetch(ctx, q)

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.generation {
		logger.DebugWithFields("dropping superseded page", logger.Fields{"op": op, "generation": gen, "latest": c.generation})
		return nil
	}
	c.state.Loading = false
	if err != nil {
		logFailure(op, err, logger.Fields{"query": q.Encode()})
		return err
	}
	c.state.Posts = page.Posts
	c.state.Total = page.Total
	return nil
}

// -------------------- Post form --------------------

func (c *PostsController) OpenCreatePost() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dialogs.OpenCreatePost()
}

func (c *PostsController) OpenEditPost(id int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	p, ok := c.findPost(id)
	if !ok {
		return ErrPostNotInList
	}
	c.dialogs.OpenEditPost(p)
	return nil
}

func (c *PostsController) EditPostForm(in models.PostDraft) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dialogs.EditPostForm(in)
}

// PatchPostForm lets patch modify a copy of the current form values and writes
// the result back, so fields patch leaves alone keep their value.
func (c *PostsController) PatchPostForm(patch func(*models.PostDraft) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	draft := c.dialogs.PostFormDraft()
	if err := patch(&draft); err != nil {
		return err
	}
	c.dialogs.EditPostForm(draft)
	return nil
}

func (c *PostsController) ClosePostForm() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dialogs.ClosePostForm()
}

// SubmitPostForm updates the post under edit, or creates the draft and puts
// it first in the list. The form is closed and reset either way.
func (c *PostsController) SubmitPostForm(ctx context.Context) error {
	c.mu.Lock()
	editing, draft := c.dialogs.PostFormTarget()
	c.mu.Unlock()

	var err error
	if editing != nil {
		var updated models.Post
		updated, err = c.gateway.UpdatePost(ctx, *editing)
		if err == nil {
			c.mu.Lock()
			c.replacePost(updated)
			c.mu.Unlock()
		}
	} else {
		var created models.Post
		created, err = c.gateway.CreatePost(ctx, draft)
		if err == nil {
			c.mu.Lock()
			c.state.Posts = append([]models.Post{created}, c.state.Posts...)
			c.mu.Unlock()
		}
	}

	c.mu.Lock()
	c.dialogs.ClosePostForm()
	c.mu.Unlock()

	if err != nil {
		logFailure("submit_post_form", err, logger.Fields{"editing": editing != nil})
	}
	return err
}

// DeletePost removes the post upstream and then from the list, keeping the
// order of the others.
func (c *PostsController) DeletePost(ctx context.Context, id int) error {
	if err := c.gateway.DeletePost(ctx, id); err != nil {
		logFailure("delete_post", err, logger.Fields{"post_id": id})
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	kept := make([]models.Post, 0, len(c.state.Posts))
	for _, p := range c.state.Posts {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	c.state.Posts = kept
	return nil
}

// findPost must be called with mu held.
func (c *PostsController) findPost(id int) (models.Post, bool) {
	for _, p := range c.state.Posts {
		if p.ID == id {
			return p, true
		}
	}
	return models.Post{}, false
}

// replacePost must be called with mu held. The joined author is kept when
// the author did not change, since update responses carry none.
func (c *PostsController) replacePost(updated models.Post) {
	next := make([]models.Post, len(c.state.Posts))
	for i, p := range c.state.Posts {
		if p.ID != updated.ID {
			next[i] = p
			continue
		}
		if updated.Author == nil && p.UserID == updated.UserID {
			updated.Author = p.Author
		}
		next[i] = updated
	}
	c.state.Posts = next
}

// -------------------- Post detail / comments --------------------

// OpenPostDetail opens the detail dialog for a listed post and loads its
// comments unless they are cached.
func (c *PostsController) OpenPostDetail(ctx context.Context, id int) error {
	c.mu.Lock()
	p, ok := c.findPost(id)
	if ok {
		c.dialogs.OpenPostDetail(p)
	}
	c.mu.Unlock()
	if !ok {
		return ErrPostNotInList
	}

	if err := c.comments.EnsureLoaded(ctx, id); err != nil {
		logFailure("load_comments", err, logger.Fields{"post_id": id})
		return err
	}
	return nil
}

func (c *PostsController) ClosePostDetail() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dialogs.ClosePostDetail()
}

func (c *PostsController) OpenCreateComment(postID int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dialogs.OpenCreateComment(postID)
}

func (c *PostsController) OpenEditComment(id, postID int) error {
	cached, _ := c.comments.Comments(postID)
	for _, cm := range cached {
		if cm.ID == id {
			c.mu.Lock()
			c.dialogs.OpenEditComment(cm)
			c.mu.Unlock()
			return nil
		}
	}
	return ErrCommentNotCached
}

func (c *PostsController) EditCommentForm(body string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dialogs.EditCommentForm(body)
}

func (c *PostsController) CloseCommentForm() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dialogs.CloseCommentForm()
}

// SubmitCommentForm updates the comment under edit or creates the draft; the
// form is closed and reset either way.
func (c *PostsController) SubmitCommentForm(ctx context.Context) error {
	c.mu.Lock()
	editing, draft := c.dialogs.CommentFormTarget()
	c.mu.Unlock()

	var err error
	if editing != nil {
		_, err = c.comments.Update(ctx, *editing)
	} else {
		_, err = c.comments.Create(ctx, draft)
	}

	c.mu.Lock()
	c.dialogs.CloseCommentForm()
	c.mu.Unlock()

	if err != nil {
		logFailure("submit_comment_form", err, logger.Fields{"editing": editing != nil})
	}
	return err
}

func (c *PostsController) DeleteComment(ctx context.Context, id, postID int) error {
	if err := c.comments.Remove(ctx, id, postID); err != nil {
		logFailure("delete_comment", err, logger.Fields{"comment_id": id, "post_id": postID})
		return err
	}
	return nil
}

func (c *PostsController) LikeComment(ctx context.Context, id, postID int) error {
	if _, err := c.comments.Like(ctx, id, postID); err != nil {
		logFailure("like_comment", err, logger.Fields{"comment_id": id, "post_id": postID})
		return err
	}
	return nil
}

// -------------------- User profile --------------------

// OpenUserProfile fetches the user on every open; the dialog stays closed
// when the fetch fails.
func (c *PostsController) OpenUserProfile(ctx context.Context, userID int) error {
	u, err := c.gateway.GetUser(ctx, userID)
	if err != nil {
		logFailure("open_user_profile", err, logger.Fields{"user_id": userID})
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.dialogs.ShowUser(u)
	return nil
}

func (c *PostsController) CloseUserProfile() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dialogs.CloseUserProfile()
}

// -------------------- View --------------------

// View returns a snapshot of the page. Titles and detail comment bodies are
// rendered with the current search term marked.
func (c *PostsController) View() dto.AdminView {
	c.mu.Lock()
	st := c.state
	posts := append([]models.Post(nil), c.state.Posts...)
	tags := append([]models.Tag(nil), c.state.Tags...)
	dialogs := c.dialogs.Snapshot()
	detailID, detailOpen := c.dialogs.DetailPostID()
	c.mu.Unlock()

	term := st.Query.SearchQuery
	v := dto.AdminView{
		Query:        st.Query,
		QueryString:  st.Query.Encode(),
		Posts:        make([]dto.PostView, 0, len(posts)),
		Total:        st.Total,
		Loading:      st.Loading,
		HasPrev:      st.Query.HasPrev(),
		HasNext:      st.Query.HasNext(st.Total),
		Tags:         tags,
		LimitOptions: c.limitOptions,
		SortKeys:     query.SortKeys,
		SortOrders:   query.SortOrders,
		Dialogs:      dialogs,
	}
	for _, p := range posts {
		v.Posts = append(v.Posts, dto.PostView{Post: p, TitleHTML: highlight.HTML(p.Title, term)})
	}
	if detailOpen {
		if comments, ok := c.comments.Comments(detailID); ok {
			v.DetailComments = make([]dto.CommentView, 0, len(comments))
			for _, cm := range comments {
				v.DetailComments = append(v.DetailComments, dto.CommentView{Comment: cm, BodyHTML: highlight.HTML(cm.Body, term)})
			}
		}
	}
	return v
}

// State returns a copy of the page state.
func (c *PostsController) State() AppState {
	c.mu.Lock()
	defer c.mu.Unlock()
	st := c.state
	st.Posts = append([]models.Post(nil), c.state.Posts...)
	st.Tags = append([]models.Tag(nil), c.state.Tags...)
	return st
}

// Comments exposes the cached comments of a post.
func (c *PostsController) Comments(postID int) ([]models.Comment, bool) {
	return c.comments.Comments(postID)
}

// Dialogs returns a snapshot of the dialog state.
func (c *PostsController) Dialogs() dto.DialogsView {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dialogs.Snapshot()
}
