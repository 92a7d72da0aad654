package services

import (
	"posts-admin/cmd/api/dto"
	"posts-admin/models"
)

// DialogCoordinator tracks which dialogs are open and what each form is bound
// to. Editing and creating use separate slots: SelectedPost/SelectedComment
// hold the entity under edit, NewPost/NewComment the create drafts. Opening a
// dialog never closes another one.
//
// It is a plain state holder; PostsController serialises access.
type DialogCoordinator struct {
	postFormOpen    bool
	commentFormOpen bool
	postDetailOpen  bool
	userProfileOpen bool

	selectedPost    *models.Post
	newPost         models.PostDraft
	selectedComment *models.Comment
	newComment      models.CommentDraft
	detailPost      *models.Post
	selectedUser    *models.UserDetail
}

func NewDialogCoordinator() *DialogCoordinator {
	return &DialogCoordinator{
		newPost:    models.DefaultPostDraft(),
		newComment: models.DefaultCommentDraft(),
	}
}

// -------------------- Post form --------------------

func (d *DialogCoordinator) OpenCreatePost() {
	d.selectedPost = nil
	d.postFormOpen = true
}

func (d *DialogCoordinator) OpenEditPost(p models.Post) {
	d.selectedPost = &p
	d.postFormOpen = true
}

// EditPostForm writes form input into the bound slot. When editing, only title
// and body are editable.
func (d *DialogCoordinator) EditPostForm(in models.PostDraft) {
	if d.selectedPost != nil {
		d.selectedPost.Title = in.Title
		d.selectedPost.Body = in.Body
		return
	}
	d.newPost = in
}

// PostFormDraft returns the values the post form currently shows.
func (d *DialogCoordinator) PostFormDraft() models.PostDraft {
	if d.selectedPost != nil {
		return models.PostDraft{Title: d.selectedPost.Title, Body: d.selectedPost.Body, UserID: d.selectedPost.UserID}
	}
	return d.newPost
}

func (d *DialogCoordinator) ClosePostForm() {
	d.postFormOpen = false
	d.selectedPost = nil
	d.newPost = models.DefaultPostDraft()
}

// PostFormTarget returns copies of what the post form would submit.
func (d *DialogCoordinator) PostFormTarget() (editing *models.Post, draft models.PostDraft) {
	if d.selectedPost != nil {
		p := *d.selectedPost
		editing = &p
	}
	return editing, d.newPost
}

// -------------------- Comment form --------------------

func (d *DialogCoordinator) OpenCreateComment(postID int) {
	d.selectedComment = nil
	d.newComment.PostID = postID
	d.commentFormOpen = true
}

func (d *DialogCoordinator) OpenEditComment(c models.Comment) {
	d.selectedComment = &c
	d.commentFormOpen = true
}

func (d *DialogCoordinator) EditCommentForm(body string) {
	if d.selectedComment != nil {
		d.selectedComment.Body = body
		return
	}
	d.newComment.Body = body
}

func (d *DialogCoordinator) CloseCommentForm() {
	d.commentFormOpen = false
	d.selectedComment = nil
	d.newComment = models.DefaultCommentDraft()
}

func (d *DialogCoordinator) CommentFormTarget() (editing *models.Comment, draft models.CommentDraft) {
	if d.selectedComment != nil {
		c := *d.selectedComment
		editing = &c
	}
	return editing, d.newComment
}

// -------------------- Post detail / user profile --------------------

func (d *DialogCoordinator) OpenPostDetail(p models.Post) {
	d.detailPost = &p
	d.postDetailOpen = true
}

func (d *DialogCoordinator) ClosePostDetail() {
	d.postDetailOpen = false
	d.detailPost = nil
}

// DetailPostID returns the id of the post shown in the detail dialog.
func (d *DialogCoordinator) DetailPostID() (int, bool) {
	if !d.postDetailOpen || d.detailPost == nil {
		return 0, false
	}
	return d.detailPost.ID, true
}

func (d *DialogCoordinator) ShowUser(u models.UserDetail) {
	d.selectedUser = &u
	d.userProfileOpen = true
}

func (d *DialogCoordinator) CloseUserProfile() {
	d.userProfileOpen = false
	d.selectedUser = nil
}

// Snapshot copies the dialog state into its transport shape.
func (d *DialogCoordinator) Snapshot() dto.DialogsView {
	v := dto.DialogsView{
		PostFormOpen:    d.postFormOpen,
		CommentFormOpen: d.commentFormOpen,
		PostDetailOpen:  d.postDetailOpen,
		UserProfileOpen: d.userProfileOpen,
		NewPost:         d.newPost,
		NewComment:      d.newComment,
	}
	if d.selectedPost != nil {
		p := *d.selectedPost
		v.SelectedPost = &p
	}
	if d.selectedComment != nil {
		c := *d.selectedComment
		v.SelectedComment = &c
	}
	if d.detailPost != nil {
		p := *d.detailPost
		v.DetailPost = &p
	}
	if d.selectedUser != nil {
		u := *d.selectedUser
		v.SelectedUser = &u
	}
	return v
}
