package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"posts-admin/models"
)

func TestDialogCoordinatorPostFormSlots(t *testing.T) {
	d := NewDialogCoordinator()

	d.OpenCreatePost()
	d.EditPostForm(models.PostDraft{Title: "t", Body: "b", UserID: 4})
	editing, draft := d.PostFormTarget()
	assert.Nil(t, editing)
	assert.Equal(t, models.PostDraft{Title: "t", Body: "b", UserID: 4}, draft)

	d.ClosePostForm()
	_, draft = d.PostFormTarget()
	assert.Equal(t, models.DefaultPostDraft(), draft)

	d.OpenEditPost(models.Post{ID: 7, Title: "old", Body: "old body", UserID: 2})
	d.EditPostForm(models.PostDraft{Title: "new", Body: "new body", UserID: 9})
	editing, draft = d.PostFormTarget()
	require.NotNil(t, editing)
	assert.Equal(t, models.Post{ID: 7, Title: "new", Body: "new body", UserID: 2}, *editing)
	assert.Equal(t, models.DefaultPostDraft(), draft)
}

func TestDialogCoordinatorTargetsAreCopies(t *testing.T) {
	d := NewDialogCoordinator()
	d.OpenEditPost(models.Post{ID: 1, Title: "a"})

	editing, _ := d.PostFormTarget()
	editing.Title = "mutated"

	again, _ := d.PostFormTarget()
	assert.Equal(t, "a", again.Title)
}

func TestDialogCoordinatorCommentForm(t *testing.T) {
	d := NewDialogCoordinator()

	d.OpenCreateComment(5)
	d.EditCommentForm("hi")
	editing, draft := d.CommentFormTarget()
	assert.Nil(t, editing)
	assert.Equal(t, models.CommentDraft{Body: "hi", PostID: 5, UserID: 1}, draft)
	assert.True(t, d.Snapshot().CommentFormOpen)

	d.OpenEditComment(models.Comment{ID: 3, Body: "x", PostID: 5})
	d.EditCommentForm("y")
	editing, _ = d.CommentFormTarget()
	require.NotNil(t, editing)
	assert.Equal(t, "y", editing.Body)

	d.CloseCommentForm()
	v := d.Snapshot()
	assert.False(t, v.CommentFormOpen)
	assert.Nil(t, v.SelectedComment)
	assert.Equal(t, models.DefaultCommentDraft(), v.NewComment)
}

func TestDialogCoordinatorDialogsAreIndependent(t *testing.T) {
	d := NewDialogCoordinator()

	d.OpenPostDetail(models.Post{ID: 2})
	d.OpenCreateComment(2)
	d.ShowUser(models.UserDetail{ID: 1, Username: "emilys"})

	v := d.Snapshot()
	assert.True(t, v.PostDetailOpen)
	assert.True(t, v.CommentFormOpen)
	assert.True(t, v.UserProfileOpen)

	id, ok := d.DetailPostID()
	assert.True(t, ok)
	assert.Equal(t, 2, id)

	d.ClosePostDetail()
	_, ok = d.DetailPostID()
	assert.False(t, ok)
	assert.True(t, d.Snapshot().CommentFormOpen)

	d.CloseUserProfile()
	assert.Nil(t, d.Snapshot().SelectedUser)
}

func TestDialogCoordinatorPostFormDraft(t *testing.T) {
	d := NewDialogCoordinator()
	assert.Equal(t, models.DefaultPostDraft(), d.PostFormDraft())

	d.OpenEditPost(models.Post{ID: 4, Title: "t", Body: "b", UserID: 3})
	assert.Equal(t, models.PostDraft{Title: "t", Body: "b", UserID: 3}, d.PostFormDraft())
}
