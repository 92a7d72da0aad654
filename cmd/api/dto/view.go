package dto

import (
	"posts-admin/cmd/api/query"
	"posts-admin/models"
)

// AdminView is an immutable snapshot of everything the admin page renders.
// QueryString is the canonical URL query for Query; front ends mirror it in
// the address bar.
type AdminView struct {
	Query       query.State `json:"query"`
	QueryString string      `json:"queryString"`

	Posts   []PostView `json:"posts"`
	Total   int        `json:"total"`
	Loading bool       `json:"loading"`
	HasPrev bool       `json:"hasPrev"`
	HasNext bool       `json:"hasNext"`

	Tags         []models.Tag `json:"tags"`
	LimitOptions []int        `json:"limitOptions"`
	SortKeys     []string     `json:"sortKeys"`
	SortOrders   []string     `json:"sortOrders"`

	Dialogs        DialogsView   `json:"dialogs"`
	DetailComments []CommentView `json:"detailComments,omitempty"`
}

// PostView is a post plus its title with the search term marked.
type PostView struct {
	models.Post
	TitleHTML string `json:"titleHtml"`
}

type CommentView struct {
	models.Comment
	BodyHTML string `json:"bodyHtml"`
}

// DialogsView mirrors the open dialogs and the entities bound to them.
type DialogsView struct {
	PostFormOpen    bool `json:"postFormOpen"`
	CommentFormOpen bool `json:"commentFormOpen"`
	PostDetailOpen  bool `json:"postDetailOpen"`
	UserProfileOpen bool `json:"userProfileOpen"`

	SelectedPost    *models.Post        `json:"selectedPost"`
	NewPost         models.PostDraft    `json:"newPost"`
	SelectedComment *models.Comment     `json:"selectedComment"`
	NewComment      models.CommentDraft `json:"newComment"`
	DetailPost      *models.Post        `json:"detailPost"`
	SelectedUser    *models.UserDetail  `json:"selectedUser"`
}
