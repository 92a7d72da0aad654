package services

import (
	"context"

	"posts-admin/cmd/api/clients/postclient"
	"posts-admin/models"
)

// PostsAPI is the subset of postclient.Client the gateway needs.
type PostsAPI interface {
	ListPosts(ctx context.Context, skip, limit int) (postclient.ListPostsResponse, error)
	SearchPosts(ctx context.Context, query string) (postclient.ListPostsResponse, error)
	ListPostsByTag(ctx context.Context, tag string) (postclient.ListPostsResponse, error)
	ListTags(ctx context.Context) ([]models.Tag, error)
	CreatePost(ctx context.Context, draft models.PostDraft) (models.Post, error)
	UpdatePost(ctx context.Context, post models.Post) (models.Post, error)
	DeletePost(ctx context.Context, id int) error
}

type UsersAPI interface {
	ListSummaries(ctx context.Context) ([]models.UserSummary, error)
	GetUser(ctx context.Context, id int) (models.UserDetail, error)
}

type CommentsAPI interface {
	ListByPost(ctx context.Context, postID int) ([]models.Comment, error)
	Create(ctx context.Context, draft models.CommentDraft) (models.Comment, error)
	Update(ctx context.Context, comment models.Comment) (models.Comment, error)
	Delete(ctx context.Context, id int) error
	SetLikes(ctx context.Context, id, likes int) (models.Comment, error)
}
