package commentclient

import (
	"context"
	"net/http"
	"path"
	"strconv"

	"posts-admin/cmd/api/httpclient"
	"posts-admin/models"
)

// Client는 comments API(/comments)를 호출하는 얇은 클라이언트다.
type Client struct {
	base *httpclient.BaseClient
}

var ErrNotFound = httpclient.ErrNotFound

func New(base *httpclient.BaseClient) *Client {
	return &Client{base: base}
}

type ListCommentsResponse struct {
	Comments []models.Comment `json:"comments"`
	Total    int              `json:"total"`
}

// ListByPost는 GET /comments/post/{postId} 를 호출한다.
func (c *Client) ListByPost(ctx context.Context, postID int) ([]models.Comment, error) {
	var out ListCommentsResponse
	if err := c.base.DoJSON(ctx, "comments-api ListByPost", http.MethodGet, path.Join("/comments/post", strconv.Itoa(postID)), nil, nil, &out); err != nil {
		return nil, err
	}
	if out.Comments == nil {
		// 빈 목록도 캐시 엔트리가 되므로 nil 대신 빈 슬라이스를 돌려준다.
		out.Comments = []models.Comment{}
	}
	return out.Comments, nil
}

func (c *Client) Create(ctx context.Context, draft models.CommentDraft) (models.Comment, error) {
	var out models.Comment
	err := c.base.DoJSON(ctx, "comments-api Create", http.MethodPost, "/comments/add", nil, draft, &out)
	return out, err
}

// Update는 PUT /comments/{id} 로 댓글 전체를 보낸다.
func (c *Client) Update(ctx context.Context, comment models.Comment) (models.Comment, error) {
	var out models.Comment
	err := c.base.DoJSON(ctx, "comments-api Update", http.MethodPut, path.Join("/comments", strconv.Itoa(comment.ID)), nil, comment, &out)
	return out, err
}

func (c *Client) Delete(ctx context.Context, id int) error {
	return c.base.DoJSON(ctx, "comments-api Delete", http.MethodDelete, path.Join("/comments", strconv.Itoa(id)), nil, nil, nil)
}

type likeRequest struct {
	Likes int `json:"likes"`
}

// SetLikes는 PATCH /comments/{id} 로 좋아요 수를 지정한다.
func (c *Client) SetLikes(ctx context.Context, id, likes int) (models.Comment, error) {
	var out models.Comment
	err := c.base.DoJSON(ctx, "comments-api SetLikes", http.MethodPatch, path.Join("/comments", strconv.Itoa(id)), nil, likeRequest{Likes: likes}, &out)
	return out, err
}
