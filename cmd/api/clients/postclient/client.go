package postclient

import (
	"context"
	"net/http"
	"net/url"
	"path"
	"strconv"

	"posts-admin/cmd/api/httpclient"
	"posts-admin/models"
)

// Client는 posts API(/postList)를 호출하는 얇은 클라이언트다.
//
// - 작성자 조인, 목록 상태 관리는 services 레이어가 담당하고
//   이 클라이언트는 순수하게 요청/응답만 다룬다.
type Client struct {
	base *httpclient.BaseClient
}

var ErrNotFound = httpclient.ErrNotFound

func New(base *httpclient.BaseClient) *Client {
	return &Client{base: base}
}

// ListPostsResponse 는 목록/검색/태그 엔드포인트 공통 응답이다.
type ListPostsResponse struct {
	PostList []models.Post `json:"postList"`
	Total    int           `json:"total"`
	Skip     int           `json:"skip"`
	Limit    int           `json:"limit"`
}

// ListPosts는 GET /postList?limit=&skip= 를 호출한다.
func (c *Client) ListPosts(ctx context.Context, skip, limit int) (ListPostsResponse, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	q.Set("skip", strconv.Itoa(skip))

	var out ListPostsResponse
	err := c.base.DoJSON(ctx, "posts-api ListPosts", http.MethodGet, "/postList", q, nil, &out)
	return out, err
}

// SearchPosts는 GET /postList/search?q= 를 호출한다.
func (c *Client) SearchPosts(ctx context.Context, query string) (ListPostsResponse, error) {
	q := url.Values{}
	q.Set("q", query)

	var out ListPostsResponse
	err := c.base.DoJSON(ctx, "posts-api SearchPosts", http.MethodGet, "/postList/search", q, nil, &out)
	return out, err
}

// ListPostsByTag는 GET /postList/tag/{tag} 를 호출한다.
func (c *Client) ListPostsByTag(ctx context.Context, tag string) (ListPostsResponse, error) {
	var out ListPostsResponse
	err := c.base.DoJSON(ctx, "posts-api ListPostsByTag", http.MethodGet, "/postList/tag/"+httpclient.PathSegment(tag), nil, nil, &out)
	return out, err
}

// ListTags는 GET /postList/tags 를 호출한다.
func (c *Client) ListTags(ctx context.Context) ([]models.Tag, error) {
	var out []models.Tag
	err := c.base.DoJSON(ctx, "posts-api ListTags", http.MethodGet, "/postList/tags", nil, nil, &out)
	return out, err
}

// -------------------- Mutations --------------------

func (c *Client) CreatePost(ctx context.Context, draft models.PostDraft) (models.Post, error) {
	var out models.Post
	err := c.base.DoJSON(ctx, "posts-api CreatePost", http.MethodPost, "/postList/add", nil, draft, &out)
	return out, err
}

// UpdatePost는 PUT /postList/{id} 로 게시물 전체를 보낸다.
func (c *Client) UpdatePost(ctx context.Context, post models.Post) (models.Post, error) {
	// author 는 클라이언트 측 조인 결과이므로 업스트림에 보내지 않는다.
	post.Author = nil

	var out models.Post
	err := c.base.DoJSON(ctx, "posts-api UpdatePost", http.MethodPut, path.Join("/postList", strconv.Itoa(post.ID)), nil, post, &out)
	return out, err
}

func (c *Client) DeletePost(ctx context.Context, id int) error {
	return c.base.DoJSON(ctx, "posts-api DeletePost", http.MethodDelete, path.Join("/postList", strconv.Itoa(id)), nil, nil, nil)
}
