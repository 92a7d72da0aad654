package userclient

import (
	"context"
	"net/http"
	"net/url"
	"path"
	"strconv"

	"posts-admin/cmd/api/httpclient"
	"posts-admin/models"
)

// Client는 users API(/users)를 호출하는 얇은 클라이언트다.
//
// - 목록 화면의 작성자 배지는 ListSummaries 의 경량 인덱스를 사용하고,
// - 프로필 다이얼로그는 열 때마다 GetUser 로 전체 정보를 가져온다.
type Client struct {
	base *httpclient.BaseClient
}

var ErrNotFound = httpclient.ErrNotFound

func New(base *httpclient.BaseClient) *Client {
	return &Client{base: base}
}

type ListUsersResponse struct {
	Users []models.UserSummary `json:"users"`
	Total int                  `json:"total"`
}

// ListSummaries는 GET /users?limit=0&select=username,image 를 호출해 전체 유저 인덱스를 가져온다.
func (c *Client) ListSummaries(ctx context.Context) ([]models.UserSummary, error) {
	q := url.Values{}
	q.Set("limit", "0")
	q.Set("select", "username,image")

	var out ListUsersResponse
	if err := c.base.DoJSON(ctx, "users-api ListSummaries", http.MethodGet, "/users", q, nil, &out); err != nil {
		return nil, err
	}
	return out.Users, nil
}

// GetUser는 GET /users/{id} 를 호출한다.
// 존재하지 않으면 ErrNotFound 와 errors.Is 로 매칭되는 에러를 반환한다.
func (c *Client) GetUser(ctx context.Context, id int) (models.UserDetail, error) {
	var out models.UserDetail
	err := c.base.DoJSON(ctx, "users-api GetUser", http.MethodGet, path.Join("/users", strconv.Itoa(id)), nil, nil, &out)
	return out, err
}
