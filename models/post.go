package models

// Reactions 는 게시물의 좋아요/싫어요 집계다.
type Reactions struct {
	Likes    int `json:"likes"`
	Dislikes int `json:"dislikes"`
}

// Post is a single post as returned by the posts API.
// Author is joined client-side by UserID and never sent back upstream.
type Post struct {
	ID        int          `json:"id"`
	Title     string       `json:"title"`
	Body      string       `json:"body"`
	UserID    int          `json:"userId"`
	Tags      []string     `json:"tags"`
	Reactions Reactions    `json:"reactions"`
	Views     int          `json:"views,omitempty"`
	Author    *UserSummary `json:"author,omitempty"`
}

// PostDraft is the payload of the create-post form.
type PostDraft struct {
	Title  string `json:"title"`
	Body   string `json:"body"`
	UserID int    `json:"userId"`
}

// DefaultPostDraft is the empty create-post form.
func DefaultPostDraft() PostDraft {
	return PostDraft{UserID: 1}
}

// PostPage is one page of posts plus the total number of matches upstream.
type PostPage struct {
	Posts []Post `json:"posts"`
	Total int    `json:"total"`
}
