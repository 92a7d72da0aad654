package models

type CommentUser struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	FullName string `json:"fullName,omitempty"`
}

// Comment 는 게시물에 달린 댓글이다. PostID 가 0 이면 응답이 잘못된 것으로 본다.
type Comment struct {
	ID     int         `json:"id"`
	Body   string      `json:"body"`
	PostID int         `json:"postId"`
	UserID int         `json:"userId,omitempty"`
	Likes  int         `json:"likes"`
	User   CommentUser `json:"user"`
}

// CommentDraft is the payload of the create-comment form.
type CommentDraft struct {
	Body   string `json:"body"`
	PostID int    `json:"postId"`
	UserID int    `json:"userId"`
}

func DefaultCommentDraft() CommentDraft {
	return CommentDraft{UserID: 1}
}
