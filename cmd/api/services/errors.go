package services

import "errors"

var (
	// ErrMalformedComment indicates a comment response without a postId; the
	// local cache is left untouched.
	ErrMalformedComment = errors.New("comment response missing postId")

	// ErrPostNotInList indicates the post is not on the current page.
	ErrPostNotInList = errors.New("post not in current list")

	// ErrCommentNotCached indicates the comment is not in the loaded comments of its post.
	ErrCommentNotCached = errors.New("comment not loaded")
)
