package apitest

import (
	"fmt"

	"posts-admin/models"
)

// Seeded returns a fake API with n posts (ids 1..n, userId cycling over three
// users, every third post tagged "history"), three users, comments on posts 1
// and 2, and a small tag list.
func Seeded(n int) *Server {
	posts := make([]models.Post, 0, n)
	for i := 1; i <= n; i++ {
		tags := []string{"fiction"}
		if i%3 == 0 {
			tags = append(tags, "history")
		}
		posts = append(posts, models.Post{
			ID:        i,
			Title:     fmt.Sprintf("Post %d title", i),
			Body:      fmt.Sprintf("Body of post %d", i),
			UserID:    (i-1)%3 + 1,
			Tags:      tags,
			Reactions: models.Reactions{Likes: i, Dislikes: 0},
		})
	}
	// userId 4 는 존재하지 않는 작성자다.
	if n > 0 {
		posts[n-1].UserID = 4
	}

	users := []models.UserDetail{
		{ID: 1, Username: "emilys", Image: "https://img/1", FirstName: "Emily", LastName: "Johnson", Age: 28, Email: "emily@x.dev"},
		{ID: 2, Username: "michaelw", Image: "https://img/2", FirstName: "Michael", LastName: "Williams", Age: 35},
		{ID: 3, Username: "sophiab", Image: "https://img/3", FirstName: "Sophia", LastName: "Brown", Age: 42},
	}

	comments := []models.Comment{
		{ID: 1, Body: "first!", PostID: 1, Likes: 3, User: models.CommentUser{ID: 2, Username: "michaelw"}},
		{ID: 2, Body: "nice post", PostID: 1, Likes: 0, User: models.CommentUser{ID: 3, Username: "sophiab"}},
		{ID: 3, Body: "agreed", PostID: 2, Likes: 7, User: models.CommentUser{ID: 1, Username: "emilys"}},
	}

	tags := []models.Tag{
		{Slug: "fiction", Name: "Fiction", URL: "https://api/postList/tag/fiction"},
		{Slug: "history", Name: "History", URL: "https://api/postList/tag/history"},
	}

	return New(posts, users, comments, tags)
}
