// Package apitest provides an in-memory stand-in for the upstream posts API,
// served by gin over httptest, for client, service and handler tests.
package apitest

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"

	"posts-admin/cmd/api/httpclient"
	"posts-admin/models"
)

type Server struct {
	*httptest.Server

	mu       sync.Mutex
	posts    []models.Post
	users    []models.UserDetail
	comments []models.Comment
	tags     []models.Tag
	nextPost int
	nextCmt  int

	calls   map[string]int
	queries map[string][]string
	fail    map[string]int
	holds   map[string]chan struct{}

	dropPostIDOnUpdate bool
}

// New starts a fake API seeded with the given data.
func New(posts []models.Post, users []models.UserDetail, comments []models.Comment, tags []models.Tag) *Server {
	gin.SetMode(gin.TestMode)

	s := &Server{
		posts:    append([]models.Post(nil), posts...),
		users:    append([]models.UserDetail(nil), users...),
		comments: append([]models.Comment(nil), comments...),
		tags:     append([]models.Tag(nil), tags...),
		nextPost: 1000,
		nextCmt:  1000,
		calls:    map[string]int{},
		queries:  map[string][]string{},
		fail:     map[string]int{},
		holds:    map[string]chan struct{}{},
	}
	for _, p := range posts {
		if p.ID >= s.nextPost {
			s.nextPost = p.ID + 1
		}
	}
	for _, c := range comments {
		if c.ID >= s.nextCmt {
			s.nextCmt = c.ID + 1
		}
	}

	r := gin.New()
	r.Use(s.record)

	r.GET("/postList", s.listPosts)
	r.GET("/postList/search", s.searchPosts)
	r.GET("/postList/tag/:tag", s.postsByTag)
	r.GET("/postList/tags", func(c *gin.Context) { c.JSON(http.StatusOK, s.tags) })
	r.POST("/postList/add", s.addPost)
	r.PUT("/postList/:id", s.updatePost)
	r.DELETE("/postList/:id", s.deletePost)

	r.GET("/users", s.listUsers)
	r.GET("/users/:id", s.getUser)

	r.GET("/comments/post/:postId", s.commentsByPost)
	r.POST("/comments/add", s.addComment)
	r.PUT("/comments/:id", s.updateComment)
	r.PATCH("/comments/:id", s.patchComment)
	r.DELETE("/comments/:id", s.deleteComment)

	s.Server = httptest.NewServer(r)
	return s
}

// Base returns a BaseClient pointed at the fake server.
func (s *Server) Base() *httpclient.BaseClient {
	return httpclient.NewBaseClient(s.URL)
}

// Calls returns how many times the route key (e.g. "GET /postList/tag/:tag") was hit.
func (s *Server) Calls(key string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[key]
}

// Queries returns raw query strings seen for the route key, in order.
func (s *Server) Queries(key string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.queries[key]...)
}

// Fail makes every following request to key answer with status.
func (s *Server) Fail(key string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fail[key] = status
}

// SetDropPostIDOnUpdate makes PUT /comments/:id answer without postId.
func (s *Server) SetDropPostIDOnUpdate(drop bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dropPostIDOnUpdate = drop
}

// Hold blocks requests to key until the returned release func is called.
func (s *Server) Hold(key string) (release func()) {
	ch := make(chan struct{})
	s.mu.Lock()
	s.holds[key] = ch
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.holds, key)
			s.mu.Unlock()
			close(ch)
		})
	}
}

func (s *Server) record(c *gin.Context) {
	key := c.Request.Method + " " + c.FullPath()

	s.mu.Lock()
	s.calls[key]++
	s.queries[key] = append(s.queries[key], c.Request.URL.RawQuery)
	status := s.fail[key]
	hold := s.holds[key]
	s.mu.Unlock()

	if hold != nil {
		<-hold
	}
	if status != 0 {
		c.AbortWithStatusJSON(status, gin.H{"message": "injected failure"})
		return
	}
	c.Next()
}

func intQuery(c *gin.Context, key string, def int) int {
	n, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return def
	}
	return n
}

func page[T any](items []T, skip, limit int) []T {
	if skip < 0 {
		skip = 0
	}
	if skip >= len(items) {
		return []T{}
	}
	end := len(items)
	if limit > 0 && skip+limit < end {
		end = skip + limit
	}
	return append([]T{}, items[skip:end]...)
}

func (s *Server) listPosts(c *gin.Context) {
	skip := intQuery(c, "skip", 0)
	limit := intQuery(c, "limit", 30)

	s.mu.Lock()
	defer s.mu.Unlock()
	c.JSON(http.StatusOK, gin.H{"postList": page(s.posts, skip, limit), "total": len(s.posts), "skip": skip, "limit": limit})
}

func (s *Server) searchPosts(c *gin.Context) {
	q := strings.ToLower(c.Query("q"))

	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Post{}
	for _, p := range s.posts {
		if strings.Contains(strings.ToLower(p.Title), q) || strings.Contains(strings.ToLower(p.Body), q) {
			out = append(out, p)
		}
	}
	c.JSON(http.StatusOK, gin.H{"postList": out, "total": len(out)})
}

func (s *Server) postsByTag(c *gin.Context) {
	tag := c.Param("tag")

	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Post{}
	for _, p := range s.posts {
		for _, t := range p.Tags {
			if t == tag {
				out = append(out, p)
				break
			}
		}
	}
	c.JSON(http.StatusOK, gin.H{"postList": out, "total": len(out)})
}

func (s *Server) addPost(c *gin.Context) {
	var draft models.PostDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// 실제 mock API 처럼 저장하지 않고 새 id 만 부여해 돌려준다.
	p := models.Post{ID: s.nextPost, Title: draft.Title, Body: draft.Body, UserID: draft.UserID, Tags: []string{}}
	s.nextPost++
	c.JSON(http.StatusCreated, p)
}

func (s *Server) updatePost(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var in models.Post
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.posts {
		if p.ID == id {
			in.ID = id
			s.posts[i] = in
			c.JSON(http.StatusOK, in)
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"message": "post not found"})
}

func (s *Server) deletePost(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.posts {
		if p.ID == id {
			c.JSON(http.StatusOK, gin.H{"id": id, "isDeleted": true})
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"message": "post not found"})
}

func (s *Server) listUsers(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.UserSummary, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, models.UserSummary{ID: u.ID, Username: u.Username, Image: u.Image})
	}
	c.JSON(http.StatusOK, gin.H{"users": out, "total": len(out)})
}

func (s *Server) getUser(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.ID == id {
			c.JSON(http.StatusOK, u)
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"message": "user not found"})
}

func (s *Server) commentsByPost(c *gin.Context) {
	postID, _ := strconv.Atoi(c.Param("postId"))

	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Comment{}
	for _, cm := range s.comments {
		if cm.PostID == postID {
			out = append(out, cm)
		}
	}
	c.JSON(http.StatusOK, gin.H{"comments": out, "total": len(out)})
}

func (s *Server) addComment(c *gin.Context) {
	var draft models.CommentDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	cm := models.Comment{ID: s.nextCmt, Body: draft.Body, PostID: draft.PostID, User: models.CommentUser{ID: draft.UserID}}
	s.nextCmt++
	c.JSON(http.StatusCreated, cm)
}

func (s *Server) findComment(id int) int {
	for i, cm := range s.comments {
		if cm.ID == id {
			return i
		}
	}
	return -1
}

func (s *Server) updateComment(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var in models.Comment
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.findComment(id)
	if i < 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "comment not found"})
		return
	}
	in.ID = id
	s.comments[i] = in
	if s.dropPostIDOnUpdate {
		in.PostID = 0
	}
	c.JSON(http.StatusOK, in)
}

func (s *Server) patchComment(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var in struct {
		Likes int `json:"likes"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.findComment(id)
	if i < 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "comment not found"})
		return
	}
	s.comments[i].Likes = in.Likes
	c.JSON(http.StatusOK, s.comments[i])
}

func (s *Server) deleteComment(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.findComment(id) < 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "comment not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "isDeleted": true})
}

// LikesOf returns the server-side likes of a comment, or -1 when absent.
func (s *Server) LikesOf(id int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.findComment(id); i >= 0 {
		return s.comments[i].Likes
	}
	return -1
}
