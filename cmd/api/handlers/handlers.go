package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"posts-admin/cmd/api/dto"
	"posts-admin/cmd/api/query"
	"posts-admin/cmd/api/services"
)

// respondView writes the current view as 200.
func respondView(c *gin.Context, ctrl *services.PostsController) {
	c.JSON(http.StatusOK, ctrl.View())
}

// respondError maps a controller failure to a status and returns the
// unchanged view alongside the diagnostic.
func respondError(c *gin.Context, ctrl *services.PostsController, err error) {
	status := http.StatusBadGateway
	switch {
	case errors.Is(err, services.ErrPostNotInList), errors.Is(err, services.ErrCommentNotCached):
		status = http.StatusNotFound
	}
	_ = c.Error(err)
	c.JSON(status, dto.ErrorWithViewDTO{Error: err.Error(), View: ctrl.View()})
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: err.Error()})
}

func intParam(c *gin.Context, name string) (int, bool) {
	n, err := strconv.Atoi(c.Param(name))
	if err != nil {
		badRequest(c, errors.New("invalid "+name))
		return 0, false
	}
	return n, true
}

// ViewHandler godoc
// @Summary      Apply URL query and render the admin view
// @Description  Replaces the list query with the given parameters and refetches the page. A tag selects the tag path; a search value is stored and highlighted but not run.
// @Tags         admin-view
// @Param        skip       query  int     false  "Offset"  default(0)
// @Param        limit      query  int     false  "Page size"  default(10)
// @Param        search     query  string  false  "Search text"
// @Param        sortBy     query  string  false  "Sort key (URL only)"
// @Param        sortOrder  query  string  false  "Sort order (URL only)"  default(asc)
// @Param        tag        query  string  false  "Tag slug"
// @Produce      json
// @Success      200  {object}  dto.AdminView
// @Failure      502  {object}  dto.ErrorWithViewDTO
// @Router       /admin/view [get]
func ViewHandler(ctrl *services.PostsController) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := query.Parse(c.Request.URL.Query())
		if err := ctrl.ApplyQuery(c.Request.Context(), q); err != nil {
			respondError(c, ctrl, err)
			return
		}
		respondView(c, ctrl)
	}
}

// StateHandler godoc
// @Summary      Current admin view without refetching
// @Tags         admin-view
// @Produce      json
// @Success      200  {object}  dto.AdminView
// @Router       /admin/state [get]
func StateHandler(ctrl *services.PostsController) gin.HandlerFunc {
	return func(c *gin.Context) {
		respondView(c, ctrl)
	}
}

type searchRequest struct {
	Query string `json:"query"`
}

// SearchHandler godoc
// @Summary      Run a full-text search
// @Description  Stores the text as the search query and replaces the list with the results. An empty query lists the current page.
// @Tags         admin-view
// @Accept       json
// @Produce      json
// @Param        body  body  searchRequest  true  "Search text"
// @Success      200  {object}  dto.AdminView
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      502  {object}  dto.ErrorWithViewDTO
// @Router       /admin/search [post]
func SearchHandler(ctrl *services.PostsController) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in searchRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			badRequest(c, err)
			return
		}
		if err := ctrl.Search(c.Request.Context(), in.Query); err != nil {
			respondError(c, ctrl, err)
			return
		}
		respondView(c, ctrl)
	}
}

// TagsHandler godoc
// @Summary      Reload the tag list
// @Tags         admin-view
// @Produce      json
// @Success      200  {array}   models.Tag
// @Failure      502  {object}  dto.ErrorWithViewDTO
// @Router       /admin/tags [get]
func TagsHandler(ctrl *services.PostsController) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := ctrl.LoadTags(c.Request.Context()); err != nil {
			respondError(c, ctrl, err)
			return
		}
		c.JSON(http.StatusOK, ctrl.State().Tags)
	}
}
