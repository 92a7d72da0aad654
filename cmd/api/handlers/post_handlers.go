package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"posts-admin/cmd/api/services"
	"posts-admin/models"
)

type openPostFormRequest struct {
	PostID *int `json:"post_id"`
}

// OpenPostFormHandler godoc
// @Summary      Open the post form
// @Description  Without post_id the form creates a post; with post_id it edits that post from the current list.
// @Tags         admin-posts
// @Accept       json
// @Produce      json
// @Param        body  body  openPostFormRequest  false  "Post to edit"
// @Success      200  {object}  dto.AdminView
// @Failure      404  {object}  dto.ErrorWithViewDTO
// @Router       /admin/post-form/open [post]
func OpenPostFormHandler(ctrl *services.PostsController) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in openPostFormRequest
		if c.Request.ContentLength != 0 {
			if err := c.ShouldBindJSON(&in); err != nil {
				badRequest(c, err)
				return
			}
		}
		if in.PostID == nil {
			ctrl.OpenCreatePost()
			respondView(c, ctrl)
			return
		}
		if err := ctrl.OpenEditPost(*in.PostID); err != nil {
			respondError(c, ctrl, err)
			return
		}
		respondView(c, ctrl)
	}
}

// EditPostFormHandler godoc
// @Summary      Write form input into the post form
// @Description  Fields missing from the body keep their current value. While editing only title and body are taken.
// @Tags         admin-posts
// @Accept       json
// @Produce      json
// @Param        body  body  models.PostDraft  true  "Form fields"
// @Success      200  {object}  dto.AdminView
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Router       /admin/post-form [patch]
func EditPostFormHandler(ctrl *services.PostsController) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := c.GetRawData()
		if err != nil {
			badRequest(c, err)
			return
		}
		// 본문에 없는 필드는 현재 폼 값을 유지한다.
		err = ctrl.PatchPostForm(func(draft *models.PostDraft) error {
			return binding.JSON.BindBody(raw, draft)
		})
		if err != nil {
			badRequest(c, err)
			return
		}
		respondView(c, ctrl)
	}
}

// SubmitPostFormHandler godoc
// @Summary      Submit the post form
// @Description  Updates the post under edit or creates the draft and puts it first. The form closes either way.
// @Tags         admin-posts
// @Produce      json
// @Success      200  {object}  dto.AdminView
// @Failure      502  {object}  dto.ErrorWithViewDTO
// @Router       /admin/post-form/submit [post]
func SubmitPostFormHandler(ctrl *services.PostsController) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := ctrl.SubmitPostForm(c.Request.Context()); err != nil {
			respondError(c, ctrl, err)
			return
		}
		respondView(c, ctrl)
	}
}

// ClosePostFormHandler godoc
// @Summary      Close and reset the post form
// @Tags         admin-posts
// @Produce      json
// @Success      200  {object}  dto.AdminView
// @Router       /admin/post-form/close [post]
func ClosePostFormHandler(ctrl *services.PostsController) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctrl.ClosePostForm()
		respondView(c, ctrl)
	}
}

// DeletePostHandler godoc
// @Summary      Delete a post
// @Tags         admin-posts
// @Param        id   path  int  true  "Post ID"
// @Produce      json
// @Success      200  {object}  dto.AdminView
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      502  {object}  dto.ErrorWithViewDTO
// @Router       /admin/posts/{id} [delete]
func DeletePostHandler(ctrl *services.PostsController) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := intParam(c, "id")
		if !ok {
			return
		}
		if err := ctrl.DeletePost(c.Request.Context(), id); err != nil {
			respondError(c, ctrl, err)
			return
		}
		respondView(c, ctrl)
	}
}

// OpenPostDetailHandler godoc
// @Summary      Open the post detail dialog
// @Description  Loads the post's comments unless they were loaded before.
// @Tags         admin-posts
// @Param        id   path  int  true  "Post ID"
// @Produce      json
// @Success      200  {object}  dto.AdminView
// @Failure      404  {object}  dto.ErrorWithViewDTO
// @Failure      502  {object}  dto.ErrorWithViewDTO
// @Router       /admin/posts/{id}/detail [post]
func OpenPostDetailHandler(ctrl *services.PostsController) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := intParam(c, "id")
		if !ok {
			return
		}
		if err := ctrl.OpenPostDetail(c.Request.Context(), id); err != nil {
			respondError(c, ctrl, err)
			return
		}
		respondView(c, ctrl)
	}
}

// ClosePostDetailHandler godoc
// @Summary      Close the post detail dialog
// @Tags         admin-posts
// @Produce      json
// @Success      200  {object}  dto.AdminView
// @Router       /admin/post-detail/close [post]
func ClosePostDetailHandler(ctrl *services.PostsController) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctrl.ClosePostDetail()
		respondView(c, ctrl)
	}
}
