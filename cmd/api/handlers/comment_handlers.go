package handlers

import (
	"github.com/gin-gonic/gin"

	"posts-admin/cmd/api/services"
)

type openCommentFormRequest struct {
	PostID    int  `json:"post_id" binding:"required"`
	CommentID *int `json:"comment_id"`
}

type editCommentFormRequest struct {
	Body string `json:"body"`
}

// OpenCommentFormHandler godoc
// @Summary      Open the comment form
// @Description  Without comment_id the form creates a comment on post_id; with comment_id it edits that loaded comment.
// @Tags         admin-comments
// @Accept       json
// @Produce      json
// @Param        body  body  openCommentFormRequest  true  "Target"
// @Success      200  {object}  dto.AdminView
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      404  {object}  dto.ErrorWithViewDTO
// @Router       /admin/comment-form/open [post]
func OpenCommentFormHandler(ctrl *services.PostsController) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in openCommentFormRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			badRequest(c, err)
			return
		}
		if in.CommentID == nil {
			ctrl.OpenCreateComment(in.PostID)
			respondView(c, ctrl)
			return
		}
		if err := ctrl.OpenEditComment(*in.CommentID, in.PostID); err != nil {
			respondError(c, ctrl, err)
			return
		}
		respondView(c, ctrl)
	}
}

// EditCommentFormHandler godoc
// @Summary      Write the comment body into the form
// @Tags         admin-comments
// @Accept       json
// @Produce      json
// @Param        body  body  editCommentFormRequest  true  "Body"
// @Success      200  {object}  dto.AdminView
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Router       /admin/comment-form [patch]
func EditCommentFormHandler(ctrl *services.PostsController) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in editCommentFormRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			badRequest(c, err)
			return
		}
		ctrl.EditCommentForm(in.Body)
		respondView(c, ctrl)
	}
}

// SubmitCommentFormHandler godoc
// @Summary      Submit the comment form
// @Tags         admin-comments
// @Produce      json
// @Success      200  {object}  dto.AdminView
// @Failure      502  {object}  dto.ErrorWithViewDTO
// @Router       /admin/comment-form/submit [post]
func SubmitCommentFormHandler(ctrl *services.PostsController) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := ctrl.SubmitCommentForm(c.Request.Context()); err != nil {
			respondError(c, ctrl, err)
			return
		}
		respondView(c, ctrl)
	}
}

// CloseCommentFormHandler godoc
// @Summary      Close and reset the comment form
// @Tags         admin-comments
// @Produce      json
// @Success      200  {object}  dto.AdminView
// @Router       /admin/comment-form/close [post]
func CloseCommentFormHandler(ctrl *services.PostsController) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctrl.CloseCommentForm()
		respondView(c, ctrl)
	}
}

// DeleteCommentHandler godoc
// @Summary      Delete a comment
// @Tags         admin-comments
// @Param        id         path  int  true  "Post ID"
// @Param        commentId  path  int  true  "Comment ID"
// @Produce      json
// @Success      200  {object}  dto.AdminView
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      502  {object}  dto.ErrorWithViewDTO
// @Router       /admin/posts/{id}/comments/{commentId} [delete]
func DeleteCommentHandler(ctrl *services.PostsController) gin.HandlerFunc {
	return func(c *gin.Context) {
		postID, ok := intParam(c, "id")
		if !ok {
			return
		}
		commentID, ok := intParam(c, "commentId")
		if !ok {
			return
		}
		if err := ctrl.DeleteComment(c.Request.Context(), commentID, postID); err != nil {
			respondError(c, ctrl, err)
			return
		}
		respondView(c, ctrl)
	}
}

// LikeCommentHandler godoc
// @Summary      Like a comment
// @Description  Sends the cached like count plus one.
// @Tags         admin-comments
// @Param        id         path  int  true  "Post ID"
// @Param        commentId  path  int  true  "Comment ID"
// @Produce      json
// @Success      200  {object}  dto.AdminView
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      502  {object}  dto.ErrorWithViewDTO
// @Router       /admin/posts/{id}/comments/{commentId}/like [post]
func LikeCommentHandler(ctrl *services.PostsController) gin.HandlerFunc {
	return func(c *gin.Context) {
		postID, ok := intParam(c, "id")
		if !ok {
			return
		}
		commentID, ok := intParam(c, "commentId")
		if !ok {
			return
		}
		if err := ctrl.LikeComment(c.Request.Context(), commentID, postID); err != nil {
			respondError(c, ctrl, err)
			return
		}
		respondView(c, ctrl)
	}
}
