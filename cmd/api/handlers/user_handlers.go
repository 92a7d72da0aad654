package handlers

import (
	"github.com/gin-gonic/gin"

	"posts-admin/cmd/api/services"
)

// OpenUserProfileHandler godoc
// @Summary      Open the user profile dialog
// @Description  Fetches the full profile on every open. The dialog stays closed when the fetch fails.
// @Tags         admin-users
// @Param        id   path  int  true  "User ID"
// @Produce      json
// @Success      200  {object}  dto.AdminView
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      502  {object}  dto.ErrorWithViewDTO
// @Router       /admin/users/{id}/profile [post]
func OpenUserProfileHandler(ctrl *services.PostsController) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := intParam(c, "id")
		if !ok {
			return
		}
		if err := ctrl.OpenUserProfile(c.Request.Context(), id); err != nil {
			respondError(c, ctrl, err)
			return
		}
		respondView(c, ctrl)
	}
}

// CloseUserProfileHandler godoc
// @Summary      Close the user profile dialog
// @Tags         admin-users
// @Produce      json
// @Success      200  {object}  dto.AdminView
// @Router       /admin/user-profile/close [post]
func CloseUserProfileHandler(ctrl *services.PostsController) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctrl.CloseUserProfile()
		respondView(c, ctrl)
	}
}
