package middleware

import (
	"github.com/gin-gonic/gin"

	"posts-admin/cmd/api/auth"
	"posts-admin/cmd/internal/logger"
)

const (
	ContextKeyOperator = "operator"
	ContextKeyRole     = "role"
)

// AdminAuthMiddleware 는 Bearer 운영자 토큰을 검증한다. admin 과 editor 역할만 통과한다.
// jwt 가 nil 이면 인증 없이 통과시킨다 (로컬 개발용).
func AdminAuthMiddleware(jwt *auth.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if jwt == nil {
			c.Next()
			return
		}

		token, err := auth.ExtractBearerToken(c)
		if err != nil {
			auth.AbortWithUnauthorized(c, err)
			return
		}

		claims, err := jwt.Parse(token)
		if err != nil {
			logger.WarnWithFields("operator token rejected", logger.Fields{"error": err.Error(), "path": c.Request.URL.Path})
			auth.AbortWithUnauthorized(c, err)
			return
		}

		if claims.Role != auth.RoleAdmin && claims.Role != auth.RoleEditor {
			logger.WarnWithFields("operator role denied", logger.Fields{"operator": claims.Subject, "role": claims.Role})
			auth.AbortWithForbidden(c)
			return
		}

		c.Set(ContextKeyOperator, claims.Subject)
		c.Set(ContextKeyRole, claims.Role)
		c.Next()
	}
}
