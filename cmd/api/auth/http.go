package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"posts-admin/cmd/api/dto"
)

var (
	ErrMissingHeader = errors.New("missing_authorization_header")
	ErrInvalidFormat = errors.New("invalid_authorization_header")
	ErrEmptyToken    = errors.New("empty_token")
	ErrForbidden     = errors.New("forbidden_insufficient_role")
)

// ExtractBearerToken reads the token from "Authorization: Bearer <token>".
func ExtractBearerToken(c *gin.Context) (string, error) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", ErrMissingHeader
	}

	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "bearer") {
		return "", ErrInvalidFormat
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrEmptyToken
	}
	return token, nil
}

func AbortWithUnauthorized(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponseDTO{Error: err.Error()})
}

func AbortWithForbidden(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponseDTO{Error: ErrForbidden.Error()})
}
