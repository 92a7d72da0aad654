package auth

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	RoleEditor = "editor"
	RoleAdmin  = "admin"

	defaultIssuer = "posts-admin"
)

var ErrMissingSubject = errors.New("token missing sub claim")

// OperatorClaims 는 관리 화면 운영자 토큰의 클레임이다.
type OperatorClaims struct {
	Role string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// JWTManager 는 HS256 공유 시크릿으로 운영자 토큰을 발급/검증한다.
type JWTManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

func NewJWTManager(secret, issuer string, ttl time.Duration) *JWTManager {
	if issuer == "" {
		issuer = defaultIssuer
	}
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &JWTManager{secret: []byte(secret), issuer: issuer, ttl: ttl}
}

// NewJWTManagerFromEnv 는 JWT_SECRET / JWT_ISSUER 환경변수로 JWTManager 를 만든다.
// JWT_SECRET 이 비어 있으면 (nil, nil) 을 돌려주며, 이 경우 관리 API 는 인증 없이 열린다.
func NewJWTManagerFromEnv() (*JWTManager, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, nil
	}
	if len(secret) < 16 {
		return nil, fmt.Errorf("JWT_SECRET must be at least 16 bytes, got %d", len(secret))
	}
	return NewJWTManager(secret, os.Getenv("JWT_ISSUER"), 0), nil
}

func (m *JWTManager) Issuer() string {
	return m.issuer
}

// Sign issues a token for operator with the given role.
func (m *JWTManager) Sign(operator, role string) (string, error) {
	now := time.Now()
	claims := OperatorClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   operator,
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// Parse verifies the signature, expiry and issuer of tokenString.
func (m *JWTManager) Parse(tokenString string) (OperatorClaims, error) {
	var claims OperatorClaims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(m.issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return OperatorClaims{}, err
	}
	if claims.Subject == "" {
		return OperatorClaims{}, ErrMissingSubject
	}
	return claims, nil
}
