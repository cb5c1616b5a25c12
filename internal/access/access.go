// Package access gates the operator dashboard behind a shared access
// code and short-lived session tokens.
package access

import (
	"crypto/subtle"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	apperrors "github.com/terval-edu/orienta/internal/errors"
)

// Service verifies access codes and issues operator session tokens.
type Service struct {
	accessCode string
	jwtSecret  []byte
	sessionTTL time.Duration
}

// NewService creates an access service. sessionTTL bounds how long an
// issued operator token stays valid.
func NewService(accessCode, jwtSecret string, sessionTTL time.Duration) *Service {
	return &Service{
		accessCode: accessCode,
		jwtSecret:  []byte(jwtSecret),
		sessionTTL: sessionTTL,
	}
}

// Login checks the submitted access code and returns a signed session
// token on success.
func (s *Service) Login(code string) (string, error) {
	if subtle.ConstantTimeCompare([]byte(code), []byte(s.accessCode)) != 1 {
		return "", fmt.Errorf("invalid access code")
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   "operator",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.sessionTTL)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// Verify validates a session token.
func (s *Service) Verify(tokenString string) error {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return fmt.Errorf("invalid session token: %w", err)
	}
	if !token.Valid {
		return fmt.Errorf("invalid session token")
	}
	return nil
}

// Middleware rejects requests without a valid Bearer session token.
func (s *Service) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				apperrors.NewUnauthorizedError("missing operator session token"))
			return
		}
		if err := s.Verify(token); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				apperrors.NewUnauthorizedError("invalid or expired operator session token"))
			return
		}
		c.Next()
	}
}
