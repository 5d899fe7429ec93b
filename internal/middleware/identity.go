package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/careermind/interviewprep/internal/dto"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
)

const (
	// UserIDKey is the gin context key holding the submitter identity.
	UserIDKey = "userId"
	// UserIDHeader is the unauthenticated identity header. It is honoured only
	// when no JWT secret is configured, or when explicitly trusted.
	UserIDHeader  = "X-User-Id"
	AnonymousUser = "anonymous"
)

// Claims issued by the auth service. Tokens carry the user id either in the
// custom userId claim or in sub.
type Claims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

type IdentityMiddleware struct {
	secret      []byte
	trustHeader bool
}

// NewIdentityMiddleware builds the identity resolver. With a secret set,
// X-User-Id is ignored unless trustHeader is true.
func NewIdentityMiddleware(jwtSecret string, trustHeader bool) *IdentityMiddleware {
	return &IdentityMiddleware{secret: []byte(jwtSecret), trustHeader: trustHeader || jwtSecret == ""}
}

// Resolve stores the submitter identity on the context. A bearer token wins
// over X-User-Id; an invalid token is rejected with 401. Without JWT_SECRET
// tokens cannot be verified and are ignored.
func (m *IdentityMiddleware) Resolve() gin.HandlerFunc {
	return func(c *gin.Context) {
		var userID string
		if m.trustHeader {
			userID = strings.TrimSpace(c.GetHeader(UserIDHeader))
		}

		if token := bearerToken(c); token != "" && len(m.secret) > 0 {
			id, err := m.parseToken(token)
			if err != nil {
				log.Debug().Err(err).Str("path", c.FullPath()).Msg("Rejected bearer token")
				c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Invalid or expired token"})
				return
			}
			userID = id
		}

		if userID == "" {
			userID = AnonymousUser
		}
		c.Set(UserIDKey, userID)
		c.Next()
	}
}

func (m *IdentityMiddleware) parseToken(tokenString string) (string, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", fmt.Errorf("failed to parse token: %w", err)
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return "", errors.New("invalid token")
	}
	if claims.UserID != "" {
		return claims.UserID, nil
	}
	if claims.Subject != "" {
		return claims.Subject, nil
	}
	return "", errors.New("token has no user id")
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if len(authHeader) > 7 && strings.EqualFold(authHeader[:7], "Bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}
	return ""
}

// UserID returns the identity set by Resolve, or anonymous if the middleware
// did not run.
func UserID(c *gin.Context) string {
	if v := c.GetString(UserIDKey); v != "" {
		return v
	}
	return AnonymousUser
}
