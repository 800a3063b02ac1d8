package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"identity-service/pkg/helpers"
)

const (
	CtxUserIDKey    = "userID"
	CtxUserEmailKey = "userEmail"
)

// BearerAuth validates the Authorization header and injects the token's
// identity into the Gin context. Per request it terminates in exactly one
// of three ways: 401 Unauthorized (missing header, wrong scheme, or a
// token that fails verification), 401 Invalid Token (verified token with
// no subject id), or continue with {id, email} attached.
func BearerAuth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		scheme, token, found := strings.Cut(header, " ")
		if !found || scheme != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		claims, err := jwt.ParseAccessToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		if claims.Sub.ID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid Token"})
			return
		}

		c.Set(CtxUserIDKey, claims.Sub.ID)
		c.Set(CtxUserEmailKey, claims.Sub.Email)
		c.Next()
	}
}
