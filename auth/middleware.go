package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const decodedKey = "decoded"

// Require is the per-route authorization decision point. When enforce is
// false every request passes through untouched.
func Require(verifier Issuer, enforce bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !enforce {
			c.Next()
			return
		}

		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized access!"})
			return
		}

		token := header
		if _, rest, ok := strings.Cut(header, " "); ok {
			token = rest
		}

		claims, err := verifier.Verify(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Unauthorized access!"})
			return
		}

		c.Set(decodedKey, claims)
		c.Next()
	}
}

// Decoded returns the verified claims, if the request went through Require
// with enforcement on.
func Decoded(c *gin.Context) (Claims, bool) {
	v, ok := c.Get(decodedKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(Claims)
	return claims, ok
}

// OwnsEmail reports whether the caller may act on email. Requests that were
// not authenticated are allowed, matching the open-by-default routes.
func OwnsEmail(c *gin.Context, email string) bool {
	claims, ok := Decoded(c)
	if !ok {
		return true
	}
	return claims.Email() == email
}
