package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func newProtectedRouter(issuer Issuer, enforce bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/user/:email", Require(issuer, enforce), func(c *gin.Context) {
		if !OwnsEmail(c, c.Param("email")) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden access"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"email": c.Param("email")})
	})
	return r
}

func TestRequire(t *testing.T) {
	issuer := newJWT(t, "secret", time.Hour)
	token, err := issuer.Issue(Claims{"email": "ana@example.com"})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	tests := []struct {
		name    string
		enforce bool
		path    string
		header  string
		want    int
	}{
		{name: "open when not enforced", path: "/user/ana@example.com", want: http.StatusOK},
		{name: "open ignores bad header", path: "/user/ana@example.com", header: "Bearer junk", want: http.StatusOK},
		{name: "missing header", enforce: true, path: "/user/ana@example.com", want: http.StatusUnauthorized},
		{name: "bad token", enforce: true, path: "/user/ana@example.com", header: "Bearer junk", want: http.StatusForbidden},
		{name: "other user's email", enforce: true, path: "/user/bob@example.com", header: "Bearer " + token, want: http.StatusForbidden},
		{name: "own email", enforce: true, path: "/user/ana@example.com", header: "Bearer " + token, want: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newProtectedRouter(issuer, tt.enforce)
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.want {
				t.Errorf("status = %d, want %d (body %s)", w.Code, tt.want, w.Body.String())
			}
		})
	}
}
