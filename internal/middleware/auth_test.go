package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/toeic-practice-api/config"
	"github.com/lshigami/toeic-practice-api/internal/model"
	"github.com/lshigami/toeic-practice-api/internal/service"
)

func newRouter(tokens service.TokenService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", JWTAuth(tokens), func(c *gin.Context) {
		id, _ := UserID(c)
		c.JSON(http.StatusOK, gin.H{"user_id": id})
	})
	r.GET("/admin", JWTAuth(tokens), RequireRole(model.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func TestJWTAuth(t *testing.T) {
	tokens := service.NewTokenService(&config.Config{JWT: config.JWT{
		Secret:     "middleware-secret",
		AccessTTL:  time.Minute,
		RefreshTTL: time.Hour,
	}})
	user, err := tokens.IssuePair(42, "minh", model.RoleUser)
	if err != nil {
		t.Fatalf("IssuePair: %v", err)
	}
	admin, err := tokens.IssuePair(1, "root", model.RoleAdmin)
	if err != nil {
		t.Fatalf("IssuePair: %v", err)
	}
	r := newRouter(tokens)

	tests := []struct {
		name   string
		path   string
		header string
		want   int
	}{
		{"no header", "/me", "", http.StatusUnauthorized},
		{"wrong scheme", "/me", "Basic " + user.AccessToken, http.StatusUnauthorized},
		{"refresh token", "/me", "Bearer " + user.RefreshToken, http.StatusUnauthorized},
		{"tampered token", "/me", "Bearer " + user.AccessToken + "x", http.StatusUnauthorized},
		{"access token", "/me", "Bearer " + user.AccessToken, http.StatusOK},
		{"user on admin route", "/admin", "Bearer " + user.AccessToken, http.StatusForbidden},
		{"admin on admin route", "/admin", "Bearer " + admin.AccessToken, http.StatusNoContent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
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
