package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/simp-lee/jwt"
)

func setupAuthRouter(t *testing.T) (*gin.Engine, jwt.Service) {
	t.Helper()

	svc, err := jwt.New("auth-middleware-test-secret-0123456789")
	if err != nil {
		t.Fatalf("jwt.New error: %v", err)
	}
	t.Cleanup(svc.Close)

	r := gin.New()
	r.Use(Auth(svc))
	r.GET("/me", func(c *gin.Context) {
		c.String(http.StatusOK, GetUserID(c))
	})
	return r, svc
}

func TestAuth_ValidToken(t *testing.T) {
	r, svc := setupAuthRouter(t)

	token, err := svc.GenerateToken("7", nil, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if w.Body.String() != "7" {
		t.Errorf("expected user id %q in context, got %q", "7", w.Body.String())
	}
}

func TestAuth_Rejections(t *testing.T) {
	r, svc := setupAuthRouter(t)

	expired, err := svc.GenerateToken("7", nil, time.Millisecond)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}
	time.Sleep(10 * time.Millisecond)

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc123"},
		{"garbage token", "Bearer not-a-token"},
		{"expired token", "Bearer " + expired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != http.StatusUnauthorized {
				t.Fatalf("expected status 401, got %d", w.Code)
			}
			var body map[string]any
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("failed to parse JSON response: %v", err)
			}
			if msg, _ := body["message"].(string); msg != "unauthorized" {
				t.Errorf("expected message 'unauthorized', got %v", body["message"])
			}
		})
	}
}

func TestGetUserID_Unauthenticated(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	if got := GetUserID(c); got != "" {
		t.Errorf("GetUserID() = %q, want empty string", got)
	}
}
