package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"microblog/internal/services"
)

func newAuthTestRouter(tokens *services.TokenService, handlerRan *bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", AuthRequired(tokens), func(c *gin.Context) {
		*handlerRan = true
		c.JSON(http.StatusOK, gin.H{"user": Principal(c)})
	})
	return r
}

func TestAuthRequiredBindsPrincipal(t *testing.T) {
	tokens := services.NewTokenService("test-secret", 0)
	token, err := tokens.Issue("alice")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	var handlerRan bool
	r := newAuthTestRouter(tokens, &handlerRan)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !handlerRan {
		t.Fatal("handler did not run")
	}
}

func TestAuthRequiredAcceptsRawToken(t *testing.T) {
	tokens := services.NewTokenService("test-secret", 0)
	token, err := tokens.Issue("alice")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	var handlerRan bool
	r := newAuthTestRouter(tokens, &handlerRan)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestAuthRequiredRejectsMissingToken(t *testing.T) {
	tokens := services.NewTokenService("test-secret", 0)

	var handlerRan bool
	r := newAuthTestRouter(tokens, &handlerRan)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if handlerRan {
		t.Fatal("handler ran despite missing token")
	}
}

func TestAuthRequiredRejectsInvalidToken(t *testing.T) {
	tokens := services.NewTokenService("test-secret", 0)

	var handlerRan bool
	r := newAuthTestRouter(tokens, &handlerRan)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if handlerRan {
		t.Fatal("handler ran despite invalid token")
	}
}
