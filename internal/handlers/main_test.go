package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"microblog/internal/config"
	"microblog/internal/db"
	"microblog/internal/router"
)

// newTestServer builds the full route table against an in-memory database,
// so these tests exercise the same middleware chains production uses.
func newTestServer(t *testing.T, name string) *gin.Engine {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	cfg := config.Config{SecretKey: "test-secret", CORSOrigin: "*"}

	gin.SetMode(gin.TestMode)
	r := gin.New()
	router.RegisterRoutes(r, gdb, cfg)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}

// register creates a user through the API and returns their token.
func register(t *testing.T, r *gin.Engine, username string) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/register", "", map[string]string{
		"username": username,
		"password": "hunter22",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register %s: expected 201, got %d: %s", username, w.Code, w.Body.String())
	}
	token, _ := decode(t, w)["token"].(string)
	if token == "" {
		t.Fatalf("register %s: no token in response", username)
	}
	return token
}
