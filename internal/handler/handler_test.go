package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/aweber/chirp/internal/handler"
	"github.com/aweber/chirp/internal/repository/sqlite"
	"github.com/aweber/chirp/internal/service"
)

// Use cost 4 for fast tests.
const testBcryptCost = 4

func newTestMux(t *testing.T) *http.ServeMux {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := sqlite.New(dbPath)
	if err != nil {
		t.Fatalf("New DB: %v", err)
	}
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux,
		service.NewAuthService(db.Users(), testBcryptCost),
		service.NewTweetService(db.Tweets()),
		service.NewSearchService(db.Tweets()),
		db,
	)
	return mux
}

// doJSON sends a request with an optional JSON body through the mux and
// returns the recorded response.
func doJSON(t *testing.T, mux *http.ServeMux, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode request body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	return w
}

// decodeBody decodes the recorded JSON response body into a generic map.
func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response body %q: %v", w.Body.String(), err)
	}
	return body
}

// registerUser registers a user through the API and returns its id.
func registerUser(t *testing.T, mux *http.ServeMux, email, username string) int64 {
	t.Helper()
	w := doJSON(t, mux, http.MethodPost, "/api/users", map[string]string{
		"email":    email,
		"password": "password123",
		"username": username,
		"name":     "Test User",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("register %s: expected 200, got %d (%s)", email, w.Code, w.Body.String())
	}
	user, ok := decodeBody(t, w)["user"].(map[string]any)
	if !ok {
		t.Fatalf("register %s: missing user object", email)
	}
	return int64(user["id"].(float64))
}
