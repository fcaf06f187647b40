package handler_test

import (
	"fmt"
	"net/http"
	"strings"
	"testing"
)

func postTweet(t *testing.T, mux *http.ServeMux, userID int64, text string) {
	t.Helper()
	w := doJSON(t, mux, http.MethodPost, fmt.Sprintf("/api/users/%d/tweets", userID), map[string]string{"tweet": text})
	if w.Code != http.StatusOK {
		t.Fatalf("post tweet %q: expected 200, got %d (%s)", text, w.Code, w.Body.String())
	}
}

func TestHandlePost_Success(t *testing.T) {
	mux := newTestMux(t)
	userID := registerUser(t, mux, "poster@example.com", "poster")

	w := doJSON(t, mux, http.MethodPost, fmt.Sprintf("/api/users/%d/tweets", userID), map[string]string{
		"tweet": "hello world",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}
	tweet, ok := decodeBody(t, w)["tweet"].(map[string]any)
	if !ok {
		t.Fatal("expected tweet object in response")
	}
	if tweet["tweet"] != "hello world" {
		t.Fatalf("expected tweet text, got %v", tweet["tweet"])
	}
	if tweet["id"].(float64) == 0 {
		t.Fatal("expected generated tweet id")
	}
	if tweet["created"] == "" {
		t.Fatal("expected created timestamp")
	}
}

func TestHandlePost_UnknownUser(t *testing.T) {
	mux := newTestMux(t)

	w := doJSON(t, mux, http.MethodPost, "/api/users/99999/tweets", map[string]string{"tweet": "orphan"})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestHandlePost_EmptyText(t *testing.T) {
	mux := newTestMux(t)
	userID := registerUser(t, mux, "blank@example.com", "blank")

	w := doJSON(t, mux, http.MethodPost, fmt.Sprintf("/api/users/%d/tweets", userID), map[string]string{"tweet": "  "})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestHandlePost_BadUserID(t *testing.T) {
	mux := newTestMux(t)

	w := doJSON(t, mux, http.MethodPost, "/api/users/abc/tweets", map[string]string{"tweet": "x"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestHandleTimeline_NewestFirst(t *testing.T) {
	mux := newTestMux(t)
	userID := registerUser(t, mux, "timeline@example.com", "timeliner")

	postTweet(t, mux, userID, "first")
	postTweet(t, mux, userID, "second")

	w := doJSON(t, mux, http.MethodGet, fmt.Sprintf("/api/users/%d/tweets", userID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	tweets, ok := decodeBody(t, w)["tweets"].([]any)
	if !ok {
		t.Fatal("expected tweets array in response")
	}
	if len(tweets) != 2 {
		t.Fatalf("expected 2 tweets, got %d", len(tweets))
	}

	newest := tweets[0].(map[string]any)
	if newest["tweet"] != "second" {
		t.Fatalf("expected newest tweet first, got %v", newest["tweet"])
	}
	if newest["username"] != "timeliner" {
		t.Fatalf("expected author username, got %v", newest["username"])
	}
	if newest["name"] != "Test User" {
		t.Fatalf("expected author name, got %v", newest["name"])
	}
}

func TestHandleTimeline_UnknownUserIsEmptyList(t *testing.T) {
	mux := newTestMux(t)

	w := doJSON(t, mux, http.MethodGet, "/api/users/4242/tweets", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	// An empty JSON array, not null.
	if !strings.Contains(w.Body.String(), `"tweets":[]`) {
		t.Fatalf("expected empty tweets array, got %s", w.Body.String())
	}
}

func TestHandleTimeline_BadUserID(t *testing.T) {
	mux := newTestMux(t)

	w := doJSON(t, mux, http.MethodGet, "/api/users/abc/tweets", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestHandleTimeline_Pagination(t *testing.T) {
	mux := newTestMux(t)
	userID := registerUser(t, mux, "paged@example.com", "paged")

	for i := 1; i <= 3; i++ {
		postTweet(t, mux, userID, fmt.Sprintf("tweet %d", i))
	}

	w := doJSON(t, mux, http.MethodGet, fmt.Sprintf("/api/users/%d/tweets?offset=1&limit=1", userID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	tweets := decodeBody(t, w)["tweets"].([]any)
	if len(tweets) != 1 {
		t.Fatalf("expected 1 tweet, got %d", len(tweets))
	}
	if got := tweets[0].(map[string]any)["tweet"]; got != "tweet 2" {
		t.Fatalf("expected tweet 2 at offset 1, got %v", got)
	}
}
