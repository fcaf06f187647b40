package handler_test

import (
	"net/http"
	"testing"
)

func TestHandleHealthz(t *testing.T) {
	mux := newTestMux(t)

	w := doJSON(t, mux, http.MethodGet, "/healthz", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if got := decodeBody(t, w)["status"]; got != "ok" {
		t.Fatalf("expected status ok, got %v", got)
	}
}
