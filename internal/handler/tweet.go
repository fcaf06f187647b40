package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/aweber/chirp/internal/domain"
	"github.com/aweber/chirp/internal/service"
)

// TweetHandler handles timeline and tweet-posting HTTP requests.
type TweetHandler struct {
	tweets *service.TweetService
}

// NewTweetHandler creates a new TweetHandler.
func NewTweetHandler(tweets *service.TweetService) *TweetHandler {
	return &TweetHandler{tweets: tweets}
}

// HandleTimeline returns a user's tweets, newest first.
// GET /api/users/{id}/tweets?offset=0&limit=50
// Response: {"tweets": [...]}
func (h *TweetHandler) HandleTimeline(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid user id.")
		return
	}

	tweets, err := h.tweets.Timeline(r.Context(), userID, pageFromQuery(r))
	if err != nil {
		slog.Error("list user tweets", "error", err, "request_id", RequestIDFromContext(r.Context()))
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"tweets": toTweetListItemDTOs(tweets),
	})
}

// HandlePost creates a tweet for a user.
// POST /api/users/{id}/tweets
// Request:  {"tweet":"..."}
// Response: {"tweet": {...}}
func (h *TweetHandler) HandlePost(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid user id.")
		return
	}

	var req struct {
		Tweet string `json:"tweet"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	tweet, err := h.tweets.Post(r.Context(), userID, req.Tweet)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrNotFound):
			writeError(w, http.StatusNotFound, "User not found.")
		default:
			slog.Error("post tweet", "error", err, "request_id", RequestIDFromContext(r.Context()))
			writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"tweet": toTweetDTO(tweet),
	})
}
