package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/aweber/chirp/internal/domain"
	"github.com/aweber/chirp/internal/service"
)

// SearchHandler handles keyword search and hashtag lookup HTTP requests.
type SearchHandler struct {
	search *service.SearchService
}

// NewSearchHandler creates a new SearchHandler.
func NewSearchHandler(search *service.SearchService) *SearchHandler {
	return &SearchHandler{search: search}
}

// HandleSearch returns tweets matching the given keywords, newest first.
// GET /api/tweets/search?keywords=...&offset=0&limit=50
// Response: {"tweets": [...]}
func (h *SearchHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	keywords := r.URL.Query().Get("keywords")

	tweets, err := h.search.Search(r.Context(), keywords, pageFromQuery(r))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, "Keywords are required.")
			return
		}
		slog.Error("search tweets", "error", err, "request_id", RequestIDFromContext(r.Context()))
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"tweets": toTweetListItemDTOs(tweets),
	})
}

// HandleHashtag returns tweets carrying the given hashtag, newest first.
// GET /api/tweets/hash/{hashtag}?offset=0&limit=50
// Response: {"tweets": [...]}
func (h *SearchHandler) HandleHashtag(w http.ResponseWriter, r *http.Request) {
	tweets, err := h.search.ByHashtag(r.Context(), r.PathValue("hashtag"), pageFromQuery(r))
	if err != nil {
		slog.Error("find tweets by hashtag", "error", err, "request_id", RequestIDFromContext(r.Context()))
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"tweets": toTweetListItemDTOs(tweets),
	})
}
