package handler

import (
	"net/http"

	"github.com/aweber/chirp/internal/domain"
	"github.com/aweber/chirp/internal/service"
)

// RegisterRoutes sets up all HTTP routes on the given mux.
func RegisterRoutes(mux *http.ServeMux, auth *service.AuthService, tweets *service.TweetService, search *service.SearchService, db domain.Database) {
	authHandler := NewAuthHandler(auth)
	tweetHandler := NewTweetHandler(tweets)
	searchHandler := NewSearchHandler(search)
	healthHandler := NewHealthHandler(db)

	mux.HandleFunc("GET /healthz", healthHandler.HandleHealthz)

	mux.HandleFunc("POST /api/login", authHandler.HandleLogin)
	mux.HandleFunc("POST /api/users", authHandler.HandleRegister)

	mux.HandleFunc("GET /api/users/{id}/tweets", tweetHandler.HandleTimeline)
	mux.HandleFunc("POST /api/users/{id}/tweets", tweetHandler.HandlePost)

	mux.HandleFunc("GET /api/tweets/search", searchHandler.HandleSearch)
	mux.HandleFunc("GET /api/tweets/hash/{hashtag}", searchHandler.HandleHashtag)
}
