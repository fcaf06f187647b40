package domain

import (
	"context"
	"time"
)

// Tweet is a short text post owned by exactly one user for its lifetime.
// Created is assigned at insert time and is the ordering key for every
// listing.
type Tweet struct {
	ID      int64
	UserID  int64
	Text    string
	Created time.Time
}

// TweetWithAuthor is a tweet joined with its author's display fields,
// the shape returned by timelines, search, and hashtag lookup.
type TweetWithAuthor struct {
	Text     string
	Username string
	Name     string
	Created  time.Time
}

// TweetRepository defines persistence and query operations for tweets.
// All listings are ordered by creation time descending and paginated.
type TweetRepository interface {
	// Create inserts a tweet. Returns ErrNotFound if the user does not exist.
	Create(ctx context.Context, tweet *Tweet) error
	// ListByUser returns the user's timeline, newest first.
	ListByUser(ctx context.Context, userID int64, page Page) ([]TweetWithAuthor, error)
	// Search returns tweets matching the given free-form keywords.
	Search(ctx context.Context, keywords string, page Page) ([]TweetWithAuthor, error)
	// ByHashtag returns tweets whose text starts with "#tag" or contains
	// " #tag".
	ByHashtag(ctx context.Context, tag string, page Page) ([]TweetWithAuthor, error)
}
