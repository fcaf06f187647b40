package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/aweber/chirp/internal/domain"
)

// TweetService handles posting tweets and reading user timelines.
type TweetService struct {
	tweets domain.TweetRepository
}

// NewTweetService creates a new TweetService.
func NewTweetService(tweets domain.TweetRepository) *TweetService {
	return &TweetService{tweets: tweets}
}

// Post creates a tweet owned by the given user. Returns
// domain.ErrNotFound when the user does not exist.
func (s *TweetService) Post(ctx context.Context, userID int64, text string) (*domain.Tweet, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: tweet text is required", domain.ErrInvalidInput)
	}

	tweet := &domain.Tweet{
		UserID: userID,
		Text:   text,
	}

	if err := s.tweets.Create(ctx, tweet); err != nil {
		return nil, fmt.Errorf("create tweet: %w", err)
	}

	return tweet, nil
}

// Timeline returns the user's tweets, newest first. An unknown user yields
// an empty timeline, not an error.
func (s *TweetService) Timeline(ctx context.Context, userID int64, page domain.Page) ([]domain.TweetWithAuthor, error) {
	return s.tweets.ListByUser(ctx, userID, page.Normalize())
}
