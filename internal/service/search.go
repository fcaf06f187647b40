package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/aweber/chirp/internal/domain"
)

// SearchService handles keyword search and hashtag lookup over all tweets.
type SearchService struct {
	tweets domain.TweetRepository
}

// NewSearchService creates a new SearchService.
func NewSearchService(tweets domain.TweetRepository) *SearchService {
	return &SearchService{tweets: tweets}
}

// Search returns tweets relevant to the given keywords, newest first.
// Ordering is by creation time, not relevance score.
func (s *SearchService) Search(ctx context.Context, keywords string, page domain.Page) ([]domain.TweetWithAuthor, error) {
	if strings.TrimSpace(keywords) == "" {
		return nil, fmt.Errorf("%w: keywords are required", domain.ErrInvalidInput)
	}
	return s.tweets.Search(ctx, keywords, page.Normalize())
}

// ByHashtag returns tweets carrying the given hashtag, newest first. A
// leading "#" in the tag is tolerated; an empty tag matches nothing.
func (s *SearchService) ByHashtag(ctx context.Context, tag string, page domain.Page) ([]domain.TweetWithAuthor, error) {
	tag = strings.TrimPrefix(strings.TrimSpace(tag), "#")
	if tag == "" {
		return nil, nil
	}
	return s.tweets.ByHashtag(ctx, tag, page.Normalize())
}
