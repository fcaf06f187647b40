package handler

import (
	"time"

	"github.com/aweber/chirp/internal/domain"
)

// UserDTO is the JSON representation of a user. The password hash is
// deliberately absent.
type UserDTO struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}

func toUserDTO(u *domain.User) UserDTO {
	return UserDTO{
		ID:        u.ID,
		Email:     u.Email,
		Username:  u.Username,
		Name:      u.Name,
		Role:      u.Role,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}

// TweetDTO is the JSON representation of a created tweet.
type TweetDTO struct {
	ID      int64  `json:"id"`
	UserID  int64  `json:"user_id"`
	Tweet   string `json:"tweet"`
	Created string `json:"created"`
}

func toTweetDTO(t *domain.Tweet) TweetDTO {
	return TweetDTO{
		ID:      t.ID,
		UserID:  t.UserID,
		Tweet:   t.Text,
		Created: t.Created.Format(time.RFC3339),
	}
}

// TweetListItemDTO is one entry of a timeline, search, or hashtag listing:
// the tweet plus its author's display fields.
type TweetListItemDTO struct {
	Tweet    string `json:"tweet"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Created  string `json:"created"`
}

func toTweetListItemDTOs(tweets []domain.TweetWithAuthor) []TweetListItemDTO {
	dtos := make([]TweetListItemDTO, len(tweets))
	for i, t := range tweets {
		dtos[i] = TweetListItemDTO{
			Tweet:    t.Text,
			Username: t.Username,
			Name:     t.Name,
			Created:  t.Created.Format(time.RFC3339),
		}
	}
	return dtos
}
