package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/aweber/chirp/internal/domain"
)

// TweetRepository implements domain.TweetRepository using SQLite. Keyword
// search runs against the tweets_fts FTS5 index, which triggers keep in
// sync with the tweets table.
type TweetRepository struct {
	db *sql.DB
}

// NewTweetRepository creates a new SQLite-backed TweetRepository.
func NewTweetRepository(db *DB) *TweetRepository {
	return &TweetRepository{db: db.SqlDB}
}

// Create inserts a tweet and fills in the generated ID and creation time.
// Returns domain.ErrNotFound when user_id does not reference an existing
// user; the foreign key constraint is the enforcement point.
func (r *TweetRepository) Create(ctx context.Context, tweet *domain.Tweet) error {
	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO tweets (user_id, tweet, created) VALUES (?, ?, ?)`,
		tweet.UserID, tweet.Text, now,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert tweet: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}

	tweet.ID = id
	tweet.Created = now
	return nil
}

// Listings share one ordering contract: creation time descending, with the
// row id breaking ties so pagination slices stay stable.
const tweetWithAuthorSelect = `
	SELECT t.tweet, u.username, u.name, t.created
	FROM tweets t
	JOIN users u ON u.id = t.user_id`

func (r *TweetRepository) ListByUser(ctx context.Context, userID int64, page domain.Page) ([]domain.TweetWithAuthor, error) {
	rows, err := r.db.QueryContext(ctx, tweetWithAuthorSelect+`
		WHERE t.user_id = ?
		ORDER BY t.created DESC, t.id DESC
		LIMIT ? OFFSET ?`,
		userID, page.Limit, page.Offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list tweets by user: %w", err)
	}
	defer rows.Close()
	return scanTweets(rows)
}

func (r *TweetRepository) Search(ctx context.Context, keywords string, page domain.Page) ([]domain.TweetWithAuthor, error) {
	match := ftsMatchExpr(keywords)
	if match == "" {
		return nil, nil
	}
	rows, err := r.db.QueryContext(ctx, `
		SELECT t.tweet, u.username, u.name, t.created
		FROM tweets_fts f
		JOIN tweets t ON t.id = f.rowid
		JOIN users u ON u.id = t.user_id
		WHERE tweets_fts MATCH ?
		ORDER BY t.created DESC, t.id DESC
		LIMIT ? OFFSET ?`,
		match, page.Limit, page.Offset,
	)
	if err != nil {
		return nil, fmt.Errorf("search tweets: %w", err)
	}
	defer rows.Close()
	return scanTweets(rows)
}

func (r *TweetRepository) ByHashtag(ctx context.Context, tag string, page domain.Page) ([]domain.TweetWithAuthor, error) {
	escaped := escapeLike(tag)
	rows, err := r.db.QueryContext(ctx, tweetWithAuthorSelect+`
		WHERE t.tweet LIKE ? ESCAPE '\' OR t.tweet LIKE ? ESCAPE '\'
		ORDER BY t.created DESC, t.id DESC
		LIMIT ? OFFSET ?`,
		"#"+escaped+"%", "% #"+escaped+"%", page.Limit, page.Offset,
	)
	if err != nil {
		return nil, fmt.Errorf("find tweets by hashtag: %w", err)
	}
	defer rows.Close()
	return scanTweets(rows)
}

func scanTweets(rows *sql.Rows) ([]domain.TweetWithAuthor, error) {
	var tweets []domain.TweetWithAuthor
	for rows.Next() {
		var t domain.TweetWithAuthor
		if err := rows.Scan(&t.Text, &t.Username, &t.Name, &t.Created); err != nil {
			return nil, fmt.Errorf("scan tweet: %w", err)
		}
		tweets = append(tweets, t)
	}
	return tweets, rows.Err()
}

// ftsMatchExpr turns free-form keywords into an FTS5 match expression that
// is passed as a single bound parameter. Every term is double-quoted so
// FTS5 operators in user input (AND, OR, NEAR, "-", parentheses) are
// matched as plain text; terms are OR-joined for any-word relevance.
// Terms without a single letter or digit tokenize to nothing and are
// skipped. Returns "" when no usable term remains.
func ftsMatchExpr(keywords string) string {
	var quoted []string
	for _, term := range strings.Fields(keywords) {
		if !strings.ContainsFunc(term, func(r rune) bool {
			return unicode.IsLetter(r) || unicode.IsDigit(r)
		}) {
			continue
		}
		quoted = append(quoted, `"`+strings.ReplaceAll(term, `"`, `""`)+`"`)
	}
	return strings.Join(quoted, " OR ")
}

// escapeLike neutralizes LIKE metacharacters in user-supplied text so a
// hashtag is matched literally inside a bound pattern.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// isForeignKeyViolation checks whether the error is a SQLite foreign key
// constraint violation.
func isForeignKeyViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}
