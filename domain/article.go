package domain

import (
	"context"
	"time"
)

// Article is representing the Article data struct.
// Only the fields the comment subsystem needs are modeled here; the
// publishing workflow lives in another service.
type Article struct {
	ID        int64     // Unique identifier for the article
	Title     string    // Article title
	User      User      // Owner information
	Published bool      // Whether the article is visible to readers
	UpdatedAt time.Time // Last update timestamp
	CreatedAt time.Time // Creation timestamp
}

// ArticleRepository defines the contract for article data persistence
type ArticleRepository interface {
	// GetByID retrieves a single article by its ID.
	// Returns ErrNotFound if the article doesn't exist.
	GetByID(ctx context.Context, id int64) (Article, error)

	// FetchIDs retrieves article IDs for bloom filter warm-up.
	FetchIDs(ctx context.Context, cursor, limit int64) ([]int64, error)
}

// ArticleUsecase is the boundary gate in front of every comment operation
// keyed by an article.
type ArticleUsecase interface {
	// CheckPublished returns ErrNotFound if the article doesn't exist and
	// ErrConflict if it exists but is not published yet.
	CheckPublished(ctx context.Context, id int64) error

	// GetByID retrieves the article with its owner filled in.
	GetByID(ctx context.Context, id int64) (Article, error)

	// InitBloomFilter preloads the article-ID bloom filter.
	InitBloomFilter(ctx context.Context) error
}
