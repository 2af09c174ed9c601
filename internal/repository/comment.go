package repository

import (
	"context"
	"errors"
	"strconv"

	"github.com/Guyuepp/Go-Clean-Architecture-Comments/domain"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

// commentRepository 协调层: coordinates the database and the per-article
// thread cache. Reads of an article's threads go through the cache with a
// singleflight rebuild on miss; every mutation invalidates the article's
// cached threads asynchronously.
type commentRepository struct {
	db           domain.CommentRepository
	cache        domain.CommentCache
	rebuildGroup singleflight.Group
}

var _ domain.CommentRepository = (*commentRepository)(nil)

func NewCommentRepository(db domain.CommentRepository, cache domain.CommentCache) *commentRepository {
	return &commentRepository{
		db:    db,
		cache: cache,
	}
}

func (r *commentRepository) Store(ctx context.Context, c *domain.Comment) error {
	if err := r.db.Store(ctx, c); err != nil {
		return err
	}
	r.invalidateThreads(c.ArticleID)
	return nil
}

func (r *commentRepository) GetByID(ctx context.Context, id int64) (*domain.Comment, error) {
	return r.db.GetByID(ctx, id)
}

func (r *commentRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return r.db.Exists(ctx, id)
}

func (r *commentRepository) GetTree(ctx context.Context, id int64, depth int) (*domain.Comment, error) {
	return r.db.GetTree(ctx, id, depth)
}

func (r *commentRepository) FetchRootsByArticle(ctx context.Context, articleID int64, depth int) ([]*domain.Comment, error) {
	threads, err := r.cache.GetArticleThreads(ctx, articleID)
	if err == nil {
		return threads, nil
	}
	if !errors.Is(err, domain.ErrCacheMiss) {
		logrus.Warnf("comment cache get error for article %d: %v", articleID, err)
	}

	// singleflight 避免缓存击穿 on hot threads
	key := "threads:" + strconv.FormatInt(articleID, 10)
	result, err, _ := r.rebuildGroup.Do(key, func() (any, error) {
		threads, err := r.db.FetchRootsByArticle(ctx, articleID, depth)
		if err != nil {
			return nil, err
		}

		go func(data []*domain.Comment) {
			if err := r.cache.SetArticleThreads(context.Background(), articleID, data); err != nil {
				logrus.Warnf("failed to set comment cache for article %d: %v", articleID, err)
			}
		}(threads)

		return threads, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]*domain.Comment), nil
}

func (r *commentRepository) Update(ctx context.Context, c *domain.Comment) error {
	if err := r.db.Update(ctx, c); err != nil {
		return err
	}
	r.invalidateThreads(c.ArticleID)
	return nil
}

func (r *commentRepository) DeleteCascade(ctx context.Context, id int64) error {
	// the row carries the article ID needed for invalidation, so look it up
	// before the subtree goes away
	var articleID int64
	if c, err := r.db.GetByID(ctx, id); err == nil {
		articleID = c.ArticleID
	}

	if err := r.db.DeleteCascade(ctx, id); err != nil {
		return err
	}
	if articleID != 0 {
		r.invalidateThreads(articleID)
	}
	return nil
}

func (r *commentRepository) invalidateThreads(articleID int64) {
	go func(id int64) {
		if err := r.cache.DeleteArticleThreads(context.Background(), id); err != nil {
			logrus.Warnf("failed to invalidate comment cache for article %d: %v", id, err)
		}
	}(articleID)
}
