package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Guyuepp/Go-Clean-Architecture-Comments/domain"
	"github.com/redis/go-redis/v9"
)

const (
	KeyArticleThreads = "comment:article:%d:threads"

	threadsTTL = 10 * time.Minute
)

type commentCache struct {
	client *redis.Client
}

var _ domain.CommentCache = (*commentCache)(nil)

func NewCommentCache(client *redis.Client) *commentCache {
	return &commentCache{
		client,
	}
}

func (c *commentCache) GetArticleThreads(ctx context.Context, articleID int64) ([]*domain.Comment, error) {
	key := fmt.Sprintf(KeyArticleThreads, articleID)
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrCacheMiss
	} else if err != nil {
		return nil, err
	}

	var threads []*domain.Comment
	if err = json.Unmarshal(data, &threads); err != nil {
		return nil, err
	}
	return threads, nil
}

func (c *commentCache) SetArticleThreads(ctx context.Context, articleID int64, threads []*domain.Comment) error {
	key := fmt.Sprintf(KeyArticleThreads, articleID)
	data, err := json.Marshal(threads)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, data, threadsTTL).Err()
}

func (c *commentCache) DeleteArticleThreads(ctx context.Context, articleID int64) error {
	key := fmt.Sprintf(KeyArticleThreads, articleID)
	return c.client.Del(ctx, key).Err()
}
