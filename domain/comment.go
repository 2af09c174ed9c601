package domain

import (
	"context"
	"time"
)

// CommentTreeDepth 评论树渲染深度: root -> child -> grandchild -> great-grandchild.
// Deeper comments stay in storage but are never fetched past this depth.
const CommentTreeDepth = 3

// Comment domain model
type Comment struct {
	ID        int64     `json:"id"`
	ArticleID int64     `json:"article_id"`
	AuthorID  int64     `json:"author_id"`
	Content   string    `json:"content"`
	ParentID  int64     `json:"parent_id"` // 0 means root comment
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Author 评论作者信息
	Author *User `json:"author,omitempty"`
	// Children 子评论列表, capped at CommentTreeDepth levels
	Children []*Comment `json:"children,omitempty"`
}

// IsReply reports whether the comment is nested under another comment.
func (c *Comment) IsReply() bool {
	return c.ParentID != 0
}

// CommentUsecase 业务逻辑接口
type CommentUsecase interface {
	// Create persists a new comment after moderation and, for replies,
	// a parent existence check. Returns ErrNotFound if the parent is absent.
	Create(ctx context.Context, c *Comment) error

	// GetByID returns the comment with its descendants, CommentTreeDepth deep.
	GetByID(ctx context.Context, id int64) (*Comment, error)

	// FetchByArticle returns the root comments of an article in creation
	// order, each with its descendants, CommentTreeDepth deep.
	FetchByArticle(ctx context.Context, articleID int64) ([]*Comment, error)

	// Update replaces the comment content. Returns ErrNotFound if the comment
	// is absent, ErrForbidden if userID is not the author.
	Update(ctx context.Context, id int64, content string, userID int64) (*Comment, error)

	// Delete removes the comment and its whole subtree.
	Delete(ctx context.Context, id int64, userID int64) error
}

// CommentRepository 数据存取接口
type CommentRepository interface {
	Store(ctx context.Context, c *Comment) error
	GetByID(ctx context.Context, id int64) (*Comment, error)

	// Exists reports whether a comment row exists without loading it.
	Exists(ctx context.Context, id int64) (bool, error)

	// GetTree returns the comment with nested children up to depth levels.
	GetTree(ctx context.Context, id int64, depth int) (*Comment, error)

	// FetchRootsByArticle 获取一级评论, with nested children up to depth levels.
	FetchRootsByArticle(ctx context.Context, articleID int64, depth int) ([]*Comment, error)

	Update(ctx context.Context, c *Comment) error

	// DeleteCascade removes the comment together with all of its descendants.
	// The removal is atomic: either the whole subtree goes or none of it.
	DeleteCascade(ctx context.Context, id int64) error
}

// CommentCache caches rendered comment trees per article.
type CommentCache interface {
	GetArticleThreads(ctx context.Context, articleID int64) ([]*Comment, error)
	SetArticleThreads(ctx context.Context, articleID int64, threads []*Comment) error
	DeleteArticleThreads(ctx context.Context, articleID int64) error
}

// ContentModerator rejects comment content containing disallowed terms.
type ContentModerator interface {
	// Check returns ErrHatefulContent when content, case-insensitively,
	// contains any configured disallowed term.
	Check(content string) error
}
