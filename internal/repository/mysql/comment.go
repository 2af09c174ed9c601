package mysql

import (
	"context"
	"errors"

	"github.com/Guyuepp/Go-Clean-Architecture-Comments/domain"
	"github.com/Guyuepp/Go-Clean-Architecture-Comments/internal/repository/mysql/model"
	"gorm.io/gorm"
)

type commentRepository struct {
	DB *gorm.DB
}

var _ domain.CommentRepository = (*commentRepository)(nil)

func NewCommentRepository(db *gorm.DB) *commentRepository {
	return &commentRepository{
		DB: db,
	}
}

func (c *commentRepository) Store(ctx context.Context, comment *domain.Comment) error {
	m := model.NewCommentFromDomain(comment)
	if err := c.DB.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}

	// backfill server-assigned fields
	comment.ID = m.ID
	comment.CreatedAt = m.CreatedAt
	comment.UpdatedAt = m.UpdatedAt
	return nil
}

func (c *commentRepository) GetByID(ctx context.Context, id int64) (*domain.Comment, error) {
	var comment model.Comment
	err := c.DB.WithContext(ctx).First(&comment, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	domainComment := comment.ToDomain()
	return &domainComment, nil
}

func (c *commentRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := c.DB.WithContext(ctx).Model(&model.Comment{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (c *commentRepository) GetTree(ctx context.Context, id int64, depth int) (*domain.Comment, error) {
	root, err := c.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := c.fillChildren(ctx, []*domain.Comment{root}, depth); err != nil {
		return nil, err
	}
	return root, nil
}

func (c *commentRepository) FetchRootsByArticle(ctx context.Context, articleID int64, depth int) ([]*domain.Comment, error) {
	var comments []model.Comment
	err := c.DB.WithContext(ctx).
		Where("article_id = ? AND parent_id = 0", articleID).
		Order("created_at ASC, id ASC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}

	roots := make([]*domain.Comment, 0, len(comments))
	for _, comment := range comments {
		domainComment := comment.ToDomain()
		roots = append(roots, &domainComment)
	}

	if err := c.fillChildren(ctx, roots, depth); err != nil {
		return nil, err
	}
	return roots, nil
}

// fillChildren attaches descendants level by level, at most depth levels
// below the given parents. Iterative on purpose: a degenerate deep thread
// must not turn into unbounded recursion or unbounded fetches.
func (c *commentRepository) fillChildren(ctx context.Context, parents []*domain.Comment, depth int) error {
	for level := 0; level < depth && len(parents) > 0; level++ {
		ids := make([]int64, len(parents))
		byID := make(map[int64]*domain.Comment, len(parents))
		for i, p := range parents {
			ids[i] = p.ID
			byID[p.ID] = p
		}

		var rows []model.Comment
		err := c.DB.WithContext(ctx).
			Where("parent_id IN ?", ids).
			Order("created_at ASC, id ASC").
			Find(&rows).Error
		if err != nil {
			return err
		}

		next := make([]*domain.Comment, 0, len(rows))
		for _, row := range rows {
			child := row.ToDomain()
			parent := byID[child.ParentID]
			parent.Children = append(parent.Children, &child)
			next = append(next, &child)
		}
		parents = next
	}
	return nil
}

func (c *commentRepository) Update(ctx context.Context, comment *domain.Comment) error {
	result := c.DB.WithContext(ctx).
		Model(&model.Comment{}).
		Where("id = ?", comment.ID).
		Updates(map[string]any{
			"content":    comment.Content,
			"updated_at": comment.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteCascade removes the comment and all of its descendants in a single
// transaction, so a partial cascade is never observable.
func (c *commentRepository) DeleteCascade(ctx context.Context, id int64) error {
	return c.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ids := []int64{id}
		frontier := []int64{id}
		for len(frontier) > 0 {
			var children []int64
			err := tx.Model(&model.Comment{}).
				Where("parent_id IN ?", frontier).
				Pluck("id", &children).Error
			if err != nil {
				return err
			}
			ids = append(ids, children...)
			frontier = children
		}

		result := tx.Where("id IN ?", ids).Delete(&model.Comment{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrNotFound
		}
		return nil
	})
}
