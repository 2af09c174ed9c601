package mysql

import (
	"context"
	"errors"

	"github.com/Guyuepp/Go-Clean-Architecture-Comments/domain"
	"github.com/Guyuepp/Go-Clean-Architecture-Comments/internal/repository/mysql/model"
	"gorm.io/gorm"
)

type articleRepository struct {
	DB *gorm.DB
}

var _ domain.ArticleRepository = (*articleRepository)(nil)

func NewArticleRepository(db *gorm.DB) *articleRepository {
	return &articleRepository{
		DB: db,
	}
}

func (m *articleRepository) GetByID(ctx context.Context, id int64) (domain.Article, error) {
	var article model.Article
	err := m.DB.WithContext(ctx).First(&article, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Article{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Article{}, err
	}
	return article.ToDomain(), nil
}

func (m *articleRepository) FetchIDs(ctx context.Context, cursor, limit int64) ([]int64, error) {
	var ids []int64
	err := m.DB.WithContext(ctx).
		Model(&model.Article{}).
		Where("id > ?", cursor).
		Order("id ASC").
		Limit(int(limit)).
		Pluck("id", &ids).Error
	return ids, err
}
