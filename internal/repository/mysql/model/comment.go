package model

import (
	"time"

	"github.com/Guyuepp/Go-Clean-Architecture-Comments/domain"
)

type Comment struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	ArticleID int64     `gorm:"column:article_id;not null;index"`
	AuthorID  int64     `gorm:"column:author_id;not null"`
	Content   string    `gorm:"type:text;not null"`
	ParentID  int64     `gorm:"column:parent_id;default:0;index"`
	CreatedAt time.Time `gorm:"type:datetime"`
	UpdatedAt time.Time `gorm:"type:datetime"`
}

func (Comment) TableName() string {
	return "comment"
}

func NewCommentFromDomain(c *domain.Comment) *Comment {
	return &Comment{
		ID:        c.ID,
		ArticleID: c.ArticleID,
		AuthorID:  c.AuthorID,
		Content:   c.Content,
		ParentID:  c.ParentID,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func (m *Comment) ToDomain() domain.Comment {
	return domain.Comment{
		ID:        m.ID,
		ArticleID: m.ArticleID,
		AuthorID:  m.AuthorID,
		Content:   m.Content,
		ParentID:  m.ParentID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
