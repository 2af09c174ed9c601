package model

import (
	"time"

	"github.com/Guyuepp/Go-Clean-Architecture-Comments/domain"
)

type Article struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Title     string    `gorm:"type:varchar(45);not null"`
	UserID    int64     `gorm:"column:user_id;not null"`
	Published bool      `gorm:"default:false"`
	UpdatedAt time.Time `gorm:"type:datetime"`
	CreatedAt time.Time `gorm:"type:datetime"`
}

func (Article) TableName() string {
	return "article"
}

func (m *Article) ToDomain() domain.Article {
	return domain.Article{
		ID:        m.ID,
		Title:     m.Title,
		Published: m.Published,
		UpdatedAt: m.UpdatedAt,
		CreatedAt: m.CreatedAt,
		User: domain.User{
			ID: m.UserID,
		},
	}
}
