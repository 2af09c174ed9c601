package model

import (
	"time"

	"github.com/Guyuepp/Go-Clean-Architecture-Comments/domain"
)

type User struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"type:varchar(45);not null"`
	Username  string    `gorm:"type:varchar(45);uniqueIndex;not null"`
	Email     string    `gorm:"type:varchar(254);not null"`
	Password  string    `gorm:"type:varchar(100);not null"`
	CreatedAt time.Time `gorm:"type:datetime"`
	UpdatedAt time.Time `gorm:"type:datetime"`
}

func (User) TableName() string {
	return "user"
}

func (m *User) ToDomain() domain.User {
	return domain.User{
		ID:        m.ID,
		Name:      m.Name,
		Username:  m.Username,
		Email:     m.Email,
		Password:  m.Password,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// UserFollow is a row of the follow relation: FollowerID follows UserID.
type UserFollow struct {
	UserID     int64     `gorm:"column:user_id;primaryKey"`
	FollowerID int64     `gorm:"column:follower_id;primaryKey"`
	CreatedAt  time.Time `gorm:"type:datetime"`
}

func (UserFollow) TableName() string {
	return "user_follows"
}
