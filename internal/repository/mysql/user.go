package mysql

import (
	"context"
	"errors"

	"github.com/Guyuepp/Go-Clean-Architecture-Comments/domain"
	"github.com/Guyuepp/Go-Clean-Architecture-Comments/internal/repository/mysql/model"
	"gorm.io/gorm"
)

type userRepository struct {
	DB *gorm.DB
}

var _ domain.UserRepository = (*userRepository)(nil)

// NewUserRepository will create an implementation of domain.UserRepository
func NewUserRepository(db *gorm.DB) *userRepository {
	return &userRepository{
		DB: db,
	}
}

func (m *userRepository) GetByID(ctx context.Context, id int64) (domain.User, error) {
	var user model.User
	err := m.DB.WithContext(ctx).First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.User{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.User{}, err
	}
	return user.ToDomain(), nil
}

func (m *userRepository) GetWithFollowers(ctx context.Context, id int64) (domain.User, error) {
	user, err := m.GetByID(ctx, id)
	if err != nil {
		return domain.User{}, err
	}

	var followerIDs []int64
	err = m.DB.WithContext(ctx).
		Model(&model.UserFollow{}).
		Where("user_id = ?", id).
		Pluck("follower_id", &followerIDs).Error
	if err != nil {
		return domain.User{}, err
	}
	if len(followerIDs) == 0 {
		return user, nil
	}

	followers, err := m.GetByIDs(ctx, followerIDs)
	if err != nil {
		return domain.User{}, err
	}
	user.Followers = followers
	return user, nil
}

func (m *userRepository) GetByIDs(ctx context.Context, uids []int64) ([]domain.User, error) {
	var users []model.User
	err := m.DB.WithContext(ctx).Model(&model.User{}).Where("id in ?", uids).Find(&users).Error
	res := make([]domain.User, len(users))
	for i := range users {
		res[i] = users[i].ToDomain()
	}
	return res, err
}
