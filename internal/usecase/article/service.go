package article

import (
	"context"

	"github.com/Guyuepp/Go-Clean-Architecture-Comments/domain"
	"github.com/sirupsen/logrus"
)

// Service is the boundary gate for comment operations keyed by an article:
// it confirms the article exists and is published before the comment
// subsystem does any work. Article publishing itself lives elsewhere.
type Service struct {
	articleRepo domain.ArticleRepository
	userRepo    domain.UserRepository
	bloomRepo   domain.BloomRepository
}

var _ domain.ArticleUsecase = (*Service)(nil)

func NewService(articleRepo domain.ArticleRepository, userRepo domain.UserRepository, bloomRepo domain.BloomRepository) *Service {
	return &Service{
		articleRepo: articleRepo,
		userRepo:    userRepo,
		bloomRepo:   bloomRepo,
	}
}

func (s *Service) CheckPublished(ctx context.Context, id int64) error {
	exists, err := s.bloomRepo.Exists(ctx, id)
	if err == nil && !exists {
		logrus.Warnf("bloom filter says article %d does not exist", id)
		return domain.ErrNotFound
	}

	ar, err := s.articleRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !ar.Published {
		return domain.ErrConflict
	}
	return nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (domain.Article, error) {
	ar, err := s.articleRepo.GetByID(ctx, id)
	if err != nil {
		return domain.Article{}, err
	}

	owner, err := s.userRepo.GetByID(ctx, ar.User.ID)
	if err != nil {
		return domain.Article{}, err
	}
	ar.User = owner
	return ar, nil
}

func (s *Service) InitBloomFilter(ctx context.Context) error {
	const batchSize = 1000

	var cursor int64
	for {
		ids, err := s.articleRepo.FetchIDs(ctx, cursor, batchSize)
		if err != nil {
			return err
		}
		if len(ids) == 0 {
			return nil
		}
		if err := s.bloomRepo.BulkAdd(ctx, ids); err != nil {
			return err
		}
		cursor = ids[len(ids)-1]
	}
}
