package comment

import (
	"context"
	"time"

	"github.com/Guyuepp/Go-Clean-Architecture-Comments/domain"
)

// Service implements the comment thread lifecycle: moderated creation with
// notification hand-off, depth-capped tree reads and author-gated mutation.
// Article existence/publication gating happens at the REST boundary, not here.
type Service struct {
	commentRepo domain.CommentRepository
	moderator   domain.ContentModerator
	notifier    domain.CommentNotifier
}

var _ domain.CommentUsecase = (*Service)(nil)

func NewService(commentRepo domain.CommentRepository, moderator domain.ContentModerator, notifier domain.CommentNotifier) *Service {
	return &Service{
		commentRepo: commentRepo,
		moderator:   moderator,
		notifier:    notifier,
	}
}

func (s *Service) Create(ctx context.Context, c *domain.Comment) error {
	if err := s.moderator.Check(c.Content); err != nil {
		return err
	}

	// A dangling parent reference must never be written, so the existence
	// check runs before the insert.
	if c.IsReply() {
		exists, err := s.commentRepo.Exists(ctx, c.ParentID)
		if err != nil {
			return err
		}
		if !exists {
			return domain.ErrNotFound
		}
	}

	if err := s.commentRepo.Store(ctx, c); err != nil {
		return err
	}

	// Fire-and-forget: a slow or failing notification path must never
	// revert the successfully created comment.
	s.notifier.Send(*c, c.IsReply())
	return nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Comment, error) {
	return s.commentRepo.GetTree(ctx, id, domain.CommentTreeDepth)
}

func (s *Service) FetchByArticle(ctx context.Context, articleID int64) ([]*domain.Comment, error) {
	return s.commentRepo.FetchRootsByArticle(ctx, articleID, domain.CommentTreeDepth)
}

func (s *Service) Update(ctx context.Context, id int64, content string, userID int64) (*domain.Comment, error) {
	// Existence resolves before authorization on purpose.
	persisted, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.moderator.Check(content); err != nil {
		return nil, err
	}
	if err := validateCanMutate(persisted.AuthorID, userID); err != nil {
		return nil, err
	}

	persisted.Content = content
	persisted.UpdatedAt = time.Now()
	if err := s.commentRepo.Update(ctx, persisted); err != nil {
		return nil, err
	}
	return persisted, nil
}

func (s *Service) Delete(ctx context.Context, id int64, userID int64) error {
	persisted, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := validateCanMutate(persisted.AuthorID, userID); err != nil {
		return err
	}
	return s.commentRepo.DeleteCascade(ctx, id)
}
