package notification

import (
	"context"
	"fmt"
	"strings"

	"github.com/Guyuepp/Go-Clean-Architecture-Comments/domain"
)

const defaultBaseURL = "https://blog"

// Dispatcher decides whether and to whom a new-comment notification goes.
// The target is the article owner for root comments and the parent comment
// author for replies; the target's followers receive the email.
type Dispatcher struct {
	commentRepo domain.CommentRepository
	articleRepo domain.ArticleRepository
	userRepo    domain.UserRepository
	mailer      domain.Mailer
	baseURL     string
}

var _ domain.NotificationDispatcher = (*Dispatcher)(nil)

func NewDispatcher(commentRepo domain.CommentRepository, articleRepo domain.ArticleRepository, userRepo domain.UserRepository, mailer domain.Mailer, baseURL string) *Dispatcher {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Dispatcher{
		commentRepo: commentRepo,
		articleRepo: articleRepo,
		userRepo:    userRepo,
		mailer:      mailer,
		baseURL:     strings.TrimRight(baseURL, "/"),
	}
}

func (d *Dispatcher) NotifyNewComment(ctx context.Context, comment *domain.Comment, isReply bool) error {
	targetID, err := d.resolveTarget(ctx, comment, isReply)
	if err != nil {
		return err
	}

	// The target is compared against the author fetched at dispatch time:
	// an author's own reply or post never self-notifies.
	if targetID == comment.AuthorID {
		return nil
	}

	target, err := d.userRepo.GetWithFollowers(ctx, targetID)
	if err != nil {
		return err
	}

	recipients := make([]string, 0, len(target.Followers))
	for _, follower := range target.Followers {
		if follower.Email != "" {
			recipients = append(recipients, follower.Email)
		}
	}
	if len(recipients) == 0 {
		return nil
	}

	commenter, err := d.userRepo.GetByID(ctx, comment.AuthorID)
	if err != nil {
		return err
	}

	link := d.commentLink(comment, isReply)
	subject := fmt.Sprintf("New comment from %s", commenter.Email)
	body := fmt.Sprintf("Check out the new comment from %s at %s", commenter.Email, link)
	return d.mailer.Send(subject, body, recipients)
}

func (d *Dispatcher) resolveTarget(ctx context.Context, comment *domain.Comment, isReply bool) (int64, error) {
	if isReply {
		parent, err := d.commentRepo.GetByID(ctx, comment.ParentID)
		if err != nil {
			return 0, err
		}
		return parent.AuthorID, nil
	}

	article, err := d.articleRepo.GetByID(ctx, comment.ArticleID)
	if err != nil {
		return 0, err
	}
	return article.User.ID, nil
}

func (d *Dispatcher) commentLink(comment *domain.Comment, isReply bool) string {
	if isReply {
		return fmt.Sprintf("%s/articles/%d/%d/%d", d.baseURL, comment.ArticleID, comment.ParentID, comment.ID)
	}
	return fmt.Sprintf("%s/articles/%d/%d", d.baseURL, comment.ArticleID, comment.ID)
}
