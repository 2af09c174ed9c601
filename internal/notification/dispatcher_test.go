package notification

import (
	"context"
	"errors"
	"testing"

	"github.com/Guyuepp/Go-Clean-Architecture-Comments/domain"
	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockCommentRepo struct {
	mock.Mock
}

func (m *mockCommentRepo) Store(ctx context.Context, c *domain.Comment) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockCommentRepo) GetByID(ctx context.Context, id int64) (*domain.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Comment), args.Error(1)
}

func (m *mockCommentRepo) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockCommentRepo) GetTree(ctx context.Context, id int64, depth int) (*domain.Comment, error) {
	args := m.Called(ctx, id, depth)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Comment), args.Error(1)
}

func (m *mockCommentRepo) FetchRootsByArticle(ctx context.Context, articleID int64, depth int) ([]*domain.Comment, error) {
	args := m.Called(ctx, articleID, depth)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Comment), args.Error(1)
}

func (m *mockCommentRepo) Update(ctx context.Context, c *domain.Comment) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockCommentRepo) DeleteCascade(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockArticleRepo struct {
	mock.Mock
}

func (m *mockArticleRepo) GetByID(ctx context.Context, id int64) (domain.Article, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Article), args.Error(1)
}

func (m *mockArticleRepo) FetchIDs(ctx context.Context, cursor, limit int64) ([]int64, error) {
	args := m.Called(ctx, cursor, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (domain.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *mockUserRepo) GetWithFollowers(ctx context.Context, id int64) (domain.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *mockUserRepo) GetByIDs(ctx context.Context, userIDs []int64) ([]domain.User, error) {
	args := m.Called(ctx, userIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

type mockMailer struct {
	mock.Mock
}

func (m *mockMailer) Send(subject, body string, recipients []string) error {
	return m.Called(subject, body, recipients).Error(0)
}

type dispatcherMocks struct {
	comments *mockCommentRepo
	articles *mockArticleRepo
	users    *mockUserRepo
	mailer   *mockMailer
}

func newTestDispatcher(baseURL string) (*Dispatcher, dispatcherMocks) {
	m := dispatcherMocks{
		comments: new(mockCommentRepo),
		articles: new(mockArticleRepo),
		users:    new(mockUserRepo),
		mailer:   new(mockMailer),
	}
	return NewDispatcher(m.comments, m.articles, m.users, m.mailer, baseURL), m
}

func TestNotifyRootCommentMailsArticleOwnerFollowers(t *testing.T) {
	d, m := newTestDispatcher("")

	followerEmail := faker.Email()
	m.articles.On("GetByID", mock.Anything, int64(2)).Return(domain.Article{ID: 2, User: domain.User{ID: 7}}, nil)
	m.users.On("GetWithFollowers", mock.Anything, int64(7)).
		Return(domain.User{ID: 7, Email: "owner@blog.io", Followers: []domain.User{{ID: 9, Email: followerEmail}}}, nil)
	m.users.On("GetByID", mock.Anything, int64(1)).Return(domain.User{ID: 1, Email: "commenter@blog.io"}, nil)
	m.mailer.On("Send", mock.Anything, mock.Anything, []string{followerEmail}).Return(nil)

	c := &domain.Comment{ID: 10, ArticleID: 2, AuthorID: 1, Content: "New comment"}
	err := d.NotifyNewComment(context.Background(), c, false)

	require.NoError(t, err)
	m.mailer.AssertNumberOfCalls(t, "Send", 1)
	m.mailer.AssertCalled(t, "Send",
		"New comment from commenter@blog.io",
		"Check out the new comment from commenter@blog.io at https://blog/articles/2/10",
		[]string{followerEmail})
}

func TestNotifyRootCommentByOwnerIsSuppressed(t *testing.T) {
	d, m := newTestDispatcher("")

	m.articles.On("GetByID", mock.Anything, int64(2)).Return(domain.Article{ID: 2, User: domain.User{ID: 1}}, nil)

	c := &domain.Comment{ID: 10, ArticleID: 2, AuthorID: 1}
	err := d.NotifyNewComment(context.Background(), c, false)

	require.NoError(t, err)
	m.users.AssertNotCalled(t, "GetWithFollowers", mock.Anything, mock.Anything)
	m.mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
}

func TestNotifyReplyMailsParentAuthorFollowers(t *testing.T) {
	d, m := newTestDispatcher("https://blog.example.com/")

	m.comments.On("GetByID", mock.Anything, int64(10)).Return(&domain.Comment{ID: 10, ArticleID: 2, AuthorID: 1}, nil)
	m.users.On("GetWithFollowers", mock.Anything, int64(1)).
		Return(domain.User{ID: 1, Followers: []domain.User{{Email: "f1@blog.io"}, {Email: "f2@blog.io"}}}, nil)
	m.users.On("GetByID", mock.Anything, int64(2)).Return(domain.User{ID: 2, Email: "replier@blog.io"}, nil)
	m.mailer.On("Send", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	c := &domain.Comment{ID: 11, ArticleID: 2, AuthorID: 2, ParentID: 10}
	err := d.NotifyNewComment(context.Background(), c, true)

	require.NoError(t, err)
	m.articles.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	m.mailer.AssertCalled(t, "Send",
		"New comment from replier@blog.io",
		"Check out the new comment from replier@blog.io at https://blog.example.com/articles/2/10/11",
		[]string{"f1@blog.io", "f2@blog.io"})
}

func TestNotifyReplyToOwnCommentIsSuppressed(t *testing.T) {
	d, m := newTestDispatcher("")

	m.comments.On("GetByID", mock.Anything, int64(10)).Return(&domain.Comment{ID: 10, ArticleID: 2, AuthorID: 1}, nil)

	c := &domain.Comment{ID: 11, ArticleID: 2, AuthorID: 1, ParentID: 10}
	err := d.NotifyNewComment(context.Background(), c, true)

	require.NoError(t, err)
	m.mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
}

func TestNotifyWithoutFollowersSkipsSilently(t *testing.T) {
	d, m := newTestDispatcher("")

	m.articles.On("GetByID", mock.Anything, int64(2)).Return(domain.Article{ID: 2, User: domain.User{ID: 7}}, nil)
	m.users.On("GetWithFollowers", mock.Anything, int64(7)).Return(domain.User{ID: 7}, nil)

	c := &domain.Comment{ID: 10, ArticleID: 2, AuthorID: 1}
	err := d.NotifyNewComment(context.Background(), c, false)

	require.NoError(t, err)
	m.mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
}

func TestNotifyLookupFailureSurfacesToWorkerOnly(t *testing.T) {
	d, m := newTestDispatcher("")

	lookupErr := errors.New("connection refused")
	m.articles.On("GetByID", mock.Anything, int64(2)).Return(domain.Article{}, lookupErr)

	c := &domain.Comment{ID: 10, ArticleID: 2, AuthorID: 1}
	err := d.NotifyNewComment(context.Background(), c, false)

	assert.ErrorIs(t, err, lookupErr)
	m.mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
}
