package workers

import (
	"context"
	"time"

	"github.com/Guyuepp/Go-Clean-Architecture-Comments/domain"
	"github.com/sirupsen/logrus"
)

const dispatchTimeout = 10 * time.Second

type DispatchTask struct {
	Comment domain.Comment
	IsReply bool
}

type notifyWorker struct {
	dispatcher domain.NotificationDispatcher
	ch         chan DispatchTask
}

var _ domain.CommentNotifier = (*notifyWorker)(nil)

func NewNotifyWorker(d domain.NotificationDispatcher) *notifyWorker {
	return &notifyWorker{
		dispatcher: d,
		ch:         make(chan DispatchTask, 1024),
	}
}

// Send enqueues a dispatch without blocking the caller.
func (w *notifyWorker) Send(comment domain.Comment, isReply bool) {
	select {
	case w.ch <- DispatchTask{Comment: comment, IsReply: isReply}:
	default:
		logrus.Warnf("NotifyWorker's channel is full, notification for comment %d dropped", comment.ID)
	}
}

func (w *notifyWorker) Start(ctx context.Context) {
	for {
		select {
		case task := <-w.ch:
			w.dispatch(task)
		case <-ctx.Done():
			logrus.Info("shutting down NotifyWorker, draining remaining notifications...")
			w.drain()
			return
		}
	}
}

func (w *notifyWorker) dispatch(task DispatchTask) {
	ctx, cancel := context.WithTimeout(context.Background(), dispatchTimeout)
	defer cancel()

	if err := w.dispatcher.NotifyNewComment(ctx, &task.Comment, task.IsReply); err != nil {
		logrus.Errorf("failed to dispatch notification for comment %d: %v", task.Comment.ID, err)
	}
}

func (w *notifyWorker) drain() {
	for {
		select {
		case task := <-w.ch:
			w.dispatch(task)
		default:
			return
		}
	}
}
