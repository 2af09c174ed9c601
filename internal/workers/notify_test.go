package workers

import (
	"context"
	"testing"
	"time"

	"github.com/Guyuepp/Go-Clean-Architecture-Comments/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingDispatcher struct {
	calls chan DispatchTask
}

func (d *recordingDispatcher) NotifyNewComment(ctx context.Context, comment *domain.Comment, isReply bool) error {
	d.calls <- DispatchTask{Comment: *comment, IsReply: isReply}
	return nil
}

func TestNotifyWorkerDispatchesQueuedTask(t *testing.T) {
	dispatcher := &recordingDispatcher{calls: make(chan DispatchTask, 1)}
	w := NewNotifyWorker(dispatcher)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Start(ctx)

	w.Send(domain.Comment{ID: 10, ArticleID: 2, AuthorID: 1, ParentID: 5}, true)

	select {
	case task := <-dispatcher.calls:
		assert.EqualValues(t, 10, task.Comment.ID)
		assert.True(t, task.IsReply)
	case <-time.After(2 * time.Second):
		t.Fatal("dispatcher was never invoked")
	}
}

func TestNotifyWorkerDrainsOnShutdown(t *testing.T) {
	dispatcher := &recordingDispatcher{calls: make(chan DispatchTask, 2)}
	w := NewNotifyWorker(dispatcher)

	// enqueue before the loop runs, then start with an already-canceled
	// context: the shutdown path must still deliver what is queued
	w.Send(domain.Comment{ID: 10}, false)
	w.Send(domain.Comment{ID: 11}, false)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	w.Start(ctx)

	require.Len(t, dispatcher.calls, 2)
}

func TestNotifyWorkerDropsWhenQueueFull(t *testing.T) {
	dispatcher := &recordingDispatcher{calls: make(chan DispatchTask, 1)}
	w := NewNotifyWorker(dispatcher)
	w.ch = make(chan DispatchTask, 1)

	// worker not started: second send has nowhere to go and must not block
	done := make(chan struct{})
	go func() {
		w.Send(domain.Comment{ID: 1}, false)
		w.Send(domain.Comment{ID: 2}, false)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Send blocked on a full queue")
	}
}
