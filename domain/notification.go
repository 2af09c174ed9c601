package domain

import "context"

// NotificationDispatcher decides whether and to whom a new-comment
// notification goes, then delegates the delivery to the mail transport.
type NotificationDispatcher interface {
	// NotifyNewComment resolves the notification target (article owner for
	// root comments, parent comment author for replies), skips self
	// notifications, and fans the message out to the target's followers.
	// Lookup failures are reported but must never fail comment creation.
	NotifyNewComment(ctx context.Context, comment *Comment, isReply bool) error
}

// CommentNotifier is the fire-and-forget hand-off between the comment
// service and the dispatcher. Send must never block the caller.
type CommentNotifier interface {
	Start(ctx context.Context)

	// Send enqueues a dispatch for the created comment. The task is dropped
	// when the queue is full; comment durability never waits on email.
	Send(comment Comment, isReply bool)
}

// Mailer delivers notification emails, best effort.
type Mailer interface {
	Send(subject, body string, recipients []string) error
}
