package usecase

import (
	notification "github.com/luizfilipeschaeffer/omni/internal/pkg/notification/domain"
)

// Notifier forwards a freshly written notification to its target if currently
// connected. Forwarding is best-effort: implementations never block the caller
// on delivery and failures are invisible to the transition's result, since the
// durable log plus polling guarantees eventual visibility.
type Notifier interface {
	Forward(userID string, n notification.Notification)
}

// NopNotifier discards every forward. Useful in tests and in the worker
// binary, which has no connection table.
type NopNotifier struct{}

func (NopNotifier) Forward(string, notification.Notification) {}
