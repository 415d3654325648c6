package notify

import (
	"context"

	"github.com/waypace/waypace/pkg/cdm"
)

// Notifier is the scheduled-alert facility the reminder scheduler talks to.
// Scheduling a notification with an identifier that already exists replaces
// it.
type Notifier interface {
	Schedule(ctx context.Context, notification cdm.Notification) error
	Cancel(ctx context.Context, identifier string) error
	CancelPrefix(ctx context.Context, prefix string) error
	Pending(ctx context.Context) ([]cdm.Notification, error)
}
