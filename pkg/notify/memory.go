package notify

import (
	"context"
	"strings"
	"sync"

	"github.com/waypace/waypace/pkg/cdm"
)

// MemoryNotifier is the in-process Notifier used in tests
type MemoryNotifier struct {
	mutex         sync.Mutex
	notifications map[string]cdm.Notification

	// Counters for asserting scheduler behaviour
	ScheduleCalls int
	CancelCalls   int
}

func NewMemoryNotifier() *MemoryNotifier {
	return &MemoryNotifier{
		notifications: map[string]cdm.Notification{},
	}
}

func (n *MemoryNotifier) Schedule(ctx context.Context, notification cdm.Notification) error {
	n.mutex.Lock()
	defer n.mutex.Unlock()

	n.ScheduleCalls += 1
	n.notifications[notification.Identifier] = notification

	return nil
}

func (n *MemoryNotifier) Cancel(ctx context.Context, identifier string) error {
	n.mutex.Lock()
	defer n.mutex.Unlock()

	n.CancelCalls += 1
	delete(n.notifications, identifier)

	return nil
}

func (n *MemoryNotifier) CancelPrefix(ctx context.Context, prefix string) error {
	n.mutex.Lock()
	defer n.mutex.Unlock()

	n.CancelCalls += 1
	for identifier := range n.notifications {
		if strings.HasPrefix(identifier, prefix) {
			delete(n.notifications, identifier)
		}
	}

	return nil
}

func (n *MemoryNotifier) Pending(ctx context.Context) ([]cdm.Notification, error) {
	n.mutex.Lock()
	defer n.mutex.Unlock()

	notifications := make([]cdm.Notification, 0, len(n.notifications))
	for _, notification := range n.notifications {
		notifications = append(notifications, notification)
	}

	return notifications, nil
}

// Get returns the pending notification with the given identifier, if any
func (n *MemoryNotifier) Get(identifier string) (cdm.Notification, bool) {
	n.mutex.Lock()
	defer n.mutex.Unlock()

	notification, exists := n.notifications[identifier]
	return notification, exists
}
