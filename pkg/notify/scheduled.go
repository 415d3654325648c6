package notify

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/redis/go-redis/v9"
	"github.com/waypace/waypace/pkg/cdm"
	"github.com/waypace/waypace/pkg/redis_client"
)

const scheduledHashKey = "scheduled-notifications"

// ScheduledNotifier keeps the pending alert set in a Redis hash keyed by
// notification identifier. The dispatcher drains due entries onto the notify
// queue.
type ScheduledNotifier struct {
	client *redis.Client
}

func NewScheduledNotifier() *ScheduledNotifier {
	return &ScheduledNotifier{client: redis_client.Client}
}

func (n *ScheduledNotifier) Schedule(ctx context.Context, notification cdm.Notification) error {
	payload, err := json.Marshal(notification)
	if err != nil {
		return err
	}

	return n.client.HSet(ctx, scheduledHashKey, notification.Identifier, string(payload)).Err()
}

func (n *ScheduledNotifier) Cancel(ctx context.Context, identifier string) error {
	return n.client.HDel(ctx, scheduledHashKey, identifier).Err()
}

func (n *ScheduledNotifier) CancelPrefix(ctx context.Context, prefix string) error {
	entries, err := n.client.HGetAll(ctx, scheduledHashKey).Result()
	if err != nil {
		return err
	}

	var matched []string
	for identifier := range entries {
		if strings.HasPrefix(identifier, prefix) {
			matched = append(matched, identifier)
		}
	}

	if len(matched) == 0 {
		return nil
	}

	return n.client.HDel(ctx, scheduledHashKey, matched...).Err()
}

func (n *ScheduledNotifier) Pending(ctx context.Context) ([]cdm.Notification, error) {
	entries, err := n.client.HGetAll(ctx, scheduledHashKey).Result()
	if err != nil {
		return nil, err
	}

	notifications := make([]cdm.Notification, 0, len(entries))
	for _, payload := range entries {
		var notification cdm.Notification
		if err := json.Unmarshal([]byte(payload), &notification); err != nil {
			continue
		}

		notifications = append(notifications, notification)
	}

	return notifications, nil
}
