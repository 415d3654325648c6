package notify

import (
	"context"
	"testing"
	"time"

	"github.com/waypace/waypace/pkg/cdm"
)

func TestMemoryNotifierScheduleReplaces(t *testing.T) {
	notifier := NewMemoryNotifier()
	ctx := context.Background()

	first := cdm.Notification{Identifier: "class-CS225", Title: "old", TriggerAt: time.Now()}
	second := cdm.Notification{Identifier: "class-CS225", Title: "new", TriggerAt: time.Now()}

	notifier.Schedule(ctx, first)
	notifier.Schedule(ctx, second)

	pending, _ := notifier.Pending(ctx)
	if len(pending) != 1 {
		t.Fatalf("same identifier should replace, got %d pending", len(pending))
	}
	if pending[0].Title != "new" {
		t.Errorf("latest schedule should win, got %q", pending[0].Title)
	}
}

func TestMemoryNotifierCancelPrefix(t *testing.T) {
	notifier := NewMemoryNotifier()
	ctx := context.Background()

	notifier.Schedule(ctx, cdm.Notification{Identifier: "class-depart-CS225"})
	notifier.Schedule(ctx, cdm.Notification{Identifier: "class-depart-MATH241"})
	notifier.Schedule(ctx, cdm.Notification{Identifier: "other-thing"})

	notifier.CancelPrefix(ctx, cdm.ReminderPrefixLeaveNow)

	pending, _ := notifier.Pending(ctx)
	if len(pending) != 1 || pending[0].Identifier != "other-thing" {
		t.Errorf("only identifiers under the prefix should be cancelled: %+v", pending)
	}
}

func TestMemoryNotifierCancel(t *testing.T) {
	notifier := NewMemoryNotifier()
	ctx := context.Background()

	notifier.Schedule(ctx, cdm.Notification{Identifier: "class-CS225"})
	notifier.Cancel(ctx, "class-CS225")

	if _, exists := notifier.Get("class-CS225"); exists {
		t.Error("cancelled notification should be gone")
	}
}
