package reminders

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/waypace/waypace/pkg/cdm"
	"github.com/waypace/waypace/pkg/kvstore"
	"github.com/waypace/waypace/pkg/notify"
	"github.com/waypace/waypace/pkg/util"
	"golang.org/x/exp/slices"
)

// Heads-up reminder fires this long before class starts
const preDepartureLeadMinutes = 20.0

const defaultBufferMinutes = 5.0

// Scheduler derives "leave by" alerts for today's classes from the cached
// route summaries. Every run replaces the complete reminder set - cancel all
// identifiers under the two owned prefixes, then create the new set - so
// repeated runs never leave duplicates or orphans behind.
type Scheduler struct {
	Store    kvstore.Store
	Notifier notify.Notifier
	Clock    util.Clock

	BufferMinutes float64
	TargetUser    string
}

func (s *Scheduler) Run(ctx context.Context, classes []cdm.ClassMeeting) error {
	now := s.Clock.Now()

	buffer := s.BufferMinutes
	if buffer <= 0 {
		buffer = defaultBufferMinutes
	}

	var notifications []cdm.Notification

	for _, class := range classes {
		classNotifications := s.planClass(ctx, class, now, buffer)
		notifications = append(notifications, classNotifications...)
	}

	slices.SortFunc(notifications, func(a, b cdm.Notification) int {
		return a.TriggerAt.Compare(b.TriggerAt)
	})

	// Cancel-then-create runs as one logical unit - both halves complete
	// before we return
	if err := s.Notifier.CancelPrefix(ctx, cdm.ReminderPrefixLeaveNow); err != nil {
		return err
	}
	if err := s.Notifier.CancelPrefix(ctx, cdm.ReminderPrefixPreDeparture); err != nil {
		return err
	}

	for _, notification := range notifications {
		if err := s.Notifier.Schedule(ctx, notification); err != nil {
			return err
		}
	}

	log.Info().Int("reminders", len(notifications)).Int("classes", len(classes)).Msg("Rescheduled class reminders")

	return nil
}

// planClass computes the up-to-two reminders for one class, or nothing when
// the class is not eligible today
func (s *Scheduler) planClass(ctx context.Context, class cdm.ClassMeeting, now time.Time, buffer float64) []cdm.Notification {
	if !class.OccursOn(now.Weekday()) {
		return nil
	}

	// Dismissed for today with "I'm walking"
	if _, err := s.Store.Get(ctx, kvstore.KeyWalkedToday(class.ClassID, now)); err == nil {
		return nil
	}

	classStart, err := class.StartOn(now)
	if err != nil {
		log.Error().Err(err).Str("class", class.ClassID).Msg("Skipping class with malformed start time")
		return nil
	}

	summary, _ := kvstore.GetJSON[cdm.RouteSummary](ctx, s.Store, kvstore.KeyRouteSummary(class.ClassID))

	bestDepartMinutes, departKnown := bestDepartIn(summary)

	var notifications []cdm.Notification

	preDepartureAt := classStart.Add(-minutes(preDepartureLeadMinutes))
	if preDepartureAt.After(now) {
		notifications = append(notifications, cdm.Notification{
			Identifier: cdm.ReminderKindPreDeparture.Identifier(class.ClassID),
			TargetUser: s.TargetUser,

			Title: fmt.Sprintf("%s at %s", class.Title, classStart.Format("3:04 PM")),
			Body:  preDepartureBody(class, classStart, summary, bestDepartMinutes, departKnown),

			DeepLink:  fmt.Sprintf("waypace://class/%s", class.ClassID),
			TriggerAt: preDepartureAt,
		})
	}

	if departKnown && bestDepartMinutes > 0 {
		leaveNowAt := classStart.Add(-minutes(bestDepartMinutes + buffer))
		if leaveNowAt.After(now) {
			notifications = append(notifications, cdm.Notification{
				Identifier: cdm.ReminderKindLeaveNow.Identifier(class.ClassID),
				TargetUser: s.TargetUser,

				Title: "Leave now",
				Body:  fmt.Sprintf("Head out now to make %s at %s.", class.Title, classStart.Format("3:04 PM")),

				DeepLink:  fmt.Sprintf("waypace://class/%s", class.ClassID),
				TriggerAt: leaveNowAt,
			})
		}
	}

	return notifications
}

// preDepartureBody includes the computed leave-by clock time and the route
// option labels when structured data exists, and degrades to a generic
// prompt otherwise
func preDepartureBody(class cdm.ClassMeeting, classStart time.Time, summary *cdm.RouteSummary, bestDepartMinutes float64, departKnown bool) string {
	if !departKnown {
		return fmt.Sprintf("%s starts soon. Open the app to check your route.", class.Title)
	}

	leaveBy := classStart.Add(-minutes(bestDepartMinutes))
	body := fmt.Sprintf("Leave by %s to make %s.", leaveBy.Format("3:04 PM"), class.Title)

	if summary.Structured() && len(summary.OptionLabels) > 0 {
		body = fmt.Sprintf("%s Options: %s", body, strings.Join(summary.OptionLabels, ", "))
	}

	return body
}

// bestDepartIn prefers the structured summary and falls back to parsing the
// legacy free-text one
func bestDepartIn(summary *cdm.RouteSummary) (float64, bool) {
	if summary == nil {
		return 0, false
	}

	if summary.Structured() {
		return *summary.BestDepartInMinutes, true
	}

	return legacyMinimumMinutes(summary.Text)
}

func minutes(m float64) time.Duration {
	return time.Duration(m * float64(time.Minute))
}
