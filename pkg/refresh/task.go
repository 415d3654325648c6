package refresh

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"
	"github.com/waypace/waypace/pkg/cdm"
	"github.com/waypace/waypace/pkg/kvstore"
	"github.com/waypace/waypace/pkg/recommend"
	"github.com/waypace/waypace/pkg/util"
)

type Result string

const (
	// A fresh route summary was fetched and cached
	ResultNewData Result = "new-data"
	// Nothing to do - notifications disabled or no cached inputs
	ResultNoData Result = "no-data"
	// The route fetch failed; reminders were rescheduled from stale data
	ResultFailed Result = "failed"
)

const fetchTimeout = 15 * time.Second
const fetchRetries = 2
const summaryExpiration = 24 * time.Hour

type Recommender interface {
	GetRecommendations(ctx context.Context, request recommend.RecommendationRequest) ([]cdm.RouteOption, error)
}

type ReminderScheduler interface {
	Run(ctx context.Context, classes []cdm.ClassMeeting) error
}

// Task recomputes the next class's route from the last known location and
// re-derives the reminder set. Invoked on a coarse periodic cadence; every
// failure degrades to the previous cached data and nothing escapes Perform.
type Task struct {
	Store     kvstore.Store
	Recommend Recommender
	Scheduler ReminderScheduler
	Clock     util.Clock
}

func (t *Task) Perform(ctx context.Context) Result {
	enabled, err := t.Store.Get(ctx, kvstore.KeyClassNotificationsEnabled)
	if err != nil || enabled != "true" {
		return ResultNoData
	}

	location, _ := kvstore.GetJSON[cdm.Location](ctx, t.Store, kvstore.KeyLastKnownLocation)
	classes, classesErr := kvstore.GetJSON[[]cdm.ClassMeeting](ctx, t.Store, kvstore.KeyCachedClasses)

	if location == nil && classesErr != nil {
		return ResultNoData
	}

	var classList []cdm.ClassMeeting
	if classes != nil {
		classList = *classes
	}

	result := ResultNoData

	nextClass, classStart := t.nextClass(classList)
	if nextClass != nil && location.Valid() {
		if t.refreshSummary(ctx, nextClass, classStart, location) {
			result = ResultNewData
		} else {
			result = ResultFailed
		}
	}

	// Reminders are re-derived either way so they reflect whichever summary
	// is now cached
	if err := t.Scheduler.Run(ctx, classList); err != nil {
		log.Error().Err(err).Msg("Failed to reschedule reminders")
		return ResultFailed
	}

	return result
}

// nextClass finds the first class later today, if any
func (t *Task) nextClass(classes []cdm.ClassMeeting) (*cdm.ClassMeeting, time.Time) {
	now := t.Clock.Now()

	var next *cdm.ClassMeeting
	var nextStart time.Time

	for i := range classes {
		class := &classes[i]

		if !class.OccursOn(now.Weekday()) {
			continue
		}

		classStart, err := class.StartOn(now)
		if err != nil || classStart.Before(now) {
			continue
		}

		if next == nil || classStart.Before(nextStart) {
			next = class
			nextStart = classStart
		}
	}

	return next, nextStart
}

// refreshSummary fetches a fresh recommendation for the class and replaces
// the cached summary. On failure the previous summary stays in place.
func (t *Task) refreshSummary(ctx context.Context, class *cdm.ClassMeeting, classStart time.Time, location *cdm.Location) bool {
	request := recommend.RecommendationRequest{
		Lat: location.Latitude(),
		Lng: location.Longitude(),

		DestinationBuildingID: class.BuildingID,
		DestinationName:       class.DestinationName,

		ArriveByISO: classStart.Format(time.RFC3339),
	}

	if class.Destination.Valid() {
		lat := class.Destination.Latitude()
		lng := class.Destination.Longitude()
		request.DestinationLat = &lat
		request.DestinationLng = &lng
	}

	fetchCtx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	var options []cdm.RouteOption

	fetch := func() error {
		var err error
		options, err = t.Recommend.GetRecommendations(fetchCtx, request)
		return err
	}

	err := backoff.Retry(fetch, backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), fetchRetries), fetchCtx))
	if err != nil {
		log.Error().Err(err).Str("class", class.ClassID).Msg("Route refresh failed, keeping previous summary")
		return false
	}

	if len(options) == 0 {
		log.Info().Str("class", class.ClassID).Msg("Route refresh returned no options, keeping previous summary")
		return false
	}

	summary := summarise(class.ClassID, options, t.Clock.Now())

	err = kvstore.SetJSON(ctx, t.Store, kvstore.KeyRouteSummary(class.ClassID), summary, summaryExpiration)
	if err != nil {
		log.Error().Err(err).Str("class", class.ClassID).Msg("Failed to cache route summary")
		return false
	}

	return true
}

// summarise reduces the ranked option list to the cached per-class summary.
// The first option is the recommended one - its depart offset drives the
// leave-now alert.
func summarise(classID string, options []cdm.RouteOption, retrievedAt time.Time) cdm.RouteSummary {
	bestDepart := options[0].DepartInMinutes

	labels := make([]string, 0, len(options))
	for _, option := range options {
		labels = append(labels, option.Summary)
	}

	return cdm.RouteSummary{
		ClassID: classID,

		BestDepartInMinutes: &bestDepart,
		OptionLabels:        labels,

		RetrievedAt: retrievedAt,
	}
}
