package refresh

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/waypace/waypace/pkg/cdm"
	"github.com/waypace/waypace/pkg/kvstore"
	"github.com/waypace/waypace/pkg/recommend"
	"github.com/waypace/waypace/pkg/util"
)

type fakeRecommender struct {
	options  []cdm.RouteOption
	err      error
	requests []recommend.RecommendationRequest
}

func (f *fakeRecommender) GetRecommendations(ctx context.Context, request recommend.RecommendationRequest) ([]cdm.RouteOption, error) {
	f.requests = append(f.requests, request)
	return f.options, f.err
}

type fakeScheduler struct {
	runs    int
	classes []cdm.ClassMeeting
	err     error
}

func (f *fakeScheduler) Run(ctx context.Context, classes []cdm.ClassMeeting) error {
	f.runs += 1
	f.classes = classes
	return f.err
}

// A Wednesday morning
var refreshNow = time.Date(2024, 3, 6, 8, 0, 0, 0, time.UTC)

func newTestTask() (*Task, *fakeRecommender, *fakeScheduler, kvstore.Store) {
	store := kvstore.NewMemoryStore()
	recommender := &fakeRecommender{
		options: []cdm.RouteOption{
			{Kind: cdm.RouteOptionKindTransit, Summary: "Bus 22 Illini", DepartInMinutes: 12},
			{Kind: cdm.RouteOptionKindWalk, Summary: "Walk 25 min", DepartInMinutes: 3},
		},
	}
	scheduler := &fakeScheduler{}

	task := &Task{
		Store:     store,
		Recommend: recommender,
		Scheduler: scheduler,
		Clock:     util.FixedClock{Time: refreshNow},
	}

	return task, recommender, scheduler, store
}

func seedInputs(t *testing.T, store kvstore.Store) {
	t.Helper()

	ctx := context.Background()

	if err := store.Set(ctx, kvstore.KeyClassNotificationsEnabled, "true", 0); err != nil {
		t.Fatal(err)
	}

	err := kvstore.SetJSON(ctx, store, kvstore.KeyLastKnownLocation, cdm.NewLocation(40.1092, -88.2272), 0)
	if err != nil {
		t.Fatal(err)
	}

	classes := []cdm.ClassMeeting{
		{
			ClassID:        "CS225",
			Title:          "Data Structures",
			Days:           []string{"MON", "WED", "FRI"},
			StartTimeLocal: "14:30",
			BuildingID:     "siebel",
			Destination:    cdm.NewLocation(40.1138, -88.2249),
		},
		{
			ClassID:        "MATH241",
			Title:          "Calculus III",
			Days:           []string{"MON", "WED", "FRI"},
			StartTimeLocal: "16:00",
		},
	}
	if err := kvstore.SetJSON(ctx, store, kvstore.KeyCachedClasses, classes, 0); err != nil {
		t.Fatal(err)
	}
}

func TestTaskFetchesAndCachesSummary(t *testing.T) {
	task, recommender, scheduler, store := newTestTask()
	seedInputs(t, store)

	result := task.Perform(context.Background())
	if result != ResultNewData {
		t.Fatalf("expected new-data, got %s", result)
	}

	if len(recommender.requests) != 1 {
		t.Fatalf("expected one recommendation request, got %d", len(recommender.requests))
	}

	// CS225 at 14:30 is the next class, not MATH241 at 16:00
	request := recommender.requests[0]
	if request.DestinationBuildingID != "siebel" {
		t.Errorf("wrong class refreshed: %+v", request)
	}
	if request.ArriveByISO != "2024-03-06T14:30:00Z" {
		t.Errorf("arrive-by wrong: %q", request.ArriveByISO)
	}
	if request.DestinationLat == nil || *request.DestinationLat != 40.1138 {
		t.Errorf("destination coordinates missing: %+v", request)
	}

	summary, err := kvstore.GetJSON[cdm.RouteSummary](context.Background(), store, kvstore.KeyRouteSummary("CS225"))
	if err != nil {
		t.Fatal(err)
	}
	if !summary.Structured() || *summary.BestDepartInMinutes != 12 {
		t.Errorf("cached summary wrong: %+v", summary)
	}
	if len(summary.OptionLabels) != 2 || summary.OptionLabels[0] != "Bus 22 Illini" {
		t.Errorf("option labels wrong: %v", summary.OptionLabels)
	}

	if scheduler.runs != 1 {
		t.Errorf("reminders should be rescheduled once, got %d", scheduler.runs)
	}
	if len(scheduler.classes) != 2 {
		t.Errorf("scheduler should see the full class list, got %d", len(scheduler.classes))
	}
}

func TestTaskDisabled(t *testing.T) {
	task, recommender, scheduler, store := newTestTask()
	seedInputs(t, store)

	err := store.Set(context.Background(), kvstore.KeyClassNotificationsEnabled, "false", 0)
	if err != nil {
		t.Fatal(err)
	}

	if result := task.Perform(context.Background()); result != ResultNoData {
		t.Fatalf("expected no-data when disabled, got %s", result)
	}

	if len(recommender.requests) != 0 {
		t.Error("no fetch should happen when disabled")
	}
	if scheduler.runs != 0 {
		t.Error("no reschedule should happen when disabled")
	}
}

func TestTaskNoCachedInputs(t *testing.T) {
	task, _, scheduler, store := newTestTask()

	err := store.Set(context.Background(), kvstore.KeyClassNotificationsEnabled, "true", 0)
	if err != nil {
		t.Fatal(err)
	}

	if result := task.Perform(context.Background()); result != ResultNoData {
		t.Fatalf("expected no-data without cached inputs, got %s", result)
	}
	if scheduler.runs != 0 {
		t.Error("nothing to reschedule without inputs")
	}
}

func TestTaskKeepsStaleSummaryOnFailure(t *testing.T) {
	task, recommender, scheduler, store := newTestTask()
	seedInputs(t, store)

	stale := cdm.RouteSummary{
		ClassID:             "CS225",
		BestDepartInMinutes: floatPtr(20),
	}
	err := kvstore.SetJSON(context.Background(), store, kvstore.KeyRouteSummary("CS225"), stale, 0)
	if err != nil {
		t.Fatal(err)
	}

	recommender.options = nil
	recommender.err = errors.New("recommendation service unavailable")

	if result := task.Perform(context.Background()); result != ResultFailed {
		t.Fatalf("expected failed, got %s", result)
	}

	// The stale summary is untouched and reminders were still re-derived
	summary, err := kvstore.GetJSON[cdm.RouteSummary](context.Background(), store, kvstore.KeyRouteSummary("CS225"))
	if err != nil {
		t.Fatal(err)
	}
	if *summary.BestDepartInMinutes != 20 {
		t.Errorf("stale summary should survive a failed fetch: %+v", summary)
	}

	if scheduler.runs != 1 {
		t.Errorf("reminders must still be rescheduled on failure, got %d runs", scheduler.runs)
	}
}

func TestTaskEmptyOptionsIsFailure(t *testing.T) {
	task, recommender, scheduler, store := newTestTask()
	seedInputs(t, store)

	recommender.options = nil

	if result := task.Perform(context.Background()); result != ResultFailed {
		t.Fatalf("expected failed on empty options, got %s", result)
	}
	if scheduler.runs != 1 {
		t.Error("reminders must still be rescheduled")
	}
}

func TestTaskNoClassesLaterToday(t *testing.T) {
	task, recommender, scheduler, store := newTestTask()
	seedInputs(t, store)

	// Well past both classes
	task.Clock = util.FixedClock{Time: time.Date(2024, 3, 6, 20, 0, 0, 0, time.UTC)}

	if result := task.Perform(context.Background()); result != ResultNoData {
		t.Fatalf("expected no-data with no upcoming classes, got %s", result)
	}

	if len(recommender.requests) != 0 {
		t.Error("no fetch without an upcoming class")
	}
	// Rescheduling still runs so past reminders get cleaned up
	if scheduler.runs != 1 {
		t.Errorf("expected one scheduler run, got %d", scheduler.runs)
	}
}

func floatPtr(v float64) *float64 {
	return &v
}
