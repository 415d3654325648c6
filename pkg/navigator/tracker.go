package navigator

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/waypace/waypace/pkg/cdm"
	"github.com/waypace/waypace/pkg/kvstore"
	"github.com/waypace/waypace/pkg/util"
)

const transitDetailTimeout = 5 * time.Second
const snapshotExpiration = 12 * time.Hour

// TransitDetailSource provides the stop sequence and shape of a ride leg
// once the user boards
type TransitDetailSource interface {
	GetLegDetail(ctx context.Context, routeID string, boardingStopID string, alightingStopID string, at time.Time) (*cdm.TransitLegDetail, error)
}

// EncouragementSource produces the short completion message shown on
// arrival. Implementations must fall back internally rather than fail.
type EncouragementSource interface {
	GetEncouragement(ctx context.Context, mode cdm.WalkingMode, distanceMeters float64, calories float64, destinationName string, steps int64) string
}

type ActivityAppender interface {
	Append(ctx context.Context, entry cdm.ActivityEntry) error
}

var (
	ErrSessionActive    = errors.New("a navigation session is already active")
	ErrNoActiveTarget   = errors.New("route option has no resolvable target coordinate")
	ErrPermissionDenied = errors.New("location permission denied")
)

// Tracker owns the NavigationSession and drives the
// WALKING - ON_TRANSIT - ARRIVED state machine from position and pedometer
// events. Events arrive one at a time on a single consumer, so no locking.
type Tracker struct {
	Clock util.Clock
	Store kvstore.Store

	TransitDetail TransitDetailSource
	Encouragement EncouragementSource
	ActivityLog   ActivityAppender

	session *Session
	option  cdm.RouteOption

	fusion  *Fusion
	arrival *ArrivalDetector

	lastFix       *cdm.Location
	transitLeg    *cdm.TransitLegDetail
	encouragement string
}

func (t *Tracker) Active() bool {
	return t.session != nil && t.session.Phase != PhaseArrived
}

// Start creates a new session for the chosen route option. Only one session
// can be live at a time.
func (t *Tracker) Start(option cdm.RouteOption, mode cdm.WalkingMode, bodyWeightKg float64, originName string, destinationName string) error {
	if t.Active() {
		return ErrSessionActive
	}

	// The host reports the permission prompt outcome into the cache. Denial
	// is terminal for this attempt - the user has to act outside the engine.
	if t.Store != nil {
		if permission, err := t.Store.Get(context.Background(), kvstore.KeyLocationPermission); err == nil && permission == "denied" {
			return ErrPermissionDenied
		}
	}

	if err := option.Validate(); err != nil {
		return err
	}
	if !mode.Valid() {
		mode = cdm.WalkingModeWalk
	}

	target := initialTarget(&option)
	if !target.Valid() {
		return ErrNoActiveTarget
	}

	t.option = option
	t.fusion = NewFusion(mode, bodyWeightKg)
	t.arrival = NewArrivalDetector(target)
	t.lastFix = nil
	t.transitLeg = nil
	t.encouragement = ""

	t.session = &Session{
		ID:            uuid.New().String(),
		Phase:         PhaseWalking,
		CurrentTarget: target,

		WalkingMode:     mode,
		OriginName:      originName,
		DestinationName: destinationName,

		StartedAt: t.Clock.Now(),
	}

	log.Info().Str("session", t.session.ID).Str("kind", string(option.Kind)).Msg("Navigation session started")

	t.publishSnapshot()

	return nil
}

// HandlePosition folds one coordinate sample into the session. The raw
// sample always drives arrival detection and ETA; only plausible samples
// accumulate distance.
func (t *Tracker) HandlePosition(location *cdm.Location) {
	if !t.Active() || !location.Valid() {
		return
	}

	// Distance only accumulates on walking legs - while on the bus the raw
	// samples still drive arrival detection below
	if t.session.Phase == PhaseWalking {
		t.fusion.ObservePosition(location)
	}
	t.lastFix = location

	t.syncSession()
	t.rememberLastKnownLocation(location)

	_, arrived := t.arrival.Observe(location)
	if arrived {
		t.handleArrival()
	}

	t.publishSnapshot()
}

func (t *Tracker) HandleSteps(stepCount int64) {
	if !t.Active() {
		return
	}

	t.fusion.ObserveSteps(stepCount)
	t.syncSession()
	t.publishSnapshot()
}

// Cancel tears the session down without persisting anything. Always allowed,
// always terminal.
func (t *Tracker) Cancel() {
	if t.session == nil {
		return
	}

	log.Info().Str("session", t.session.ID).Str("phase", string(t.session.Phase)).Msg("Navigation session cancelled")

	t.session = nil
	t.fusion = nil
	t.arrival = nil
	t.lastFix = nil
	t.transitLeg = nil

	if t.Store != nil {
		t.Store.Delete(context.Background(), kvstore.KeySessionSnapshot)
	}
}

func (t *Tracker) handleArrival() {
	if t.session.Phase == PhaseWalking && t.option.Kind == cdm.RouteOptionKindTransit {
		t.boardTransit()
		return
	}

	t.arrive()
}

// boardTransit switches to the ride leg: re-target the alighting stop,
// re-arm the arrival latch and fetch the leg detail as a best effort
// enhancement.
func (t *Tracker) boardTransit() {
	ride := t.option.RideStep()

	// Some producers omit the alighting coordinate - ride straight towards
	// the destination instead so the session can still complete
	target := ride.AlightingStopLocation
	if !target.Valid() {
		if destination := t.option.DestinationStep(); destination != nil {
			target = destination.DestinationLocation
		}
	}

	t.session.Phase = PhaseOnTransit
	t.session.CurrentTarget = target
	t.arrival.Retarget(target)

	log.Info().Str("session", t.session.ID).Str("route", ride.RouteID).Msg("Boarded transit leg")

	if t.TransitDetail == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), transitDetailTimeout)
	defer cancel()

	legDetail, err := t.TransitDetail.GetLegDetail(ctx, ride.RouteID, ride.StopID, ride.AlightingStopID, t.Clock.Now())
	if err != nil {
		// Enhancement only - the phase transition already happened
		log.Error().Err(err).Str("route", ride.RouteID).Msg("Failed to fetch transit leg detail")
		return
	}

	t.transitLeg = legDetail
}

func (t *Tracker) arrive() {
	t.session.Phase = PhaseArrived
	t.syncSession()

	if t.Encouragement != nil {
		t.encouragement = t.Encouragement.GetEncouragement(
			context.Background(),
			t.session.WalkingMode,
			t.session.WalkedDistanceMeters,
			t.session.CaloriesKcal,
			t.session.DestinationName,
			t.session.StepCount,
		)
	}

	entry := cdm.ActivityEntry{
		ID:   t.session.ID,
		Date: t.Clock.Now(),

		WalkingMode: t.session.WalkingMode,

		DistanceMeters:  t.session.WalkedDistanceMeters,
		StepCount:       t.session.StepCount,
		DurationSeconds: t.session.ElapsedSeconds,
		CaloriesKcal:    t.session.CaloriesKcal,

		From: t.session.OriginName,
		To:   t.session.DestinationName,
	}

	if t.ActivityLog != nil {
		if err := t.ActivityLog.Append(context.Background(), entry); err != nil {
			log.Error().Err(err).Str("session", t.session.ID).Msg("Failed to persist activity entry")
		}
	}

	log.Info().
		Str("session", t.session.ID).
		Float64("distance", entry.DistanceMeters).
		Float64("calories", entry.CaloriesKcal).
		Int64("steps", entry.StepCount).
		Msg("Navigation session arrived")
}

// syncSession copies the fusion accumulators onto the session and advances
// the elapsed time. Elapsed freezes once arrived.
func (t *Tracker) syncSession() {
	t.session.WalkedDistanceMeters = t.fusion.WalkedDistanceMeters
	t.session.StepCount = t.fusion.StepCount
	t.session.CaloriesKcal = t.fusion.CaloriesKcal
	t.session.ElapsedSeconds = int64(t.Clock.Now().Sub(t.session.StartedAt).Seconds())
}

func (t *Tracker) rememberLastKnownLocation(location *cdm.Location) {
	if t.Store == nil {
		return
	}

	err := kvstore.SetJSON(context.Background(), t.Store, kvstore.KeyLastKnownLocation, location, 0)
	if err != nil {
		log.Debug().Err(err).Msg("Failed to cache last known location")
	}
}

// Snapshot builds the presentable state of the session, or nil when no
// session exists
func (t *Tracker) Snapshot() *Snapshot {
	if t.session == nil {
		return nil
	}

	var distanceToTarget float64
	hasFix := t.lastFix != nil
	if hasFix && t.session.CurrentTarget.Valid() {
		distanceToTarget = t.lastFix.Distance(t.session.CurrentTarget)
	}

	return &Snapshot{
		Session: *t.session,

		ETADisplay:      formatETA(distanceToTarget, t.session.WalkingMode, hasFix),
		DistanceDisplay: formatDistance(t.session.WalkedDistanceMeters),

		Encouragement: t.encouragement,
		TransitLeg:    t.transitLeg,
	}
}

func (t *Tracker) publishSnapshot() {
	if t.Store == nil {
		return
	}

	snapshot := t.Snapshot()
	if snapshot == nil {
		return
	}

	err := kvstore.SetJSON(context.Background(), t.Store, kvstore.KeySessionSnapshot, snapshot, snapshotExpiration)
	if err != nil {
		log.Debug().Err(err).Msg("Failed to publish session snapshot")
	}
}

// initialTarget picks the first coordinate the arrival detector measures
// against - the boarding stop for transit options, the destination for
// walk-only ones
func initialTarget(option *cdm.RouteOption) *cdm.Location {
	if option.Kind == cdm.RouteOptionKindTransit {
		if boarding := option.BoardingStep(); boarding != nil && boarding.StopLocation.Valid() {
			return boarding.StopLocation
		}

		// Some producers only attach the boarding coordinate to the ride leg
		if ride := option.RideStep(); ride != nil && ride.StopLocation.Valid() {
			return ride.StopLocation
		}

		return nil
	}

	if destination := option.DestinationStep(); destination != nil {
		return destination.DestinationLocation
	}

	return nil
}
