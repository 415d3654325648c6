package navigator

import (
	"fmt"
	"math"
	"time"

	"github.com/waypace/waypace/pkg/cdm"
)

type Phase string

const (
	PhaseWalking   Phase = "WALKING"
	PhaseOnTransit Phase = "ON_TRANSIT"
	PhaseArrived   Phase = "ARRIVED"
)

// metres in 528 feet - the point where the display switches to miles
const milesDisplayCutoverMetres = 160.9344
const metresPerMile = 1609.344

// Session is the live state of one in-progress trip. It is owned exclusively
// by the Tracker and mutated only on its event loop.
type Session struct {
	ID string `json:"id" groups:"basic"`

	Phase Phase `json:"phase" groups:"basic"`

	CurrentTarget *cdm.Location `json:"current_target,omitempty" groups:"detailed"`

	WalkedDistanceMeters float64 `json:"walked_distance_meters" groups:"basic"`
	StepCount            int64   `json:"step_count" groups:"basic"`
	ElapsedSeconds       int64   `json:"elapsed_seconds" groups:"basic"`
	CaloriesKcal         float64 `json:"calories_kcal" groups:"basic"`

	WalkingMode cdm.WalkingMode `json:"walking_mode" groups:"basic"`

	OriginName      string `json:"origin_name,omitempty" groups:"basic"`
	DestinationName string `json:"destination_name,omitempty" groups:"basic"`

	StartedAt time.Time `json:"started_at" groups:"basic"`
}

// Snapshot is the presentable view of a session, mirrored into the shared
// cache for the read API.
type Snapshot struct {
	Session

	ETADisplay      string `json:"eta_display" groups:"basic"`
	DistanceDisplay string `json:"distance_display" groups:"basic"`

	// Only set once the session arrives
	Encouragement string `json:"encouragement,omitempty" groups:"basic"`

	TransitLeg *cdm.TransitLegDetail `json:"transit_leg,omitempty" groups:"detailed"`
}

// etaMinutes is the whole-minute walk time to the target at the session's
// walking speed
func etaMinutes(distanceMeters float64, mode cdm.WalkingMode) int {
	return int(math.Ceil(distanceMeters / mode.SpeedMps() / 60))
}

func formatETA(distanceMeters float64, mode cdm.WalkingMode, hasFix bool) string {
	if !hasFix {
		return "—"
	}

	return fmt.Sprintf("%d min", etaMinutes(distanceMeters, mode))
}

func formatDistance(meters float64) string {
	if meters < milesDisplayCutoverMetres {
		return fmt.Sprintf("%.0f m", meters)
	}

	return fmt.Sprintf("%.1f mi", meters/metresPerMile)
}
