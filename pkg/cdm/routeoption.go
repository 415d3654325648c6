package cdm

import "errors"

type RouteOptionKind string

const (
	RouteOptionKindWalk    RouteOptionKind = "WALK"
	RouteOptionKindTransit RouteOptionKind = "TRANSIT"
)

type StepKind string

const (
	StepKindWalkToStop StepKind = "WALK_TO_STOP"
	StepKindWait       StepKind = "WAIT"
	StepKindRide       StepKind = "RIDE"
	StepKindWalkToDest StepKind = "WALK_TO_DEST"
)

// RouteOption is one ranked way of getting to the destination, either a pure
// walk or walk - bus - walk. Produced by the recommendation service and never
// mutated here.
type RouteOption struct {
	Kind    RouteOptionKind `json:"kind" groups:"basic"`
	Summary string          `json:"summary" groups:"basic"`

	ETAMinutes      float64 `json:"eta_minutes" groups:"basic"`
	DepartInMinutes float64 `json:"depart_in_minutes" groups:"basic"`

	Steps []Step `json:"steps" groups:"detailed"`
}

type Step struct {
	Kind            StepKind `json:"kind" groups:"basic"`
	DurationMinutes float64  `json:"duration_minutes" groups:"basic"`

	// WALK_TO_STOP / WAIT
	StopID       string    `json:"stop_id,omitempty" groups:"basic"`
	StopName     string    `json:"stop_name,omitempty" groups:"basic"`
	StopLocation *Location `json:"stop_location,omitempty" groups:"detailed"`

	// RIDE
	RouteID               string    `json:"route,omitempty" groups:"basic"`
	Headsign              string    `json:"headsign,omitempty" groups:"basic"`
	AlightingStopID       string    `json:"alighting_stop_id,omitempty" groups:"basic"`
	AlightingStopLocation *Location `json:"alighting_stop_location,omitempty" groups:"detailed"`

	// WALK_TO_DEST
	BuildingID          string    `json:"building_id,omitempty" groups:"basic"`
	DestinationLocation *Location `json:"destination_location,omitempty" groups:"detailed"`
}

var (
	ErrRouteOptionNoSteps      = errors.New("route option has no steps")
	ErrRouteOptionNoRideLeg    = errors.New("transit route option is missing a bounded ride leg")
	ErrRouteOptionNoRideTarget = errors.New("transit route option has no alighting or destination coordinate")
)

func (r *RouteOption) Validate() error {
	if len(r.Steps) == 0 {
		return ErrRouteOptionNoSteps
	}

	if r.Kind == RouteOptionKindTransit {
		ride := r.RideStep()
		if ride == nil || ride.StopID == "" || ride.AlightingStopID == "" {
			return ErrRouteOptionNoRideLeg
		}

		// The ride leg needs a coordinate to arrive at once boarded. The
		// alighting coordinate is optional on the wire, so the destination
		// has to cover for it when absent.
		if !ride.AlightingStopLocation.Valid() {
			destination := r.DestinationStep()
			if destination == nil || !destination.DestinationLocation.Valid() {
				return ErrRouteOptionNoRideTarget
			}
		}
	}

	return nil
}

// BoardingStep returns the walk leg towards the boarding stop, nil for
// walk-only options
func (r *RouteOption) BoardingStep() *Step {
	for i := range r.Steps {
		if r.Steps[i].Kind == StepKindWalkToStop {
			return &r.Steps[i]
		}
	}

	return nil
}

func (r *RouteOption) RideStep() *Step {
	for i := range r.Steps {
		if r.Steps[i].Kind == StepKindRide {
			return &r.Steps[i]
		}
	}

	return nil
}

func (r *RouteOption) DestinationStep() *Step {
	for i := len(r.Steps) - 1; i >= 0; i-- {
		if r.Steps[i].Kind == StepKindWalkToDest {
			return &r.Steps[i]
		}
	}

	return nil
}
