package recommend

import (
	"github.com/waypace/waypace/pkg/cdm"
)

// Wire format of the recommendation service. Option type on the wire is
// WALK or BUS; BUS maps onto the transit route option kind.
type recommendationResponse struct {
	Options []wireOption `json:"options"`
}

type wireOption struct {
	Type            string     `json:"type"`
	Summary         string     `json:"summary"`
	ETAMinutes      float64    `json:"eta_minutes"`
	DepartInMinutes float64    `json:"depart_in_minutes"`
	Steps           []wireStep `json:"steps"`
}

type wireStep struct {
	Type            string  `json:"type"`
	DurationMinutes float64 `json:"duration_minutes"`

	StopID   string   `json:"stop_id,omitempty"`
	StopName string   `json:"stop_name,omitempty"`
	StopLat  *float64 `json:"stop_lat,omitempty"`
	StopLng  *float64 `json:"stop_lng,omitempty"`

	Route            string   `json:"route,omitempty"`
	Headsign         string   `json:"headsign,omitempty"`
	AlightingStopID  string   `json:"alighting_stop_id,omitempty"`
	AlightingStopLat *float64 `json:"alighting_stop_lat,omitempty"`
	AlightingStopLng *float64 `json:"alighting_stop_lng,omitempty"`

	BuildingID  string   `json:"building_id,omitempty"`
	BuildingLat *float64 `json:"building_lat,omitempty"`
	BuildingLng *float64 `json:"building_lng,omitempty"`
}

func (o wireOption) toRouteOption() cdm.RouteOption {
	kind := cdm.RouteOptionKindWalk
	if o.Type == "BUS" {
		kind = cdm.RouteOptionKindTransit
	}

	steps := make([]cdm.Step, 0, len(o.Steps))
	for _, wireStep := range o.Steps {
		steps = append(steps, wireStep.toStep())
	}

	return cdm.RouteOption{
		Kind:            kind,
		Summary:         o.Summary,
		ETAMinutes:      o.ETAMinutes,
		DepartInMinutes: o.DepartInMinutes,
		Steps:           steps,
	}
}

func (s wireStep) toStep() cdm.Step {
	step := cdm.Step{
		Kind:            cdm.StepKind(s.Type),
		DurationMinutes: s.DurationMinutes,

		StopID:   s.StopID,
		StopName: s.StopName,

		RouteID:         s.Route,
		Headsign:        s.Headsign,
		AlightingStopID: s.AlightingStopID,

		BuildingID: s.BuildingID,
	}

	if s.StopLat != nil && s.StopLng != nil {
		step.StopLocation = cdm.NewLocation(*s.StopLat, *s.StopLng)
	}
	if s.AlightingStopLat != nil && s.AlightingStopLng != nil {
		step.AlightingStopLocation = cdm.NewLocation(*s.AlightingStopLat, *s.AlightingStopLng)
	}
	if s.BuildingLat != nil && s.BuildingLng != nil {
		step.DestinationLocation = cdm.NewLocation(*s.BuildingLat, *s.BuildingLng)
	}

	return step
}
