package navigator

import (
	"github.com/waypace/waypace/pkg/cdm"
)

type EventType string

const (
	EventTypeStart     EventType = "start"
	EventTypePosition  EventType = "position"
	EventTypePedometer EventType = "pedometer"
	EventTypeCancel    EventType = "cancel"
)

// TrackingEvent is the envelope the device publishes onto the navigation
// queue. The host runtime delivers these to a single consumer so the tracker
// never sees overlapping events.
type TrackingEvent struct {
	Type EventType `json:"type"`

	// start
	Option          *cdm.RouteOption `json:"option,omitempty"`
	WalkingMode     cdm.WalkingMode  `json:"walking_mode,omitempty"`
	BodyWeightKg    float64          `json:"body_weight_kg,omitempty"`
	OriginName      string           `json:"origin_name,omitempty"`
	DestinationName string           `json:"destination_name,omitempty"`

	// position
	Location *cdm.Location `json:"location,omitempty"`

	// pedometer - cumulative device counter, not a delta
	StepCount int64 `json:"step_count,omitempty"`
}
