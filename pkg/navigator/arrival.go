package navigator

import "github.com/waypace/waypace/pkg/cdm"

// A leg is complete when the user is within this distance of the target
const arrivalThresholdMeters = 30.0

// ArrivalDetector signals arrival exactly once per target. The latch only
// resets when the target changes, so hovering under the threshold never
// refires.
type ArrivalDetector struct {
	target  *cdm.Location
	latched bool
}

func NewArrivalDetector(target *cdm.Location) *ArrivalDetector {
	return &ArrivalDetector{target: target}
}

func (d *ArrivalDetector) Target() *cdm.Location {
	return d.target
}

// Retarget points the detector at the next leg's target and re-arms it
func (d *ArrivalDetector) Retarget(target *cdm.Location) {
	d.target = target
	d.latched = false
}

// Observe returns the distance to the current target and whether this sample
// triggered arrival
func (d *ArrivalDetector) Observe(location *cdm.Location) (distanceMeters float64, arrived bool) {
	if !d.target.Valid() || !location.Valid() {
		return 0, false
	}

	distanceMeters = location.Distance(d.target)

	if d.latched {
		return distanceMeters, false
	}

	if distanceMeters <= arrivalThresholdMeters {
		d.latched = true
		return distanceMeters, true
	}

	return distanceMeters, false
}
