package navigator

import (
	"math"

	"github.com/waypace/waypace/pkg/cdm"
)

// Position deltas above this are treated as GPS teleports and excluded from
// distance accumulation
const jumpThresholdMeters = 100.0

const defaultBodyWeightKg = 70.0

// Fusion folds the raw coordinate stream and the cumulative device step
// counter into walked distance, step count and calories.
type Fusion struct {
	Mode         cdm.WalkingMode
	BodyWeightKg float64

	lastAccepted *cdm.Location

	WalkedDistanceMeters float64
	StepCount            int64
	CaloriesKcal         float64
}

func NewFusion(mode cdm.WalkingMode, bodyWeightKg float64) *Fusion {
	if bodyWeightKg <= 0 {
		bodyWeightKg = defaultBodyWeightKg
	}

	return &Fusion{
		Mode:         mode,
		BodyWeightKg: bodyWeightKg,
	}
}

// ObservePosition accumulates walked distance from an accepted coordinate.
// The first sample only seeds state. Samples further than the jump threshold
// from the previous accepted one are discarded for accumulation - the caller
// still uses the raw sample for arrival and ETA.
func (f *Fusion) ObservePosition(location *cdm.Location) (accepted bool) {
	if !location.Valid() {
		return false
	}

	if f.lastAccepted == nil {
		f.lastAccepted = location
		return false
	}

	delta := f.lastAccepted.Distance(location)
	if delta >= jumpThresholdMeters {
		return false
	}

	f.WalkedDistanceMeters += delta
	f.lastAccepted = location

	if f.WalkedDistanceMeters > 0 {
		f.CaloriesKcal = calories(f.Mode, f.BodyWeightKg, f.WalkedDistanceMeters)
	}

	return true
}

// ObserveSteps overwrites the step count - the device counter is cumulative
// and authoritative
func (f *Fusion) ObserveSteps(stepCount int64) {
	f.StepCount = stepCount
}

// calories = MET × weight × hours walked, where hours are derived from
// distance at the mode's fixed speed. Rounded to one decimal.
func calories(mode cdm.WalkingMode, bodyWeightKg float64, distanceMeters float64) float64 {
	kcal := mode.MET() * bodyWeightKg * (distanceMeters / mode.SpeedMps() / 3600)

	return math.Round(kcal*10) / 10
}
