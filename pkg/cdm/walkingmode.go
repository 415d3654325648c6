package cdm

import "fmt"

type WalkingMode string

const (
	WalkingModeWalk      WalkingMode = "WALK"
	WalkingModeBrisk     WalkingMode = "BRISK"
	WalkingModeSpeedwalk WalkingMode = "SPEEDWALK"
	WalkingModeJog       WalkingMode = "JOG"
)

// The speed and MET tables are a closed set and must always cover the same
// modes. checkWalkingModeTables panics at startup if they ever drift apart.
var walkingModeSpeedMps = map[WalkingMode]float64{
	WalkingModeWalk:      1.4,
	WalkingModeBrisk:     1.8,
	WalkingModeSpeedwalk: 2.2,
	WalkingModeJog:       2.7,
}

var walkingModeMET = map[WalkingMode]float64{
	WalkingModeWalk:      3.5,
	WalkingModeBrisk:     4.3,
	WalkingModeSpeedwalk: 7.0,
	WalkingModeJog:       8.3,
}

func init() {
	checkWalkingModeTables()
}

func checkWalkingModeTables() {
	if len(walkingModeSpeedMps) != len(walkingModeMET) {
		panic("walking mode speed & MET tables have different sizes")
	}

	for mode := range walkingModeSpeedMps {
		if _, exists := walkingModeMET[mode]; !exists {
			panic(fmt.Sprintf("walking mode %s has a speed but no MET", mode))
		}
	}
}

func (m WalkingMode) Valid() bool {
	_, exists := walkingModeSpeedMps[m]
	return exists
}

func (m WalkingMode) SpeedMps() float64 {
	return walkingModeSpeedMps[m]
}

func (m WalkingMode) MET() float64 {
	return walkingModeMET[m]
}
