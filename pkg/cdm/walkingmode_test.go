package cdm

import "testing"

func TestWalkingModeTables(t *testing.T) {
	// Would panic in init if the tables drifted, but check explicitly too
	checkWalkingModeTables()

	modes := []WalkingMode{WalkingModeWalk, WalkingModeBrisk, WalkingModeSpeedwalk, WalkingModeJog}
	for _, mode := range modes {
		if !mode.Valid() {
			t.Errorf("mode %s should be valid", mode)
		}
		if mode.SpeedMps() <= 0 {
			t.Errorf("mode %s has no speed", mode)
		}
		if mode.MET() <= 0 {
			t.Errorf("mode %s has no MET", mode)
		}
	}

	if WalkingMode("SPRINT").Valid() {
		t.Error("unknown mode should not be valid")
	}
}

func TestWalkingModeValues(t *testing.T) {
	if speed := WalkingModeWalk.SpeedMps(); speed != 1.4 {
		t.Errorf("WALK speed wrong: %v", speed)
	}
	if met := WalkingModeJog.MET(); met != 8.3 {
		t.Errorf("JOG MET wrong: %v", met)
	}
}
