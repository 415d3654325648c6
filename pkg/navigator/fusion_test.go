package navigator

import (
	"math"
	"testing"

	"github.com/waypace/waypace/pkg/cdm"
)

func TestFusionFirstSampleSeedsOnly(t *testing.T) {
	fusion := NewFusion(cdm.WalkingModeWalk, 70)

	if fusion.ObservePosition(cdm.NewLocation(40.1092, -88.2272)) {
		t.Error("first sample should only seed state")
	}
	if fusion.WalkedDistanceMeters != 0 {
		t.Errorf("no distance should accumulate from the first sample, got %v", fusion.WalkedDistanceMeters)
	}
}

func TestFusionAccumulatesDistance(t *testing.T) {
	fusion := NewFusion(cdm.WalkingModeWalk, 70)

	fusion.ObservePosition(cdm.NewLocation(40.1092, -88.2272))

	// 0.0004 degrees of latitude is roughly 44m
	if !fusion.ObservePosition(cdm.NewLocation(40.1096, -88.2272)) {
		t.Error("sample under the jump threshold should be accepted")
	}

	if fusion.WalkedDistanceMeters < 40 || fusion.WalkedDistanceMeters > 50 {
		t.Errorf("unexpected walked distance: %v", fusion.WalkedDistanceMeters)
	}
}

func TestFusionRejectsJumps(t *testing.T) {
	fusion := NewFusion(cdm.WalkingModeWalk, 70)

	fusion.ObservePosition(cdm.NewLocation(40.1092, -88.2272))

	// Teleport across campus, well over 100m
	if fusion.ObservePosition(cdm.NewLocation(40.1200, -88.2272)) {
		t.Error("jump should be rejected for accumulation")
	}
	if fusion.WalkedDistanceMeters != 0 {
		t.Errorf("jump should not accumulate distance, got %v", fusion.WalkedDistanceMeters)
	}

	// The rejected sample is not remembered either - a normal step from the
	// original position still accumulates
	if !fusion.ObservePosition(cdm.NewLocation(40.1094, -88.2272)) {
		t.Error("sample near the last accepted position should be accepted")
	}
}

func TestFusionCalories(t *testing.T) {
	fusion := NewFusion(cdm.WalkingModeWalk, 70)

	fusion.ObservePosition(cdm.NewLocation(40.1092, -88.2272))
	fusion.ObservePosition(cdm.NewLocation(40.1096, -88.2272))

	// kcal = MET × weight × (d / speed / 3600), rounded to one decimal
	hours := fusion.WalkedDistanceMeters / cdm.WalkingModeWalk.SpeedMps() / 3600
	expected := math.Round(cdm.WalkingModeWalk.MET()*70*hours*10) / 10

	if fusion.CaloriesKcal != expected {
		t.Errorf("calories wrong: got %v want %v", fusion.CaloriesKcal, expected)
	}
}

func TestFusionDefaultBodyWeight(t *testing.T) {
	fusion := NewFusion(cdm.WalkingModeWalk, 0)

	if fusion.BodyWeightKg != 70 {
		t.Errorf("expected default body weight of 70kg, got %v", fusion.BodyWeightKg)
	}
}

func TestFusionStepsOverwrite(t *testing.T) {
	fusion := NewFusion(cdm.WalkingModeWalk, 70)

	fusion.ObserveSteps(120)
	fusion.ObserveSteps(450)

	if fusion.StepCount != 450 {
		t.Errorf("step counter should overwrite, got %v", fusion.StepCount)
	}
}
