package cdm

import "time"

// ActivityEntry is the record of one completed navigation session, handed to
// the activity log when a session reaches its destination.
type ActivityEntry struct {
	ID   string    `json:"id" groups:"basic"`
	Date time.Time `json:"date" groups:"basic"`

	WalkingMode WalkingMode `json:"walking_mode" groups:"basic"`

	DistanceMeters  float64 `json:"distance_meters" groups:"basic"`
	StepCount       int64   `json:"step_count" groups:"basic"`
	DurationSeconds int64   `json:"duration_seconds" groups:"basic"`
	CaloriesKcal    float64 `json:"calories_kcal" groups:"basic"`

	From string `json:"from" groups:"basic"`
	To   string `json:"to" groups:"basic"`
}
