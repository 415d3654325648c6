package cdm

import "time"

// RouteSummary is the cached per-class result of the last recommendation
// fetch. Newer cache entries carry the structured fields; entries written by
// old versions of the app only carry the human readable Text.
type RouteSummary struct {
	ClassID string `json:"class_id" groups:"basic"`

	BestDepartInMinutes *float64 `json:"best_depart_in_minutes,omitempty" groups:"basic"`
	OptionLabels        []string `json:"option_labels,omitempty" groups:"basic"`

	Text string `json:"text,omitempty" groups:"basic"`

	RetrievedAt time.Time `json:"retrieved_at" groups:"basic"`
}

func (s *RouteSummary) Structured() bool {
	return s != nil && s.BestDepartInMinutes != nil
}
