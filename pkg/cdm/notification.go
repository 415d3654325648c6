package cdm

import "time"

type Notification struct {
	Identifier string `json:"identifier" groups:"basic"`
	TargetUser string `json:"-"`

	Title    string `json:"title" groups:"basic"`
	Body     string `json:"body" groups:"basic"`
	DeepLink string `json:"deep_link,omitempty" groups:"basic"`

	TriggerAt time.Time `json:"trigger_at" groups:"basic"`
}

type ReminderKind string

const (
	ReminderKindPreDeparture ReminderKind = "PRE_DEPARTURE"
	ReminderKindLeaveNow     ReminderKind = "LEAVE_NOW"
)

// Notification identifier prefixes owned by the reminder scheduler. Every
// identifier under these prefixes is cancelled wholesale on each reschedule.
const (
	ReminderPrefixPreDeparture = "class-"
	ReminderPrefixLeaveNow     = "class-depart-"
)

func (k ReminderKind) Identifier(classID string) string {
	if k == ReminderKindLeaveNow {
		return ReminderPrefixLeaveNow + classID
	}

	return ReminderPrefixPreDeparture + classID
}
