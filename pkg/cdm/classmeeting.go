package cdm

import (
	"fmt"
	"time"

	"github.com/waypace/waypace/pkg/util"
)

// Weekday codes as stored on a class meeting
var weekdayCodes = map[time.Weekday]string{
	time.Monday:    "MON",
	time.Tuesday:   "TUE",
	time.Wednesday: "WED",
	time.Thursday:  "THU",
	time.Friday:    "FRI",
	time.Saturday:  "SAT",
	time.Sunday:    "SUN",
}

// ClassMeeting is one recurring class on the user's schedule
type ClassMeeting struct {
	ClassID string `json:"class_id" bson:"classid" groups:"basic"`
	Title   string `json:"title" bson:"title" groups:"basic"`

	Days []string `json:"days_of_week" bson:"days" groups:"basic"`

	// Local wall clock "HH:MM" (24 hour)
	StartTimeLocal string `json:"start_time_local" bson:"starttimelocal" groups:"basic"`
	EndTimeLocal   string `json:"end_time_local,omitempty" bson:"endtimelocal,omitempty" groups:"basic"`

	BuildingID      string    `json:"building_id,omitempty" bson:"buildingid,omitempty" groups:"basic"`
	Destination     *Location `json:"destination,omitempty" bson:"destination,omitempty" groups:"detailed"`
	DestinationName string    `json:"destination_name,omitempty" bson:"destinationname,omitempty" groups:"basic"`
}

func (c *ClassMeeting) OccursOn(weekday time.Weekday) bool {
	return util.ContainsString(c.Days, weekdayCodes[weekday])
}

// StartOn resolves the class's wall clock start time onto the given date
func (c *ClassMeeting) StartOn(date time.Time) (time.Time, error) {
	parsed, err := time.ParseInLocation("15:04", c.StartTimeLocal, date.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("class %s has malformed start time %q: %w", c.ClassID, c.StartTimeLocal, err)
	}

	return util.AddTimeToDate(date, parsed), nil
}
