package kvstore

import (
	"fmt"
	"time"
)

// Well known cache keys
const (
	KeyLastKnownLocation         = "last-known-location"
	KeyCachedClasses             = "cached-classes"
	KeyClassNotificationsEnabled = "class-notifications-enabled"
	KeySessionSnapshot           = "navigation-session-snapshot"

	// Host-reported location permission outcome, "granted" or "denied"
	KeyLocationPermission = "location-permission"
)

func KeyRouteSummary(classID string) string {
	return fmt.Sprintf("route-summary:%s", classID)
}

// KeyWalkedToday marks a class the user has dismissed with "I'm walking" for
// one calendar day
func KeyWalkedToday(classID string, day time.Time) string {
	return fmt.Sprintf("walked-today:%s:%s", classID, day.Format("2006-01-02"))
}
