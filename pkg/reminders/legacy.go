package reminders

import (
	"regexp"
	"strconv"
)

var legacyNumberPattern = regexp.MustCompile(`\d+`)

// legacyMinimumMinutes extracts the smallest embedded number from a
// free-text route summary written by old app versions, e.g.
// "Bus 22 in 12 min or walk 25 min". No parseable number means no leave-now
// reminder - never an error.
func legacyMinimumMinutes(text string) (float64, bool) {
	matches := legacyNumberPattern.FindAllString(text, -1)
	if len(matches) == 0 {
		return 0, false
	}

	found := false
	minimum := 0

	for _, match := range matches {
		value, err := strconv.Atoi(match)
		if err != nil {
			continue
		}

		if !found || value < minimum {
			minimum = value
			found = true
		}
	}

	return float64(minimum), found
}
