package scoring

import (
	"regexp"
	"strconv"
	"strings"
)

// weeklyWorkRe matches the leading numeric part of a free-text weekly
// work answer: "6h", "4.5", "3:30", "about 5 hours", "45min".
var weeklyWorkRe = regexp.MustCompile(`(\d+(?:[.,]\d+)?)(?::([0-5]\d))?\s*(min|h|hr|hrs|hour|hours)?`)

// parseWeeklyHours converts the free-text weekly work answer to hours.
// A non-numeric answer returns ok=false (unknown, never zero) so the
// low-volume alert stays silent instead of firing on bad data.
func parseWeeklyHours(raw string) (float64, bool) {
	m := weeklyWorkRe.FindStringSubmatch(strings.ToLower(raw))
	if m == nil {
		return 0, false
	}

	hours, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", "."), 64)
	if err != nil {
		return 0, false
	}
	if m[2] != "" { // hh:mm form
		minutes, err := strconv.ParseFloat(m[2], 64)
		if err != nil {
			return 0, false
		}
		hours += minutes / 60
	}
	if m[3] == "min" {
		hours /= 60
	}
	if hours > 24*7 {
		return 0, false
	}
	return hours, true
}
