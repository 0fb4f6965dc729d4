package service

import (
	"regexp"
	"strconv"
	"strings"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

func isValidSlug(slug string) bool {
	return len(slug) <= 80 && slugPattern.MatchString(slug)
}

// Weekday codes as stored with operating hours, Monday first to match the
// site's schedule display.
var weekdayCodes = []string{"MON", "TUE", "WED", "THU", "FRI", "SAT", "SUN"}

func isValidDayOfWeek(day string) bool {
	d := strings.ToUpper(strings.TrimSpace(day))
	for _, c := range weekdayCodes {
		if d == c {
			return true
		}
	}
	return false
}

// parseClock reads "HH:MM" into minutes since midnight. An empty string is
// not a clock value; callers treat it as "unset".
func parseClock(s string) (int, bool) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}

func validateTitleIntro(title, intro string, ferrs []FieldError) []FieldError {
	if strings.TrimSpace(title) == "" {
		ferrs = append(ferrs, FieldError{Field: "title", Message: "must not be empty"})
	} else if ln := len([]rune(title)); ln > 255 {
		ferrs = append(ferrs, FieldError{Field: "title", Message: "length must be at most 255"})
	}
	if ln := len([]rune(intro)); ln > 255 {
		ferrs = append(ferrs, FieldError{Field: "intro", Message: "length must be at most 255"})
	}
	return ferrs
}
