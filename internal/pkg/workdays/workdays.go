// Package workdays implements business-day arithmetic for the
// advance-notice rule on administrative leave.
package workdays

import "time"

// truncate drops the time-of-day component so comparisons work on
// calendar days regardless of the hour a request comes in.
func truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// IsBusinessDay reports whether t falls Monday through Friday
func IsBusinessDay(t time.Time) bool {
	wd := t.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// AdvanceNotice counts the business days (Mon-Fri) strictly after today
// up to and including target. A target on or before today yields 0, so
// same-day requests carry no notice at all. Weekend targets are handled
// by walking day by day and skipping Saturday and Sunday.
func AdvanceNotice(target, today time.Time) int {
	target = truncate(target)
	today = truncate(today)

	if !target.After(today) {
		return 0
	}

	days := 0
	for d := today.AddDate(0, 0, 1); !d.After(target); d = d.AddDate(0, 0, 1) {
		if IsBusinessDay(d) {
			days++
		}
	}
	return days
}
