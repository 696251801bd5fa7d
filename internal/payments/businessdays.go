package payments

import "time"

// BusinessDaysBetween counts the weekdays from the day of `from`
// (inclusive) up to, but not including, the day of `to`. Both
// timestamps are truncated to midnight in their own location before
// counting, so the time of day never affects the result.
//
// A Monday booking for a Friday flight yields 4 business days:
// Monday, Tuesday, Wednesday and Thursday.
func BusinessDaysBetween(from, to time.Time) int {
	cur := midnight(from)
	end := midnight(to)

	days := 0
	for cur.Before(end) {
		wd := cur.Weekday()
		if wd != time.Saturday && wd != time.Sunday {
			days++
		}
		cur = cur.AddDate(0, 0, 1)
	}
	return days
}

// SlipDueDate returns the settlement deadline for a deferred slip:
// one calendar day before departure, walked backwards until it lands
// on a weekday.
func SlipDueDate(departure time.Time) time.Time {
	due := departure.AddDate(0, 0, -1)
	for due.Weekday() == time.Saturday || due.Weekday() == time.Sunday {
		due = due.AddDate(0, 0, -1)
	}
	return due
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
