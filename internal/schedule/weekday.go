package schedule

import "time"

// NextOccurrence returns the date of the next occurrence of target,
// counted from now's date in now's location. If now already falls on
// target the same date is returned (distance 0). offsetDays extra days
// are added after the weekday match, so a flat N-day offset is
// NextOccurrence(now, now.Weekday(), N).
//
// The result is midnight in now's location; the time of day of now is
// discarded.
func NextOccurrence(now time.Time, target time.Weekday, offsetDays int) time.Time {
	delta := (int(target) - int(now.Weekday()) + 7) % 7
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return day.AddDate(0, 0, delta+offsetDays)
}
