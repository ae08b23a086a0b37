package services

import "time"

const (
	DayKeyLayout       = "2006-01-02"
	displayLabelLayout = "Mon, Jan 2, 2006"
)

// DateAtLocation truncates an instant to midnight of its calendar day in
// the given location. Bucketing always goes through this so that a meal
// logged at 23:50 local time lands on the viewer's day, not UTC's.
func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

// DayKey renders the calendar date of an instant as YYYY-MM-DD in the
// given location. Keys compare lexicographically in date order.
func DayKey(value time.Time, location *time.Location) string {
	return DateAtLocation(value, location).Format(DayKeyLayout)
}
