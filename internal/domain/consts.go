package domain

import "time"

// ISO 8601 weekday constants and mappings
const (
	Monday    = 1
	Tuesday   = 2
	Wednesday = 3
	Thursday  = 4
	Friday    = 5
	Saturday  = 6
	Sunday    = 7
)

// WeekdayNames maps ISO 8601 weekday numbers to their English names
var WeekdayNames = map[int]string{
	Monday:    "Monday",
	Tuesday:   "Tuesday",
	Wednesday: "Wednesday",
	Thursday:  "Thursday",
	Friday:    "Friday",
	Saturday:  "Saturday",
	Sunday:    "Sunday",
}

// WeekdayNumbers maps weekday numbers as strings to integers
var WeekdayNumbers = map[string]int{
	"1": Monday,
	"2": Tuesday,
	"3": Wednesday,
	"4": Thursday,
	"5": Friday,
	"6": Saturday,
	"7": Sunday,
}

// DefaultActiveDays represents Monday through Friday in ISO format
var DefaultActiveDays = []int{Monday, Tuesday, Wednesday, Thursday, Friday}

// DefaultNotificationTime is the standup kickoff time used when none is configured
const DefaultNotificationTime = "09:00"

// DayFormat is the layout used to scope standups to a calendar day
const DayFormat = "2006-01-02"

// Today returns the current calendar day in DayFormat
func Today() string {
	return time.Now().Format(DayFormat)
}

// ISOWeekday converts an ISO 8601 weekday number to a time.Weekday
func ISOWeekday(day int) time.Weekday {
	if day == Sunday {
		return time.Sunday
	}
	return time.Weekday(day)
}
