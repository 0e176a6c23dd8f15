package domain

import "time"

// Weekday is a day index in a week starting on Monday (Monday=0, Sunday=6).
type Weekday int

// Week days.
const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [...]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// WeekdayOf returns the Monday-based weekday of t.
func WeekdayOf(t time.Time) Weekday {
	// time.Weekday starts on Sunday.
	return Weekday((int(t.Weekday()) + 6) % 7)
}

// IsValid returns true if the day index is within 0-6.
func (d Weekday) IsValid() bool {
	return d >= Monday && d <= Sunday
}

// IsWeekend returns true for Saturday and Sunday.
func (d Weekday) IsWeekend() bool {
	return d == Saturday || d == Sunday
}

// String returns the English day name.
func (d Weekday) String() string {
	if !d.IsValid() {
		return unknownDescription
	}
	return weekdayNames[d]
}
