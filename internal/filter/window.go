package filter

import (
	"time"

	"github.com/pfrederiksen/campus-events/internal/event"
)

// DateRange selects a date window relative to the current day
type DateRange string

const (
	RangeUpcoming DateRange = "upcoming"
	RangeToday    DateRange = "today"
	RangeWeek     DateRange = "week"
	RangeMonth    DateRange = "month"
	RangeWeekend  DateRange = "weekend"
)

// weekSpanDays is the inclusive length of the week window
const weekSpanDays = 7

// DateRanges lists every supported range, default first
var DateRanges = []DateRange{RangeUpcoming, RangeToday, RangeWeek, RangeMonth, RangeWeekend}

// Valid reports whether r is a known date range. The empty value is valid and
// means upcoming.
func (r DateRange) Valid() bool {
	if r == "" {
		return true
	}
	for _, known := range DateRanges {
		if r == known {
			return true
		}
	}
	return false
}

// InWindow checks whether an event falls inside the date range relative to now.
// Today is the calendar day of now in loc (time.Local when nil). Days are
// compared as plain calendar dates, so DST transitions never shift them.
//
// Window rules:
//   - upcoming: every event, including past ones and unparsable dates
//   - today: same calendar day as now
//   - week: from today through today+7 days, both ends inclusive
//   - month: same calendar month as now
//   - weekend: the coming Saturday and Sunday, or the current one if now is on a weekend
//
// An unparsable event date fails every window but upcoming. Unknown ranges
// fail closed.
func InWindow(evt *event.Event, r DateRange, now time.Time, loc *time.Location) bool {
	if r == "" || r == RangeUpcoming {
		return true
	}
	if !r.Valid() {
		return false
	}

	day, ok := evt.Day()
	if !ok {
		return false
	}
	today := event.Today(now, loc)

	switch r {
	case RangeToday:
		return sameDay(day, today)
	case RangeWeek:
		end := today.AddDate(0, 0, weekSpanDays)
		return !day.Before(today) && !day.After(end)
	case RangeMonth:
		return day.Year() == today.Year() && day.Month() == today.Month()
	case RangeWeekend:
		saturday, sunday := weekendOf(today)
		return sameDay(day, saturday) || sameDay(day, sunday)
	}

	return false
}

func sameDay(a, b time.Time) bool {
	return a.Equal(b)
}

// weekendOf returns the Saturday and Sunday of the weekend at or after today.
// On a Sunday the weekend is the one that started the day before.
func weekendOf(today time.Time) (time.Time, time.Time) {
	switch today.Weekday() {
	case time.Saturday:
		return today, today.AddDate(0, 0, 1)
	case time.Sunday:
		return today.AddDate(0, 0, -1), today
	}
	offset := int(time.Saturday - today.Weekday())
	saturday := today.AddDate(0, 0, offset)
	return saturday, saturday.AddDate(0, 0, 1)
}
