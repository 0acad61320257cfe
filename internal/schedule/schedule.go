package schedule

import (
	"fmt"
	"strings"
	"time"

	"github.com/pr-poehali-dev/loft-massage-site/internal/domain"
)

// Window is a half-open interval [Start, End) in minutes from midnight.
// Slots start at Start and step forward while they remain inside the window.
type Window struct {
	Start int
	End   int
}

// Week is the fixed weekly availability rule: working windows per weekday
// plus the slot step. A weekday with no windows is a closed day.
type Week struct {
	Days map[time.Weekday][]Window
	Step time.Duration
}

// Default is the studio schedule: hourly slots, split day Mon/Wed/Fri
// (11:00-14:00 and 17:00-20:00), full day Sat/Sun (9:00-20:00),
// closed Tue/Thu.
func Default() Week {
	short := []Window{
		{Start: 11 * 60, End: 14 * 60},
		{Start: 17 * 60, End: 20 * 60},
	}
	long := []Window{
		{Start: 9 * 60, End: 20 * 60},
	}

	return Week{
		Step: time.Hour,
		Days: map[time.Weekday][]Window{
			time.Monday:    short,
			time.Wednesday: short,
			time.Friday:    short,
			time.Saturday:  long,
			time.Sunday:    long,
		},
	}
}

// SlotsFor returns the ordered bookable time labels for the given date.
// It is a pure function of the date's weekday: existing bookings are not
// consulted here. Closed days report domain.ErrClosedDay so callers can
// distinguish "day off" from "no free slots left".
func (w Week) SlotsFor(date time.Time) ([]string, error) {
	windows := w.Days[date.Weekday()]
	if len(windows) == 0 {
		return nil, domain.ErrClosedDay
	}

	step := int(w.Step.Minutes())
	if step <= 0 {
		step = 60
	}

	var slots []string
	for _, win := range windows {
		for m := win.Start; m < win.End; m += step {
			slots = append(slots, Label(m))
		}
	}

	return slots, nil
}

// Contains reports whether label is a valid slot for the date. A closed day
// contains no slots.
func (w Week) Contains(date time.Time, label string) bool {
	slots, err := w.SlotsFor(date)
	if err != nil {
		return false
	}
	for _, s := range slots {
		if s == label {
			return true
		}
	}
	return false
}

// Label renders minutes from midnight as a slot label. Hours are not
// zero-padded ("9:00", not "09:00") to match the stored booking_time values.
func Label(minutes int) string {
	return fmt.Sprintf("%d:%02d", minutes/60, minutes%60)
}

// ParseLabel parses a slot label ("9:00", "17:30") into minutes from
// midnight.
func ParseLabel(label string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(label, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("parse time label %q: %w", label, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("time label %q out of range", label)
	}
	return h*60 + m, nil
}

// ParseWindow parses a "11:00-14:00" config string.
func ParseWindow(s string) (Window, error) {
	from, to, ok := strings.Cut(s, "-")
	if !ok {
		return Window{}, fmt.Errorf("window %q: expected HH:MM-HH:MM", s)
	}

	start, err := ParseLabel(strings.TrimSpace(from))
	if err != nil {
		return Window{}, fmt.Errorf("window %q: %w", s, err)
	}
	end, err := ParseLabel(strings.TrimSpace(to))
	if err != nil {
		return Window{}, fmt.Errorf("window %q: %w", s, err)
	}
	if end <= start {
		return Window{}, fmt.Errorf("window %q: end is not after start", s)
	}

	return Window{Start: start, End: end}, nil
}

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// ParseWeekday parses a weekday name from config ("monday", case
// insensitive).
func ParseWeekday(s string) (time.Weekday, error) {
	d, ok := weekdays[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, fmt.Errorf("unknown weekday %q", s)
	}
	return d, nil
}
