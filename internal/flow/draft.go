package flow

import (
	"strings"
	"time"

	"github.com/pr-poehali-dev/loft-massage-site/internal/domain"
	"github.com/pr-poehali-dev/loft-massage-site/internal/schedule"
)

// Step identifies the first selection a draft is still missing. The wizard
// is strictly ordered: each step gates the next.
type Step int

const (
	StepService Step = iota
	StepDate
	StepTime
	StepContact
	StepReady
)

func (s Step) String() string {
	switch s {
	case StepService:
		return "service"
	case StepDate:
		return "date"
	case StepTime:
		return "time"
	case StepContact:
		return "contact"
	case StepReady:
		return "ready"
	}
	return "unknown"
}

// Draft is one in-progress booking selection. The zero value is an empty
// draft. Transitions are pure and the struct is serializable, so callers
// may hold it wherever suits them (per chat, per session) and replay
// updates against it.
type Draft struct {
	Service string `json:"service,omitempty"`
	Date    string `json:"date,omitempty"`
	Time    string `json:"time,omitempty"`
	Name    string `json:"name,omitempty"`
	Phone   string `json:"phone,omitempty"`
}

func (d *Draft) SelectService(title string) {
	d.Service = strings.TrimSpace(title)
}

// SelectDate sets the booking date, rejecting dates before today. Any
// previously chosen time is cleared even when the new date is the same:
// the slot set must be re-picked after every date change.
func (d *Draft) SelectDate(now time.Time, date string) error {
	parsed, err := time.Parse(domain.DateLayout, date)
	if err != nil {
		return domain.ErrValidation
	}

	today := now.Format(domain.DateLayout)
	if parsed.Format(domain.DateLayout) < today {
		return domain.ErrPastDate
	}

	d.Date = parsed.Format(domain.DateLayout)
	d.Time = ""
	return nil
}

// SelectTime sets the slot label. It is only reachable once a date is
// selected, and the label must be one the schedule produces for that date.
func (d *Draft) SelectTime(week schedule.Week, label string) error {
	if d.Date == "" {
		return domain.ErrValidation
	}

	date, err := time.Parse(domain.DateLayout, d.Date)
	if err != nil {
		return domain.ErrValidation
	}

	if _, err := week.SlotsFor(date); err != nil {
		return err
	}
	if !week.Contains(date, label) {
		return domain.ErrInvalidSlot
	}

	d.Time = label
	return nil
}

// ClearDate reopens the wizard at the date step. Used when a picked date
// turns out to have nothing bookable, so the next input is read as a date
// again instead of a slot.
func (d *Draft) ClearDate() {
	d.Date = ""
	d.Time = ""
}

func (d *Draft) SetName(name string) {
	d.Name = strings.TrimSpace(name)
}

func (d *Draft) SetPhone(phone string) {
	d.Phone = strings.TrimSpace(phone)
}

// Step returns the first selection still missing. It is recomputed from
// the fields on every call, so clearing any field reopens the wizard at
// that point.
func (d *Draft) Step() Step {
	switch {
	case d.Service == "":
		return StepService
	case d.Date == "":
		return StepDate
	case d.Time == "":
		return StepTime
	case d.Name == "" || d.Phone == "":
		return StepContact
	default:
		return StepReady
	}
}

// Ready reports whether all five fields are populated. This is the sole
// gate for submitting and is re-evaluated continuously, not latched.
func (d *Draft) Ready() bool {
	return d.Step() == StepReady
}

// Reset returns the draft to its initial empty state, as after a
// successful submission.
func (d *Draft) Reset() {
	*d = Draft{}
}

// Input converts a ready draft into the creation payload.
func (d *Draft) Input() domain.CreateBookingInput {
	return domain.CreateBookingInput{
		Service:       d.Service,
		BookingDate:   d.Date,
		BookingTime:   d.Time,
		CustomerName:  d.Name,
		CustomerPhone: d.Phone,
	}
}
