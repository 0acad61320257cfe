package flow

import (
	"testing"
	"time"

	"github.com/pr-poehali-dev/loft-massage-site/internal/domain"
	"github.com/pr-poehali-dev/loft-massage-site/internal/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// now is a Monday; 2025-06-07 is the following Saturday.
var now = time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)

func TestDraft_StepOrder(t *testing.T) {
	week := schedule.Default()
	var d Draft

	assert.Equal(t, StepService, d.Step())
	assert.False(t, d.Ready())

	d.SelectService("Классический массаж спина")
	assert.Equal(t, StepDate, d.Step())

	require.NoError(t, d.SelectDate(now, "2025-06-07"))
	assert.Equal(t, StepTime, d.Step())

	require.NoError(t, d.SelectTime(week, "9:00"))
	assert.Equal(t, StepContact, d.Step())

	d.SetName("Анна")
	assert.Equal(t, StepContact, d.Step()) // phone still missing

	d.SetPhone("+7 900 000-00-00")
	assert.Equal(t, StepReady, d.Step())
	assert.True(t, d.Ready())
}

func TestDraft_SelectDate_RejectsPast(t *testing.T) {
	var d Draft

	err := d.SelectDate(now, "2025-06-01")

	assert.ErrorIs(t, err, domain.ErrPastDate)
	assert.Empty(t, d.Date)
}

func TestDraft_SelectDate_TodayAllowed(t *testing.T) {
	var d Draft

	require.NoError(t, d.SelectDate(now, "2025-06-02"))
	assert.Equal(t, "2025-06-02", d.Date)
}

func TestDraft_SelectDate_ClearsTime(t *testing.T) {
	week := schedule.Default()
	var d Draft

	require.NoError(t, d.SelectDate(now, "2025-06-07"))
	require.NoError(t, d.SelectTime(week, "10:00"))
	require.NotEmpty(t, d.Time)

	require.NoError(t, d.SelectDate(now, "2025-06-06"))

	assert.Empty(t, d.Time)
	assert.Equal(t, StepTime, d.Step())
}

func TestDraft_ClearDate_ReopensDateStep(t *testing.T) {
	week := schedule.Default()
	var d Draft
	d.SelectService("Классический массаж спина")

	// A closed day passes date selection (the date itself is valid) but no
	// slot can ever be picked for it; only clearing the date moves the
	// wizard off the time step.
	require.NoError(t, d.SelectDate(now, "2025-06-03"))
	assert.Equal(t, StepTime, d.Step())
	assert.ErrorIs(t, d.SelectTime(week, "11:00"), domain.ErrClosedDay)
	assert.Equal(t, StepTime, d.Step())

	d.ClearDate()
	assert.Equal(t, StepDate, d.Step())
	assert.Empty(t, d.Date)
	assert.Empty(t, d.Time)
}

func TestDraft_SelectTime_RequiresDate(t *testing.T) {
	week := schedule.Default()
	var d Draft

	err := d.SelectTime(week, "11:00")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestDraft_SelectTime_ClosedDay(t *testing.T) {
	week := schedule.Default()
	var d Draft

	require.NoError(t, d.SelectDate(now, "2025-06-03")) // Tuesday

	err := d.SelectTime(week, "11:00")

	assert.ErrorIs(t, err, domain.ErrClosedDay)
}

func TestDraft_SelectTime_OutsideWindows(t *testing.T) {
	week := schedule.Default()
	var d Draft

	require.NoError(t, d.SelectDate(now, "2025-06-02")) // Monday

	err := d.SelectTime(week, "15:00")

	assert.ErrorIs(t, err, domain.ErrInvalidSlot)
}

func TestDraft_ReadyNotLatched(t *testing.T) {
	week := schedule.Default()
	var d Draft

	d.SelectService("Массаж")
	require.NoError(t, d.SelectDate(now, "2025-06-07"))
	require.NoError(t, d.SelectTime(week, "12:00"))
	d.SetName("Анна")
	d.SetPhone("+79000000000")
	require.True(t, d.Ready())

	d.SetName("")

	assert.False(t, d.Ready())
	assert.Equal(t, StepContact, d.Step())
}

func TestDraft_Reset(t *testing.T) {
	week := schedule.Default()
	var d Draft

	d.SelectService("Массаж")
	require.NoError(t, d.SelectDate(now, "2025-06-07"))
	require.NoError(t, d.SelectTime(week, "12:00"))
	d.SetName("Анна")
	d.SetPhone("+79000000000")

	d.Reset()

	assert.Equal(t, Draft{}, d)
	assert.Equal(t, StepService, d.Step())
}

func TestDraft_Input(t *testing.T) {
	week := schedule.Default()
	var d Draft

	d.SelectService("Массаж")
	require.NoError(t, d.SelectDate(now, "2025-06-07"))
	require.NoError(t, d.SelectTime(week, "12:00"))
	d.SetName("  Анна  ")
	d.SetPhone(" +79000000000 ")

	input := d.Input()

	assert.Equal(t, domain.CreateBookingInput{
		Service:       "Массаж",
		BookingDate:   "2025-06-07",
		BookingTime:   "12:00",
		CustomerName:  "Анна",
		CustomerPhone: "+79000000000",
	}, input)
}
