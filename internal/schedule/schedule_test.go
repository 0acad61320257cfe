package schedule

import (
	"testing"
	"time"

	"github.com/pr-poehali-dev/loft-massage-site/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2025-06-02 is a Monday.
func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(domain.DateLayout, s)
	require.NoError(t, err)
	return d
}

func TestWeek_SlotsFor_ShortDay(t *testing.T) {
	week := Default()

	for _, day := range []string{"2025-06-02", "2025-06-04", "2025-06-06"} { // Mon, Wed, Fri
		slots, err := week.SlotsFor(date(t, day))

		require.NoError(t, err, day)
		assert.Equal(t, []string{"11:00", "12:00", "13:00", "17:00", "18:00", "19:00"}, slots, day)
	}
}

func TestWeek_SlotsFor_LongDay(t *testing.T) {
	week := Default()

	for _, day := range []string{"2025-06-07", "2025-06-08"} { // Sat, Sun
		slots, err := week.SlotsFor(date(t, day))

		require.NoError(t, err, day)
		require.Len(t, slots, 11, day)
		assert.Equal(t, "9:00", slots[0])
		assert.Equal(t, "19:00", slots[len(slots)-1])
	}
}

func TestWeek_SlotsFor_ClosedDay(t *testing.T) {
	week := Default()

	for _, day := range []string{"2025-06-03", "2025-06-05"} { // Tue, Thu
		slots, err := week.SlotsFor(date(t, day))

		assert.ErrorIs(t, err, domain.ErrClosedDay, day)
		assert.Nil(t, slots, day)
	}
}

func TestWeek_SlotsFor_HalfHourStep(t *testing.T) {
	week := Week{
		Step: 30 * time.Minute,
		Days: map[time.Weekday][]Window{
			time.Monday: {{Start: 11 * 60, End: 13 * 60}},
		},
	}

	slots, err := week.SlotsFor(date(t, "2025-06-02"))

	require.NoError(t, err)
	assert.Equal(t, []string{"11:00", "11:30", "12:00", "12:30"}, slots)
}

func TestWeek_Contains(t *testing.T) {
	week := Default()

	assert.True(t, week.Contains(date(t, "2025-06-02"), "11:00"))
	assert.False(t, week.Contains(date(t, "2025-06-02"), "15:00"))
	assert.False(t, week.Contains(date(t, "2025-06-03"), "11:00")) // closed day
}

func TestParseLabel(t *testing.T) {
	tests := []struct {
		label   string
		minutes int
		wantErr bool
	}{
		{label: "9:00", minutes: 9 * 60},
		{label: "09:00", minutes: 9 * 60},
		{label: "17:30", minutes: 17*60 + 30},
		{label: "24:00", wantErr: true},
		{label: "noon", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseLabel(tt.label)
		if tt.wantErr {
			assert.Error(t, err, tt.label)
			continue
		}
		require.NoError(t, err, tt.label)
		assert.Equal(t, tt.minutes, got, tt.label)
	}
}

func TestLabel_NoZeroPaddedHour(t *testing.T) {
	assert.Equal(t, "9:00", Label(9*60))
	assert.Equal(t, "9:30", Label(9*60+30))
	assert.Equal(t, "19:00", Label(19*60))
}

func TestParseWindow(t *testing.T) {
	w, err := ParseWindow("11:00-14:00")
	require.NoError(t, err)
	assert.Equal(t, Window{Start: 11 * 60, End: 14 * 60}, w)

	_, err = ParseWindow("14:00-11:00")
	assert.Error(t, err)

	_, err = ParseWindow("11:00")
	assert.Error(t, err)
}

func TestParseWeekday(t *testing.T) {
	d, err := ParseWeekday("Monday")
	require.NoError(t, err)
	assert.Equal(t, time.Monday, d)

	_, err = ParseWeekday("someday")
	assert.Error(t, err)
}
