package schedule

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// StartMinute is the first minute of the daily window (09:00).
	StartMinute = 9 * 60
	// EndMinute is the exclusive end of the daily window (22:00).
	EndMinute = 22 * 60
	// DaysPerWeek is the number of day columns, Monday first.
	DaysPerWeek = 7
	// DefaultSlotMinutes is the grid granularity of a fresh state.
	DefaultSlotMinutes = 60
)

// slotMinuteOptions lists the supported grid granularities.
var slotMinuteOptions = []int{10, 15, 20, 30, 60}

var dayNames = [DaysPerWeek]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

var dayAliases = map[string]int{
	"mon": 0, "monday": 0,
	"tue": 1, "tuesday": 1,
	"wed": 2, "wednesday": 2,
	"thu": 3, "thursday": 3,
	"fri": 4, "friday": 4,
	"sat": 5, "saturday": 5,
	"sun": 6, "sunday": 6,
}

// SlotCount returns the number of slots in the daily window.
func SlotCount(slotMinutes int) int {
	if slotMinutes <= 0 {
		return 0
	}
	return (EndMinute - StartMinute) / slotMinutes
}

// SlotStartMinute returns the minute of day at which a slot starts.
func SlotStartMinute(index, slotMinutes int) int {
	return StartMinute + index*slotMinutes
}

// SlotOptions returns the supported slot durations in ascending order.
func SlotOptions() []int {
	out := make([]int, len(slotMinuteOptions))
	copy(out, slotMinuteOptions)
	return out
}

// ValidSlotMinutes reports whether m is a supported slot duration.
func ValidSlotMinutes(m int) bool {
	for _, opt := range slotMinuteOptions {
		if opt == m {
			return true
		}
	}
	return false
}

// TimeToMinutes converts "HH:MM" to minutes since midnight.
// Returns 0 for invalid input.
func TimeToMinutes(t string) int {
	if len(t) < 5 {
		return 0
	}
	hours := int(t[0]-'0')*10 + int(t[1]-'0')
	mins := int(t[3]-'0')*10 + int(t[4]-'0')
	return hours*60 + mins
}

// MinutesToTime converts minutes since midnight to "HH:MM" format.
func MinutesToTime(m int) string {
	if m < 0 {
		m = 0
	}
	if m >= 24*60 {
		m = 24*60 - 1
	}
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// SlotTime returns the "HH:MM" start time of a slot.
func SlotTime(index, slotMinutes int) string {
	return MinutesToTime(SlotStartMinute(index, slotMinutes))
}

// validateTimeFormat checks that s is a well formed "HH:MM" clock time.
func validateTimeFormat(s string) error {
	if len(s) != 5 || s[2] != ':' {
		return ErrInvalidTime
	}
	for _, i := range []int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return ErrInvalidTime
		}
	}
	if TimeToMinutes(s) >= 24*60 || s[3] > '5' {
		return ErrInvalidTime
	}
	return nil
}

// SlotForTime returns the slot starting at the given "HH:MM" time.
// The time must lie on a slot boundary inside the daily window.
func SlotForTime(hhmm string, slotMinutes int) (int, error) {
	if err := validateTimeFormat(hhmm); err != nil {
		return 0, fmt.Errorf("%w: %q", err, hhmm)
	}
	m := TimeToMinutes(hhmm)
	if m < StartMinute || m >= EndMinute {
		return 0, fmt.Errorf("%w: %s is outside %s-%s", ErrInvalidTime, hhmm,
			MinutesToTime(StartMinute), MinutesToTime(EndMinute))
	}
	if (m-StartMinute)%slotMinutes != 0 {
		return 0, fmt.Errorf("%w: %s is not on a %d minute boundary", ErrInvalidTime, hhmm, slotMinutes)
	}
	slot := (m - StartMinute) / slotMinutes
	if slot >= SlotCount(slotMinutes) {
		return 0, fmt.Errorf("%w: %s is past the last slot", ErrInvalidTime, hhmm)
	}
	return slot, nil
}

// SlotRangeForTimes converts a half-open [start, end) clock range into an
// inclusive slot range. end may be the window end (22:00).
func SlotRangeForTimes(start, end string, slotMinutes int) (first, last int, err error) {
	first, err = SlotForTime(start, slotMinutes)
	if err != nil {
		return 0, 0, fmt.Errorf("start time: %w", err)
	}
	if err := validateTimeFormat(end); err != nil {
		return 0, 0, fmt.Errorf("end time: %w: %q", err, end)
	}
	endMin := TimeToMinutes(end)
	if endMin <= SlotStartMinute(first, slotMinutes) {
		return 0, 0, fmt.Errorf("end time: %w: %s is not after %s", ErrInvalidTime, end, start)
	}
	if endMin > EndMinute || (endMin-StartMinute)%slotMinutes != 0 {
		return 0, 0, fmt.Errorf("end time: %w: %q", ErrInvalidTime, end)
	}
	return first, (endMin-StartMinute)/slotMinutes - 1, nil
}

// ParseDay parses a day given as an index (0=Monday) or an English day name.
func ParseDay(s string) (int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if d, ok := dayAliases[s]; ok {
		return d, nil
	}
	d, err := strconv.Atoi(s)
	if err != nil || d < 0 || d >= DaysPerWeek {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDay, s)
	}
	return d, nil
}

// DayName returns the short English name of a day index.
func DayName(day int) string {
	if day < 0 || day >= DaysPerWeek {
		return "?"
	}
	return dayNames[day]
}
