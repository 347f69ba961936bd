package repository

import (
	"fmt"
	"strings"
	"time"
)

// canonicalDays maps lower-cased day labels to the seven canonical weekday
// names stored in venuetimeslot_days.
var canonicalDays = map[string]string{
	"monday":    "Monday",
	"tuesday":   "Tuesday",
	"wednesday": "Wednesday",
	"thursday":  "Thursday",
	"friday":    "Friday",
	"saturday":  "Saturday",
	"sunday":    "Sunday",
}

// NormalizeSlots validates a CreateVenue request before any SQL runs and
// returns a cleaned copy of the slot list. It enforces what the store does
// not: non-empty venue fields, a non-empty slot list, parseable start/end
// times with start strictly before end, canonical weekday labels, and no
// duplicate (slot, day) pairs. A slot with zero days is accepted: a time
// window with no recurrence is a valid state. Every rejection is a
// *ValidationError so callers can report it as a client fault.
func NormalizeSlots(name, centerHead, address string, slots []TimeSlotInput) ([]TimeSlotInput, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(centerHead) == "" || strings.TrimSpace(address) == "" {
		return nil, &ValidationError{Msg: "missing venue details or time slot data"}
	}
	if len(slots) == 0 {
		return nil, &ValidationError{Msg: "missing venue details or time slot data"}
	}

	out := make([]TimeSlotInput, 0, len(slots))
	for i, slot := range slots {
		start := strings.TrimSpace(slot.StartTime)
		end := strings.TrimSpace(slot.EndTime)
		if start == "" || end == "" {
			return nil, &ValidationError{Msg: fmt.Sprintf("time slot %d: start and end time are required", i+1)}
		}
		startT, err := parseClock(start)
		if err != nil {
			return nil, &ValidationError{Msg: fmt.Sprintf("time slot %d: invalid start time %q", i+1, start)}
		}
		endT, err := parseClock(end)
		if err != nil {
			return nil, &ValidationError{Msg: fmt.Sprintf("time slot %d: invalid end time %q", i+1, end)}
		}
		if !startT.Before(endT) {
			return nil, &ValidationError{Msg: fmt.Sprintf("time slot %d: start time must precede end time", i+1)}
		}

		seen := make(map[string]bool, len(slot.Days))
		days := make([]string, 0, len(slot.Days))
		for _, raw := range slot.Days {
			canon, ok := canonicalDays[strings.ToLower(strings.TrimSpace(raw))]
			if !ok {
				return nil, &ValidationError{Msg: fmt.Sprintf("time slot %d: invalid day %q", i+1, raw)}
			}
			if seen[canon] {
				continue // duplicate days collapse silently, mirroring the read side
			}
			seen[canon] = true
			days = append(days, canon)
		}
		out = append(out, TimeSlotInput{StartTime: start, EndTime: end, Days: days})
	}
	return out, nil
}

// parseClock accepts the two time-of-day layouts clients send.
func parseClock(s string) (time.Time, error) {
	t, err := time.Parse("15:04", s)
	if err == nil {
		return t, nil
	}
	return time.Parse("15:04:05", s)
}
