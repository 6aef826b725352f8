package models

import "strings"

// Weekday is the internal lowercase day-name enum used by schedules.
type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

// AllWeekdays lists the valid weekday values in calendar order.
var AllWeekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// IsValid reports whether the weekday is one of the seven known values.
func (w Weekday) IsValid() bool {
	for _, d := range AllWeekdays {
		if w == d {
			return true
		}
	}
	return false
}

// Wire returns the capitalized wire representation, e.g. "Monday".
func (w Weekday) Wire() string {
	if w == "" {
		return ""
	}
	return strings.ToUpper(string(w[0])) + string(w[1:])
}

// TimeSlot is the preferred time-of-day for a scheduled service. The zero
// value means the user has not picked a slot yet; morning is a real choice,
// not a sentinel.
type TimeSlot string

const (
	TimeSlotUnselected TimeSlot = ""
	TimeSlotMorning    TimeSlot = "MORNING"
	TimeSlotAfternoon  TimeSlot = "AFTERNOON"
	TimeSlotEvening    TimeSlot = "EVENING"
)

// IsValid reports whether the slot is one of the selectable values.
func (t TimeSlot) IsValid() bool {
	switch t {
	case TimeSlotMorning, TimeSlotAfternoon, TimeSlotEvening:
		return true
	}
	return false
}

// ServiceSchedule is the per-service recurrence: which weekdays the service
// runs on (insertion order preserved) and the preferred time slot.
type ServiceSchedule struct {
	Days []Weekday `bson:"days" json:"days"`
	Slot TimeSlot  `bson:"slot" json:"slot,omitempty"`
}

// HasDay reports whether the day is currently scheduled.
func (s ServiceSchedule) HasDay(day Weekday) bool {
	for _, d := range s.Days {
		if d == day {
			return true
		}
	}
	return false
}

// Complete reports whether the schedule can pass the details step: at least
// one day and an explicitly chosen time slot.
func (s ServiceSchedule) Complete() bool {
	return len(s.Days) > 0 && s.Slot.IsValid()
}
