package domain

import (
	"fmt"
	"time"
)

// DateFormat is the calendar-date layout used everywhere an event or
// timeline date crosses a boundary (documents, cache snapshots, API).
const DateFormat = "2006-01-02"

// Marketing channels an event can be promoted through.
const (
	ChannelMedia  = "media"
	ChannelFlyers = "flyers"
	ChannelEmail  = "email"
)

// Channels lists every valid marketing channel identifier.
var Channels = []string{ChannelMedia, ChannelFlyers, ChannelEmail}

// Event represents a planned coaching event
type Event struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Date             string   `json:"date"`
	StartTime        string   `json:"start_time"`
	EndTime          string   `json:"end_time"`
	Location         string   `json:"location"`
	Channels         []string `json:"channels"`
	TicketingNeeded  bool     `json:"ticketing_needed"`
	TicketingDetails string   `json:"ticketing_details"`
}

// HasChannel reports whether the event was marked for the given channel.
func (e *Event) HasChannel(channel string) bool {
	for _, c := range e.Channels {
		if c == channel {
			return true
		}
	}
	return false
}

// EventDate parses the event's calendar date.
func (e *Event) EventDate() (time.Time, error) {
	t, err := time.Parse(DateFormat, e.Date)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid event date %q: %w", e.Date, err)
	}
	return t, nil
}

// Validate checks the event's field invariants and returns field-keyed
// messages for every violation. A nil map means the event is well-formed.
func (e *Event) Validate() map[string]string {
	problems := make(map[string]string)

	if e.Name == "" {
		problems["name"] = "name is required"
	}
	if _, err := time.Parse(DateFormat, e.Date); err != nil {
		problems["date"] = fmt.Sprintf("date must be a valid calendar date in %s format", DateFormat)
	}
	for _, c := range e.Channels {
		if !validChannel(c) {
			problems["channels"] = fmt.Sprintf("unknown channel: %s", c)
			break
		}
	}

	if len(problems) == 0 {
		return nil
	}
	return problems
}

func validChannel(channel string) bool {
	for _, c := range Channels {
		if c == channel {
			return true
		}
	}
	return false
}
