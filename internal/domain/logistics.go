package domain

// LogisticsBundle is the day-of plan for one event. The bundle is stored and
// replaced as a single document.
type LogisticsBundle struct {
	EventID       string         `json:"event_id"`
	TeamMembers   []TeamMember   `json:"team_members"`
	Activities    []Activity     `json:"activities"`
	ScheduleItems []ScheduleItem `json:"schedule_items"`
	Contacts      []EventContact `json:"contacts"`
}

// TeamMember is a coach or helper assigned a day-of role.
type TeamMember struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

// Activity is a station or session running during the event.
type Activity struct {
	Name      string `json:"name"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Location  string `json:"location"`
}

// ScheduleItem is a single row of the day-of run sheet.
type ScheduleItem struct {
	Time  string `json:"time"`
	Label string `json:"label"`
}

// EventContact is a day-of point of contact.
type EventContact struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Role  string `json:"role"`
}
