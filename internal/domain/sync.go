package domain

// SyncJob is a calendar-sync request queued for the worker. Start and End
// combine the event's date and time window.
type SyncJob struct {
	EventID     string   `json:"event_id"`
	Title       string   `json:"title"`
	Start       string   `json:"start"`
	End         string   `json:"end"`
	Location    string   `json:"location"`
	Description string   `json:"description"`
	Attendees   []string `json:"attendees"`
}
