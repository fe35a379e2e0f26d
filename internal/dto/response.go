package dto

import "github.com/jrdxnra/eventflow-service/internal/domain"

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string            `json:"error" example:"validation_error"`
	Message string            `json:"message,omitempty" example:"date must be a valid calendar date"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// TimelineResponse represents a per-event timeline
type TimelineResponse struct {
	EventID string                `json:"event_id" example:"9f6c1f4e"`
	Items   []domain.TimelineItem `json:"items"`
}

// SyncRequestedResponse represents an accepted calendar-sync request
type SyncRequestedResponse struct {
	EventID string `json:"event_id" example:"9f6c1f4e"`
	Status  string `json:"status" example:"queued"`
}

// WorkspaceResponse represents the combined startup load. Each resource
// loads independently; a failed resource comes back empty with its error
// recorded under its name in Errors.
type WorkspaceResponse struct {
	Events   []domain.Event    `json:"events"`
	Coaches  []domain.Coach    `json:"coaches"`
	Contacts []domain.Contact  `json:"contacts"`
	Errors   map[string]string `json:"errors,omitempty"`
}
