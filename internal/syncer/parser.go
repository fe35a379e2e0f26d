package syncer

import (
	"encoding/json"
	"fmt"

	"github.com/jrdxnra/eventflow-service/internal/domain"
)

// MessageParser defines the interface for parsing raw message bytes into
// sync jobs.
type MessageParser interface {
	Parse(body []byte) (*domain.SyncJob, error)
}

// JSONJobParser implements MessageParser for JSON-formatted sync jobs
type JSONJobParser struct{}

// NewJSONJobParser creates a new JSON job parser
func NewJSONJobParser() *JSONJobParser {
	return &JSONJobParser{}
}

// Parse parses a JSON message body into a SyncJob
func (p *JSONJobParser) Parse(body []byte) (*domain.SyncJob, error) {
	var job domain.SyncJob
	if err := json.Unmarshal(body, &job); err != nil {
		return nil, fmt.Errorf("failed to unmarshal sync job: %w", err)
	}

	if job.EventID == "" {
		return nil, fmt.Errorf("sync job missing event_id")
	}
	if job.Title == "" {
		return nil, fmt.Errorf("sync job missing title")
	}

	return &job, nil
}
