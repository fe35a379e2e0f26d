package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jrdxnra/eventflow-service/internal/cache"
	"github.com/jrdxnra/eventflow-service/internal/domain"
	"github.com/jrdxnra/eventflow-service/internal/queue"
	"github.com/jrdxnra/eventflow-service/internal/repository"
	"github.com/jrdxnra/eventflow-service/internal/timeline"
)

// EventService owns event CRUD, per-event timelines, and calendar-sync
// requests. Every read goes through the freshness gate; every successful
// write updates the cached snapshot in the same call, so cache and remote
// only disagree for the duration of the write itself.
type EventService struct {
	repository repository.EventRepository
	gate       *cache.Gate
	publisher  queue.QueuePublisher
	log        *zap.Logger
}

// NewEventService creates a new event service
func NewEventService(repo repository.EventRepository, gate *cache.Gate, publisher queue.QueuePublisher, log *zap.Logger) *EventService {
	return &EventService{
		repository: repo,
		gate:       gate,
		publisher:  publisher,
		log:        log,
	}
}

func eventKey(id string) string    { return "events-" + id }
func timelineKey(id string) string { return "timeline-" + id }

const eventListKey = "events-list"

// CreateEvent validates and persists a new event. An id is assigned when the
// caller did not provide one.
func (s *EventService) CreateEvent(ctx context.Context, event *domain.Event) (*domain.Event, error) {
	if problems := event.Validate(); problems != nil {
		s.log.Warn("Event validation failed", zap.Any("fields", problems))
		return nil, &ValidationError{Fields: problems}
	}

	if event.ID == "" {
		event.ID = uuid.NewString()
	}

	if err := s.repository.CreateEvent(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	s.writeThroughJSON(ctx, eventKey(event.ID), event)
	s.gate.Invalidate(ctx, eventListKey)

	s.log.Info("Event created",
		zap.String("event_id", event.ID),
		zap.String("name", event.Name),
		zap.String("date", event.Date))

	return event, nil
}

// GetEvent reads an event through the freshness gate.
func (s *EventService) GetEvent(ctx context.Context, id string) (*domain.Event, error) {
	raw, err := s.gate.ReadThrough(ctx, eventKey(id), func(ctx context.Context) (string, error) {
		event, err := s.repository.GetEvent(ctx, id)
		if err != nil {
			return "", err
		}
		return encode(event)
	})
	if err != nil {
		return nil, err
	}

	var event domain.Event
	if err := json.Unmarshal([]byte(raw), &event); err != nil {
		return nil, fmt.Errorf("failed to decode cached event: %w", err)
	}
	return &event, nil
}

// ListEvents reads the full event collection through the freshness gate.
func (s *EventService) ListEvents(ctx context.Context) ([]domain.Event, error) {
	raw, err := s.gate.ReadThrough(ctx, eventListKey, func(ctx context.Context) (string, error) {
		events, err := s.repository.ListEvents(ctx)
		if err != nil {
			return "", err
		}
		return encode(events)
	})
	if err != nil {
		return nil, err
	}

	var events []domain.Event
	if err := json.Unmarshal([]byte(raw), &events); err != nil {
		return nil, fmt.Errorf("failed to decode cached event list: %w", err)
	}
	return events, nil
}

// UpdateEvent validates and replaces an event document.
func (s *EventService) UpdateEvent(ctx context.Context, event *domain.Event) (*domain.Event, error) {
	if problems := event.Validate(); problems != nil {
		s.log.Warn("Event validation failed",
			zap.String("event_id", event.ID),
			zap.Any("fields", problems))
		return nil, &ValidationError{Fields: problems}
	}

	if _, err := s.repository.GetEvent(ctx, event.ID); err != nil {
		return nil, err
	}

	if err := s.repository.UpdateEvent(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to update event: %w", err)
	}

	s.writeThroughJSON(ctx, eventKey(event.ID), event)
	s.gate.Invalidate(ctx, eventListKey)

	s.log.Info("Event updated", zap.String("event_id", event.ID))

	return event, nil
}

// DeleteEvent removes an event and its dependent plan documents.
func (s *EventService) DeleteEvent(ctx context.Context, id string) error {
	if _, err := s.repository.GetEvent(ctx, id); err != nil {
		return err
	}

	if err := s.repository.DeleteEvent(ctx, id); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	if err := s.repository.DeleteTimeline(ctx, id); err != nil {
		s.log.Warn("Failed to delete timeline for event", zap.String("event_id", id), zap.Error(err))
	}
	if err := s.repository.DeleteLogistics(ctx, id); err != nil {
		s.log.Warn("Failed to delete logistics for event", zap.String("event_id", id), zap.Error(err))
	}

	s.gate.Invalidate(ctx, eventKey(id))
	s.gate.Invalidate(ctx, timelineKey(id))
	s.gate.Invalidate(ctx, "logistics-"+id)
	s.gate.Invalidate(ctx, eventListKey)

	s.log.Info("Event deleted", zap.String("event_id", id))

	return nil
}

// GetTimeline returns the persisted timeline for an event, generating and
// persisting one the first time it is asked for. Once persisted the stored
// list is authoritative; the generator never overwrites it. Legacy
// bare-numeric item ids are migrated on load.
func (s *EventService) GetTimeline(ctx context.Context, eventID string) ([]domain.TimelineItem, error) {
	raw, err := s.gate.ReadThrough(ctx, timelineKey(eventID), func(ctx context.Context) (string, error) {
		items, err := s.repository.GetTimeline(ctx, eventID)
		if err == nil {
			migrated := timeline.MigrateLegacyIDs(eventID, items)
			if !sameIDs(items, migrated) {
				s.log.Info("Migrated legacy timeline item ids", zap.String("event_id", eventID))
				if err := s.repository.ReplaceTimeline(ctx, eventID, migrated); err != nil {
					return "", fmt.Errorf("failed to persist migrated timeline: %w", err)
				}
			}
			return encode(migrated)
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return "", err
		}

		event, err := s.repository.GetEvent(ctx, eventID)
		if err != nil {
			return "", err
		}

		items, err = timeline.Generate(event)
		if err != nil {
			return "", fmt.Errorf("failed to generate timeline: %w", err)
		}

		if err := s.repository.ReplaceTimeline(ctx, eventID, items); err != nil {
			return "", fmt.Errorf("failed to persist generated timeline: %w", err)
		}

		s.log.Info("Timeline generated",
			zap.String("event_id", eventID),
			zap.Int("item_count", len(items)))

		return encode(items)
	})
	if err != nil {
		return nil, err
	}

	var items []domain.TimelineItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("failed to decode cached timeline: %w", err)
	}
	return items, nil
}

// ReplaceTimeline persists an edited timeline, replacing the whole list.
func (s *EventService) ReplaceTimeline(ctx context.Context, eventID string, items []domain.TimelineItem) ([]domain.TimelineItem, error) {
	if problems := validateItems(items); problems != nil {
		s.log.Warn("Timeline validation failed",
			zap.String("event_id", eventID),
			zap.Any("fields", problems))
		return nil, &ValidationError{Fields: problems}
	}

	if _, err := s.repository.GetEvent(ctx, eventID); err != nil {
		return nil, err
	}

	if err := s.repository.ReplaceTimeline(ctx, eventID, items); err != nil {
		return nil, fmt.Errorf("failed to replace timeline: %w", err)
	}

	s.writeThroughJSON(ctx, timelineKey(eventID), items)

	s.log.Info("Timeline replaced",
		zap.String("event_id", eventID),
		zap.Int("item_count", len(items)))

	return items, nil
}

// RequestCalendarSync publishes a sync job for the event to the worker queue.
func (s *EventService) RequestCalendarSync(ctx context.Context, eventID string) error {
	event, err := s.GetEvent(ctx, eventID)
	if err != nil {
		return err
	}

	job := &domain.SyncJob{
		EventID:     event.ID,
		Title:       event.Name,
		Start:       fmt.Sprintf("%sT%s", event.Date, event.StartTime),
		End:         fmt.Sprintf("%sT%s", event.Date, event.EndTime),
		Location:    event.Location,
		Description: fmt.Sprintf("Coaching event: %s", event.Name),
	}

	if err := s.publisher.PublishSyncJob(ctx, job); err != nil {
		return fmt.Errorf("failed to publish sync job: %w", err)
	}

	return nil
}

func validateItems(items []domain.TimelineItem) map[string]string {
	problems := make(map[string]string)
	for i, item := range items {
		if !domain.ValidCategory(item.Category) {
			problems[fmt.Sprintf("items[%d].category", i)] = fmt.Sprintf("unknown category: %s", item.Category)
		}
		if !domain.ValidStatus(item.Status) {
			problems[fmt.Sprintf("items[%d].status", i)] = fmt.Sprintf("unknown status: %s", item.Status)
		}
		if !domain.ValidPriority(item.Priority) {
			problems[fmt.Sprintf("items[%d].priority", i)] = fmt.Sprintf("unknown priority: %s", item.Priority)
		}
	}
	if len(problems) == 0 {
		return nil
	}
	return problems
}

func sameIDs(a, b []domain.TimelineItem) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].ID != b[i].ID {
			return false
		}
	}
	return true
}

// writeThroughJSON serializes v and updates the cache entry alongside the
// remote write that just succeeded.
func (s *EventService) writeThroughJSON(ctx context.Context, key string, v any) {
	raw, err := encode(v)
	if err != nil {
		s.log.Warn("Failed to encode snapshot for cache", zap.String("key", key), zap.Error(err))
		return
	}
	s.gate.WriteThrough(ctx, key, raw)
}

func encode(v any) (string, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	return string(raw), nil
}
