package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jrdxnra/eventflow-service/internal/cache"
	"github.com/jrdxnra/eventflow-service/internal/domain"
	"github.com/jrdxnra/eventflow-service/internal/dto"
	"github.com/jrdxnra/eventflow-service/internal/repository"
)

// RosterService owns the shared coach and contact rosters, with the same
// gate policy as events: read-through on every read, write-through after
// every successful write.
type RosterService struct {
	repository repository.RosterRepository
	events     EventServicer
	gate       *cache.Gate
	log        *zap.Logger
}

// NewRosterService creates a new roster service
func NewRosterService(repo repository.RosterRepository, events EventServicer, gate *cache.Gate, log *zap.Logger) *RosterService {
	return &RosterService{
		repository: repo,
		events:     events,
		gate:       gate,
		log:        log,
	}
}

func coachKey(id string) string   { return "coaches-" + id }
func contactKey(id string) string { return "contacts-" + id }

const (
	coachListKey   = "coaches-list"
	contactListKey = "contacts-list"
)

// --- coaches ---

func (s *RosterService) CreateCoach(ctx context.Context, coach *domain.Coach) (*domain.Coach, error) {
	if coach.Name == "" {
		return nil, &ValidationError{Fields: map[string]string{"name": "name is required"}}
	}
	if coach.ID == "" {
		coach.ID = uuid.NewString()
	}

	if err := s.repository.CreateCoach(ctx, coach); err != nil {
		return nil, fmt.Errorf("failed to create coach: %w", err)
	}

	s.writeThroughJSON(ctx, coachKey(coach.ID), coach)
	s.gate.Invalidate(ctx, coachListKey)

	s.log.Info("Coach created", zap.String("coach_id", coach.ID), zap.String("name", coach.Name))
	return coach, nil
}

func (s *RosterService) GetCoach(ctx context.Context, id string) (*domain.Coach, error) {
	raw, err := s.gate.ReadThrough(ctx, coachKey(id), func(ctx context.Context) (string, error) {
		coach, err := s.repository.GetCoach(ctx, id)
		if err != nil {
			return "", err
		}
		return encode(coach)
	})
	if err != nil {
		return nil, err
	}

	var coach domain.Coach
	if err := json.Unmarshal([]byte(raw), &coach); err != nil {
		return nil, fmt.Errorf("failed to decode cached coach: %w", err)
	}
	return &coach, nil
}

func (s *RosterService) ListCoaches(ctx context.Context) ([]domain.Coach, error) {
	raw, err := s.gate.ReadThrough(ctx, coachListKey, func(ctx context.Context) (string, error) {
		coaches, err := s.repository.ListCoaches(ctx)
		if err != nil {
			return "", err
		}
		return encode(coaches)
	})
	if err != nil {
		return nil, err
	}

	var coaches []domain.Coach
	if err := json.Unmarshal([]byte(raw), &coaches); err != nil {
		return nil, fmt.Errorf("failed to decode cached coach list: %w", err)
	}
	return coaches, nil
}

func (s *RosterService) UpdateCoach(ctx context.Context, coach *domain.Coach) (*domain.Coach, error) {
	if coach.Name == "" {
		return nil, &ValidationError{Fields: map[string]string{"name": "name is required"}}
	}

	if _, err := s.repository.GetCoach(ctx, coach.ID); err != nil {
		return nil, err
	}

	if err := s.repository.UpdateCoach(ctx, coach); err != nil {
		return nil, fmt.Errorf("failed to update coach: %w", err)
	}

	s.writeThroughJSON(ctx, coachKey(coach.ID), coach)
	s.gate.Invalidate(ctx, coachListKey)

	s.log.Info("Coach updated", zap.String("coach_id", coach.ID))
	return coach, nil
}

func (s *RosterService) DeleteCoach(ctx context.Context, id string) error {
	if _, err := s.repository.GetCoach(ctx, id); err != nil {
		return err
	}

	if err := s.repository.DeleteCoach(ctx, id); err != nil {
		return fmt.Errorf("failed to delete coach: %w", err)
	}

	s.gate.Invalidate(ctx, coachKey(id))
	s.gate.Invalidate(ctx, coachListKey)

	s.log.Info("Coach deleted", zap.String("coach_id", id))
	return nil
}

// --- contacts ---

func (s *RosterService) CreateContact(ctx context.Context, contact *domain.Contact) (*domain.Contact, error) {
	if contact.Name == "" {
		return nil, &ValidationError{Fields: map[string]string{"name": "name is required"}}
	}
	if contact.ID == "" {
		contact.ID = uuid.NewString()
	}

	if err := s.repository.CreateContact(ctx, contact); err != nil {
		return nil, fmt.Errorf("failed to create contact: %w", err)
	}

	s.writeThroughJSON(ctx, contactKey(contact.ID), contact)
	s.gate.Invalidate(ctx, contactListKey)

	s.log.Info("Contact created", zap.String("contact_id", contact.ID), zap.String("name", contact.Name))
	return contact, nil
}

func (s *RosterService) GetContact(ctx context.Context, id string) (*domain.Contact, error) {
	raw, err := s.gate.ReadThrough(ctx, contactKey(id), func(ctx context.Context) (string, error) {
		contact, err := s.repository.GetContact(ctx, id)
		if err != nil {
			return "", err
		}
		return encode(contact)
	})
	if err != nil {
		return nil, err
	}

	var contact domain.Contact
	if err := json.Unmarshal([]byte(raw), &contact); err != nil {
		return nil, fmt.Errorf("failed to decode cached contact: %w", err)
	}
	return &contact, nil
}

func (s *RosterService) ListContacts(ctx context.Context) ([]domain.Contact, error) {
	raw, err := s.gate.ReadThrough(ctx, contactListKey, func(ctx context.Context) (string, error) {
		contacts, err := s.repository.ListContacts(ctx)
		if err != nil {
			return "", err
		}
		return encode(contacts)
	})
	if err != nil {
		return nil, err
	}

	var contacts []domain.Contact
	if err := json.Unmarshal([]byte(raw), &contacts); err != nil {
		return nil, fmt.Errorf("failed to decode cached contact list: %w", err)
	}
	return contacts, nil
}

func (s *RosterService) UpdateContact(ctx context.Context, contact *domain.Contact) (*domain.Contact, error) {
	if contact.Name == "" {
		return nil, &ValidationError{Fields: map[string]string{"name": "name is required"}}
	}

	if _, err := s.repository.GetContact(ctx, contact.ID); err != nil {
		return nil, err
	}

	if err := s.repository.UpdateContact(ctx, contact); err != nil {
		return nil, fmt.Errorf("failed to update contact: %w", err)
	}

	s.writeThroughJSON(ctx, contactKey(contact.ID), contact)
	s.gate.Invalidate(ctx, contactListKey)

	s.log.Info("Contact updated", zap.String("contact_id", contact.ID))
	return contact, nil
}

func (s *RosterService) DeleteContact(ctx context.Context, id string) error {
	if _, err := s.repository.GetContact(ctx, id); err != nil {
		return err
	}

	if err := s.repository.DeleteContact(ctx, id); err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}

	s.gate.Invalidate(ctx, contactKey(id))
	s.gate.Invalidate(ctx, contactListKey)

	s.log.Info("Contact deleted", zap.String("contact_id", id))
	return nil
}

// --- workspace ---

// LoadWorkspace fetches events, coaches, and contacts in parallel. Each
// resource degrades independently: a failed fetch yields an empty slice and
// its error is reported under the resource name, so one transient failure
// cannot blank the other collections.
func (s *RosterService) LoadWorkspace(ctx context.Context) *dto.WorkspaceResponse {
	resp := &dto.WorkspaceResponse{
		Events:   []domain.Event{},
		Coaches:  []domain.Coach{},
		Contacts: []domain.Contact{},
	}

	var mu sync.Mutex
	var wg sync.WaitGroup

	fail := func(resource string, err error) {
		s.log.Error("Workspace resource failed to load",
			zap.String("resource", resource),
			zap.Error(err))
		mu.Lock()
		if resp.Errors == nil {
			resp.Errors = make(map[string]string)
		}
		resp.Errors[resource] = err.Error()
		mu.Unlock()
	}

	wg.Add(3)
	go func() {
		defer wg.Done()
		events, err := s.events.ListEvents(ctx)
		if err != nil {
			fail("events", err)
			return
		}
		mu.Lock()
		resp.Events = events
		mu.Unlock()
	}()
	go func() {
		defer wg.Done()
		coaches, err := s.ListCoaches(ctx)
		if err != nil {
			fail("coaches", err)
			return
		}
		mu.Lock()
		resp.Coaches = coaches
		mu.Unlock()
	}()
	go func() {
		defer wg.Done()
		contacts, err := s.ListContacts(ctx)
		if err != nil {
			fail("contacts", err)
			return
		}
		mu.Lock()
		resp.Contacts = contacts
		mu.Unlock()
	}()
	wg.Wait()

	return resp
}

// writeThroughJSON serializes v and updates the cache entry alongside the
// remote write that just succeeded.
func (s *RosterService) writeThroughJSON(ctx context.Context, key string, v any) {
	raw, err := encode(v)
	if err != nil {
		s.log.Warn("Failed to encode snapshot for cache", zap.String("key", key), zap.Error(err))
		return
	}
	s.gate.WriteThrough(ctx, key, raw)
}
