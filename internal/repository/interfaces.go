package repository

import (
	"context"
	"errors"

	"github.com/jrdxnra/eventflow-service/internal/domain"
)

// ErrNotFound is returned by reads of documents that do not exist.
var ErrNotFound = errors.New("repository: not found")

// EventRepository stores event documents and their per-event plans. Timeline
// and logistics writes replace the whole stored list/bundle; there are no
// item-level patches.
type EventRepository interface {
	CreateEvent(ctx context.Context, event *domain.Event) error
	GetEvent(ctx context.Context, id string) (*domain.Event, error)
	ListEvents(ctx context.Context) ([]domain.Event, error)
	UpdateEvent(ctx context.Context, event *domain.Event) error
	DeleteEvent(ctx context.Context, id string) error

	GetTimeline(ctx context.Context, eventID string) ([]domain.TimelineItem, error)
	ReplaceTimeline(ctx context.Context, eventID string, items []domain.TimelineItem) error
	DeleteTimeline(ctx context.Context, eventID string) error

	GetLogistics(ctx context.Context, eventID string) (*domain.LogisticsBundle, error)
	ReplaceLogistics(ctx context.Context, bundle *domain.LogisticsBundle) error
	DeleteLogistics(ctx context.Context, eventID string) error
}

// RosterRepository stores the shared coach and contact rosters.
type RosterRepository interface {
	CreateCoach(ctx context.Context, coach *domain.Coach) error
	GetCoach(ctx context.Context, id string) (*domain.Coach, error)
	ListCoaches(ctx context.Context) ([]domain.Coach, error)
	UpdateCoach(ctx context.Context, coach *domain.Coach) error
	DeleteCoach(ctx context.Context, id string) error

	CreateContact(ctx context.Context, contact *domain.Contact) error
	GetContact(ctx context.Context, id string) (*domain.Contact, error)
	ListContacts(ctx context.Context) ([]domain.Contact, error)
	UpdateContact(ctx context.Context, contact *domain.Contact) error
	DeleteContact(ctx context.Context, id string) error
}
