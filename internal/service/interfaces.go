package service

import (
	"context"

	"github.com/jrdxnra/eventflow-service/internal/domain"
	"github.com/jrdxnra/eventflow-service/internal/dto"
)

// EventServicer defines the interface for event operations
type EventServicer interface {
	CreateEvent(ctx context.Context, event *domain.Event) (*domain.Event, error)
	GetEvent(ctx context.Context, id string) (*domain.Event, error)
	ListEvents(ctx context.Context) ([]domain.Event, error)
	UpdateEvent(ctx context.Context, event *domain.Event) (*domain.Event, error)
	DeleteEvent(ctx context.Context, id string) error

	GetTimeline(ctx context.Context, eventID string) ([]domain.TimelineItem, error)
	ReplaceTimeline(ctx context.Context, eventID string, items []domain.TimelineItem) ([]domain.TimelineItem, error)

	RequestCalendarSync(ctx context.Context, eventID string) error
}

// RosterServicer defines the interface for coach and contact operations
type RosterServicer interface {
	CreateCoach(ctx context.Context, coach *domain.Coach) (*domain.Coach, error)
	GetCoach(ctx context.Context, id string) (*domain.Coach, error)
	ListCoaches(ctx context.Context) ([]domain.Coach, error)
	UpdateCoach(ctx context.Context, coach *domain.Coach) (*domain.Coach, error)
	DeleteCoach(ctx context.Context, id string) error

	CreateContact(ctx context.Context, contact *domain.Contact) (*domain.Contact, error)
	GetContact(ctx context.Context, id string) (*domain.Contact, error)
	ListContacts(ctx context.Context) ([]domain.Contact, error)
	UpdateContact(ctx context.Context, contact *domain.Contact) (*domain.Contact, error)
	DeleteContact(ctx context.Context, id string) error
}

// LogisticsServicer defines the interface for per-event logistics bundles
type LogisticsServicer interface {
	GetLogistics(ctx context.Context, eventID string) (*domain.LogisticsBundle, error)
	ReplaceLogistics(ctx context.Context, bundle *domain.LogisticsBundle) (*domain.LogisticsBundle, error)
}

// WorkspaceLoader loads the collections the planner needs at startup
type WorkspaceLoader interface {
	LoadWorkspace(ctx context.Context) *dto.WorkspaceResponse
}
