package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/jrdxnra/eventflow-service/internal/cache"
	"github.com/jrdxnra/eventflow-service/internal/domain"
	"github.com/jrdxnra/eventflow-service/internal/repository"
)

// MockRosterRepository is a mock implementation of repository.RosterRepository
type MockRosterRepository struct {
	mock.Mock
}

func (m *MockRosterRepository) CreateCoach(ctx context.Context, coach *domain.Coach) error {
	args := m.Called(ctx, coach)
	return args.Error(0)
}

func (m *MockRosterRepository) GetCoach(ctx context.Context, id string) (*domain.Coach, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Coach), args.Error(1)
}

func (m *MockRosterRepository) ListCoaches(ctx context.Context) ([]domain.Coach, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Coach), args.Error(1)
}

func (m *MockRosterRepository) UpdateCoach(ctx context.Context, coach *domain.Coach) error {
	args := m.Called(ctx, coach)
	return args.Error(0)
}

func (m *MockRosterRepository) DeleteCoach(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRosterRepository) CreateContact(ctx context.Context, contact *domain.Contact) error {
	args := m.Called(ctx, contact)
	return args.Error(0)
}

func (m *MockRosterRepository) GetContact(ctx context.Context, id string) (*domain.Contact, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contact), args.Error(1)
}

func (m *MockRosterRepository) ListContacts(ctx context.Context) ([]domain.Contact, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Contact), args.Error(1)
}

func (m *MockRosterRepository) UpdateContact(ctx context.Context, contact *domain.Contact) error {
	args := m.Called(ctx, contact)
	return args.Error(0)
}

func (m *MockRosterRepository) DeleteContact(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newTestRosterService(repo *MockRosterRepository, events EventServicer) *RosterService {
	gate := cache.NewGate(cache.NewMemoryStore(), 10*time.Minute, zap.NewNop())
	return NewRosterService(repo, events, gate, zap.NewNop())
}

func TestRosterService_CreateCoach_AssignsID(t *testing.T) {
	mockRepo := new(MockRosterRepository)
	service := newTestRosterService(mockRepo, nil)

	mockRepo.On("CreateCoach", mock.Anything, mock.AnythingOfType("*domain.Coach")).Return(nil).Once()

	coach, err := service.CreateCoach(context.Background(), &domain.Coach{Name: "Jordan Reyes"})

	assert.NoError(t, err)
	assert.NotEmpty(t, coach.ID)
	mockRepo.AssertExpectations(t)
}

func TestRosterService_CreateCoach_MissingName(t *testing.T) {
	mockRepo := new(MockRosterRepository)
	service := newTestRosterService(mockRepo, nil)

	_, err := service.CreateCoach(context.Background(), &domain.Coach{})

	var validation *ValidationError
	assert.ErrorAs(t, err, &validation)
	mockRepo.AssertNotCalled(t, "CreateCoach")
}

func TestRosterService_GetContact_SecondReadServedFromCache(t *testing.T) {
	mockRepo := new(MockRosterRepository)
	service := newTestRosterService(mockRepo, nil)

	stored := &domain.Contact{ID: "c-1", Name: "Riley Chen"}
	mockRepo.On("GetContact", mock.Anything, "c-1").Return(stored, nil).Once()

	_, err := service.GetContact(context.Background(), "c-1")
	assert.NoError(t, err)

	contact, err := service.GetContact(context.Background(), "c-1")
	assert.NoError(t, err)
	assert.Equal(t, "Riley Chen", contact.Name)
	mockRepo.AssertNumberOfCalls(t, "GetContact", 1)
}

func TestRosterService_DeleteCoach_NotFound(t *testing.T) {
	mockRepo := new(MockRosterRepository)
	service := newTestRosterService(mockRepo, nil)

	mockRepo.On("GetCoach", mock.Anything, "missing").Return(nil, repository.ErrNotFound).Once()

	err := service.DeleteCoach(context.Background(), "missing")

	assert.ErrorIs(t, err, repository.ErrNotFound)
	mockRepo.AssertNotCalled(t, "DeleteCoach")
}

func TestRosterService_LoadWorkspace_AllResourcesLoad(t *testing.T) {
	mockRepo := new(MockRosterRepository)
	mockEventRepo := new(MockEventRepository)
	events := newTestEventService(mockEventRepo, nil)
	service := newTestRosterService(mockRepo, events)

	mockEventRepo.On("ListEvents", mock.Anything).
		Return([]domain.Event{{ID: "evt-1", Name: "Kickoff", Date: "2025-06-15"}}, nil).Once()
	mockRepo.On("ListCoaches", mock.Anything).
		Return([]domain.Coach{{ID: "co-1", Name: "Jordan Reyes"}}, nil).Once()
	mockRepo.On("ListContacts", mock.Anything).
		Return([]domain.Contact{{ID: "c-1", Name: "Riley Chen"}}, nil).Once()

	resp := service.LoadWorkspace(context.Background())

	assert.Len(t, resp.Events, 1)
	assert.Len(t, resp.Coaches, 1)
	assert.Len(t, resp.Contacts, 1)
	assert.Empty(t, resp.Errors)
}

func TestRosterService_LoadWorkspace_DegradesIndependently(t *testing.T) {
	mockRepo := new(MockRosterRepository)
	mockEventRepo := new(MockEventRepository)
	events := newTestEventService(mockEventRepo, nil)
	service := newTestRosterService(mockRepo, events)

	// One failing fetch must not blank the other collections.
	mockEventRepo.On("ListEvents", mock.Anything).
		Return(nil, errors.New("remote store unavailable")).Once()
	mockRepo.On("ListCoaches", mock.Anything).
		Return([]domain.Coach{{ID: "co-1", Name: "Jordan Reyes"}}, nil).Once()
	mockRepo.On("ListContacts", mock.Anything).
		Return([]domain.Contact{{ID: "c-1", Name: "Riley Chen"}}, nil).Once()

	resp := service.LoadWorkspace(context.Background())

	assert.Empty(t, resp.Events)
	assert.Len(t, resp.Coaches, 1)
	assert.Len(t, resp.Contacts, 1)
	assert.Contains(t, resp.Errors, "events")
	assert.Contains(t, resp.Errors["events"], "remote store unavailable")
}
