package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/jrdxnra/eventflow-service/internal/config"
	"github.com/jrdxnra/eventflow-service/internal/domain"
	"github.com/jrdxnra/eventflow-service/internal/repository"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()

	client, err := NewClient(context.Background(), config.Database{Path: ":memory:"}, zap.NewNop())
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}
	t.Cleanup(func() { client.Close() })

	repo := NewRepository(client, zap.NewNop())
	if err := repo.InitSchema(context.Background()); err != nil {
		t.Fatalf("failed to init schema: %v", err)
	}
	return repo
}

func TestRepository_EventRoundTrip(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	event := &domain.Event{
		ID:       "evt-1",
		Name:     "Spring Fitness Kickoff",
		Date:     "2025-06-15",
		Channels: []string{domain.ChannelMedia, domain.ChannelEmail},
	}

	err := repo.CreateEvent(ctx, event)
	assert.NoError(t, err)

	got, err := repo.GetEvent(ctx, "evt-1")
	assert.NoError(t, err)
	assert.Equal(t, event, got)
}

func TestRepository_GetEvent_NotFound(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.GetEvent(context.Background(), "missing")

	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestRepository_UpdateEvent_ReplacesDocument(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	err := repo.CreateEvent(ctx, &domain.Event{ID: "evt-1", Name: "Kickoff", Date: "2025-06-15", Location: "Main Gym"})
	assert.NoError(t, err)

	// Location omitted on update; the whole document is replaced, not merged.
	err = repo.UpdateEvent(ctx, &domain.Event{ID: "evt-1", Name: "Kickoff v2", Date: "2025-06-15"})
	assert.NoError(t, err)

	got, err := repo.GetEvent(ctx, "evt-1")
	assert.NoError(t, err)
	assert.Equal(t, "Kickoff v2", got.Name)
	assert.Empty(t, got.Location)
}

func TestRepository_ListEvents_EmptyIsNotNil(t *testing.T) {
	repo := newTestRepository(t)

	events, err := repo.ListEvents(context.Background())

	assert.NoError(t, err)
	assert.NotNil(t, events)
	assert.Empty(t, events)
}

func TestRepository_DeleteEvent(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	err := repo.CreateEvent(ctx, &domain.Event{ID: "evt-1", Name: "Kickoff", Date: "2025-06-15"})
	assert.NoError(t, err)

	err = repo.DeleteEvent(ctx, "evt-1")
	assert.NoError(t, err)

	_, err = repo.GetEvent(ctx, "evt-1")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	// Deleting an absent document is not an error.
	err = repo.DeleteEvent(ctx, "evt-1")
	assert.NoError(t, err)
}

func TestRepository_TimelineRoundTrip(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	items := []domain.TimelineItem{
		{ID: "evt-1-1", Title: "Team briefing", DueDate: "2025-06-14", DueTime: "07:00",
			Category: domain.CategoryPreparation, Status: domain.StatusPending, Priority: domain.PriorityHigh},
		{ID: "evt-1-2", Title: "Event day setup", DueDate: "2025-06-15", DueTime: "07:00",
			Category: domain.CategoryExecution, Status: domain.StatusPending, Priority: domain.PriorityHigh},
	}

	err := repo.ReplaceTimeline(ctx, "evt-1", items)
	assert.NoError(t, err)

	got, err := repo.GetTimeline(ctx, "evt-1")
	assert.NoError(t, err)
	assert.Equal(t, items, got)

	// Replace overwrites the stored list wholesale.
	err = repo.ReplaceTimeline(ctx, "evt-1", items[:1])
	assert.NoError(t, err)

	got, err = repo.GetTimeline(ctx, "evt-1")
	assert.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestRepository_GetTimeline_NotFound(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.GetTimeline(context.Background(), "evt-1")

	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestRepository_LogisticsRoundTrip(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	bundle := &domain.LogisticsBundle{
		EventID:     "evt-1",
		TeamMembers: []domain.TeamMember{{Name: "Jordan Reyes", Role: "lead coach"}},
		Activities:  []domain.Activity{{Name: "Warmup circuit"}},
	}

	err := repo.ReplaceLogistics(ctx, bundle)
	assert.NoError(t, err)

	got, err := repo.GetLogistics(ctx, "evt-1")
	assert.NoError(t, err)
	assert.Equal(t, bundle, got)
}

func TestRepository_CoachRoundTrip(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	coach := &domain.Coach{ID: "co-1", Name: "Jordan Reyes", Specialty: "strength"}

	err := repo.CreateCoach(ctx, coach)
	assert.NoError(t, err)

	got, err := repo.GetCoach(ctx, "co-1")
	assert.NoError(t, err)
	assert.Equal(t, coach, got)

	coaches, err := repo.ListCoaches(ctx)
	assert.NoError(t, err)
	assert.Len(t, coaches, 1)

	err = repo.DeleteCoach(ctx, "co-1")
	assert.NoError(t, err)

	_, err = repo.GetCoach(ctx, "co-1")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestRepository_ContactsSortedByID(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	assert.NoError(t, repo.CreateContact(ctx, &domain.Contact{ID: "ct-2", Name: "Riley Chen"}))
	assert.NoError(t, repo.CreateContact(ctx, &domain.Contact{ID: "ct-1", Name: "Sam Ortiz"}))

	contacts, err := repo.ListContacts(ctx)

	assert.NoError(t, err)
	assert.Len(t, contacts, 2)
	assert.Equal(t, "ct-1", contacts[0].ID)
	assert.Equal(t, "ct-2", contacts[1].ID)
}
