package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/jrdxnra/eventflow-service/internal/domain"
	"github.com/jrdxnra/eventflow-service/internal/repository"
)

// Repository implements the document store over SQLite. Each collection is a
// table of (id, doc) rows with the record serialized as JSON, matching the
// whole-document replace semantics of the hosted store it stands in for.
type Repository struct {
	client *Client
	log    *zap.Logger
}

// NewRepository creates a new SQLite repository.
func NewRepository(client *Client, log *zap.Logger) *Repository {
	return &Repository{client: client, log: log}
}

// InitSchema creates the collection tables if they do not exist.
func (r *Repository) InitSchema(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS events (id TEXT PRIMARY KEY, doc TEXT NOT NULL)`,
		`CREATE TABLE IF NOT EXISTS coaches (id TEXT PRIMARY KEY, doc TEXT NOT NULL)`,
		`CREATE TABLE IF NOT EXISTS contacts (id TEXT PRIMARY KEY, doc TEXT NOT NULL)`,
		`CREATE TABLE IF NOT EXISTS timelines (event_id TEXT PRIMARY KEY, doc TEXT NOT NULL)`,
		`CREATE TABLE IF NOT EXISTS logistics (event_id TEXT PRIMARY KEY, doc TEXT NOT NULL)`,
	}

	for _, stmt := range stmts {
		if _, err := r.client.DB().ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}

	r.log.Info("Document store schema initialized")
	return nil
}

// Ping checks the database connection.
func (r *Repository) Ping(ctx context.Context) error {
	return r.client.DB().PingContext(ctx)
}

func (r *Repository) upsertDoc(ctx context.Context, table, id string, doc any) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}

	query := fmt.Sprintf(
		`INSERT INTO %s (id, doc) VALUES (?, ?) ON CONFLICT(id) DO UPDATE SET doc = excluded.doc`,
		table)
	if table == "timelines" || table == "logistics" {
		query = fmt.Sprintf(
			`INSERT INTO %s (event_id, doc) VALUES (?, ?) ON CONFLICT(event_id) DO UPDATE SET doc = excluded.doc`,
			table)
	}

	if _, err := r.client.DB().ExecContext(ctx, query, id, string(raw)); err != nil {
		return fmt.Errorf("failed to write %s document: %w", table, err)
	}
	return nil
}

func (r *Repository) getDoc(ctx context.Context, table, keyColumn, id string, out any) error {
	query := fmt.Sprintf(`SELECT doc FROM %s WHERE %s = ?`, table, keyColumn)

	var raw string
	err := r.client.DB().QueryRowContext(ctx, query, id).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return repository.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to read %s document: %w", table, err)
	}

	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return fmt.Errorf("failed to unmarshal %s document: %w", table, err)
	}
	return nil
}

func (r *Repository) deleteDoc(ctx context.Context, table, keyColumn, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = ?`, table, keyColumn)
	if _, err := r.client.DB().ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete %s document: %w", table, err)
	}
	return nil
}

func (r *Repository) listDocs(ctx context.Context, table string, add func(raw string) error) error {
	rows, err := r.client.DB().QueryContext(ctx, fmt.Sprintf(`SELECT doc FROM %s ORDER BY id`, table))
	if err != nil {
		return fmt.Errorf("failed to list %s documents: %w", table, err)
	}
	defer rows.Close()

	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return fmt.Errorf("failed to scan %s row: %w", table, err)
		}
		if err := add(raw); err != nil {
			return err
		}
	}
	return rows.Err()
}

// --- events ---

func (r *Repository) CreateEvent(ctx context.Context, event *domain.Event) error {
	return r.upsertDoc(ctx, "events", event.ID, event)
}

func (r *Repository) GetEvent(ctx context.Context, id string) (*domain.Event, error) {
	var event domain.Event
	if err := r.getDoc(ctx, "events", "id", id, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *Repository) ListEvents(ctx context.Context) ([]domain.Event, error) {
	events := make([]domain.Event, 0)
	err := r.listDocs(ctx, "events", func(raw string) error {
		var event domain.Event
		if err := json.Unmarshal([]byte(raw), &event); err != nil {
			return fmt.Errorf("failed to unmarshal event: %w", err)
		}
		events = append(events, event)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (r *Repository) UpdateEvent(ctx context.Context, event *domain.Event) error {
	return r.upsertDoc(ctx, "events", event.ID, event)
}

func (r *Repository) DeleteEvent(ctx context.Context, id string) error {
	return r.deleteDoc(ctx, "events", "id", id)
}

// --- timelines ---

func (r *Repository) GetTimeline(ctx context.Context, eventID string) ([]domain.TimelineItem, error) {
	var items []domain.TimelineItem
	if err := r.getDoc(ctx, "timelines", "event_id", eventID, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *Repository) ReplaceTimeline(ctx context.Context, eventID string, items []domain.TimelineItem) error {
	return r.upsertDoc(ctx, "timelines", eventID, items)
}

func (r *Repository) DeleteTimeline(ctx context.Context, eventID string) error {
	return r.deleteDoc(ctx, "timelines", "event_id", eventID)
}

// --- logistics ---

func (r *Repository) GetLogistics(ctx context.Context, eventID string) (*domain.LogisticsBundle, error) {
	var bundle domain.LogisticsBundle
	if err := r.getDoc(ctx, "logistics", "event_id", eventID, &bundle); err != nil {
		return nil, err
	}
	return &bundle, nil
}

func (r *Repository) ReplaceLogistics(ctx context.Context, bundle *domain.LogisticsBundle) error {
	return r.upsertDoc(ctx, "logistics", bundle.EventID, bundle)
}

func (r *Repository) DeleteLogistics(ctx context.Context, eventID string) error {
	return r.deleteDoc(ctx, "logistics", "event_id", eventID)
}

// --- coaches ---

func (r *Repository) CreateCoach(ctx context.Context, coach *domain.Coach) error {
	return r.upsertDoc(ctx, "coaches", coach.ID, coach)
}

func (r *Repository) GetCoach(ctx context.Context, id string) (*domain.Coach, error) {
	var coach domain.Coach
	if err := r.getDoc(ctx, "coaches", "id", id, &coach); err != nil {
		return nil, err
	}
	return &coach, nil
}

func (r *Repository) ListCoaches(ctx context.Context) ([]domain.Coach, error) {
	coaches := make([]domain.Coach, 0)
	err := r.listDocs(ctx, "coaches", func(raw string) error {
		var coach domain.Coach
		if err := json.Unmarshal([]byte(raw), &coach); err != nil {
			return fmt.Errorf("failed to unmarshal coach: %w", err)
		}
		coaches = append(coaches, coach)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return coaches, nil
}

func (r *Repository) UpdateCoach(ctx context.Context, coach *domain.Coach) error {
	return r.upsertDoc(ctx, "coaches", coach.ID, coach)
}

func (r *Repository) DeleteCoach(ctx context.Context, id string) error {
	return r.deleteDoc(ctx, "coaches", "id", id)
}

// --- contacts ---

func (r *Repository) CreateContact(ctx context.Context, contact *domain.Contact) error {
	return r.upsertDoc(ctx, "contacts", contact.ID, contact)
}

func (r *Repository) GetContact(ctx context.Context, id string) (*domain.Contact, error) {
	var contact domain.Contact
	if err := r.getDoc(ctx, "contacts", "id", id, &contact); err != nil {
		return nil, err
	}
	return &contact, nil
}

func (r *Repository) ListContacts(ctx context.Context) ([]domain.Contact, error) {
	contacts := make([]domain.Contact, 0)
	err := r.listDocs(ctx, "contacts", func(raw string) error {
		var contact domain.Contact
		if err := json.Unmarshal([]byte(raw), &contact); err != nil {
			return fmt.Errorf("failed to unmarshal contact: %w", err)
		}
		contacts = append(contacts, contact)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return contacts, nil
}

func (r *Repository) UpdateContact(ctx context.Context, contact *domain.Contact) error {
	return r.upsertDoc(ctx, "contacts", contact.ID, contact)
}

func (r *Repository) DeleteContact(ctx context.Context, id string) error {
	return r.deleteDoc(ctx, "contacts", "id", id)
}
