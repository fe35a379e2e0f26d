package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/jrdxnra/eventflow-service/internal/config"
)

// Client wraps the SQLite connection backing the document store.
type Client struct {
	db  *sql.DB
	log *zap.Logger
}

// NewClient opens (and creates, if necessary) the database file.
func NewClient(ctx context.Context, cfg config.Database, log *zap.Logger) (*Client, error) {
	db, err := sql.Open("sqlite3", cfg.Path+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Info("Database opened", zap.String("path", cfg.Path))

	return &Client{db: db, log: log}, nil
}

// DB returns the underlying connection.
func (c *Client) DB() *sql.DB {
	return c.db
}

// Close closes the database.
func (c *Client) Close() error {
	c.log.Info("Closing database")
	return c.db.Close()
}
