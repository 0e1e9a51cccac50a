package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
	CREATE TABLE IF NOT EXISTS accounts (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT NOT NULL UNIQUE,
		owner TEXT NOT NULL,
		pin INTEGER NOT NULL,
		interest_rate TEXT NOT NULL DEFAULT '0',
		locale TEXT NOT NULL DEFAULT ''
	);

	CREATE TABLE IF NOT EXISTS movements (
		position INTEGER PRIMARY KEY AUTOINCREMENT,
		movement_id TEXT NOT NULL UNIQUE,
		account_id INTEGER NOT NULL REFERENCES accounts(id) ON DELETE CASCADE,
		amount TEXT NOT NULL,
		kind TEXT NOT NULL,
		occurred_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS movements_account_id ON movements(account_id, position);
`

type Client struct {
	db     *sql.DB
	config Config
}

func NewClient(config Config) (*Client, error) {
	dsn := buildDSN(config)

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if config.InMemory {
		// The database lives as long as its single connection.
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
		db.SetConnMaxLifetime(0)
		db.SetConnMaxIdleTime(0)
	} else {
		db.SetMaxOpenConns(config.MaxOpenConns)
		db.SetMaxIdleConns(config.MaxIdleConns)
		db.SetConnMaxLifetime(config.ConnMaxLifetime)
		db.SetConnMaxIdleTime(config.ConnMaxIdleTime)
	}

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err = migrate(context.Background(), db); err != nil {
		db.Close()
		return nil, err
	}

	return &Client{
		db:     db,
		config: config,
	}, nil
}

func buildDSN(config Config) string {
	dsn := fmt.Sprintf("file:%s?", config.DatabasePath)

	dsn += fmt.Sprintf("_busy_timeout=%d", int(config.BusyTimeout.Milliseconds()))

	// IMMEDIATE transactions take the reserved lock up front so the balance
	// check and both transfer legs cannot interleave with another writer.
	dsn += "&_txlock=immediate"
	dsn += "&_foreign_keys=on"

	if config.InMemory {
		dsn += "&mode=memory&cache=shared"
	} else if config.EnableWAL {
		dsn += "&_journal_mode=WAL"
	}

	return dsn
}

func migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

func (c *Client) DB() *sql.DB {
	return c.db
}

func (c *Client) Close() error {
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}
