package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const defaultDBTimeout = 5 * time.Second

// Database wraps the SQLite connection and owns the schema.
type Database struct {
	DB     *sql.DB
	dbFile string
}

// Open initializes the database connection and schema.
func Open(ctx context.Context, filepath string) (*Database, error) {
	db, err := sql.Open("sqlite3", filepath+"?_foreign_keys=on")
	if err != nil {
		return nil, err
	}
	if err = db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}

	d := &Database{DB: db, dbFile: filepath}
	if err := d.createTables(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return d, nil
}

func (d *Database) Close() error {
	return d.DB.Close()
}

func (d *Database) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithTimeout(ctx, timeout)
}

func (d *Database) withDBContext(ctx context.Context, fn func(ctx context.Context) error) error {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()
	return fn(ctx)
}

// WithTx runs fn inside a transaction, rolling back on error.
func (d *Database) WithTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()
	tx, err := d.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		return rollbackWithLog(tx, err)
	}
	return tx.Commit()
}

func (d *Database) createTables(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS projects (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			slug TEXT UNIQUE
		);`,
		`CREATE TABLE IF NOT EXISTS sprints (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			project_id INTEGER NOT NULL,
			name TEXT NOT NULL,
			start_date DATETIME NOT NULL,
			end_date DATETIME NOT NULL,
			FOREIGN KEY(project_id) REFERENCES projects(id)
		);`,
		`CREATE TABLE IF NOT EXISTS milestones (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			project_id INTEGER NOT NULL,
			title TEXT NOT NULL,
			order_index INTEGER DEFAULT 0,
			requires_client_approval INTEGER DEFAULT 0,
			approval_status TEXT DEFAULT 'PENDING',
			approval_notes TEXT,
			FOREIGN KEY(project_id) REFERENCES projects(id)
		);`,
		`CREATE TABLE IF NOT EXISTS work_items (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			project_id INTEGER NOT NULL,
			parent_id INTEGER,
			sprint_id INTEGER,
			milestone_id INTEGER,
			title TEXT NOT NULL,
			description TEXT,
			status TEXT DEFAULT 'BACKLOG',
			priority TEXT DEFAULT 'MED',
			owner_ref TEXT,
			due_date DATETIME,
			estimate REAL,
			order_index INTEGER DEFAULT 0,
			client_visible INTEGER DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY(project_id) REFERENCES projects(id),
			FOREIGN KEY(parent_id) REFERENCES work_items(id),
			FOREIGN KEY(sprint_id) REFERENCES sprints(id),
			FOREIGN KEY(milestone_id) REFERENCES milestones(id)
		);`,
		`CREATE TABLE IF NOT EXISTS change_requests (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			project_id INTEGER NOT NULL,
			author_ref TEXT NOT NULL,
			title TEXT NOT NULL,
			details TEXT,
			status TEXT DEFAULT 'SUBMITTED',
			estimated_hours REAL,
			estimate_notes TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY(project_id) REFERENCES projects(id)
		);`,
		`CREATE TABLE IF NOT EXISTS comments (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			work_item_id INTEGER NOT NULL,
			parent_id INTEGER,
			author_ref TEXT NOT NULL,
			content TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY(work_item_id) REFERENCES work_items(id),
			FOREIGN KEY(parent_id) REFERENCES comments(id)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_work_items_board
			ON work_items(project_id, status, order_index);`,
		`CREATE INDEX IF NOT EXISTS idx_comments_item
			ON comments(work_item_id);`,
	}

	for _, query := range queries {
		if _, err := d.DB.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("creating table: %q: %w", query, err)
		}
	}

	// Migrations for existing databases
	d.migrate(ctx)
	return nil
}

func (d *Database) migrate(ctx context.Context) {
	// Add client_visible to work_items
	_, _ = d.DB.ExecContext(ctx, "ALTER TABLE work_items ADD COLUMN client_visible INTEGER DEFAULT 0")
	// Add estimate to work_items
	_, _ = d.DB.ExecContext(ctx, "ALTER TABLE work_items ADD COLUMN estimate REAL")
	// Add milestone approval gate columns
	_, _ = d.DB.ExecContext(ctx, "ALTER TABLE milestones ADD COLUMN requires_client_approval INTEGER DEFAULT 0")
	_, _ = d.DB.ExecContext(ctx, "ALTER TABLE milestones ADD COLUMN approval_status TEXT DEFAULT 'PENDING'")
	_, _ = d.DB.ExecContext(ctx, "ALTER TABLE milestones ADD COLUMN approval_notes TEXT")
	// Add estimate fields to change_requests
	_, _ = d.DB.ExecContext(ctx, "ALTER TABLE change_requests ADD COLUMN estimated_hours REAL")
	_, _ = d.DB.ExecContext(ctx, "ALTER TABLE change_requests ADD COLUMN estimate_notes TEXT")
}
