package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

type DB struct {
	*sql.DB
}

func New(dbPath string) (*DB, error) {
	// Ensure directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// Pragmas go in the DSN so they apply to every connection the pool opens
	dsn := fmt.Sprintf("file:%s?_journal_mode=WAL&_foreign_keys=on&_busy_timeout=5000", dbPath)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// One physical connection, shared by every repository
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	return &DB{db}, nil
}

func (db *DB) Migrate(ctx context.Context) error {
	queries := []string{
		// Activities table
		`CREATE TABLE IF NOT EXISTS activities (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			description TEXT NOT NULL,
			category TEXT NOT NULL,
			time TEXT NOT NULL,
			latitude REAL NOT NULL,
			longitude REAL NOT NULL,
			creatorId TEXT
		)`,

		// Participants table (name list per activity)
		`CREATE TABLE IF NOT EXISTS participants (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			activityId INTEGER NOT NULL,
			name TEXT NOT NULL
		)`,

		// Favorites table (single user, presence marker only)
		`CREATE TABLE IF NOT EXISTS favorites (
			activityId INTEGER PRIMARY KEY
		)`,

		`CREATE INDEX IF NOT EXISTS idx_participants_activity ON participants(activityId)`,
		`CREATE INDEX IF NOT EXISTS idx_activities_creator ON activities(creatorId)`,
	}

	for _, query := range queries {
		if _, err := db.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	return nil
}

func (db *DB) Close() error {
	return db.DB.Close()
}
