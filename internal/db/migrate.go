package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS plans (
		plan_date TEXT PRIMARY KEY,
		created_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS plan_actions (
		id TEXT PRIMARY KEY,
		plan_date TEXT NOT NULL,
		position INTEGER NOT NULL,
		action_time TEXT NOT NULL,
		type TEXT NOT NULL,
		account TEXT NOT NULL,
		link TEXT NOT NULL,
		content TEXT,
		executed INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE INDEX IF NOT EXISTS idx_plan_actions_date
		ON plan_actions (plan_date, position)`,

	`CREATE TABLE IF NOT EXISTS executed_actions (
		id TEXT PRIMARY KEY,
		logged_at TEXT NOT NULL,
		seq INTEGER NOT NULL,
		action_time TEXT NOT NULL,
		type TEXT NOT NULL,
		account TEXT NOT NULL,
		link TEXT NOT NULL,
		content TEXT,
		executed INTEGER NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_executed_actions_seq
		ON executed_actions (seq)`,
}
