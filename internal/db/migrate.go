package db

import (
	"database/sql"
	"fmt"
)

// Migrate applies the schema. Every statement is idempotent, so it runs on
// each open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS curricula (
		id            TEXT PRIMARY KEY,
		topic         TEXT NOT NULL,
		display_topic TEXT NOT NULL,
		pace          TEXT NOT NULL CHECK(pace IN ('slow','normal','fast')),
		depth         TEXT NOT NULL CHECK(depth IN ('beginner','intermediate','advanced')),
		styles        TEXT NOT NULL DEFAULT '[]',
		source        TEXT NOT NULL DEFAULT 'local',
		is_active     INTEGER NOT NULL DEFAULT 0 CHECK(is_active IN (0,1)),
		created_at    TEXT NOT NULL,
		updated_at    TEXT NOT NULL
	)`,

	`CREATE UNIQUE INDEX IF NOT EXISTS idx_curricula_single_active ON curricula(is_active) WHERE is_active = 1`,
	`CREATE INDEX IF NOT EXISTS idx_curricula_created ON curricula(created_at)`,

	`CREATE TABLE IF NOT EXISTS curriculum_days (
		curriculum_id TEXT NOT NULL REFERENCES curricula(id) ON DELETE CASCADE,
		day_number    INTEGER NOT NULL CHECK(day_number > 0),
		title         TEXT NOT NULL,
		objectives    TEXT NOT NULL DEFAULT '[]',
		resources     TEXT NOT NULL DEFAULT '[]',
		assignment    TEXT NOT NULL DEFAULT '',
		completed     INTEGER NOT NULL DEFAULT 0 CHECK(completed IN (0,1)),
		-- order in which days were completed; 0 while not completed
		completed_seq INTEGER NOT NULL DEFAULT 0,
		completed_at  TEXT,
		PRIMARY KEY (curriculum_id, day_number)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_curriculum_days_completed ON curriculum_days(curriculum_id, completed_seq)`,
}
