package db

import (
	"database/sql"
	"fmt"
)

// Migration represents a database migration. Up runs inside the same
// transaction that records the version row, so a failed migration
// leaves neither partial DDL nor a version entry behind.
type Migration struct {
	Version int
	Name    string
	Up      func(*sql.Tx) error
}

// latestSchemaVersion must match the highest version in migrations.
// Fresh installs record every version as applied after creating SchemaSQL.
const latestSchemaVersion = 3

// migrations is the list of all migrations in order
var migrations = []Migration{
	{
		Version: 1,
		Name:    "initial_activity_schema",
		Up:      migrationV1,
	},
	{
		Version: 2,
		Name:    "add_activity_indexes",
		Up:      migrationV2,
	},
	{
		Version: 3,
		Name:    "add_updated_at_touch_trigger",
		Up:      migrationV3,
	},
}

// RunMigrations executes all pending migrations
func RunMigrations() error {
	database, err := GetDB()
	if err != nil {
		return fmt.Errorf("failed to get database: %w", err)
	}
	return runMigrations(database, migrations)
}

func runMigrations(db *sql.DB, pending []Migration) error {
	// Create schema_version table if it doesn't exist
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create schema_version table: %w", err)
	}

	// Get current schema version
	var currentVersion int
	err = db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_version").Scan(&currentVersion)
	if err != nil {
		return fmt.Errorf("failed to get current schema version: %w", err)
	}

	// Run pending migrations
	for _, migration := range pending {
		if migration.Version <= currentVersion {
			continue
		}

		fmt.Printf("Running migration %d: %s\n", migration.Version, migration.Name)

		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("failed to begin transaction for migration %d: %w", migration.Version, err)
		}

		if err := migration.Up(tx); err != nil {
			tx.Rollback()
			return fmt.Errorf("migration %d failed: %w", migration.Version, err)
		}

		_, err = tx.Exec("INSERT INTO schema_version (version) VALUES (?)", migration.Version)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to record migration %d: %w", migration.Version, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", migration.Version, err)
		}
	}

	return nil
}

// migrationV1 creates the core tables and views. Installs that predate the
// schema_version table get the whole modern schema; CREATE ... IF NOT EXISTS
// makes this safe on databases that already carry parts of it.
func migrationV1(tx *sql.Tx) error {
	_, err := tx.Exec(SchemaSQL)
	return err
}

// migrationV2 adds the query-path indexes for databases created before they
// were part of the base schema.
func migrationV2(tx *sql.Tx) error {
	stmts := []string{
		"CREATE INDEX IF NOT EXISTS idx_activities_start ON activities(start_time)",
		"CREATE INDEX IF NOT EXISTS idx_activities_category ON activities(category_id)",
		"CREATE INDEX IF NOT EXISTS idx_activity_tags_tag ON activity_tags(tag_id)",
	}
	for _, stmt := range stmts {
		if _, err := tx.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// migrationV3 installs the updated_at touch trigger on activities.
func migrationV3(tx *sql.Tx) error {
	_, err := tx.Exec(`
		CREATE TRIGGER IF NOT EXISTS activities_touch_updated_at
		AFTER UPDATE ON activities
		FOR EACH ROW
		BEGIN
			UPDATE activities SET updated_at = strftime('%Y-%m-%dT%H:%M:%SZ','now') WHERE id = NEW.id;
		END
	`)
	return err
}
