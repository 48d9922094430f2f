// Package sqlite_test contains integration tests for SQLite repositories.
//
// # Schema Protection
//
// This file is the SINGLE POINT where the database schema is loaded for tests.
// All test setup functions use db.GetSchemaSQL() to ensure tests run against
// the authoritative schema, preventing drift between test and production.
//
// DO NOT hardcode CREATE TABLE statements in test files. Use setupTestDB()
// and the seed* helpers instead.
package sqlite_test

import (
	"database/sql"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/tlog/internal/db"
)

// setupTestDB creates an in-memory database with the authoritative schema.
// Foreign keys are enabled via the DSN and the pool is pinned to one
// connection so every statement sees the same in-memory database.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", "file::memory:?_foreign_keys=on")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	testDB.SetMaxOpenConns(1)

	// Use the authoritative schema from schema.go
	if _, err := testDB.Exec(db.GetSchemaSQL()); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// mustTime parses an RFC3339 timestamp or fails the test.
func mustTime(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t.Fatalf("bad test timestamp %q: %v", value, err)
	}
	return parsed
}

// seedCategory inserts a test category and returns its ID.
func seedCategory(t *testing.T, db *sql.DB, id, name, color string) string {
	t.Helper()
	if id == "" {
		id = "CAT-001"
	}
	if name == "" {
		name = "Work"
	}

	var colorArg any
	if color != "" {
		colorArg = color
	}
	_, err := db.Exec("INSERT INTO categories (id, name, color) VALUES (?, ?, ?)", id, name, colorArg)
	if err != nil {
		t.Fatalf("failed to seed category: %v", err)
	}
	return id
}

// seedTag inserts a test tag and returns its ID.
func seedTag(t *testing.T, db *sql.DB, id, categoryID, name string) string {
	t.Helper()
	if id == "" {
		id = "TAG-001"
	}
	if categoryID == "" {
		categoryID = "CAT-001"
	}
	if name == "" {
		name = "deep work"
	}
	_, err := db.Exec("INSERT INTO tags (id, category_id, name) VALUES (?, ?, ?)", id, categoryID, name)
	if err != nil {
		t.Fatalf("failed to seed tag: %v", err)
	}
	return id
}

// seedActivity inserts a test activity and returns its ID.
func seedActivity(t *testing.T, db *sql.DB, id, categoryID string, start, end time.Time) string {
	t.Helper()
	if id == "" {
		id = "ACT-001"
	}
	if categoryID == "" {
		categoryID = "CAT-001"
	}
	_, err := db.Exec(
		"INSERT INTO activities (id, start_time, end_time, category_id) VALUES (?, ?, ?, ?)",
		id, start.UTC().Format(time.RFC3339), end.UTC().Format(time.RFC3339), categoryID,
	)
	if err != nil {
		t.Fatalf("failed to seed activity: %v", err)
	}
	return id
}

// seedAssociation links an activity and a tag.
func seedAssociation(t *testing.T, db *sql.DB, activityID, tagID string) {
	t.Helper()
	_, err := db.Exec("INSERT INTO activity_tags (activity_id, tag_id) VALUES (?, ?)", activityID, tagID)
	if err != nil {
		t.Fatalf("failed to seed association: %v", err)
	}
}
