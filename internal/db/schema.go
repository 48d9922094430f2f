package db

// SchemaSQL is the complete schema for fresh tlog installs.
//
// # Schema Drift Protection
//
// This is the SINGLE SOURCE OF TRUTH for the database schema. All tests use
// this schema via GetSchemaSQL(), which provides two layers of protection:
//
//  1. No hardcoded schemas: tests must use db.GetSchemaSQL() instead of
//     their own CREATE TABLE statements.
//
//  2. Immediate failure on drift: if repository code references a column that
//     doesn't exist in this schema, tests fail immediately with "no such
//     column". This catches drift at development time, not production.
//
// Timestamps are stored as UTC RFC3339 text throughout. Sticking to one
// format keeps string comparison equal to chronological comparison, which the
// end_time > start_time CHECK and the overlap queries rely on.
//
// Every invariant the services validate is enforced again here (CHECK,
// UNIQUE, FOREIGN KEY), so a caller bypassing the service layer still cannot
// persist a violation. The activities -> categories reference deliberately
// has no ON DELETE action: deleting a category that still has activities is
// rejected by the foreign key, while its tags (and their associations)
// cascade away.
//
// The three views are a stable contract toward the CLI and external BI
// tooling; column names and semantics must not change.
const SchemaSQL = `
-- Categories (top-level classification, e.g. Work, Exercise)
CREATE TABLE IF NOT EXISTS categories (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL COLLATE NOCASE CHECK(length(trim(name)) > 0),
	color TEXT CHECK(color IS NULL OR color GLOB '#[0-9a-fA-F][0-9a-fA-F][0-9a-fA-F][0-9a-fA-F][0-9a-fA-F][0-9a-fA-F]'),
	created_at DATETIME NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%SZ','now'))
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_categories_name ON categories(name);

-- Tags (fine-grained labels scoped to one category; name unique per category,
-- case-insensitive via COLLATE NOCASE)
CREATE TABLE IF NOT EXISTS tags (
	id TEXT PRIMARY KEY,
	category_id TEXT NOT NULL,
	name TEXT NOT NULL COLLATE NOCASE CHECK(length(trim(name)) > 0),
	created_at DATETIME NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%SZ','now')),
	FOREIGN KEY (category_id) REFERENCES categories(id) ON DELETE CASCADE,
	UNIQUE(category_id, name)
);

CREATE INDEX IF NOT EXISTS idx_tags_category ON tags(category_id);

-- Activities (time-boxed events)
CREATE TABLE IF NOT EXISTS activities (
	id TEXT PRIMARY KEY,
	start_time DATETIME NOT NULL,
	end_time DATETIME NOT NULL CHECK(end_time > start_time),
	category_id TEXT NOT NULL,
	notes TEXT,
	created_at DATETIME NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%SZ','now')),
	updated_at DATETIME NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%SZ','now')),
	FOREIGN KEY (category_id) REFERENCES categories(id)
);

CREATE INDEX IF NOT EXISTS idx_activities_start ON activities(start_time);
CREATE INDEX IF NOT EXISTS idx_activities_category ON activities(category_id);

-- Activity/tag associations (many-to-many bridge; both sides cascade)
CREATE TABLE IF NOT EXISTS activity_tags (
	activity_id TEXT NOT NULL,
	tag_id TEXT NOT NULL,
	PRIMARY KEY (activity_id, tag_id),
	FOREIGN KEY (activity_id) REFERENCES activities(id) ON DELETE CASCADE,
	FOREIGN KEY (tag_id) REFERENCES tags(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_activity_tags_tag ON activity_tags(tag_id);

-- Second guard for updated_at: repositories set it explicitly on every
-- UPDATE, the trigger covers writes that bypass them.
CREATE TRIGGER IF NOT EXISTS activities_touch_updated_at
AFTER UPDATE ON activities
FOR EACH ROW
BEGIN
	UPDATE activities SET updated_at = strftime('%Y-%m-%dT%H:%M:%SZ','now') WHERE id = NEW.id;
END;

-- Activities with category context, computed duration and a sorted,
-- comma-separated tag list ('' when untagged)
CREATE VIEW IF NOT EXISTS activities_view AS
SELECT
	a.id,
	a.start_time,
	a.end_time,
	a.category_id,
	c.name AS category_name,
	c.color AS category_color,
	a.notes,
	(unixepoch(a.end_time) - unixepoch(a.start_time)) / 60 AS duration_minutes,
	COALESCE((
		SELECT GROUP_CONCAT(t.name, ', ' ORDER BY t.name)
		FROM activity_tags at
		JOIN tags t ON t.id = at.tag_id
		WHERE at.activity_id = a.id
	), '') AS tags,
	a.created_at,
	a.updated_at
FROM activities a
JOIN categories c ON c.id = a.category_id;

-- Per-category totals; categories without activities report zeros
CREATE VIEW IF NOT EXISTS category_stats AS
SELECT
	c.id,
	c.name,
	c.color,
	COUNT(a.id) AS activity_count,
	COALESCE(SUM((unixepoch(a.end_time) - unixepoch(a.start_time)) / 60), 0) AS total_minutes
FROM categories c
LEFT JOIN activities a ON a.category_id = c.id
GROUP BY c.id, c.name, c.color
ORDER BY total_minutes DESC;

-- Per-tag totals scoped to activities carrying the tag
CREATE VIEW IF NOT EXISTS tag_stats AS
SELECT
	t.id,
	t.name,
	t.category_id,
	c.name AS category_name,
	c.color AS category_color,
	COUNT(a.id) AS activity_count,
	COALESCE(SUM((unixepoch(a.end_time) - unixepoch(a.start_time)) / 60), 0) AS total_minutes
FROM tags t
JOIN categories c ON c.id = t.category_id
LEFT JOIN activity_tags at ON at.tag_id = t.id
LEFT JOIN activities a ON a.id = at.activity_id
GROUP BY t.id, t.name, t.category_id, c.name, c.color
ORDER BY c.name, total_minutes DESC;
`

// InitSchema creates or upgrades the database schema.
func InitSchema() error {
	db, err := GetDB()
	if err != nil {
		return err
	}

	// Check if schema_version table exists to determine if this is a fresh install
	var tableCount int
	err = db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'").Scan(&tableCount)
	if err != nil {
		return err
	}

	if tableCount == 0 {
		// Fresh install - create the modern schema directly and mark all
		// migrations as applied so RunMigrations never replays history
		if _, err := db.Exec(SchemaSQL); err != nil {
			return err
		}
		if _, err := db.Exec(`
			CREATE TABLE IF NOT EXISTS schema_version (
				version INTEGER PRIMARY KEY,
				applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
			)
		`); err != nil {
			return err
		}
		for v := 1; v <= latestSchemaVersion; v++ {
			if _, err := db.Exec("INSERT INTO schema_version (version) VALUES (?)", v); err != nil {
				return err
			}
		}
		return nil
	}

	// schema_version table exists - run any pending migrations
	return RunMigrations()
}

// GetSchemaSQL returns the authoritative schema SQL for use by tests.
// Tests should use this instead of hardcoding their own schema to prevent drift.
func GetSchemaSQL() string {
	return SchemaSQL
}
