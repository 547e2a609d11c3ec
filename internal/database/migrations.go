package database

// migrationsSQL contains all database migrations, applied in version order.
var migrationsSQL = map[int]string{
	1: migrationV1WeekTables,
}

// migrationV1WeekTables creates the week table cache.
//
// One row per (system, year, weeks_before, weeks_after). The payload is
// the JSON array of annotated weeks; schema_version records the shape it
// was written with so readers can reject stale rows.
const migrationV1WeekTables = `
CREATE TABLE IF NOT EXISTS week_tables (
    id INTEGER PRIMARY KEY AUTOINCREMENT,

    system TEXT NOT NULL CHECK (system IN (
        'gregorian',
        'hebrew',
        'islamic',
        'chinese'
    )),
    year INTEGER NOT NULL,
    weeks_before INTEGER NOT NULL CHECK (weeks_before >= 0),
    weeks_after INTEGER NOT NULL CHECK (weeks_after >= 0),

    schema_version INTEGER NOT NULL,
    payload TEXT NOT NULL,

    created_at TEXT NOT NULL DEFAULT (datetime('now')),
    updated_at TEXT NOT NULL DEFAULT (datetime('now')),

    UNIQUE (system, year, weeks_before, weeks_after)
);

CREATE INDEX IF NOT EXISTS idx_week_tables_year
    ON week_tables(year);
`
