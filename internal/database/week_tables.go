package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// WeekTable is one cached run of annotated weeks.
type WeekTable struct {
	ID            int64     `json:"id"`
	System        string    `json:"system"`
	Year          int       `json:"year"`
	WeeksBefore   int       `json:"weeks_before"`
	WeeksAfter    int       `json:"weeks_after"`
	SchemaVersion int       `json:"schema_version"`
	Payload       []byte    `json:"-"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// WeekTableKey identifies a WeekTable.
type WeekTableKey struct {
	System      string
	Year        int
	WeeksBefore int
	WeeksAfter  int
}

// parseTimestamp parses a timestamp from SQLite TEXT format.
// Returns nil if no known layout matches.
func parseTimestamp(ns sql.NullString) *time.Time {
	if !ns.Valid || ns.String == "" {
		return nil
	}

	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, ns.String); err == nil {
			return &t
		}
	}
	return nil
}

// GetWeekTable returns the stored table for key, or ErrNotFound.
func (db *DB) GetWeekTable(ctx context.Context, key WeekTableKey) (*WeekTable, error) {
	query := `
		SELECT
			id, system, year, weeks_before, weeks_after,
			schema_version, payload, created_at, updated_at
		FROM week_tables
		WHERE system = ? AND year = ? AND weeks_before = ? AND weeks_after = ?
	`

	var wt WeekTable
	var payload string
	var createdAtStr, updatedAtStr sql.NullString

	err := db.QueryRowContext(ctx, query, key.System, key.Year, key.WeeksBefore, key.WeeksAfter).Scan(
		&wt.ID,
		&wt.System,
		&wt.Year,
		&wt.WeeksBefore,
		&wt.WeeksAfter,
		&wt.SchemaVersion,
		&payload,
		&createdAtStr,
		&updatedAtStr,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query week table: %w", err)
	}

	wt.Payload = []byte(payload)
	if t := parseTimestamp(createdAtStr); t != nil {
		wt.CreatedAt = *t
	}
	if t := parseTimestamp(updatedAtStr); t != nil {
		wt.UpdatedAt = *t
	}

	return &wt, nil
}

// UpsertWeekTable inserts wt or replaces the payload and schema version of
// the row with the same key.
func (db *DB) UpsertWeekTable(ctx context.Context, wt *WeekTable) error {
	query := `
		INSERT INTO week_tables (
			system, year, weeks_before, weeks_after,
			schema_version, payload, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, datetime('now'))
		ON CONFLICT(system, year, weeks_before, weeks_after) DO UPDATE SET
			schema_version = excluded.schema_version,
			payload = excluded.payload,
			updated_at = datetime('now')
	`

	_, err := db.ExecContext(ctx, query,
		wt.System,
		wt.Year,
		wt.WeeksBefore,
		wt.WeeksAfter,
		wt.SchemaVersion,
		string(wt.Payload),
	)
	if err != nil {
		return fmt.Errorf("upsert week table: %w", err)
	}

	return nil
}

// DeleteWeekTable removes the table for key.
// Returns ErrNotFound if there is none.
func (db *DB) DeleteWeekTable(ctx context.Context, key WeekTableKey) error {
	query := `
		DELETE FROM week_tables
		WHERE system = ? AND year = ? AND weeks_before = ? AND weeks_after = ?
	`

	result, err := db.ExecContext(ctx, query, key.System, key.Year, key.WeeksBefore, key.WeeksAfter)
	if err != nil {
		return fmt.Errorf("delete week table: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

// ListWeekTables returns every stored table without its payload, ordered
// by year then system.
func (db *DB) ListWeekTables(ctx context.Context) ([]WeekTable, error) {
	query := `
		SELECT
			id, system, year, weeks_before, weeks_after,
			schema_version, created_at, updated_at
		FROM week_tables
		ORDER BY year ASC, system ASC, weeks_before ASC, weeks_after ASC
	`

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query week tables: %w", err)
	}
	defer rows.Close()

	var tables []WeekTable
	for rows.Next() {
		var wt WeekTable
		var createdAtStr, updatedAtStr sql.NullString

		err := rows.Scan(
			&wt.ID,
			&wt.System,
			&wt.Year,
			&wt.WeeksBefore,
			&wt.WeeksAfter,
			&wt.SchemaVersion,
			&createdAtStr,
			&updatedAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("scan week table row: %w", err)
		}

		if t := parseTimestamp(createdAtStr); t != nil {
			wt.CreatedAt = *t
		}
		if t := parseTimestamp(updatedAtStr); t != nil {
			wt.UpdatedAt = *t
		}
		tables = append(tables, wt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate week tables: %w", err)
	}

	return tables, nil
}

// PurgeStaleWeekTables deletes rows written under any schema version other
// than current and returns how many were removed.
func (db *DB) PurgeStaleWeekTables(ctx context.Context, current int) (int64, error) {
	var removed int64
	err := db.WithTx(ctx, func(tx *Tx) error {
		result, err := tx.ExecContext(ctx, `DELETE FROM week_tables WHERE schema_version != ?`, current)
		if err != nil {
			return fmt.Errorf("delete stale week tables: %w", err)
		}
		removed, err = result.RowsAffected()
		return err
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}
