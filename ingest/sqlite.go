// SPDX-License-Identifier: MIT

package ingest

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/katalvlaran/sixdeg/builder"
)

// schema is the record layout LoadSQLite reads and SaveSQLite writes.
const schema = `
	CREATE TABLE IF NOT EXISTS entities (
		id   TEXT PRIMARY KEY,
		name TEXT NOT NULL
	);
	CREATE TABLE IF NOT EXISTS "groups" (
		id   TEXT PRIMARY KEY,
		name TEXT NOT NULL
	);
	CREATE TABLE IF NOT EXISTS memberships (
		seq       INTEGER PRIMARY KEY AUTOINCREMENT,
		group_id  TEXT NOT NULL,
		entity_id TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_memberships_group ON memberships(group_id);
`

// openDB opens the SQLite database at path.
func openDB(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	db.SetMaxOpenConns(1) // SQLite doesn't support concurrent writes

	return db, nil
}

// LoadSQLite reads Records from the entities, groups and memberships
// tables of the database at path. Memberships come back in insertion order.
func LoadSQLite(ctx context.Context, path string) (*builder.Records, error) {
	db, err := openDB(path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	recs := &builder.Records{}
	if recs.Entities, err = queryIDNames(ctx, db, "SELECT id, name FROM entities"); err != nil {
		return nil, fmt.Errorf("reading entities: %w", err)
	}
	if recs.Groups, err = queryIDNames(ctx, db, "SELECT id, name FROM \"groups\""); err != nil {
		return nil, fmt.Errorf("reading groups: %w", err)
	}

	rows, err := db.QueryContext(ctx, "SELECT group_id, entity_id FROM memberships ORDER BY seq")
	if err != nil {
		return nil, fmt.Errorf("reading memberships: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var m builder.Membership
		if err := rows.Scan(&m.GroupID, &m.EntityID); err != nil {
			return nil, fmt.Errorf("scanning membership: %w", err)
		}
		recs.Memberships = append(recs.Memberships, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading memberships: %w", err)
	}

	return recs, nil
}

func queryIDNames(ctx context.Context, db *sql.DB, q string) (map[string]string, error) {
	rows, err := db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]string)
	for rows.Next() {
		var id, name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, err
		}
		out[id] = name
	}

	return out, rows.Err()
}

// SaveSQLite writes recs into the database at path, creating the tables if
// needed. Existing rows with the same ids are replaced; memberships are
// appended. The write is a single transaction.
func SaveSQLite(ctx context.Context, path string, recs *builder.Records) (err error) {
	if recs == nil {
		return builder.ErrNilRecords
	}
	db, err := openDB(path)
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err = db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() {
		if err != nil {
			err = errors.Join(err, tx.Rollback())
		}
	}()

	for id, name := range recs.Entities {
		if _, err = tx.ExecContext(ctx, "INSERT OR REPLACE INTO entities (id, name) VALUES (?, ?)", id, name); err != nil {
			return fmt.Errorf("inserting entity %s: %w", id, err)
		}
	}
	for id, name := range recs.Groups {
		if _, err = tx.ExecContext(ctx, "INSERT OR REPLACE INTO \"groups\" (id, name) VALUES (?, ?)", id, name); err != nil {
			return fmt.Errorf("inserting group %s: %w", id, err)
		}
	}
	for _, m := range recs.Memberships {
		if _, err = tx.ExecContext(ctx, "INSERT INTO memberships (group_id, entity_id) VALUES (?, ?)", m.GroupID, m.EntityID); err != nil {
			return fmt.Errorf("inserting membership %s|%s: %w", m.GroupID, m.EntityID, err)
		}
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	return nil
}
